// Package info serves the static reference content: the Arabic/taatik letter
// transliteration map (merged from three tables) and the vowel-marking
// reference rows.
package info

// LetterMapping is one row of the transliteration map. The main table and
// its sub-rows companion share this layout.
type LetterMapping struct {
	Extras         *string `json:"extras"`
	TaSystemMap    *string `json:"my_ta_system_map"`
	ArabLetter     *string `json:"the_arab_letter"`
	LetterNameTaat *string `json:"name_of_letter_ta"`
	LetterNameArab *string `json:"name_of_letter_ar"`
}

// LetterMap is the merged transliteration payload: section headers plus the
// main and sub-row mapping tables.
type LetterMap struct {
	Headers                []string        `json:"headers"`
	ArabicLetterMap        []LetterMapping `json:"arabicLetterMap"`
	ArabicLetterMapSubRows []LetterMapping `json:"arabicLetterMapSubRows"`
}

// HeaderRow is one row of the header table, projected into the letter map
// payload as a bare sub-title.
type HeaderRow struct {
	SubTitle *string
}

// VowelMethod is one row of the vowel-marking reference table.
type VowelMethod struct {
	ID           int64   `json:"id"`
	Name         *string `json:"name_in_hebrew_taatic_and_arabic"`
	Explanations *string `json:"explanations_and_examples"`
}
