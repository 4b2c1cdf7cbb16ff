package schema

// LetterMapTable represents the 'arabic_letter_map' table and its
// sub-row companion: the Arabic/taatik transliteration mapping rows.
type LetterMapTable struct {
	Table          string
	ID             string
	Extras         string
	TaSystemMap    string
	ArabLetter     string
	LetterNameTaat string
	LetterNameArab string
}

// LetterMap is the schema definition for arabic_letter_map
var LetterMap = LetterMapTable{
	Table:          "arabic_letter_map",
	ID:             "id",
	Extras:         "extras",
	TaSystemMap:    "my_ta_system_map",
	ArabLetter:     "the_arab_letter",
	LetterNameTaat: "name_of_letter_ta",
	LetterNameArab: "name_of_letter_ar",
}

// LetterMapSubRows is the schema definition for arabic_letter_map_for_sub_rows,
// which shares the LetterMap column layout.
var LetterMapSubRows = LetterMapTable{
	Table:          "arabic_letter_map_for_sub_rows",
	ID:             "id",
	Extras:         "extras",
	TaSystemMap:    "my_ta_system_map",
	ArabLetter:     "the_arab_letter",
	LetterNameTaat: "name_of_letter_ta",
	LetterNameArab: "name_of_letter_ar",
}

// Columns returns the payload columns (id is sort-only)
func (t LetterMapTable) Columns() []string {
	return []string{t.Extras, t.TaSystemMap, t.ArabLetter, t.LetterNameTaat, t.LetterNameArab}
}
