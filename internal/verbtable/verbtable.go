// Package verbtable serves the verb conjugation content: the binyan label
// lists (pivoted into five independent arrays) and the per-wazen conjugation
// table with its header row split out.
package verbtable

// gufHeaderMarker tags the single row that carries the table header labels
// instead of conjugation data.
const gufHeaderMarker = "גוף"

// BinyanRow is one row of the binyan list table. Cells are independent; any
// of them may be empty.
type BinyanRow struct {
	Shlemim     *string
	Kfulim      *string
	PeiVavYud   *string
	AynVavYud   *string
	LamedVavYud *string
}

// ConjugationRow is one row of the conjugation table. Field names mirror the
// hosted columns because the frontend renders them verbatim.
type ConjugationRow struct {
	Masdar            *string `json:"masdar"`
	PassiveParticiple *string `json:"b_pauul"`
	ActiveParticiple  *string `json:"b_poel"`
	Imperative1       *string `json:"tzivui_1"`
	Imperative2       *string `json:"tzivui_2"`
	Imperative3       *string `json:"tzivui_3"`
	PresentFutureA    *string `json:"hove_atid_a"`
	PresentFutureB    *string `json:"hove_atid_b"`
	PresentFutureC    *string `json:"hove_atid_c"`
	PastA             *string `json:"avar_a"`
	PastB             *string `json:"avar_b"`
	Guf               *string `json:"guf"`
	WazenID           *int64  `json:"wazen_id"`
}

// isHeader reports whether the row is the header labels row.
func (row ConjugationRow) isHeader() bool {
	return row.Guf != nil && *row.Guf == gufHeaderMarker
}

// ConjugationTable is the response shape of the per-wazen table: the header
// labels row (nil when the dataset carries none) and the data rows in
// guf-ascending order.
type ConjugationTable struct {
	Header *ConjugationRow  `json:"header"`
	Rows   []ConjugationRow `json:"rows"`
}
