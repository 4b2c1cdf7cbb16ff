package schema

// AwzanTable represents the 'awzan_table_1' table: conjugation rows per
// wazen, with one distinguished header row (guf = the header marker).
type AwzanTableTable struct {
	Table             string
	Masdar            string
	PassiveParticiple string
	ActiveParticiple  string
	Imperative1       string
	Imperative2       string
	Imperative3       string
	PresentFutureA    string
	PresentFutureB    string
	PresentFutureC    string
	PastA             string
	PastB             string
	Guf               string
	WazenID           string
}

// Awzan is the schema definition for awzan_table_1
var Awzan = AwzanTableTable{
	Table:             "awzan_table_1",
	Masdar:            "masdar",
	PassiveParticiple: "b_pauul",
	ActiveParticiple:  "b_poel",
	Imperative1:       "tzivui_1",
	Imperative2:       "tzivui_2",
	Imperative3:       "tzivui_3",
	PresentFutureA:    "hove_atid_a",
	PresentFutureB:    "hove_atid_b",
	PresentFutureC:    "hove_atid_c",
	PastA:             "avar_a",
	PastB:             "avar_b",
	Guf:               "guf",
	WazenID:           "wazen_id",
}

// Columns returns all standard column names in payload order
func (t AwzanTableTable) Columns() []string {
	return []string{
		t.Masdar, t.PassiveParticiple, t.ActiveParticiple,
		t.Imperative1, t.Imperative2, t.Imperative3,
		t.PresentFutureC, t.PresentFutureB, t.PresentFutureA,
		t.PastB, t.PastA, t.Guf, t.WazenID,
	}
}
