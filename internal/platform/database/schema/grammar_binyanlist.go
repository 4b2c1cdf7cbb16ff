package schema

// BinyanListTable represents the 'binyanim_list' table: five independent
// label columns that are pivoted into five arrays. Three of the columns are
// mixed-case in the provider schema and must stay quoted in SQL.
type BinyanListTable struct {
	Table       string
	Shlemim     string
	Kfulim      string
	PeiVavYud   string
	AynVavYud   string
	LamedVavYud string
}

// BinyanList is the schema definition for binyanim_list
var BinyanList = BinyanListTable{
	Table:       "binyanim_list",
	Shlemim:     "binyan_list_shlemim",
	Kfulim:      "binyan_list_kfulim",
	PeiVavYud:   `"binyan_list_gizrat_Pei_vav_yud"`,
	AynVavYud:   `"binyan_list_gizrat_3ayn_vav_yud"`,
	LamedVavYud: `"binyan_list_gizrat_Lamed_vav_yud"`,
}

// Columns returns the five pivoted columns in payload order
func (t BinyanListTable) Columns() []string {
	return []string{t.Shlemim, t.Kfulim, t.PeiVavYud, t.AynVavYud, t.LamedVavYud}
}
