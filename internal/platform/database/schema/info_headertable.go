package schema

// MapHeaderTable represents the 'table_just_for_header' table: section
// sub-titles projected into the letter-map payload as a single column.
type MapHeaderTable struct {
	Table    string
	ID       string
	SubTitle string
}

// MapHeader is the schema definition for table_just_for_header
var MapHeader = MapHeaderTable{
	Table:    "table_just_for_header",
	ID:       "id",
	SubTitle: "sub_title",
}
