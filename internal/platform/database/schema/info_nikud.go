package schema

// NikudMethodTable represents the 'nikud_method_in_arabic_texts' table:
// the vowel-marking reference rows.
type NikudMethodTable struct {
	Table        string
	ID           string
	Name         string
	Explanations string
}

// NikudMethod is the schema definition for nikud_method_in_arabic_texts
var NikudMethod = NikudMethodTable{
	Table:        "nikud_method_in_arabic_texts",
	ID:           "id",
	Name:         "name_in_hebrew_taatic_and_arabic",
	Explanations: "explanations_and_examples",
}
