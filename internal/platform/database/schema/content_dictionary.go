package schema

// DictionaryTable represents the hosted dictionary table. The table name is
// mixed-case in the provider schema and must stay quoted in SQL.
type DictionaryTable struct {
	Table         string
	ID            string
	ArticleID     string
	Taatik        string
	Arabic        string
	ArabicTashkil string
	Translation   string
	Tense         string
	Guf           string
	Wazen         string
	Shoresh       string
	Extras        string
	Gizra         string
}

// Dictionary is the schema definition for "001_SY_lemraya_Dictionary"
var Dictionary = DictionaryTable{
	Table:         `"001_SY_lemraya_Dictionary"`,
	ID:            "id",
	ArticleID:     "article_id",
	Taatik:        "taatik",
	Arabic:        "arabic",
	ArabicTashkil: "arabic_tashkil",
	Translation:   "translation",
	Tense:         "tence",
	Guf:           "guf",
	Wazen:         "wazen",
	Shoresh:       "shoresh",
	Extras:        "extras",
	Gizra:         "gizrat_of_verb",
}

// TextColumns returns the text-bearing columns searched by the dictionary
// term filter, in stable order.
func (t DictionaryTable) TextColumns() []string {
	return []string{
		t.Taatik, t.Arabic, t.ArabicTashkil, t.Translation, t.Tense,
		t.Guf, t.Wazen, t.Shoresh, t.Extras, t.Gizra,
	}
}
