// Package dictionary serves dictionary entries scoped to an article or
// looked up singly, with an optional case-insensitive term search across all
// text columns and an exact-match redaction rule applied to the results.
package dictionary

// Entry is one dictionary row. Text fields are pointers so the redaction
// rule can delete a field from the payload without dropping the row.
type Entry struct {
	ID            int64   `json:"id"`
	Taatik        *string `json:"taatik,omitempty"`
	Arabic        *string `json:"arabic,omitempty"`
	ArabicTashkil *string `json:"arabic_tashkil,omitempty"`
	Translation   *string `json:"translation,omitempty"`
	Tense         *string `json:"tense,omitempty"`
	Guf           *string `json:"guf,omitempty"`
	Wazen         *string `json:"wazen,omitempty"`
	Shoresh       *string `json:"shoresh,omitempty"`
	Extras        *string `json:"extras,omitempty"`
	Gizra         *string `json:"gizra,omitempty"`
}

// textFields returns the redactable fields of the entry, matching the
// searchable columns.
func (e *Entry) textFields() []**string {
	return []**string{
		&e.Taatik, &e.Arabic, &e.ArabicTashkil, &e.Translation, &e.Tense,
		&e.Guf, &e.Wazen, &e.Shoresh, &e.Extras, &e.Gizra,
	}
}

// Filter selects which entries a search returns.
type Filter struct {
	// EntryID restricts the search to a single entry. nil means no restriction.
	EntryID *int64

	// ArticleID scopes the search to one article's entries.
	ArticleID *int64

	// Term, when non-empty, keeps only rows where at least one text column
	// contains the term (case-insensitive substring, OR across columns).
	Term string
}
