package schema

// TranscriptionTable represents the 'root_data' table: one row per timed
// word of an article transcription.
type TranscriptionTable struct {
	Table             string
	ID                string
	ArticleID         string
	DictionaryID      string
	LineIndex         string
	WordIndex         string
	StartTime         string
	EndTime           string
	ArabicText        string
	TaaticText        string
	ArabicTextTashkil string
	HebrewWords       string
	PunctuationMarks  string
}

// Transcription is the schema definition for root_data
var Transcription = TranscriptionTable{
	Table:             "root_data",
	ID:                "id",
	ArticleID:         "article_id",
	DictionaryID:      "dictionary_id",
	LineIndex:         "line_index",
	WordIndex:         "word_index",
	StartTime:         "start_time",
	EndTime:           "end_time",
	ArabicText:        "arabic_text",
	TaaticText:        "taatic_text",
	ArabicTextTashkil: "arabic_text_tashkil",
	HebrewWords:       "hebrew_words",
	PunctuationMarks:  "punctuation_marks",
}

// Columns returns all standard column names
func (t TranscriptionTable) Columns() []string {
	return []string{
		t.ID, t.DictionaryID, t.LineIndex, t.WordIndex, t.StartTime, t.EndTime,
		t.ArabicText, t.TaaticText, t.ArabicTextTashkil, t.HebrewWords, t.PunctuationMarks,
	}
}
