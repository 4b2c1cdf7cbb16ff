// Package article serves the timed transcription of a single article: the
// video metadata row plus the per-word transcription lines, grouped by line
// with duplicate words removed.
package article

// Word is one timed word of an article transcription.
type Word struct {
	ID                int64    `json:"id"`
	DictionaryID      *int64   `json:"dictionary_id"`
	LineIndex         int      `json:"line_index"`
	WordIndex         int      `json:"word_index"`
	StartTime         *float64 `json:"start_time"`
	EndTime           *float64 `json:"end_time"`
	ArabicText        *string  `json:"arabic_text"`
	TaaticText        *string  `json:"taatic_text"`
	ArabicTextTashkil *string  `json:"arabic_text_tashkil"`
	HebrewWords       *string  `json:"hebrew_words"`
	PunctuationMarks  *string  `json:"punctuation_marks"`
}

// Metadata is the one-per-article video row. Its absence means the article
// does not exist, which is a not-found condition rather than an error.
type Metadata struct {
	URL        *string  `json:"url"`
	VideoStart *float64 `json:"startTime"`
	VideoEnd   *float64 `json:"endTime"`
}

// Article is the assembled payload: transcription lines keyed by line index,
// plus the playback window.
type Article struct {
	Lines     map[int][]Word `json:"lines"`
	StartTime *float64       `json:"startTime"`
	EndTime   *float64       `json:"endTime"`
	URL       *string        `json:"url"`
}
