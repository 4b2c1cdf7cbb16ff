package schema

// ArticleMetaTable represents the 'root_data_2' table: one row per article
// with the video URL and playback window. Column names, including the "URL"
// casing and the video_strats misspelling, are the live hosted schema.
type ArticleMetaTable struct {
	Table      string
	ArticleID  string
	URL        string
	VideoStart string
	VideoEnd   string
}

// ArticleMeta is the schema definition for root_data_2
var ArticleMeta = ArticleMetaTable{
	Table:      "root_data_2",
	ArticleID:  "article_id",
	URL:        `"URL"`,
	VideoStart: "video_strats",
	VideoEnd:   "video_ends",
}
