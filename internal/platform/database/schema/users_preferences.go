package schema

// UserPreferencesTable represents the 'user_preferences' table: one row per
// user, upserted whole with user_id as the conflict target.
type UserPreferencesTable struct {
	Table        string
	UserID       string
	StarredItems string
	VideoOrder   string
	UpdatedAt    string
}

// UserPreferences is the schema definition for user_preferences
var UserPreferences = UserPreferencesTable{
	Table:        "user_preferences",
	UserID:       "user_id",
	StarredItems: "starred_items",
	VideoOrder:   "video_order",
	UpdatedAt:    "updated_at",
}
