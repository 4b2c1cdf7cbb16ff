// Package preference stores per-user frontend preferences: the starred item
// list and the custom video playback order. Both are opaque JSON payloads
// owned by the frontend, replaced whole on every write.
package preference

import "encoding/json"

// Starred is the starred-items payload: a JSON array the frontend defines.
// Elements are kept opaque so frontend schema changes never need a migration.
type Starred struct {
	Success bool              `json:"success"`
	Items   []json.RawMessage `json:"items"`
}

// VideoOrder is the playback-order payload. Order is nil when the user has
// never saved one.
type VideoOrder struct {
	Success bool    `json:"success"`
	Order   []int64 `json:"order"`
}

// ReplaceStarredRequest is the PUT /user/starred body.
type ReplaceStarredRequest struct {
	Items []json.RawMessage `json:"items"`
}

// ReplaceVideoOrderRequest is the PUT /user/video-order body.
type ReplaceVideoOrderRequest struct {
	Order []int64 `json:"order"`
}

// Saved acknowledges a successful replace.
type Saved struct {
	Success bool `json:"success"`
}
