package models

import (
	"encoding/json"
	"time"
)

// AppRecord is a generic key/value row used for app-wide configuration the
// clients read as-is (tab visibility, banners, feature toggles). The value is
// opaque JSON.
type AppRecord struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
