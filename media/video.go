// Package media defines the domain records for channel enumeration and the
// extraction functions that build them from raw catalog fragments.
package media

import (
	"fmt"
	"time"

	"github.com/ytgrab-cli/ytgrab/constant"
)

// Video is an immutable record describing a single published video.
// Identity is carried by ID; all other fields are display metadata.
type Video struct {
	PublishedAt time.Time `json:"published_at"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ChannelName string    `json:"channel_name"`
	PlaylistID  string    `json:"playlist_id"`
	ID          string    `json:"id"`
	Thumbnail   string    `json:"thumbnail"`
}

// WatchURL returns the canonical watch-page URL for the video.
func (v *Video) WatchURL() string {
	return constant.WatchURLPrefix + v.ID
}

func (v *Video) String() string {
	return fmt.Sprintf("Video(%q)", v.Title)
}

// Equal reports whether two videos denote the same platform entity.
func (v *Video) Equal(other *Video) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.ID == other.ID
}
