package media

import (
	"fmt"

	"github.com/ytgrab-cli/ytgrab/util"
)

// Playlist describes a channel playlist. Videos starts empty and is populated
// lazily, exactly once, by the channel session; once non-empty it is never
// overwritten or re-fetched.
type Playlist struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	VideoCount int      `json:"video_count"`
	Thumbnail  string   `json:"thumbnail"`
	Videos     []*Video `json:"videos,omitempty"`
}

func (p *Playlist) String() string {
	return fmt.Sprintf("Playlist(%q)", p.Title)
}

// Dirname returns a filesystem-safe directory name derived from the playlist title.
func (p *Playlist) Dirname() string {
	return util.SanitizeFilename(p.Title)
}

// Populated reports whether the lazy video sequence has been filled in.
func (p *Playlist) Populated() bool {
	return len(p.Videos) > 0
}
