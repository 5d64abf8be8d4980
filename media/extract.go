package media

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/ytgrab-cli/ytgrab/catalog"
	"github.com/ytgrab-cli/ytgrab/log"
)

// publishedAtLayout is the strict timestamp format the catalog emits.
const publishedAtLayout = "2006-01-02T15:04:05Z"

// maxResKey is the thumbnail rendition key a playlist fragment must carry.
const maxResKey = "maxres"

// ExtractionError reports a malformed catalog fragment. It carries the field
// that failed so batch operations can skip the offending item and continue.
type ExtractionError struct {
	Field string
	Cause error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("media: extract %s: %v", e.Field, e.Cause)
	}
	return fmt.Sprintf("media: extract %s: missing", e.Field)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// BestThumbnail selects the rendition with maximum (width × height) among all
// provided resolutions.
func BestThumbnail(thumbnails map[string]catalog.Thumbnail) (string, error) {
	if len(thumbnails) == 0 {
		return "", &ExtractionError{Field: "thumbnails"}
	}

	best := lo.MaxBy(lo.Values(thumbnails), func(a, b catalog.Thumbnail) bool {
		return a.Area() > b.Area()
	})

	return best.URL, nil
}

// ExtractVideo builds a Video record from a raw playlist-item fragment.
// The publish timestamp is parsed strictly after stripping whitespace.
func ExtractVideo(item catalog.PlaylistItem) (*Video, error) {
	snippet := item.Snippet

	publishedAt, err := time.Parse(publishedAtLayout, strings.ReplaceAll(snippet.PublishedAt, " ", ""))
	if err != nil {
		return nil, &ExtractionError{Field: "publishedAt", Cause: err}
	}

	if snippet.ResourceID.VideoID == "" {
		return nil, &ExtractionError{Field: "resourceId.videoId"}
	}

	thumbnail, err := BestThumbnail(snippet.Thumbnails)
	if err != nil {
		return nil, err
	}

	return &Video{
		PublishedAt: publishedAt,
		Title:       snippet.Title,
		Description: snippet.Description,
		ChannelName: snippet.ChannelTitle,
		PlaylistID:  snippet.PlaylistID,
		ID:          snippet.ResourceID.VideoID,
		Thumbnail:   thumbnail,
	}, nil
}

// ExtractVideos builds Video records from raw playlist-item fragments.
// Malformed fragments are logged and skipped; well-formed ones survive.
func ExtractVideos(items []catalog.PlaylistItem) []*Video {
	videos := make([]*Video, 0, len(items))

	for _, item := range items {
		video, err := ExtractVideo(item)
		if err != nil {
			log.Warnf("skipping malformed item: %v", err)
			continue
		}
		videos = append(videos, video)
	}

	return videos
}

// ExtractPlaylist builds a Playlist record from a raw playlist fragment.
// The maximum-resolution thumbnail rendition is required to be present.
func ExtractPlaylist(item catalog.PlaylistResource) (*Playlist, error) {
	if item.ID == "" {
		return nil, &ExtractionError{Field: "id"}
	}

	maxRes, ok := item.Snippet.Thumbnails[maxResKey]
	if !ok {
		return nil, &ExtractionError{Field: "thumbnails." + maxResKey}
	}

	return &Playlist{
		ID:         item.ID,
		Title:      item.Snippet.Title,
		VideoCount: item.ContentDetails.ItemCount,
		Thumbnail:  maxRes.URL,
	}, nil
}

// ExtractPlaylists builds the title-keyed playlist mapping from raw fragments.
// Malformed fragments are logged and skipped. Title collisions silently
// overwrite earlier entries; the catalog keys playlists by title, not id.
func ExtractPlaylists(items []catalog.PlaylistResource) map[string]*Playlist {
	playlists := make(map[string]*Playlist, len(items))

	for _, item := range items {
		playlist, err := ExtractPlaylist(item)
		if err != nil {
			log.Warnf("skipping malformed playlist: %v", err)
			continue
		}
		playlists[playlist.Title] = playlist
	}

	return playlists
}
