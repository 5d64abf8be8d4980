// Package catalog provides a typed client for the remote channel catalog API.
//
// Only the request/response shapes the application consumes are modeled here;
// higher-level caching and pagination live in the channel package.
package catalog

import "context"

// Channel is a publisher entity returned by a channel search.
type Channel struct {
	ID    string
	Title string
}

// Thumbnail is a single thumbnail rendition offered by the catalog.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Area returns the pixel area of the rendition, used to select the best resolution.
func (t Thumbnail) Area() int {
	return t.Width * t.Height
}

// PageInfo carries the declared result totals of a listing response.
type PageInfo struct {
	TotalResults int `json:"totalResults"`
}

// PlaylistResource is the raw playlist fragment returned by the playlist listing endpoint.
type PlaylistResource struct {
	ID      string `json:"id"`
	Snippet struct {
		Title      string               `json:"title"`
		Thumbnails map[string]Thumbnail `json:"thumbnails"`
	} `json:"snippet"`
	ContentDetails struct {
		ItemCount int `json:"itemCount"`
	} `json:"contentDetails"`
}

// PlaylistsPage is the response of a playlist listing request.
type PlaylistsPage struct {
	PageInfo PageInfo           `json:"pageInfo"`
	Items    []PlaylistResource `json:"items"`
}

// PlaylistItem is the raw playlist-item fragment returned by the paginated item listing endpoint.
type PlaylistItem struct {
	Snippet struct {
		PublishedAt  string `json:"publishedAt"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		ChannelTitle string `json:"channelTitle"`
		PlaylistID   string `json:"playlistId"`
		ResourceID   struct {
			VideoID string `json:"videoId"`
		} `json:"resourceId"`
		Thumbnails map[string]Thumbnail `json:"thumbnails"`
	} `json:"snippet"`
}

// PlaylistItemsPage is one page of a cursor-paginated item listing.
// An empty NextPageToken signals end-of-results.
type PlaylistItemsPage struct {
	PageInfo      PageInfo       `json:"pageInfo"`
	NextPageToken string         `json:"nextPageToken"`
	Items         []PlaylistItem `json:"items"`
}

// Service defines the catalog operations the application consumes.
// The channel session depends on this interface so tests can substitute counting fakes.
type Service interface {
	// SearchChannels returns channel-type matches for a display name, best match first.
	// An empty result is not an error at this layer.
	SearchChannels(ctx context.Context, name string) ([]Channel, error)

	// ListPlaylists returns all playlists owned by a channel together with the declared total.
	ListPlaylists(ctx context.Context, channelID string) (*PlaylistsPage, error)

	// ListPlaylistItems returns one page of a playlist's items.
	// Pass an empty pageToken for the first page.
	ListPlaylistItems(ctx context.Context, playlistID, pageToken string, pageSize int) (*PlaylistItemsPage, error)

	// UploadsPlaylistID resolves the id of the platform-managed uploads list of a channel.
	UploadsPlaylistID(ctx context.Context, channelID string) (string, error)
}
