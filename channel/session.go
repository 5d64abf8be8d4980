package channel

import (
	"context"
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/ytgrab-cli/ytgrab/catalog"
	"github.com/ytgrab-cli/ytgrab/key"
	"github.com/ytgrab-cli/ytgrab/log"
	"github.com/ytgrab-cli/ytgrab/media"
	"github.com/ytgrab-cli/ytgrab/query"
	"github.com/ytgrab-cli/ytgrab/util"
)

// maxPageSize is the largest page the catalog accepts for item listings.
const maxPageSize = 50

// PlaylistIndex is the memoized result of a playlist listing: the declared
// total plus the title-keyed playlist mapping.
type PlaylistIndex struct {
	Total int
	Items map[string]*media.Playlist
}

// Session holds the per-process channel cache and exposes lazy, memoized
// lookups over the catalog. Cache fields only transition from unset to set;
// resolving a different channel name resets the whole session first, and
// Reset is available for explicit invalidation.
//
// A Session is not safe for concurrent use.
type Session struct {
	catalog catalog.Service

	name      mo.Option[string]
	id        mo.Option[string]
	uploadsID mo.Option[string]
	playlists mo.Option[*PlaylistIndex]
	uploads   []*media.Video
}

// NewSession returns an empty session over the given catalog service.
func NewSession(service catalog.Service) *Session {
	return &Session{catalog: service}
}

// Reset clears every cached field, returning the session to its initial state.
func (s *Session) Reset() {
	s.name = mo.None[string]()
	s.id = mo.None[string]()
	s.uploadsID = mo.None[string]()
	s.playlists = mo.None[*PlaylistIndex]()
	s.uploads = nil
}

// ChannelName returns the cached channel name, if resolved.
func (s *Session) ChannelName() mo.Option[string] {
	return s.name
}

// ChannelID returns the cached channel id, if resolved.
func (s *Session) ChannelID() mo.Option[string] {
	return s.id
}

// ResolveChannel resolves a channel display name to its id, memoized by name.
// Resolving a different name than the cached one invalidates the session.
func (s *Session) ResolveChannel(ctx context.Context, name string) (string, error) {
	if cached, ok := s.name.Get(); ok {
		if cached == name {
			return s.id.MustGet(), nil
		}
		s.Reset()
	}

	matches, err := s.catalog.SearchChannels(ctx, name)
	if err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no channel matches %q", ErrChannelNotFound, name)
	}

	top := matches[0]
	s.name = mo.Some(name)
	s.id = mo.Some(top.ID)

	_ = query.Remember(name, 1)
	log.Infof("resolved channel %q to %s", name, top.ID)

	return top.ID, nil
}

// SetChannel resolves a channel and eagerly warms the playlist index and
// uploads-list id, mirroring the common startup sequence.
func (s *Session) SetChannel(ctx context.Context, name string) (string, error) {
	id, err := s.ResolveChannel(ctx, name)
	if err != nil {
		return "", err
	}

	if _, err := s.Playlists(ctx); err != nil {
		return "", err
	}

	if _, err := s.UploadsID(ctx); err != nil {
		return "", err
	}

	return id, nil
}

// Playlists returns the channel's playlist index, fetching it from the
// catalog on first call and the session cache afterwards.
func (s *Session) Playlists(ctx context.Context) (*PlaylistIndex, error) {
	if index, ok := s.playlists.Get(); ok {
		return index, nil
	}

	id, ok := s.id.Get()
	if !ok {
		return nil, ErrNoChannel
	}

	page, err := s.catalog.ListPlaylists(ctx, id)
	if err != nil {
		return nil, err
	}

	index := &PlaylistIndex{
		Total: page.PageInfo.TotalResults,
		Items: media.ExtractPlaylists(page.Items),
	}
	s.playlists = mo.Some(index)

	return index, nil
}

// UploadsID resolves the channel's uploads-list id, memoized for the session.
func (s *Session) UploadsID(ctx context.Context) (string, error) {
	if _, ok := s.id.Get(); !ok {
		return "", ErrNoChannel
	}

	if uploadsID, ok := s.uploadsID.Get(); ok {
		return uploadsID, nil
	}

	uploadsID, err := s.catalog.UploadsPlaylistID(ctx, s.id.MustGet())
	if err != nil {
		return "", err
	}

	s.uploadsID = mo.Some(uploadsID)
	return uploadsID, nil
}

// PlaylistVideos returns all videos of the named playlist, triggering the
// playlist index if absent. The full sequence is fetched through cursor
// pagination once and stored on the playlist; subsequent calls short-circuit.
func (s *Session) PlaylistVideos(ctx context.Context, title string) ([]*media.Video, error) {
	index, err := s.Playlists(ctx)
	if err != nil {
		return nil, err
	}

	playlist, ok := index.Items[title]
	if !ok {
		if closest := closestTitle(title, lo.Keys(index.Items)); closest != "" {
			return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrPlaylistNotFound, title, closest)
		}
		return nil, fmt.Errorf("%w: %q", ErrPlaylistNotFound, title)
	}

	if playlist.Populated() {
		return playlist.Videos, nil
	}

	videos, err := s.paginate(ctx, playlist.ID)
	if err != nil {
		return nil, err
	}

	playlist.Videos = videos
	return videos, nil
}

// UploadsVideos returns every video the channel has published, fetched
// through the uploads list and memoized for the session.
func (s *Session) UploadsVideos(ctx context.Context) ([]*media.Video, error) {
	if s.uploads != nil {
		return s.uploads, nil
	}

	uploadsID, err := s.UploadsID(ctx)
	if err != nil {
		return nil, err
	}

	videos, err := s.paginate(ctx, uploadsID)
	if err != nil {
		return nil, err
	}

	s.uploads = videos
	return videos, nil
}

// paginate walks the cursor-based item listing until no continuation token is
// returned, accumulating extracted records in page order.
func (s *Session) paginate(ctx context.Context, playlistID string) ([]*media.Video, error) {
	pageSize := util.Min(util.Max(viper.GetInt(key.CatalogPageSize), 1), maxPageSize)

	var videos []*media.Video
	token := ""

	for {
		page, err := s.catalog.ListPlaylistItems(ctx, playlistID, token, pageSize)
		if err != nil {
			return nil, err
		}

		videos = append(videos, media.ExtractVideos(page.Items)...)
		log.Infof("fetched %4d / %4d", len(videos), page.PageInfo.TotalResults)

		if page.NextPageToken == "" {
			return videos, nil
		}
		token = page.NextPageToken
	}
}

// closestTitle picks the known title with the smallest edit distance to the
// requested one, for friendlier not-found errors.
func closestTitle(title string, titles []string) string {
	if len(titles) == 0 {
		return ""
	}

	return lo.MinBy(titles, func(a, b string) bool {
		return levenshtein.Distance(title, a) < levenshtein.Distance(title, b)
	})
}
