package channel

import (
	"context"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ytgrab-cli/ytgrab/catalog"
	"github.com/ytgrab-cli/ytgrab/filesystem"
	"github.com/ytgrab-cli/ytgrab/key"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.CatalogPageSize, 50)
	viper.Set(key.SearchShowQuerySuggestions, true)
}

// fakeCatalog is a scripted catalog.Service that counts calls per operation.
type fakeCatalog struct {
	channels  []catalog.Channel
	playlists *catalog.PlaylistsPage
	uploadsID string

	// pages maps playlist id to its scripted page sequence, keyed by cursor.
	pages map[string]map[string]*catalog.PlaylistItemsPage

	searchCalls    int
	playlistCalls  int
	itemCalls      int
	contentCalls   int
	lastPageTokens []string
}

func (f *fakeCatalog) SearchChannels(ctx context.Context, name string) ([]catalog.Channel, error) {
	f.searchCalls++
	return f.channels, nil
}

func (f *fakeCatalog) ListPlaylists(ctx context.Context, channelID string) (*catalog.PlaylistsPage, error) {
	f.playlistCalls++
	return f.playlists, nil
}

func (f *fakeCatalog) ListPlaylistItems(ctx context.Context, playlistID, pageToken string, pageSize int) (*catalog.PlaylistItemsPage, error) {
	f.itemCalls++
	f.lastPageTokens = append(f.lastPageTokens, pageToken)

	page, ok := f.pages[playlistID][pageToken]
	if !ok {
		return nil, fmt.Errorf("no scripted page for %q cursor %q", playlistID, pageToken)
	}
	return page, nil
}

func (f *fakeCatalog) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	f.contentCalls++
	return f.uploadsID, nil
}

func itemPage(total int, next string, ids ...string) *catalog.PlaylistItemsPage {
	page := &catalog.PlaylistItemsPage{NextPageToken: next}
	page.PageInfo.TotalResults = total
	for _, id := range ids {
		var item catalog.PlaylistItem
		item.Snippet.PublishedAt = "2023-05-01T12:30:00Z"
		item.Snippet.Title = "video " + id
		item.Snippet.ResourceID.VideoID = id
		item.Snippet.Thumbnails = map[string]catalog.Thumbnail{
			"high": {URL: "https://img/" + id + ".jpg", Width: 480, Height: 360},
		}
		page.Items = append(page.Items, item)
	}
	return page
}

func manyIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s-%03d", prefix, i)
	}
	return ids
}

func playlistsPage(total int, titles ...string) *catalog.PlaylistsPage {
	page := &catalog.PlaylistsPage{}
	page.PageInfo.TotalResults = total
	for i, title := range titles {
		var item catalog.PlaylistResource
		item.ID = fmt.Sprintf("PL%d", i+1)
		item.Snippet.Title = title
		item.Snippet.Thumbnails = map[string]catalog.Thumbnail{
			"maxres": {URL: "https://img/maxres.jpg", Width: 1280, Height: 720},
		}
		item.ContentDetails.ItemCount = 52
		page.Items = append(page.Items, item)
	}
	return page
}

func TestResolveChannel(t *testing.T) {
	Convey("Given a catalog with one matching channel", t, func() {
		fake := &fakeCatalog{channels: []catalog.Channel{{ID: "UC123", Title: "Example"}}}
		session := NewSession(fake)
		ctx := context.Background()

		Convey("Resolving twice with the same name searches once", func() {
			id, err := session.ResolveChannel(ctx, "Example")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "UC123")

			id, err = session.ResolveChannel(ctx, "Example")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "UC123")
			So(fake.searchCalls, ShouldEqual, 1)
		})

		Convey("Resolving a different name resets the session", func() {
			_, err := session.ResolveChannel(ctx, "Example")
			So(err, ShouldBeNil)

			fake.channels = []catalog.Channel{{ID: "UC456", Title: "Other"}}
			id, err := session.ResolveChannel(ctx, "Other")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "UC456")
			So(fake.searchCalls, ShouldEqual, 2)
			So(session.ChannelName().MustGet(), ShouldEqual, "Other")
		})
	})

	Convey("Given a catalog with no match", t, func() {
		fake := &fakeCatalog{}
		session := NewSession(fake)

		Convey("It reports channel not found instead of indexing blindly", func() {
			_, err := session.ResolveChannel(context.Background(), "nobody")
			So(err, ShouldWrap, ErrChannelNotFound)
		})
	})
}

func TestPlaylists(t *testing.T) {
	Convey("Given a resolved channel", t, func() {
		fake := &fakeCatalog{
			channels:  []catalog.Channel{{ID: "UC123"}},
			playlists: playlistsPage(2, "Launch", "Talks"),
		}
		session := NewSession(fake)
		ctx := context.Background()
		_, err := session.ResolveChannel(ctx, "Example")
		So(err, ShouldBeNil)

		Convey("The index is fetched once and memoized", func() {
			index, err := session.Playlists(ctx)
			So(err, ShouldBeNil)
			So(index.Total, ShouldEqual, 2)
			So(index.Items, ShouldContainKey, "Launch")

			again, err := session.Playlists(ctx)
			So(err, ShouldBeNil)
			So(again, ShouldEqual, index)
			So(fake.playlistCalls, ShouldEqual, 1)
		})
	})

	Convey("Given no resolved channel", t, func() {
		session := NewSession(&fakeCatalog{})

		Convey("Listing playlists is a precondition error", func() {
			_, err := session.Playlists(context.Background())
			So(err, ShouldWrap, ErrNoChannel)
		})

		Convey("Resolving the uploads id is a precondition error", func() {
			_, err := session.UploadsID(context.Background())
			So(err, ShouldWrap, ErrNoChannel)
		})
	})
}

func TestPlaylistVideos(t *testing.T) {
	Convey("Given a playlist spanning three pages", t, func() {
		fake := &fakeCatalog{
			channels:  []catalog.Channel{{ID: "UC123"}},
			playlists: playlistsPage(1, "Launch"),
			pages: map[string]map[string]*catalog.PlaylistItemsPage{
				"PL1": {
					"":  itemPage(5, "A", "v1", "v2"),
					"A": itemPage(5, "B", "v3", "v4"),
					"B": itemPage(5, "", "v5"),
				},
			},
		}
		session := NewSession(fake)
		ctx := context.Background()
		_, err := session.ResolveChannel(ctx, "Example")
		So(err, ShouldBeNil)

		Convey("Pagination accumulates each page exactly once, in order", func() {
			videos, err := session.PlaylistVideos(ctx, "Launch")
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 5)
			So(videos[0].ID, ShouldEqual, "v1")
			So(videos[4].ID, ShouldEqual, "v5")
			So(fake.itemCalls, ShouldEqual, 3)
			So(fake.lastPageTokens, ShouldResemble, []string{"", "A", "B"})
		})

		Convey("A second call returns the memoized sequence without re-querying", func() {
			first, err := session.PlaylistVideos(ctx, "Launch")
			So(err, ShouldBeNil)

			second, err := session.PlaylistVideos(ctx, "Launch")
			So(err, ShouldBeNil)
			So(second, ShouldResemble, first)
			So(fake.itemCalls, ShouldEqual, 3)
		})

		Convey("An unknown title reports not found with a suggestion", func() {
			_, err := session.PlaylistVideos(ctx, "Lunch")
			So(err, ShouldWrap, ErrPlaylistNotFound)
			So(err.Error(), ShouldContainSubstring, "Launch")
		})
	})

	Convey("Given a channel with a 52-video playlist across two pages", t, func() {
		fake := &fakeCatalog{
			channels:  []catalog.Channel{{ID: "UCex"}},
			playlists: playlistsPage(1, "Launch"),
			pages: map[string]map[string]*catalog.PlaylistItemsPage{
				"PL1": {
					"":     itemPage(52, "NEXT", manyIDs("a", 50)...),
					"NEXT": itemPage(52, "", manyIDs("b", 2)...),
				},
			},
		}
		session := NewSession(fake)
		ctx := context.Background()
		_, err := session.ResolveChannel(ctx, "Example")
		So(err, ShouldBeNil)

		Convey("All 52 records come back in page order, cached afterwards", func() {
			videos, err := session.PlaylistVideos(ctx, "Launch")
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 52)
			So(videos[0].ID, ShouldEqual, "a-000")
			So(videos[49].ID, ShouldEqual, "a-049")
			So(videos[51].ID, ShouldEqual, "b-001")

			again, err := session.PlaylistVideos(ctx, "Launch")
			So(err, ShouldBeNil)
			So(again, ShouldHaveLength, 52)
			So(fake.itemCalls, ShouldEqual, 2)
		})
	})
}

func TestUploadsVideos(t *testing.T) {
	Convey("Given a channel with an uploads list", t, func() {
		fake := &fakeCatalog{
			channels:  []catalog.Channel{{ID: "UC123"}},
			uploadsID: "UU123",
			pages: map[string]map[string]*catalog.PlaylistItemsPage{
				"UU123": {
					"": itemPage(2, "", "u1", "u2"),
				},
			},
		}
		session := NewSession(fake)
		ctx := context.Background()
		_, err := session.ResolveChannel(ctx, "Example")
		So(err, ShouldBeNil)

		Convey("The uploads id is memoized", func() {
			id, err := session.UploadsID(ctx)
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "UU123")

			_, err = session.UploadsID(ctx)
			So(err, ShouldBeNil)
			So(fake.contentCalls, ShouldEqual, 1)
		})

		Convey("Uploads videos are memoized symmetrically with playlist fetches", func() {
			videos, err := session.UploadsVideos(ctx)
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 2)

			again, err := session.UploadsVideos(ctx)
			So(err, ShouldBeNil)
			So(again, ShouldHaveLength, 2)
			So(fake.itemCalls, ShouldEqual, 1)
		})

		Convey("Reset clears the cache so fetches re-run", func() {
			_, err := session.UploadsVideos(ctx)
			So(err, ShouldBeNil)

			session.Reset()
			So(session.ChannelID().IsAbsent(), ShouldBeTrue)

			_, err = session.UploadsVideos(ctx)
			So(err, ShouldWrap, ErrNoChannel)
		})
	})
}
