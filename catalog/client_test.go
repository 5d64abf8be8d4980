package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient("test-key")
	client.BaseURL = server.URL
	client.HTTPClient = server.Client()
	return client, server
}

func TestSearchChannels(t *testing.T) {
	Convey("Given a catalog search endpoint", t, func() {
		var gotQuery, gotKey, gotType string

		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			gotKey = r.URL.Query().Get("key")
			gotType = r.URL.Query().Get("type")
			fmt.Fprint(w, `{"items":[{"snippet":{"channelId":"UC123","channelTitle":"Example"}}]}`)
		})
		defer server.Close()

		Convey("It decodes the top match", func() {
			channels, err := client.SearchChannels(context.Background(), "Example")
			So(err, ShouldBeNil)
			So(channels, ShouldHaveLength, 1)
			So(channels[0].ID, ShouldEqual, "UC123")
			So(channels[0].Title, ShouldEqual, "Example")
			So(gotQuery, ShouldEqual, "Example")
			So(gotKey, ShouldEqual, "test-key")
			So(gotType, ShouldEqual, "channel")
		})
	})

	Convey("Given an empty search result", t, func() {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"items":[]}`)
		})
		defer server.Close()

		Convey("It returns an empty slice, not an error", func() {
			channels, err := client.SearchChannels(context.Background(), "nobody")
			So(err, ShouldBeNil)
			So(channels, ShouldBeEmpty)
		})
	})

	Convey("Given a failing endpoint", t, func() {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		defer server.Close()

		Convey("It surfaces the status code", func() {
			_, err := client.SearchChannels(context.Background(), "Example")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "403")
		})
	})
}

func TestListPlaylistItems(t *testing.T) {
	Convey("Given a paginated item endpoint", t, func() {
		var gotToken, gotMax string

		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			gotToken = r.URL.Query().Get("pageToken")
			gotMax = r.URL.Query().Get("maxResults")
			fmt.Fprint(w, `{
				"pageInfo": {"totalResults": 2},
				"nextPageToken": "CURSOR",
				"items": [{"snippet": {"title": "a", "resourceId": {"videoId": "v1"}}}]
			}`)
		})
		defer server.Close()

		Convey("First page omits the cursor", func() {
			page, err := client.ListPlaylistItems(context.Background(), "PL1", "", 50)
			So(err, ShouldBeNil)
			So(gotToken, ShouldBeEmpty)
			So(gotMax, ShouldEqual, "50")
			So(page.NextPageToken, ShouldEqual, "CURSOR")
			So(page.PageInfo.TotalResults, ShouldEqual, 2)
			So(page.Items, ShouldHaveLength, 1)
		})

		Convey("Subsequent pages carry the cursor", func() {
			_, err := client.ListPlaylistItems(context.Background(), "PL1", "CURSOR", 50)
			So(err, ShouldBeNil)
			So(gotToken, ShouldEqual, "CURSOR")
		})
	})
}

func TestUploadsPlaylistID(t *testing.T) {
	Convey("Given a content-details endpoint", t, func() {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"items":[{"contentDetails":{"relatedPlaylists":{"uploads":"UU123"}}}]}`)
		})
		defer server.Close()

		Convey("It resolves the uploads list id", func() {
			id, err := client.UploadsPlaylistID(context.Background(), "UC123")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "UU123")
		})
	})

	Convey("Given an unknown channel", t, func() {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"items":[]}`)
		})
		defer server.Close()

		Convey("It reports not found", func() {
			_, err := client.UploadsPlaylistID(context.Background(), "UCnope")
			So(err, ShouldWrap, ErrNotFound)
		})
	})
}
