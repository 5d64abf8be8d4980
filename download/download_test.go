package download

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytgrab-cli/ytgrab/filesystem"
	"github.com/ytgrab-cli/ytgrab/filter"
	"github.com/ytgrab-cli/ytgrab/media"
)

func init() {
	filesystem.SetMemMapFs()
}

// fakeExtractor records extracted URLs and fails for ids listed in broken.
type fakeExtractor struct {
	urls   []string
	broken map[string]bool
}

func (f *fakeExtractor) Extract(ctx context.Context, watchURL, dir string) error {
	f.urls = append(f.urls, watchURL)

	for id := range f.broken {
		if strings.HasSuffix(watchURL, id) {
			return errors.New("extraction failed")
		}
	}
	return nil
}

func testVideos(thumbURL string) []*media.Video {
	published := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	return []*media.Video{
		{ID: "v1", Title: "Launch recap - part one", PublishedAt: published, Thumbnail: thumbURL},
		{ID: "v2", Title: "Deep dive", PublishedAt: published, Thumbnail: thumbURL},
		{ID: "v3", Title: "Q&A", PublishedAt: published, Thumbnail: thumbURL},
	}
}

func TestRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	Convey("Given a batch of videos", t, func() {
		ctx := context.Background()

		Convey("All of them transfer and the report is clean", func() {
			extractor := &fakeExtractor{}
			manager := NewManager(extractor, "/downloads/example", false)

			report, err := manager.Run(ctx, testVideos(server.URL), filter.New())
			So(err, ShouldBeNil)
			So(report.Ok(), ShouldBeTrue)
			So(report.Total, ShouldEqual, 3)
			So(report.Completed, ShouldEqual, 3)
			So(extractor.urls, ShouldHaveLength, 3)
			So(extractor.urls[0], ShouldEndWith, "v1")
		})

		Convey("A failed video is recorded and the rest still transfer", func() {
			extractor := &fakeExtractor{broken: map[string]bool{"v2": true}}
			manager := NewManager(extractor, "/downloads/example", false)

			report, err := manager.Run(ctx, testVideos(server.URL), filter.New())
			So(err, ShouldBeNil)
			So(report.Ok(), ShouldBeFalse)
			So(report.Completed, ShouldEqual, 2)
			So(report.Failures, ShouldHaveLength, 1)
			So(report.Failures[0].VideoID, ShouldEqual, "v2")
			So(report.Failures[0].Stage, ShouldEqual, StageMedia)
			So(extractor.urls, ShouldHaveLength, 3)
		})

		Convey("Thumbnails are fetched next to the media files", func() {
			extractor := &fakeExtractor{}
			manager := NewManager(extractor, "/downloads/thumbed", true)

			report, err := manager.Run(ctx, testVideos(server.URL), filter.New())
			So(err, ShouldBeNil)
			So(report.Ok(), ShouldBeTrue)

			data, err := filesystem.API().ReadFile(filepath.Join(manager.Dir(), "thumb", "v1_thumb.jpg"))
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "jpeg-bytes")
		})

		Convey("A missing thumbnail fails only its own video", func() {
			videos := testVideos(server.URL)
			videos[1].Thumbnail = ""

			extractor := &fakeExtractor{}
			manager := NewManager(extractor, "/downloads/partial", true)

			report, err := manager.Run(ctx, videos, filter.New())
			So(err, ShouldBeNil)
			So(report.Completed, ShouldEqual, 2)
			So(report.Failures, ShouldHaveLength, 1)
			So(report.Failures[0].Stage, ShouldEqual, StageThumbnail)
		})

		Convey("Filters narrow the batch before any transfer starts", func() {
			extractor := &fakeExtractor{}
			manager := NewManager(extractor, "/downloads/filtered", false)
			pipeline := filter.New(filter.TitleContains("deep"))

			report, err := manager.Run(ctx, testVideos(server.URL), pipeline)
			So(err, ShouldBeNil)
			So(report.Total, ShouldEqual, 1)
			So(extractor.urls, ShouldHaveLength, 1)
			So(extractor.urls[0], ShouldEndWith, "v2")
		})

		Convey("An empty selection is a no-op, not an error", func() {
			extractor := &fakeExtractor{}
			manager := NewManager(extractor, "/downloads/none", false)

			report, err := manager.Run(ctx, nil, filter.New())
			So(err, ShouldBeNil)
			So(report.Total, ShouldEqual, 0)
			So(extractor.urls, ShouldBeEmpty)
		})
	})

	Convey("The target directory name is sanitized", t, func() {
		manager := NewManager(&fakeExtractor{}, "/downloads/My: Channel?", false)
		So(manager.Dir(), ShouldNotContainSubstring, ":")
		So(manager.Dir(), ShouldNotContainSubstring, "?")
		So(manager.Dir(), ShouldStartWith, "/downloads/")
	})
}

func TestLabel(t *testing.T) {
	Convey("Progress labels keep the head of the title", t, func() {
		So(label("Launch recap - part one"), ShouldEqual, "Launch recap")
		So(label("short"), ShouldEqual, "short")
		So(label(strings.Repeat("a", 40)), ShouldEqual, strings.Repeat("a", 30))
	})
}
