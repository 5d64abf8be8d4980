package filter

import (
	"regexp"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytgrab-cli/ytgrab/media"
)

func video(id, title string, published time.Time) *media.Video {
	return &media.Video{ID: id, Title: title, PublishedAt: published}
}

func ids(videos []*media.Video) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.ID
	}
	return out
}

func TestPipeline(t *testing.T) {
	jan := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	dec := time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC)

	videos := []*media.Video{
		video("v1", "Launch recap", jan),
		video("v2", "Deep dive: storage", jun),
		video("v3", "Launch Q&A", dec),
	}

	Convey("Given a sequence of videos", t, func() {
		Convey("An empty pipeline passes everything unchanged", func() {
			So(New().Apply(videos), ShouldResemble, videos)
		})

		Convey("Predicates combine disjunctively", func() {
			pipeline := New().
				Add(TitleContains("storage")).
				Add(PublishedAfter(time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)))

			So(ids(pipeline.Apply(videos)), ShouldResemble, []string{"v2", "v3"})
		})

		Convey("An always-false predicate is absorbed by an always-true one", func() {
			pipeline := New(
				func(*media.Video) bool { return false },
				func(*media.Video) bool { return true },
			)

			So(pipeline.Apply(videos), ShouldHaveLength, len(videos))
		})

		Convey("A lone always-false predicate rejects everything", func() {
			So(New(func(*media.Video) bool { return false }).Apply(videos), ShouldBeEmpty)
		})

		Convey("Input order and the input slice are preserved", func() {
			pipeline := New(TitleContains("launch"))
			kept := pipeline.Apply(videos)

			So(ids(kept), ShouldResemble, []string{"v1", "v3"})
			So(videos, ShouldHaveLength, 3)
		})
	})
}

func TestPredicates(t *testing.T) {
	published := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	v := video("v1", "Launch recap", published)

	Convey("Date predicates compare strictly", t, func() {
		So(PublishedAfter(published)(v), ShouldBeFalse)
		So(PublishedBefore(published)(v), ShouldBeFalse)
		So(PublishedAfter(published.Add(-time.Hour))(v), ShouldBeTrue)
		So(PublishedBefore(published.Add(time.Hour))(v), ShouldBeTrue)
	})

	Convey("Title matching ignores case for substrings", t, func() {
		So(TitleContains("LAUNCH")(v), ShouldBeTrue)
		So(TitleContains("missing")(v), ShouldBeFalse)
	})

	Convey("Regexp matching uses the compiled pattern verbatim", t, func() {
		So(TitleMatches(regexp.MustCompile(`^Launch`))(v), ShouldBeTrue)
		So(TitleMatches(regexp.MustCompile(`^recap`))(v), ShouldBeFalse)
	})
}
