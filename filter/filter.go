// Package filter selects subsets of video sequences by composable predicates.
package filter

import (
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/ytgrab-cli/ytgrab/media"
)

// Predicate reports whether a video should be kept.
type Predicate func(*media.Video) bool

// Pipeline combines predicates disjunctively: a video passes when any
// predicate accepts it. An empty pipeline passes everything.
type Pipeline struct {
	predicates []Predicate
}

// New returns a pipeline over the given predicates.
func New(predicates ...Predicate) *Pipeline {
	return &Pipeline{predicates: predicates}
}

// Add appends a predicate and returns the pipeline for chaining.
func (p *Pipeline) Add(predicate Predicate) *Pipeline {
	p.predicates = append(p.predicates, predicate)
	return p
}

// Empty reports whether no predicates are registered.
func (p *Pipeline) Empty() bool {
	return len(p.predicates) == 0
}

// Apply returns the videos that pass the pipeline, preserving input order.
// The input slice is never mutated.
func (p *Pipeline) Apply(videos []*media.Video) []*media.Video {
	if p.Empty() {
		return videos
	}

	return lo.Filter(videos, func(video *media.Video, _ int) bool {
		return lo.SomeBy(p.predicates, func(predicate Predicate) bool {
			return predicate(video)
		})
	})
}

// PublishedAfter keeps videos published strictly after t.
func PublishedAfter(t time.Time) Predicate {
	return func(video *media.Video) bool {
		return video.PublishedAt.After(t)
	}
}

// PublishedBefore keeps videos published strictly before t.
func PublishedBefore(t time.Time) Predicate {
	return func(video *media.Video) bool {
		return video.PublishedAt.Before(t)
	}
}

// TitleContains keeps videos whose title contains the substring, case-insensitively.
func TitleContains(substring string) Predicate {
	lowered := strings.ToLower(substring)
	return func(video *media.Video) bool {
		return strings.Contains(strings.ToLower(video.Title), lowered)
	}
}

// TitleMatches keeps videos whose title matches the compiled pattern.
func TitleMatches(pattern *regexp.Regexp) Predicate {
	return func(video *media.Video) bool {
		return pattern.MatchString(video.Title)
	}
}
