// Package download transfers media streams and thumbnails for selected videos.
package download

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ytgrab-cli/ytgrab/filesystem"
	"github.com/ytgrab-cli/ytgrab/filter"
	"github.com/ytgrab-cli/ytgrab/icon"
	"github.com/ytgrab-cli/ytgrab/log"
	"github.com/ytgrab-cli/ytgrab/media"
	"github.com/ytgrab-cli/ytgrab/network"
	"github.com/ytgrab-cli/ytgrab/util"
)

const (
	thumbDirname    = "thumb"
	thumbSuffix     = "_thumb.jpg"
	labelMaxLength  = 30
	labelBreakpoint = "-"
)

// Report summarizes a batch transfer. Failures holds one entry per video
// that could not be fully transferred; the rest of the batch is unaffected.
type Report struct {
	Total     int
	Completed int
	Failures  []*TransferError
}

// Ok reports whether every selected video was transferred.
func (r *Report) Ok() bool {
	return len(r.Failures) == 0
}

func (r *Report) String() string {
	return fmt.Sprintf("%d / %d %s transferred, %d failed",
		r.Completed, r.Total, util.Quantify(r.Total, "video", "videos"), len(r.Failures))
}

// Manager runs batch transfers into a target directory.
type Manager struct {
	extractor  Extractor
	client     *http.Client
	dir        string
	thumbnails bool
}

// NewManager returns a manager writing under dir. The final path element is
// sanitized for the filesystem. When thumbnails is set, each video's best
// thumbnail is fetched next to the media file.
func NewManager(extractor Extractor, dir string, thumbnails bool) *Manager {
	parent, last := filepath.Split(dir)

	return &Manager{
		extractor:  extractor,
		client:     network.Client,
		dir:        filepath.Join(parent, util.SanitizeFilename(last)),
		thumbnails: thumbnails,
	}
}

// Dir returns the sanitized target directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Run transfers every video that passes the pipeline, sequentially and in
// order. A failed video is recorded in the report and skipped, never fatal.
func (m *Manager) Run(ctx context.Context, videos []*media.Video, pipeline *filter.Pipeline) (*Report, error) {
	selected := pipeline.Apply(videos)
	report := &Report{Total: len(selected)}

	if len(selected) == 0 {
		log.Warn("no videos selected, nothing to transfer")
		return report, nil
	}

	if err := filesystem.API().MkdirAll(m.dir, 0o755); err != nil {
		return nil, err
	}

	if m.thumbnails {
		if err := filesystem.API().MkdirAll(filepath.Join(m.dir, thumbDirname), 0o755); err != nil {
			return nil, err
		}
	}

	for i, video := range selected {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if err := m.transfer(ctx, video); err != nil {
			report.Failures = append(report.Failures, err)
			log.Errorf("%s %s", icon.Get(icon.Fail), err)
			continue
		}

		report.Completed++
		log.Successf("%s %s %d / %d", icon.Get(icon.Download), label(video.Title), i+1, len(selected))
	}

	log.Infof("%s", report)
	return report, nil
}

func (m *Manager) transfer(ctx context.Context, video *media.Video) *TransferError {
	if err := m.extractor.Extract(ctx, video.WatchURL(), m.dir); err != nil {
		return &TransferError{VideoID: video.ID, Stage: StageMedia, Cause: err}
	}

	if m.thumbnails {
		if err := m.thumbnail(ctx, video); err != nil {
			return &TransferError{VideoID: video.ID, Stage: StageThumbnail, Cause: err}
		}
	}

	return nil
}

// thumbnail fetches the video's best thumbnail rendition into the thumb
// subdirectory as <id>_thumb.jpg.
func (m *Manager) thumbnail(ctx context.Context, video *media.Video) error {
	if video.Thumbnail == "" {
		return fmt.Errorf("no thumbnail URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, video.Thumbnail, nil)
	if err != nil {
		return err
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	path := filepath.Join(m.dir, thumbDirname, video.ID+thumbSuffix)
	return filesystem.API().WriteReader(path, resp.Body)
}

// label shortens a title for progress lines: everything before the first
// dash, capped at 30 characters.
func label(title string) string {
	head, _, _ := strings.Cut(title, labelBreakpoint)
	if len(head) > labelMaxLength {
		head = head[:labelMaxLength]
	}
	return strings.TrimSpace(head)
}
