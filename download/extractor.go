package download

import (
	"context"
	"path/filepath"

	"github.com/lrstanley/go-ytdlp"
)

// formatPolicy prefers an mp4 video stream with m4a audio, falling back to
// the best single mp4, then to whatever the extractor considers best.
const formatPolicy = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"

// Extractor fetches the media stream behind a watch URL into a directory.
type Extractor interface {
	Extract(ctx context.Context, watchURL, dir string) error
}

// YtdlpExtractor drives the yt-dlp binary through go-ytdlp. Files land as
// <dir>/<video id>.mp4, with separate streams merged into an mp4 container.
type YtdlpExtractor struct{}

func (YtdlpExtractor) Extract(ctx context.Context, watchURL, dir string) error {
	dl := ytdlp.New().
		Format(formatPolicy).
		MergeOutputFormat("mp4").
		ForceOverwrites().
		Output(filepath.Join(dir, "%(id)s.%(ext)s"))

	_, err := dl.Run(ctx, watchURL)
	return err
}

var _ Extractor = YtdlpExtractor{}
