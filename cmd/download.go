package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytgrab-cli/ytgrab/channel"
	"github.com/ytgrab-cli/ytgrab/download"
	"github.com/ytgrab-cli/ytgrab/filter"
	"github.com/ytgrab-cli/ytgrab/icon"
	"github.com/ytgrab-cli/ytgrab/key"
	"github.com/ytgrab-cli/ytgrab/media"
	"github.com/ytgrab-cli/ytgrab/util"
	"github.com/ytgrab-cli/ytgrab/where"
)

const dateLayout = "2006-01-02"

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().BoolP("all", "a", false, "Download the channel's full uploads list instead of a playlist")
	downloadCmd.Flags().StringP("output", "o", "", "Directory media files are materialized into")
	downloadCmd.Flags().BoolP("thumbnails", "t", false, "Also fetch the best-resolution thumbnail next to each video")
	downloadCmd.Flags().String("after", "", "Keep videos published after this date (YYYY-MM-DD)")
	downloadCmd.Flags().String("before", "", "Keep videos published before this date (YYYY-MM-DD)")
	downloadCmd.Flags().String("title-contains", "", "Keep videos whose title contains this substring")
	downloadCmd.Flags().String("title-regex", "", "Keep videos whose title matches this regular expression")

	lo.Must0(viper.BindPFlag(key.DownloadThumbnails, downloadCmd.Flags().Lookup("thumbnails")))
}

// downloadCmd transfers the videos of a playlist, or of the whole channel.
var downloadCmd = &cobra.Command{
	Use:   "download [playlist]",
	Short: "Download the videos of a channel playlist or the full uploads list",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		all := lo.Must(cmd.Flags().GetBool("all"))

		session, err := newSession()
		handleErr(err)
		handleErr(resolveChannel(ctx, session))

		var videos []*media.Video
		var subdir string

		switch {
		case all:
			videos, err = session.UploadsVideos(ctx)
			handleErr(err)
			subdir = session.ChannelName().OrElse("uploads")
		case len(args) == 1:
			videos, err = session.PlaylistVideos(ctx, args[0])
			handleErr(err)
			subdir = args[0]
		default:
			title, err := pickPlaylist(ctx, session)
			handleErr(err)
			videos, err = session.PlaylistVideos(ctx, title)
			handleErr(err)
			subdir = title
		}

		pipeline, err := buildPipeline(cmd)
		handleErr(err)

		dir := lo.Must(cmd.Flags().GetString("output"))
		if dir == "" {
			dir = filepath.Join(where.Downloads(), subdir)
		}

		manager := download.NewManager(
			download.YtdlpExtractor{},
			dir,
			viper.GetBool(key.DownloadThumbnails),
		)

		report, err := manager.Run(ctx, videos, pipeline)
		handleErr(err)

		if report.Ok() {
			fmt.Printf("%s %s\n", icon.Get(icon.Success), report)
			return
		}

		fmt.Printf("%s %s\n", icon.Get(icon.Warning), report)
		for _, failure := range report.Failures {
			fmt.Printf("  %s %s\n", icon.Get(icon.Fail), failure)
		}
	},
}

// pickPlaylist lets the user choose one of the channel's playlists.
func pickPlaylist(ctx context.Context, session *channel.Session) (string, error) {
	index, err := session.Playlists(ctx)
	if err != nil {
		return "", err
	}

	titles := lo.Keys(index.Items)
	sort.Strings(titles)

	prompt := survey.Select{
		Message: "Playlist:",
		Options: titles,
		Description: func(value string, _ int) string {
			playlist := index.Items[value]
			return util.Quantify(playlist.VideoCount, "video", "videos")
		},
	}

	var title string
	err = survey.AskOne(&prompt, &title)
	return title, err
}

// buildPipeline turns the filter flags into a predicate pipeline.
func buildPipeline(cmd *cobra.Command) (*filter.Pipeline, error) {
	pipeline := filter.New()

	if after := lo.Must(cmd.Flags().GetString("after")); after != "" {
		t, err := time.Parse(dateLayout, after)
		if err != nil {
			return nil, fmt.Errorf("invalid --after date %q: %w", after, err)
		}
		pipeline.Add(filter.PublishedAfter(t))
	}

	if before := lo.Must(cmd.Flags().GetString("before")); before != "" {
		t, err := time.Parse(dateLayout, before)
		if err != nil {
			return nil, fmt.Errorf("invalid --before date %q: %w", before, err)
		}
		pipeline.Add(filter.PublishedBefore(t))
	}

	if substring := lo.Must(cmd.Flags().GetString("title-contains")); substring != "" {
		pipeline.Add(filter.TitleContains(substring))
	}

	if pattern := lo.Must(cmd.Flags().GetString("title-regex")); pattern != "" {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid --title-regex %q: %w", pattern, err)
		}
		pipeline.Add(filter.TitleMatches(compiled))
	}

	return pipeline, nil
}
