package cmd

import (
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ytgrab-cli/ytgrab/color"
	"github.com/ytgrab-cli/ytgrab/icon"
	"github.com/ytgrab-cli/ytgrab/style"
	"github.com/ytgrab-cli/ytgrab/util"
)

func init() {
	rootCmd.AddCommand(playlistsCmd)
	playlistsCmd.Flags().BoolP("title-only", "T", false, "Print playlist titles only, one per line")
}

// playlistsCmd lists the playlists of the resolved channel.
var playlistsCmd = &cobra.Command{
	Use:   "playlists",
	Short: "List the playlists of a channel",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		titleOnly := lo.Must(cmd.Flags().GetBool("title-only"))

		session, err := newSession()
		handleErr(err)
		handleErr(resolveChannel(ctx, session))

		index, err := session.Playlists(ctx)
		handleErr(err)

		titles := lo.Keys(index.Items)
		sort.Strings(titles)

		if titleOnly {
			for _, title := range titles {
				cmd.Println(title)
			}
			return
		}

		header := style.Title(session.ChannelName().OrElse("channel"))
		cmd.Printf("%s %s\n\n", header, style.Faint(util.Quantify(index.Total, "playlist", "playlists")))

		for _, title := range titles {
			playlist := index.Items[title]
			cmd.Printf("%s %s %s\n",
				icon.Get(icon.Playlist),
				style.Fg(color.Yellow)(title),
				style.Faint(util.Quantify(playlist.VideoCount, "video", "videos")),
			)
		}
	},
}
