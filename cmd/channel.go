package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ytgrab-cli/ytgrab/color"
	"github.com/ytgrab-cli/ytgrab/icon"
	"github.com/ytgrab-cli/ytgrab/open"
	"github.com/ytgrab-cli/ytgrab/style"
	"github.com/ytgrab-cli/ytgrab/util"
)

func init() {
	rootCmd.AddCommand(channelCmd)
	channelCmd.Flags().BoolP("id-only", "i", false, "Print the channel id only")
	channelCmd.Flags().BoolP("open", "O", false, "Open the channel page in the default browser")
}

// channelCmd resolves a channel and displays its catalog identifiers.
var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Resolve a channel name and display its catalog identifiers",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		idOnly := lo.Must(cmd.Flags().GetBool("id-only"))

		session, err := newSession()
		handleErr(err)
		handleErr(resolveChannel(ctx, session))

		id := session.ChannelID().MustGet()

		if idOnly {
			cmd.Println(id)
			return
		}

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Start("https://www.youtube.com/channel/" + id))
		}

		uploadsID, err := session.UploadsID(ctx)
		handleErr(err)

		index, err := session.Playlists(ctx)
		handleErr(err)

		faint := style.Faint
		value := style.Fg(color.Yellow)

		cmd.Printf("%s %s\n\n", icon.Get(icon.Channel), style.Title(session.ChannelName().MustGet()))
		cmd.Printf("%s      %s\n", faint("Id"), value(id))
		cmd.Printf("%s %s\n", faint("Uploads"), value(uploadsID))
		cmd.Printf("%s   %s\n", faint("Lists"), value(util.Quantify(index.Total, "playlist", "playlists")))
	},
}
