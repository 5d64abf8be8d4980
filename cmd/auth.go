package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/ytgrab-cli/ytgrab/auth"
	"github.com/ytgrab-cli/ytgrab/color"
	"github.com/ytgrab-cli/ytgrab/icon"
	"github.com/ytgrab-cli/ytgrab/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authGetCmd)
	authCmd.AddCommand(authDeleteCmd)
}

// authCmd manages the catalog API key stored in the OS keyring.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the catalog API key in the OS keyring",
}

var authSetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store the catalog API key in the OS keyring",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var apiKey string

		if len(args) == 1 {
			apiKey = args[0]
		} else {
			password := survey.Password{Message: "Catalog API key:"}
			handleErr(survey.AskOne(&password, &apiKey, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetAPIKey(apiKey))
		fmt.Printf("%s API key stored\n", icon.Get(icon.Success))
	},
}

var authGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the stored catalog API key",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey, err := auth.GetAPIKey()
		handleErr(err)
		cmd.Println(apiKey)
	},
}

var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the catalog API key from the OS keyring",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteAPIKey())
		fmt.Printf("%s API key removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
