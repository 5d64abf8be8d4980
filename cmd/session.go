package cmd

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/viper"
	"github.com/ytgrab-cli/ytgrab/auth"
	"github.com/ytgrab-cli/ytgrab/catalog"
	"github.com/ytgrab-cli/ytgrab/channel"
	"github.com/ytgrab-cli/ytgrab/key"
	"github.com/ytgrab-cli/ytgrab/query"
)

// apiKey resolves the catalog credential: config first, OS keyring second.
func apiKey() (string, error) {
	if k := viper.GetString(key.APIKey); k != "" {
		return k, nil
	}

	if k, err := auth.GetAPIKey(); err == nil && k != "" {
		return k, nil
	}

	return "", errors.New(`catalog API key is not set, run "ytgrab auth set" or set ` + key.APIKey)
}

// newSession builds a channel session over an authenticated catalog client.
func newSession() (*channel.Session, error) {
	k, err := apiKey()
	if err != nil {
		return nil, err
	}

	return channel.NewSession(catalog.NewClient(k)), nil
}

// resolveChannel resolves the configured channel name, prompting for one when
// no name is configured.
func resolveChannel(ctx context.Context, session *channel.Session) error {
	name := viper.GetString(key.ChannelDefault)

	if name == "" {
		input := survey.Input{
			Message: "Channel name:",
		}

		if viper.GetBool(key.SearchShowQuerySuggestions) {
			input.Suggest = query.SuggestMany
		}

		if err := survey.AskOne(&input, &name, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	_, err := session.ResolveChannel(ctx, name)
	return err
}
