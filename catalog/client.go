// Package catalog provides a typed client for the remote channel catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ytgrab-cli/ytgrab/constant"
	"github.com/ytgrab-cli/ytgrab/log"
	"github.com/ytgrab-cli/ytgrab/network"
)

// ErrNotFound reports that a requested catalog entity does not exist.
var ErrNotFound = errors.New("catalog: not found")

// Client is the HTTP implementation of Service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	apiKey string
}

// NewClient returns a Client authenticated with the given API key,
// backed by the shared network client.
func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL:    constant.CatalogBaseURL,
		HTTPClient: network.Client,
		apiKey:     apiKey,
	}
}

// get performs an authenticated GET against a catalog endpoint and decodes the JSON response.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Error(err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("catalog: %s returned status code %d", endpoint, resp.StatusCode)
		log.Error(err)
		return err
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// searchResponse defines the anticipated JSON response structure for channel searches.
type searchResponse struct {
	Items []struct {
		Snippet struct {
			ChannelID    string `json:"channelId"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

// SearchChannels returns channel-type matches for a display name, best match first.
func (c *Client) SearchChannels(ctx context.Context, name string) ([]Channel, error) {
	log.Infof("searching catalog for channel %q", name)

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", name)
	params.Set("type", "channel")
	params.Set("maxResults", "1")

	var response searchResponse
	if err := c.get(ctx, "search", params, &response); err != nil {
		return nil, err
	}

	channels := make([]Channel, len(response.Items))
	for i, item := range response.Items {
		channels[i] = Channel{
			ID:    item.Snippet.ChannelID,
			Title: item.Snippet.ChannelTitle,
		}
	}

	log.Infof("catalog returned %d channel match(es)", len(channels))
	return channels, nil
}

// ListPlaylists returns all playlists owned by a channel together with the declared total.
func (c *Client) ListPlaylists(ctx context.Context, channelID string) (*PlaylistsPage, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails")
	params.Set("channelId", channelID)

	var page PlaylistsPage
	if err := c.get(ctx, "playlists", params, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// ListPlaylistItems returns one page of a playlist's items.
func (c *Client) ListPlaylistItems(ctx context.Context, playlistID, pageToken string, pageSize int) (*PlaylistItemsPage, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("playlistId", playlistID)
	params.Set("maxResults", strconv.Itoa(pageSize))
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var page PlaylistItemsPage
	if err := c.get(ctx, "playlistItems", params, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// contentDetailsResponse defines the anticipated JSON response structure for channel content-details lookups.
type contentDetailsResponse struct {
	Items []struct {
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// UploadsPlaylistID resolves the id of the platform-managed uploads list of a channel.
func (c *Client) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("id", channelID)

	var response contentDetailsResponse
	if err := c.get(ctx, "channels", params, &response); err != nil {
		return "", err
	}

	if len(response.Items) == 0 {
		return "", fmt.Errorf("%w: channel %s", ErrNotFound, channelID)
	}

	return response.Items[0].ContentDetails.RelatedPlaylists.Uploads, nil
}

var _ Service = (*Client)(nil)
