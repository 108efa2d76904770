// Package youtube extracts video URLs from question text and fetches video
// metadata. Video content itself is never downloaded.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"golang.org/x/net/html"
)

// watchURLPattern matches YouTube watch and short-link URLs.
var watchURLPattern = regexp.MustCompile(`(?i)https?://(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/)[\w-]+`)

// defaultOEmbedURL is YouTube's public oEmbed endpoint; it returns video
// metadata without an API key.
const defaultOEmbedURL = "https://www.youtube.com/oembed"

// ExtractURL returns the first YouTube watch or short-link URL in question,
// or the empty string.
func ExtractURL(question string) string {
	return watchURLPattern.FindString(question)
}

// Metadata holds the title and description of a video.
type Metadata struct {
	Title       string
	Description string
}

// Client fetches video metadata over HTTP.
type Client struct {
	client    *http.Client
	oembedURL string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithOEmbedURL overrides the oEmbed endpoint (tests, proxies).
func WithOEmbedURL(u string) ClientOption {
	return func(c *Client) { c.oembedURL = u }
}

// NewClient returns a Client whose requests time out after timeout.
func NewClient(timeout time.Duration, opts ...ClientOption) *Client {
	c := &Client{
		client:    &http.Client{Timeout: timeout},
		oembedURL: defaultOEmbedURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Metadata returns the title and description of the video at videoURL.
// The title comes from the oEmbed endpoint; the description from the watch
// page's meta tags (empty when the page carries none).
func (c *Client) Metadata(ctx context.Context, videoURL string) (*Metadata, error) {
	title, err := c.fetchTitle(ctx, videoURL)
	if err != nil {
		return nil, err
	}
	description, err := c.fetchDescription(ctx, videoURL)
	if err != nil {
		return nil, err
	}
	return &Metadata{Title: title, Description: description}, nil
}

func (c *Client) fetchTitle(ctx context.Context, videoURL string) (string, error) {
	endpoint := c.oembedURL + "?format=json&url=" + url.QueryEscape(videoURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build oembed request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch video metadata: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch video metadata: server returned %d", resp.StatusCode)
	}
	var payload struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode video metadata: %w", err)
	}
	return payload.Title, nil
}

func (c *Client) fetchDescription(ctx context.Context, videoURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, videoURL, nil)
	if err != nil {
		return "", fmt.Errorf("build watch page request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch watch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch watch page: server returned %d", resp.StatusCode)
	}
	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse watch page: %w", err)
	}
	return metaDescription(doc), nil
}

// metaDescription returns the content of the page's description meta tag,
// preferring name="description" over property="og:description".
func metaDescription(doc *html.Node) string {
	var plain, og string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "meta" {
			var name, property, content string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "name":
					name = attr.Val
				case "property":
					property = attr.Val
				case "content":
					content = attr.Val
				}
			}
			if name == "description" && plain == "" {
				plain = content
			}
			if property == "og:description" && og == "" {
				og = content
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if plain != "" {
		return plain
	}
	return og
}
