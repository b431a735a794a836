// Package api is a small client for the Relax web API. Every call is a single
// GET bounded by a timeout; failures of any kind come back as
// *errors.NetworkError and are never retried.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/relax/internal/logger"
	relaxerrors "github.com/alexisbeaulieu97/relax/pkg/errors"
)

const (
	defaultQuoteTimeout = 5 * time.Second
	defaultMediaTimeout = 10 * time.Second

	maxBodyBytes = 1 << 20
)

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeouts   Timeouts
	UserAgent  string
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// Client fetches quotes and media from the Relax API.
type Client struct {
	base      *url.URL
	http      *http.Client
	timeouts  Timeouts
	userAgent string
	log       *logger.Logger
}

// NewClient validates the base URL and returns a ready client.
func NewClient(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", opts.BaseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	timeouts := opts.Timeouts
	if timeouts.Quote <= 0 {
		timeouts.Quote = defaultQuoteTimeout
	}
	if timeouts.Media <= 0 {
		timeouts.Media = defaultMediaTimeout
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "relax"
	}

	return &Client{
		base:      base,
		http:      httpClient,
		timeouts:  timeouts,
		userAgent: userAgent,
		log:       opts.Logger.Component("api"),
	}, nil
}

// FetchQuote requests a random quote.
func (c *Client) FetchQuote(ctx context.Context) (Quote, error) {
	var quote Quote
	if err := c.get(ctx, QuotePath, c.timeouts.Quote, &quote); err != nil {
		return Quote{}, err
	}
	return quote, nil
}

// FetchGif requests a calming gif.
func (c *Client) FetchGif(ctx context.Context) (Media, error) {
	return c.fetchMedia(ctx, GifPath)
}

// FetchMeme requests a wholesome meme.
func (c *Client) FetchMeme(ctx context.Context) (Media, error) {
	return c.fetchMedia(ctx, MemePath)
}

// Health queries the server health endpoint.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var health Health
	if err := c.get(ctx, HealthPath, c.timeouts.Quote, &health); err != nil {
		return Health{}, err
	}
	return health, nil
}

func (c *Client) fetchMedia(ctx context.Context, path string) (Media, error) {
	var media Media
	if err := c.get(ctx, path, c.timeouts.Media, &media); err != nil {
		return Media{}, err
	}
	if media.URL == "" {
		return Media{}, relaxerrors.NewNetworkError(path, 0, fmt.Errorf("response carried no url"))
	}
	return media, nil
}

func (c *Client) get(ctx context.Context, path string, timeout time.Duration, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := c.base.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return relaxerrors.NewNetworkError(path, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Endpoint(path).Error(err, "request failed")
		return relaxerrors.NewNetworkError(path, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		c.log.Endpoint(path).With("status", resp.StatusCode).Warn("unexpected status")
		return relaxerrors.NewNetworkError(path, resp.StatusCode, nil)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		c.log.Endpoint(path).Error(err, "decode response")
		return relaxerrors.NewNetworkError(path, 0, fmt.Errorf("decode response: %w", err))
	}

	c.log.Endpoint(path).With("elapsed", time.Since(started).String()).Debug("request completed")
	return nil
}
