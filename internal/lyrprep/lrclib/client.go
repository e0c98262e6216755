// Package lrclib はLRCLIB APIから歌詞を取得するクライアントを提供します
package lrclib

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/shiroemons/go-lyrprep/internal/lyrprep/interfaces"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/models"
)

const userAgent = "lyrprep (https://github.com/shiroemons/go-lyrprep)"

var (
	// ErrMissingTrack は検索にトラック名が指定されていない場合のエラー
	ErrMissingTrack = errors.New("lrclib: track name is required")

	// ErrNotFound はレコードが存在しない場合のエラー
	ErrNotFound = errors.New("lrclib: record not found")
)

// StatusError は成功以外のHTTPステータスを表します
type StatusError struct {
	Code int
	URL  string
}

// Error はエラーメッセージを返します
func (e *StatusError) Error() string {
	return fmt.Sprintf("lrclib: unexpected status %d from %s", e.Code, e.URL)
}

// Options はClientの設定
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	RateLimit  float64 // 1秒あたりのリクエスト数。0以下は無制限
	Cache      interfaces.Cache
	Logger     interfaces.Logger
}

// Client はLRCLIB APIのクライアント
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      interfaces.Cache
	logger     interfaces.Logger
}

// NewClient は新しいClientを作成します
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	// バースト1: 最初のリクエストは即座に、以降は上限に従って待機
	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: httpClient,
		limiter:    limiter,
		cache:      opts.Cache,
		logger:     opts.Logger,
	}
}

// Search は条件に一致するレコードを検索します
func (c *Client) Search(ctx context.Context, query models.Query) ([]models.Record, error) {
	track := strings.TrimSpace(query.Track)
	if track == "" {
		return nil, ErrMissingTrack
	}

	params := url.Values{}
	params.Set("track_name", track)
	if artist := strings.TrimSpace(query.Artist); artist != "" {
		params.Set("artist_name", artist)
	}
	if album := strings.TrimSpace(query.Album); album != "" {
		params.Set("album_name", album)
	}

	var records []models.Record
	endpoint := c.baseURL + "/api/search?" + params.Encode()
	if err := c.getJSON(ctx, "lrclib:search:"+params.Encode(), endpoint, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get はIDを指定してレコードを取得します
func (c *Client) Get(ctx context.Context, id int) (*models.Record, error) {
	var record models.Record
	endpoint := c.baseURL + "/api/get/" + strconv.Itoa(id)
	if err := c.getJSON(ctx, "lrclib:get:"+strconv.Itoa(id), endpoint, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// getJSON はキャッシュを確認し、なければAPIから取得してJSONを復号します
func (c *Client) getJSON(ctx context.Context, key, endpoint string, v any) error {
	if body, ok := c.cached(key); ok {
		if err := json.Unmarshal(body, v); err == nil {
			c.debugf("cache hit: %s", key)
			return nil
		}
		c.warnf("dropping corrupt cache entry %s", key)
		if err := c.cache.Delete(key); err != nil {
			c.warnf("failed to delete %s: %v", key, err)
		}
	}

	body, err := c.fetch(ctx, endpoint)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("lrclib: decode response: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.Set(key, body); err != nil {
			c.warnf("failed to cache %s: %v", key, err)
		}
	}
	return nil
}

// fetch はレート制限に従ってGETリクエストを送信します
func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("lrclib: create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	c.debugf("GET %s", endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lrclib: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, URL: endpoint}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("lrclib: read response: %w", err)
	}
	return body, nil
}

func (c *Client) cached(key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, ok, err := c.cache.Get(key)
	if err != nil {
		c.warnf("cache lookup failed for %s: %v", key, err)
		return nil, false
	}
	return body, ok
}

func (c *Client) debugf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}

func (c *Client) warnf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Warnf(format, args...)
	}
}
