package yatta

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	simplejson "github.com/bitly/go-simplejson"
)

// BaseURL is the prefix for all API requests.
const BaseURL = "https://sr.yatta.moe/api/v2"

// endpointVersion is the unversioned endpoint serving the current API
// version token.
const endpointVersion = "version"

// requestURL builds the full URL for an endpoint. Static endpoints live
// outside the language segment; everything else is served per language.
func (c *Client) requestURL(endpoint string, static bool) string {
	if static {
		return fmt.Sprintf("%s/static/%s", c.baseURL, endpoint)
	}
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.lang, endpoint)
}

// request performs a GET against the API, honoring the response cache
// when useCache is set. Versioned endpoints get the current version token
// appended so cache keys roll over when the remote data changes.
func (c *Client) request(ctx context.Context, endpoint string, static, useCache bool) ([]byte, error) {
	if !c.started {
		return nil, ErrNotStarted
	}

	url := c.requestURL(endpoint, static)
	if !static && endpoint != endpointVersion {
		version, err := c.ensureVersion(ctx)
		if err != nil {
			return nil, err
		}
		url = fmt.Sprintf("%s?vh=%s", url, version)
	}

	if useCache {
		cached, ok, err := c.store.Get(url)
		if err != nil {
			c.logger.Warn("cache read failed", "url", url, "error", err)
		} else if ok {
			c.logger.Debug("cache hit", "url", url)
			return cached, nil
		}
	}

	c.logger.Debug("requesting", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if err := c.store.Set(url, body, c.cacheTTL); err != nil {
		c.logger.Warn("cache write failed", "url", url, "error", err)
	}

	return body, nil
}

// fetchData requests an endpoint and peels the response envelope down to
// its data node.
func (c *Client) fetchData(ctx context.Context, endpoint string, static, useCache bool) (*simplejson.Json, error) {
	body, err := c.request(ctx, endpoint, static, useCache)
	if err != nil {
		return nil, err
	}
	js, err := simplejson.NewJson(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	data, ok := js.CheckGet("data")
	if !ok {
		return nil, fmt.Errorf("response has no data field")
	}
	return data, nil
}

// ensureVersion returns the current API version token, fetching and
// persisting a fresh one when the stored token is missing or stale.
func (c *Client) ensureVersion(ctx context.Context) (string, error) {
	c.versionMu.Lock()
	defer c.versionMu.Unlock()

	if c.version != "" && time.Since(c.versionAt) < versionTTL {
		return c.version, nil
	}

	token, at, err := c.versions.load()
	if err == nil && token != "" && time.Since(at) < versionTTL {
		c.version = token
		c.versionAt = at
		return token, nil
	}

	token, err = c.fetchVersion(ctx)
	if err != nil {
		return "", err
	}

	now := time.Now()
	if err := c.versions.save(token, now); err != nil {
		c.logger.Warn("failed to persist version token", "error", err)
	}
	c.version = token
	c.versionAt = now
	c.logger.Debug("refreshed version token", "version", token)
	return token, nil
}

// fetchVersion queries the version endpoint directly, bypassing the
// response cache. A cached version response would defeat the point of
// the token.
func (c *Client) fetchVersion(ctx context.Context) (string, error) {
	data, err := c.fetchData(ctx, endpointVersion, false, false)
	if err != nil {
		return "", fmt.Errorf("failed to fetch version: %w", err)
	}
	token, err := data.Get("vh").String()
	if err != nil || token == "" {
		return "", fmt.Errorf("version response has no vh token")
	}
	return token, nil
}
