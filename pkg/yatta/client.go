// Package yatta is a typed client for the sr.yatta.moe Honkai: Star Rail
// game data API. It exposes read-only fetchers for characters, light
// cones, items, relic sets, books, messages, and changelogs, with
// response caching and API version gating handled internally.
package yatta

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/hsr-tools/yatta-go/pkg/cache"
)

const defaultUserAgent = "yatta-go"

// Config controls client construction. The zero value of every field has
// a usable default.
type Config struct {
	// Lang selects the response language. Defaults to LangEN.
	Lang Language
	// BaseURL overrides the API base URL. Defaults to BaseURL.
	BaseURL string
	// CacheTTL is how long responses stay cached. Defaults to one hour.
	CacheTTL time.Duration
	// CacheDir holds the response cache database and the version token
	// file. Defaults to .cache/yatta.
	CacheDir string
	// Headers are sent with every request.
	Headers map[string]string
	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
	// Store overrides the SQLite response cache. A caller-provided store
	// is not closed by Close.
	Store cache.Store
	// Strict makes list fetchers fail on the first malformed record
	// instead of skipping it with a warning.
	Strict bool
	// Logger receives request and cache diagnostics. Defaults to the
	// global slog logger.
	Logger *slog.Logger
}

// Client is a typed API client. Start must be called before any fetcher.
type Client struct {
	lang       Language
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
	cacheTTL   time.Duration
	store      cache.Store
	ownStore   bool
	cacheDir   string
	strict     bool
	logger     *slog.Logger
	started    bool

	versions  *versionStore
	version   string
	versionAt time.Time
	versionMu sync.Mutex
}

// NewClient creates a client from cfg. A nil cfg uses all defaults.
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}

	lang := cfg.Lang
	if lang == "" {
		lang = LangEN
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = BaseURL
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}
	cacheDir := cfg.CacheDir
	if cacheDir == "" {
		cacheDir = filepath.Join(".cache", "yatta")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	headers := make(map[string]string, len(cfg.Headers)+1)
	headers["User-Agent"] = defaultUserAgent
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	return &Client{
		lang:       lang,
		baseURL:    baseURL,
		httpClient: httpClient,
		headers:    headers,
		cacheTTL:   cacheTTL,
		store:      cfg.Store,
		cacheDir:   cacheDir,
		strict:     cfg.Strict,
		logger:     logger,
		versions:   newVersionStore(cacheDir),
	}
}

// Start opens the response cache. It must be called once before the
// first fetch.
func (c *Client) Start() error {
	if c.started {
		return nil
	}
	if c.store == nil {
		store, err := cache.NewSQLiteStore(filepath.Join(c.cacheDir, "cache.db"))
		if err != nil {
			return fmt.Errorf("failed to open response cache: %w", err)
		}
		c.store = store
		c.ownStore = true
	}
	c.started = true
	return nil
}

// Close releases the response cache if the client owns it. Calling Close
// more than once is harmless.
func (c *Client) Close() error {
	if !c.started {
		return nil
	}
	c.started = false
	if c.ownStore {
		c.ownStore = false
		return c.store.Close()
	}
	return nil
}

// Language returns the response language the client was built with.
func (c *Client) Language() Language {
	return c.lang
}

// decodeList flattens the items map of a list response and decodes each
// record. In strict mode the first malformed record fails the whole
// fetch; otherwise it is skipped with a warning.
func decodeList[T any](c *Client, data []byte, entity string) ([]T, error) {
	records, err := keyedRecords(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s list: %w", entity, err)
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		var v T
		if err := json.Unmarshal(rec.Raw, &v); err != nil {
			if c.strict {
				return nil, fmt.Errorf("failed to decode %s %d: %w", entity, rec.ID, err)
			}
			c.logger.Warn("skipping malformed record", "entity", entity, "id", rec.ID, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// fetchList requests a list endpoint and decodes its items map.
func fetchList[T any](ctx context.Context, c *Client, endpoint, entity string, static, useCache bool) ([]T, error) {
	data, err := c.fetchData(ctx, endpoint, static, useCache)
	if err != nil {
		return nil, err
	}
	items, err := data.Get("items").Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s items: %w", entity, err)
	}
	return decodeList[T](c, items, entity)
}

// fetchDetail requests a detail endpoint and decodes its data node.
func fetchDetail[T any](ctx context.Context, c *Client, endpoint, entity string, id int, useCache bool) (*T, error) {
	data, err := c.fetchData(ctx, fmt.Sprintf("%s/%d", endpoint, id), false, useCache)
	if err != nil {
		return nil, err
	}
	raw, err := data.Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s %d: %w", entity, id, err)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to decode %s %d: %w", entity, id, err)
	}
	return &v, nil
}

// FetchBooks fetches the book list.
func (c *Client) FetchBooks(ctx context.Context, useCache bool) ([]Book, error) {
	return fetchList[Book](ctx, c, "book", "book", false, useCache)
}

// FetchBookDetail fetches one book with its series sections.
func (c *Client) FetchBookDetail(ctx context.Context, id int, useCache bool) (*BookDetail, error) {
	return fetchDetail[BookDetail](ctx, c, "book", "book", id, useCache)
}

// FetchCharacters fetches the character list.
func (c *Client) FetchCharacters(ctx context.Context, useCache bool) ([]Character, error) {
	return fetchList[Character](ctx, c, "avatar", "character", false, useCache)
}

// FetchCharacterDetail fetches one character with skills, traces,
// eidolons, upgrades, and profile data.
func (c *Client) FetchCharacterDetail(ctx context.Context, id int, useCache bool) (*CharacterDetail, error) {
	return fetchDetail[CharacterDetail](ctx, c, "avatar", "character", id, useCache)
}

// FetchItems fetches the item list.
func (c *Client) FetchItems(ctx context.Context, useCache bool) ([]Item, error) {
	return fetchList[Item](ctx, c, "item", "item", false, useCache)
}

// FetchItemDetail fetches one item with its sources and recipes.
func (c *Client) FetchItemDetail(ctx context.Context, id int, useCache bool) (*ItemDetail, error) {
	return fetchDetail[ItemDetail](ctx, c, "item", "item", id, useCache)
}

// FetchLightCones fetches the light cone list.
func (c *Client) FetchLightCones(ctx context.Context, useCache bool) ([]LightCone, error) {
	return fetchList[LightCone](ctx, c, "equipment", "light cone", false, useCache)
}

// FetchLightConeDetail fetches one light cone with its skill, upgrades,
// and ascension materials.
func (c *Client) FetchLightConeDetail(ctx context.Context, id int, useCache bool) (*LightConeDetail, error) {
	return fetchDetail[LightConeDetail](ctx, c, "equipment", "light cone", id, useCache)
}

// FetchMessages fetches the message list.
func (c *Client) FetchMessages(ctx context.Context, useCache bool) ([]Message, error) {
	return fetchList[Message](ctx, c, "message", "message", false, useCache)
}

// FetchMessageTypes fetches the message type labels keyed by type ID.
func (c *Client) FetchMessageTypes(ctx context.Context, useCache bool) (map[string]string, error) {
	data, err := c.fetchData(ctx, "message", false, useCache)
	if err != nil {
		return nil, err
	}
	raw, err := data.Get("types").Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to read message types: %w", err)
	}
	var types map[string]string
	if err := json.Unmarshal(raw, &types); err != nil {
		return nil, fmt.Errorf("failed to decode message types: %w", err)
	}
	return types, nil
}

// FetchRelicSets fetches the relic set list.
func (c *Client) FetchRelicSets(ctx context.Context, useCache bool) ([]RelicSet, error) {
	return fetchList[RelicSet](ctx, c, "relic", "relic set", false, useCache)
}

// FetchRelicSetDetail fetches one relic set with its pieces and set
// effects.
func (c *Client) FetchRelicSetDetail(ctx context.Context, id int, useCache bool) (*RelicSetDetail, error) {
	return fetchDetail[RelicSetDetail](ctx, c, "relic", "relic set", id, useCache)
}

// FetchChangelogs fetches the list of data changelogs. The record IDs
// come from the response map keys.
func (c *Client) FetchChangelogs(ctx context.Context, useCache bool) ([]Changelog, error) {
	data, err := c.fetchData(ctx, "changelog", true, useCache)
	if err != nil {
		return nil, err
	}
	raw, err := data.Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to read changelog list: %w", err)
	}
	records, err := keyedRecords(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode changelog list: %w", err)
	}
	out := make([]Changelog, 0, len(records))
	for _, rec := range records {
		var cl Changelog
		if err := json.Unmarshal(rec.Raw, &cl); err != nil {
			if c.strict {
				return nil, fmt.Errorf("failed to decode changelog %d: %w", rec.ID, err)
			}
			c.logger.Warn("skipping malformed record", "entity", "changelog", "id", rec.ID, "error", err)
			continue
		}
		cl.ID = rec.ID
		out = append(out, cl)
	}
	return out, nil
}

// FetchManualAvatar fetches the character guide metadata: a map of field
// identifiers to their localized labels.
func (c *Client) FetchManualAvatar(ctx context.Context, useCache bool) (map[string]map[string]string, error) {
	data, err := c.fetchData(ctx, "manualAvatar", false, useCache)
	if err != nil {
		return nil, err
	}
	raw, err := data.Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to read manual avatar data: %w", err)
	}
	var manual map[string]map[string]string
	if err := json.Unmarshal(raw, &manual); err != nil {
		return nil, fmt.Errorf("failed to decode manual avatar data: %w", err)
	}
	return manual, nil
}

// FetchLatestVersion fetches the current API version token, always
// bypassing the response cache, and persists it for later runs.
func (c *Client) FetchLatestVersion(ctx context.Context) (string, error) {
	if !c.started {
		return "", ErrNotStarted
	}

	c.versionMu.Lock()
	defer c.versionMu.Unlock()

	token, err := c.fetchVersion(ctx)
	if err != nil {
		return "", err
	}
	now := time.Now()
	if err := c.versions.save(token, now); err != nil {
		c.logger.Warn("failed to persist version token", "error", err)
	}
	c.version = token
	c.versionAt = now
	return token, nil
}
