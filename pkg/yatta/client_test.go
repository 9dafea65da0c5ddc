package yatta

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hsr-tools/yatta-go/pkg/cache"
)

// newTestServer serves canned responses for the endpoints the tests hit
// and counts version probes.
func newTestServer(t *testing.T, versionCalls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/en/version"):
			if versionCalls != nil {
				versionCalls.Add(1)
			}
			w.Write([]byte(`{"data": {"vh": "44V5"}}`))
		case strings.HasSuffix(r.URL.Path, "/en/avatar"):
			w.Write([]byte(`{"data": {"items": {
				"1102": {"id": 1102, "name": "Seele", "rank": 5, "icon": "avatarIcon1102",
					"types": {"pathType": "Rogue", "combatType": "Quantum"},
					"route": "seele", "beta": false, "release": 1682553600},
				"1001": {"id": 1001, "name": "March 7th", "rank": 4, "icon": "avatarIcon1001",
					"types": {"pathType": "Knight", "combatType": "Ice"},
					"route": "march-7th", "beta": false, "release": 1682553600},
				"9999": {"name": "Broken", "rank": 4}
			}}}`))
		case strings.HasSuffix(r.URL.Path, "/en/avatar/0"):
			http.NotFound(w, r)
		case strings.HasSuffix(r.URL.Path, "/en/message"):
			w.Write([]byte(`{"data": {
				"items": {
					"1102000": {"id": 1102000, "contacts": {"name": "Seele", "signature": null, "type": 1, "icon": "avatarIcon1102"}, "sectionCount": 4, "route": null}
				},
				"types": {"1": "Character", "2": "NPC"}
			}}`))
		case strings.HasSuffix(r.URL.Path, "/static/changelog"):
			w.Write([]byte(`{"data": {
				"17": {"version": "2.7", "items": {"avatar": ["1401"]}, "beta": false}
			}}`))
		case strings.HasSuffix(r.URL.Path, "/en/manualAvatar"):
			w.Write([]byte(`{"data": {
				"attackBase": {"name": "Base ATK", "description": "Attack at level 1."}
			}}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestClient(t *testing.T, server *httptest.Server, strict bool) *Client {
	t.Helper()
	client := NewClient(&Config{
		BaseURL:  server.URL,
		CacheDir: t.TempDir(),
		Store:    cache.NewMemoryStore(),
		Strict:   strict,
	})
	if err := client.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestClientNotStarted(t *testing.T) {
	client := NewClient(nil)
	_, err := client.FetchCharacters(context.Background(), false)
	if !errors.Is(err, ErrNotStarted) {
		t.Errorf("Expected ErrNotStarted, got %v", err)
	}
	if _, err := client.FetchLatestVersion(context.Background()); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Expected ErrNotStarted, got %v", err)
	}
}

func TestFetchCharactersSkipsMalformed(t *testing.T) {
	server := newTestServer(t, nil)
	defer server.Close()
	client := newTestClient(t, server, false)

	characters, err := client.FetchCharacters(context.Background(), false)
	if err != nil {
		t.Fatalf("FetchCharacters failed: %v", err)
	}
	// The record without an id or icon is dropped.
	if len(characters) != 2 {
		t.Fatalf("Expected 2 characters, got %d", len(characters))
	}
	// Records come back ordered by map key.
	if characters[0].ID != 1001 || characters[1].ID != 1102 {
		t.Errorf("Unexpected order: %d, %d", characters[0].ID, characters[1].ID)
	}
	for _, char := range characters {
		if char.Rarity != 4 && char.Rarity != 5 {
			t.Errorf("Unexpected rarity %d for %d", char.Rarity, char.ID)
		}
		if !strings.HasSuffix(char.Icon, ".png") {
			t.Errorf("Expected .png icon, got %q", char.Icon)
		}
	}
}

func TestFetchCharactersStrictFails(t *testing.T) {
	server := newTestServer(t, nil)
	defer server.Close()
	client := newTestClient(t, server, true)

	_, err := client.FetchCharacters(context.Background(), false)
	if err == nil {
		t.Fatal("Expected strict mode to fail on malformed record")
	}
}

func TestFetchCharacterDetailNotFound(t *testing.T) {
	server := newTestServer(t, nil)
	defer server.Close()
	client := newTestClient(t, server, false)

	_, err := client.FetchCharacterDetail(context.Background(), 0, false)
	if !errors.Is(err, ErrDataNotFound) {
		t.Errorf("Expected ErrDataNotFound, got %v", err)
	}
}

func TestVersionFetchedOncePerRun(t *testing.T) {
	var versionCalls atomic.Int64
	server := newTestServer(t, &versionCalls)
	defer server.Close()
	client := newTestClient(t, server, false)

	ctx := context.Background()
	if _, err := client.FetchCharacters(ctx, false); err != nil {
		t.Fatalf("FetchCharacters failed: %v", err)
	}
	if _, err := client.FetchMessages(ctx, false); err != nil {
		t.Fatalf("FetchMessages failed: %v", err)
	}
	if got := versionCalls.Load(); got != 1 {
		t.Errorf("Expected 1 version probe, got %d", got)
	}
}

func TestVersionPersistedAcrossClients(t *testing.T) {
	var versionCalls atomic.Int64
	server := newTestServer(t, &versionCalls)
	defer server.Close()

	dir := t.TempDir()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		client := NewClient(&Config{
			BaseURL:  server.URL,
			CacheDir: dir,
			Store:    cache.NewMemoryStore(),
		})
		if err := client.Start(); err != nil {
			t.Fatalf("Start failed: %v", err)
		}
		if _, err := client.FetchCharacters(ctx, false); err != nil {
			t.Fatalf("FetchCharacters failed: %v", err)
		}
		client.Close()
	}

	if got := versionCalls.Load(); got != 1 {
		t.Errorf("Expected persisted token to be reused, got %d probes", got)
	}
}

func TestStaleVersionTokenRefreshed(t *testing.T) {
	var versionCalls atomic.Int64
	server := newTestServer(t, &versionCalls)
	defer server.Close()

	dir := t.TempDir()
	stale := newVersionStore(dir)
	if err := stale.save("0LD", time.Now().Add(-25*time.Hour)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	client := NewClient(&Config{
		BaseURL:  server.URL,
		CacheDir: dir,
		Store:    cache.NewMemoryStore(),
	})
	if err := client.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer client.Close()

	if _, err := client.FetchCharacters(context.Background(), false); err != nil {
		t.Fatalf("FetchCharacters failed: %v", err)
	}
	if got := versionCalls.Load(); got != 1 {
		t.Errorf("Expected exactly one refresh for a stale token, got %d", got)
	}

	token, _, err := stale.load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if token != "44V5" {
		t.Errorf("Expected refreshed token persisted, got %q", token)
	}
}

func TestFetchLatestVersionBypassesCache(t *testing.T) {
	var versionCalls atomic.Int64
	server := newTestServer(t, &versionCalls)
	defer server.Close()
	client := newTestClient(t, server, false)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		version, err := client.FetchLatestVersion(ctx)
		if err != nil {
			t.Fatalf("FetchLatestVersion failed: %v", err)
		}
		if version != "44V5" {
			t.Errorf("Expected version 44V5, got %q", version)
		}
	}
	if got := versionCalls.Load(); got != 3 {
		t.Errorf("Expected 3 version probes, got %d", got)
	}
}

func TestResponseCaching(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/en/version") {
			w.Write([]byte(`{"data": {"vh": "44V5"}}`))
			return
		}
		requests.Add(1)
		w.Write([]byte(`{"data": {"items": {}}}`))
	}))
	defer server.Close()
	client := newTestClient(t, server, false)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := client.FetchBooks(ctx, true); err != nil {
			t.Fatalf("FetchBooks failed: %v", err)
		}
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("Expected 1 upstream request with caching, got %d", got)
	}

	if _, err := client.FetchBooks(ctx, false); err != nil {
		t.Fatalf("FetchBooks failed: %v", err)
	}
	if got := requests.Load(); got != 2 {
		t.Errorf("Expected cache bypass to hit upstream, got %d requests", got)
	}
}

func TestFetchMessageTypes(t *testing.T) {
	server := newTestServer(t, nil)
	defer server.Close()
	client := newTestClient(t, server, false)

	types, err := client.FetchMessageTypes(context.Background(), false)
	if err != nil {
		t.Fatalf("FetchMessageTypes failed: %v", err)
	}
	if types["1"] != "Character" || types["2"] != "NPC" {
		t.Errorf("Unexpected types map: %v", types)
	}
}

func TestFetchChangelogsInjectsIDs(t *testing.T) {
	server := newTestServer(t, nil)
	defer server.Close()
	client := newTestClient(t, server, false)

	changelogs, err := client.FetchChangelogs(context.Background(), false)
	if err != nil {
		t.Fatalf("FetchChangelogs failed: %v", err)
	}
	if len(changelogs) != 1 {
		t.Fatalf("Expected 1 changelog, got %d", len(changelogs))
	}
	if changelogs[0].ID != 17 {
		t.Errorf("Expected ID from map key, got %d", changelogs[0].ID)
	}
	if changelogs[0].Version != "2.7" {
		t.Errorf("Unexpected version %q", changelogs[0].Version)
	}
}

func TestFetchManualAvatar(t *testing.T) {
	server := newTestServer(t, nil)
	defer server.Close()
	client := newTestClient(t, server, false)

	manual, err := client.FetchManualAvatar(context.Background(), false)
	if err != nil {
		t.Fatalf("FetchManualAvatar failed: %v", err)
	}
	if manual["attackBase"]["name"] != "Base ATK" {
		t.Errorf("Unexpected manual data: %v", manual)
	}
}

func TestVersionAppendedToRequests(t *testing.T) {
	var sawToken atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/en/version") {
			w.Write([]byte(`{"data": {"vh": "44V5"}}`))
			return
		}
		if r.URL.Query().Get("vh") == "44V5" {
			sawToken.Store(true)
		}
		w.Write([]byte(`{"data": {"items": {}}}`))
	}))
	defer server.Close()
	client := newTestClient(t, server, false)

	if _, err := client.FetchBooks(context.Background(), false); err != nil {
		t.Fatalf("FetchBooks failed: %v", err)
	}
	if !sawToken.Load() {
		t.Error("Expected vh token on versioned request")
	}
}

func TestClientDefaults(t *testing.T) {
	client := NewClient(nil)
	if client.lang != LangEN {
		t.Errorf("Expected default language en, got %q", client.lang)
	}
	if client.baseURL != BaseURL {
		t.Errorf("Expected default base URL, got %q", client.baseURL)
	}
	if client.cacheTTL != time.Hour {
		t.Errorf("Expected 1h cache TTL, got %v", client.cacheTTL)
	}
	if client.headers["User-Agent"] != defaultUserAgent {
		t.Errorf("Expected default user agent, got %q", client.headers["User-Agent"])
	}
}
