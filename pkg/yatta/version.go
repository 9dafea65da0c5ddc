package yatta

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// versionTTL is how long a persisted version token stays fresh.
const versionTTL = 24 * time.Hour

// versionStore persists the API version token next to the response cache
// so a fresh process can skip the version probe.
type versionStore struct {
	path string
}

func newVersionStore(dir string) *versionStore {
	return &versionStore{path: filepath.Join(dir, "version")}
}

// load reads the persisted token and the time it was saved. A missing or
// malformed file is not an error, it just reports no token.
func (s *versionStore) load() (string, time.Time, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", time.Time{}, nil
		}
		return "", time.Time{}, fmt.Errorf("read version file: %w", err)
	}
	parts := strings.SplitN(strings.TrimSpace(string(data)), ",", 2)
	if len(parts) != 2 {
		return "", time.Time{}, nil
	}
	epoch, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || parts[0] == "" {
		return "", time.Time{}, nil
	}
	return parts[0], time.Unix(epoch, 0), nil
}

// save writes the token atomically so a crash mid-write cannot leave a
// truncated file behind.
func (s *versionStore) save(token string, at time.Time) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create version dir: %w", err)
	}
	tmp := s.path + ".tmp"
	content := fmt.Sprintf("%s,%d", token, at.Unix())
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write version file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace version file: %w", err)
	}
	return nil
}
