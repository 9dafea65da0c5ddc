package yatta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// AssetBaseURL is the prefix for all synthesized asset URLs.
const AssetBaseURL = "https://sr.yatta.moe/hsr/assets/UI"

func iconURL(subpath, key string) string {
	return fmt.Sprintf("%s/%s/%s.png", AssetBaseURL, subpath, key)
}

// traceIconURL picks the asset subpath for a trace node icon. Main skill
// icons carry "SkillIcon" in their key, stat bonus icons do not. The
// heuristic comes from the source data and must be preserved as is.
func traceIconURL(key string) string {
	if strings.Contains(key, "SkillIcon") {
		return iconURL("skill", key)
	}
	return iconURL("status", key)
}

func isJSONNull(data []byte) bool {
	return len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// keyedRecord is one entry of a server-side object keyed by a stringified
// integer ID.
type keyedRecord struct {
	ID  int
	Raw json.RawMessage
}

// keyedRecords flattens an object keyed by stringified integer IDs into a
// slice ordered by the parsed key. A JSON null yields an empty slice.
func keyedRecords(data []byte) ([]keyedRecord, error) {
	if isJSONNull(data) {
		return nil, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	records := make([]keyedRecord, 0, len(m))
	for k, raw := range m {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("non-numeric key %q", k)
		}
		records = append(records, keyedRecord{ID: id, Raw: raw})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

// namedRecord is one entry of a server-side object keyed by an arbitrary
// string (relic slot positions, changelog category names).
type namedRecord struct {
	Key string
	Raw json.RawMessage
}

// namedRecords flattens a string-keyed object into a slice with a stable
// order: numeric keys sort numerically, the rest lexicographically.
func namedRecords(data []byte) ([]namedRecord, error) {
	if isJSONNull(data) {
		return nil, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	records := make([]namedRecord, 0, len(m))
	for k, raw := range m {
		records = append(records, namedRecord{Key: k, Raw: raw})
	}
	sort.Slice(records, func(i, j int) bool {
		a, errA := strconv.Atoi(records[i].Key)
		b, errB := strconv.Atoi(records[j].Key)
		if errA == nil && errB == nil {
			return a < b
		}
		return records[i].Key < records[j].Key
	})
	return records, nil
}

// intList decodes a list whose elements may arrive as numbers or as
// stringified numbers. A JSON null yields an empty slice.
func intList(data []byte) ([]int, error) {
	if isJSONNull(data) {
		return nil, nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]int, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("non-numeric element %q", s)
			}
			out = append(out, v)
			continue
		}
		var v int
		if err := json.Unmarshal(r, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// releaseTime maps an epoch-seconds value to a timestamp. Zero means the
// resource has no release date and maps to nil, not the epoch instant.
func releaseTime(epoch int64) *time.Time {
	if epoch == 0 {
		return nil
	}
	t := time.Unix(epoch, 0)
	return &t
}

// intOrZero collapses a nullable numeric field to its value or zero.
func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// sortedStringKeys returns the keys of a string map in sorted order.
func sortedStringKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// stringsOrEmpty collapses a nullable string list to a non-nil slice.
func stringsOrEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
