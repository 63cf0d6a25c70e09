package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ToInt64 converts loosely typed input (JSON numbers, query strings, bytes) to int64.
// Unparseable values yield 0, which every caller treats as "absent".
func ToInt64(val any) int64 {
	switch v := val.(type) {
	case string:
		val = strings.TrimSpace(v)
	case []byte:
		val = strings.TrimSpace(string(v))
	}
	return cast.ToInt64(val)
}

// ParseIDList parses a comma separated list of identifiers ("2, 3,4").
// Non-numeric entries are an error; ordering and duplicates are preserved for the caller to judge.
func ParseIDList(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// UniqueIDs drops repeated ids, keeping the first occurrence.
func UniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
