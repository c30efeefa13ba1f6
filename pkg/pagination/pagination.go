package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 25
	// MaxLimit caps how many rows any page can carry.
	MaxLimit = 100
)

// Params holds offset-cursor pagination inputs from controllers.
type Params struct {
	Limit  int
	Cursor string
}

// Page is one window over an in-memory list.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeCursor builds an opaque cursor for the given offset.
func EncodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte("o:" + strconv.Itoa(offset)))
}

// ParseCursor decodes the cursor string back into an offset. An empty cursor is offset 0.
func ParseCursor(value string) (int, error) {
	if strings.TrimSpace(value) == "" {
		return 0, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return 0, fmt.Errorf("decode cursor: %w", err)
	}
	raw, ok := strings.CutPrefix(string(decoded), "o:")
	if !ok {
		return 0, fmt.Errorf("invalid cursor format")
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid cursor offset %q", raw)
	}
	return offset, nil
}

// Slice returns the page of items selected by p. A cursor past the end yields an empty page.
func Slice[T any](items []T, p Params) (Page[T], error) {
	offset, err := ParseCursor(p.Cursor)
	if err != nil {
		return Page[T]{}, err
	}
	limit := NormalizeLimit(p.Limit)

	if offset >= len(items) {
		return Page[T]{Items: []T{}}, nil
	}
	end := offset + limit
	page := Page[T]{}
	if end < len(items) {
		page.NextCursor = EncodeCursor(end)
	} else {
		end = len(items)
	}
	page.Items = items[offset:end]
	return page, nil
}
