// Package statesync moves the durable store state between instances as an opaque
// text token: Base64 over the UTF-8 JSON of {products, orders, customers, siteConfig}.
// Tokens carry no version tag; readers rely on field presence.
package statesync

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	pkgerrors "github.com/vroommkart/storefront/pkg/errors"
	"github.com/vroommkart/storefront/pkg/models"
)

var (
	// ErrMalformedToken means the token is not Base64.
	ErrMalformedToken = errors.New("malformed sync token")

	// ErrMalformedPayload means the decoded bytes are not a UTF-8 JSON object.
	ErrMalformedPayload = errors.New("malformed sync payload")
)

// Encode serializes the snapshot to a token.
func Encode(snapshot models.Snapshot) (string, error) {
	return EncodePatch(models.FullPatch(snapshot))
}

// EncodePatch serializes only the slices present in patch.
func EncodePatch(patch models.SnapshotPatch) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(patch); err != nil {
		return "", fmt.Errorf("encoding sync payload: %w", err)
	}
	raw := bytes.TrimRight(buf.Bytes(), "\n")
	return base64.StdEncoding.EncodeToString(raw), nil
}

var encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// Decode parses a token into a patch without touching any store. Padding, URL-safe
// alphabets, percent-escapes and spaces standing in for '+' are tolerated.
func Decode(token string) (models.SnapshotPatch, error) {
	raw, err := decodeBase64(token)
	if err != nil {
		return models.SnapshotPatch{}, err
	}
	if !utf8.Valid(raw) {
		return models.SnapshotPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrMalformedPayload, "sync payload is not valid UTF-8")
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.SnapshotPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrMalformedPayload, "sync payload must be a JSON object")
	}

	var patch models.SnapshotPatch
	if err := json.Unmarshal(trimmed, &patch); err != nil {
		return models.SnapshotPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrMalformedPayload, "sync payload is not valid JSON").
			WithDetails(map[string]any{"error": err.Error()})
	}
	return patch, nil
}

func decodeBase64(token string) ([]byte, error) {
	cleaned := strings.TrimSpace(token)
	if strings.Contains(cleaned, "%") {
		if unescaped, err := url.PathUnescape(cleaned); err == nil {
			cleaned = unescaped
		}
	}
	cleaned = strings.ReplaceAll(cleaned, " ", "+")
	if cleaned == "" {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrMalformedToken, "sync token is empty")
	}
	for _, enc := range encodings {
		if raw, err := enc.DecodeString(cleaned); err == nil {
			return raw, nil
		}
	}
	return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrMalformedToken, "sync token is not base64")
}
