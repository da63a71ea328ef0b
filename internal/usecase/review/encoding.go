package review

import (
	"encoding/base64"
	"fmt"
)

// The README content crosses the step boundary as a single opaque value.
// Base64 keeps it one line regardless of embedded newlines or multi-byte
// runes, and round-trips the exact bytes.

// EncodeContent encodes raw file bytes into the transport-safe form.
func EncodeContent(content []byte) string {
	return base64.StdEncoding.EncodeToString(content)
}

// DecodeContent reverses EncodeContent.
func DecodeContent(encoded string) ([]byte, error) {
	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return content, nil
}
