package transcoder

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

var ErrInvalidUTF8 = errors.New("payload is not valid UTF-8")

// ToUTF8 returns data as BOM-less UTF-8. UTF-16 input is only recognised by
// its byte order mark; anything else must already be valid UTF-8.
func ToUTF8(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE) {
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return nil, fmt.Errorf("decode UTF-16 payload: %w", err)
		}
		return out, nil
	}

	data = bytes.TrimPrefix(data, bomUTF8)
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	return data, nil
}
