// Package encoding converts text in legacy character sets to UTF-8.
package encoding

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// IsUTF8 reports whether name denotes UTF-8. The empty name does.
func IsUTF8(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// Lookup returns the encoding registered under an IANA or WHATWG name,
// e.g. "windows-1252", "iso-8859-2" or "euc-kr".
func Lookup(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("unknown character set %q: %w", name, err)
	}
	return enc, nil
}

// ToUTF8 decodes data from the named character set. UTF-8 input is
// returned without its byte order mark.
func ToUTF8(data []byte, charset string) ([]byte, error) {
	if IsUTF8(charset) {
		return StripBOM(data), nil
	}
	enc, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", charset, err)
	}
	return out, nil
}

// StripBOM removes a leading UTF-8 byte order mark.
func StripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}
