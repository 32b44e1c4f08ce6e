package crypto

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// ReadLines returns the lines of the file at path, without a trailing empty
// line.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil, nil
	}
	return strings.Split(s, "\n"), nil
}

// ReadBase64File decodes a file of standard base64, which may be wrapped
// across lines.
func ReadBase64File(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return DecodeBase64(string(data))
}

// DecodeBase64 decodes standard base64, ignoring line breaks and other
// white space.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrEncoding, err)
	}
	return data, nil
}
