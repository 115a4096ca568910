package payload

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/jlkiri/tcpstub/sources"
)

var ErrOddLength = errors.New("odd number of hex digits")

// DecodeError reports a malformed payload literal. Offset is the byte
// position in the original literal, or -1 when the problem is not tied to a
// single character.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("decode payload: %v", e.Err)
	}
	return fmt.Sprintf("decode payload at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Payload is an immutable canned response. The zero value is empty.
type Payload struct {
	data []byte
}

func (p Payload) Len() int {
	return len(p.data)
}

// Bytes returns a copy of the payload.
func (p Payload) Bytes() []byte {
	return bytes.Clone(p.data)
}

func (p Payload) Equal(b []byte) bool {
	return bytes.Equal(p.data, b)
}

// WriteTo writes the whole payload to w.
func (p Payload) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.data)
	if err == nil && n < len(p.data) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

func Decode(literal string) (Payload, error) {
	var compact strings.Builder
	compact.Grow(len(literal))

	for i, r := range literal {
		if unicode.IsSpace(r) {
			continue
		}
		if !isHexDigit(r) {
			return Payload{}, &DecodeError{
				Offset: i,
				Err:    fmt.Errorf("invalid hex character %q", r),
			}
		}
		compact.WriteRune(r)
	}

	if compact.Len()%2 != 0 {
		return Payload{}, &DecodeError{Offset: -1, Err: ErrOddLength}
	}

	data, err := hex.DecodeString(compact.String())
	if err != nil {
		return Payload{}, &DecodeError{Offset: -1, Err: err}
	}

	return Payload{data: data}, nil
}

// Load decodes the built-in device reply.
func Load() (Payload, error) {
	return Decode(sources.Fixture)
}

func LoadFile(path string) (Payload, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to read payload file %s: %w", path, err)
	}

	return Decode(string(file))
}

// LoadFrom decodes path, or the built-in reply when path is empty.
func LoadFrom(path string) (Payload, error) {
	if path == "" {
		return Load()
	}
	return LoadFile(path)
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
