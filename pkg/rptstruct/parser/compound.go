package parser

import (
	"bytes"
	"errors"
	"io"

	"github.com/richardlehane/mscfb"
)

// ErrNoStreams indicates a compound file without any non-empty stream.
var ErrNoStreams = errors.New("compound file has no streams")

// compoundSignature opens every OLE compound document.
var compoundSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// IsCompound reports whether data starts with the compound file signature.
func IsCompound(data []byte) bool {
	return bytes.HasPrefix(data, compoundSignature)
}

// UnpackCompound returns the contents of every stream in directory order,
// each followed by a NUL byte so runs never join across streams.
// Streams declaring more bytes than the whole document holds are skipped.
func UnpackCompound(data []byte) ([]byte, error) {
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	limit := int64(len(data))
	var out []byte
	for {
		entry, err := doc.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if entry.Size <= 0 || entry.Size > limit {
			continue
		}

		buf, err := io.ReadAll(io.LimitReader(entry, entry.Size))
		if err != nil {
			return nil, err
		}
		out = append(out, buf...)
		out = append(out, 0)
	}

	if len(out) == 0 {
		return nil, ErrNoStreams
	}
	return out, nil
}
