package script

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decompress unwraps gzip or zstd content, detected by magic bytes
func decompress(raw []byte) ([]byte, error) {
	mtype := mimetype.Detect(raw)

	var r io.ReadCloser
	switch {
	case mtype.Is("application/gzip"):
		gzReader, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("gzip failed: %w", err)
		}
		r = gzReader
	case mtype.Is("application/zstd"):
		zstdReader, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("zstd failed: %w", err)
		}
		r = zstdReader.IOReadCloser()
	default:
		return raw, nil
	}
	defer r.Close()

	data, err := io.ReadAll(io.LimitReader(r, MaxScriptSize+1))
	if err != nil {
		return nil, fmt.Errorf("decompress failed: %w", err)
	}
	if len(data) > MaxScriptSize {
		return nil, fmt.Errorf("decompressed script exceeds %d bytes", MaxScriptSize)
	}
	return data, nil
}

// toUTF8 transcodes text that is not valid UTF-8, guessing its charset
func toUTF8(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}

	detected := DetectCharset(data)
	r, err := charset.NewReaderLabel(detected, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unsupported script encoding %s: %w", detected, err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("transcode %s: %w", detected, err)
	}
	return bytes.TrimPrefix(out, utf8BOM), nil
}

// DetectCharset returns the most likely charset of data, lower case
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// sniffFormat guesses the format of a script whose name has no known
// extension. Only JSON is recognisable from content.
func sniffFormat(data []byte) (Format, bool) {
	if mimetype.Detect(data).Is("application/json") {
		return FormatJSON, true
	}
	return "", false
}
