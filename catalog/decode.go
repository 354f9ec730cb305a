package catalog

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Encoding names a compression format a catalog file may be stored in.
type Encoding string

const (
	Identity Encoding = "identity"
	Gzip     Encoding = "gzip"
	Zstd     Encoding = "zstd"
	Brotli   Encoding = "br"
	LZ4      Encoding = "lz4"
	Deflate  Encoding = "deflate"
)

// ErrUnsupportedEncoding is returned for an Encoding this package cannot read.
var ErrUnsupportedEncoding = errors.New("unsupported catalog encoding")

// EncodingForPath picks the encoding from a file extension. Unknown
// extensions are read as plain YAML.
func EncodingForPath(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".br":
		return Brotli
	case ".lz4":
		return LZ4
	case ".deflate":
		return Deflate
	default:
		return Identity
	}
}

// decompress wraps r so that reads yield decompressed bytes. The returned
// closer releases decoder resources; it does not close r.
func decompress(r io.Reader, enc Encoding) (io.Reader, func() error, error) {
	noop := func() error { return nil }

	switch enc {
	case Identity, "":
		return r, noop, nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip: %w", err)
		}

		return zr, zr.Close, nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd: %w", err)
		}

		return zr, func() error {
			zr.Close()

			return nil
		}, nil
	case Brotli:
		return brotli.NewReader(r), noop, nil
	case LZ4:
		return lz4.NewReader(r), noop, nil
	case Deflate:
		fr := flate.NewReader(r)

		return fr, fr.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}
}
