// Package decompress sniffs a filename's compression suffix and opens a
// streaming decoder for it. It is the one place in the repository that knows
// about .gz/.zst/.bz2; the document package only calls DetectSuffix and
// NewReader.
package decompress

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Kind identifies a recognized compression format.
type Kind int

const (
	// None means the filename carries no recognized compression suffix.
	None Kind = iota
	Gzip
	Zstd
	Bzip2
)

// DetectSuffix inspects name's extension (case-insensitively) and returns
// the compression Kind along with the logical name with that suffix
// stripped. If no known suffix is present, it returns (None, name).
func DetectSuffix(name string) (Kind, string) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		return Gzip, name[:len(name)-len(".gz")]
	case strings.HasSuffix(lower, ".zst"):
		return Zstd, name[:len(name)-len(".zst")]
	case strings.HasSuffix(lower, ".zstd"):
		return Zstd, name[:len(name)-len(".zstd")]
	case strings.HasSuffix(lower, ".bz2"):
		return Bzip2, name[:len(name)-len(".bz2")]
	default:
		return None, name
	}
}

// NewReader wraps r in a streaming decoder for kind. Callers must Close the
// returned ReadCloser; for Kind == None it simply wraps r with a no-op Close.
func NewReader(kind Kind, r io.Reader) (io.ReadCloser, error) {
	switch kind {
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdCloser{zr}, nil
	case Bzip2:
		return io.NopCloser(bzip2.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// zstdCloser adapts *zstd.Decoder's Close (which returns no error) to
// io.ReadCloser.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}
