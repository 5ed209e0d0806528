// Package document implements the pager's in-memory representation of one
// opened source: a file, standard input, or a synthetic unified diff. It is
// the one place that knows about UTF-8-safe byte indexing over possibly
// memory-mapped storage.
package document

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mna/glance/internal/pager/decompress"
	"github.com/mna/glance/internal/pager/gitstat"
	"github.com/mna/glance/internal/pager/glanceerr"
)

// ChangeMap maps an original-file line index (0-based) to its git change
// classification. It is re-exported from gitstat so callers of this package
// never need to import gitstat directly.
type ChangeMap = gitstat.ChangeMap

// Document is one opened source: a file, stdin, or a synthetic diff.
type Document struct {
	// path is the logical path used for display and syntax lookup.
	path string
	// originalPath is set when the loaded content was decompressed, so path
	// no longer matches the on-disk name.
	originalPath string
	// diskPath is the real filesystem path used for Reload's os.Stat and for
	// git change loading; equal to path unless originalPath is set.
	diskPath string
	// hadCompressionSuffix governs whether Reload re-decompresses.
	hadCompressionSuffix bool

	src     storage
	offsets []int

	binary bool
	isDiff bool

	changes ChangeMap

	// factory reconstructs this Document's content on Reload. Diff documents
	// have a nil factory and never reload.
	factory func() (storage, error)
}

// Path returns the logical path used for display and syntax lookup.
func (d *Document) Path() string { return d.path }

// OriginalPath returns the on-disk path before decompression, or "" if the
// document was not decompressed from a differently-named file.
func (d *Document) OriginalPath() string { return d.originalPath }

// IsBinary reports whether the first 8 KiB of the document contained a NUL
// byte.
func (d *Document) IsBinary() bool { return d.binary }

// IsDiff reports whether this is a synthetic unified-diff document.
func (d *Document) IsDiff() bool { return d.isDiff }

// ByteLen returns the total byte length of the document's content.
func (d *Document) ByteLen() int { return d.src.Len() }

// LineCount returns the number of logical lines, inferred from the line
// index (len(offsets) - 1).
func (d *Document) LineCount() int { return lineCount(d.offsets) }

// HexLineCount returns ceil(byteLen/16).
func (d *Document) HexLineCount() int {
	n := d.ByteLen()
	return (n + 15) / 16
}

// DisplayLineCount returns HexLineCount() for binary documents, else
// LineCount().
func (d *Document) DisplayLineCount() int {
	if d.binary {
		return d.HexLineCount()
	}
	return d.LineCount()
}

// Changes returns the per-line git change map; empty for diff documents or
// documents with no filesystem path.
func (d *Document) Changes() ChangeMap { return d.changes }

// slice returns content[lo:hi], copying out of mapped storage if necessary.
func (d *Document) slice(lo, hi int) []byte {
	if lo >= hi {
		return nil
	}
	if ds, ok := d.src.(directSlicer); ok {
		return ds.slice(lo, hi)
	}
	buf := make([]byte, hi-lo)
	n, err := d.src.ReadAt(buf, lo)
	if err != nil && err != io.EOF {
		return buf[:n]
	}
	return buf[:n]
}

// GetLine returns the content of logical line i with any trailing "\r\n" or
// "\n" stripped. Non-UTF-8 bytes are replaced with the Unicode replacement
// character; the result is always valid UTF-8, and no returned slice ever
// splits a code point. O(1).
func (d *Document) GetLine(i int) (string, bool) {
	if i < 0 || i >= d.LineCount() {
		return "", false
	}
	raw := d.slice(d.offsets[i], d.offsets[i+1])
	raw = bytes.TrimSuffix(raw, []byte("\n"))
	raw = bytes.TrimSuffix(raw, []byte("\r"))
	return toValidUTF8(raw), true
}

// toValidUTF8 returns s re-encoded so every byte position belongs to a valid
// rune, replacing any invalid byte (or sequence) with U+FFFD. Using
// strings.ToValidUTF8 would merge consecutive invalid bytes into a single
// replacement rune; a pager wants one replacement character per invalid
// byte, matching hex/text side-by-side expectations, so this walks the
// string manually.
func toValidUTF8(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	var b strings.Builder
	b.Grow(len(raw))
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if r == utf8.RuneError && size <= 1 {
			b.WriteRune(utf8.RuneError)
			raw = raw[1:]
			continue
		}
		b.WriteRune(r)
		raw = raw[size:]
	}
	return b.String()
}

// TextSnapshot materializes every line as an owned string, in order. This is
// the only operation allowed to feed background work: it fully decouples a
// search worker's lifetime from the Document's storage (see the
// "snapshot for background work" design note).
func (d *Document) TextSnapshot() []string {
	n := d.LineCount()
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i], _ = d.GetLine(i)
	}
	return out
}

// Close releases any resources (a memory-mapped file handle) held by this
// Document.
func (d *Document) Close() error {
	if d.src == nil {
		return nil
	}
	return d.src.Close()
}

// Reload re-runs the factory that produced this Document's content. Diff
// documents never reload (factory is nil and this is a no-op).
func (d *Document) Reload() error {
	if d.factory == nil {
		return nil
	}
	newSrc, err := d.factory()
	if err != nil {
		return glanceerr.New(glanceerr.IO, "reload", err)
	}
	old := d.src
	d.src = newSrc
	d.offsets = buildLineIndex(newSrc)
	d.binary = detectBinary(newSrc)
	if old != nil {
		_ = old.Close()
	}
	if d.diskPath != "" && !d.isDiff {
		d.changes, _ = gitstat.Load(d.diskPath)
	}
	return nil
}

const binarySniffLen = 8 << 10 // 8 KiB

// detectBinary scans up to the first 8 KiB of src for a NUL byte.
func detectBinary(src storage) bool {
	n := src.Len()
	if n > binarySniffLen {
		n = binarySniffLen
	}
	buf := make([]byte, n)
	read, err := src.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return false
	}
	return bytes.IndexByte(buf[:read], 0) >= 0
}

// FromPath opens a Document from a filesystem path, transparently
// decompressing .gz/.zst/.bz2 suffixes and memory-mapping files at or above
// the 10 MiB threshold that lack such a suffix.
func FromPath(path string) (*Document, error) {
	kind, strippedName := decompress.DetectSuffix(filepath.Base(path))
	hasSuffix := kind != decompress.None

	factory := func() (storage, error) {
		if hasSuffix {
			data, err := readDecompressed(path, kind)
			if err != nil {
				return nil, err
			}
			return newInMemoryStorage(data), nil
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.Size() >= int64(mapThreshold) {
			return newMappedStorage(path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return newInMemoryStorage(data), nil
	}

	src, err := factory()
	if err != nil {
		return nil, glanceerr.New(glanceerr.IO, "open "+path, err)
	}

	d := &Document{
		path:                 path,
		diskPath:             path,
		hadCompressionSuffix: hasSuffix,
		src:                  src,
		offsets:              buildLineIndex(src),
		factory:              factory,
	}
	if hasSuffix {
		d.originalPath = path
		d.path = filepath.Join(filepath.Dir(path), strippedName)
	}
	d.binary = detectBinary(src)
	d.changes, _ = gitstat.Load(d.diskPath)
	return d, nil
}

func readDecompressed(path string, kind decompress.Kind) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rc, err := decompress.NewReader(kind, f)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// FromStdin reads all of r (typically os.Stdin) into owned memory. Standard
// input documents are never memory-mapped.
func FromStdin(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, glanceerr.New(glanceerr.IO, "read stdin", err)
	}
	src := newInMemoryStorage(data)
	d := &Document{
		path:    "(stdin)",
		src:     src,
		offsets: buildLineIndex(src),
	}
	d.binary = detectBinary(src)
	return d, nil
}

// FromDiffText wraps pre-rendered unified-diff text (produced by the
// diffdoc collaborator) as an in-memory diff Document. Diff documents never
// decompress, never memory-map, never load git changes, and never reload.
func FromDiffText(displayPath, diffText string) *Document {
	src := newInMemoryStorage([]byte(diffText))
	d := &Document{
		path:    displayPath,
		src:     src,
		offsets: buildLineIndex(src),
		isDiff:  true,
	}
	return d
}

// DetectSyntaxPath strips any compression suffix from path, for syntax
// lookup purposes.
func DetectSyntaxPath(path string) string {
	_, stripped := decompress.DetectSuffix(path)
	return stripped
}
