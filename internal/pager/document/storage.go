package document

import (
	"golang.org/x/exp/mmap"
)

// storage is the byte-slice-like interface behind which the document hides
// whether its content lives fully in owned memory or behind a memory-mapped
// file. Nothing outside this file (and document.go's slice helper) should
// care which variant is in play; see the "dual storage behind one interface"
// design note.
type storage interface {
	// Len returns the total byte length of the underlying content.
	Len() int
	// ReadAt copies content[off:off+len(p)] into p.
	ReadAt(p []byte, off int) (int, error)
	// Close releases any resources (a no-op for in-memory storage).
	Close() error
}

// directSlicer is implemented by storage variants that can hand back a
// sub-slice of their content without copying. inMemoryStorage implements it;
// mappedStorage deliberately does not, so that Document.slice falls back to
// a ReadAt-into-owned-buffer path for mapped content.
type directSlicer interface {
	slice(lo, hi int) []byte
}

// inMemoryStorage backs a Document whose bytes were read fully into the
// process, either because the file was small or because it came from
// standard input (which is never mapped).
type inMemoryStorage struct {
	data []byte
}

func newInMemoryStorage(data []byte) *inMemoryStorage {
	return &inMemoryStorage{data: data}
}

func (s *inMemoryStorage) Len() int { return len(s.data) }

func (s *inMemoryStorage) ReadAt(p []byte, off int) (int, error) {
	n := copy(p, s.data[off:])
	return n, nil
}

func (s *inMemoryStorage) Close() error { return nil }

func (s *inMemoryStorage) slice(lo, hi int) []byte { return s.data[lo:hi] }

// mappedStorage backs a Document loaded from a large (>= mapThreshold) file
// on disk: its content is paged in by the OS on demand via mmap instead of
// being read eagerly into a single Go allocation.
type mappedStorage struct {
	r *mmap.ReaderAt
}

func newMappedStorage(path string) (*mappedStorage, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	return &mappedStorage{r: r}, nil
}

func (s *mappedStorage) Len() int { return s.r.Len() }

func (s *mappedStorage) ReadAt(p []byte, off int) (int, error) {
	return s.r.ReadAt(p, int64(off))
}

func (s *mappedStorage) Close() error { return s.r.Close() }

// mapThreshold is the size at which a path-backed document is opened with
// mmap instead of being read fully into memory.
const mapThreshold = 10 << 20 // 10 MiB
