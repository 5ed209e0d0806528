package document

import "io"

const indexScanChunk = 64 << 10 // 64 KiB

// buildLineIndex scans src once for '\n' bytes and returns the offsets of
// every line start, with one trailing sentinel entry equal to the total byte
// length. This mirrors ast.FileInfo's lines []int bookkeeping: index[0] is
// always 0, index[i] is the offset where line i begins, and the invariant
// index[len(index)-1] == byteLen always holds.
func buildLineIndex(src storage) []int {
	total := src.Len()
	offsets := []int{0}

	buf := make([]byte, indexScanChunk)
	pos := 0
	for pos < total {
		n := len(buf)
		if remaining := total - pos; remaining < n {
			n = remaining
		}
		read, err := src.ReadAt(buf[:n], pos)
		for i := 0; i < read; i++ {
			if buf[i] == '\n' {
				offsets = append(offsets, pos+i+1)
			}
		}
		pos += read
		if err != nil && err != io.EOF {
			break
		}
		if read == 0 {
			break
		}
	}

	if offsets[len(offsets)-1] != total {
		offsets = append(offsets, total)
	}
	return offsets
}

// lineCount returns the number of logical lines implied by an offsets table
// built by buildLineIndex.
func lineCount(offsets []int) int {
	if len(offsets) == 0 {
		return 0
	}
	return len(offsets) - 1
}
