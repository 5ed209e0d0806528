// Package diffdoc synthesizes a unified-diff document.Document from two
// independently loaded source documents, the way internal/golden compares
// golden output: by handing both line sequences to go-difflib and keeping
// its unified-diff text verbatim.
package diffdoc

import (
	"github.com/mna/glance/internal/pager/document"
	"github.com/pmezard/go-difflib/difflib"
)

// Build loads oldPath and newPath as ordinary documents and returns a
// synthetic diff document holding the unified diff between them. Both
// operands are closed before returning; only the diff bytes are kept.
func Build(oldPath, newPath string) (*document.Document, error) {
	oldDoc, err := document.FromPath(oldPath)
	if err != nil {
		return nil, err
	}
	defer oldDoc.Close()

	newDoc, err := document.FromPath(newPath)
	if err != nil {
		return nil, err
	}
	defer newDoc.Close()

	diffText, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        linesWithNewlines(oldDoc),
		B:        linesWithNewlines(newDoc),
		FromFile: oldPath,
		ToFile:   newPath,
		Context:  3,
	})
	if err != nil {
		return nil, err
	}

	return document.FromDiffText(newPath, diffText), nil
}

// linesWithNewlines returns every line of d with a trailing "\n" appended,
// the shape difflib.UnifiedDiff expects for its A/B operands.
func linesWithNewlines(d *document.Document) []string {
	n := d.LineCount()
	out := make([]string, n)
	for i := 0; i < n; i++ {
		line, _ := d.GetLine(i)
		out[i] = line + "\n"
	}
	return out
}
