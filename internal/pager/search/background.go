package search

import (
	"context"
	"regexp"

	"golang.org/x/sync/semaphore"
)

// batchSize is how many scanned lines elapse between Progress events.
const batchSize = 10000

// Batch is one message from a background committed scan. Done reports
// whether this is the terminal message; NewMatches is always nil on the
// terminal message, since any final partial batch is sent before it.
type Batch struct {
	NewMatches   []Match
	ScannedSoFar int
	TotalMatches int
	Done         bool
}

// sharedSem caps the number of committed scans that may run concurrently
// at one, mirroring the compile executor's weighted semaphore but with
// weight 1: the UI cancels the in-flight scan's context when it starts a
// new search, and the new worker waits for the old one to release the
// semaphore before it begins scanning, so the
// pager never burns more than one goroutine's worth of CPU on search scans
// at a time.
var sharedSem = semaphore.NewWeighted(1)

// StartBackground launches a one-shot worker that scans snapshot (an owned
// line-of-strings copy, fully decoupled from the Document per the
// "snapshot for background work" design) and streams Batch values on the
// returned channel. The channel is closed after the Done batch. Canceling
// ctx stops the worker reporting further progress and closes the channel
// (already-sent batches remain readable); the UI cancels ctx whenever it
// starts a new search.
func StartBackground(ctx context.Context, snapshot []string, re *regexp.Regexp) <-chan Batch {
	out := make(chan Batch)
	go func() {
		defer close(out)
		if err := sharedSem.Acquire(ctx, 1); err != nil {
			return
		}
		defer sharedSem.Release(1)

		var all []Match
		var pending []Match
		scanned := 0
		for i, line := range snapshot {
			select {
			case <-ctx.Done():
				return
			default:
			}

			for _, loc := range re.FindAllStringIndex(line, -1) {
				m := Match{Line: i, Start: loc[0], End: loc[1]}
				all = append(all, m)
				pending = append(pending, m)
			}
			scanned++

			if scanned%batchSize == 0 {
				select {
				case out <- Batch{NewMatches: pending, ScannedSoFar: scanned, TotalMatches: len(all)}:
				case <-ctx.Done():
					return
				}
				pending = nil
			}
		}
		if len(pending) > 0 {
			select {
			case out <- Batch{NewMatches: pending, ScannedSoFar: scanned, TotalMatches: len(all)}:
			case <-ctx.Done():
				return
			}
		}

		select {
		case out <- Batch{ScannedSoFar: scanned, TotalMatches: len(all), Done: true}:
		case <-ctx.Done():
		}
	}()
	return out
}
