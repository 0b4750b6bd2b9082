// SPDX-License-Identifier: MIT

package align

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrNilContext is returned by AlignAll when ctx is nil.
var ErrNilContext = errors.New("align: nil context")

// AlignAll aligns every pair independently on up to workers goroutines and
// returns results in input order. workers <= 0 means runtime.GOMAXPROCS(0).
//
// Each pair gets its own tables; nothing is shared between requests beyond
// the read-only Options. Cancellation is checked before each pair is
// handed out; a pair already being aligned runs to completion.
func (al *Aligner) AlignAll(ctx context.Context, pairs []Pair, workers int) ([]Alignment, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}

	out := make([]Alignment, len(pairs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				out[idx] = al.Align(pairs[idx].A, pairs[idx].B)
			}
		}()
	}

	var err error
feed:
	for idx := range pairs {
		// cancellation check (once per pair); Err first so a done context
		// is never raced against a ready worker
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, fmt.Errorf("align: AlignAll: %w", err)
	}

	return out, nil
}
