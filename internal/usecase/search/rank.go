package search

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hireloop/peoplesearch/internal/domain/person"
	"github.com/hireloop/peoplesearch/internal/domain/search/query"
	"github.com/hireloop/peoplesearch/internal/domain/search/result"
)

// scoreAll scores every record. Records are independent, so large sets fan
// out across workers and concatenate; the global view is only needed for
// the sort that follows.
func (s *Service) scoreAll(
	ctx context.Context, records []person.Record, q *query.Query,
) ([]result.ScoredRecord, error) {
	if len(records) < s.parallelThreshold {
		return scoreChunk(records, q), nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(records) {
		workers = len(records)
	}
	chunkSize := (len(records) + workers - 1) / workers

	chunks := make([][]result.ScoredRecord, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunkSize
		if lo > len(records) {
			lo = len(records)
		}
		hi := lo + chunkSize
		if hi > len(records) {
			hi = len(records)
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			chunks[w] = scoreChunk(records[lo:hi], q)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	out := make([]result.ScoredRecord, 0, total)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out, nil
}

// rank orders matches by score descending with record ID ascending as the
// tiebreak, so equal-score output is reproducible run to run.
func rank(scored []result.ScoredRecord) {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].TotalScore() != scored[j].TotalScore() {
			return scored[i].TotalScore() > scored[j].TotalScore()
		}
		ri, rj := scored[i].Record(), scored[j].Record()
		return ri.ID() < rj.ID()
	})
}

// pageOf slices one page out of the ranked matches. An offset past the end
// yields an empty page.
func pageOf(scored []result.ScoredRecord, offset, size int) []result.ScoredRecord {
	if offset >= len(scored) {
		return nil
	}
	end := offset + size
	if end > len(scored) {
		end = len(scored)
	}
	return scored[offset:end]
}
