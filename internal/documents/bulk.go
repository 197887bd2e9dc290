package documents

import (
	"sort"
	"time"
)

// DownloadDelay is the pause between sequential bulk downloads. Parallel
// downloads trip server rate limits, so the batch is strictly sequential.
const DownloadDelay = 300 * time.Millisecond

// BulkResult aggregates one bulk operation. Individual failures never abort
// the batch; they are counted and reported together once every dispatched
// request has settled.
type BulkResult struct {
	Succeeded int
	Failed    int
	FailedIDs []string
}

// Outcome classifies a bulk result for user-facing reporting.
type Outcome int

const (
	AllSucceeded Outcome = iota
	Partial
	AllFailed
)

// Outcome classifies the result.
func (r BulkResult) Outcome() Outcome {
	switch {
	case r.Failed == 0:
		return AllSucceeded
	case r.Succeeded == 0:
		return AllFailed
	default:
		return Partial
	}
}

// Settle aggregates per-document errors into a single result. The input is
// the settled error (nil on success) for every dispatched request.
func Settle(results map[string]error) BulkResult {
	var r BulkResult
	for id, err := range results {
		if err == nil {
			r.Succeeded++
			continue
		}
		r.Failed++
		r.FailedIDs = append(r.FailedIDs, id)
	}
	sort.Strings(r.FailedIDs)
	return r
}

// DownloadPlan filters a bulk-download batch down to the documents that
// actually have a file to fetch, reporting how many were skipped. The
// caller downloads the plan sequentially with DownloadDelay between items.
func DownloadPlan(docs []Document) (plan []Document, skipped int) {
	for _, d := range docs {
		if !d.Downloadable() {
			skipped++
			continue
		}
		plan = append(plan, d)
	}
	return plan, skipped
}
