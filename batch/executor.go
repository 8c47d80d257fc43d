// Package batch creates many resources against the fixture API without
// overwhelming it: payloads are split into fixed-size groups, each group's
// requests run concurrently behind a full barrier, and a cooldown delay is
// inserted between groups.
package batch

import (
	"sync"
	"time"

	"github.com/restharness/fixture-api-tests/apiclient"
	"github.com/restharness/fixture-api-tests/framework"
)

// CreateFunc issues one create request for a payload. Typically a bound
// service method such as users.Create.
type CreateFunc[P any, R any] func(P) (*apiclient.Response[R], error)

// Stats summarizes a batch run. Failed items are also logged as warnings; the
// result slice contains successes only.
type Stats struct {
	Requested int
	Succeeded int
	Failed    int
	Groups    int
}

// Executor runs batched creates for one payload/resource pair.
type Executor[P any, R any] struct {
	create    CreateFunc[P, R]
	batchSize int
	delay     time.Duration
	logger    framework.Logger
}

// NewExecutor builds an Executor. batchSize values below 1 are coerced to 1;
// a nil logger discards warnings.
func NewExecutor[P any, R any](create CreateFunc[P, R], batchSize int, delay time.Duration, logger framework.Logger) *Executor[P, R] {
	if batchSize < 1 {
		batchSize = 1
	}
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Executor[P, R]{create: create, batchSize: batchSize, delay: delay, logger: logger}
}

// Run creates every payload, group by group. Within a group all requests are
// issued concurrently and the group is awaited to completion (success or
// failure of every member) before the next group starts. A failed item is
// logged as a warning and dropped from the result set; it never aborts the
// run. The delay is applied after each group except the last.
//
// Successes appear in completion order within their group; group order is
// preserved. An empty input returns an empty result with no network calls.
func (e *Executor[P, R]) Run(payloads []P) ([]*apiclient.Response[R], Stats) {
	stats := Stats{Requested: len(payloads)}
	if len(payloads) == 0 {
		return nil, stats
	}

	results := make([]*apiclient.Response[R], 0, len(payloads))
	for start := 0; start < len(payloads); start += e.batchSize {
		end := start + e.batchSize
		if end > len(payloads) {
			end = len(payloads)
		}
		group := payloads[start:end]
		stats.Groups++

		var wg sync.WaitGroup
		var lock sync.Mutex
		for i, p := range group {
			wg.Add(1)
			go func(index int, payload P) {
				defer wg.Done()
				resp, err := e.create(payload)
				if err != nil {
					e.logger.Printf("WARN: batch item %d failed, dropping it: %s", start+index, err)
					lock.Lock()
					stats.Failed++
					lock.Unlock()
					return
				}
				lock.Lock()
				results = append(results, resp)
				stats.Succeeded++
				lock.Unlock()
			}(i, p)
		}
		wg.Wait()

		if end < len(payloads) && e.delay > 0 {
			time.Sleep(e.delay)
		}
	}
	return results, stats
}
