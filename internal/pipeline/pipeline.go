// Package pipeline fans a batch of proposal documents out over a worker
// pool so bulk grading runs in parallel.
package pipeline

import (
	"runtime"
	"sync"

	"proposal_grader/internal/ingest"
)

type Grader func(doc ingest.Document) error

// GradeDocuments runs fn over every document on the given number of
// workers and collects the errors. Order of errors is not defined.
func GradeDocuments(docs []ingest.Document, workers int, fn Grader) []error {
	if len(docs) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	jobs := make(chan ingest.Document)
	errs := make(chan error, len(docs))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for doc := range jobs {
				if err := fn(doc); err != nil {
					errs <- err
				}
			}
		}()
	}

	for _, doc := range docs {
		jobs <- doc
	}
	close(jobs)
	wg.Wait()
	close(errs)

	out := make([]error, 0, len(errs))
	for err := range errs {
		out = append(out, err)
	}
	return out
}
