// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package analyzer

import (
	"runtime"
	"sync"

	"go.uber.org/multierr"

	aclpkg "grimm.is/aclcheck/internal/acl"
)

// AnalyzeBatch fans acls out across a worker pool bounded by GOMAXPROCS,
// each worker owning its own Analyzer invocation with no shared mutable
// state, and returns results in input order regardless of completion order.
func (a *Analyzer) AnalyzeBatch(acls []*aclpkg.ACL) ([]*Result, error) {
	results := make([]*Result, len(acls))
	errs := make([]error, len(acls))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(acls) {
		workers = len(acls)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				res, err := a.Analyze(acls[idx])
				results[idx] = res
				errs[idx] = err
			}
		}()
	}

	for idx := range acls {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	var combined error
	for _, err := range errs {
		combined = multierr.Append(combined, err)
	}
	return results, combined
}
