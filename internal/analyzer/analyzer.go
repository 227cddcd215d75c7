// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package analyzer drives one ACL's rules through a PrefixForest to find
// candidate predecessors, then runs the Classifier against each candidate,
// collecting every non-NONE Conflict.
package analyzer

import (
	"time"

	"github.com/google/uuid"

	aclpkg "grimm.is/aclcheck/internal/acl"
	"grimm.is/aclcheck/internal/classify"
	"grimm.is/aclcheck/internal/logging"
	"grimm.is/aclcheck/internal/metrics"
	"grimm.is/aclcheck/internal/trie"
)

// Result holds the outcome of analyzing a single ACL.
type Result struct {
	ACLName   string
	RunID     string
	Conflicts []*classify.Conflict
	RuleCount int
	Duration  time.Duration
}

// Analyzer runs conflict analysis over ACLs, optionally recording metrics.
type Analyzer struct {
	metrics *metrics.Metrics
}

// New returns an Analyzer. m may be nil, in which case metrics are not recorded.
func New(m *metrics.Metrics) *Analyzer {
	return &Analyzer{metrics: m}
}

// Analyze runs the candidate-pruned pairwise comparison described for the
// Analyzer component: each rule is inserted in position order into one
// PrefixForest built for this call, the forest returns the bitmap of earlier rule positions comparable in every
// dimension, and each candidate is classified against the new rule.
func (a *Analyzer) Analyze(acl *aclpkg.ACL) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()

	forest := trie.NewForest(uint32(len(acl.Rules)))
	result := &Result{
		ACLName:   acl.Name,
		RunID:     runID,
		RuleCount: len(acl.Rules),
	}

	var candidatePopulation uint64

	for j, ruleY := range acl.Rules {
		prefixes := ruleY.Prefixes()
		candidates, err := forest.AddRule(uint32(j), prefixes)
		if err != nil {
			return nil, err
		}

		it, err := candidates.IterOnes(0, uint32(j))
		if err != nil {
			return nil, err
		}

		for {
			i, ok := it.Next()
			if !ok {
				break
			}
			candidatePopulation++

			ruleX := acl.Rules[i]
			conflict := classify.Classify(ruleX, ruleY)
			if conflict.Kind == classify.ConflictNone {
				continue
			}

			result.Conflicts = append(result.Conflicts, conflict)
			if a.metrics != nil {
				a.metrics.RecordConflict(conflict.Kind.String())
			}
		}
	}

	result.Duration = time.Since(start)

	if a.metrics != nil {
		a.metrics.AnalysisDuration.Observe(result.Duration.Seconds())
		a.metrics.RulesAnalyzed.Add(float64(result.RuleCount))
		a.metrics.ACLsProcessed.Inc()

		n := float64(result.RuleCount)
		baseline := n * (n - 1) / 2
		if baseline > 0 {
			a.metrics.CandidatesPruned.Set(float64(candidatePopulation) / baseline)
		}
	}

	logging.Infof("[ANALYZER] run=%s acl=%s rules=%d conflicts=%d duration=%s",
		runID, acl.Name, result.RuleCount, len(result.Conflicts), result.Duration)

	return result, nil
}
