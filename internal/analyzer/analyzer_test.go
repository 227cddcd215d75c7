// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package analyzer

import (
	"testing"

	aclpkg "grimm.is/aclcheck/internal/acl"
	"grimm.is/aclcheck/internal/classify"
)

func buildShadowingACL(t *testing.T) *aclpkg.ACL {
	t.Helper()
	a := aclpkg.New("test")

	deny := a.AddRule()
	if err := deny.SetAction(aclpkg.ActionDeny); err != nil {
		t.Fatalf("SetAction: %v", err)
	}
	if err := deny.SetSrcIP(aclpkg.IPv4Range{Start: 0x0A000000, Stop: 0x0AFFFFFF}); err != nil {
		t.Fatalf("SetSrcIP: %v", err)
	}

	allow := a.AddRule()
	if err := allow.SetSrcIP(aclpkg.IPv4Range{Start: 0x0A000010, Stop: 0x0A00001F}); err != nil {
		t.Fatalf("SetSrcIP: %v", err)
	}

	return a
}

func TestAnalyzeFindsShadowing(t *testing.T) {
	a := New(nil)
	result, err := a.Analyze(buildShadowingACL(t))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(result.Conflicts) != 1 {
		t.Fatalf("len(Conflicts) = %d, want 1", len(result.Conflicts))
	}
	if result.Conflicts[0].Kind != classify.ConflictShadowing {
		t.Fatalf("Kind = %v, want ConflictShadowing", result.Conflicts[0].Kind)
	}
	if result.RuleCount != 2 {
		t.Fatalf("RuleCount = %d, want 2", result.RuleCount)
	}
	if result.RunID == "" {
		t.Fatalf("expected a non-empty RunID")
	}
}

func TestAnalyzeEmptyACLHasNoConflicts(t *testing.T) {
	a := New(nil)
	result, err := a.Analyze(aclpkg.New("empty"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(result.Conflicts) != 0 {
		t.Fatalf("expected no conflicts for empty ACL")
	}
}

func TestAnalyzeBatchPreservesOrder(t *testing.T) {
	a := New(nil)
	acls := []*aclpkg.ACL{
		buildShadowingACL(t),
		aclpkg.New("empty-1"),
		buildShadowingACL(t),
		aclpkg.New("empty-2"),
	}

	results, err := a.AnalyzeBatch(acls)
	if err != nil {
		t.Fatalf("AnalyzeBatch: %v", err)
	}
	if len(results) != len(acls) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(acls))
	}
	for i, want := range []string{"test", "empty-1", "test", "empty-2"} {
		if results[i].ACLName != want {
			t.Errorf("results[%d].ACLName = %q, want %q", i, results[i].ACLName, want)
		}
	}
	if len(results[0].Conflicts) != 1 || len(results[2].Conflicts) != 1 {
		t.Fatalf("expected shadowing conflicts in positions 0 and 2")
	}
}
