// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package classify

import (
	"testing"

	"grimm.is/aclcheck/internal/acl"
)

func mustSetSrcIP(t *testing.T, r *acl.Rule, rng acl.IPv4Range) {
	t.Helper()
	if err := r.SetSrcIP(rng); err != nil {
		t.Fatalf("SetSrcIP: %v", err)
	}
}

func TestCompareIPv4RangesRelations(t *testing.T) {
	cases := []struct {
		name   string
		y, x   acl.IPv4Range
		expect DimensionRelation
	}{
		{"disjoint", acl.IPv4Range{Start: 0, Stop: 10}, acl.IPv4Range{Start: 20, Stop: 30}, RelationNone},
		{"equiv", acl.IPv4Range{Start: 5, Stop: 10}, acl.IPv4Range{Start: 5, Stop: 10}, RelationEquiv},
		{"subset", acl.IPv4Range{Start: 6, Stop: 9}, acl.IPv4Range{Start: 5, Stop: 10}, RelationSubset},
		{"superset", acl.IPv4Range{Start: 0, Stop: 100}, acl.IPv4Range{Start: 5, Stop: 10}, RelationSuperset},
		{"interleaving", acl.IPv4Range{Start: 5, Stop: 15}, acl.IPv4Range{Start: 10, Stop: 20}, RelationInterleaving},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := compareIPv4Ranges(c.y, c.x); got != c.expect {
				t.Errorf("compareIPv4Ranges(%+v, %+v) = %v, want %v", c.y, c.x, got, c.expect)
			}
		})
	}
}

func TestComparePortSpecsNegationTable(t *testing.T) {
	full := acl.Range[uint16]{Start: 0, Stop: 65535}
	_ = full

	cases := []struct {
		name   string
		y, x   acl.PortSpec
		expect DimensionRelation
	}{
		{
			"none-neither-negated",
			acl.PortSpec{Range: acl.Range[uint16]{Start: 0, Stop: 10}},
			acl.PortSpec{Range: acl.Range[uint16]{Start: 20, Stop: 30}},
			RelationNone,
		},
		{
			"none-y-negated",
			acl.PortSpec{Range: acl.Range[uint16]{Start: 0, Stop: 10}, Negated: true},
			acl.PortSpec{Range: acl.Range[uint16]{Start: 20, Stop: 30}},
			RelationSuperset,
		},
		{
			"none-x-negated",
			acl.PortSpec{Range: acl.Range[uint16]{Start: 0, Stop: 10}},
			acl.PortSpec{Range: acl.Range[uint16]{Start: 20, Stop: 30}, Negated: true},
			RelationSubset,
		},
		{
			"none-both-negated",
			acl.PortSpec{Range: acl.Range[uint16]{Start: 0, Stop: 10}, Negated: true},
			acl.PortSpec{Range: acl.Range[uint16]{Start: 20, Stop: 30}, Negated: true},
			RelationInterleaving,
		},
		{
			"equiv-neither-negated",
			acl.PortSpec{Range: acl.Range[uint16]{Start: 5, Stop: 10}},
			acl.PortSpec{Range: acl.Range[uint16]{Start: 5, Stop: 10}},
			RelationEquiv,
		},
		{
			"equiv-both-negated",
			acl.PortSpec{Range: acl.Range[uint16]{Start: 5, Stop: 10}, Negated: true},
			acl.PortSpec{Range: acl.Range[uint16]{Start: 5, Stop: 10}, Negated: true},
			RelationEquiv,
		},
		{
			"equiv-one-negated",
			acl.PortSpec{Range: acl.Range[uint16]{Start: 5, Stop: 10}, Negated: true},
			acl.PortSpec{Range: acl.Range[uint16]{Start: 5, Stop: 10}},
			RelationNone,
		},
		{
			"subset-neither-negated",
			acl.PortSpec{Range: acl.Range[uint16]{Start: 6, Stop: 9}},
			acl.PortSpec{Range: acl.Range[uint16]{Start: 5, Stop: 10}},
			RelationSubset,
		},
		{
			"subset-y-negated",
			acl.PortSpec{Range: acl.Range[uint16]{Start: 6, Stop: 9}, Negated: true},
			acl.PortSpec{Range: acl.Range[uint16]{Start: 5, Stop: 10}},
			RelationInterleaving,
		},
		{
			"subset-x-negated",
			acl.PortSpec{Range: acl.Range[uint16]{Start: 6, Stop: 9}},
			acl.PortSpec{Range: acl.Range[uint16]{Start: 5, Stop: 10}, Negated: true},
			RelationNone,
		},
		{
			"subset-both-negated",
			acl.PortSpec{Range: acl.Range[uint16]{Start: 6, Stop: 9}, Negated: true},
			acl.PortSpec{Range: acl.Range[uint16]{Start: 5, Stop: 10}, Negated: true},
			RelationSuperset,
		},
		{
			"superset-both-negated",
			acl.PortSpec{Range: acl.Range[uint16]{Start: 5, Stop: 10}, Negated: true},
			acl.PortSpec{Range: acl.Range[uint16]{Start: 6, Stop: 9}, Negated: true},
			RelationSubset,
		},
		{
			"interleaving-preserved",
			acl.PortSpec{Range: acl.Range[uint16]{Start: 5, Stop: 15}},
			acl.PortSpec{Range: acl.Range[uint16]{Start: 10, Stop: 20}},
			RelationInterleaving,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := comparePortSpecs(c.y, c.x); got != c.expect {
				t.Errorf("comparePortSpecs(%+v, %+v) = %v, want %v", c.y, c.x, got, c.expect)
			}
		})
	}
}

func TestCompareProtocol(t *testing.T) {
	cases := []struct {
		y, x   acl.Protocol
		expect DimensionRelation
	}{
		{6, 6, RelationEquiv},
		{acl.ProtocolAny, 6, RelationSuperset},
		{6, acl.ProtocolAny, RelationSubset},
		{acl.ProtocolIPv4, 6, RelationSuperset},
		{6, acl.ProtocolIPv4, RelationSubset},
		{6, 17, RelationNone},
	}
	for _, c := range cases {
		if got := compareProtocol(c.y, c.x); got != c.expect {
			t.Errorf("compareProtocol(%d, %d) = %v, want %v", c.y, c.x, got, c.expect)
		}
	}
}

func TestCombineRelationsTable(t *testing.T) {
	cases := []struct {
		global, partial, expect DimensionRelation
	}{
		{RelationEquiv, RelationEquiv, RelationEquiv},
		{RelationSubset, RelationEquiv, RelationSubset},
		{RelationEquiv, RelationSubset, RelationSubset},
		{RelationSubset, RelationSubset, RelationSubset},
		{RelationSuperset, RelationSubset, RelationInterleaving},
		{RelationInterleaving, RelationSubset, RelationInterleaving},
		{RelationEquiv, RelationSuperset, RelationSuperset},
		{RelationSuperset, RelationSuperset, RelationSuperset},
		{RelationSubset, RelationSuperset, RelationInterleaving},
		{RelationEquiv, RelationInterleaving, RelationInterleaving},
		{RelationNone, RelationInterleaving, RelationNone},
		{RelationNone, RelationEquiv, RelationNone},
		{RelationEquiv, RelationNone, RelationNone},
	}
	for _, c := range cases {
		if got := combineRelations(c.global, c.partial); got != c.expect {
			t.Errorf("combineRelations(%v, %v) = %v, want %v", c.global, c.partial, got, c.expect)
		}
	}
}

func TestResolveConflictKindTable(t *testing.T) {
	cases := []struct {
		combined          DimensionRelation
		sameAction        bool
		expect            ConflictKind
	}{
		{RelationNone, true, ConflictNone},
		{RelationNone, false, ConflictNone},
		{RelationEquiv, true, ConflictRedundancy},
		{RelationEquiv, false, ConflictShadowing},
		{RelationSubset, true, ConflictRedundancy},
		{RelationSubset, false, ConflictShadowing},
		{RelationSuperset, true, ConflictRedundancy},
		{RelationSuperset, false, ConflictGeneralization},
		{RelationInterleaving, true, ConflictSuperimposing},
		{RelationInterleaving, false, ConflictCorrelation},
	}
	for _, c := range cases {
		actX := acl.ActionAllow
		actY := acl.ActionAllow
		if !c.sameAction {
			actY = acl.ActionDeny
		}
		if got := resolveConflictKind(c.combined, actY, actX); got != c.expect {
			t.Errorf("resolveConflictKind(%v, sameAction=%v) = %v, want %v", c.combined, c.sameAction, got, c.expect)
		}
	}
}

func TestClassifyIdenticalRulesAreRedundant(t *testing.T) {
	x := acl.NewRule(0)
	y := acl.NewRule(1)

	c := Classify(x, y)
	if c.Kind != ConflictRedundancy {
		t.Fatalf("Kind = %v, want ConflictRedundancy", c.Kind)
	}
	for _, d := range c.Dimensions {
		if d != RelationEquiv {
			t.Errorf("dimension relation = %v, want equiv", d)
		}
	}
}

func TestClassifyShadowing(t *testing.T) {
	x := acl.NewRule(0)
	if err := x.SetAction(acl.ActionDeny); err != nil {
		t.Fatalf("SetAction: %v", err)
	}
	mustSetSrcIP(t, x, acl.IPv4Range{Start: 0x0A000000, Stop: 0x0A0000FF})

	y := acl.NewRule(1)
	mustSetSrcIP(t, y, acl.IPv4Range{Start: 0x0A000010, Stop: 0x0A00001F})

	c := Classify(x, y)
	if c.Kind != ConflictShadowing {
		t.Fatalf("Kind = %v, want ConflictShadowing", c.Kind)
	}
	if c.Dimensions[DimSrcIP] != RelationSubset {
		t.Fatalf("src_ip relation = %v, want subset", c.Dimensions[DimSrcIP])
	}
}

func TestClassifyNoConflictWhenAnyDimensionDisjoint(t *testing.T) {
	x := acl.NewRule(0)
	mustSetSrcIP(t, x, acl.IPv4Range{Start: 0, Stop: 10})

	y := acl.NewRule(1)
	mustSetSrcIP(t, y, acl.IPv4Range{Start: 20, Stop: 30})

	c := Classify(x, y)
	if c.Kind != ConflictNone {
		t.Fatalf("Kind = %v, want ConflictNone", c.Kind)
	}
}
