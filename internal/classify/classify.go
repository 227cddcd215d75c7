// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package classify compares a pair of rules dimension by dimension and
// resolves the combined relation plus the two rules' actions into a
// conflict kind.
package classify

import (
	"grimm.is/aclcheck/internal/acl"
)

// DimensionRelation is the result of comparing one dimension of rule Y
// against the same dimension of rule X, expressed Y-relative-to-X.
type DimensionRelation int

const (
	RelationNone DimensionRelation = iota
	RelationSubset
	RelationSuperset
	RelationEquiv
	RelationInterleaving
)

func (r DimensionRelation) String() string {
	switch r {
	case RelationNone:
		return "none"
	case RelationSubset:
		return "subset"
	case RelationSuperset:
		return "superset"
	case RelationEquiv:
		return "equiv"
	case RelationInterleaving:
		return "interleaving"
	default:
		return "unknown"
	}
}

// ConflictKind classifies the outcome of comparing two rules.
type ConflictKind int

const (
	ConflictNone ConflictKind = iota
	ConflictRedundancy
	ConflictShadowing
	ConflictGeneralization
	ConflictSuperimposing
	ConflictCorrelation
)

func (k ConflictKind) String() string {
	switch k {
	case ConflictNone:
		return "no_conflict"
	case ConflictRedundancy:
		return "redundancy"
	case ConflictShadowing:
		return "shadowing"
	case ConflictGeneralization:
		return "generalization"
	case ConflictSuperimposing:
		return "superimposing"
	case ConflictCorrelation:
		return "correlation"
	default:
		return "unknown"
	}
}

// Dimension indexes the five fixed comparison axes, matching the order
// package acl's Rule.Prefixes and package trie's Forest use.
type Dimension int

const (
	DimProtocol Dimension = iota
	DimSrcIP
	DimDstIP
	DimSrcPort
	DimDstPort
)

// Conflict records the outcome of comparing an earlier rule X against a
// later rule Y: the combined kind plus each dimension's relation.
type Conflict struct {
	RuleX      *acl.Rule
	RuleY      *acl.Rule
	Kind       ConflictKind
	Dimensions [5]DimensionRelation
}

// Classify compares ruleY against ruleX (X is the earlier, higher-priority
// rule) across all five dimensions and resolves the conflict kind. Callers
// are expected to have already established that the two rules are
// candidates (comparable in every dimension) via the prefix forest; this
// function does no such pre-filtering itself.
func Classify(ruleX, ruleY *acl.Rule) *Conflict {
	c := &Conflict{RuleX: ruleX, RuleY: ruleY}

	c.Dimensions[DimProtocol] = compareProtocol(ruleY.Protocol(), ruleX.Protocol())
	c.Dimensions[DimSrcIP] = compareIPv4Ranges(ruleY.SrcIP(), ruleX.SrcIP())
	c.Dimensions[DimDstIP] = compareIPv4Ranges(ruleY.DstIP(), ruleX.DstIP())
	c.Dimensions[DimSrcPort] = comparePortSpecs(ruleY.SrcPort(), ruleX.SrcPort())
	c.Dimensions[DimDstPort] = comparePortSpecs(ruleY.DstPort(), ruleX.DstPort())

	combined := RelationEquiv
	for _, d := range c.Dimensions {
		combined = combineRelations(combined, d)
	}

	c.Kind = resolveConflictKind(combined, ruleY.Action(), ruleX.Action())
	return c
}

// compareIPv4Ranges compares range y against range x as inclusive 32-bit
// intervals, returning the relation of y relative to x.
func compareIPv4Ranges(y, x acl.IPv4Range) DimensionRelation {
	if y.Stop < x.Start || x.Stop < y.Start {
		return RelationNone
	}
	if y.Start == x.Start && y.Stop == x.Stop {
		return RelationEquiv
	}
	if y.Start >= x.Start && y.Stop <= x.Stop {
		return RelationSubset
	}
	if y.Start <= x.Start && y.Stop >= x.Stop {
		return RelationSuperset
	}
	return RelationInterleaving
}

// comparePortRanges compares y against x as inclusive 16-bit intervals,
// ignoring negation.
func comparePortRanges(y, x acl.Range[uint16]) DimensionRelation {
	if y.Stop < x.Start || x.Stop < y.Start {
		return RelationNone
	}
	if y.Start == x.Start && y.Stop == x.Stop {
		return RelationEquiv
	}
	if y.Start >= x.Start && y.Stop <= x.Stop {
		return RelationSubset
	}
	if y.Start <= x.Start && y.Stop >= x.Stop {
		return RelationSuperset
	}
	return RelationInterleaving
}

// comparePortSpecs compares two port specs, each with its own negation
// flag, adjusting the raw range relation through the negation truth table.
func comparePortSpecs(y, x acl.PortSpec) DimensionRelation {
	raw := comparePortRanges(y.Range, x.Range)

	switch raw {
	case RelationNone:
		switch {
		case !y.Negated && !x.Negated:
			return RelationNone
		case y.Negated && !x.Negated:
			return RelationSuperset
		case !y.Negated && x.Negated:
			return RelationSubset
		default: // both negated
			return RelationInterleaving
		}

	case RelationEquiv:
		switch {
		case y.Negated == x.Negated:
			return RelationEquiv
		default:
			return RelationNone
		}

	case RelationSubset:
		switch {
		case !y.Negated && !x.Negated:
			return RelationSubset
		case y.Negated && !x.Negated:
			return RelationInterleaving
		case !y.Negated && x.Negated:
			return RelationNone
		default: // both negated
			return RelationSuperset
		}

	case RelationSuperset:
		switch {
		case !y.Negated && !x.Negated:
			return RelationSuperset
		case y.Negated && !x.Negated:
			return RelationNone
		case !y.Negated && x.Negated:
			return RelationInterleaving
		default: // both negated
			return RelationSubset
		}

	default: // RelationInterleaving
		return RelationInterleaving
	}
}

// compareProtocol compares protocol y against protocol x.
func compareProtocol(y, x acl.Protocol) DimensionRelation {
	switch {
	case y == x:
		return RelationEquiv
	case y == acl.ProtocolAny:
		return RelationSuperset
	case x == acl.ProtocolAny:
		return RelationSubset
	case y == acl.ProtocolIPv4:
		return RelationSuperset
	case x == acl.ProtocolIPv4:
		return RelationSubset
	default:
		return RelationNone
	}
}

// combineRelations folds one more dimension's relation into the running
// global relation. NONE in any dimension makes the pair globally
// incomparable regardless of the relations already combined.
func combineRelations(global, partial DimensionRelation) DimensionRelation {
	switch partial {
	case RelationEquiv:
		return global
	case RelationSubset:
		switch global {
		case RelationEquiv, RelationSubset:
			return RelationSubset
		case RelationSuperset, RelationInterleaving:
			return RelationInterleaving
		}
	case RelationSuperset:
		switch global {
		case RelationEquiv, RelationSuperset:
			return RelationSuperset
		case RelationSubset, RelationInterleaving:
			return RelationInterleaving
		}
	case RelationInterleaving:
		if global != RelationNone {
			return RelationInterleaving
		}
	}
	return RelationNone
}

// resolveConflictKind maps the combined relation plus the two rules'
// actions to a conflict kind.
func resolveConflictKind(combined DimensionRelation, actY, actX acl.Action) ConflictKind {
	sameAction := actY == actX

	switch combined {
	case RelationEquiv, RelationSubset:
		if sameAction {
			return ConflictRedundancy
		}
		return ConflictShadowing
	case RelationSuperset:
		if sameAction {
			return ConflictRedundancy
		}
		return ConflictGeneralization
	case RelationInterleaving:
		if sameAction {
			return ConflictSuperimposing
		}
		return ConflictCorrelation
	default:
		return ConflictNone
	}
}
