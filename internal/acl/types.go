// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package acl holds the rule and ACL entity model: protocols, IPv4 and
// port ranges, actions, and the derived per-dimension prefix encodings
// consumed by package trie and package classify.
package acl

import (
	"fmt"
	"strings"

	aclerrors "grimm.is/aclcheck/internal/errors"
)

// Protocol is a tagged scalar over the IANA protocol-number space plus two
// synthetic values used only for matching, never assigned to real traffic.
type Protocol int32

const (
	// ProtocolAny matches every protocol; it is the empty prefix, the
	// supremum of the protocol prefix lattice.
	ProtocolAny Protocol = -2
	// ProtocolIPv4 matches every concrete IPv4-payload protocol; prefix "1".
	ProtocolIPv4 Protocol = -1
)

// Valid reports whether p is in the accepted range [-2, 255].
func (p Protocol) Valid() bool {
	return p >= ProtocolAny && p <= 255
}

// Action is the rule verdict.
type Action int

const (
	ActionAllow Action = iota
	ActionDeny
)

func (a Action) String() string {
	switch a {
	case ActionAllow:
		return "allow"
	case ActionDeny:
		return "deny"
	default:
		return "unknown"
	}
}

// ParseAction converts a case-insensitive action token. Accepts allow,
// permit (a common ACL-vendor synonym for allow), and deny.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "allow", "permit":
		return ActionAllow, nil
	case "deny":
		return ActionDeny, nil
	default:
		return 0, aclerrors.Errorf(aclerrors.KindInvalidAction, "acl: invalid action %q", s)
	}
}

// Range is an inclusive, ordered range over an unsigned numeric domain.
type Range[T ~uint32 | ~uint16] struct {
	Start T
	Stop  T
}

// Full reports whether r spans the entire domain of T.
func (r Range[T]) Full() bool {
	var max T
	max--
	return r.Start == 0 && r.Stop == max
}

// PortSpec is a port Range plus a negation flag. A negated spec matches
// the complement of its range within [0, 65535].
type PortSpec struct {
	Range    Range[uint16]
	Negated  bool
}

// IPv4Range is an inclusive range of 32-bit IPv4 addresses, big-endian.
type IPv4Range = Range[uint32]

func validRange[T ~uint32 | ~uint16](r Range[T]) error {
	if r.Start > r.Stop {
		return aclerrors.Errorf(aclerrors.KindInvalidRange, "acl: range start %d > stop %d", r.Start, r.Stop)
	}
	return nil
}

// Rule is one five-tuple predicate plus a verdict, owned by an ACL.
type Rule struct {
	position uint32
	name     string

	protocol Protocol
	srcIP    IPv4Range
	dstIP    IPv4Range
	srcPort  PortSpec
	dstPort  PortSpec
	action   Action

	protoPrefix   []bool
	srcIPPrefix   []bool
	dstIPPrefix   []bool
	srcPortPrefix []bool
	dstPortPrefix []bool
}

// NewRule constructs a rule at position with the decimal rendering of
// position as its default name, protocol ANY, full address/port ranges,
// and action ALLOW. Callers set dimensions via the setters below.
func NewRule(position uint32) *Rule {
	r := &Rule{
		position: position,
		name:     fmt.Sprintf("%d", position),
		protocol: ProtocolAny,
		srcIP:    IPv4Range{Start: 0, Stop: 0xFFFFFFFF},
		dstIP:    IPv4Range{Start: 0, Stop: 0xFFFFFFFF},
		srcPort:  PortSpec{Range: Range[uint16]{Start: 0, Stop: 0xFFFF}},
		dstPort:  PortSpec{Range: Range[uint16]{Start: 0, Stop: 0xFFFF}},
		action:   ActionAllow,
	}
	r.recomputeAllPrefixes()
	return r
}

// Position returns the rule's 0-based position within its owning ACL.
func (r *Rule) Position() uint32 { return r.position }

// Name returns the rule's display name.
func (r *Rule) Name() string { return r.name }

// SetName overrides the default decimal name.
func (r *Rule) SetName(name string) { r.name = name }

// Protocol returns the rule's protocol.
func (r *Rule) Protocol() Protocol { return r.protocol }

// SetProtocol validates and sets the protocol, recomputing its prefix.
// An out-of-range protocol is reported and the setter is a no-op.
func (r *Rule) SetProtocol(p Protocol) error {
	if !p.Valid() {
		return aclerrors.Errorf(aclerrors.KindInvalidProtocol, "acl: protocol %d outside [-2,255]", p)
	}
	r.protocol = p
	r.protoPrefix = protocolPrefix(p)
	return nil
}

// Action returns the rule's verdict.
func (r *Rule) Action() Action { return r.action }

// SetAction validates and sets the action.
func (r *Rule) SetAction(a Action) error {
	if a != ActionAllow && a != ActionDeny {
		return aclerrors.Errorf(aclerrors.KindInvalidAction, "acl: invalid action %d", a)
	}
	r.action = a
	return nil
}

// SrcIP returns the source address range.
func (r *Rule) SrcIP() IPv4Range { return r.srcIP }

// SetSrcIP sets the source address range and recomputes its prefix.
func (r *Rule) SetSrcIP(rng IPv4Range) error {
	if err := validRange(rng); err != nil {
		return err
	}
	r.srcIP = rng
	r.srcIPPrefix = ipPrefix(rng)
	return nil
}

// SetSrcIPPrefix sets the source address range from its prefix form,
// zero-extending start and one-extending stop below the prefix, and
// caches bits as the prefix directly rather than recomputing it.
func (r *Rule) SetSrcIPPrefix(bits []bool) error {
	if len(bits) > 32 {
		return aclerrors.Errorf(aclerrors.KindInvalidRange, "acl: src ip prefix length %d exceeds 32", len(bits))
	}
	start, stop := rangeOfPrefix(bits, 32)
	r.srcIP = IPv4Range{Start: start, Stop: stop}
	r.srcIPPrefix = append([]bool(nil), bits...)
	return nil
}

// DstIP returns the destination address range.
func (r *Rule) DstIP() IPv4Range { return r.dstIP }

// SetDstIP sets the destination address range and recomputes its prefix.
func (r *Rule) SetDstIP(rng IPv4Range) error {
	if err := validRange(rng); err != nil {
		return err
	}
	r.dstIP = rng
	r.dstIPPrefix = ipPrefix(rng)
	return nil
}

// SetDstIPPrefix sets the destination address range from its prefix
// form, zero-extending start and one-extending stop below the prefix.
func (r *Rule) SetDstIPPrefix(bits []bool) error {
	if len(bits) > 32 {
		return aclerrors.Errorf(aclerrors.KindInvalidRange, "acl: dst ip prefix length %d exceeds 32", len(bits))
	}
	start, stop := rangeOfPrefix(bits, 32)
	r.dstIP = IPv4Range{Start: start, Stop: stop}
	r.dstIPPrefix = append([]bool(nil), bits...)
	return nil
}

// SrcPort returns the source port spec.
func (r *Rule) SrcPort() PortSpec { return r.srcPort }

// SetSrcPort sets the source port spec and recomputes its prefix.
func (r *Rule) SetSrcPort(spec PortSpec) error {
	if err := validRange(spec.Range); err != nil {
		return err
	}
	r.srcPort = spec
	r.srcPortPrefix = portPrefix(spec)
	return nil
}

// SetSrcPortPrefix sets the source port range from its prefix form,
// zero-extending start and one-extending stop below the prefix, and
// clears Negated since a negated range has no prefix encoding.
func (r *Rule) SetSrcPortPrefix(bits []bool) error {
	if len(bits) > 16 {
		return aclerrors.Errorf(aclerrors.KindInvalidRange, "acl: src port prefix length %d exceeds 16", len(bits))
	}
	start, stop := rangeOfPrefix(bits, 16)
	r.srcPort = PortSpec{Range: Range[uint16]{Start: uint16(start), Stop: uint16(stop)}}
	r.srcPortPrefix = append([]bool(nil), bits...)
	return nil
}

// DstPort returns the destination port spec.
func (r *Rule) DstPort() PortSpec { return r.dstPort }

// SetDstPort sets the destination port spec and recomputes its prefix.
func (r *Rule) SetDstPort(spec PortSpec) error {
	if err := validRange(spec.Range); err != nil {
		return err
	}
	r.dstPort = spec
	r.dstPortPrefix = portPrefix(spec)
	return nil
}

// SetDstPortPrefix sets the destination port range from its prefix
// form, zero-extending start and one-extending stop below the prefix,
// and clears Negated since a negated range has no prefix encoding.
func (r *Rule) SetDstPortPrefix(bits []bool) error {
	if len(bits) > 16 {
		return aclerrors.Errorf(aclerrors.KindInvalidRange, "acl: dst port prefix length %d exceeds 16", len(bits))
	}
	start, stop := rangeOfPrefix(bits, 16)
	r.dstPort = PortSpec{Range: Range[uint16]{Start: uint16(start), Stop: uint16(stop)}}
	r.dstPortPrefix = append([]bool(nil), bits...)
	return nil
}

func (r *Rule) recomputeAllPrefixes() {
	r.protoPrefix = protocolPrefix(r.protocol)
	r.srcIPPrefix = ipPrefix(r.srcIP)
	r.dstIPPrefix = ipPrefix(r.dstIP)
	r.srcPortPrefix = portPrefix(r.srcPort)
	r.dstPortPrefix = portPrefix(r.dstPort)
}

// Prefixes returns the rule's five per-dimension prefix encodings in the
// fixed dimension order protocol, src_ip, dst_ip, src_port, dst_port.
func (r *Rule) Prefixes() [5][]bool {
	return [5][]bool{r.protoPrefix, r.srcIPPrefix, r.dstIPPrefix, r.srcPortPrefix, r.dstPortPrefix}
}

// ACL is a named, ordered sequence of rules, evaluated first-match.
type ACL struct {
	Name  string
	Rules []*Rule
}

// New returns an empty ACL named name.
func New(name string) *ACL {
	return &ACL{Name: name}
}

// AddRule appends a new rule at the next position and returns it.
func (a *ACL) AddRule() *Rule {
	r := NewRule(uint32(len(a.Rules)))
	a.Rules = append(a.Rules, r)
	return r
}
