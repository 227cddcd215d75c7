// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package ingest turns YAML or JSON ACL documents into package acl's
// entity model. A batch of ACLs from one stream is independent per-ACL:
// one malformed document is recorded and skipped, and parsing continues
// with the rest.
package ingest

import (
	"fmt"

	aclpkg "grimm.is/aclcheck/internal/acl"
	aclerrors "grimm.is/aclcheck/internal/errors"
)

// ruleDoc is the wire shape of one rule, shared by the YAML and JSON
// parsers. The four range/spec fields accept either a rendered string
// (see package acl's Parse* helpers) or an explicit map with start/stop/
// negated keys, so they are decoded generically and resolved afterward.
type ruleDoc struct {
	Name     string      `yaml:"name,omitempty" json:"name,omitempty"`
	Protocol string      `yaml:"protocol" json:"protocol"`
	SrcIP    interface{} `yaml:"src_ip" json:"src_ip"`
	DstIP    interface{} `yaml:"dst_ip" json:"dst_ip"`
	SrcPort  interface{} `yaml:"src_port" json:"src_port"`
	DstPort  interface{} `yaml:"dst_port" json:"dst_port"`
	Action   string      `yaml:"action" json:"action"`
}

// aclDoc is the wire shape of one ACL document.
type aclDoc struct {
	Name  string    `yaml:"name" json:"name"`
	Rules []ruleDoc `yaml:"rules" json:"rules"`
}

// buildACL converts a decoded aclDoc into an *acl.ACL, applying the
// ingestion contract (position assignment, range setters, validation).
func buildACL(doc aclDoc) (*aclpkg.ACL, error) {
	a := aclpkg.New(doc.Name)

	for i, rd := range doc.Rules {
		r := a.AddRule()
		if rd.Name != "" {
			r.SetName(rd.Name)
		}

		proto, err := aclpkg.ParseProtocol(rd.Protocol)
		if err != nil {
			return nil, aclerrors.Wrapf(err, aclerrors.GetKind(err), "ingest: acl %q rule %d: protocol", doc.Name, i)
		}
		if err := r.SetProtocol(proto); err != nil {
			return nil, err
		}

		srcIP, err := resolveIPv4Range(rd.SrcIP)
		if err != nil {
			return nil, aclerrors.Wrapf(err, aclerrors.GetKind(err), "ingest: acl %q rule %d: src_ip", doc.Name, i)
		}
		if err := r.SetSrcIP(srcIP); err != nil {
			return nil, err
		}

		dstIP, err := resolveIPv4Range(rd.DstIP)
		if err != nil {
			return nil, aclerrors.Wrapf(err, aclerrors.GetKind(err), "ingest: acl %q rule %d: dst_ip", doc.Name, i)
		}
		if err := r.SetDstIP(dstIP); err != nil {
			return nil, err
		}

		srcPort, err := resolvePortSpec(rd.SrcPort)
		if err != nil {
			return nil, aclerrors.Wrapf(err, aclerrors.GetKind(err), "ingest: acl %q rule %d: src_port", doc.Name, i)
		}
		if err := r.SetSrcPort(srcPort); err != nil {
			return nil, err
		}

		dstPort, err := resolvePortSpec(rd.DstPort)
		if err != nil {
			return nil, aclerrors.Wrapf(err, aclerrors.GetKind(err), "ingest: acl %q rule %d: dst_port", doc.Name, i)
		}
		if err := r.SetDstPort(dstPort); err != nil {
			return nil, err
		}

		action, err := aclpkg.ParseAction(rd.Action)
		if err != nil {
			return nil, err
		}
		if err := r.SetAction(action); err != nil {
			return nil, err
		}
	}

	return a, nil
}

func resolveIPv4Range(v interface{}) (aclpkg.IPv4Range, error) {
	switch t := v.(type) {
	case string:
		return aclpkg.ParseIPv4Range(t)
	case map[string]interface{}:
		start, err := ipv4FieldToString(t["start"])
		if err != nil {
			return aclpkg.IPv4Range{}, err
		}
		stop, err := ipv4FieldToString(t["stop"])
		if err != nil {
			return aclpkg.IPv4Range{}, err
		}
		startRange, err := aclpkg.ParseIPv4Range(start)
		if err != nil {
			return aclpkg.IPv4Range{}, err
		}
		stopRange, err := aclpkg.ParseIPv4Range(stop)
		if err != nil {
			return aclpkg.IPv4Range{}, err
		}
		return aclpkg.IPv4Range{Start: startRange.Start, Stop: stopRange.Start}, nil
	case nil:
		return aclpkg.ParseIPv4Range("any")
	default:
		return aclpkg.IPv4Range{}, aclerrors.Errorf(aclerrors.KindValidation, "ingest: unrecognized ip field %v", v)
	}
}

func ipv4FieldToString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", aclerrors.Errorf(aclerrors.KindValidation, "ingest: expected string address, got %v", v)
	}
	return s, nil
}

func resolvePortSpec(v interface{}) (aclpkg.PortSpec, error) {
	switch t := v.(type) {
	case string:
		return aclpkg.ParsePortSpec(t)
	case map[string]interface{}:
		startStr, err := portFieldToString(t["start"])
		if err != nil {
			return aclpkg.PortSpec{}, err
		}
		stopStr, err := portFieldToString(t["stop"])
		if err != nil {
			return aclpkg.PortSpec{}, err
		}
		start, err := aclpkg.ParsePort(startStr)
		if err != nil {
			return aclpkg.PortSpec{}, err
		}
		stop, err := aclpkg.ParsePort(stopStr)
		if err != nil {
			return aclpkg.PortSpec{}, err
		}
		negated, _ := t["negated"].(bool)
		return aclpkg.PortSpec{Range: aclpkg.Range[uint16]{Start: start, Stop: stop}, Negated: negated}, nil
	case nil:
		return aclpkg.ParsePortSpec("any")
	default:
		return aclpkg.PortSpec{}, aclerrors.Errorf(aclerrors.KindValidation, "ingest: unrecognized port field %v", v)
	}
}

func portFieldToString(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int:
		return fmt.Sprintf("%d", t), nil
	case float64:
		return fmt.Sprintf("%d", int(t)), nil
	default:
		return "", aclerrors.Errorf(aclerrors.KindValidation, "ingest: expected port value, got %v", v)
	}
}
