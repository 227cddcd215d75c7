// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package acl

import "fmt"

// RenderIP formats a 32-bit address in dotted-quad notation.
func RenderIP(addr uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d",
		byte(addr>>24), byte(addr>>16), byte(addr>>8), byte(addr))
}

// RenderIPRange renders an IPv4Range per the system's conventions: "any"
// when full, a single address when start == stop, else a dashed range.
func RenderIPRange(r IPv4Range) string {
	if r.Full() {
		return "any"
	}
	if r.Start == r.Stop {
		return RenderIP(r.Start)
	}
	return fmt.Sprintf("%s-%s", RenderIP(r.Start), RenderIP(r.Stop))
}

// RenderPortRange renders a port Range: "any" when full, the well-known
// name or decimal number when start == stop, else a dashed range of the
// same. Negation is the caller's concern (see RenderPortSpec).
func RenderPortRange(r Range[uint16]) string {
	if r.Full() {
		return "any"
	}
	if r.Start == r.Stop {
		return PortName(r.Start)
	}
	return fmt.Sprintf("%s-%s", PortName(r.Start), PortName(r.Stop))
}

// RenderPortSpec wraps RenderPortRange in "not(...)" for negated specs, as
// only the writer, not the range stringifier, renders negation.
func RenderPortSpec(spec PortSpec) string {
	s := RenderPortRange(spec.Range)
	if spec.Negated {
		return fmt.Sprintf("not(%s)", s)
	}
	return s
}
