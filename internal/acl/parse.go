// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package acl

import (
	"net"
	"strconv"
	"strings"

	aclerrors "grimm.is/aclcheck/internal/errors"
)

var protocolNameToNumber map[string]Protocol

func init() {
	protocolNameToNumber = make(map[string]Protocol, len(protocolRenderName))
	for num, name := range protocolRenderName {
		protocolNameToNumber[name] = Protocol(num)
	}
}

// ParseProtocol accepts "any", "ip", a canonical short name (tcp, udp,
// icmp, ...), or a decimal IANA protocol number.
func ParseProtocol(s string) (Protocol, error) {
	switch s {
	case "any":
		return ProtocolAny, nil
	case "ip":
		return ProtocolIPv4, nil
	}
	if p, ok := protocolNameToNumber[s]; ok {
		return p, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, aclerrors.Errorf(aclerrors.KindInvalidProtocol, "acl: unrecognized protocol %q", s)
	}
	p := Protocol(n)
	if !p.Valid() {
		return 0, aclerrors.Errorf(aclerrors.KindInvalidProtocol, "acl: protocol %d outside [-2,255]", n)
	}
	return p, nil
}

var portNameToNumber map[string]uint16

func init() {
	portNameToNumber = make(map[string]uint16, len(wellKnownPortNames))
	for num, name := range wellKnownPortNames {
		portNameToNumber[name] = num
	}
}

// ParsePort accepts a well-known service name or a decimal port number.
func ParsePort(s string) (uint16, error) {
	if p, ok := portNameToNumber[s]; ok {
		return p, nil
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, aclerrors.Errorf(aclerrors.KindInvalidRange, "acl: unrecognized port %q", s)
	}
	return uint16(n), nil
}

// ParseIPv4Range accepts "any", a single dotted-quad address, or a
// dash-separated "start-stop" dotted-quad range.
func ParseIPv4Range(s string) (IPv4Range, error) {
	if s == "any" {
		return IPv4Range{Start: 0, Stop: 0xFFFFFFFF}, nil
	}
	if start, stop, ok := strings.Cut(s, "-"); ok {
		a, err := parseIPv4Addr(start)
		if err != nil {
			return IPv4Range{}, err
		}
		b, err := parseIPv4Addr(stop)
		if err != nil {
			return IPv4Range{}, err
		}
		return IPv4Range{Start: a, Stop: b}, nil
	}
	a, err := parseIPv4Addr(s)
	if err != nil {
		return IPv4Range{}, err
	}
	return IPv4Range{Start: a, Stop: a}, nil
}

func parseIPv4Addr(s string) (uint32, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return 0, aclerrors.Errorf(aclerrors.KindInvalidRange, "acl: invalid IPv4 address %q", s)
	}
	v4 := ip.To4()
	if v4 == nil {
		return 0, aclerrors.Errorf(aclerrors.KindInvalidRange, "acl: not an IPv4 address %q", s)
	}
	return uint32(v4[0])<<24 | uint32(v4[1])<<16 | uint32(v4[2])<<8 | uint32(v4[3]), nil
}

// ParsePortSpec accepts "any", "not(...)" wrapping a port or port range,
// a single port (name or number), or a dash-separated "start-stop" range.
func ParsePortSpec(s string) (PortSpec, error) {
	negated := false
	if strings.HasPrefix(s, "not(") && strings.HasSuffix(s, ")") {
		negated = true
		s = s[len("not(") : len(s)-1]
	}

	if s == "any" {
		return PortSpec{Range: Range[uint16]{Start: 0, Stop: 0xFFFF}, Negated: negated}, nil
	}

	if start, stop, ok := strings.Cut(s, "-"); ok {
		a, err := ParsePort(start)
		if err != nil {
			return PortSpec{}, err
		}
		b, err := ParsePort(stop)
		if err != nil {
			return PortSpec{}, err
		}
		return PortSpec{Range: Range[uint16]{Start: a, Stop: b}, Negated: negated}, nil
	}

	p, err := ParsePort(s)
	if err != nil {
		return PortSpec{}, err
	}
	return PortSpec{Range: Range[uint16]{Start: p, Stop: p}, Negated: negated}, nil
}
