// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package acl

import "strconv"

var wellKnownPortNames = map[uint16]string{
	7: "echo",
	9: "discard",
	13: "daytime",
	19: "chargen",
	20: "ftp-data",
	21: "ftp",
	22: "ssh",
	23: "telnet",
	25: "smtp",
	37: "time",
	42: "nameserver",
	43: "whois",
	49: "tacacs",
	53: "dns",
	65: "tacacs-ds",
	67: "bootps",
	68: "bootpc",
	69: "tftp",
	70: "gopher",
	79: "finger",
	80: "http",
	88: "kerberos-sec",
	101: "hostname",
	109: "pop2",
	110: "pop3",
	111: "sunrpc",
	113: "ident",
	119: "nntp",
	123: "ntp",
	137: "netbios-ns",
	138: "netbios-dgm",
	139: "netbios-ss",
	143: "imap",
	161: "snmp",
	162: "snmptrap",
	177: "xdmcp",
	179: "bgp",
	194: "irc",
	195: "dnsix",
	389: "ldap",
	434: "mobile-ip",
	435: "mobilip-mn",
	443: "https",
	444: "snpp",
	496: "pim-auto-rp",
	500: "isakmp",
	512: "biff",
	513: "login",
	514: "syslog",
	515: "lpd",
	517: "talk",
	518: "ntalk",
	520: "rip",
	525: "timed",
	540: "uucp",
	543: "klogin",
	544: "kshell",
	547: "dhcp",
	639: "msdp",
	646: "ldp",
	754: "krb-prop",
	760: "krbupdate",
	761: "kpasswd",
	1080: "socks",
	1483: "afs",
	1645: "radius-old",
	1723: "pptp",
	1812: "radius",
	1813: "radacct",
	2049: "nfsd",
	2103: "zephyr-clt",
	2104: "zephyr-hm",
	2105: "eklogin",
	2106: "ekshell",
	2108: "rkinit",
	2401: "cvspserver",
	4500: "non500-isakmp",
}

// PortName renders a port number using its canonical well-known name when
// one exists, or its decimal value otherwise.
func PortName(p uint16) string {
	if name, ok := wellKnownPortNames[p]; ok {
		return name
	}
	return strconv.Itoa(int(p))
}
