// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package acl

import "fmt"

// protocolPrefixTable maps each concrete IANA protocol number (0-143) to
// its precomputed prefix bitstring, transcribed from the reference
// implementation's protocol definitions. Numbers 144-255 are outside that
// table; see extendedPrefix in prefix.go for how they are handled.
var protocolPrefixTable = map[int]string{
	0: "1000000000", // PROTO_HOPOPT
	1: "110000", // PROTO_ICMPv4
	2: "110001", // PROTO_IGMP
	3: "1000000001", // PROTO_GGP
	4: "110010", // PROTO_IP_IN_IP
	5: "1000000010", // PROTO_ST
	6: "1111", // PROTO_TCP
	7: "1000000011", // PROTO_CBT
	8: "1000000100", // PROTO_EGP
	9: "1000000101", // PROTO_IGP
	10: "1000000110", // PROTO_BBN_RCC_MON
	11: "1000000111", // PROTO_NVP_II
	12: "1000001000", // PROTO_PUP
	13: "1000001001", // PROTO_ARGUS
	14: "1000001010", // PROTO_EMCON
	15: "1000001011", // PROTO_XNET
	16: "1000001100", // PROTO_CHAOS
	17: "1110", // PROTO_UDP
	18: "1000001101", // PROTO_MUX
	19: "1000001110", // PROTO_DCN_MEAS
	20: "1000001111", // PROTO_HMP
	21: "1000010000", // PROTO_PRM
	22: "1000010001", // PROTO_XNS_IDP
	23: "1000010010", // PROTO_TRUNK_1
	24: "1000010011", // PROTO_TRUNK_2
	25: "1000010100", // PROTO_LEAF_1
	26: "1000010101", // PROTO_LEAF_2
	27: "1000010110", // PROTO_RDP
	28: "1000010111", // PROTO_IRTP
	29: "1000011000", // PROTO_ISO_TP4
	30: "1000011001", // PROTO_NETBLK
	31: "1000011010", // PROTO_MFE_NSP
	32: "1000011011", // PROTO_METRIT_INP
	33: "1000011100", // PROTO_DCCP
	34: "1000011101", // PROTO_3PC
	35: "1000011110", // PROTO_IDPR
	36: "1000011111", // PROTO_XTP
	37: "1000100000", // PROTO_DDP
	38: "1000100001", // PROTO_IDPR_CMTP
	39: "1000100010", // PROTO_TP_PP
	40: "1000100011", // PROTO_IL
	41: "1000100100", // PROTO_IPv4_IPv6
	42: "1000100101", // PROTO_SDRP
	43: "1000100110", // PROTO_IPv4_IPv6_ROUTE
	44: "1000100111", // PROTO_IPv4_IPv6_FRAG
	45: "1000101000", // PROTO_IDRP
	46: "1000101001", // PROTO_RSVP
	47: "110011", // PROTO_GRE
	48: "1000101010", // PROTO_DSR
	49: "1000101011", // PROTO_BNA
	50: "1000101100", // PROTO_ESP
	51: "1000101101", // PROTO_AH
	52: "1000101110", // PROTO_I_NLSP
	53: "1000101111", // PROTO_SWIPE
	54: "1000110000", // PROTO_NARP
	55: "1000110001", // PROTO_MOBILE
	56: "1000110010", // PROTO_TLSP
	57: "1000110011", // PROTO_SKIP
	58: "1000110100", // PROTO_IPv6_ICMP
	59: "1000110101", // PROTO_IPv6_NONXT
	60: "1000110110", // PROTO_IPv6_OPTS
	61: "1000110111", // PROTO_AHIP
	62: "1000111000", // PROTO_CFTP
	63: "1000111001", // PROTO_ALN
	64: "1000111010", // PROTO_SAT_EXPAK
	65: "1000111011", // PROTO_KRYPTOLAN
	66: "1000111100", // PROTO_RVD
	67: "1000111101", // PROTO_IPPC
	68: "1000111110", // PROTO_ADFS
	69: "1000111111", // PROTO_SAT_MON
	70: "1001000000", // PROTO_VISA
	71: "1001000001", // PROTO_IPCV
	72: "1001000010", // PROTO_CPNX
	73: "1001000011", // PROTO_CPHB
	74: "1001000100", // PROTO_WSN
	75: "1001000101", // PROTO_PVP
	76: "1001000110", // PROTO_BR_SAT_MON
	77: "1001000111", // PROTO_SUN_ND
	78: "1001001000", // PROTO_WB_MON
	79: "1001001001", // PROTO_WB_EXPAK
	80: "1001001010", // PROTO_ISO_IP
	81: "1001001011", // PROTO_VMTP
	82: "1001001100", // PROTO_SECURE_VMTP
	83: "1001001101", // PROTO_VINES
	84: "1001001110", // PROTO_IPTM
	85: "1001001111", // PROTO_NSFNET_IGP
	86: "1001010000", // PROTO_DGP
	87: "1001010001", // PROTO_TCF
	88: "110100", // PROTO_EIGRP
	89: "110101", // PROTO_OSPF
	90: "1001010010", // PROTO_SPRITE_RPC
	91: "1001010011", // PROTO_LARP
	92: "1001010100", // PROTO_MTP
	93: "1001010101", // PROTO_AX_25
	94: "1001010110", // PROTO_IPIP
	95: "1001010111", // PROTO_MICP
	96: "1001011000", // PROTO_SCC_SP
	97: "1001011001", // PROTO_ETHERIP
	98: "1001011010", // PROTO_ENCAP
	99: "1001011011", // PROTO_APES
	100: "1001011100", // PROTO_GMTP
	101: "1001011101", // PROTO_IFMP
	102: "1001011110", // PROTO_PNNI
	103: "110110", // PROTO_PIM
	104: "1001011111", // PROTO_ARIS
	105: "1001100000", // PROTO_SCPS
	106: "1001100001", // PROTO_QNX
	107: "1001100010", // PROTO_AN
	108: "1001100011", // PROTO_IP_COMP
	109: "1001100100", // PROTO_SNP
	110: "1001100101", // PROTO_COMPAQ
	111: "1001100110", // PROTO_IPX_IN_IP
	112: "1001100111", // PROTO_VRRP
	113: "1001101000", // PROTO_PGM
	114: "1001101001", // PROTO_AZHP
	115: "1001101010", // PROTO_L2TP
	116: "1001101011", // PROTO_DDX
	117: "1001101100", // PROTO_IATP
	118: "1001101101", // PROTO_STP
	119: "1001101110", // PROTO_SRP
	120: "1001101111", // PROTO_UTI
	121: "1001110000", // PROTO_SMP
	122: "1001110001", // PROTO_SM
	123: "1001110010", // PROTO_PTP
	124: "1001110011", // PROTO_IPv4_ISIS
	125: "1001110100", // PROTO_FIRE
	126: "1001110101", // PROTO_CRTP
	127: "1001110110", // PROTO_CRUDP
	128: "1001110111", // PROTO_SSCOPMCE
	129: "1001111000", // PROTO_IPLT
	130: "1001111001", // PROTO_SPS
	131: "1001111010", // PROTO_PIPE
	132: "1001111011", // PROTO_SCTP
	133: "1001111100", // PROTO_FC
	134: "1001111101", // PROTO_RSVP_E2E_IGNORE
	135: "1001111110", // PROTO_MH
	136: "1001111111", // PROTO_UDPL
	137: "1010000000", // PROTO_MPLS_IN_IP
	138: "1010000001", // PROTO_MANET
	139: "1010000010", // PROTO_HIP
	140: "1010000011", // PROTO_SHIM6
	141: "1010000100", // PROTO_WESP
	142: "1010000101", // PROTO_ROHC
	143: "1011111111", // PROTO_UNKNOWN
}

// protocolRenderName gives the canonical short rendering for the handful of
// protocols with well-known names; every other concrete number renders as
// its decimal value.
var protocolRenderName = map[int]string{
	6: "tcp", // PROTO_TCP
	17: "udp", // PROTO_UDP
	1: "icmp", // PROTO_ICMPv4
	51: "ah", // PROTO_AH
	50: "esp", // PROTO_ESP
	47: "gre", // PROTO_GRE
	2: "igmp", // PROTO_IGMP
	89: "ospf", // PROTO_OSPF
	103: "pim", // PROTO_PIM
	88: "eigrp", // PROTO_EIGRP
	112: "vrrp", // PROTO_VRRP
	115: "l2tp", // PROTO_L2TP
	132: "sctp", // PROTO_SCTP
	4: "ipinip", // PROTO_IP_IN_IP
}
// ProtocolName renders a protocol using the canonical short names for
// well-known protocols, decimal for everything else, and the two
// synthetic names for ANY / IPv4.
func ProtocolName(p Protocol) string {
	switch p {
	case ProtocolAny:
		return "any"
	case ProtocolIPv4:
		return "ip"
	}
	if name, ok := protocolRenderName[int(p)]; ok {
		return name
	}
	return fmt.Sprintf("%d", int(p))
}

