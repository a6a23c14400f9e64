package network

import "fmt"

// AddressFamily identifies the transport category an endpoint belongs to.
// The set is closed: transports outside of IP and Bluetooth are not
// representable.
type AddressFamily uint8

const (
	AddressFamilyUnspecified AddressFamily = iota
	AddressFamilyIPv4
	AddressFamilyIPv6
	AddressFamilyBTH
)

func (f AddressFamily) String() string {
	switch f {
	case AddressFamilyUnspecified:
		return "unspecified"
	case AddressFamilyIPv4:
		return "ipv4"
	case AddressFamilyIPv6:
		return "ipv6"
	case AddressFamilyBTH:
		return "bth"
	default:
		return fmt.Sprintf("AddressFamily(%d)", uint8(f))
	}
}

// Protocol identifies the transport protocol an endpoint uses within its
// address family. TCP, UDP and ICMP are valid only for IP endpoints and
// RFCOMM only for Bluetooth endpoints; the endpoint constructors enforce
// this, so a mismatched (family, protocol) pair cannot be produced.
type Protocol uint8

const (
	ProtocolUnspecified Protocol = iota
	ProtocolTCP
	ProtocolUDP
	ProtocolICMP
	ProtocolRFCOMM
)

func (p Protocol) String() string {
	switch p {
	case ProtocolUnspecified:
		return "unspecified"
	case ProtocolTCP:
		return "tcp"
	case ProtocolUDP:
		return "udp"
	case ProtocolICMP:
		return "icmp"
	case ProtocolRFCOMM:
		return "rfcomm"
	default:
		return fmt.Sprintf("Protocol(%d)", uint8(p))
	}
}

// ParseProtocol parses the string form produced by Protocol.String.
func ParseProtocol(s string) (Protocol, error) {
	switch s {
	case "tcp":
		return ProtocolTCP, nil
	case "udp":
		return ProtocolUDP, nil
	case "icmp":
		return ProtocolICMP, nil
	case "rfcomm":
		return ProtocolRFCOMM, nil
	case "unspecified":
		return ProtocolUnspecified, nil
	default:
		return ProtocolUnspecified, fmt.Errorf("unknown protocol %q", s)
	}
}

// validIPProtocol reports whether p is usable by an IP endpoint.
func validIPProtocol(p Protocol) bool {
	switch p {
	case ProtocolTCP, ProtocolUDP, ProtocolICMP:
		return true
	default:
		return false
	}
}

// validBTHProtocol reports whether p is usable by a Bluetooth endpoint.
func validBTHProtocol(p Protocol) bool {
	return p == ProtocolRFCOMM
}
