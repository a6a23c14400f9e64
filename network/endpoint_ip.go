package network

import (
	"fmt"
	"net/netip"
)

// IPEndpoint addresses a peer reachable over an IP transport: a host
// address, a port, the transport protocol and the relay circuit coordinates
// of the connection. The zero value is the unspecified endpoint.
//
// Relay coordinates are part of an endpoint's identity: two endpoints with
// the same host and port but different coordinates address different relayed
// streams and compare unequal.
type IPEndpoint struct {
	addr      netip.Addr
	port      uint16
	protocol  Protocol
	relayPort RelayPort
	relayHop  RelayHop
}

// NewIPEndpoint returns an endpoint for the given protocol, host address and
// port. Only TCP, UDP and ICMP are valid for IP endpoints; any other
// protocol is degraded to ProtocolUnspecified, which marks the endpoint as
// not usable for connections (wrapping it in an Endpoint yields the
// unspecified variant). IPv4-mapped IPv6 addresses are unmapped so that an
// address has a single canonical form.
func NewIPEndpoint(protocol Protocol, addr netip.Addr, port uint16) IPEndpoint {
	return NewRelayedIPEndpoint(protocol, addr, port, 0, 0)
}

// NewRelayedIPEndpoint is NewIPEndpoint with relay circuit coordinates.
func NewRelayedIPEndpoint(
	protocol Protocol,
	addr netip.Addr,
	port uint16,
	relayPort RelayPort,
	relayHop RelayHop,
) IPEndpoint {
	if !validIPProtocol(protocol) {
		protocol = ProtocolUnspecified
	}
	return IPEndpoint{
		addr:      addr.Unmap(),
		port:      port,
		protocol:  protocol,
		relayPort: relayPort,
		relayHop:  relayHop,
	}
}

// ParseIPEndpoint parses the canonical string form produced by
// IPEndpoint.String, e.g. "10.0.0.5:9000" or
// "10.0.0.5:9000~circuit:42/hop:2". The protocol is not part of the string
// form and is supplied by the caller.
func ParseIPEndpoint(protocol Protocol, s string) (IPEndpoint, error) {
	addrString, relayPort, relayHop, err := splitRelaySuffix(s)
	if err != nil {
		return IPEndpoint{}, fmt.Errorf("invalid IP endpoint %q: %w", s, err)
	}
	addrPort, err := netip.ParseAddrPort(addrString)
	if err != nil {
		return IPEndpoint{}, fmt.Errorf("invalid IP endpoint %q: %w", s, err)
	}
	return NewRelayedIPEndpoint(protocol, addrPort.Addr(), addrPort.Port(), relayPort, relayHop), nil
}

// Addr returns the host address.
func (e IPEndpoint) Addr() netip.Addr { return e.addr }

// Port returns the transport port.
func (e IPEndpoint) Port() uint16 { return e.port }

// Protocol returns the transport protocol, or ProtocolUnspecified for an
// endpoint that was constructed with an incompatible protocol.
func (e IPEndpoint) Protocol() Protocol { return e.protocol }

// RelayPort returns the relay circuit the endpoint belongs to, or 0 for a
// direct connection.
func (e IPEndpoint) RelayPort() RelayPort { return e.relayPort }

// RelayHop returns the position of the endpoint within its relay circuit.
func (e IPEndpoint) RelayHop() RelayHop { return e.relayHop }

// AddressFamily returns the family derived from the form of the host
// address, or AddressFamilyUnspecified when no address is set. The family is
// never stored; it always reflects the address itself.
func (e IPEndpoint) AddressFamily() AddressFamily {
	switch {
	case !e.addr.IsValid():
		return AddressFamilyUnspecified
	case e.addr.Is4():
		return AddressFamilyIPv4
	default:
		return AddressFamilyIPv6
	}
}

// WithRelay returns a copy of the endpoint restamped with the given relay
// circuit coordinates. All other fields are unchanged.
func (e IPEndpoint) WithRelay(relayPort RelayPort, relayHop RelayHop) IPEndpoint {
	e.relayPort = relayPort
	e.relayHop = relayHop
	return e
}

// Endpoint wraps the endpoint in the Endpoint variant. An endpoint whose
// protocol is ProtocolUnspecified yields the unspecified variant; callers
// that need to distinguish the two cases check Endpoint.Type.
func (e IPEndpoint) Endpoint() Endpoint {
	if !validIPProtocol(e.protocol) {
		return Endpoint{}
	}
	return Endpoint{typ: EndpointTypeIP, ip: e}
}

// String returns the canonical form "<addr>:<port>", with IPv6 addresses
// bracketed, followed by "~circuit:<port>/hop:<hop>" when the endpoint is
// part of a relay circuit. The form is stable and usable as a map key.
func (e IPEndpoint) String() string {
	if !e.addr.IsValid() {
		return "unspecified"
	}
	return netip.AddrPortFrom(e.addr, e.port).String() + relaySuffix(e.relayPort, e.relayHop)
}
