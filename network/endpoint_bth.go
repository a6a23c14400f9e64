package network

import (
	"fmt"
	"strconv"
	"strings"
)

// BTHEndpoint addresses a peer reachable over Bluetooth: a 48-bit device
// address, an RFCOMM service channel, the protocol and the relay circuit
// coordinates of the connection. The zero value is the unspecified endpoint.
//
// As with IPEndpoint, relay coordinates are part of the endpoint's identity.
type BTHEndpoint struct {
	addr      BTHAddr
	channel   uint16
	protocol  Protocol
	relayPort RelayPort
	relayHop  RelayHop
}

// NewBTHEndpoint returns an endpoint for the given protocol, device address
// and service channel. RFCOMM is the only protocol valid for Bluetooth
// endpoints; any other protocol is degraded to ProtocolUnspecified, which
// marks the endpoint as not usable for connections.
func NewBTHEndpoint(protocol Protocol, addr BTHAddr, channel uint16) BTHEndpoint {
	return NewRelayedBTHEndpoint(protocol, addr, channel, 0, 0)
}

// NewRelayedBTHEndpoint is NewBTHEndpoint with relay circuit coordinates.
func NewRelayedBTHEndpoint(
	protocol Protocol,
	addr BTHAddr,
	channel uint16,
	relayPort RelayPort,
	relayHop RelayHop,
) BTHEndpoint {
	if !validBTHProtocol(protocol) {
		protocol = ProtocolUnspecified
	}
	return BTHEndpoint{
		addr:      addr,
		channel:   channel,
		protocol:  protocol,
		relayPort: relayPort,
		relayHop:  relayHop,
	}
}

// ParseBTHEndpoint parses the canonical string form produced by
// BTHEndpoint.String, e.g. "(92:5F:D3:5B:93:B2):9" or
// "(92:5F:D3:5B:93:B2):9~circuit:42/hop:2". The protocol is not part of the
// string form and is supplied by the caller.
func ParseBTHEndpoint(protocol Protocol, s string) (BTHEndpoint, error) {
	addrString, relayPort, relayHop, err := splitRelaySuffix(s)
	if err != nil {
		return BTHEndpoint{}, fmt.Errorf("invalid Bluetooth endpoint %q: %w", s, err)
	}

	rest, ok := strings.CutPrefix(addrString, "(")
	if !ok {
		return BTHEndpoint{}, fmt.Errorf("invalid Bluetooth endpoint %q", s)
	}
	addrPart, channelString, ok := strings.Cut(rest, "):")
	if !ok {
		return BTHEndpoint{}, fmt.Errorf("invalid Bluetooth endpoint %q", s)
	}
	addr, err := ParseBTHAddr(addrPart)
	if err != nil {
		return BTHEndpoint{}, fmt.Errorf("invalid Bluetooth endpoint %q: %w", s, err)
	}
	channel64, err := strconv.ParseUint(channelString, 10, 16)
	if err != nil {
		return BTHEndpoint{}, fmt.Errorf("invalid Bluetooth channel %q: %w", channelString, err)
	}

	return NewRelayedBTHEndpoint(protocol, addr, uint16(channel64), relayPort, relayHop), nil
}

// Addr returns the device address.
func (e BTHEndpoint) Addr() BTHAddr { return e.addr }

// Channel returns the RFCOMM service channel.
func (e BTHEndpoint) Channel() uint16 { return e.channel }

// Protocol returns the transport protocol, or ProtocolUnspecified for an
// endpoint that was constructed with an incompatible protocol.
func (e BTHEndpoint) Protocol() Protocol { return e.protocol }

// RelayPort returns the relay circuit the endpoint belongs to, or 0 for a
// direct connection.
func (e BTHEndpoint) RelayPort() RelayPort { return e.relayPort }

// RelayHop returns the position of the endpoint within its relay circuit.
func (e BTHEndpoint) RelayHop() RelayHop { return e.relayHop }

// AddressFamily returns AddressFamilyBTH; Bluetooth device addresses have a
// single fixed form.
func (e BTHEndpoint) AddressFamily() AddressFamily { return AddressFamilyBTH }

// WithRelay returns a copy of the endpoint restamped with the given relay
// circuit coordinates. All other fields are unchanged.
func (e BTHEndpoint) WithRelay(relayPort RelayPort, relayHop RelayHop) BTHEndpoint {
	e.relayPort = relayPort
	e.relayHop = relayHop
	return e
}

// Endpoint wraps the endpoint in the Endpoint variant. An endpoint whose
// protocol is ProtocolUnspecified yields the unspecified variant.
func (e BTHEndpoint) Endpoint() Endpoint {
	if !validBTHProtocol(e.protocol) {
		return Endpoint{}
	}
	return Endpoint{typ: EndpointTypeBTH, bth: e}
}

// String returns the canonical form "(<addr>):<channel>", e.g.
// "(92:5F:D3:5B:93:B2):9", followed by "~circuit:<port>/hop:<hop>" when the
// endpoint is part of a relay circuit.
func (e BTHEndpoint) String() string {
	if e.addr.IsZero() && e.protocol == ProtocolUnspecified {
		return "unspecified"
	}
	return fmt.Sprintf("(%s):%d%s", e.addr, e.channel, relaySuffix(e.relayPort, e.relayHop))
}
