package network

import "fmt"

// EndpointType is the discriminant of the Endpoint variant.
type EndpointType uint8

const (
	EndpointTypeUnspecified EndpointType = iota
	EndpointTypeIP
	EndpointTypeBTH
)

func (t EndpointType) String() string {
	switch t {
	case EndpointTypeUnspecified:
		return "unspecified"
	case EndpointTypeIP:
		return "ip"
	case EndpointTypeBTH:
		return "bth"
	default:
		return fmt.Sprintf("EndpointType(%d)", uint8(t))
	}
}

// Endpoint is the unified address of a peer reachable over exactly one
// transport family. It is a closed variant over an IPEndpoint, a
// BTHEndpoint, or nothing (the unspecified state, which the zero value
// represents). Generic code paths such as peer tables, relay hop lists and
// connection requests store Endpoints and narrow them back to the concrete
// type only when transport I/O is required.
//
// Exactly one payload is ever populated; the inactive payload is always the
// zero value. Endpoint is therefore comparable, == is structural equality
// (same active type and equal payload, or both unspecified, with
// cross-family values always unequal), and values can be used directly as
// map keys.
//
// An Endpoint is built by calling the Endpoint method of a concrete
// endpoint value. Construction never fails: a concrete endpoint whose
// protocol is unspecified wraps to the unspecified variant, and callers that
// got an address from an untrusted or not-yet-configured source check Type
// before relying on it.
type Endpoint struct {
	typ EndpointType
	ip  IPEndpoint
	bth BTHEndpoint
}

// ParseEndpoint parses the canonical string form of an endpoint for the
// given protocol. The protocol selects the concrete form: RFCOMM parses a
// Bluetooth endpoint, TCP/UDP/ICMP an IP endpoint. The string "unspecified"
// and ProtocolUnspecified both yield the unspecified endpoint.
func ParseEndpoint(protocol Protocol, s string) (Endpoint, error) {
	if s == "unspecified" || protocol == ProtocolUnspecified {
		return Endpoint{}, nil
	}
	if validBTHProtocol(protocol) {
		bth, err := ParseBTHEndpoint(protocol, s)
		if err != nil {
			return Endpoint{}, err
		}
		return bth.Endpoint(), nil
	}
	ip, err := ParseIPEndpoint(protocol, s)
	if err != nil {
		return Endpoint{}, err
	}
	return ip.Endpoint(), nil
}

// Type returns the active variant.
func (e Endpoint) Type() EndpointType { return e.typ }

// AddressFamily returns the address family of the active payload, or
// AddressFamilyUnspecified for the unspecified endpoint.
func (e Endpoint) AddressFamily() AddressFamily {
	switch e.typ {
	case EndpointTypeIP:
		return e.ip.AddressFamily()
	case EndpointTypeBTH:
		return e.bth.AddressFamily()
	default:
		return AddressFamilyUnspecified
	}
}

// Protocol returns the protocol of the active payload, or
// ProtocolUnspecified for the unspecified endpoint.
func (e Endpoint) Protocol() Protocol {
	switch e.typ {
	case EndpointTypeIP:
		return e.ip.Protocol()
	case EndpointTypeBTH:
		return e.bth.Protocol()
	default:
		return ProtocolUnspecified
	}
}

// IP returns the IP payload. It panics unless Type returns EndpointTypeIP;
// calling it for any other variant is a bug in the caller, not a runtime
// condition.
func (e Endpoint) IP() IPEndpoint {
	if e.typ != EndpointTypeIP {
		panic(fmt.Sprintf("network: IP called on %v endpoint", e.typ))
	}
	return e.ip
}

// BTH returns the Bluetooth payload. It panics unless Type returns
// EndpointTypeBTH.
func (e Endpoint) BTH() BTHEndpoint {
	if e.typ != EndpointTypeBTH {
		panic(fmt.Sprintf("network: BTH called on %v endpoint", e.typ))
	}
	return e.bth
}

// RelayPort returns the relay circuit of the active payload without
// requiring the caller to know the transport family. It returns 0 for the
// unspecified endpoint.
func (e Endpoint) RelayPort() RelayPort {
	switch e.typ {
	case EndpointTypeIP:
		return e.ip.RelayPort()
	case EndpointTypeBTH:
		return e.bth.RelayPort()
	default:
		return 0
	}
}

// RelayHop returns the relay hop position of the active payload, or 0 for
// the unspecified endpoint.
func (e Endpoint) RelayHop() RelayHop {
	switch e.typ {
	case EndpointTypeIP:
		return e.ip.RelayHop()
	case EndpointTypeBTH:
		return e.bth.RelayHop()
	default:
		return 0
	}
}

// WithRelay returns a copy restamped with the given relay circuit
// coordinates, preserving the active variant. Restamping the unspecified
// endpoint yields the unspecified endpoint; there is no payload to carry
// coordinates.
func (e Endpoint) WithRelay(relayPort RelayPort, relayHop RelayHop) Endpoint {
	switch e.typ {
	case EndpointTypeIP:
		return e.ip.WithRelay(relayPort, relayHop).Endpoint()
	case EndpointTypeBTH:
		return e.bth.WithRelay(relayPort, relayHop).Endpoint()
	default:
		return Endpoint{}
	}
}

// Take returns the endpoint's value and resets the receiver to the
// unspecified state. It transfers ownership the way a move does; after
// Take, the receiver holds no address until it is reassigned.
func (e *Endpoint) Take() Endpoint {
	taken := *e
	*e = Endpoint{}
	return taken
}

// String returns the canonical form of the active payload, or "unspecified".
// The form is deterministic for a given value and safe to use as a string
// map key or in logs.
func (e Endpoint) String() string {
	switch e.typ {
	case EndpointTypeIP:
		return e.ip.String()
	case EndpointTypeBTH:
		return e.bth.String()
	default:
		return "unspecified"
	}
}

// MarshalText implements encoding.TextMarshaler using the canonical string
// form.
func (e Endpoint) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
