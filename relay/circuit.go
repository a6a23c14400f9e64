// Package relay implements the addressing contract of relay circuits: a
// circuit is identified by a nonzero RelayPort shared by every hop, and its
// hops carry strictly increasing RelayHop positions starting at 0 for the
// originator-adjacent hop. The package stamps these coordinates onto
// transport endpoints and validates hop sequences handed in from elsewhere;
// choosing which peers form a circuit is a concern of the chain builder, not
// of this package.
package relay

import (
	"errors"
	"fmt"
	"math"

	"github.com/vonj/QuantumGate/network"
)

var (
	// ErrZeroPort is returned when a circuit is created with RelayPort 0,
	// which is reserved for direct connections.
	ErrZeroPort = errors.New("relay port 0 is reserved for direct connections")

	// ErrUnspecifiedHop is returned when an unspecified endpoint is offered
	// as a circuit hop.
	ErrUnspecifiedHop = errors.New("hop endpoint is unspecified")

	// ErrCircuitFull is returned when a circuit already has the maximum
	// number of hops a RelayHop can index.
	ErrCircuitFull = errors.New("circuit has maximum number of hops")

	// ErrPortMismatch is returned by Validate when a hop carries a relay
	// port different from the circuit's.
	ErrPortMismatch = errors.New("hop relay port does not match circuit")

	// ErrHopOrder is returned by Validate when hop positions are not the
	// sequence 0, 1, 2, ...
	ErrHopOrder = errors.New("hop positions are not sequential from 0")
)

// Circuit is an ordered list of endpoints forming one relay circuit. Hops
// are stamped with the circuit's relay port and their position as they are
// added, so the endpoints a Circuit hands out can go straight into peer
// tables and connection requests.
type Circuit struct {
	port network.RelayPort
	hops []network.Endpoint
}

// NewCircuit returns an empty circuit with the given nonzero relay port.
func NewCircuit(port network.RelayPort) (*Circuit, error) {
	if port == 0 {
		return nil, ErrZeroPort
	}
	return &Circuit{port: port}, nil
}

// Port returns the circuit's relay port.
func (c *Circuit) Port() network.RelayPort {
	return c.port
}

// Len returns the number of hops in the circuit.
func (c *Circuit) Len() int {
	return len(c.hops)
}

// AddHop appends ep as the circuit's next hop and returns the stamped
// endpoint. Whatever relay coordinates ep carried are overwritten; its
// transport address is untouched. Unspecified endpoints are rejected since
// they address nothing.
func (c *Circuit) AddHop(ep network.Endpoint) (network.Endpoint, error) {
	if ep.Type() == network.EndpointTypeUnspecified {
		return network.Endpoint{}, ErrUnspecifiedHop
	}
	if len(c.hops) > math.MaxUint8 {
		return network.Endpoint{}, ErrCircuitFull
	}

	stamped := ep.WithRelay(c.port, network.RelayHop(len(c.hops)))
	c.hops = append(c.hops, stamped)
	return stamped, nil
}

// Hop returns the stamped endpoint at position i.
func (c *Circuit) Hop(i network.RelayHop) (network.Endpoint, bool) {
	if int(i) >= len(c.hops) {
		return network.Endpoint{}, false
	}
	return c.hops[i], true
}

// Hops returns a copy of the circuit's hop list.
func (c *Circuit) Hops() []network.Endpoint {
	hops := make([]network.Endpoint, len(c.hops))
	copy(hops, c.hops)
	return hops
}

// Validate checks a hop sequence against the circuit's addressing contract:
// every hop specified, every hop on the circuit's relay port, and hop
// positions forming the sequence 0, 1, 2, ... Hop lists produced by AddHop
// always pass; Validate exists for sequences received from other nodes.
func (c *Circuit) Validate(hops []network.Endpoint) error {
	for i, hop := range hops {
		switch {
		case hop.Type() == network.EndpointTypeUnspecified:
			return fmt.Errorf("hop %d: %w", i, ErrUnspecifiedHop)
		case hop.RelayPort() != c.port:
			return fmt.Errorf("hop %d has relay port %d, circuit has %d: %w",
				i, hop.RelayPort(), c.port, ErrPortMismatch)
		case hop.RelayHop() != network.RelayHop(i):
			return fmt.Errorf("hop %d has position %d: %w", i, hop.RelayHop(), ErrHopOrder)
		}
	}
	return nil
}
