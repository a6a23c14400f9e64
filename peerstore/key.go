package peerstore

import (
	"fmt"

	"github.com/google/orderedcode"

	"github.com/vonj/QuantumGate/network"
)

// Key encodes an endpoint into a deterministic byte key that preserves the
// endpoint's full identity, relay coordinates included, and sorts grouped by
// variant then address. External indexes can use it wherever the comparable
// Endpoint value itself cannot be stored.
func Key(ep network.Endpoint) ([]byte, error) {
	switch ep.Type() {
	case network.EndpointTypeIP:
		ip := ep.IP()
		addr16 := ip.Addr().As16()
		return orderedcode.Append(nil,
			uint64(ep.Type()),
			string(addr16[:]),
			uint64(ip.Port()),
			uint64(ip.Protocol()),
			uint64(ip.RelayPort()),
			uint64(ip.RelayHop()),
		)

	case network.EndpointTypeBTH:
		bth := ep.BTH()
		addr := bth.Addr().Bytes()
		return orderedcode.Append(nil,
			uint64(ep.Type()),
			string(addr[:]),
			uint64(bth.Channel()),
			uint64(bth.Protocol()),
			uint64(bth.RelayPort()),
			uint64(bth.RelayHop()),
		)

	default:
		return nil, fmt.Errorf("cannot encode %v endpoint: %w", ep.Type(), ErrUnusableEndpoint)
	}
}
