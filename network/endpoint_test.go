package network_test

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vonj/QuantumGate/network"
)

func TestEndpoint_Zero(t *testing.T) {
	var e network.Endpoint
	assert.Equal(t, network.EndpointTypeUnspecified, e.Type())
	assert.Equal(t, network.AddressFamilyUnspecified, e.AddressFamily())
	assert.Equal(t, network.ProtocolUnspecified, e.Protocol())
	assert.Equal(t, network.RelayPort(0), e.RelayPort())
	assert.Equal(t, network.RelayHop(0), e.RelayHop())
	assert.Equal(t, "unspecified", e.String())

	// Two unspecified endpoints are always equal.
	assert.True(t, e == network.Endpoint{})
}

func TestEndpoint_RoundTripIP(t *testing.T) {
	ip := network.NewRelayedIPEndpoint(
		network.ProtocolTCP, netip.MustParseAddr("10.0.0.5"), 9000, 42, 2)

	e := ip.Endpoint()
	require.Equal(t, network.EndpointTypeIP, e.Type())
	assert.Equal(t, network.AddressFamilyIPv4, e.AddressFamily())
	assert.Equal(t, network.ProtocolTCP, e.Protocol())
	assert.Equal(t, network.RelayPort(42), e.RelayPort())
	assert.Equal(t, network.RelayHop(2), e.RelayHop())

	// Narrowing returns exactly the wrapped value.
	assert.True(t, e.IP() == ip)

	assert.Equal(t, "10.0.0.5:9000~circuit:42/hop:2", e.String())
}

func TestEndpoint_RoundTripBTH(t *testing.T) {
	bth := network.NewRelayedBTHEndpoint(network.ProtocolRFCOMM, testBTHAddr, 9, 7, 1)

	e := bth.Endpoint()
	require.Equal(t, network.EndpointTypeBTH, e.Type())
	assert.Equal(t, network.AddressFamilyBTH, e.AddressFamily())
	assert.Equal(t, network.ProtocolRFCOMM, e.Protocol())
	assert.Equal(t, network.RelayPort(7), e.RelayPort())
	assert.Equal(t, network.RelayHop(1), e.RelayHop())
	assert.True(t, e.BTH() == bth)
}

func TestEndpoint_DegradeToUnspecified(t *testing.T) {
	// A concrete endpoint without a usable protocol wraps to the
	// unspecified variant, and none of its fields leak through the
	// accessors.
	ip := network.NewRelayedIPEndpoint(
		network.ProtocolRFCOMM, netip.MustParseAddr("10.0.0.5"), 9000, 42, 2)
	e := ip.Endpoint()
	require.Equal(t, network.EndpointTypeUnspecified, e.Type())
	assert.Equal(t, network.RelayPort(0), e.RelayPort())
	assert.Equal(t, network.RelayHop(0), e.RelayHop())
	assert.True(t, e == network.Endpoint{})

	bth := network.NewBTHEndpoint(network.ProtocolUnspecified, testBTHAddr, 9)
	e = bth.Endpoint()
	require.Equal(t, network.EndpointTypeUnspecified, e.Type())
	assert.Equal(t, network.RelayPort(0), e.RelayPort())
}

func TestEndpoint_Take(t *testing.T) {
	ip := network.NewIPEndpoint(network.ProtocolTCP, netip.MustParseAddr("10.0.0.5"), 9000)
	a := ip.Endpoint()

	b := a.Take()
	assert.Equal(t, network.EndpointTypeUnspecified, a.Type())
	assert.True(t, a == network.Endpoint{})
	require.Equal(t, network.EndpointTypeIP, b.Type())
	assert.True(t, b.IP() == ip)

	// The emptied source can be reassigned and used again.
	a = b
	assert.Equal(t, network.EndpointTypeIP, a.Type())

	// Taking the unspecified endpoint is a no-op.
	var empty network.Endpoint
	assert.True(t, empty.Take() == network.Endpoint{})
	assert.True(t, empty == network.Endpoint{})
}

func TestEndpoint_Equality(t *testing.T) {
	addr := netip.MustParseAddr("10.0.0.5")
	ip := network.NewIPEndpoint(network.ProtocolTCP, addr, 9000).Endpoint()
	sameIP := network.NewIPEndpoint(network.ProtocolTCP, addr, 9000).Endpoint()
	relayedIP := network.NewRelayedIPEndpoint(network.ProtocolTCP, addr, 9000, 42, 2).Endpoint()
	bth := network.NewBTHEndpoint(network.ProtocolRFCOMM, testBTHAddr, 9).Endpoint()

	assert.True(t, ip == sameIP)
	assert.True(t, ip != relayedIP)

	// Cross-family endpoints never compare equal.
	assert.True(t, ip != bth)

	// Endpoints work as map keys; the relayed endpoint is a distinct key.
	seen := map[network.Endpoint]int{}
	seen[ip]++
	seen[sameIP]++
	seen[relayedIP]++
	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[ip])
}

func TestEndpoint_WrongAccessorPanics(t *testing.T) {
	ip := network.NewIPEndpoint(network.ProtocolTCP, netip.MustParseAddr("10.0.0.5"), 9000).Endpoint()
	bth := network.NewBTHEndpoint(network.ProtocolRFCOMM, testBTHAddr, 9).Endpoint()
	var unspecified network.Endpoint

	assert.Panics(t, func() { ip.BTH() })
	assert.Panics(t, func() { bth.IP() })
	assert.Panics(t, func() { unspecified.IP() })
	assert.Panics(t, func() { unspecified.BTH() })
}

func TestEndpoint_WithRelay(t *testing.T) {
	ip := network.NewIPEndpoint(network.ProtocolTCP, netip.MustParseAddr("10.0.0.5"), 9000).Endpoint()

	relayed := ip.WithRelay(42, 2)
	require.Equal(t, network.EndpointTypeIP, relayed.Type())
	assert.Equal(t, network.RelayPort(42), relayed.RelayPort())
	assert.Equal(t, network.RelayHop(2), relayed.RelayHop())
	assert.Equal(t, ip.IP().Addr(), relayed.IP().Addr())

	bth := network.NewBTHEndpoint(network.ProtocolRFCOMM, testBTHAddr, 9).Endpoint()
	relayed = bth.WithRelay(7, 0)
	require.Equal(t, network.EndpointTypeBTH, relayed.Type())
	assert.Equal(t, network.RelayPort(7), relayed.RelayPort())

	var unspecified network.Endpoint
	assert.True(t, unspecified.WithRelay(42, 2) == network.Endpoint{})
}

func TestParseEndpoint(t *testing.T) {
	testCases := []struct {
		name      string
		protocol  network.Protocol
		input     string
		wantType  network.EndpointType
		expectErr bool
	}{
		{"tcp", network.ProtocolTCP, "10.0.0.5:9000", network.EndpointTypeIP, false},
		{"udp relayed", network.ProtocolUDP, "10.0.0.5:9000~circuit:42/hop:2", network.EndpointTypeIP, false},
		{"rfcomm", network.ProtocolRFCOMM, "(92:5F:D3:5B:93:B2):9", network.EndpointTypeBTH, false},
		{"unspecified string", network.ProtocolTCP, "unspecified", network.EndpointTypeUnspecified, false},
		{"unspecified protocol", network.ProtocolUnspecified, "10.0.0.5:9000", network.EndpointTypeUnspecified, false},

		{"bth form with tcp", network.ProtocolTCP, "(92:5F:D3:5B:93:B2):9", network.EndpointTypeUnspecified, true},
		{"garbage", network.ProtocolTCP, "zzz", network.EndpointTypeUnspecified, true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			e, err := network.ParseEndpoint(tc.protocol, tc.input)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantType, e.Type())

			again, err := network.ParseEndpoint(tc.protocol, e.String())
			require.NoError(t, err)
			require.Equal(t, e, again)
		})
	}
}

func TestEndpoint_MarshalText(t *testing.T) {
	ip := network.NewRelayedIPEndpoint(
		network.ProtocolTCP, netip.MustParseAddr("10.0.0.5"), 9000, 42, 2).Endpoint()

	text, err := ip.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5:9000~circuit:42/hop:2", string(text))
}
