package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vonj/QuantumGate/network"
	"github.com/vonj/QuantumGate/relay"
)

// CircuitCmd groups the relay circuit subcommands.
var CircuitCmd = &cobra.Command{
	Use:   "circuit",
	Short: "Work with relay circuit addressing",
}

var circuitBuildCmd = &cobra.Command{
	Use:   "build <relay-port> <protocol>/<address>...",
	Short: "Stamp relay coordinates onto a sequence of hop endpoints",
	Long: `Stamp relay coordinates onto a sequence of hop endpoints.

Each hop is given as "<protocol>/<address>" in the canonical endpoint
form, e.g. "tcp/10.0.0.5:9000" or "rfcomm/(92:5F:D3:5B:93:B2):9". Hops
are stamped with the shared relay port and sequential hop positions
starting at 0, and printed one per line.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		port64, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid relay port %q: %w", args[0], err)
		}
		circuit, err := relay.NewCircuit(network.RelayPort(port64))
		if err != nil {
			return err
		}

		for _, arg := range args[1:] {
			ep, err := parseHop(arg)
			if err != nil {
				return err
			}
			stamped, err := circuit.AddHop(ep)
			if err != nil {
				return fmt.Errorf("hop %q: %w", arg, err)
			}
			logger.Debug("hop stamped", "endpoint", stamped,
				"circuit", stamped.RelayPort(), "hop", stamped.RelayHop())
		}

		for _, hop := range circuit.Hops() {
			fmt.Println(hop)
		}
		return nil
	},
}

// parseHop parses the "<protocol>/<address>" hop argument form.
func parseHop(s string) (network.Endpoint, error) {
	protocolString, addrString, found := strings.Cut(s, "/")
	if !found {
		return network.Endpoint{}, fmt.Errorf("invalid hop %q, expected <protocol>/<address>", s)
	}
	protocol, err := network.ParseProtocol(protocolString)
	if err != nil {
		return network.Endpoint{}, fmt.Errorf("invalid hop %q: %w", s, err)
	}
	return network.ParseEndpoint(protocol, addrString)
}

func init() {
	CircuitCmd.AddCommand(circuitBuildCmd)
}
