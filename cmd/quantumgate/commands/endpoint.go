package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vonj/QuantumGate/network"
)

var (
	endpointProtocol string
	endpointJSON     bool
)

// EndpointCmd groups the endpoint subcommands.
var EndpointCmd = &cobra.Command{
	Use:   "endpoint",
	Short: "Work with overlay endpoint addresses",
}

var endpointInspectCmd = &cobra.Command{
	Use:   "inspect <address>",
	Short: "Parse an endpoint address and show its components",
	Long: `Parse an endpoint address and show its components.

The address uses the canonical endpoint form: "10.0.0.5:9000" or
"(92:5F:D3:5B:93:B2):9", with an optional "~circuit:<port>/hop:<hop>"
relay suffix. The transport protocol is not part of the address and is
given with --protocol.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		protocol, err := network.ParseProtocol(endpointProtocol)
		if err != nil {
			return err
		}
		ep, err := network.ParseEndpoint(protocol, args[0])
		if err != nil {
			return err
		}
		logger.Debug("parsed endpoint", "endpoint", ep)

		return printEndpoint(ep)
	},
}

func printEndpoint(ep network.Endpoint) error {
	if endpointJSON {
		out, err := json.MarshalIndent(struct {
			Type          string `json:"type"`
			AddressFamily string `json:"address_family"`
			Protocol      string `json:"protocol"`
			RelayPort     uint64 `json:"relay_port"`
			RelayHop      uint8  `json:"relay_hop"`
			Canonical     string `json:"canonical"`
		}{
			Type:          ep.Type().String(),
			AddressFamily: ep.AddressFamily().String(),
			Protocol:      ep.Protocol().String(),
			RelayPort:     uint64(ep.RelayPort()),
			RelayHop:      uint8(ep.RelayHop()),
			Canonical:     ep.String(),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("type:           %v\n", ep.Type())
	fmt.Printf("address family: %v\n", ep.AddressFamily())
	fmt.Printf("protocol:       %v\n", ep.Protocol())
	fmt.Printf("relay circuit:  %d\n", ep.RelayPort())
	fmt.Printf("relay hop:      %d\n", ep.RelayHop())
	fmt.Printf("canonical:      %v\n", ep)
	return nil
}

func init() {
	endpointInspectCmd.Flags().StringVarP(&endpointProtocol, "protocol", "p", "tcp",
		"transport protocol (tcp|udp|icmp|rfcomm)")
	endpointInspectCmd.Flags().BoolVar(&endpointJSON, "json", false, "print as JSON")

	EndpointCmd.AddCommand(endpointInspectCmd)
}
