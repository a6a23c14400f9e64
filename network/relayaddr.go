package network

import (
	"fmt"
	"strconv"
	"strings"
)

// RelayPort identifies a logical relay circuit. Every hop in one circuit
// carries the same RelayPort. The zero value means the connection is direct
// and not part of any circuit.
type RelayPort uint64

// RelayHop is the position of a connection within a relay circuit's hop
// sequence, starting at 0 for the originator-adjacent hop. It is only
// meaningful when the accompanying RelayPort is nonzero.
type RelayHop uint8

// relaySuffix renders the canonical relay coordinate suffix, or an empty
// string for a direct connection.
func relaySuffix(port RelayPort, hop RelayHop) string {
	if port == 0 {
		return ""
	}
	return fmt.Sprintf("~circuit:%d/hop:%d", port, hop)
}

// splitRelaySuffix splits the canonical string form of an endpoint into its
// transport address part and the relay coordinates encoded in the suffix.
// Absence of a suffix yields the zero coordinates.
func splitRelaySuffix(s string) (addr string, port RelayPort, hop RelayHop, err error) {
	addr, suffix, found := strings.Cut(s, "~")
	if !found {
		return addr, 0, 0, nil
	}

	circuitPart, hopPart, found := strings.Cut(suffix, "/")
	if !found {
		return "", 0, 0, fmt.Errorf("invalid relay suffix %q", suffix)
	}

	circuitString, ok := strings.CutPrefix(circuitPart, "circuit:")
	if !ok {
		return "", 0, 0, fmt.Errorf("invalid relay suffix %q", suffix)
	}
	port64, err := strconv.ParseUint(circuitString, 10, 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid relay circuit %q: %w", circuitString, err)
	}
	// Circuit 0 means direct; a direct endpoint never renders a suffix, so
	// accepting one here would let two distinct values share a canonical
	// string.
	if port64 == 0 {
		return "", 0, 0, fmt.Errorf("relay circuit 0 is reserved for direct connections")
	}

	hopString, ok := strings.CutPrefix(hopPart, "hop:")
	if !ok {
		return "", 0, 0, fmt.Errorf("invalid relay suffix %q", suffix)
	}
	hop64, err := strconv.ParseUint(hopString, 10, 8)
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid relay hop %q: %w", hopString, err)
	}

	return addr, RelayPort(port64), RelayHop(hop64), nil
}
