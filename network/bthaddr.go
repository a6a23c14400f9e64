package network

import (
	"fmt"
	"strconv"
	"strings"
)

// BTHAddr is a 48-bit Bluetooth device address. The zero value addresses no
// device. BTHAddr is comparable and can be used as a map key.
type BTHAddr [6]byte

// BTHAddrFromBytes returns the address with the given big-endian bytes.
func BTHAddrFromBytes(b [6]byte) BTHAddr {
	return BTHAddr(b)
}

// ParseBTHAddr parses a Bluetooth device address of the form
// "92:5F:D3:5B:93:B2". Hyphen separators and a surrounding pair of
// parentheses (the canonical endpoint string form) are also accepted.
func ParseBTHAddr(s string) (BTHAddr, error) {
	trimmed := s
	if strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") {
		trimmed = trimmed[1 : len(trimmed)-1]
	}
	trimmed = strings.ReplaceAll(trimmed, "-", ":")

	parts := strings.Split(trimmed, ":")
	if len(parts) != 6 {
		return BTHAddr{}, fmt.Errorf("invalid Bluetooth address %q", s)
	}

	var addr BTHAddr
	for i, part := range parts {
		if len(part) != 2 {
			return BTHAddr{}, fmt.Errorf("invalid Bluetooth address %q", s)
		}
		b, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return BTHAddr{}, fmt.Errorf("invalid Bluetooth address %q: %w", s, err)
		}
		addr[i] = byte(b)
	}
	return addr, nil
}

// IsZero reports whether the address is the zero address.
func (a BTHAddr) IsZero() bool {
	return a == BTHAddr{}
}

// Bytes returns the big-endian bytes of the address.
func (a BTHAddr) Bytes() [6]byte {
	return [6]byte(a)
}

// String returns the colon-separated uppercase hex form, e.g.
// "92:5F:D3:5B:93:B2".
func (a BTHAddr) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		a[0], a[1], a[2], a[3], a[4], a[5])
}
