//revive:disable:var-naming
package types

import (
	"fmt"
	"net/netip"
)

// IPAddress is a 128-bit service address in wire order. IPv4 addresses are
// held IPv4-mapped (::ffff:a.b.c.d).
type IPAddress [16]byte

// IPAddressFromAddr converts addr, mapping IPv4 into IPv6.
func IPAddressFromAddr(addr netip.Addr) IPAddress {
	return IPAddress(addr.As16())
}

// Addr returns the address, unmapped when it holds IPv4.
func (ip IPAddress) Addr() netip.Addr {
	return netip.AddrFrom16(ip).Unmap()
}

func (ip IPAddress) String() string {
	return ip.Addr().String()
}

func (ip IPAddress) MarshalText() ([]byte, error) {
	return []byte(ip.String()), nil
}

func (ip *IPAddress) UnmarshalText(b []byte) error {
	addr, err := netip.ParseAddr(string(b))
	if err != nil {
		return fmt.Errorf("invalid ip address %q: %w", b, err)
	}
	*ip = IPAddressFromAddr(addr)
	return nil
}
