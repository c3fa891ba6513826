package ipv6addr

import (
	"fmt"
	"net"
)

// InterfaceAddr returns the first IPv6 address of the named network
// interface, canonicalized. It returns ErrNoIPv6AddrFound when the
// interface exists but carries only IPv4 addresses.
func InterfaceAddr(name string) (IPv6Addr, error) {
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return IPv6Addr{}, fmt.Errorf("lookup interface %q: %w", name, err)
	}
	addrs, err := ifi.Addrs()
	if err != nil {
		return IPv6Addr{}, fmt.Errorf("addresses of interface %q: %w", name, err)
	}
	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		if ip == nil || ip.To4() != nil || ip.To16() == nil {
			continue
		}
		return Parse(ip.String())
	}
	return IPv6Addr{}, ErrNoIPv6AddrFound
}
