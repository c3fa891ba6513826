package ipv6addr

import "errors"

var (
	// ErrInvalidIPv6Addr covers every malformed-input cause: unclassifiable
	// segment, illegal token adjacency, wrong group count, repeated '::'.
	// The package deliberately does not distinguish why an input failed.
	ErrInvalidIPv6Addr = errors.New("invalid IPv6 address")

	// ErrNoIPv6AddrFound is returned when a network interface carries no
	// IPv6 address.
	ErrNoIPv6AddrFound = errors.New("no IPv6 address found")
)
