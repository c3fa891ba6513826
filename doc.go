// Package ipv6addr parses, validates, and canonicalizes the text
// representation of IPv6 addresses per RFC 5952, built on the structural
// rules of RFC 4291.
//
// The package takes arbitrary user-supplied address strings, including ones
// with an embedded IPv4 dotted-quad suffix, and produces either a rejection
// or the single canonical text form: lowercase hex, minimal-width groups,
// and the leftmost longest run of two or more zero groups compressed to a
// single "::".
//
// # Canonical Forms
//
// Three entry points compose the same pipeline differently:
//
//   - Canonical returns the general RFC 5952 form. An embedded dotted quad
//     is rewritten into hex groups unless the address belongs to a
//     recognized IPv4-transition family (IPv4-compatible, IPv4-mapped,
//     IPv4-translated, IPv4-translatable, ISATAP), whose suffix must stay
//     visible.
//   - Pure forces the dotted-quad rewrite, yielding an all-hex address.
//   - Expanded additionally skips re-compression, spelling out all 8 groups.
//
// # Usage
//
//	import "github.com/dmitrymomot/ipv6addr"
//
//	s, err := ipv6addr.Canonical("D045::00Da:0fA9:0:0:230.34.110.80")
//	// s == "d045:0:da:fa9::e622:6e50"
//
//	a, err := ipv6addr.Parse("::ffff:192.0.2.1")
//	// a.String() == "::ffff:192.0.2.1" (transition prefix, quad preserved)
//	// a.IP6ARPA(), a.UNC() for derived representations
//
// The tokenizer is exposed as Tokenize for callers that want to compose
// their own checks; ValidTokens and IsIPv6Addr cover plain validation.
//
// # Error Handling
//
// Every malformed input is rejected with ErrInvalidIPv6Addr; the package
// does not distinguish why an input failed. Rejection is an ordinary result
// value, never a panic.
//
// # Thread Safety
//
// All functions are pure and keep no state between calls, so the package is
// safe for concurrent use without synchronization.
package ipv6addr
