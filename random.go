package ipv6addr

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
)

// Random generates a random IPv6 address in canonical form using
// crypto/rand.
func Random() (IPv6Addr, error) {
	return RandomWithPrefix("")
}

// RandomWithPrefix generates a random IPv6 address whose text starts with
// the given prefix, e.g. "fd00:" for a ULA-looking address. The prefix must
// be empty or a colon-terminated run of hex groups without '::'; the
// combined text is validated and an illegal combination is rejected with
// ErrInvalidIPv6Addr.
func RandomWithPrefix(prefix string) (IPv6Addr, error) {
	groups := 8 - countPrefixGroups(prefix)
	if groups < 0 {
		return IPv6Addr{}, ErrInvalidIPv6Addr
	}

	buf := make([]byte, 2*groups)
	if _, err := rand.Read(buf); err != nil {
		return IPv6Addr{}, fmt.Errorf("read random bytes: %w", err)
	}

	parts := make([]string, 0, groups)
	for i := 0; i < len(buf); i += 2 {
		v := uint16(buf[i])<<8 | uint16(buf[i+1])
		parts = append(parts, strconv.FormatUint(uint64(v), 16))
	}
	return Parse(prefix + strings.Join(parts, ":"))
}

// countPrefixGroups counts the group slots a textual prefix already fills,
// treating an embedded '::' as filling nothing.
func countPrefixGroups(prefix string) int {
	if prefix == "" {
		return 0
	}
	n := 0
	for seg := range strings.SplitSeq(prefix, ":") {
		if seg != "" {
			n++
		}
	}
	return n
}
