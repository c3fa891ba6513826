package ipv6addr

import "strings"

// IPv6Addr is an IPv6 address held in its general canonical text form.
// The zero value is not a valid address; use Parse to construct one.
type IPv6Addr struct {
	text string
}

// Parse canonicalizes an address string and wraps the result. It accepts
// anything Canonical accepts and fails with ErrInvalidIPv6Addr otherwise.
func Parse(s string) (IPv6Addr, error) {
	canonical, err := Canonical(s)
	if err != nil {
		return IPv6Addr{}, err
	}
	return IPv6Addr{text: canonical}, nil
}

// String returns the canonical text form.
func (a IPv6Addr) String() string { return a.text }

// IP6ARPA returns the reverse-DNS form of the address: all 32 nibbles in
// reverse order, dot-separated, under "ip6.arpa.". The zero value yields "".
func (a IPv6Addr) IP6ARPA() string {
	toks, err := Tokenize(a.text)
	if err != nil {
		return ""
	}
	toks = expandDoubleColon(rewriteIPv4(toks))

	nibbles := make([]byte, 0, 32)
	for _, t := range toks {
		if !isGroup(t) {
			continue
		}
		digits := "0000"
		if t.Kind == KindSixteenBits {
			digits = strings.Repeat("0", 4-len(t.Text)) + t.Text
		}
		nibbles = append(nibbles, digits...)
	}

	var b strings.Builder
	b.Grow(2*len(nibbles) + len("ip6.arpa."))
	for i := len(nibbles) - 1; i >= 0; i-- {
		b.WriteByte(nibbles[i])
		b.WriteByte('.')
	}
	b.WriteString("ip6.arpa.")
	return b.String()
}

// UNC returns the Windows UNC-literal transcription of the address, with
// every ':' replaced by '-' under "ipv6-literal.net". The zero value
// yields "".
func (a IPv6Addr) UNC() string {
	if a.text == "" {
		return ""
	}
	return strings.ReplaceAll(a.text, ":", "-") + ".ipv6-literal.net"
}
