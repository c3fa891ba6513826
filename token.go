package ipv6addr

import (
	"regexp"
	"strconv"
	"strings"
)

// TokenKind identifies the syntactic role of a Token.
type TokenKind uint8

const (
	// KindSixteenBits is one 16-bit group written as 1-4 hex digits.
	// The token text is normalized: lowercase, leading zeros stripped.
	// An all-zero group is never a SixteenBits token, see KindAllZeros.
	KindSixteenBits TokenKind = iota
	// KindColon is the single ':' separator between groups.
	KindColon
	// KindDoubleColon is the '::' zero-compression marker, legal at most
	// once per address.
	KindDoubleColon
	// KindAllZeros is a 16-bit group known to be exactly zero. Keeping it
	// distinct from SixteenBits makes zero-run detection during
	// canonicalization unambiguous.
	KindAllZeros
	// KindIPv4Addr is a dotted-quad suffix occupying the last two group
	// slots of an address.
	KindIPv4Addr
)

// Token is one syntactic unit of an IPv6 address string. Text is empty for
// separator tokens and for AllZeros; it holds the normalized hex digits for
// SixteenBits and the verbatim dotted quad for IPv4Addr.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) String() string {
	switch t.Kind {
	case KindColon:
		return ":"
	case KindDoubleColon:
		return "::"
	case KindAllZeros:
		return "0"
	default:
		return t.Text
	}
}

var (
	hexGroupRegex   = regexp.MustCompile(`^[0-9A-Fa-f]{1,4}$`)
	dottedQuadRegex = regexp.MustCompile(`^(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)(\.(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)){3}$`)
)

// classifySegment turns one non-separator fragment into a token. A segment
// is checked against both the hex-group and the dotted-quad pattern before
// it is rejected.
func classifySegment(seg string) (Token, bool) {
	if hexGroupRegex.MatchString(seg) {
		return hexGroupToken(seg), true
	}
	if dottedQuadRegex.MatchString(seg) {
		return Token{Kind: KindIPv4Addr, Text: seg}, true
	}
	return Token{}, false
}

// hexGroupToken normalizes hex digits into an AllZeros or SixteenBits token.
func hexGroupToken(digits string) Token {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return Token{Kind: KindAllZeros}
	}
	return Token{Kind: KindSixteenBits, Text: strings.ToLower(trimmed)}
}

// groupToken builds the token for a 16-bit group value, minimal-width.
func groupToken(v uint16) Token {
	if v == 0 {
		return Token{Kind: KindAllZeros}
	}
	return Token{Kind: KindSixteenBits, Text: strconv.FormatUint(uint64(v), 16)}
}

// dottedQuadGroups converts a classified dotted quad into its two 16-bit
// groups: octets 1+2 form the high group, octets 3+4 the low one.
func dottedQuadGroups(quad string) (Token, Token) {
	var octets [4]uint16
	for i, p := range strings.SplitN(quad, ".", 4) {
		// The quad already matched dottedQuadRegex, so this cannot fail.
		n, _ := strconv.Atoi(p)
		octets[i] = uint16(n)
	}
	return groupToken(octets[0]<<8 | octets[1]), groupToken(octets[2]<<8 | octets[3])
}

// isGroup reports whether the token occupies group slots (everything except
// the two separator kinds).
func isGroup(t Token) bool {
	return t.Kind != KindColon && t.Kind != KindDoubleColon
}

// renderTokens concatenates the literal text of each token.
func renderTokens(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.String())
	}
	return b.String()
}
