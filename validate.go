package ipv6addr

// ValidTokens reports whether a token sequence forms a syntactically legal
// IPv6 address per RFC 4291: a single optional '::', no duplicated adjacent
// tokens, a trailing dotted quad at most once, and no more than 8 group
// slots in total (a dotted quad occupies the last two).
func ValidTokens(toks []Token) bool {
	// The unspecified address "::" and the "::x" shorthand are always
	// valid, whatever the other rules say.
	if len(toks) == 1 && toks[0].Kind == KindDoubleColon {
		return true
	}
	if len(toks) == 2 && toks[0].Kind == KindDoubleColon && toks[1].Kind == KindSixteenBits {
		return true
	}

	if len(toks) == 0 || !adjacentAllDiffer(toks) {
		return false
	}

	switch toks[0].Kind {
	case KindSixteenBits, KindAllZeros, KindDoubleColon:
	default:
		return false
	}

	groups, doubleColons, ipv4s := 0, 0, 0
	for _, t := range toks {
		switch t.Kind {
		case KindDoubleColon:
			doubleColons++
		case KindColon:
		default:
			groups++
			if t.Kind == KindIPv4Addr {
				ipv4s++
			}
		}
	}
	if doubleColons > 1 {
		return false
	}

	last := toks[len(toks)-1]
	switch ipv4s {
	case 0:
		switch last.Kind {
		case KindSixteenBits, KindAllZeros, KindDoubleColon:
		default:
			return false
		}
		return (groups == 8 && doubleColons == 0) || (groups <= 7 && doubleColons == 1)
	case 1:
		if last.Kind != KindIPv4Addr {
			return false
		}
		// The dotted quad consumes two of the 8 group slots but counts
		// as one token here: 6 hex groups + the quad without '::', at
		// most 6 tokens alongside one '::'.
		return (groups == 7 && doubleColons == 0) || (groups <= 6 && doubleColons == 1)
	default:
		return false
	}
}

// adjacentAllDiffer rejects sequences where two structurally identical
// tokens touch, such as the artifacts of ':::' or a doubled dotted quad.
func adjacentAllDiffer(toks []Token) bool {
	for i := 1; i < len(toks); i++ {
		if toks[i].Kind == toks[i-1].Kind && toks[i].Text == toks[i-1].Text {
			return false
		}
	}
	return true
}

// IsIPv6Addr reports whether s is a syntactically legal IPv6 address.
func IsIPv6Addr(s string) bool {
	toks, err := Tokenize(s)
	return err == nil && ValidTokens(toks)
}
