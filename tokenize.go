package ipv6addr

// Tokenize splits an address string on ':' and classifies each fragment.
// A run of two consecutive separators (including a leading or trailing
// '::') becomes a single DoubleColon token; a run of three or more is
// malformed. Any unclassifiable fragment fails the whole call; there are
// no partial results.
func Tokenize(s string) ([]Token, error) {
	if s == "" {
		return nil, ErrInvalidIPv6Addr
	}
	toks := make([]Token, 0, 15)
	for i := 0; i < len(s); {
		j := i
		if s[i] == ':' {
			for j < len(s) && s[j] == ':' {
				j++
			}
			switch j - i {
			case 1:
				toks = append(toks, Token{Kind: KindColon})
			case 2:
				toks = append(toks, Token{Kind: KindDoubleColon})
			default:
				return nil, ErrInvalidIPv6Addr
			}
		} else {
			for j < len(s) && s[j] != ':' {
				j++
			}
			tok, ok := classifySegment(s[i:j])
			if !ok {
				return nil, ErrInvalidIPv6Addr
			}
			toks = append(toks, tok)
		}
		i = j
	}
	return toks, nil
}
