package ipv6addr

// canonicalOptions selects between the three public pipelines, which differ
// only in whether the dotted-quad rewrite is forced and whether the zero-run
// re-compression step runs.
type canonicalOptions struct {
	forceRewrite bool
	compress     bool
}

// Canonical returns the RFC 5952 canonical form of an address. An embedded
// dotted quad is rewritten into hex groups unless the address belongs to a
// recognized IPv4-transition family, whose suffix stays visible.
func Canonical(s string) (string, error) {
	return runPipeline(s, canonicalOptions{compress: true})
}

// Pure returns the canonical form with every embedded dotted quad rewritten
// into hex groups, transition prefixes included.
func Pure(s string) (string, error) {
	return runPipeline(s, canonicalOptions{forceRewrite: true, compress: true})
}

// Expanded returns the fully expanded pure form: all 8 groups spelled out,
// no '::' compression, no dotted quad.
func Expanded(s string) (string, error) {
	return runPipeline(s, canonicalOptions{forceRewrite: true})
}

func runPipeline(s string, opts canonicalOptions) (string, error) {
	toks, err := Tokenize(s)
	if err != nil {
		return "", err
	}
	if !ValidTokens(toks) {
		return "", ErrInvalidIPv6Addr
	}
	return canonicalize(toks, opts), nil
}

// canonicalize runs the shared pipeline over validated tokens. The rewrite
// decision looks at the still-compressed sequence, so it runs before
// expansion; the rewritten sequence then expands to the full 8 group slots
// and, when requested, re-compresses the leftmost longest zero run.
func canonicalize(toks []Token, opts canonicalOptions) string {
	if opts.forceRewrite || rewriteWanted(toks) {
		toks = rewriteIPv4(toks)
	}
	toks = expandDoubleColon(toks)
	if opts.compress {
		toks = compressZeroRun(toks)
	}
	return renderTokens(toks)
}

// Recognized IPv4-transition prefixes, RFC 5952 §5: addresses in these
// families keep their dotted-quad suffix in the general canonical form.
// Checked against the pre-expansion tokens in front of the quad.
var (
	transitionExact = [][]Token{
		// ::x.x.x.x (IPv4-compatible)
		{{Kind: KindDoubleColon}},
		// ::ffff:x.x.x.x (IPv4-mapped)
		{{Kind: KindDoubleColon}, {Kind: KindSixteenBits, Text: "ffff"}, {Kind: KindColon}},
		// ::ffff:0:x.x.x.x (IPv4-translated)
		{{Kind: KindDoubleColon}, {Kind: KindSixteenBits, Text: "ffff"}, {Kind: KindColon}, {Kind: KindAllZeros}, {Kind: KindColon}},
		// 64:ff9b::x.x.x.x (IPv4-translatable)
		{{Kind: KindSixteenBits, Text: "64"}, {Kind: KindColon}, {Kind: KindSixteenBits, Text: "ff9b"}, {Kind: KindDoubleColon}},
	}
	transitionSuffix = [][]Token{
		// ISATAP interface identifiers
		{{Kind: KindSixteenBits, Text: "200"}, {Kind: KindColon}, {Kind: KindSixteenBits, Text: "5efe"}, {Kind: KindColon}},
		{{Kind: KindAllZeros}, {Kind: KindColon}, {Kind: KindSixteenBits, Text: "5efe"}, {Kind: KindColon}},
		{{Kind: KindDoubleColon}, {Kind: KindSixteenBits, Text: "5efe"}, {Kind: KindColon}},
	}
)

// rewriteWanted reports whether a trailing dotted quad should be rewritten
// into hex groups in the general canonical form. Any one transition-prefix
// match suffices to keep the quad.
func rewriteWanted(toks []Token) bool {
	if len(toks) == 0 || toks[len(toks)-1].Kind != KindIPv4Addr {
		return false
	}
	prefix := toks[:len(toks)-1]
	for _, pat := range transitionExact {
		if tokensEqual(prefix, pat) {
			return false
		}
	}
	for _, pat := range transitionSuffix {
		if tokensHaveSuffix(prefix, pat) {
			return false
		}
	}
	return true
}

func tokensEqual(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func tokensHaveSuffix(toks, suffix []Token) bool {
	if len(toks) < len(suffix) {
		return false
	}
	return tokensEqual(toks[len(toks)-len(suffix):], suffix)
}

// rewriteIPv4 replaces a trailing dotted quad with its two 16-bit hex
// groups: octets 1+2 form the first group, octets 3+4 the second.
func rewriteIPv4(toks []Token) []Token {
	if len(toks) == 0 || toks[len(toks)-1].Kind != KindIPv4Addr {
		return toks
	}
	hi, lo := dottedQuadGroups(toks[len(toks)-1].Text)
	out := make([]Token, 0, len(toks)+2)
	out = append(out, toks[:len(toks)-1]...)
	return append(out, hi, Token{Kind: KindColon}, lo)
}

// expandDoubleColon replaces a '::' with the explicit run of AllZeros groups
// needed to reach 8 group slots (7 tokens when a dotted quad still holds the
// last two slots). Without a '::' the sequence is returned unchanged.
func expandDoubleColon(toks []Token) []Token {
	at := -1
	for i, t := range toks {
		if t.Kind == KindDoubleColon {
			at = i
			break
		}
	}
	if at < 0 {
		return toks
	}

	var before, after []Token
	hasIPv4 := false
	for i, t := range toks {
		if !isGroup(t) {
			continue
		}
		if t.Kind == KindIPv4Addr {
			hasIPv4 = true
		}
		if i < at {
			before = append(before, t)
		} else {
			after = append(after, t)
		}
	}

	target := 8
	if hasIPv4 {
		target = 7
	}
	missing := target - len(before) - len(after)
	if missing < 1 {
		panic("ipv6addr: canonicalization of unvalidated tokens")
	}

	groups := make([]Token, 0, target)
	groups = append(groups, before...)
	for i := 0; i < missing; i++ {
		groups = append(groups, Token{Kind: KindAllZeros})
	}
	groups = append(groups, after...)
	return joinGroups(groups)
}

// compressZeroRun replaces the leftmost longest run of two or more AllZeros
// groups with a single '::', per RFC 5952 §4.2. A lone zero group stays a
// literal '0'.
func compressZeroRun(toks []Token) []Token {
	groups := make([]Token, 0, 8)
	for _, t := range toks {
		if isGroup(t) {
			groups = append(groups, t)
		}
	}

	runStart, runLen := -1, 0
	for i := 0; i < len(groups); {
		if groups[i].Kind != KindAllZeros {
			i++
			continue
		}
		j := i
		for j < len(groups) && groups[j].Kind == KindAllZeros {
			j++
		}
		if j-i > runLen {
			runStart, runLen = i, j-i
		}
		i = j
	}
	if runLen < 2 {
		return toks
	}

	out := joinGroups(groups[:runStart])
	out = append(out, Token{Kind: KindDoubleColon})
	return append(out, joinGroups(groups[runStart+runLen:])...)
}

// joinGroups interleaves Colon separators between group tokens.
func joinGroups(groups []Token) []Token {
	if len(groups) == 0 {
		return nil
	}
	out := make([]Token, 0, 2*len(groups)-1)
	for i, g := range groups {
		if i > 0 {
			out = append(out, Token{Kind: KindColon})
		}
		out = append(out, g)
	}
	return out
}
