package ipv6addr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ipv6addr"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []ipv6addr.Token
	}{
		{
			name:     "unspecified address",
			input:    "::",
			expected: []ipv6addr.Token{{Kind: ipv6addr.KindDoubleColon}},
		},
		{
			name:  "loopback",
			input: "::1",
			expected: []ipv6addr.Token{
				{Kind: ipv6addr.KindDoubleColon},
				{Kind: ipv6addr.KindSixteenBits, Text: "1"},
			},
		},
		{
			name:  "zero groups become AllZeros",
			input: "0:0000",
			expected: []ipv6addr.Token{
				{Kind: ipv6addr.KindAllZeros},
				{Kind: ipv6addr.KindColon},
				{Kind: ipv6addr.KindAllZeros},
			},
		},
		{
			name:  "hex groups are normalized",
			input: "00Da:0fA9",
			expected: []ipv6addr.Token{
				{Kind: ipv6addr.KindSixteenBits, Text: "da"},
				{Kind: ipv6addr.KindColon},
				{Kind: ipv6addr.KindSixteenBits, Text: "fa9"},
			},
		},
		{
			name:  "dotted quad suffix",
			input: "::ffff:192.0.2.1",
			expected: []ipv6addr.Token{
				{Kind: ipv6addr.KindDoubleColon},
				{Kind: ipv6addr.KindSixteenBits, Text: "ffff"},
				{Kind: ipv6addr.KindColon},
				{Kind: ipv6addr.KindIPv4Addr, Text: "192.0.2.1"},
			},
		},
		{
			name:  "two double colons tokenize",
			input: "1::2::3",
			expected: []ipv6addr.Token{
				{Kind: ipv6addr.KindSixteenBits, Text: "1"},
				{Kind: ipv6addr.KindDoubleColon},
				{Kind: ipv6addr.KindSixteenBits, Text: "2"},
				{Kind: ipv6addr.KindDoubleColon},
				{Kind: ipv6addr.KindSixteenBits, Text: "3"},
			},
		},
		{
			name:  "lone dotted quad tokenizes",
			input: "10.0.0.255",
			expected: []ipv6addr.Token{
				{Kind: ipv6addr.KindIPv4Addr, Text: "10.0.0.255"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			toks, err := ipv6addr.Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, toks)
		})
	}
}

func TestTokenizeRejects(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		":::",
		":::1",
		"12345",
		"g123",
		"1.2.3",
		"1.2.3.256",
		"1.2.3.4.5",
		"fe80::1%eth0",
		"2001 :db8::1",
		"2001:db8::1 ",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			toks, err := ipv6addr.Tokenize(input)
			require.ErrorIs(t, err, ipv6addr.ErrInvalidIPv6Addr)
			assert.Nil(t, toks)
		})
	}
}
