package ipv6addr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ipv6addr"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("wraps the canonical form", func(t *testing.T) {
		t.Parallel()

		a, err := ipv6addr.Parse("2001:0DB8:0000:0000:0000:0000:0000:0001")
		require.NoError(t, err)
		assert.Equal(t, "2001:db8::1", a.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()

		a, err := ipv6addr.Parse(":::1")
		require.ErrorIs(t, err, ipv6addr.ErrInvalidIPv6Addr)
		assert.Empty(t, a.String())
	})
}

func TestIP6ARPA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "rfc 3596 example",
			input:    "2001:db8::567:89ab",
			expected: "b.a.9.8.7.6.5.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.8.b.d.0.1.0.0.2.ip6.arpa.",
		},
		{
			name:     "loopback",
			input:    "::1",
			expected: "1.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.ip6.arpa.",
		},
		{
			name:     "embedded quad expands to nibbles",
			input:    "::ffff:192.0.2.1",
			expected: "1.0.2.0.0.0.0.c.f.f.f.f.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.ip6.arpa.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, err := ipv6addr.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a.IP6ARPA())
		})
	}

	t.Run("zero value yields empty string", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, ipv6addr.IPv6Addr{}.IP6ARPA())
	})
}

func TestUNC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "documentation prefix",
			input:    "2001:db8::1",
			expected: "2001-db8--1.ipv6-literal.net",
		},
		{
			name:     "loopback",
			input:    "::1",
			expected: "--1.ipv6-literal.net",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, err := ipv6addr.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a.UNC())
		})
	}

	t.Run("zero value yields empty string", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, ipv6addr.IPv6Addr{}.UNC())
	})
}
