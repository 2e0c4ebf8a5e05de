package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		require.NotEmpty(t, tok.String(), "token %d missing a string representation", tok)
	}
}

func TestTokenGoString(t *testing.T) {
	require.Equal(t, "'+'", PLUS.GoString())
	require.Equal(t, "nil", NIL.GoString())
	require.Equal(t, "identifier", IDENT.GoString())
}

func TestLookup(t *testing.T) {
	cases := []struct {
		ident string
		want  Token
	}{
		{"nil", NIL},
		{"true", TRUE},
		{"false", FALSE},
		{"var", VAR},
		{"fun", FUN},
		{"return", RETURN},
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"for", FOR},
		{"print", PRINT},
		{"assert", ASSERT},
		{"foo", IDENT},
		{"Var", IDENT},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Lookup(c.ident), "ident %q", c.ident)
	}
}

func TestIsKeyword(t *testing.T) {
	require.True(t, VAR.IsKeyword())
	require.True(t, ASSERT.IsKeyword())
	require.False(t, IDENT.IsKeyword())
	require.False(t, PLUS.IsKeyword())
}
