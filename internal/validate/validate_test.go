// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UnknownLanguage(t *testing.T) {
	_, err := New("cobol")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown language")
}

func TestValidateSource_BalancedRust(t *testing.T) {
	v, err := New("rust")
	require.NoError(t, err)

	res := v.ValidateSource(`
pub fn add(a: u32, b: u32) -> u32 {
    a.wrapping_add(b)
}
`)
	assert.True(t, res.OK)
	assert.Equal(t, "basic", res.Method)
}

func TestValidateSource_UnclosedBrace(t *testing.T) {
	v, err := New("go")
	require.NoError(t, err)

	res := v.ValidateSource("func main() {\n\tx := 1\n")
	assert.False(t, res.OK)
	assert.Contains(t, res.Output, "unclosed")
}

func TestValidateSource_MismatchedBracket(t *testing.T) {
	v, err := New("go")
	require.NoError(t, err)

	res := v.ValidateSource("var x = [1, 2, 3)\n")
	assert.False(t, res.OK)
	assert.Contains(t, res.Output, "line 1")
}

func TestValidateSource_BracketsInStringIgnored(t *testing.T) {
	v, err := New("go")
	require.NoError(t, err)

	res := v.ValidateSource(`var s = "unbalanced { [ ("`)
	assert.True(t, res.OK)
}

func TestValidateSource_BracketsInCommentIgnored(t *testing.T) {
	v, err := New("rust")
	require.NoError(t, err)

	res := v.ValidateSource("// a stray } in a comment\nfn f() {}\n/* and ( here */\n")
	assert.True(t, res.OK)
}

func TestValidateSource_RawStringIgnored(t *testing.T) {
	v, err := New("go")
	require.NoError(t, err)

	res := v.ValidateSource("var s = `{ [ (`\n")
	assert.True(t, res.OK)
}

func TestValidateSource_RuneLiteral(t *testing.T) {
	v, err := New("go")
	require.NoError(t, err)

	res := v.ValidateSource("var open = '{'\nvar esc = '\\''\n")
	assert.True(t, res.OK)
}

func TestValidateSource_RustLifetimeNotAString(t *testing.T) {
	v, err := New("rust")
	require.NoError(t, err)

	res := v.ValidateSource("fn first<'a>(xs: &'a [u8]) -> &'a u8 {\n    &xs[0]\n}\n")
	assert.True(t, res.OK)
}

func TestValidateSource_EscapedQuoteInString(t *testing.T) {
	v, err := New("rust")
	require.NoError(t, err)

	res := v.ValidateSource(`let s = "say \"hi\" {";` + "\nfn f() {}\n")
	assert.True(t, res.OK)
}

func TestValidateSource_ErrorReportsLine(t *testing.T) {
	v, err := New("rust")
	require.NoError(t, err)

	res := v.ValidateSource("fn f() {\n}\n}\n")
	assert.False(t, res.OK)
	assert.Contains(t, res.Output, "line 3")
}
