// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"encryptBlock", "encrypt_block"},
		{"EncryptBlock", "encrypt_block"},
		{"already_snake", "already_snake"},
		{"keySchedule", "key_schedule"},
		{"HTTPServer", "http_server"},
		{"MD5", "md5"},
		{"toBase64String", "to_base64_string"},
		{"x", "x"},
		{"kebab-case", "kebab_case"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToSnakeCase(tt.in), "input %q", tt.in)
	}
}

func TestToSnakeCase_Idempotent(t *testing.T) {
	for _, name := range []string{"encryptBlock", "HTTPServer", "state_array", "MD5Hash"} {
		once := ToSnakeCase(name)
		assert.Equal(t, once, ToSnakeCase(once), "input %q", name)
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"encrypt_block", "EncryptBlock"},
		{"encryptBlock", "EncryptBlock"},
		{"Cipher", "Cipher"},
		{"key_schedule", "KeySchedule"},
		{"MD5", "MD5"},
		{"rounds", "Rounds"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToPascalCase(tt.in), "input %q", tt.in)
	}
}

func TestToPascalCase_Idempotent(t *testing.T) {
	for _, name := range []string{"encrypt_block", "Cipher", "HTTPServer"} {
		once := ToPascalCase(name)
		assert.Equal(t, once, ToPascalCase(once), "input %q", name)
	}
}

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "encryptBlock", ToCamelCase("encrypt_block"))
	assert.Equal(t, "keySchedule", ToCamelCase("KeySchedule"))
	assert.Equal(t, "md5", ToCamelCase("MD5"))
}

func TestToScreamingSnake(t *testing.T) {
	assert.Equal(t, "NUM_ROUNDS", ToScreamingSnake("numRounds"))
	assert.Equal(t, "BLOCK_SIZE", ToScreamingSnake("BLOCK_SIZE"))
	assert.Equal(t, "SBOX", ToScreamingSnake("SBOX"))
}

func TestStripPrivatePrefix(t *testing.T) {
	assert.Equal(t, "key", StripPrivatePrefix("_key"))
	assert.Equal(t, "state", StripPrivatePrefix("__state"))
	assert.Equal(t, "plain", StripPrivatePrefix("plain"))
	assert.Equal(t, "_", StripPrivatePrefix("_"))
}

func TestKeyword(t *testing.T) {
	reserved := map[string]bool{"type": true, "match": true}
	assert.Equal(t, "type_", Keyword("type", reserved))
	assert.Equal(t, "match_", Keyword("match", reserved))
	assert.Equal(t, "value", Keyword("value", reserved))
}
