// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package opcodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	op, ok := Lookup("RotL32")
	require.True(t, ok)
	assert.Equal(t, RotL32, op)

	_, ok = Lookup("ClearArray")
	assert.True(t, ok)

	_, ok = Lookup("NotAnOp")
	assert.False(t, ok)
}

func TestReturnTypes(t *testing.T) {
	m := ReturnTypes()

	assert.Equal(t, "uint32", m["OpCodes.RotL32"])
	assert.Equal(t, "byte[]", m["OpCodes.XorArrays"])
	assert.Equal(t, "string", m["OpCodes.BytesToHex"])
	assert.Equal(t, "byte", m["OpCodes.GF256Mul"])

	// ClearArray returns nothing and must not appear in the table.
	_, ok := m["OpCodes.ClearArray"]
	assert.False(t, ok)
}

func TestReturnTypes_Copies(t *testing.T) {
	m := ReturnTypes()
	m["OpCodes.RotL32"] = "tampered"

	fresh := ReturnTypes()
	assert.Equal(t, "uint32", fresh["OpCodes.RotL32"])
}
