// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()
	assert.Equal(t, "transpile", root.Use)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "translate")
	assert.Contains(t, names, "languages")
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "version")
}

func TestNewRootCmd_TranslateFlags(t *testing.T) {
	root := NewRootCmd()
	translate, _, err := root.Find([]string{"translate"})
	require.NoError(t, err)

	flags := translate.Flags()
	assert.NotNil(t, flags.Lookup("input"))
	assert.NotNil(t, flags.Lookup("language"))
	assert.NotNil(t, flags.Lookup("error-handling"))
	assert.NotNil(t, flags.Lookup("no-std"))

	output := flags.Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "generated", output.DefValue)
}
