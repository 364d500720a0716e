// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Config{
		Version: 1,
		Indent:  "\t",
		Rust:    RustTarget{Edition: "2021", NoStd: true},
		Go:      GoTarget{PackageName: "crypto", ErrorHandling: true},
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, cfg.Indent, loaded.Indent)
	assert.Equal(t, cfg.Rust, loaded.Rust)
	assert.Equal(t, cfg.Go, loaded.Go)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "valid config",
			cfg:     Config{Version: 1},
			wantErr: "",
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99},
			wantErr: "unsupported config version",
		},
		{
			name:    "bad line ending",
			cfg:     Config{Version: 1, LineEnding: "\r"},
			wantErr: "invalid lineEnding",
		},
		{
			name:    "bad rust edition",
			cfg:     Config{Version: 1, Rust: RustTarget{Edition: "1999"}},
			wantErr: "invalid rust edition",
		},
		{
			name:    "windows line ending accepted",
			cfg:     Config{Version: 1, LineEnding: "\r\n"},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveFormat(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Config{
		Version: 1,
		Go:      GoTarget{PackageName: "crypto"},
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "packageName: crypto")
}

func TestConfig_Options_Rust(t *testing.T) {
	cfg := Config{
		Version: 1,
		Indent:  "  ",
		Rust:    RustTarget{Edition: "2018", ZeroCopy: true},
	}

	opts := cfg.Options("rust")
	assert.Equal(t, "  ", opts.Indent)
	assert.Equal(t, "2018", opts.Edition)
	assert.True(t, opts.UseZeroCopy)
	assert.Empty(t, opts.PackageName)
}

func TestConfig_Options_Go(t *testing.T) {
	cfg := Config{
		Version:  1,
		Comments: true,
		Go:       GoTarget{PackageName: "cipher", ErrorHandling: true},
	}

	opts := cfg.Options("go")
	assert.True(t, opts.AddComments)
	assert.Equal(t, "cipher", opts.PackageName)
	assert.True(t, opts.ErrorHandling)
	assert.False(t, opts.UseZeroCopy)
}

func TestConfig_Load_NotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	emptyFile := filepath.Join(tmpDir, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyFile, []byte(""), 0o600))

	_, err := Load(emptyFile)
	assert.Error(t, err)
}

func TestConfig_Save_InvalidPath(t *testing.T) {
	cfg := Config{Version: 1}

	err := cfg.Save("/nonexistent/directory/config.yaml")
	assert.Error(t, err)
}
