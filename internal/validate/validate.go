// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package validate checks generated source files for syntactic soundness.
// When the target language's toolchain is installed it is used as the
// oracle; otherwise a structural scanner verifies bracket balance outside
// strings and comments.
package validate

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Result describes the outcome of a validation run.
type Result struct {
	// OK reports whether the source passed.
	OK bool
	// Method names the oracle used: "basic", "rustc", or "go".
	Method string
	// Output carries the compiler diagnostics or scanner error, if any.
	Output string
}

// Validator checks source files for one target language.
type Validator struct {
	language string
	edition  string
}

// New creates a Validator for the given language ("rust" or "go").
func New(language string) (*Validator, error) {
	switch language {
	case "rust", "go":
		return &Validator{language: language, edition: "2021"}, nil
	default:
		return nil, fmt.Errorf("unknown language: %s", language)
	}
}

// ValidateFile checks one source file. The toolchain oracle is preferred
// when its binary is on PATH; the structural scanner is the fallback.
func (v *Validator) ValidateFile(ctx context.Context, path string) (*Result, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}

	switch v.language {
	case "rust":
		if _, err := exec.LookPath("rustc"); err == nil {
			return v.probeRustc(ctx, path)
		}
	case "go":
		if _, err := exec.LookPath("go"); err == nil {
			return v.probeGo(ctx, filepath.Base(path), data)
		}
	}

	return v.ValidateSource(string(data)), nil
}

// ValidateSource runs the structural scanner only; it never invokes a
// toolchain.
func (v *Validator) ValidateSource(src string) *Result {
	if err := scanBalanced(src, v.language); err != nil {
		return &Result{OK: false, Method: "basic", Output: err.Error()}
	}
	return &Result{OK: true, Method: "basic"}
}

func (v *Validator) probeRustc(ctx context.Context, path string) (*Result, error) {
	tmpDir, err := os.MkdirTemp("", "transpile-validate-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir) //nolint:errcheck

	cmd := exec.CommandContext(ctx, "rustc",
		"--edition", v.edition,
		"--crate-type", "lib",
		"--emit", "metadata",
		"--out-dir", tmpDir,
		path)
	out, err := cmd.CombinedOutput()
	if err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return &Result{OK: err == nil, Method: "rustc", Output: string(out)}, nil
}

func (v *Validator) probeGo(ctx context.Context, name string, data []byte) (*Result, error) {
	// "go build" needs a module, so the file is staged into a throwaway one.
	tmpDir, err := os.MkdirTemp("", "transpile-validate-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir) //nolint:errcheck

	if !strings.HasSuffix(name, ".go") {
		name += ".go"
	}
	mod := "module transpilecheck\n\ngo 1.23\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "go.mod"), []byte(mod), 0o600); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(tmpDir, name), data, 0o600); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, "go", "build", "./...")
	cmd.Dir = tmpDir
	out, err := cmd.CombinedOutput()
	if err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return &Result{OK: err == nil, Method: "go", Output: string(out)}, nil
}
