// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package opcodes describes the domain-operations surface: the OpCodes.*
// helper methods that cryptographic source code calls for rotations, byte
// packing, XOR and hex conversion. Backends own the actual lowering; this
// package is the shared registry of names, shapes and declared return types.
package opcodes

// Op identifies one recognized domain operation.
type Op string

// The recognized OpCodes methods. Endianness and width are part of the name
// and must be preserved exactly by every backend lowering.
const (
	RotL8  Op = "RotL8"
	RotR8  Op = "RotR8"
	RotL16 Op = "RotL16"
	RotR16 Op = "RotR16"
	RotL32 Op = "RotL32"
	RotR32 Op = "RotR32"
	RotL64 Op = "RotL64"
	RotR64 Op = "RotR64"

	Pack16LE   Op = "Pack16LE"
	Pack16BE   Op = "Pack16BE"
	Pack32LE   Op = "Pack32LE"
	Pack32BE   Op = "Pack32BE"
	Unpack16LE Op = "Unpack16LE"
	Unpack16BE Op = "Unpack16BE"
	Unpack32LE Op = "Unpack32LE"
	Unpack32BE Op = "Unpack32BE"

	XorArrays     Op = "XorArrays"
	BytesToHex    Op = "BytesToHex"
	HexToBytes    Op = "HexToBytes"
	StringToBytes Op = "StringToBytes"
	BytesToString Op = "BytesToString"
	GF256Mul      Op = "GF256Mul"
	ClearArray    Op = "ClearArray"
)

// Receiver is the object name domain operations are called on in the
// JavaScript source.
const Receiver = "OpCodes"

// returnTypes declares the return type of each operation using the hint
// syntax of the type mapper. Consulted before structural inference.
var returnTypes = map[Op]string{
	RotL8:  "byte",
	RotR8:  "byte",
	RotL16: "word",
	RotR16: "word",
	RotL32: "uint32",
	RotR32: "uint32",
	RotL64: "qword",
	RotR64: "qword",

	Pack16LE:   "word",
	Pack16BE:   "word",
	Pack32LE:   "uint32",
	Pack32BE:   "uint32",
	Unpack16LE: "byte[]",
	Unpack16BE: "byte[]",
	Unpack32LE: "byte[]",
	Unpack32BE: "byte[]",

	XorArrays:     "byte[]",
	BytesToHex:    "string",
	HexToBytes:    "byte[]",
	StringToBytes: "byte[]",
	BytesToString: "string",
	GF256Mul:      "byte",
	ClearArray:    "",
}

// Lookup reports whether name is a recognized domain operation.
func Lookup(name string) (Op, bool) {
	op := Op(name)
	_, ok := returnTypes[op]
	return op, ok
}

// ReturnTypes returns the default type-knowledge table, keyed
// "OpCodes.<Method>", suitable for merging under a caller-supplied table.
func ReturnTypes() map[string]string {
	m := make(map[string]string, len(returnTypes))
	for op, ret := range returnTypes {
		if ret == "" {
			continue
		}
		m[Receiver+"."+string(op)] = ret
	}
	return m
}
