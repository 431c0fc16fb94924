// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

package recs

// scalarTypes maps lowercased on-chain scalar tokens to recs type
// expressions. Unsigned integers up to 64 bits fit a JS number; wider
// integers, field elements, and addresses need BigInt.
var scalarTypes = map[string]string{
	"bool":            "RecsType.Boolean",
	"u8":              "RecsType.Number",
	"u16":             "RecsType.Number",
	"u32":             "RecsType.Number",
	"u64":             "RecsType.Number",
	"usize":           "RecsType.Number",
	"u128":            "RecsType.BigInt",
	"u256":            "RecsType.BigInt",
	"felt252":         "RecsType.BigInt",
	"contractaddress": "RecsType.BigInt",
}

// enumType is the representation of every enum variant tag.
const enumType = "RecsType.Number"

// scalarExpr resolves a lowercased scalar token, falling back to the string
// representation for tokens outside the table.
func scalarExpr(scalar string) string {
	if expr, ok := scalarTypes[scalar]; ok {
		return expr
	}
	return "RecsType.String"
}
