// Package config loads scanner profiles written in HCL.
//
// A profile customises the characters a schematic may contain:
//
//	scanner {
//	  separator = "."
//	  gear      = "*"
//	  symbols   = ["@", "#", "$", "%", "&", "*", "-", "+", "=", "/"]
//	}
//
// Every attribute is optional and falls back to the stock alphabet. The
// profile is translated into a schematic.Alphabet, which performs the final
// validation.
package config
