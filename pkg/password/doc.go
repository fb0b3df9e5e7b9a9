// Package password generates random passwords from configurable character
// sets using crypto/rand.
//
// All four sets (uppercase, lowercase, digits, symbols) are enabled by
// default; options disable sets or exclude individual characters:
//
//	pw, err := password.Generate(24,
//		password.WithoutSymbols(),
//		password.WithoutAmbiguous(),
//	)
package password
