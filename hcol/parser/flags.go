// File: flags.go
// Title: HCOL Flag Extractor
// Description: Locates tokens by flag and checks flag-set membership for the
//              command classifiers. Matching uses exact two-character prefix
//              equality; substring containment would risk collisions between
//              flag characters and value text.
// Version: v0.1.0
// Created: 2025-08-31

package parser

// findToken returns the first token carrying the given flag
func findToken(tokens []Token, flag string) (Token, bool) {
	for _, token := range tokens {
		if token.Flag == flag {
			return token, true
		}
	}
	return Token{}, false
}

// hasFlag reports whether any token carries the given flag
func hasFlag(tokens []Token, flag string) bool {
	_, ok := findToken(tokens, flag)
	return ok
}

// hasOnlyFlags reports whether every known flag present in the input belongs
// to the allowed set. A false result means the user mixed in a parameter
// from another command's flag vocabulary, regardless of token order.
func hasOnlyFlags(tokens []Token, allowed ...string) bool {
	for _, token := range tokens {
		if !inFlagSet(token.Flag, flagUniverse) {
			continue
		}
		if !inFlagSet(token.Flag, allowed) {
			return false
		}
	}
	return true
}

// inFlagSet reports whether flag is a member of the set
func inFlagSet(flag string, set []string) bool {
	for _, candidate := range set {
		if flag == candidate {
			return true
		}
	}
	return false
}
