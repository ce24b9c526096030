// File: token.go
// Title: HCOL Tokenizer
// Description: Implements the lexical phase of HCOL parsing. Splits a raw
//              input line into flag-tagged parameter tokens using the
//              letter-slash label syntax. Tokens are produced once per parse
//              call and never shared across calls.
// Version: v0.1.0
// Created: 2025-08-31

package parser

import (
	"regexp"
	"strings"
)

// Flags of the command language. A flag is a two-character marker (letter
// plus separator) identifying the role of the value that follows it.
const (
	FlagGoalIndex  = "g/"
	FlagName       = "n/"
	FlagGoalType   = "t/"
	FlagInterval   = "i/"
	FlagStartDate  = "s/"
	FlagEndDate    = "e/"
	FlagHabitIndex = "h/"
)

const (
	// delimiter is a non-printable marker inserted before each label match
	// so the line can be split at token boundaries. The input language is
	// ASCII; \x01 cannot occur in legal input.
	delimiter = "\x01"

	// flagLength is the width of a flag prefix (letter plus separator)
	flagLength = 2
)

// labelSyntax matches the start of a flagged token: one ASCII letter
// followed by the separator.
var labelSyntax = regexp.MustCompile(`[a-zA-Z]/`)

// flagUniverse is the closed set of known flags. hasOnlyFlags treats any
// token whose prefix is in this set but outside a command's allowed flags
// as an excess parameter.
var flagUniverse = []string{
	FlagGoalIndex,
	FlagName,
	FlagGoalType,
	FlagInterval,
	FlagStartDate,
	FlagEndDate,
	FlagHabitIndex,
}

// Token is one flag-tagged parameter of the input line
type Token struct {
	// Raw is the token text as written, including the flag prefix
	Raw string

	// Flag is the two-character prefix (e.g. "g/")
	Flag string

	// Value is the payload after the prefix, trimmed of surrounding
	// whitespace. May be empty: a flag without a value is syntactically
	// legal and rejected later by the field converters.
	Value string
}

// tokenize splits the argument portion of an input line into tokens. The
// text before the first flag (the command keyword, already consumed by
// dispatch) is discarded. Values cannot contain the label pattern itself;
// there is no escaping mechanism in the language.
func tokenize(input string) []Token {
	processed := labelSyntax.ReplaceAllString(input, delimiter+"$0")
	segments := strings.Split(processed, delimiter)

	// segments[0] is whatever precedes the first flag
	tokens := make([]Token, 0, len(segments)-1)
	for _, segment := range segments[1:] {
		tokens = append(tokens, Token{
			Raw:   segment,
			Flag:  segment[:flagLength],
			Value: strings.TrimSpace(segment[flagLength:]),
		})
	}
	return tokens
}
