package twmerge

import (
	"slices"
	"strings"
)

const importantMarker = '!'

// ClassToken is one whitespace-delimited class split into its parts.
type ClassToken struct {
	// Modifiers in the order they were written, e.g. ["md", "hover"].
	Modifiers []string
	// HasImportant is set for both "!p-2" and "p-2!".
	HasImportant bool
	// Base is the class name without modifiers, important marker or prefix.
	Base string
	// PostfixModifier is the part after the last top-level "/" of Base, e.g. "7" in "text-lg/7".
	PostfixModifier string
	HasPostfix      bool
	// Passthrough tokens are never classified.
	Passthrough bool
	// Original is the token exactly as written.
	Original string
}

// BaseWithoutPostfix strips the postfix modifier from Base.
func (t ClassToken) BaseWithoutPostfix() string {
	if !t.HasPostfix {
		return t.Base
	}
	return t.Base[:len(t.Base)-len(t.PostfixModifier)-1]
}

// Tokenize splits raw into modifiers and a base class. Separators inside a closed
// bracket pair or escaped with a backslash do not split.
func Tokenize(raw, separator, prefix string) ClassToken {
	tok := ClassToken{Original: raw}
	closing := matchedBrackets(raw)

	depth := 0
	start := 0
	postfix := -1
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '\\' {
			i++
			continue
		}
		if depth == 0 {
			if strings.HasPrefix(raw[i:], separator) {
				tok.Modifiers = append(tok.Modifiers, raw[start:i])
				start = i + len(separator)
				i += len(separator) - 1
				continue
			}
			if c == '/' {
				postfix = i
				continue
			}
		}
		switch {
		case c == '[' && closing[i]:
			depth++
		case c == ']' && depth > 0:
			depth--
		}
	}

	base := raw[start:]
	switch {
	case len(base) > 0 && base[0] == importantMarker:
		tok.HasImportant = true
		base = base[1:]
		start++
	case len(base) > 0 && base[len(base)-1] == importantMarker:
		tok.HasImportant = true
		base = base[:len(base)-1]
	}

	if prefix != "" {
		if !strings.HasPrefix(base, prefix) {
			tok.Base = base
			tok.Passthrough = true
			return tok
		}
		base = base[len(prefix):]
		start += len(prefix)
	}
	tok.Base = base

	if base == "" {
		tok.Passthrough = true
		return tok
	}
	if postfix > start && postfix-start < len(base) {
		tok.HasPostfix = true
		tok.PostfixModifier = base[postfix-start+1:]
	}
	return tok
}

// matchedBrackets marks the positions of every '[' that has a matching ']'.
// Unbalanced openers are treated as ordinary characters.
func matchedBrackets(s string) map[int]bool {
	if strings.IndexByte(s, '[') < 0 {
		return nil
	}
	marks := make(map[int]bool)
	var stack []int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			stack = append(stack, i)
		case ']':
			if len(stack) > 0 {
				marks[stack[len(stack)-1]] = true
				stack = stack[:len(stack)-1]
			}
		}
	}
	return marks
}

// modifierSignature keys modifier sets: regular modifiers compare as a set while
// arbitrary variants such as "[&>*]" keep their position.
func modifierSignature(tok ClassToken) string {
	mods := sortModifiers(tok.Modifiers)
	sig := strings.Join(mods, ":")
	if tok.HasImportant {
		sig += string(importantMarker)
	}
	return sig
}

func sortModifiers(modifiers []string) []string {
	if len(modifiers) <= 1 {
		return modifiers
	}
	out := make([]string, 0, len(modifiers))
	var run []string
	for _, m := range modifiers {
		if strings.HasPrefix(m, "[") {
			out = append(out, sortedCopy(run)...)
			out = append(out, m)
			run = run[:0]
			continue
		}
		run = append(run, m)
	}
	return append(out, sortedCopy(run)...)
}

func sortedCopy(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}
