// Package ident provides name-casing conversions and a stable shape/symbol
// identifier interner used across the code generation pipeline.
package ident

import (
	"strings"
	"unicode"
)

// splitWords breaks an identifier into its constituent words. It handles
// snake_case, kebab-case, SCREAMING_SNAKE, camelCase, and PascalCase input,
// including runs of uppercase letters treated as acronyms (e.g. "HTTPCode"
// splits into "HTTP", "Code").
func splitWords(s string) []string {
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case unicode.IsDigit(r):
			if len(cur) > 0 && !unicode.IsDigit(cur[len(cur)-1]) && !unicode.IsUpper(cur[len(cur)-1]) {
				flush()
			}
			cur = append(cur, r)
		case unicode.IsUpper(r):
			if len(cur) > 0 {
				prev := cur[len(cur)-1]
				nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) {
					flush()
				} else if unicode.IsUpper(prev) && nextIsLower {
					flush()
				}
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

// PascalCase converts an identifier to PascalCase (UpperCamelCase).
func PascalCase(s string) string {
	words := splitWords(s)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(capitalizeWord(w))
	}
	return b.String()
}

// CamelCase converts an identifier to lowerCamelCase.
func CamelCase(s string) string {
	words := splitWords(s)
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(lowerWord(w))
		} else {
			b.WriteString(capitalizeWord(w))
		}
	}
	return b.String()
}

// SnakeCase converts an identifier to lower_snake_case.
func SnakeCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// ScreamCase converts an identifier to UPPER_SNAKE_CASE, suitable for
// generated constant names.
func ScreamCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w)
	}
	return strings.Join(words, "_")
}

// TitleCase converts an identifier to space separated Title Case words,
// used for generated documentation headings.
func TitleCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = capitalizeWord(w)
	}
	return strings.Join(words, " ")
}

func capitalizeWord(w string) string {
	if w == "" {
		return w
	}
	if isAllUpper(w) && len(w) > 1 {
		return w
	}
	r := []rune(w)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

func lowerWord(w string) string {
	if isAllUpper(w) && len(w) > 1 {
		return strings.ToLower(w)
	}
	if w == "" {
		return w
	}
	r := []rune(w)
	return strings.ToLower(string(r[0])) + string(r[1:])
}

func isAllUpper(w string) bool {
	for _, r := range w {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// ExportedField returns a Go exported field or type name for a Smithy member
// or shape name, guarding against collisions with reserved Go keywords by
// appending an underscore.
func ExportedField(name string) string {
	out := PascalCase(name)
	if isGoKeyword(out) {
		return out + "_"
	}
	return out
}

var goKeywords = map[string]bool{
	"break": true, "default": true, "func": true, "interface": true, "select": true,
	"case": true, "defer": true, "go": true, "map": true, "struct": true,
	"chan": true, "else": true, "goto": true, "package": true, "switch": true,
	"const": true, "fallthrough": true, "if": true, "range": true, "type": true,
	"continue": true, "for": true, "import": true, "return": true, "var": true,
}

func isGoKeyword(s string) bool {
	return goKeywords[strings.ToLower(s)]
}
