// Package codegen generates Go source that embeds pre-computed pattern
// explanations.
package codegen

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Names used in generated code.
const (
	TokenTypeName   = "ExplainedToken"
	ExplainedName   = "Explained"
	CatalogVarName  = "Catalog"
	ExplainedSuffix = "Explained"
)

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Identifier turns a catalog name such as "iso-date" or "user_email" into
// an exported Go identifier ("IsoDate", "UserEmail").
func Identifier(name string) (string, error) {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})

	var b strings.Builder
	for _, p := range parts {
		b.WriteString(UpperFirst(p))
	}
	id := b.String()

	if !token.IsIdentifier(id) || !token.IsExported(id) {
		return "", fmt.Errorf("%q cannot be turned into an exported Go identifier", name)
	}
	return id, nil
}

// VarName returns the generated variable name for a pattern identifier.
func VarName(id string) string {
	return id + ExplainedSuffix
}
