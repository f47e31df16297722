// Package collation provides the name orderings used to sort recipes.
package collation

import (
	"fmt"
	"strings"

	"github.com/ochairo/receptbok/internal/domain/interfaces/gateways"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// OrdinalName is the configuration value selecting Ordinal
const OrdinalName = "ordinal"

// Ordinal compares names byte by byte, case-sensitively
type Ordinal struct{}

// Compare implements gateways.Collator
func (Ordinal) Compare(a, b string) int {
	return strings.Compare(a, b)
}

// Locale compares names with the collation rules of a language
type Locale struct {
	tag      language.Tag
	collator *collate.Collator
}

// NewLocale creates a collator for tag
func NewLocale(tag language.Tag) *Locale {
	return &Locale{tag: tag, collator: collate.New(tag)}
}

// Compare implements gateways.Collator
func (l *Locale) Compare(a, b string) int {
	return l.collator.CompareString(a, b)
}

// Tag returns the language the collator was built for
func (l *Locale) Tag() language.Tag {
	return l.tag
}

// New resolves a configuration value: "" or "ordinal" yields Ordinal,
// anything else is parsed as a BCP 47 language tag.
func New(name string) (gateways.Collator, error) {
	if name == "" || strings.EqualFold(name, OrdinalName) {
		return Ordinal{}, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("invalid collation %q: %w", name, err)
	}
	return NewLocale(tag), nil
}
