package yacc

import (
	"fmt"
	"strings"
)

// Kind selects how a grammar is augmented.
type Kind int

const (
	// Original adds only the start rule and end terminal.
	Original Kind = iota
	// Eco additionally threads declared implicit tokens (whitespace,
	// comments) after every terminal.
	Eco
)

func (k Kind) String() string {
	switch k {
	case Original:
		return "original"
	case Eco:
		return "eco"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "original", "":
		return Original, nil
	case "eco":
		return Eco, nil
	}
	return Original, fmt.Errorf("unknown grammar kind %q (want original or eco)", s)
}
