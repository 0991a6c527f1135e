package yacc

import (
	"fmt"
	"strings"
)

// LoweringError reports an AST that breaks the contract New relies on, such
// as a reference to an undefined name. Validated ASTs never produce one.
type LoweringError struct {
	Rule   string
	Symbol string
	Reason string
}

func (e *LoweringError) Error() string {
	var sb strings.Builder
	if e.Rule != "" {
		fmt.Fprintf(&sb, "rule(%s) - ", e.Rule)
	}
	sb.WriteString(e.Reason)
	if e.Symbol != "" {
		fmt.Fprintf(&sb, " '%s'", e.Symbol)
	}
	return sb.String()
}

// Origin says which stage of FromString rejected a grammar.
type Origin int

const (
	ParseOrigin Origin = iota
	ValidationOrigin
)

func (o Origin) String() string {
	switch o {
	case ParseOrigin:
		return "parse"
	case ValidationOrigin:
		return "validation"
	}
	return fmt.Sprintf("Origin(%d)", int(o))
}

// GrammarError is a grammar rejected before lowering, either because its text
// doesn't parse or because the parsed grammar is invalid.
type GrammarError struct {
	Origin Origin
	Err    error
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Origin, e.Err)
}

func (e *GrammarError) Unwrap() error {
	return e.Err
}
