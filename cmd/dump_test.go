package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/yaccgrm/yacc"
)

func TestDumpText(t *testing.T) {
	t.Parallel()

	g := yacc.MustFromString(yacc.Original, "%start R %left 'T' %% R: 'T';")

	var sb strings.Builder
	require.NoError(t, writeDump(&sb, g, "text"))
	assert.Equal(t,
		"original grammar\n"+
			"├── terminals\n"+
			"│   ├── 0 $\n"+
			"│   └── 1 T left(0)\n"+
			"└── nonterminals\n"+
			"    ├── 0 ^ (start)\n"+
			"    │   └── 0 ^: R;\n"+
			"    └── 1 R\n"+
			"        └── 1 R: 'T'; left(0)\n",
		sb.String())
}

func TestDumpTextImplicit(t *testing.T) {
	t.Parallel()

	g := yacc.MustFromString(yacc.Eco, "%implicit_tokens ws %start S %% S: 'a';")
	assert.Contains(t, dumpText(g), "3 ~ (implicit)")
}

func TestDumpJSON(t *testing.T) {
	t.Parallel()

	g := yacc.MustFromString(yacc.Eco, "%implicit_tokens ws %start e %left '+' %% e: e '+' e | 'n' | ;")

	var sb strings.Builder
	require.NoError(t, writeDump(&sb, g, "json"))

	var tables yacc.Tables
	require.NoError(t, json.Unmarshal([]byte(sb.String()), &tables))
	assert.Equal(t, g.Tables(), tables)
}

func TestDumpUnknownFormat(t *testing.T) {
	t.Parallel()

	g := yacc.MustFromString(yacc.Original, "%start R %% R: 'T';")
	assert.Error(t, writeDump(&strings.Builder{}, g, "yaml"))
}
