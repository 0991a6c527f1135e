// Package gotree builds and prints text trees such as
//
//	grammar validation failed
//	├── rule(a) - reference to undefined rule 'b'
//	└── duplicate token 'x'
package gotree

import (
	"strings"
)

const (
	newLine      = "\n"
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

type (
	tree struct {
		text  string
		items []Tree
	}

	// Tree is a node of a printable tree.
	Tree interface {
		Add(text string) Tree
		AddTree(tree Tree)
		Items() []Tree
		Text() string
		Print() string
	}
)

// New returns a tree with a single root node.
func New(text string) Tree {
	return &tree{
		text:  text,
		items: []Tree{},
	}
}

// Add appends a child node and returns it.
func (t *tree) Add(text string) Tree {
	n := New(text)
	t.items = append(t.items, n)
	return n
}

// AddTree appends a subtree.
func (t *tree) AddTree(tree Tree) {
	t.items = append(t.items, tree)
}

func (t *tree) Text() string {
	return t.text
}

func (t *tree) Items() []Tree {
	return t.items
}

// Print renders the tree, one node per line. Multi-line node text is kept
// aligned under its branch.
func (t *tree) Print() string {
	var sb strings.Builder
	sb.WriteString(t.text + newLine)
	printItems(&sb, t.items, "")
	return sb.String()
}

func printItems(sb *strings.Builder, items []Tree, prefix string) {
	for i, item := range items {
		branch, indent := middleItem, continueItem
		if i == len(items)-1 {
			branch, indent = lastItem, emptySpace
		}
		for j, line := range strings.Split(item.Text(), newLine) {
			if j == 0 {
				sb.WriteString(prefix + branch + line + newLine)
			} else {
				sb.WriteString(prefix + indent + line + newLine)
			}
		}
		printItems(sb, item.Items(), prefix+indent)
	}
}
