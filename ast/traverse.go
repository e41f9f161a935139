package ast

import (
	"fmt"
	"strings"

	"github.com/takoeight0821/moonlet/token"
)

// leaf is a bare word inside an S-expression.
type leaf string

func (l leaf) String() string {
	return string(l)
}

// optional renders a possibly nil node; nil renders as nothing.
func optional(n Node) fmt.Stringer {
	if n == nil {
		return leaf("")
	}
	return n
}

func params(ps []token.Token) fmt.Stringer {
	names := make([]leaf, len(ps))
	for i, p := range ps {
		names[i] = leaf(p.Lexeme)
	}
	return parenthesize("params", concat(names))
}

// parenthesize takes a head string and a variadic number of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is parenthesized and separated by a space.
// If the head string is not empty, it is added at the beginning of the string.
func parenthesize(head string, elems ...fmt.Stringer) fmt.Stringer {
	var b strings.Builder
	b.WriteString("(")
	elemsStr := concat(elems).String()
	if head != "" {
		b.WriteString(head)
	}
	if elemsStr != "" {
		if head != "" {
			b.WriteString(" ")
		}
		b.WriteString(elemsStr)
	}
	b.WriteString(")")
	return &b
}

// concat takes a slice of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is separated by a space.
// Empty strings are skipped.
func concat[T fmt.Stringer](elems []T) fmt.Stringer {
	var b strings.Builder
	for _, elem := range elems {
		str := elem.String()
		if str == "" {
			continue
		}
		if b.Len() != 0 {
			b.WriteString(" ")
		}
		b.WriteString(str)
	}
	return &b
}

// Traverse the [Node] in depth-first order.
// f is called for each node.
// If f returns an error, f also must return the original argument n.
// Traverse modifies each child before n.
func Traverse(n Node, f func(Node, error) (Node, error)) (Node, error) {
	n, err := n.Plate(nil, func(n Node, err error) (Node, error) {
		child, childErr := Traverse(n, f)
		if childErr != nil {
			return child, childErr
		}
		return child, err
	})
	return f(n, err)
}

// Children returns the direct children of n. The bodies of compound
// statements are returned as *Block nodes.
func Children(n Node) []Node {
	var children []Node
	_, err := n.Plate(nil, func(n Node, _ error) (Node, error) {
		children = append(children, n)
		return n, nil
	})
	if err != nil {
		panic(fmt.Errorf("unexpected error: %w", err))
	}
	return children
}

// Universe returns every node under n, n included, children first.
func Universe(n Node) []Node {
	var nodes []Node
	_, err := Traverse(n, func(n Node, _ error) (Node, error) {
		nodes = append(nodes, n)
		return n, nil
	})
	if err != nil {
		panic(fmt.Errorf("unexpected error: %w", err))
	}
	return nodes
}

// Walk visits n and then its descendants in pre-order.
func Walk(n Node, v Visitor) {
	n.Accept(v)
	for _, child := range Children(n) {
		Walk(child, v)
	}
}
