package bst

import (
	"strings"
)

func (n *bstNode) Type() NodeType {
	switch n.ChildCount() {
	case 0:
		return Leaf
	case 1:
		return OneChild
	}
	return TwoChildren
}

func (n *bstNode) Value() string {
	return n.value
}

func (n *bstNode) ChildCount() int {
	count := 0
	if n.left != nil {
		count++
	}
	if n.right != nil {
		count++
	}
	return count
}

// compare orders n against other by value. A missing other sorts before n.
func (n *bstNode) compare(other *bstNode) int {
	if other == nil {
		return 1
	}
	return strings.Compare(n.value, other.value)
}

// onlyChild returns the child of a node with exactly one child.
func (n *bstNode) onlyChild() *bstNode {
	if n.left != nil {
		return n.left
	}
	return n.right
}

// find the leftmost link under an, the in-order successor slot of its parent
func minimumRef(an **bstNode) **bstNode {
	for (*an).left != nil {
		an = &(*an).left
	}
	return an
}

// modify oldNode ptr, ** means ref to pointer
func replaceRef(oldNode **bstNode, newNode *bstNode) {
	*oldNode = newNode
}
