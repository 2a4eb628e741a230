package bst

import (
	"gopkg.in/op/go-logging.v1"
)

var log = logging.MustGetLogger("bst")

const (
	Leaf NodeType = iota
	OneChild
	TwoChildren
)

const (
	// description used by String
	header       = "Binary Search Tree (BST):\n"
	emptyMessage = "The tree is empty.\n"
	// shown when longest or shortest was never recorded
	noWord = "None"
)

type (
	tree struct {
		size int
		root *bstNode

		// cached on insert only, see Remove
		longest  string
		shortest string
	}

	NodeType int

	bstNode struct {
		value string
		left  *bstNode
		right *bstNode
	}

	Callback func(n Node)
)

func newNode(value string) *bstNode {
	return &bstNode{value: value}
}

func (t NodeType) String() string {
	return []string{"Leaf", "OneChild", "TwoChildren"}[t]
}
