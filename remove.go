package bst

import (
	"strings"

	"gopkg.in/op/go-logging.v1"
)

// Remove deletes target and reports the value held by the node that left the
// tree, or false if target is not stored. For a node with two children that is
// its in-order successor, whose value moves into target's place.
//
// The cached longest and shortest values are not recomputed, so after a removal
// they may name a value that is no longer in the tree. They are only reset once
// the tree becomes empty.
func (t *tree) Remove(target string) (string, bool) {
	if t == nil || t.root == nil {
		return "", false
	}

	// link is the parent's child slot holding curr, or the root slot
	link := &t.root
	for *link != nil {
		curr := *link
		switch c := strings.Compare(target, curr.value); {
		case c < 0:
			link = &curr.left
		case c > 0:
			link = &curr.right
		default:
			return t.removeRef(link), true
		}
	}
	return "", false
}

// removeRef unlinks the node in link and returns the value of the detached node.
func (t *tree) removeRef(link **bstNode) string {
	curr := *link
	nodeType := curr.Type()
	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("removing %q (%s)", curr.value, nodeType)
	}

	removed := curr.value
	switch nodeType {
	case Leaf:
		replaceRef(link, nil)

	case OneChild:
		child := curr.onlyChild()
		curr.left, curr.right = nil, nil
		replaceRef(link, child)

	case TwoChildren:
		// the successor has no left child, so splicing in its right child detaches it
		succRef := minimumRef(&curr.right)
		succ := *succRef
		removed = succ.value
		curr.value = succ.value
		replaceRef(succRef, succ.right)
		succ.right = nil
	}

	t.size--
	if t.size == 0 {
		t.longest, t.shortest = "", ""
	}
	return removed
}
