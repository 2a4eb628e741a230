package bst

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"gopkg.in/op/go-logging.v1"
)

func (t *tree) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree) Longest() (string, bool) {
	if t.Size() == 0 {
		return "", false
	}
	return t.longest, true
}

func (t *tree) Shortest() (string, bool) {
	if t.Size() == 0 {
		return "", false
	}
	return t.shortest, true
}

func (t *tree) Contains(target string) bool {
	if t == nil {
		return false
	}
	curr := t.root
	for curr != nil {
		switch c := strings.Compare(target, curr.value); {
		case c < 0:
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			return true
		}
	}
	return false
}

// Insert adds value and reports whether the tree changed. Duplicates are ignored.
func (t *tree) Insert(value string) bool {
	if t == nil {
		return false
	}
	node := newNode(value)
	if t.root == nil {
		t.root = node
		t.size = 1
		t.longest, t.shortest = value, value
		return true
	}

	var parent *bstNode
	curr := t.root
	for curr != nil {
		parent = curr
		c := node.compare(curr)
		if c == 0 {
			if log.IsEnabledFor(logging.DEBUG) {
				log.Debugf("ignoring duplicate %q", value)
			}
			return false
		}
		if c < 0 {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	if node.compare(parent) < 0 {
		parent.left = node
	} else {
		parent.right = node
	}
	t.size++
	t.track(value)
	return true
}

// track updates the cached extremes. Ties keep the value seen first.
func (t *tree) track(value string) {
	n := utf8.RuneCountInString(value)
	if n > utf8.RuneCountInString(t.longest) {
		t.longest = value
	}
	if n < utf8.RuneCountInString(t.shortest) {
		t.shortest = value
	}
}

func (t *tree) TraverseInOrder() []string {
	values := make([]string, 0, t.Size())
	if t == nil {
		return values
	}
	walk(t.root, descendAll, func(n *bstNode) {
		values = append(values, n.value)
	})
	return values
}

func (t *tree) Walk(cb Callback) {
	if t == nil || cb == nil {
		return
	}
	walk(t.root, descendAll, func(n *bstNode) {
		cb(n)
	})
}

// ForEachPrefix returns the stored values starting with prefix, in ascending order.
func (t *tree) ForEachPrefix(prefix string) []string {
	values := make([]string, 0)
	if t == nil {
		return values
	}
	walk(t.root, func(n *bstNode) (bool, bool) {
		// values carrying the prefix lie in [prefix, first string above the prefix range)
		inRange := strings.HasPrefix(n.value, prefix)
		return n.value > prefix, n.value < prefix || inRange
	}, func(n *bstNode) {
		if strings.HasPrefix(n.value, prefix) {
			values = append(values, n.value)
		}
	})
	return values
}

func (t *tree) String() string {
	longest, shortest := noWord, noWord
	result := header
	if t.Size() == 0 {
		result += emptyMessage
	} else {
		longest, shortest = t.longest, t.shortest
	}
	result += fmt.Sprintf("Number of Nodes: %s\n", humanize.Comma(int64(t.Size())))
	result += fmt.Sprintf("Longest Word: %s\n", longest)
	result += fmt.Sprintf("Shortest Word: %s\n", shortest)
	return result
}

func descendAll(*bstNode) (bool, bool) {
	return true, true
}

// walk visits nodes under root in ascending order using an explicit stack,
// so skewed trees do not grow the goroutine stack. descend reports whether
// the left and right subtrees of a node may hold anything visit wants.
func walk(root *bstNode, descend func(n *bstNode) (bool, bool), visit func(n *bstNode)) {
	var stack []*bstNode
	curr := root
	for curr != nil || len(stack) > 0 {
		for curr != nil {
			stack = append(stack, curr)
			if left, _ := descend(curr); left {
				curr = curr.left
			} else {
				curr = nil
			}
		}
		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(curr)
		if _, right := descend(curr); right {
			curr = curr.right
		} else {
			curr = nil
		}
	}
}
