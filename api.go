package bst

// Tree is an ordered set of distinct strings kept in an unbalanced binary search tree.
// It is not safe for concurrent use.
type Tree interface {
	Insert(value string) bool
	Contains(target string) bool
	Remove(target string) (string, bool)
	TraverseInOrder() []string
	ForEachPrefix(prefix string) []string
	Walk(cb Callback)
	Size() int
	Longest() (string, bool)
	Shortest() (string, bool)
	String() string
}

type Node interface {
	Type() NodeType
	Value() string
	ChildCount() int
}

func New() Tree {
	return &tree{}
}
