package tree

import (
	"errors"
	"io"

	"github.com/benz9527/xavl/lib/infra"
)

var (
	ErrAVLInvalidArgument = errors.New("[avl] invalid argument")
	ErrAVLViolation       = errors.New("[avl] tree violation")
)

type AVLDirection int8

const (
	Left AVLDirection = -1 + iota
	Root
	Right
)

func (dir AVLDirection) String() string {
	switch dir {
	case Left:
		return "Left"
	case Root:
		return "Root"
	case Right:
		return "Right"
	default:
	}
	return "AVLDirection(unknown)"
}

// AVLTraversalOrder is the token accepted by AVLTree.Keys.
// It is a plain string type, so unknown tokens are representable
// and rejected at runtime with ErrAVLInvalidArgument.
type AVLTraversalOrder string

const (
	InOrder      AVLTraversalOrder = "inorder"
	PreOrder     AVLTraversalOrder = "preorder"
	PostOrder    AVLTraversalOrder = "postorder"
	BreadthFirst AVLTraversalOrder = "breadthfirst"
)

type AVLNode[K infra.OrderedKey, V any] interface {
	Key() K
	Val() V
	// Height of the subtree rooted at this node, a leaf is 1.
	Height() uint32
	// BalanceFactor is height(left) - height(right).
	BalanceFactor() int32
	// Depth is the number of parent links up to the root, the root is 0.
	Depth() uint32
	Left() AVLNode[K, V]
	Right() AVLNode[K, V]
	Parent() AVLNode[K, V]
}

// AVLTree is not thread safe. Use NewThreadSafeAVLMap or an
// external lock for concurrent access.
type AVLTree[K infra.OrderedKey, V any] interface {
	Len() int64
	Root() AVLNode[K, V]
	Desc() bool
	// Insert creates a node for an absent key, otherwise the value
	// of the existing node is replaced in place.
	Insert(key K, val V)
	// Remove returns a detached node holding the removed key and value.
	// Removing an absent key changes nothing and returns (nil, false).
	Remove(key K) (AVLNode[K, V], bool)
	RemoveMin() (AVLNode[K, V], bool)
	RemoveMax() (AVLNode[K, V], bool)
	Find(key K) AVLNode[K, V]
	Contains(key K) bool
	Minimum() AVLNode[K, V]
	Maximum() AVLNode[K, V]
	// Next returns the in-order successor of node or nil.
	Next(node AVLNode[K, V]) AVLNode[K, V]
	// Prev returns the in-order predecessor of node or nil.
	Prev(node AVLNode[K, V]) AVLNode[K, V]
	Keys(order AVLTraversalOrder) ([]K, error)
	Foreach(action func(idx int64, key K, val V) bool)
	Print(w io.Writer, printVal bool) (int, error)
	Release()
}

type AVLMap[K infra.OrderedKey, V any] interface {
	AVLTree[K, V]
	Add(key K, val V)
	Get(key K) (V, bool)
	// Values are listed in key order.
	Values() []V
}

type AVLSet[K infra.OrderedKey] interface {
	AVLTree[K, struct{}]
	Add(key K)
}
