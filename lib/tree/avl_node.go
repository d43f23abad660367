package tree

import (
	"github.com/benz9527/xavl/lib/infra"
)

// The left and right links own the subtrees. The parent link is only
// used to walk back up for successor and predecessor lookups.
type avlNode[K infra.OrderedKey, V any] struct {
	parent *avlNode[K, V]
	left   *avlNode[K, V]
	right  *avlNode[K, V]
	key    K
	val    V
	height uint32
}

// nodeOrNil avoids leaking a typed nil pointer through the AVLNode interface.
func nodeOrNil[K infra.OrderedKey, V any](node *avlNode[K, V]) AVLNode[K, V] {
	if node == nil {
		return nil
	}
	return node
}

func heightOf[K infra.OrderedKey, V any](node *avlNode[K, V]) uint32 {
	if node == nil {
		return 0
	}
	return node.height
}

func (node *avlNode[K, V]) Key() K {
	return node.key
}

func (node *avlNode[K, V]) Val() V {
	return node.val
}

func (node *avlNode[K, V]) Height() uint32 {
	return heightOf(node)
}

func (node *avlNode[K, V]) BalanceFactor() int32 {
	if node == nil {
		return 0
	}
	return int32(heightOf(node.left)) - int32(heightOf(node.right))
}

func (node *avlNode[K, V]) Depth() uint32 {
	depth := uint32(0)
	for aux := node.parent; aux != nil; aux = aux.parent {
		depth++
	}
	return depth
}

func (node *avlNode[K, V]) Left() AVLNode[K, V] {
	if node == nil {
		return nil
	}
	return nodeOrNil(node.left)
}

func (node *avlNode[K, V]) Right() AVLNode[K, V] {
	if node == nil {
		return nil
	}
	return nodeOrNil(node.right)
}

func (node *avlNode[K, V]) Parent() AVLNode[K, V] {
	if node == nil {
		return nil
	}
	return nodeOrNil(node.parent)
}

func (node *avlNode[K, V]) isRoot() bool {
	return node != nil && node.parent == nil
}

func (node *avlNode[K, V]) Direction() AVLDirection {
	if node == nil {
		// impossible run to here
		panic( /* debug assertion */ "[avl] nil node without direction")
	}
	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

// updateHeight only looks at the direct children, it is a local update.
func (node *avlNode[K, V]) updateHeight() {
	node.height = 1 + max(heightOf(node.left), heightOf(node.right))
}

func (node *avlNode[K, V]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *avlNode[K, V]) minimum() *avlNode[K, V] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *avlNode[K, V]) maximum() *avlNode[K, V] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
func (node *avlNode[K, V]) pred() *avlNode[K, V] {
	x := node
	if x == nil {
		return nil
	}
	if x.left != nil {
		return x.left.maximum()
	}

	aux := x.parent
	// Backtrack until x is reached by a right-child step.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (node *avlNode[K, V]) succ() *avlNode[K, V] {
	x := node
	if x == nil {
		return nil
	}
	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parent
	// Backtrack until x is reached by a left-child step.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

// snapshot copies the payload into a node without any links.
func (node *avlNode[K, V]) snapshot() *avlNode[K, V] {
	if node == nil {
		return nil
	}
	return &avlNode[K, V]{
		key:    node.key,
		val:    node.val,
		height: node.height,
	}
}
