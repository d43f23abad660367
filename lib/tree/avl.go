package tree

import (
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/benz9527/xavl/lib/infra"
	"github.com/benz9527/xavl/xlog"
)

// References:
// https://en.wikipedia.org/wiki/AVL_tree
// Niklaus Wirth, Algorithms + Data Structures = Programs, 4.4.6
// AVL properties:
// p1. For every node, keys in the left subtree < node key < keys in the
//   right subtree.
// p2. For every node, |height(left) - height(right)| <= 1.
// p3. node.height = 1 + max(height(left), height(right)), height(nil) = 0.
// (Conclusion) The height of a tree with n nodes is less than
//   1.44*log2(n+2), so recursion depth of insert and remove is O(log n).

type avlTree[K infra.OrderedKey, V any] struct {
	root           *avlNode[K, V]
	count          int64
	cmp            infra.OrderedKeyComparator[K]
	logger         xlog.XLogger
	meter          metric.Meter
	stats          *avlTreeStats
	isDesc         bool
	isRmBorrowSucc bool
}

func (tree *avlTree[K, V]) keyCompare(k1, k2 K) int64 {
	return tree.cmp(k1, k2)
}

func (tree *avlTree[K, V]) Len() int64 {
	return atomic.LoadInt64(&tree.count)
}

func (tree *avlTree[K, V]) Root() AVLNode[K, V] {
	return nodeOrNil(tree.root)
}

func (tree *avlTree[K, V]) Desc() bool {
	return tree.isDesc
}

/*
		 |                         |
		 X                         Y
		/ \     rotate(X, Left)   / \
	   L   Y    ============>    X   Yd
		  / \                   / \
		Yc   Yd                L   Yc

		 |                         |
		 X                         Y
		/ \     rotate(X, Right)  / \
	   Y   R    ============>    Yd  X
	  / \                           / \
	Yd   Yc                        Yc  R

Only X and Y change their heights. The caller relinks Y into the
slot X used to occupy.
*/
func (tree *avlTree[K, V]) rotate(x *avlNode[K, V], dir AVLDirection) *avlNode[K, V] {
	var y *avlNode[K, V]
	switch dir {
	case Left:
		if x == nil || x.right == nil {
			// impossible run to here
			panic( /* debug assertion */ "[avl] left rotate node x is nil or x.right is nil")
		}
		y = x.right
		x.right, y.left = y.left, x
	case Right:
		if x == nil || x.left == nil {
			// impossible run to here
			panic( /* debug assertion */ "[avl] right rotate node x is nil or x.left is nil")
		}
		y = x.left
		x.left, y.right = y.right, x
	default:
		// impossible run to here
		panic( /* debug assertion */ fmt.Errorf("[avl] rotate direction %s, %w", dir, ErrAVLInvalidArgument))
	}

	y.parent = x.parent
	x.fixLink()
	x.updateHeight()
	y.fixLink()
	y.updateHeight()

	tree.stats.rotated(dir)
	if tree.logger != nil {
		tree.logger.Debug("[avl] rotate",
			zap.Stringer("dir", dir),
			zap.Any("pivot", x.key),
			zap.Any("newRoot", y.key),
		)
	}
	return y
}

/*
After a recursive insert returns, exactly one of the cases applies:

i1 (LL): balance > 1 and the key went into the left child's left side.
	rotate(X, Right)

i2 (RR): balance < -1 and the key went into the right child's right side.
	rotate(X, Left)

i3 (LR): balance > 1 and the key went into the left child's right side.
	rotate(X.left, Left), then rotate(X, Right)

i4 (RL): balance < -1 and the key went into the right child's left side.
	rotate(X.right, Right), then rotate(X, Left)
*/
func (tree *avlTree[K, V]) insert(node *avlNode[K, V], key K, val V) *avlNode[K, V] {
	if node == nil {
		atomic.AddInt64(&tree.count, 1)
		tree.stats.inserted()
		if tree.logger != nil {
			tree.logger.Debug("[avl] insert", zap.Any("key", key))
		}
		return &avlNode[K, V]{
			key:    key,
			val:    val,
			height: 1,
		}
	}

	res := tree.keyCompare(key, node.key)
	if /* equal */ res == 0 {
		// No structural change, nothing to rebalance.
		node.val = val
		return node
	} else /* less */ if res < 0 {
		node.left = tree.insert(node.left, key, val)
	} else /* greater */ {
		node.right = tree.insert(node.right, key, val)
	}

	node.updateHeight()
	balance := node.BalanceFactor()
	switch {
	case /* i1 */ balance > 1 && tree.keyCompare(key, node.left.key) < 0:
		node = tree.rotate(node, Right)
	case /* i2 */ balance < -1 && tree.keyCompare(key, node.right.key) > 0:
		node = tree.rotate(node, Left)
	case /* i3 */ balance > 1:
		node.left = tree.rotate(node.left, Left)
		node = tree.rotate(node, Right)
	case /* i4 */ balance < -1:
		node.right = tree.rotate(node.right, Right)
		node = tree.rotate(node, Left)
	default:
	}
	node.fixLink()
	return node
}

func (tree *avlTree[K, V]) Insert(key K, val V) {
	tree.root = tree.insert(tree.root, key, val)
	tree.root.parent = nil
}

/*
r1: Current node X has at most one child C, splice C (or nil) into X's slot.

r2: Current node X has two children. Copy the payload of the in-order
pred P (or succ S) into X, then remove P from the left subtree (or S
from the right subtree) by its key. X itself stays linked.

	  |                    |
	  X                    P
	 / \                  / \
	L  ..   copy(P, X)   L  ..
	 \      =========>    \
	  P                    P (removed next)

After the removal, walk back up and rebalance with the subtree's own
balance factor, the removed key does not tell the heavy side:

rm1: balance > 1 and balance(left) >= 0, rotate(X, Right)
rm2: balance > 1 and balance(left) < 0, rotate(X.left, Left), rotate(X, Right)
rm3: balance < -1 and balance(right) <= 0, rotate(X, Left)
rm4: balance < -1 and balance(right) > 0, rotate(X.right, Right), rotate(X, Left)
*/
func (tree *avlTree[K, V]) remove(node *avlNode[K, V], key K, removed **avlNode[K, V]) *avlNode[K, V] {
	if node == nil {
		return nil
	}

	res := tree.keyCompare(key, node.key)
	if /* less */ res < 0 {
		node.left = tree.remove(node.left, key, removed)
	} else /* greater */ if res > 0 {
		node.right = tree.remove(node.right, key, removed)
	} else /* equal */ {
		if *removed == nil {
			// The first match is the key the caller asked for. A second
			// match is only the duplicated pred/succ of r2.
			*removed = node.snapshot()
		}
		if /* r1 */ node.left == nil || node.right == nil {
			child := node.left
			if child == nil {
				child = node.right
			}
			node.parent, node.left, node.right = nil, nil, nil
			atomic.AddInt64(&tree.count, -1)
			return child
		}
		/* r2 */
		if tree.isRmBorrowSucc {
			succ := node.right.minimum()
			node.key, node.val = succ.key, succ.val
			node.right = tree.remove(node.right, succ.key, removed)
		} else {
			pred := node.left.maximum()
			node.key, node.val = pred.key, pred.val
			node.left = tree.remove(node.left, pred.key, removed)
		}
	}

	node.updateHeight()
	balance := node.BalanceFactor()
	switch {
	case /* rm1 */ balance > 1 && node.left.BalanceFactor() >= 0:
		node = tree.rotate(node, Right)
	case /* rm2 */ balance > 1:
		node.left = tree.rotate(node.left, Left)
		node = tree.rotate(node, Right)
	case /* rm3 */ balance < -1 && node.right.BalanceFactor() <= 0:
		node = tree.rotate(node, Left)
	case /* rm4 */ balance < -1:
		node.right = tree.rotate(node.right, Right)
		node = tree.rotate(node, Left)
	default:
	}
	node.fixLink()
	return node
}

func (tree *avlTree[K, V]) Remove(key K) (AVLNode[K, V], bool) {
	if atomic.LoadInt64(&tree.count) <= 0 {
		return nil, false
	}

	var removed *avlNode[K, V]
	tree.root = tree.remove(tree.root, key, &removed)
	if tree.root != nil {
		tree.root.parent = nil
	}
	if removed == nil {
		return nil, false
	}
	tree.stats.removed()
	if tree.logger != nil {
		tree.logger.Debug("[avl] remove", zap.Any("key", key), zap.Int64("len", tree.Len()))
	}
	return removed, true
}

func (tree *avlTree[K, V]) RemoveMin() (AVLNode[K, V], bool) {
	_min := tree.root.minimum()
	if _min == nil {
		return nil, false
	}
	return tree.Remove(_min.key)
}

func (tree *avlTree[K, V]) RemoveMax() (AVLNode[K, V], bool) {
	_max := tree.root.maximum()
	if _max == nil {
		return nil, false
	}
	return tree.Remove(_max.key)
}

func (tree *avlTree[K, V]) find(key K) *avlNode[K, V] {
	for aux := tree.root; aux != nil; {
		res := tree.keyCompare(key, aux.key)
		if res == 0 {
			return aux
		} else if res > 0 {
			aux = aux.right
		} else {
			aux = aux.left
		}
	}
	return nil
}

func (tree *avlTree[K, V]) Find(key K) AVLNode[K, V] {
	return nodeOrNil(tree.find(key))
}

func (tree *avlTree[K, V]) Contains(key K) bool {
	return tree.find(key) != nil
}

func (tree *avlTree[K, V]) Minimum() AVLNode[K, V] {
	return nodeOrNil(tree.root.minimum())
}

func (tree *avlTree[K, V]) Maximum() AVLNode[K, V] {
	return nodeOrNil(tree.root.maximum())
}

// Next only follows the links of nodes owned by a tree. A detached node,
// like the one returned by Remove, has no successor.
func (tree *avlTree[K, V]) Next(node AVLNode[K, V]) AVLNode[K, V] {
	x, ok := node.(*avlNode[K, V])
	if !ok || x == nil {
		return nil
	}
	return nodeOrNil(x.succ())
}

func (tree *avlTree[K, V]) Prev(node AVLNode[K, V]) AVLNode[K, V] {
	x, ok := node.(*avlNode[K, V])
	if !ok || x == nil {
		return nil
	}
	return nodeOrNil(x.pred())
}

// Inorder traversal by an explicit stack. The action returns false to stop.
func (tree *avlTree[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	size := atomic.LoadInt64(&tree.count)
	aux := tree.root
	if size <= 0 || aux == nil {
		return
	}

	stack := make([]*avlNode[K, V], 0, aux.height)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.key, aux.val) {
			return
		}
		idx++
		stack = stack[:size-1]
		for aux = aux.right; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

// Release unlinks every node iteratively and leaves an empty tree.
func (tree *avlTree[K, V]) Release() {
	aux := tree.root
	tree.root = nil
	atomic.StoreInt64(&tree.count, 0)
	if aux == nil {
		return
	}

	stack := make([]*avlNode[K, V], 0, aux.height)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		r := aux.right
		aux.left, aux.right, aux.parent = nil, nil, nil
		stack = stack[:size-1]
		for aux = r; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

type AVLTreeOpt[K infra.OrderedKey, V any] func(*avlTree[K, V])

func WithAVLTreeDesc[K infra.OrderedKey, V any]() AVLTreeOpt[K, V] {
	return func(tree *avlTree[K, V]) {
		tree.isDesc = true
	}
}

// WithAVLTreeRemoveBorrowSucc removes a node with two children by
// borrowing its in-order succ instead of the pred.
func WithAVLTreeRemoveBorrowSucc[K infra.OrderedKey, V any]() AVLTreeOpt[K, V] {
	return func(tree *avlTree[K, V]) {
		tree.isRmBorrowSucc = true
	}
}

// WithAVLTreeLogger traces inserts, rotations and removals at debug level.
func WithAVLTreeLogger[K infra.OrderedKey, V any](logger xlog.XLogger) AVLTreeOpt[K, V] {
	return func(tree *avlTree[K, V]) {
		tree.logger = logger
	}
}

// WithAVLTreeMeter records the inserts, removes, rotations and the size
// of the tree by the meter.
func WithAVLTreeMeter[K infra.OrderedKey, V any](meter metric.Meter) AVLTreeOpt[K, V] {
	return func(tree *avlTree[K, V]) {
		tree.meter = meter
	}
}

func newAVLTree[K infra.OrderedKey, V any](opts ...AVLTreeOpt[K, V]) *avlTree[K, V] {
	tree := &avlTree[K, V]{
		count:          0,
		isDesc:         false,
		isRmBorrowSucc: false,
	}

	for _, o := range opts {
		if o == nil {
			continue
		}
		o(tree)
	}
	tree.cmp = infra.NewOrderedKeyComparator[K](tree.isDesc)
	if tree.meter != nil {
		tree.stats = newAVLTreeStats[K, V](tree.meter, tree)
	}
	return tree
}

func NewAVLTree[K infra.OrderedKey, V any](opts ...AVLTreeOpt[K, V]) AVLTree[K, V] {
	return newAVLTree[K, V](opts...)
}
