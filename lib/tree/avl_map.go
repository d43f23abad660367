package tree

import (
	"github.com/samber/lo"

	"github.com/benz9527/xavl/lib/infra"
)

type avlMap[K infra.OrderedKey, V any] struct {
	*avlTree[K, V]
}

// Add inserts the key, or replaces the value of an existing key.
func (m *avlMap[K, V]) Add(key K, val V) {
	m.Insert(key, val)
}

func (m *avlMap[K, V]) Get(key K) (V, bool) {
	if node := m.find(key); node != nil {
		return node.val, true
	}
	var zero V
	return zero, false
}

func (m *avlMap[K, V]) Values() []V {
	return lo.Map(m.nodes(), func(node *avlNode[K, V], _ int) V {
		return node.val
	})
}

// nodes lists the live nodes in key order.
func (tree *avlTree[K, V]) nodes() []*avlNode[K, V] {
	res := make([]*avlNode[K, V], 0, tree.Len())
	for aux := tree.root.minimum(); aux != nil; aux = aux.succ() {
		res = append(res, aux)
	}
	return res
}

func NewAVLMap[K infra.OrderedKey, V any](opts ...AVLTreeOpt[K, V]) AVLMap[K, V] {
	return &avlMap[K, V]{
		avlTree: newAVLTree[K, V](opts...),
	}
}
