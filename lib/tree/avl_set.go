package tree

import (
	"github.com/benz9527/xavl/lib/infra"
)

type avlSet[K infra.OrderedKey] struct {
	*avlTree[K, struct{}]
}

// Add is a no-op for an existing key.
func (s *avlSet[K]) Add(key K) {
	s.Insert(key, struct{}{})
}

func NewAVLSet[K infra.OrderedKey](opts ...AVLTreeOpt[K, struct{}]) AVLSet[K] {
	return &avlSet[K]{
		avlTree: newAVLTree[K, struct{}](opts...),
	}
}
