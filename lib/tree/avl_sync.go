package tree

import (
	"io"
	"sync"

	"github.com/benz9527/xavl/lib/infra"
)

// threadSafeAVLMap serializes writers and shares readers by a RWMutex.
// Node reads return detached snapshots, so the links of a returned node
// are always nil. Root is the exception, it exposes the live root for
// the validators and must not be walked while writers are running.
type threadSafeAVLMap[K infra.OrderedKey, V any] struct {
	lock sync.RWMutex
	m    *avlMap[K, V]
}

func (t *threadSafeAVLMap[K, V]) Len() int64 {
	return t.m.Len()
}

func (t *threadSafeAVLMap[K, V]) Root() AVLNode[K, V] {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.m.Root()
}

func (t *threadSafeAVLMap[K, V]) Desc() bool {
	return t.m.Desc()
}

func (t *threadSafeAVLMap[K, V]) Insert(key K, val V) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.m.Insert(key, val)
}

func (t *threadSafeAVLMap[K, V]) Add(key K, val V) {
	t.Insert(key, val)
}

func (t *threadSafeAVLMap[K, V]) Remove(key K) (AVLNode[K, V], bool) {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.m.Remove(key)
}

func (t *threadSafeAVLMap[K, V]) RemoveMin() (AVLNode[K, V], bool) {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.m.RemoveMin()
}

func (t *threadSafeAVLMap[K, V]) RemoveMax() (AVLNode[K, V], bool) {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.m.RemoveMax()
}

func (t *threadSafeAVLMap[K, V]) Find(key K) AVLNode[K, V] {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return nodeOrNil(t.m.find(key).snapshot())
}

func (t *threadSafeAVLMap[K, V]) Contains(key K) bool {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.m.find(key) != nil
}

func (t *threadSafeAVLMap[K, V]) Get(key K) (V, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.m.Get(key)
}

func (t *threadSafeAVLMap[K, V]) Minimum() AVLNode[K, V] {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return nodeOrNil(t.m.root.minimum().snapshot())
}

func (t *threadSafeAVLMap[K, V]) Maximum() AVLNode[K, V] {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return nodeOrNil(t.m.root.maximum().snapshot())
}

// Next looks the key of node up again, the node itself may be a snapshot.
func (t *threadSafeAVLMap[K, V]) Next(node AVLNode[K, V]) AVLNode[K, V] {
	if node == nil {
		return nil
	}
	t.lock.RLock()
	defer t.lock.RUnlock()
	x := t.m.find(node.Key())
	if x == nil {
		return nil
	}
	return nodeOrNil(x.succ().snapshot())
}

func (t *threadSafeAVLMap[K, V]) Prev(node AVLNode[K, V]) AVLNode[K, V] {
	if node == nil {
		return nil
	}
	t.lock.RLock()
	defer t.lock.RUnlock()
	x := t.m.find(node.Key())
	if x == nil {
		return nil
	}
	return nodeOrNil(x.pred().snapshot())
}

func (t *threadSafeAVLMap[K, V]) Keys(order AVLTraversalOrder) ([]K, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.m.Keys(order)
}

func (t *threadSafeAVLMap[K, V]) Values() []V {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.m.Values()
}

// Foreach holds the read lock during the walk, the action must not write
// to the same map.
func (t *threadSafeAVLMap[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	t.m.Foreach(action)
}

func (t *threadSafeAVLMap[K, V]) Print(w io.Writer, printVal bool) (int, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.m.Print(w, printVal)
}

func (t *threadSafeAVLMap[K, V]) Release() {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.m.Release()
}

func NewThreadSafeAVLMap[K infra.OrderedKey, V any](opts ...AVLTreeOpt[K, V]) AVLMap[K, V] {
	return &threadSafeAVLMap[K, V]{
		m: &avlMap[K, V]{
			avlTree: newAVLTree[K, V](opts...),
		},
	}
}
