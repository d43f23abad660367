package tree

import (
	"fmt"
	"strings"

	"github.com/benz9527/xavl/lib/infra"
)

// ParseAVLTraversalOrder accepts the order tokens case-insensitively.
func ParseAVLTraversalOrder(order string) (AVLTraversalOrder, error) {
	switch o := AVLTraversalOrder(strings.ToLower(strings.TrimSpace(order))); o {
	case InOrder, PreOrder, PostOrder, BreadthFirst:
		return o, nil
	default:
	}
	return "", fmt.Errorf("[avl] unknown traversal order %q, %w", order, ErrAVLInvalidArgument)
}

func (tree *avlTree[K, V]) Keys(order AVLTraversalOrder) ([]K, error) {
	keys := make([]K, 0, tree.Len())
	switch order {
	case InOrder:
		keys = inorderKeys(tree.root, keys)
	case PreOrder:
		keys = preorderKeys(tree.root, keys)
	case PostOrder:
		keys = postorderKeys(tree.root, keys)
	case BreadthFirst:
		keys = bfsKeys(tree.root, keys)
	default:
		return nil, fmt.Errorf("[avl] unknown traversal order %q, %w", string(order), ErrAVLInvalidArgument)
	}
	return keys, nil
}

func inorderKeys[K infra.OrderedKey, V any](node *avlNode[K, V], keys []K) []K {
	if node == nil {
		return keys
	}
	keys = inorderKeys(node.left, keys)
	keys = append(keys, node.key)
	return inorderKeys(node.right, keys)
}

func preorderKeys[K infra.OrderedKey, V any](node *avlNode[K, V], keys []K) []K {
	if node == nil {
		return keys
	}
	keys = append(keys, node.key)
	keys = preorderKeys(node.left, keys)
	return preorderKeys(node.right, keys)
}

func postorderKeys[K infra.OrderedKey, V any](node *avlNode[K, V], keys []K) []K {
	if node == nil {
		return keys
	}
	keys = postorderKeys(node.left, keys)
	keys = postorderKeys(node.right, keys)
	return append(keys, node.key)
}

// BFS by a slice backed FIFO queue, level by level and left to right.
func bfsKeys[K infra.OrderedKey, V any](node *avlNode[K, V], keys []K) []K {
	if node == nil {
		return keys
	}

	queue := make([]*avlNode[K, V], 0, cap(keys)>>1+1)
	defer func() {
		clear(queue)
	}()
	queue = append(queue, node)

	for len(queue) > 0 {
		aux := queue[0]
		keys = append(keys, aux.key)
		if aux.left != nil {
			queue = append(queue, aux.left)
		}
		if aux.right != nil {
			queue = append(queue, aux.right)
		}
		queue = queue[1:]
	}
	return keys
}

// levels groups the nodes by depth, the root level first.
func levels[K infra.OrderedKey, V any](root *avlNode[K, V]) [][]*avlNode[K, V] {
	if root == nil {
		return nil
	}

	res := make([][]*avlNode[K, V], 0, root.height)
	for level := []*avlNode[K, V]{root}; len(level) > 0; {
		res = append(res, level)
		next := make([]*avlNode[K, V], 0, len(level)<<1)
		for _, aux := range level {
			if aux.left != nil {
				next = append(next, aux.left)
			}
			if aux.right != nil {
				next = append(next, aux.right)
			}
		}
		level = next
	}
	return res
}
