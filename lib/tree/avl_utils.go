package tree

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/xavl/lib/infra"
)

// avl rule validation utilities.

// Inorder traversal to validate the keys are strictly increasing in the
// configured direction.
func AVLOrderViolationValidate[K infra.OrderedKey, V any](tree AVLTree[K, V]) error {
	var aux AVLNode[K, V] = tree.Root()
	if aux == nil {
		return nil
	}

	cmp := infra.NewOrderedKeyComparator[K](tree.Desc())
	stack := make([]AVLNode[K, V], 0, aux.Height())
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.Left() {
		stack = append(stack, aux)
	}

	var prev AVLNode[K, V]
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		if prev != nil && cmp(prev.Key(), aux.Key()) >= 0 {
			return fmt.Errorf("avl order violation, key %v after %v: %w", aux.Key(), prev.Key(), ErrAVLViolation)
		}
		prev = aux
		stack = stack[:size-1]
		for aux = aux.Right(); aux != nil; aux = aux.Left() {
			stack = append(stack, aux)
		}
	}
	return nil
}

// Every node keeps |height(left) - height(right)| <= 1.
func AVLBalanceViolationValidate[K infra.OrderedKey, V any](tree AVLTree[K, V]) error {
	_, err := recomputeHeight[K, V](tree.Root(), func(node AVLNode[K, V], lh, rh uint32) error {
		if diff := int64(lh) - int64(rh); diff > 1 || diff < -1 {
			return fmt.Errorf("avl balance violation, key %v balance %d: %w", node.Key(), diff, ErrAVLViolation)
		}
		return nil
	})
	return err
}

// Every stored height equals 1 + max(height(left), height(right)).
func AVLHeightViolationValidate[K infra.OrderedKey, V any](tree AVLTree[K, V]) error {
	_, err := recomputeHeight[K, V](tree.Root(), func(node AVLNode[K, V], lh, rh uint32) error {
		if expected := 1 + max(lh, rh); node.Height() != expected {
			return fmt.Errorf("avl height violation, key %v height %d expected %d: %w",
				node.Key(), node.Height(), expected, ErrAVLViolation)
		}
		return nil
	})
	return err
}

// Postorder recursion, the check sees the recomputed child heights.
func recomputeHeight[K infra.OrderedKey, V any](
	node AVLNode[K, V],
	check func(node AVLNode[K, V], lh, rh uint32) error,
) (uint32, error) {
	if node == nil {
		return 0, nil
	}
	lh, lerr := recomputeHeight[K, V](node.Left(), check)
	if lerr != nil {
		return 0, lerr
	}
	rh, rerr := recomputeHeight[K, V](node.Right(), check)
	if rerr != nil {
		return 0, rerr
	}
	if err := check(node, lh, rh); err != nil {
		return 0, err
	}
	return 1 + max(lh, rh), nil
}

// The root has no parent and every child points back at its parent.
func AVLParentViolationValidate[K infra.OrderedKey, V any](tree AVLTree[K, V]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	if root.Parent() != nil {
		return fmt.Errorf("avl parent violation, root %v has a parent: %w", root.Key(), ErrAVLViolation)
	}

	queue := []AVLNode[K, V]{root}
	for len(queue) > 0 {
		aux := queue[0]
		queue = queue[1:]
		for _, child := range []AVLNode[K, V]{aux.Left(), aux.Right()} {
			if child == nil {
				continue
			}
			if child.Parent() != aux {
				return fmt.Errorf("avl parent violation, key %v is not linked back to %v: %w",
					child.Key(), aux.Key(), ErrAVLViolation)
			}
			queue = append(queue, child)
		}
	}
	return nil
}

// Len equals the number of reachable nodes.
func AVLSizeViolationValidate[K infra.OrderedKey, V any](tree AVLTree[K, V]) error {
	count := int64(0)
	queue := make([]AVLNode[K, V], 0, 8)
	if root := tree.Root(); root != nil {
		queue = append(queue, root)
	}
	for len(queue) > 0 {
		aux := queue[0]
		queue = queue[1:]
		count++
		if l := aux.Left(); l != nil {
			queue = append(queue, l)
		}
		if r := aux.Right(); r != nil {
			queue = append(queue, r)
		}
	}
	if count != tree.Len() {
		return fmt.Errorf("avl size violation, len %d reachable %d: %w", tree.Len(), count, ErrAVLViolation)
	}
	return nil
}

// AVLValidate reports every violated rule at once.
func AVLValidate[K infra.OrderedKey, V any](tree AVLTree[K, V]) error {
	return multierr.Combine(
		AVLOrderViolationValidate[K, V](tree),
		AVLBalanceViolationValidate[K, V](tree),
		AVLHeightViolationValidate[K, V](tree),
		AVLParentViolationValidate[K, V](tree),
		AVLSizeViolationValidate[K, V](tree),
	)
}
