package tree

import (
	"fmt"
	"io"

	"go.uber.org/multierr"

	"github.com/benz9527/xavl/lib/infra"
)

/*
Print renders the right subtree above and the left subtree below a node.

	       /------+ 4 ^3 h=1 b=+0
	|------+ 3 ^<nil> h=2 b=+0
	       \------+ 2 ^3 h=1 b=+0

It returns the height of the tree and every write error.
*/
func (tree *avlTree[K, V]) Print(w io.Writer, printVal bool) (int, error) {
	var err error
	height := printAVLNode(w, tree.root, "", Root, printVal, &err)
	return height, err
}

func printAVLNode[K infra.OrderedKey, V any](
	w io.Writer,
	node *avlNode[K, V],
	prefix string,
	dir AVLDirection,
	printVal bool,
	err *error,
) int {
	if node == nil {
		return 0
	}

	rh, lh := 0, 0
	if node.right != nil {
		t := "       "
		if dir == Left {
			t = "|      "
		}
		rh = printAVLNode(w, node.right, prefix+t, Right, printVal, err)
	}

	var edge string
	switch dir {
	case Root:
		edge = "|------+ "
	case Left:
		edge = "\\------+ "
	case Right:
		edge = "/------+ "
	default:
	}
	parent := any(nil)
	if node.parent != nil {
		parent = node.parent.key
	}
	var werr error
	if printVal {
		_, werr = fmt.Fprintf(w, "%s%s%v → %v ^%v h=%d b=%+d\n",
			prefix, edge, node.key, node.val, parent, node.height, node.BalanceFactor())
	} else {
		_, werr = fmt.Fprintf(w, "%s%s%v ^%v h=%d b=%+d\n",
			prefix, edge, node.key, parent, node.height, node.BalanceFactor())
	}
	*err = multierr.Append(*err, werr)

	if node.left != nil {
		t := "       "
		if dir == Right {
			t = "|      "
		}
		lh = printAVLNode(w, node.left, prefix+t, Left, printVal, err)
	}
	return 1 + max(rh, lh)
}
