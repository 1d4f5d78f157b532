package rbt

// RedBlackTree is a BinarySearchTree that restores the red-black invariants
// after every insertion:
//   - every node is red or black and the root is black,
//   - no red node has a red child,
//   - every path from the root to an empty child slot holds the same number
//     of black nodes.
//
// Removal of single values is not supported.
type RedBlackTree[T any] struct {
	BinarySearchTree[T]
}

// NewRedBlackTree returns an empty tree ordered by compare.
func NewRedBlackTree[T any](compare CompareFunc[T]) *RedBlackTree[T] {
	return &RedBlackTree[T]{BinarySearchTree[T]{compare: compare}}
}

// Insert adds data and rebalances. It reports false, without touching the
// tree, when an equal value is already stored.
func (t *RedBlackTree[T]) Insert(data T) (bool, error) {
	if isNil(data) {
		return false, ErrNullValue
	}

	newNode := &node[T]{data: data, color: red}
	if !t.insertRaw(newNode) {
		return false, nil
	}
	t.fixup(newNode)
	return true, nil
}

// fixup walks up from a freshly attached red node repairing red-red edges.
//
// Throughout: N = node, P = parent, G = grandparent, U = uncle.
func (t *RedBlackTree[T]) fixup(n *node[T]) {
	for n != t.root && n.up.color == red {
		parent := n.up
		grandparent := parent.up
		if grandparent == nil {
			break
		}

		uncle := grandparent.down[left]
		if parent == uncle {
			uncle = grandparent.down[right]
		}

		if isRed(uncle) {
			// push the blackness of G down one level, the violation may
			// reappear between G and its parent
			parent.color = black
			uncle.color = black
			grandparent.color = red
			n = grandparent
			continue
		}

		if n.isRightChild() == parent.isRightChild() {
			// N, P on the same side of G: one rotation lifts P above G
			t.mustRotate(parent, grandparent)
			parent.color = black
		} else {
			// zig-zag: lift N above P, then above G
			t.mustRotate(n, parent)
			t.mustRotate(n, grandparent)
			n.color = black
		}
		grandparent.color = red
		break
	}
	t.root.color = black
}

func (t *RedBlackTree[T]) mustRotate(child, parent *node[T]) {
	if err := t.rotate(child, parent); err != nil {
		panic(err)
	}
}

func isRed[T any](n *node[T]) bool {
	return n != nil && n.color == red
}
