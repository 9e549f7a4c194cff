// File: visitor/visitor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Parent-tracking tree traversal.
// Walking a tree records each item's parent and, for addressable items, an
// address-to-item index, so later lookups ("what encloses this node", "what
// sits at this address") are O(1) map hits instead of re-traversals.

package visitor

// Item is a node in a host-provided tree. Implementations must be
// comparable, pointer nodes in practice, since items serve as map keys.
type Item interface {
	Children() []Item
}

// Addressable is an Item tied to an address in the host's space.
type Addressable interface {
	Item
	Addr() uint64
}

// ParentTracker indexes a tree by parent links and addresses. The zero
// value is ready; Walk may be called again to reindex another tree into
// the same maps.
type ParentTracker struct {
	parent map[Item]Item
	byAddr map[uint64]Item
}

// Walk traverses the tree under root depth-first, recording parent links
// and address mappings. The root itself has no parent.
func (t *ParentTracker) Walk(root Item) {
	if t.parent == nil {
		t.parent = make(map[Item]Item)
		t.byAddr = make(map[uint64]Item)
	}
	if root == nil {
		return
	}
	t.index(root)
	t.walk(root)
}

func (t *ParentTracker) walk(item Item) {
	for _, child := range item.Children() {
		if child == nil {
			continue
		}
		t.parent[child] = item
		t.index(child)
		t.walk(child)
	}
}

func (t *ParentTracker) index(item Item) {
	if a, ok := item.(Addressable); ok {
		t.byAddr[a.Addr()] = item
	}
}

// Parent returns the recorded parent of item, nil for the root or for
// items outside any walked tree.
func (t *ParentTracker) Parent(item Item) Item {
	return t.parent[item]
}

// ItemAt returns the item recorded at addr, nil if none.
func (t *ParentTracker) ItemAt(addr uint64) Item {
	return t.byAddr[addr]
}

// PathToRoot returns item followed by its ancestors up to the root.
func (t *ParentTracker) PathToRoot(item Item) []Item {
	var path []Item
	for item != nil {
		path = append(path, item)
		item = t.parent[item]
	}
	return path
}
