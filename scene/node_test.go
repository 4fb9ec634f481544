package scene

import (
	"fmt"
	"testing"

	"github.com/meshforge/assimp-go/marshal"
	"github.com/meshforge/assimp-go/mem"
	"github.com/meshforge/assimp-go/native"
)

// buildTree makes a uniform tree of the given depth and fanout with
// deterministic names.
func buildTree(name string, depth, fanout int) *Node {
	n := NewNode(name)
	if depth == 0 {
		return n
	}
	for i := 0; i < fanout; i++ {
		n.AddChild(buildTree(fmt.Sprintf("%s.%d", name, i), depth-1, fanout))
	}
	return n
}

func countNodes(n *Node) int {
	total := 1
	for _, c := range n.Children {
		if c != nil {
			total += countNodes(c)
		}
	}
	return total
}

func TestNodeGraphRoundTrip(t *testing.T) {
	before := mem.AllocationCount()

	root := buildTree("root", 3, 4) // 85 nodes
	root.MeshIndices = []uint32{0, 2, 5}
	ptr := marshal.ToNativePointer[native.AiNode](root)

	// The native root must have a null parent and every child must point
	// back at the struct that contains it.
	var checkParents func(addr uintptr, wantParent uintptr)
	checkParents = func(addr, wantParent uintptr) {
		n := mem.Read[native.AiNode](addr)
		if n.Parent != wantParent {
			t.Fatalf("node %q: parent %#x, want %#x", n.Name.String(), n.Parent, wantParent)
		}
		for i := 0; i < int(n.NumChildren); i++ {
			child := mem.Read[uintptr](n.Children + uintptr(i*ptrSize))
			checkParents(child, addr)
		}
	}
	checkParents(ptr, 0)

	got := marshal.FromNativePointer[native.AiNode, Node](ptr)
	if count := countNodes(got); count != 85 {
		t.Fatalf("node count = %d, want 85", count)
	}
	if got.Parent != nil {
		t.Error("unmarshaled root has a parent")
	}
	var checkGoParents func(n *Node)
	checkGoParents = func(n *Node) {
		for _, c := range n.Children {
			if c.Parent != n {
				t.Fatalf("node %q: Go parent not rebuilt", c.Name)
			}
			checkGoParents(c)
		}
	}
	checkGoParents(got)

	if len(got.MeshIndices) != 3 || got.MeshIndices[2] != 5 {
		t.Errorf("mesh indices = %v", got.MeshIndices)
	}
	if got.FindNode("root.2.0.3") == nil {
		t.Error("named descendant missing after round trip")
	}

	FreeNativeNode(ptr, true)
	if n := mem.AllocationCount(); n != before {
		t.Errorf("leaked %d blocks", n-before)
	}
}

func TestNodeGlobalTransform(t *testing.T) {
	root := NewNode("root")
	root.Transformation = native.Translation(native.Vector3{X: 10})
	child := NewNode("child")
	child.Transformation = native.Translation(native.Vector3{Y: 5})
	root.AddChild(child)

	got := child.GlobalTransform().TransformPosition(native.Vector3{})
	want := native.Vector3{X: 10, Y: 5}
	if got != want {
		t.Errorf("global transform moved origin to %v, want %v", got, want)
	}
}

func TestLeafNodeRoundTrip(t *testing.T) {
	before := mem.AllocationCount()

	leaf := NewNode("leaf")
	ptr := marshal.ToNativePointer[native.AiNode](leaf)
	n := mem.Read[native.AiNode](ptr)
	if n.Children != 0 || n.Meshes != 0 || n.Metadata != 0 {
		t.Error("empty members should marshal to null pointers")
	}

	got := marshal.FromNativePointer[native.AiNode, Node](ptr)
	if got.Name != "leaf" || got.Children != nil || got.MeshIndices != nil {
		t.Errorf("round trip: %+v", got)
	}

	FreeNativeNode(ptr, true)
	if mem.AllocationCount() != before {
		t.Error("leak on leaf node")
	}
}
