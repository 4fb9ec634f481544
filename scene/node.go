package scene

import (
	"unsafe"

	"github.com/meshforge/assimp-go/marshal"
	"github.com/meshforge/assimp-go/mem"
	"github.com/meshforge/assimp-go/native"
)

const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// Node is one element of the scene hierarchy. Parent is nil on the root;
// it is derived from containment and never marshaled as an owned value.
type Node struct {
	Name           string
	Transformation native.Matrix4x4
	Parent         *Node
	Children       []*Node
	MeshIndices    []uint32
	Metadata       Metadata
}

// NewNode returns a node with an identity transform.
func NewNode(name string) *Node {
	return &Node{Name: name, Transformation: native.Identity()}
}

// AddChild appends c and sets its parent reference.
func (n *Node) AddChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// FindNode searches the subtree rooted at n for a node by name, depth
// first, including n itself.
func (n *Node) FindNode(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if found := c.FindNode(name); found != nil {
			return found
		}
	}
	return nil
}

// GlobalTransform composes the transforms from the root down to n.
func (n *Node) GlobalTransform() native.Matrix4x4 {
	if n.Parent == nil {
		return n.Transformation
	}
	return n.Parent.GlobalTransform().Mul(n.Transformation)
}

// ToNative builds the native node destined for addr. Children are
// allocated and written here, each stamped with addr as its parent, so
// the whole subtree below n is complete in native memory when ToNative
// returns. The root's parent stays null because a fresh struct is zero.
func (n *Node) ToNative(addr uintptr) native.AiNode {
	out := native.AiNode{
		Name:           native.NewAiString(n.Name),
		Transformation: n.Transformation,
		NumChildren:    uint32(len(n.Children)),
		NumMeshes:      uint32(len(n.MeshIndices)),
		Meshes:         marshal.ToBlittableArray(n.MeshIndices),
		Metadata:       n.Metadata.toNativePtr(),
	}
	if len(n.Children) > 0 {
		slots := mem.Allocate(ptrSize * len(n.Children))
		for i, c := range n.Children {
			var childAddr uintptr
			if c != nil {
				childAddr = mem.Allocate(mem.SizeOf[native.AiNode]())
				cn := c.ToNative(childAddr)
				cn.Parent = addr
				mem.Write(childAddr, cn)
			}
			mem.Write(slots+uintptr(i*ptrSize), childAddr)
		}
		out.Children = slots
	}
	return out
}

// FromNative deep copies the subtree below nat. Go parent references are
// rebuilt from containment; the native parent addresses are meaningless
// on the managed side and are not read.
func (n *Node) FromNative(nat *native.AiNode) {
	n.Name = nat.Name.String()
	n.Transformation = nat.Transformation
	n.Parent = nil
	n.MeshIndices = marshal.FromBlittableArray[uint32](nat.Meshes, int(nat.NumMeshes))
	n.Metadata = metadataFromNativePtr(nat.Metadata)
	n.Children = marshal.FromNativeArrayOfPtrs[native.AiNode, Node](nat.Children, int(nat.NumChildren))
	for _, c := range n.Children {
		if c != nil {
			c.Parent = n
		}
	}
}

// FreeNativeNode releases the subtree at ptr: child nodes recursively,
// the mesh index array, metadata, and, when freeContainer is set, the
// node struct itself. The parent pointer is a back edge and is left
// alone.
func FreeNativeNode(ptr uintptr, freeContainer bool) {
	if ptr == 0 {
		return
	}
	n := mem.Read[native.AiNode](ptr)
	marshal.FreeNativeArrayOfPtrs(n.Children, int(n.NumChildren), FreeNativeNode)
	mem.Free(n.Meshes)
	freeNativeMetadata(n.Metadata)
	if freeContainer {
		mem.Free(ptr)
	}
}
