package scene

import (
	"github.com/meshforge/assimp-go/mem"
	"github.com/meshforge/assimp-go/native"
)

// Light is a scene light source. Name ties it to the node of the same
// name, which positions it in the hierarchy.
type Light struct {
	Name                 string
	Type                 native.LightSourceType
	Position             native.Vector3
	Direction            native.Vector3
	Up                   native.Vector3
	AttenuationConstant  float32
	AttenuationLinear    float32
	AttenuationQuadratic float32
	ColorDiffuse         native.Color3
	ColorSpecular        native.Color3
	ColorAmbient         native.Color3
	AngleInnerCone       float32
	AngleOuterCone       float32
	AreaSize             native.Vector2
}

func (l *Light) ToNative(addr uintptr) native.AiLight {
	return native.AiLight{
		Name:                 native.NewAiString(l.Name),
		Type:                 l.Type,
		Position:             l.Position,
		Direction:            l.Direction,
		Up:                   l.Up,
		AttenuationConstant:  l.AttenuationConstant,
		AttenuationLinear:    l.AttenuationLinear,
		AttenuationQuadratic: l.AttenuationQuadratic,
		ColorDiffuse:         l.ColorDiffuse,
		ColorSpecular:        l.ColorSpecular,
		ColorAmbient:         l.ColorAmbient,
		AngleInnerCone:       l.AngleInnerCone,
		AngleOuterCone:       l.AngleOuterCone,
		Size:                 l.AreaSize,
	}
}

func (l *Light) FromNative(n *native.AiLight) {
	l.Name = n.Name.String()
	l.Type = n.Type
	l.Position = n.Position
	l.Direction = n.Direction
	l.Up = n.Up
	l.AttenuationConstant = n.AttenuationConstant
	l.AttenuationLinear = n.AttenuationLinear
	l.AttenuationQuadratic = n.AttenuationQuadratic
	l.ColorDiffuse = n.ColorDiffuse
	l.ColorSpecular = n.ColorSpecular
	l.ColorAmbient = n.ColorAmbient
	l.AngleInnerCone = n.AngleInnerCone
	l.AngleOuterCone = n.AngleOuterCone
	l.AreaSize = n.Size
}

// Camera is a scene camera, positioned by the node sharing its name.
type Camera struct {
	Name              string
	Position          native.Vector3
	Up                native.Vector3
	LookAt            native.Vector3
	HorizontalFOV     float32
	ClipPlaneNear     float32
	ClipPlaneFar      float32
	Aspect            float32
	OrthographicWidth float32
}

func (c *Camera) ToNative(addr uintptr) native.AiCamera {
	return native.AiCamera{
		Name:              native.NewAiString(c.Name),
		Position:          c.Position,
		Up:                c.Up,
		LookAt:            c.LookAt,
		HorizontalFOV:     c.HorizontalFOV,
		ClipPlaneNear:     c.ClipPlaneNear,
		ClipPlaneFar:      c.ClipPlaneFar,
		Aspect:            c.Aspect,
		OrthographicWidth: c.OrthographicWidth,
	}
}

func (c *Camera) FromNative(n *native.AiCamera) {
	c.Name = n.Name.String()
	c.Position = n.Position
	c.Up = n.Up
	c.LookAt = n.LookAt
	c.HorizontalFOV = n.HorizontalFOV
	c.ClipPlaneNear = n.ClipPlaneNear
	c.ClipPlaneFar = n.ClipPlaneFar
	c.Aspect = n.Aspect
	c.OrthographicWidth = n.OrthographicWidth
}

// freeLeaf releases structs that own no child allocations. Lights and
// cameras embed everything by value.
func freeLeaf(ptr uintptr, freeContainer bool) {
	if freeContainer {
		mem.Free(ptr)
	}
}
