package native

// AiLight mirrors aiLight. Fully blittable.
type AiLight struct {
	Name                 AiString
	Type                 LightSourceType
	Position             Vector3
	Direction            Vector3
	Up                   Vector3
	AttenuationConstant  float32
	AttenuationLinear    float32
	AttenuationQuadratic float32
	ColorDiffuse         Color3
	ColorSpecular        Color3
	ColorAmbient         Color3
	AngleInnerCone       float32
	AngleOuterCone       float32
	Size                 Vector2 // area light extent
}

// AiCamera mirrors aiCamera. Fully blittable.
type AiCamera struct {
	Name              AiString
	Position          Vector3
	Up                Vector3
	LookAt            Vector3
	HorizontalFOV     float32
	ClipPlaneNear     float32
	ClipPlaneFar      float32
	Aspect            float32
	OrthographicWidth float32
}
