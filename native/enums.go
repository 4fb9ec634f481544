package native

// MetadataType mirrors aiMetadataType and tags the payload of a metadata
// entry.
type MetadataType uint32

const (
	MetaBool    MetadataType = 0
	MetaInt32   MetadataType = 1
	MetaUint64  MetadataType = 2
	MetaFloat32 MetadataType = 3
	MetaFloat64 MetadataType = 4
	MetaString  MetadataType = 5
	MetaVector3 MetadataType = 6
)

// LightSourceType mirrors aiLightSourceType.
type LightSourceType uint32

const (
	LightUndefined   LightSourceType = 0
	LightDirectional LightSourceType = 1
	LightPoint       LightSourceType = 2
	LightSpot        LightSourceType = 3
	LightAmbient     LightSourceType = 4
	LightArea        LightSourceType = 5
)

// TextureType mirrors aiTextureType, the semantic slot of a texture stack
// inside a material.
type TextureType uint32

const (
	TextureTypeNone             TextureType = 0
	TextureTypeDiffuse          TextureType = 1
	TextureTypeSpecular         TextureType = 2
	TextureTypeAmbient          TextureType = 3
	TextureTypeEmissive         TextureType = 4
	TextureTypeHeight           TextureType = 5
	TextureTypeNormal           TextureType = 6
	TextureTypeShininess        TextureType = 7
	TextureTypeOpacity          TextureType = 8
	TextureTypeDisplacement     TextureType = 9
	TextureTypeLightmap         TextureType = 10
	TextureTypeReflection       TextureType = 11
	TextureTypeBaseColor        TextureType = 12
	TextureTypeNormalCamera     TextureType = 13
	TextureTypeEmissionColor    TextureType = 14
	TextureTypeMetalness        TextureType = 15
	TextureTypeDiffuseRoughness TextureType = 16
	TextureTypeAmbientOcclusion TextureType = 17
	TextureTypeUnknown          TextureType = 18
	TextureTypeSheen            TextureType = 19
	TextureTypeClearcoat        TextureType = 20
	TextureTypeTransmission     TextureType = 21
)

// PropertyTypeInfo mirrors aiPropertyTypeInfo, the storage format of a
// material property payload.
type PropertyTypeInfo uint32

const (
	PropertyTypeFloat   PropertyTypeInfo = 1
	PropertyTypeDouble  PropertyTypeInfo = 2
	PropertyTypeString  PropertyTypeInfo = 3
	PropertyTypeInteger PropertyTypeInfo = 4
	PropertyTypeBuffer  PropertyTypeInfo = 5
)

// AnimBehaviour mirrors aiAnimBehaviour, extrapolation outside the keyed
// time range.
type AnimBehaviour uint32

const (
	AnimBehaviourDefault  AnimBehaviour = 0
	AnimBehaviourConstant AnimBehaviour = 1
	AnimBehaviourLinear   AnimBehaviour = 2
	AnimBehaviourRepeat   AnimBehaviour = 3
)

// AnimInterpolation mirrors aiAnimInterpolation, per-key interpolation.
type AnimInterpolation uint32

const (
	InterpolationStep            AnimInterpolation = 0
	InterpolationLinear          AnimInterpolation = 1
	InterpolationSphericalLinear AnimInterpolation = 2
	InterpolationCubicSpline     AnimInterpolation = 3
)

// PrimitiveType mirrors aiPrimitiveType, a bitmask of face kinds present
// in a mesh.
type PrimitiveType uint32

const (
	PrimitivePoint    PrimitiveType = 1 << 0
	PrimitiveLine     PrimitiveType = 1 << 1
	PrimitiveTriangle PrimitiveType = 1 << 2
	PrimitivePolygon  PrimitiveType = 1 << 3
)

// Scene flag bits for AiScene.Flags.
const (
	SceneFlagIncomplete        uint32 = 1 << 0
	SceneFlagValidated         uint32 = 1 << 1
	SceneFlagValidationWarning uint32 = 1 << 2
	SceneFlagNonVerboseFormat  uint32 = 1 << 3
	SceneFlagTerrain           uint32 = 1 << 4
	SceneFlagAllowShared       uint32 = 1 << 5
)

// MorphingMethod mirrors aiMorphingMethod.
type MorphingMethod uint32

const (
	MorphingUnknown     MorphingMethod = 0
	MorphingVertexBlend MorphingMethod = 1
	MorphingNormalized  MorphingMethod = 2
	MorphingRelative    MorphingMethod = 3
)

// Per-mesh channel capacities fixed by the C headers.
const (
	MaxColorSets = 8
	MaxTexCoords = 8
)

// MaxTextureHintLen is the achFormatHint capacity inside aiTexture.
const MaxTextureHintLen = 9
