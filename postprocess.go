package assimp

// PostProcessSteps is a bitmask of post-processing steps applied by the
// native importer after reading an asset.
type PostProcessSteps uint32

const (
	PostProcessCalcTangentSpace         PostProcessSteps = 1 << 0
	PostProcessJoinIdenticalVertices    PostProcessSteps = 1 << 1
	PostProcessMakeLeftHanded           PostProcessSteps = 1 << 2
	PostProcessTriangulate              PostProcessSteps = 1 << 3
	PostProcessRemoveComponent          PostProcessSteps = 1 << 4
	PostProcessGenNormals               PostProcessSteps = 1 << 5
	PostProcessGenSmoothNormals         PostProcessSteps = 1 << 6
	PostProcessSplitLargeMeshes         PostProcessSteps = 1 << 7
	PostProcessPreTransformVertices     PostProcessSteps = 1 << 8
	PostProcessLimitBoneWeights         PostProcessSteps = 1 << 9
	PostProcessValidateDataStructure    PostProcessSteps = 1 << 10
	PostProcessImproveCacheLocality     PostProcessSteps = 1 << 11
	PostProcessRemoveRedundantMaterials PostProcessSteps = 1 << 12
	PostProcessFixInfacingNormals       PostProcessSteps = 1 << 13
	PostProcessPopulateArmatureData     PostProcessSteps = 1 << 14
	PostProcessSortByPType              PostProcessSteps = 1 << 15
	PostProcessFindDegenerates          PostProcessSteps = 1 << 16
	PostProcessFindInvalidData          PostProcessSteps = 1 << 17
	PostProcessGenUVCoords              PostProcessSteps = 1 << 18
	PostProcessTransformUVCoords        PostProcessSteps = 1 << 19
	PostProcessFindInstances            PostProcessSteps = 1 << 20
	PostProcessOptimizeMeshes           PostProcessSteps = 1 << 21
	PostProcessOptimizeGraph            PostProcessSteps = 1 << 22
	PostProcessFlipUVs                  PostProcessSteps = 1 << 23
	PostProcessFlipWindingOrder         PostProcessSteps = 1 << 24
	PostProcessSplitByBoneCount         PostProcessSteps = 1 << 25
	PostProcessDebone                   PostProcessSteps = 1 << 26
	PostProcessGlobalScale              PostProcessSteps = 1 << 27
	PostProcessEmbedTextures            PostProcessSteps = 1 << 28
	PostProcessForceGenNormals          PostProcessSteps = 1 << 29
	PostProcessDropNormals              PostProcessSteps = 1 << 30
	PostProcessGenBoundingBoxes         PostProcessSteps = 1 << 31
)

// Common presets matching the native convenience macros.
const (
	PostProcessConvertToLeftHanded = PostProcessMakeLeftHanded |
		PostProcessFlipUVs |
		PostProcessFlipWindingOrder

	PostProcessTargetRealtimeFast = PostProcessCalcTangentSpace |
		PostProcessGenNormals |
		PostProcessJoinIdenticalVertices |
		PostProcessTriangulate |
		PostProcessGenUVCoords |
		PostProcessSortByPType

	PostProcessTargetRealtimeQuality = PostProcessCalcTangentSpace |
		PostProcessGenSmoothNormals |
		PostProcessJoinIdenticalVertices |
		PostProcessImproveCacheLocality |
		PostProcessLimitBoneWeights |
		PostProcessRemoveRedundantMaterials |
		PostProcessSplitLargeMeshes |
		PostProcessTriangulate |
		PostProcessGenUVCoords |
		PostProcessSortByPType |
		PostProcessFindDegenerates |
		PostProcessFindInvalidData

	PostProcessTargetRealtimeMaxQuality = PostProcessTargetRealtimeQuality |
		PostProcessFindInstances |
		PostProcessValidateDataStructure |
		PostProcessOptimizeMeshes
)
