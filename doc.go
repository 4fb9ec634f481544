// Package assimp is a Go binding for the Assimp asset import library.
//
// It loads the native shared library at runtime and converts between its
// C scene graph and a managed Go model, in both directions.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	assimp/              Root package with the Context facade and post-process flags
//	├── libassimp/       Runtime loading and flat C API of the native library
//	├── scene/           Managed asset model and its native conversions
//	├── native/          Bit-exact mirrors of the Assimp C structs
//	├── marshal/         Generic array and pointer marshaling engine
//	├── mem/             Aligned allocator, raw struct IO, and pin table
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Import a model with common post-processing:
//
//	ctx, err := assimp.NewContext()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	s, err := ctx.ImportFile("model.fbx", assimp.PostProcessTargetRealtimeQuality)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(len(s.Meshes), "meshes")
//
// The managed scene returned by ImportFile owns no native memory; the
// native copy is released before the call returns. Going the other way,
// ExportScene marshals a managed scene into native memory, hands it to
// the native exporter, and frees it afterwards.
package assimp
