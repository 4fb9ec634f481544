package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	assimp "github.com/meshforge/assimp-go"
	"github.com/meshforge/assimp-go/libassimp"
	"github.com/meshforge/assimp-go/mem"
	"github.com/meshforge/assimp-go/native"
	"github.com/meshforge/assimp-go/scene"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to an asset file to inspect")
		libPath     = flag.String("lib", "", "Path to the assimp shared library (optional)")
		post        = flag.String("post", "quality", "Post-processing preset: none, fast, quality, max")
		demo        = flag.Bool("demo", false, "Inspect a built-in demo scene (no native library needed)")
		formats     = flag.Bool("formats", false, "List export formats and exit")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *file == "" && !*demo && !*formats {
		fmt.Fprintln(os.Stderr, "Usage: inspect -file <asset> [-post none|fast|quality|max] [-lib path]")
		fmt.Fprintln(os.Stderr, "       inspect -demo  (built-in scene, no native library)")
		fmt.Fprintln(os.Stderr, "       inspect -formats")
		fmt.Fprintln(os.Stderr, "       inspect -file <asset> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		log, err := zap.NewDevelopment()
		if err == nil {
			assimp.SetLogger(log)
			libassimp.SetLogger(log)
			defer log.Sync()
		}
	}

	if err := run(*file, *libPath, *post, *demo, *formats, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, libPath, post string, demo, formats, interactive bool) error {
	if formats {
		return listFormats(libPath)
	}

	s, title, err := loadScene(file, libPath, post, demo)
	if err != nil {
		return err
	}

	if interactive && term.IsTerminal(int(os.Stdout.Fd())) {
		return runInteractive(s, title)
	}

	printSummary(s, title)
	return nil
}

func listFormats(libPath string) error {
	ctx, err := openContext(libPath)
	if err != nil {
		return err
	}
	defer ctx.Close()

	major, minor, patch := ctx.Version()
	fmt.Printf("Assimp %d.%d.%d export formats:\n", major, minor, patch)
	for _, f := range ctx.ExportFormats() {
		fmt.Printf("  %-12s .%-6s %s\n", f.ID, f.FileExtension, f.Description)
	}
	return nil
}

func openContext(libPath string) (*assimp.Context, error) {
	if libPath != "" {
		return assimp.NewContextWithLibrary(libPath)
	}
	return assimp.NewContext()
}

func postSteps(preset string) (assimp.PostProcessSteps, error) {
	switch preset {
	case "none":
		return 0, nil
	case "fast":
		return assimp.PostProcessTargetRealtimeFast, nil
	case "quality":
		return assimp.PostProcessTargetRealtimeQuality, nil
	case "max":
		return assimp.PostProcessTargetRealtimeMaxQuality, nil
	default:
		return 0, fmt.Errorf("unknown post-processing preset %q", preset)
	}
}

// loadScene produces the scene to inspect, either by importing a file
// through the native library or by round-tripping the built-in demo
// scene through native memory.
func loadScene(file, libPath, post string, demo bool) (*scene.Scene, string, error) {
	if demo {
		s := buildDemoScene()
		ptr := scene.ToNativeScene(s)
		defer scene.FreeNativeScene(ptr, true)
		out, err := scene.FromNativeScene(ptr)
		if err != nil {
			return nil, "", err
		}
		return out, "demo scene (marshal round trip)", nil
	}

	steps, err := postSteps(post)
	if err != nil {
		return nil, "", err
	}
	ctx, err := openContext(libPath)
	if err != nil {
		return nil, "", err
	}
	defer ctx.Close()

	s, err := ctx.ImportFile(file, steps)
	if err != nil {
		return nil, "", err
	}
	return s, file, nil
}

func buildDemoScene() *scene.Scene {
	s := scene.NewScene("demo")
	s.Metadata = scene.Metadata{
		"generator": {Type: native.MetaString, Data: "inspect -demo"},
		"unit":      {Type: native.MetaFloat32, Data: float32(1.0)},
	}

	mesh := &scene.Mesh{
		Name:           "triangle",
		PrimitiveTypes: native.PrimitiveTriangle,
		Vertices: []native.Vector3{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
		},
		Normals: []native.Vector3{
			{Z: 1}, {Z: 1}, {Z: 1},
		},
		Faces: []scene.Face{{Indices: []uint32{0, 1, 2}}},
	}
	s.Meshes = []*scene.Mesh{mesh}

	mat := &scene.Material{}
	mat.AddProperty(scene.NewStringProperty(scene.MatKeyName, "flat white"))
	mat.AddProperty(scene.NewColorProperty(scene.MatKeyColorDiffuse, native.Color4{R: 1, G: 1, B: 1, A: 1}))
	s.Materials = []*scene.Material{mat}

	child := scene.NewNode("triangle")
	child.MeshIndices = []uint32{0}
	s.RootNode.AddChild(child)

	s.Lights = []*scene.Light{{
		Name:         "key",
		Type:         native.LightPoint,
		Position:     native.Vector3{X: 2, Y: 2, Z: 2},
		ColorDiffuse: native.Color3{R: 1, G: 1, B: 1},
	}}
	return s
}

func printSummary(s *scene.Scene, title string) {
	fmt.Printf("Scene: %s\n", title)
	if s.Name != "" {
		fmt.Printf("Name: %s\n", s.Name)
	}
	fmt.Printf("Meshes: %d  Materials: %d  Animations: %d  Textures: %d  Lights: %d  Cameras: %d\n",
		len(s.Meshes), len(s.Materials), len(s.Animations), len(s.Textures), len(s.Lights), len(s.Cameras))

	if s.RootNode != nil {
		fmt.Printf("\nNode hierarchy:\n")
		printNode(s.RootNode, 1)
	}

	if len(s.Meshes) > 0 {
		fmt.Printf("\nMeshes:\n")
		for i, m := range s.Meshes {
			fmt.Printf("  [%d] %s: %d vertices, %d faces, %d bones, material %d\n",
				i, m.Name, len(m.Vertices), len(m.Faces), len(m.Bones), m.MaterialIndex)
		}
	}

	if len(s.Materials) > 0 {
		fmt.Printf("\nMaterials:\n")
		for i, m := range s.Materials {
			name := m.Name()
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Printf("  [%d] %s: %d properties\n", i, name, len(m.Properties))
		}
	}

	if len(s.Animations) > 0 {
		fmt.Printf("\nAnimations:\n")
		for i, a := range s.Animations {
			fmt.Printf("  [%d] %s: %.1f ticks at %.1f/s, %d node channels\n",
				i, a.Name, a.Duration, a.TicksPerSecond, len(a.NodeChannels))
		}
	}

	if len(s.Metadata) > 0 {
		fmt.Printf("\nMetadata:\n")
		for k, v := range s.Metadata {
			fmt.Printf("  %s = %v\n", k, v.Data)
		}
	}

	fmt.Printf("\nLive native blocks: %d\n", mem.AllocationCount())
}

func printNode(n *scene.Node, depth int) {
	label := n.Name
	if label == "" {
		label = "(unnamed)"
	}
	suffix := ""
	if len(n.MeshIndices) > 0 {
		suffix = fmt.Sprintf(" meshes=%v", n.MeshIndices)
	}
	fmt.Printf("%s%s%s\n", strings.Repeat("  ", depth), label, suffix)
	for _, c := range n.Children {
		if c != nil {
			printNode(c, depth+1)
		}
	}
}
