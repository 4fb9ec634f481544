package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/meshforge/assimp-go/native"
	"github.com/meshforge/assimp-go/scene"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type section struct {
	name    string
	content string
}

type inspectModel struct {
	title    string
	sections []section
	selected int
	viewport viewport.Model
	ready    bool
}

func newInspectModel(s *scene.Scene, title string) *inspectModel {
	return &inspectModel{
		title:    title,
		sections: buildSections(s),
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.viewport.SetContent(m.sections[m.selected].content)
				m.viewport.GotoTop()
			}
			return m, nil

		case "down", "j":
			if m.selected < len(m.sections)-1 {
				m.selected++
				m.viewport.SetContent(m.sections[m.selected].content)
				m.viewport.GotoTop()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		headerHeight := len(m.sections) + 4
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.viewport.SetContent(m.sections[m.selected].content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *inspectModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Scene Inspector"))
	b.WriteString(" ")
	b.WriteString(m.title)
	b.WriteString("\n\n")

	for i, s := range m.sections {
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + s.name))
		} else {
			b.WriteString("  " + sectionStyle.Render(s.name))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ section • pgup/pgdn scroll • q quit"))
	return b.String()
}

func buildSections(s *scene.Scene) []section {
	return []section{
		{"Overview", overviewContent(s)},
		{"Nodes", nodesContent(s)},
		{"Meshes", meshesContent(s)},
		{"Materials", materialsContent(s)},
		{"Animations", animationsContent(s)},
		{"Environment", environmentContent(s)},
		{"Metadata", metadataContent(s.Metadata)},
	}
}

func overviewContent(s *scene.Scene) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Flags: %#x\n", s.Flags)
	fmt.Fprintf(&b, "Complete: %v\n\n", s.IsComplete())
	fmt.Fprintf(&b, "Meshes:     %d\n", len(s.Meshes))
	fmt.Fprintf(&b, "Materials:  %d\n", len(s.Materials))
	fmt.Fprintf(&b, "Animations: %d\n", len(s.Animations))
	fmt.Fprintf(&b, "Textures:   %d\n", len(s.Textures))
	fmt.Fprintf(&b, "Lights:     %d\n", len(s.Lights))
	fmt.Fprintf(&b, "Cameras:    %d\n", len(s.Cameras))
	return b.String()
}

func nodesContent(s *scene.Scene) string {
	if s.RootNode == nil {
		return "No node hierarchy."
	}
	var b strings.Builder
	var walk func(n *scene.Node, depth int)
	walk = func(n *scene.Node, depth int) {
		name := n.Name
		if name == "" {
			name = "(unnamed)"
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(name)
		if len(n.MeshIndices) > 0 {
			b.WriteString(dimStyle.Render(fmt.Sprintf(" meshes=%v", n.MeshIndices)))
		}
		if !n.Transformation.IsIdentity(1e-6) {
			b.WriteString(dimStyle.Render(" [transformed]"))
		}
		b.WriteString("\n")
		for _, c := range n.Children {
			if c != nil {
				walk(c, depth+1)
			}
		}
	}
	walk(s.RootNode, 0)
	return b.String()
}

func meshesContent(s *scene.Scene) string {
	if len(s.Meshes) == 0 {
		return "No meshes."
	}
	var b strings.Builder
	for i, m := range s.Meshes {
		fmt.Fprintf(&b, "[%d] %s\n", i, m.Name)
		fmt.Fprintf(&b, "    vertices %d, faces %d, material %d\n", len(m.Vertices), len(m.Faces), m.MaterialIndex)
		channels := []string{}
		if len(m.Normals) > 0 {
			channels = append(channels, "normals")
		}
		if len(m.Tangents) > 0 {
			channels = append(channels, "tangents")
		}
		for c := 0; c < native.MaxTexCoords; c++ {
			if len(m.TextureCoords[c]) > 0 {
				channels = append(channels, fmt.Sprintf("uv%d", c))
			}
		}
		for c := 0; c < native.MaxColorSets; c++ {
			if len(m.Colors[c]) > 0 {
				channels = append(channels, fmt.Sprintf("color%d", c))
			}
		}
		if len(channels) > 0 {
			fmt.Fprintf(&b, "    channels: %s\n", strings.Join(channels, ", "))
		}
		if len(m.Bones) > 0 {
			fmt.Fprintf(&b, "    bones: %d\n", len(m.Bones))
		}
		if len(m.AnimMeshes) > 0 {
			fmt.Fprintf(&b, "    morph targets: %d\n", len(m.AnimMeshes))
		}
	}
	return b.String()
}

func materialsContent(s *scene.Scene) string {
	if len(s.Materials) == 0 {
		return "No materials."
	}
	var b strings.Builder
	for i, m := range s.Materials {
		name := m.Name()
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(&b, "[%d] %s\n", i, name)
		for _, p := range m.Properties {
			if p == nil {
				continue
			}
			fmt.Fprintf(&b, "    %-20s %s\n", p.Key, dimStyle.Render(propertyValue(p)))
		}
	}
	return b.String()
}

func propertyValue(p *scene.MaterialProperty) string {
	switch p.Type {
	case native.PropertyTypeString:
		if v, err := p.AsString(); err == nil {
			return fmt.Sprintf("%q", v)
		}
	case native.PropertyTypeFloat:
		if c, err := p.AsColor(); err == nil {
			return fmt.Sprintf("(%.2f, %.2f, %.2f, %.2f)", c.R, c.G, c.B, c.A)
		}
		if v, err := p.AsFloat(); err == nil {
			return fmt.Sprintf("%.3f", v)
		}
	case native.PropertyTypeInteger:
		if v, err := p.AsInteger(); err == nil {
			return fmt.Sprintf("%d", v)
		}
	}
	return fmt.Sprintf("%d bytes", len(p.Data))
}

func animationsContent(s *scene.Scene) string {
	if len(s.Animations) == 0 {
		return "No animations."
	}
	var b strings.Builder
	for i, a := range s.Animations {
		fmt.Fprintf(&b, "[%d] %s: %.1f ticks at %.1f/s\n", i, a.Name, a.Duration, a.TicksPerSecond)
		for _, c := range a.NodeChannels {
			fmt.Fprintf(&b, "    node %s: %d pos, %d rot, %d scale keys\n",
				c.NodeName, len(c.PositionKeys), len(c.RotationKeys), len(c.ScalingKeys))
		}
		for _, c := range a.MeshChannels {
			fmt.Fprintf(&b, "    mesh %s: %d keys\n", c.Name, len(c.Keys))
		}
		for _, c := range a.MorphChannels {
			fmt.Fprintf(&b, "    morph %s: %d keys\n", c.Name, len(c.Keys))
		}
	}
	return b.String()
}

func environmentContent(s *scene.Scene) string {
	var b strings.Builder
	for _, l := range s.Lights {
		fmt.Fprintf(&b, "light %s: type %d at (%.1f, %.1f, %.1f)\n",
			l.Name, l.Type, l.Position.X, l.Position.Y, l.Position.Z)
	}
	for _, c := range s.Cameras {
		fmt.Fprintf(&b, "camera %s: fov %.2f, near %.2f, far %.2f\n",
			c.Name, c.HorizontalFOV, c.ClipPlaneNear, c.ClipPlaneFar)
	}
	for _, t := range s.Textures {
		kind := fmt.Sprintf("%dx%d texels", t.Width, t.Height)
		if t.IsCompressed() {
			kind = fmt.Sprintf("%d byte %s blob", len(t.Blob), t.FormatHint)
		}
		fmt.Fprintf(&b, "texture %s: %s\n", t.Filename, kind)
	}
	if b.Len() == 0 {
		return "No lights, cameras, or embedded textures."
	}
	return b.String()
}

func metadataContent(meta scene.Metadata) string {
	if len(meta) == 0 {
		return "No metadata."
	}
	var b strings.Builder
	for k, v := range meta {
		fmt.Fprintf(&b, "%-20s %v\n", k, v.Data)
	}
	return b.String()
}

func runInteractive(s *scene.Scene, title string) error {
	p := tea.NewProgram(newInspectModel(s, title), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
