package world

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/lexcosmos/internal/assets"
	"github.com/Faultbox/lexcosmos/internal/layout"
	"github.com/Faultbox/lexcosmos/internal/proximity"
	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

const (
	planetRadius     = 2
	planetSpin       = 0.5
	labelHeight      = 5
	titleHeight      = 3.5
	labelSize        = 0.8
	titleSize        = 0.4
	keywordSize      = 0.3
	sectionLabelRise = 20
	sectionLabelSize = 2
	sectionLightSize = 50
	sectionSpin      = 0.1
)

var (
	labelColor    = hex("#00ff88")
	titleColor    = hex("#aaaaaa")
	keywordColor  = hex("#ffaa00")
	sectionColor  = hex("#00ffff")
	chapterColor  = hex("#ffffff")
	fragmentColor = hex("#00ff88")
)

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ArticleNode is an article planet with its labels and keyword
// satellites. The planet appears once its surface material has loaded;
// labels and satellites are live from the start.
type ArticleNode struct {
	Placement  layout.ArticlePlacement
	Planet     *scene.Node
	Label      *scene.Node
	Title      *scene.Node
	Keywords   []*scene.Node
	Satellites []layout.Satellite

	sc       scene.Scene
	viewer   proximity.Positioner
	material *assets.Slot[*assets.Material]
}

// NewArticleNode creates the article's nodes and requests its surface.
func NewArticleNode(sc scene.Scene, viewer proximity.Positioner, loader assets.Requester, texture string, p layout.ArticlePlacement) *ArticleNode {
	a := &ArticleNode{
		Placement:  p,
		Satellites: append([]layout.Satellite(nil), p.Satellites...),
		sc:         sc,
		viewer:     viewer,
		material:   assets.NewSlot[*assets.Material](),
	}

	a.Planet = scene.NewNode(scene.KindMesh, "planet "+p.Article.Label)
	a.Planet.Position = p.Position
	a.Planet.Size = planetRadius

	a.Label = textNode(p.Article.Label, p.Position.Add(math.Vec3{Y: labelHeight}), labelSize, labelColor)
	sc.Add(a.Label)

	if sub := p.Article.Subtitle(); sub != "" {
		a.Title = textNode(sub, p.Position.Add(math.Vec3{Y: titleHeight}), titleSize, titleColor)
		sc.Add(a.Title)
	}

	for _, s := range a.Satellites {
		n := textNode(s.Keyword, s.Position(p.Position), keywordSize, keywordColor)
		sc.Add(n)
		a.Keywords = append(a.Keywords, n)
	}

	assets.Request(loader, texture, a.material, assets.DecodeMaterial, a.onMaterial)
	return a
}

func textNode(text string, pos math.Vec3, size float32, color colorful.Color) *scene.Node {
	n := scene.NewNode(scene.KindText, text)
	n.Text = text
	n.Position = pos
	n.Size = size
	n.Color = color
	return n
}

func (a *ArticleNode) onMaterial(m *assets.Material) {
	a.Planet.Color = m.Color
	if m.EmissiveLevel > 0 {
		a.Planet.Intensity = m.EmissiveLevel
	}
	a.sc.Add(a.Planet)
}

// Name labels the entity in diagnostics.
func (a *ArticleNode) Name() string {
	return "article " + a.Placement.Article.Label
}

// Position is where the article sits.
func (a *ArticleNode) Position() math.Vec3 {
	return a.Placement.Position
}

// Ready reports whether the planet surface has loaded.
func (a *ArticleNode) Ready() bool {
	_, ok := a.material.Get()
	return ok
}

// MaterialState returns the load state of the planet surface.
func (a *ArticleNode) MaterialState() assets.State {
	return a.material.State()
}

// Content is what the article reveals on approach.
func (a *ArticleNode) Content() proximity.Content {
	art := a.Placement.Article
	return proximity.NewContent(art.Title, art.Label, art.Content)
}

// Update spins the planet, turns the labels to the viewer and moves the
// keyword satellites along their orbits.
func (a *ArticleNode) Update(dt float64) error {
	d := float32(dt)
	if a.Ready() {
		a.Planet.Rotation.Y += planetSpin * d
	}

	eye := a.viewer.Position()
	a.Label.FaceToward(eye)
	if a.Title != nil {
		a.Title.FaceToward(eye)
	}
	for i := range a.Satellites {
		a.Satellites[i].Advance(d)
		n := a.Keywords[i]
		n.Position = a.Satellites[i].Position(a.Placement.Position)
		n.FaceToward(eye)
	}
	return nil
}

// Detach removes the article's nodes and drops a pending surface load.
func (a *ArticleNode) Detach() {
	a.material.Detach()
	a.sc.Remove(a.Planet)
	a.sc.Remove(a.Label)
	if a.Title != nil {
		a.sc.Remove(a.Title)
	}
	for _, n := range a.Keywords {
		a.sc.Remove(n)
	}
}

// SectionGroup is a section's floating title with its light.
type SectionGroup struct {
	Placement layout.SectionPlacement
	Label     *scene.Node
	Light     *scene.Node
	Articles  []*ArticleNode

	sc scene.Scene
}

// NewSectionGroup creates the section title above the section center.
// Articles are attached by the caller.
func NewSectionGroup(sc scene.Scene, p layout.SectionPlacement) *SectionGroup {
	pos := p.Position.Add(math.Vec3{Y: sectionLabelRise})

	label := textNode(p.Section.Text, pos, sectionLabelSize, sectionColor)
	label.Intensity = 0.8
	sc.Add(label)

	light := scene.NewNode(scene.KindLight, "section light")
	light.Position = pos
	light.Color = sectionColor
	light.Intensity = 2
	light.Size = sectionLightSize
	sc.Add(light)

	return &SectionGroup{Placement: p, Label: label, Light: light, sc: sc}
}

// Name labels the entity in diagnostics.
func (s *SectionGroup) Name() string {
	return "section " + s.Placement.Section.Label
}

// Position is the section center.
func (s *SectionGroup) Position() math.Vec3 {
	return s.Placement.Position
}

func (s *SectionGroup) Update(dt float64) error {
	s.Label.Rotation.Y += sectionSpin * float32(dt)
	return nil
}

func (s *SectionGroup) Detach() {
	s.sc.Remove(s.Label)
	s.sc.Remove(s.Light)
}

// ChapterLabel is the chapter title turning at the origin.
type ChapterLabel struct {
	Node *scene.Node
	sc   scene.Scene
}

// NewChapterLabel shows text at pos.
func NewChapterLabel(sc scene.Scene, text string, pos math.Vec3) *ChapterLabel {
	n := textNode(text, pos, sectionLabelSize, chapterColor)
	sc.Add(n)
	return &ChapterLabel{Node: n, sc: sc}
}

func (c *ChapterLabel) Update(dt float64) error {
	c.Node.Rotation.Y += sectionSpin * float32(dt)
	return nil
}

func (c *ChapterLabel) Detach() {
	c.sc.Remove(c.Node)
}
