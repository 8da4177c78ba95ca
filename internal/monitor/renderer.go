package monitor

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/rileyhilliard/sysgraph/internal/graph"
)

// Renderer draws the plot area of a snapshot into width x height cells.
// Labels, legend and chrome are drawn around it by the view.
type Renderer interface {
	Name() string
	Render(snap graph.Snapshot, width, height int) string
}

// Renderer names accepted by NewRenderer.
const (
	RendererBraille  = "braille"
	RendererDrawille = "drawille"
)

// RendererNames lists the renderers in switching order.
var RendererNames = []string{RendererBraille, RendererDrawille}

// NewRenderer returns the renderer with the given name.
func NewRenderer(name string) (Renderer, error) {
	switch name {
	case RendererBraille, "":
		return brailleRenderer{}, nil
	case RendererDrawille:
		return &drawilleRenderer{}, nil
	}
	return nil, errors.New(errors.ErrRender,
		fmt.Sprintf("Unknown renderer %q", name),
		"Use one of: "+strings.Join(RendererNames, ", "))
}

// brailleRenderer draws lines positioned on the snapshot's axis bounds.
type brailleRenderer struct{}

func (brailleRenderer) Name() string { return RendererBraille }

func (brailleRenderer) Render(snap graph.Snapshot, width, height int) string {
	return RenderBrailleChart(snap.Datasets, snap.X, snap.Y, width, height)
}
