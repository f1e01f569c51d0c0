// Package background finds the color an element's text is actually drawn on.
package background

import (
	"fmt"

	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/usecase/colormodel"
)

// Default is assumed when no ancestor paints a background: the canvas is white.
const Default = "rgb(255,255,255)"

const DefaultMaxDepth = 1024

// Resolver walks up any tree shape through the two accessors.
// OwnBackground returns false when the node declares no background at all.
// Parent returns false at the root.
type Resolver[N any] struct {
	OwnBackground func(N) (string, bool)
	Parent        func(N) (N, bool)
	MaxDepth      int
}

// Resolve returns the first present, non-transparent background starting at node.
func (r Resolver[N]) Resolve(node N) (string, error) {
	maxDepth := r.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	current := node
	for depth := 0; ; depth++ {
		if depth > maxDepth {
			return "", fmt.Errorf("%w: more than %d ancestors", entity.ErrDepthExceeded, maxDepth)
		}

		if bg, ok := r.OwnBackground(current); ok && bg != "" && !colormodel.IsTransparent(bg) {
			return bg, nil
		}

		parent, ok := r.Parent(current)
		if !ok {
			return Default, nil
		}
		current = parent
	}
}

// Indexed builds a resolver over a flat slice where parents are referenced by index (-1 = root).
func Indexed(parentOf func(int) int, own func(int) (string, bool)) Resolver[int] {
	return Resolver[int]{
		OwnBackground: own,
		Parent: func(i int) (int, bool) {
			p := parentOf(i)
			return p, p >= 0
		},
	}
}
