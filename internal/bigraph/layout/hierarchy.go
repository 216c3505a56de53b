package layout

// ============================================================
// Hierarchy layout
// ============================================================

// Tree: все, что нужно раскладке от графа.
type Tree interface {
	Roots() []string
	Children(id string) []string
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Options struct {
	Width   float64
	VertGap float64
}

func DefaultOptions() Options {
	return Options{Width: 1.0, VertGap: 0.2}
}

type frame struct {
	id    string
	width float64
	x     float64
	y     float64
}

// Hierarchy раскладывает лес сверху вниз: корни делят общую ширину поровну,
// дети делят ширину родителя поровну и стоят на VertGap ниже.
func Hierarchy(tree Tree, opts Options) map[string]Position {
	roots := tree.Roots()
	positions := make(map[string]Position)
	if len(roots) == 0 {
		return positions
	}

	chunk := opts.Width / float64(len(roots))
	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{id: roots[i], width: chunk, x: (float64(i) + 0.5) * chunk, y: 0})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := positions[top.id]; seen {
			continue
		}
		positions[top.id] = Position{X: top.x, Y: top.y}

		children := tree.Children(top.id)
		if len(children) == 0 {
			continue
		}
		dx := top.width / float64(len(children))
		left := top.x - top.width/2
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				id:    children[i],
				width: dx,
				x:     left + dx*(float64(i)+0.5),
				y:     top.y - opts.VertGap,
			})
		}
	}

	return positions
}
