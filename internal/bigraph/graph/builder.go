package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"spatial-bigraph/internal/bigraph/geometry"
	"spatial-bigraph/internal/bigraph/models"
	"spatial-bigraph/internal/bigraph/surface"

	"github.com/sourcegraph/conc/iter"
)

// ============================================================
// Bigraph Builder
// ============================================================

type Logger interface {
	Printf(format string, args ...any)
}

type Option func(*Builder)

func WithConvention(c surface.Convention) Option {
	return func(b *Builder) { b.convention = c }
}

func WithStrategy(s surface.Strategy) Option {
	return func(b *Builder) { b.strategy = s }
}

// WithSkipInvalid: вместо ошибки пропускать битые комнаты и устройства без кандидатов.
func WithSkipInvalid(skip bool) Option {
	return func(b *Builder) { b.skipInvalid = skip }
}

// WithParallelism ограничивает число комнат, собираемых одновременно (0: GOMAXPROCS).
func WithParallelism(n int) Option {
	return func(b *Builder) { b.parallelism = n }
}

func WithLogger(l Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

type Builder struct {
	convention  surface.Convention
	strategy    surface.Strategy
	skipInvalid bool
	parallelism int
	logger      Logger

	classifier *surface.Classifier
	resolver   *surface.Resolver
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		convention: surface.ConventionAnalyzed,
		strategy:   surface.StrategySurface,
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.classifier = surface.NewClassifier(b.convention)
	b.resolver = surface.NewResolver(b.strategy)
	return b
}

// Skipped: комната (Node == "") или устройство, не попавшее в граф.
type Skipped struct {
	Room string
	Node string
	Err  error
}

func (s Skipped) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Room   string `json:"room"`
		Node   string `json:"node,omitempty"`
		Reason string `json:"reason"`
	}{s.Room, s.Node, s.Err.Error()})
}

type Result struct {
	Graph   *Bigraph
	Skipped []Skipped
}

// фрагмент одной комнаты, собранный независимо от остальных
type fragment struct {
	room    string
	graph   *Bigraph
	skipped []Skipped
	err     error
}

// Build собирает лес по всем комнатам. Комнаты считаются параллельно,
// а склеиваются в исходном порядке одним владельцем.
func (b *Builder) Build(floor *models.Floor) (*Result, error) {
	if floor == nil {
		return nil, fmt.Errorf("%w: floor is nil", models.ErrInvalidFloor)
	}

	mapper := iter.Mapper[models.Room, *fragment]{MaxGoroutines: b.parallelism}
	fragments := mapper.Map(floor.Rooms, b.buildRoom)

	result := &Result{Graph: newBigraph()}
	for _, f := range fragments {
		if f.err == nil {
			f.err = result.Graph.disjoint(f.graph)
		}
		if f.err != nil {
			if !b.skipInvalid {
				return nil, fmt.Errorf("room %q: %w", f.room, f.err)
			}
			b.logger.Printf("[BIGRAPH] Skipping room %q: %v", f.room, f.err)
			result.Skipped = append(result.Skipped, Skipped{Room: f.room, Err: f.err})
			continue
		}

		result.Graph.merge(f.graph)
		result.Skipped = append(result.Skipped, f.skipped...)
	}

	b.logger.Printf("[BIGRAPH] Built %d rooms: %d nodes, %d edges, %d skipped",
		len(result.Graph.Roots()), result.Graph.Len(), len(result.Graph.edges), len(result.Skipped))
	return result, nil
}

func (b *Builder) buildRoom(room *models.Room) *fragment {
	f := &fragment{room: room.Name, graph: newBigraph()}
	g := f.graph

	if err := g.addNode(Node{ID: room.Name, Label: room.Name, Kind: KindRoom, Room: room.Name}); err != nil {
		f.err = err
		return f
	}

	// стены, двери, окна, затем мебель
	var objects []surface.Object
	structural := make(map[string]struct{})

	for _, group := range room.Groups() {
		for i, item := range group.Items {
			id := string(item.ID)
			if id == "" {
				id = fmt.Sprintf("%s_%d", group.Name, i)
			}

			anchor, err := geometry.ToVector(item.Anchor())
			if err != nil {
				f.err = withOwner(err, id)
				return f
			}

			node := Node{ID: id, Room: room.Name, Position: &anchor}
			if group.Structural {
				node.Kind = KindStructural
				node.Label = models.StructuralLabel(group.Name)
				structural[id] = struct{}{}
			} else {
				node.Kind = KindFurniture
				node.Label = item.Category
				if node.Label == "" {
					node.Label = group.Name
				}
			}

			if err := g.addNode(node); err != nil {
				f.err = err
				return f
			}
			g.addEdge(room.Name, id)

			objects = append(objects, surface.Object{ID: id, Anchor: anchor, Dims: item.Dimensions})
		}
	}

	surfaces := b.classifier.Classify(objects, structural)

	for i, dev := range room.Devices {
		id := string(dev.ID)
		if id == "" {
			f.err = fmt.Errorf("iot_devices[%d]: %w", i, models.ErrMissingID)
			return f
		}

		pos, err := geometry.ToVector(dev.Position)
		if err != nil {
			f.err = withOwner(err, id)
			return f
		}

		match, err := b.resolver.Resolve(pos, surfaces)
		if err != nil {
			if !errors.Is(err, models.ErrEmptyCandidateSet) {
				f.err = err
				return f
			}
			err = &models.EmptyCandidateSetError{Room: room.Name, Device: id}
			if !b.skipInvalid {
				f.err = err
				return f
			}
			b.logger.Printf("[BIGRAPH] Leaving device %q unattached: %v", id, err)
			f.skipped = append(f.skipped, Skipped{Room: room.Name, Node: id, Err: err})
			continue
		}

		node := Node{ID: id, Label: dev.Label(), Kind: KindDevice, Room: room.Name, Position: &pos}
		if err := g.addNode(node); err != nil {
			f.err = err
			return f
		}
		g.addEdge(match.OwnerID, id)
	}

	return f
}

// disjoint проверяет, что у фрагмента нет id, уже занятых в графе.
func (g *Bigraph) disjoint(other *Bigraph) error {
	for _, n := range other.nodes {
		if g.has(n.ID) {
			return &models.DuplicateNodeError{ID: n.ID}
		}
	}
	return nil
}

func (g *Bigraph) merge(other *Bigraph) {
	for _, n := range other.nodes {
		g.index[n.ID] = len(g.nodes)
		g.nodes = append(g.nodes, n)
	}
	for _, e := range other.edges {
		g.addEdge(e.From, e.To)
	}
}

func withOwner(err error, owner string) error {
	var mc *models.MissingCoordinateError
	if errors.As(err, &mc) {
		mc.Owner = owner
	}
	return err
}
