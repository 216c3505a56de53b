package graph

import (
	"encoding/json"

	"spatial-bigraph/internal/bigraph/models"

	"github.com/golang/geo/r3"
)

// ============================================================
// Bigraph
// ============================================================

type NodeKind string

const (
	KindRoom       NodeKind = "room"
	KindStructural NodeKind = "structural"
	KindFurniture  NodeKind = "furniture"
	KindDevice     NodeKind = "device"
)

// Node: узел леса. Position == nil только у комнат.
type Node struct {
	ID       string
	Label    string
	Kind     NodeKind
	Room     string
	Position *r3.Vector
}

type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Bigraph: лес "комната -> объект -> устройство". После сборки не меняется.
type Bigraph struct {
	nodes    []Node
	index    map[string]int
	edges    []Edge
	parent   map[string]string
	children map[string][]string
}

func newBigraph() *Bigraph {
	return &Bigraph{
		index:    make(map[string]int),
		parent:   make(map[string]string),
		children: make(map[string][]string),
	}
}

func (g *Bigraph) addNode(n Node) error {
	if _, ok := g.index[n.ID]; ok {
		return &models.DuplicateNodeError{ID: n.ID}
	}
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	return nil
}

// addEdge вызывается только сборщиком: оба узла уже есть, у to еще нет родителя.
func (g *Bigraph) addEdge(from, to string) {
	g.edges = append(g.edges, Edge{From: from, To: to})
	g.parent[to] = from
	g.children[from] = append(g.children[from], to)
}

func (g *Bigraph) has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Len: число узлов.
func (g *Bigraph) Len() int {
	return len(g.nodes)
}

// Nodes возвращает копию узлов в порядке добавления.
func (g *Bigraph) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

// Edges возвращает копию ребер в порядке добавления.
func (g *Bigraph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

func (g *Bigraph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// InDegree: 0 для комнат, 1 для остальных узлов. Для неизвестного id тоже 0.
func (g *Bigraph) InDegree(id string) int {
	if _, ok := g.parent[id]; ok {
		return 1
	}
	return 0
}

// Roots: узлы без входящих ребер, то есть комнаты.
func (g *Bigraph) Roots() []string {
	var roots []string
	for _, n := range g.nodes {
		if g.InDegree(n.ID) == 0 {
			roots = append(roots, n.ID)
		}
	}
	return roots
}

func (g *Bigraph) Children(id string) []string {
	return append([]string(nil), g.children[id]...)
}

func (g *Bigraph) Parent(id string) (string, bool) {
	p, ok := g.parent[id]
	return p, ok
}

// ============================================================
// JSON
// ============================================================

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type nodeJSON struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Kind     NodeKind   `json:"kind"`
	Room     string     `json:"room"`
	Position *pointJSON `json:"position"`
}

type bigraphJSON struct {
	Nodes []nodeJSON `json:"nodes"`
	Edges []Edge     `json:"edges"`
	Roots []string   `json:"roots"`
}

func (g *Bigraph) MarshalJSON() ([]byte, error) {
	out := bigraphJSON{
		Nodes: make([]nodeJSON, 0, len(g.nodes)),
		Edges: g.Edges(),
		Roots: g.Roots(),
	}
	if out.Edges == nil {
		out.Edges = []Edge{}
	}
	if out.Roots == nil {
		out.Roots = []string{}
	}

	for _, n := range g.nodes {
		node := nodeJSON{ID: n.ID, Label: n.Label, Kind: n.Kind, Room: n.Room}
		if n.Position != nil {
			node.Position = &pointJSON{X: n.Position.X, Y: n.Position.Y, Z: n.Position.Z}
		}
		out.Nodes = append(out.Nodes, node)
	}

	return json.Marshal(out)
}
