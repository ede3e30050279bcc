package tiling

import (
	"iter"
	"log/slog"

	"github.com/eak1mov/go-hypertiles/poincare"
)

// Tile is a materialized polygon of the tiling.
type Tile struct {
	// Address is the canonical BFS path from the origin. Never modified.
	Address Address
	// Transform maps the canonical polygon onto this tile in the current frame.
	// It is rewritten by State.RecenterOn.
	Transform poincare.Mobius
	Depth     int
	// Parent is the index of the tile this one was expanded from, -1 for the origin.
	Parent    int
	Direction uint8
	// ExtraElevation is owned by consumers and ignored by the geometry.
	ExtraElevation float32
}

// Parity returns the BFS-depth parity selecting the neighbor transform set.
func (t *Tile) Parity() int {
	return t.Depth % 2
}

func (t *Tile) Center() complex128 {
	return t.Transform.Center()
}

// State owns the growing tile set. Tile indices are stable for the lifetime of
// the State; transforms change on RecenterOn.
//
// State is not safe for concurrent use.
type State struct {
	cfg    Config
	logger *slog.Logger

	coverageRounds int
	centerDistance float64
	xforms         [2][]poincare.Mobius

	tiles    []Tile
	seen     map[uint64]int // spatial key -> tile index
	frontier []int
}

type stateConfig struct {
	Logger         *slog.Logger
	CoverageRounds int
}

type Option func(*stateConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *stateConfig) { c.Logger = logger }
}

// WithCoverageRounds limits the number of ExpandNear rounds a single
// EnsureCoverage call may run.
func WithCoverageRounds(rounds int) Option {
	return func(c *stateConfig) { c.CoverageRounds = rounds }
}

const defaultCoverageRounds = 20

// New creates a State holding only the origin tile. cfg must be valid, see NewConfig.
func New(cfg Config, opts ...Option) *State {
	config := stateConfig{
		Logger:         slog.New(slog.DiscardHandler),
		CoverageRounds: defaultCoverageRounds,
	}
	for _, opt := range opts {
		opt(&config)
	}

	origin := Tile{
		Address:   Address{},
		Transform: poincare.Identity(),
		Parent:    -1,
	}

	return &State{
		cfg:            cfg,
		logger:         config.Logger,
		coverageRounds: config.CoverageRounds,
		centerDistance: cfg.CenterDistance(),
		xforms:         cfg.NeighborTransforms(),
		tiles:          []Tile{origin},
		seen:           map[uint64]int{SpatialKey(0): 0},
		frontier:       []int{0},
	}
}

func (s *State) Config() Config {
	return s.cfg
}

func (s *State) Len() int {
	return len(s.tiles)
}

// Tile returns the tile with the given index. Callers may only change ExtraElevation.
func (s *State) Tile(idx int) *Tile {
	return &s.tiles[idx]
}

// Tiles returns an iterator over all tiles in index order.
func (s *State) Tiles() iter.Seq2[int, *Tile] {
	return func(yield func(int, *Tile) bool) {
		for i := range s.tiles {
			if !yield(i, &s.tiles[i]) {
				return
			}
		}
	}
}

// Frontier returns a copy of the indices of tiles not yet expanded.
func (s *State) Frontier() []int {
	return append([]int(nil), s.frontier...)
}

// NeighborTransforms returns the neighbor table used for tiles of the given parity.
func (s *State) NeighborTransforms(parity int) []poincare.Mobius {
	return s.xforms[parity%2]
}

// CenterDistance returns the distance between centers of adjacent tiles.
func (s *State) CenterDistance() float64 {
	return s.centerDistance
}

// expandTile materializes every unseen neighbor of tile idx and queues it.
func (s *State) expandTile(idx int) {
	parent := s.tiles[idx]
	for dir, xform := range s.xforms[parent.Parity()] {
		child := parent.Transform.Compose(xform)
		key := SpatialKey(child.Center())
		if _, seen := s.seen[key]; seen {
			continue
		}
		childIdx := len(s.tiles)
		s.seen[key] = childIdx
		s.tiles = append(s.tiles, Tile{
			Address:   parent.Address.Child(uint8(dir)),
			Transform: child,
			Depth:     parent.Depth + 1,
			Parent:    idx,
			Direction: uint8(dir),
		})
		s.frontier = append(s.frontier, childIdx)
	}
}

// Expand runs steps rounds of level-synchronous BFS. Each round expands the
// whole current frontier.
func (s *State) Expand(steps int) {
	for range steps {
		if len(s.frontier) == 0 {
			break
		}
		current := s.frontier
		s.frontier = make([]int, 0, len(current)*(s.cfg.P-2))
		for _, idx := range current {
			s.expandTile(idx)
		}
	}
	s.logger.Debug("hypertiles: expand", "steps", steps, "tiles", len(s.tiles), "frontier", len(s.frontier))
}

// ExpandNear runs a single BFS round over the frontier tiles whose center lies
// within maxDist of target. The remaining frontier tiles are kept, in order,
// at the front of the frontier.
func (s *State) ExpandNear(target complex128, maxDist float64) {
	if len(s.frontier) == 0 {
		return
	}
	current := s.frontier
	s.frontier = make([]int, 0, len(current))
	deferred := make([]int, 0, len(current))
	for _, idx := range current {
		if poincare.Distance(s.tiles[idx].Center(), target) > maxDist {
			deferred = append(deferred, idx)
			continue
		}
		s.expandTile(idx)
	}
	s.frontier = append(deferred, s.frontier...)
}

func (s *State) frontierWithin(target complex128, radius float64) bool {
	for _, idx := range s.frontier {
		if poincare.Distance(s.tiles[idx].Center(), target) < radius {
			return true
		}
	}
	return false
}

// EnsureCoverage expands around target until no frontier tile lies within
// (minLayers+0.5)·D of it. It runs at most the configured number of rounds
// (see WithCoverageRounds) and reports whether the coverage was reached.
func (s *State) EnsureCoverage(target complex128, minLayers int) bool {
	radius := (float64(minLayers) + 0.5) * s.centerDistance
	for range s.coverageRounds {
		if !s.frontierWithin(target, radius) {
			return true
		}
		s.ExpandNear(target, radius)
	}
	if !s.frontierWithin(target, radius) {
		return true
	}
	s.logger.Warn("hypertiles: coverage incomplete",
		"layers", minLayers, "rounds", s.coverageRounds, "tiles", len(s.tiles))
	return false
}

// AddressTransform recomputes the transform of addr relative to the origin
// tile by replaying it through the neighbor table.
func (s *State) AddressTransform(addr Address) poincare.Mobius {
	return replayAddress(addr, s.xforms)
}

// RecenterOn makes tile idx the new local origin. Every transform is rebuilt
// from its address, which discards drift accumulated by compositions, and the
// spatial index and frontier are rebuilt to match. Indices and addresses are
// unchanged.
func (s *State) RecenterOn(idx int) {
	// Parents precede children, so a tile's replay extends its parent's replay.
	absolute := make([]poincare.Mobius, len(s.tiles))
	for i := range s.tiles {
		tile := &s.tiles[i]
		if tile.Parent < 0 {
			absolute[i] = replayAddress(tile.Address, s.xforms)
			continue
		}
		parent := &s.tiles[tile.Parent]
		absolute[i] = absolute[tile.Parent].Compose(s.xforms[parent.Parity()][tile.Direction])
	}

	inv := absolute[idx].Inverse()
	for i := range s.tiles {
		s.tiles[i].Transform = inv.Compose(absolute[i])
	}

	clear(s.seen)
	for i := range s.tiles {
		key := SpatialKey(s.tiles[i].Center())
		if other, found := s.seen[key]; found {
			s.logger.Warn("hypertiles: spatial key collision",
				"tile", FormatAddress(s.tiles[i].Address), "other", FormatAddress(s.tiles[other].Address))
		}
		s.seen[key] = i
	}

	s.frontier = s.frontier[:0]
	for i := range s.tiles {
		if s.missingNeighbor(i) {
			s.frontier = append(s.frontier, i)
		}
	}

	s.logger.Debug("hypertiles: recenter",
		"tile", idx, "address", FormatAddress(s.tiles[idx].Address),
		"tiles", len(s.tiles), "frontier", len(s.frontier))
}

func (s *State) missingNeighbor(idx int) bool {
	tile := &s.tiles[idx]
	for _, xform := range s.xforms[tile.Parity()] {
		key := SpatialKey(tile.Transform.Compose(xform).Center())
		if _, found := s.seen[key]; !found {
			return true
		}
	}
	return false
}

// FindTileNear returns the tile whose center falls in the same dedup cell as pos.
func (s *State) FindTileNear(pos complex128) (int, bool) {
	idx, found := s.seen[SpatialKey(pos)]
	return idx, found
}

// Neighbor returns the index of the tile across edge of tile idx, if materialized.
func (s *State) Neighbor(idx, edge int) (int, bool) {
	tile := &s.tiles[idx]
	xform := s.xforms[tile.Parity()][edge]
	return s.FindTileNear(tile.Transform.Compose(xform).Center())
}

// NeighborAddress returns the canonical address of the tile across edge of tile idx.
func (s *State) NeighborAddress(idx, edge int) (Address, bool) {
	neighbor, found := s.Neighbor(idx, edge)
	if !found {
		return nil, false
	}
	return s.tiles[neighbor].Address, true
}

// Placement is a tile as seen through a view transform.
type Placement struct {
	Index          int
	Transform      poincare.Mobius
	Depth          int
	ExtraElevation float32
}

// Placements returns view∘Transform for every tile whose viewed center lies
// within maxDist of the origin. maxDist <= 0 selects all tiles.
func (s *State) Placements(view poincare.Mobius, maxDist float64) []Placement {
	result := make([]Placement, 0, len(s.tiles))
	for i := range s.tiles {
		tile := &s.tiles[i]
		xform := view.Compose(tile.Transform)
		if maxDist > 0 && poincare.Distance(0, xform.Center()) > maxDist {
			continue
		}
		result = append(result, Placement{
			Index:          i,
			Transform:      xform,
			Depth:          tile.Depth,
			ExtraElevation: tile.ExtraElevation,
		})
	}
	return result
}
