// Package sim orchestrates the physics engine, the cell arena, and the
// genome rank into the simulation's single blocking Update() call, per
// spec.md §4.6. Grounded in
// original_source/vlife-simulator/src/simulator.rs, expanded with the
// death/division/rank reconciliation the stripped-down reference revision
// had not yet implemented.
package sim

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vlife-go/vlife/cell"
	"github.com/vlife-go/vlife/config"
	"github.com/vlife-go/vlife/genome"
	"github.com/vlife-go/vlife/objectset"
	"github.com/vlife-go/vlife/physics"
	"github.com/vlife-go/vlife/vmath"
)

var log = slog.Default().With("component", "sim")

// Simulator owns the physics engine, the cell arena and the genome rank,
// and advances them one fixed tick at a time. It is single-threaded and
// synchronous: Update is a blocking, deterministic function of its prior
// state, per spec.md §5.
type Simulator struct {
	RunID uuid.UUID

	cfg       config.Config
	worldSize vmath.Vector2
	time      float32

	engine *physics.Engine
	cells  *objectset.Set[cell.Cell]
	rank   *genome.Rank

	rng *rand.Rand
}

// New constructs a Simulator bounded to [0, worldSize] with cfg
// defaulted from config.Default and overridden by opts.
func New(worldSize vmath.Vector2, opts ...Option) *Simulator {
	s := &Simulator{
		RunID:     uuid.New(),
		cfg:       config.Default(),
		worldSize: worldSize,
		cells:     objectset.New[cell.Cell](),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rank = genome.NewRank(s.cfg.RankSize)
	s.engine = physics.NewEngine(vmath.Vector2{}, worldSize, physics.EngineConfig{
		Gravity:     s.cfg.Gravity,
		Drag:        s.cfg.Drag,
		Restitution: s.cfg.Restitution,
		Friction:    s.cfg.Friction,
	})
	log.Info("simulator constructed", "run_id", s.RunID, "world", worldSize, "min_cells", s.cfg.MinCells)
	return s
}

// StepTime returns the fixed wall-clock duration advanced by each Update.
func (s *Simulator) StepTime() float32 {
	return s.cfg.StepTime
}

// Time returns the total simulated time elapsed so far.
func (s *Simulator) Time() float32 {
	return s.time
}

// CreateRandomCell builds and inserts a freshly randomized cell at a
// random position within the world, and returns its handle.
func (s *Simulator) CreateRandomCell() cell.Handle {
	c := cell.NewRandom(s.cfg, s.rng)
	return s.spawn(c, s.randomPosition(c), vmath.Vector2{})
}

// AddRandomCell is an alias for CreateRandomCell, matching spec.md §6's
// named external operation.
func (s *Simulator) AddRandomCell() cell.Handle {
	return s.CreateRandomCell()
}

func (s *Simulator) randomPosition(c *cell.Cell) vmath.Vector2 {
	radius := c.Radius(s.cfg)
	lo := radius
	hiX := s.worldSize.X - radius
	hiY := s.worldSize.Y - radius
	if hiX < lo {
		hiX = lo
	}
	if hiY < lo {
		hiY = lo
	}
	return vmath.Vector2{
		X: lo + s.rng.Float32()*(hiX-lo),
		Y: lo + s.rng.Float32()*(hiY-lo),
	}
}

func (s *Simulator) spawn(c *cell.Cell, position, velocity vmath.Vector2) cell.Handle {
	cell.BuildRing(c, s.cfg, s.engine, position, velocity)
	return s.cells.Insert(*c)
}

// CellView is a read-only snapshot of one cell, for a view layer: its
// handle, center position, membrane polygon as an ordered point sequence,
// and a reference to its full state for display.
type CellView struct {
	Handle   cell.Handle
	Position vmath.Vector2
	Membrane []vmath.Vector2
	Cell     *cell.Cell
}

// Cells returns a read-only view of every live cell, in arena order.
func (s *Simulator) Cells() []CellView {
	handles := s.cells.Handles()
	views := make([]CellView, 0, len(handles))
	for _, h := range handles {
		c, ok := s.cells.Get(h)
		if !ok {
			continue
		}
		views = append(views, s.view(h, c))
	}
	return views
}

func (s *Simulator) view(h cell.Handle, c *cell.Cell) CellView {
	position := vmath.Vector2{}
	if p, ok := s.engine.Particles.Get(c.Center); ok {
		position = p.Position
	}
	membrane := make([]vmath.Vector2, 0, len(c.Particles))
	for _, ph := range c.Particles {
		if p, ok := s.engine.Particles.Get(ph); ok {
			membrane = append(membrane, p.Position)
		}
	}
	return CellView{Handle: h, Position: position, Membrane: membrane, Cell: c}
}

// GetCellIDCloserTo returns the handle of the cell whose center is nearest
// (x, y), preferring a cell whose disk actually contains the point and
// breaking ties by first-encountered arena order.
func (s *Simulator) GetCellIDCloserTo(x, y float32) (cell.Handle, bool) {
	point := vmath.Vector2{X: x, Y: y}

	var best cell.Handle
	var bestDistSq float32
	found := false
	foundContaining := false

	handles := s.cells.Handles()
	for _, h := range handles {
		c, ok := s.cells.Get(h)
		if !ok {
			continue
		}
		p, ok := s.engine.Particles.Get(c.Center)
		if !ok {
			continue
		}
		distSq := point.DistanceToSquared(p.Position)
		contains := distSq <= c.Radius(s.cfg)*c.Radius(s.cfg)

		switch {
		case !found:
			best, bestDistSq, found, foundContaining = h, distSq, true, contains
		case contains && !foundContaining:
			best, bestDistSq, foundContaining = h, distSq, true
		case contains == foundContaining && distSq < bestDistSq:
			best, bestDistSq = h, distSq
		}
	}

	return best, found
}
