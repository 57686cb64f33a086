package tunnel

import (
	"math/rand"

	"go.uber.org/zap"

	enginetunnel "github.com/Faultbox/tunnel-rush/internal/engine/tunnel"
	"github.com/Faultbox/tunnel-rush/internal/logger"
	"github.com/Faultbox/tunnel-rush/pkg/formats"
)

// TrackConfig controls how many sections stay alive around the player.
type TrackConfig struct {
	StartZ float64 // World z of the first section
	Ahead  int     // Sections kept in front of the one the player is in
	Behind int     // Sections kept behind it before being retired
}

// Track is the ordered run of live sections the player flies through.
type Track struct {
	catalog  *Catalog
	geom     enginetunnel.Geometry
	rng      *rand.Rand
	cfg      TrackConfig
	sections []*Section
	spawned  int
}

// NewTrack creates an empty track. Call Advance to populate it.
func NewTrack(catalog *Catalog, geom enginetunnel.Geometry, rng *rand.Rand, cfg TrackConfig) *Track {
	if cfg.Ahead < 1 {
		cfg.Ahead = 1
	}
	if cfg.Behind < 0 {
		cfg.Behind = 0
	}
	return &Track{
		catalog: catalog,
		geom:    geom,
		rng:     rng,
		cfg:     cfg,
	}
}

// Sections returns the live sections ordered by z.
func (t *Track) Sections() []*Section {
	return t.sections
}

// SpawnedCount returns how many sections were created since the last reset.
func (t *Track) SpawnedCount() int {
	return t.spawned
}

// Reset drops every section and returns them so their meshes can be released.
func (t *Track) Reset() []*Section {
	retired := t.sections
	t.sections = nil
	t.spawned = 0
	return retired
}

// Advance spawns sections ahead of playerZ and retires those left behind.
// A section whose matrix forces a successor is followed by it; otherwise the
// next matrix is drawn at random from the difficulty pool.
func (t *Track) Advance(playerZ float64, difficulty int) (spawned, retired []*Section) {
	length := t.geom.SectionLength()

	if len(t.sections) == 0 {
		spawned = append(spawned, t.spawn(t.cfg.StartZ, t.pickRandom(difficulty)))
	}

	horizon := playerZ + float64(t.cfg.Ahead)*length
	for t.last().EndZ() <= horizon {
		last := t.last()
		var next *formats.Matrix
		if last.HasNext() {
			next = t.catalog.Get(last.NextID())
		} else {
			next = t.pickRandom(difficulty)
		}
		spawned = append(spawned, t.spawn(last.EndZ(), next))
	}

	cutoff := playerZ - float64(t.cfg.Behind)*length
	n := 0
	for n < len(t.sections)-1 && t.sections[n].EndZ() <= cutoff {
		n++
	}
	if n > 0 {
		retired = append(retired, t.sections[:n]...)
		t.sections = append(t.sections[:0:0], t.sections[n:]...)
		logger.Debug("sections retired", zap.Int("count", n), zap.Float64("player_z", playerZ))
	}

	return spawned, retired
}

// SectionAt returns the live section containing z, or nil.
func (t *Track) SectionAt(z float64) *Section {
	for _, s := range t.sections {
		if s.Contains(z) {
			return s
		}
	}
	return nil
}

// CellAt classifies the cell under (angle, z). ok is false when no live
// section covers z.
func (t *Track) CellAt(angle, z float64) (cell formats.MatrixCell, ok bool) {
	s := t.SectionAt(z)
	if s == nil {
		return formats.CellOpen, false
	}
	return s.IsObstacleAt(angle, z), true
}

func (t *Track) last() *Section {
	return t.sections[len(t.sections)-1]
}

func (t *Track) pickRandom(difficulty int) *formats.Matrix {
	return t.catalog.Get(t.catalog.Index().PickRandom(t.rng, difficulty))
}

func (t *Track) spawn(startZ float64, m *formats.Matrix) *Section {
	s := NewSection(startZ, m, t.geom)
	t.sections = append(t.sections, s)
	t.spawned++
	logger.Debug("section spawned",
		zap.Int("matrix", m.ID),
		zap.Int("difficulty", m.Difficulty),
		zap.Float64("start_z", startZ),
	)
	return s
}
