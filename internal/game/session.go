package game

import (
	"math/rand"

	"go.uber.org/zap"

	enginetunnel "github.com/Faultbox/tunnel-rush/internal/engine/tunnel"
	"github.com/Faultbox/tunnel-rush/internal/game/tunnel"
	"github.com/Faultbox/tunnel-rush/internal/logger"
	"github.com/Faultbox/tunnel-rush/pkg/formats"
)

// SectionSink receives sections as they enter and leave the live track.
// The renderer implements it to upload and release meshes.
type SectionSink interface {
	SectionSpawned(s *tunnel.Section)
	SectionRetired(s *tunnel.Section)
}

// Stats summarizes the current and best runs.
type Stats struct {
	Runs         int
	Crashes      int
	Distance     float64
	BestDistance float64
	Difficulty   int
}

// Session is the gameplay state for one sitting: the track, the player and
// crash handling. It has no GL dependencies.
//
// Obstacles are ignored during the first section of every run, so a run never
// ends on the frame it starts.
type Session struct {
	track  *tunnel.Track
	index  *tunnel.DifficultyIndex
	player *Player
	sink   SectionSink
	stats  Stats
	grace  float64
}

// NewSession creates a session and builds the initial track.
func NewSession(catalog *tunnel.Catalog, geom enginetunnel.Geometry, rng *rand.Rand,
	trackCfg tunnel.TrackConfig, playerCfg PlayerConfig, sink SectionSink) *Session {

	s := &Session{
		track:  tunnel.NewTrack(catalog, geom, rng, trackCfg),
		index:  catalog.Index(),
		player: NewPlayer(playerCfg, trackCfg.StartZ),
		sink:   sink,
		stats:  Stats{Runs: 1},
		grace:  geom.SectionLength(),
	}
	s.advanceTrack()
	return s
}

// Player returns the player.
func (s *Session) Player() *Player {
	return s.player
}

// Track returns the live track.
func (s *Session) Track() *tunnel.Track {
	return s.track
}

// Stats returns run statistics.
func (s *Session) Stats() Stats {
	st := s.stats
	st.Distance = s.player.Distance()
	st.Difficulty = s.difficulty()
	return st
}

// Update moves the player, keeps the track filled and checks for a crash.
// It reports whether the player crashed this step; a crash restarts the run.
func (s *Session) Update(dt, steer float64) (crashed bool) {
	s.player.Update(dt, steer)
	s.advanceTrack()

	if s.player.Distance() < s.grace {
		return false
	}
	cell, ok := s.track.CellAt(s.player.Angle, s.player.Z)
	if !ok || cell != formats.CellObstacle {
		return false
	}

	section := s.track.SectionAt(s.player.Z)
	logger.Info("crashed",
		zap.Int("matrix", section.MatrixID()),
		zap.Float64("distance", s.player.Distance()),
		zap.Int("difficulty", s.difficulty()),
	)
	s.Restart()
	s.stats.Crashes++
	return true
}

// Restart drops the track and starts a new run from the beginning.
func (s *Session) Restart() {
	if d := s.player.Distance(); d > s.stats.BestDistance {
		s.stats.BestDistance = d
	}
	for _, sec := range s.track.Reset() {
		s.retire(sec)
	}
	s.player.Reset()
	s.stats.Runs++
	s.advanceTrack()

	logger.Debug("run restarted", zap.Int("run", s.stats.Runs))
}

// Close retires every live section.
func (s *Session) Close() {
	for _, sec := range s.track.Reset() {
		s.retire(sec)
	}
}

func (s *Session) difficulty() int {
	return s.index.Clamp(s.player.Difficulty())
}

func (s *Session) advanceTrack() {
	spawned, retired := s.track.Advance(s.player.Z, s.difficulty())
	for _, sec := range retired {
		s.retire(sec)
	}
	if s.sink == nil {
		return
	}
	for _, sec := range spawned {
		s.sink.SectionSpawned(sec)
	}
}

func (s *Session) retire(sec *tunnel.Section) {
	if s.sink != nil {
		s.sink.SectionRetired(sec)
	}
}
