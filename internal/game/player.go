package game

import (
	"math"
)

// PlayerConfig holds movement tuning.
type PlayerConfig struct {
	Speed           float64 // Initial forward speed, units/s
	MaxSpeed        float64 // Forward speed cap, units/s
	Acceleration    float64 // Forward speed gain, units/s^2
	SteerSpeed      float64 // Angular speed, radians/s
	DifficultyStep  float64 // Distance per difficulty level
	StartDifficulty int
}

// Player is the craft riding the inside of the tunnel wall.
type Player struct {
	Angle float64 // Position around the axis, kept in [0, 2π)
	Z     float64 // Depth along the tunnel
	Speed float64

	cfg    PlayerConfig
	startZ float64
}

// NewPlayer places a player at startZ, angle zero.
func NewPlayer(cfg PlayerConfig, startZ float64) *Player {
	p := &Player{cfg: cfg, startZ: startZ}
	p.Reset()
	return p
}

// Reset returns the player to the start of the run.
func (p *Player) Reset() {
	p.Angle = 0
	p.Z = p.startZ
	p.Speed = p.cfg.Speed
}

// Update advances the player by dt seconds. steer is -1, 0 or 1.
func (p *Player) Update(dt, steer float64) {
	p.Angle = wrapAngle(p.Angle + steer*p.cfg.SteerSpeed*dt)

	p.Speed += p.cfg.Acceleration * dt
	if p.cfg.MaxSpeed > 0 && p.Speed > p.cfg.MaxSpeed {
		p.Speed = p.cfg.MaxSpeed
	}
	p.Z += p.Speed * dt
}

// Distance returns how far the player has travelled this run.
func (p *Player) Distance() float64 {
	return p.Z - p.startZ
}

// Difficulty returns the difficulty level earned by distance travelled.
func (p *Player) Difficulty() int {
	if p.cfg.DifficultyStep <= 0 {
		return p.cfg.StartDifficulty
	}
	return p.cfg.StartDifficulty + int(p.Distance()/p.cfg.DifficultyStep)
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
