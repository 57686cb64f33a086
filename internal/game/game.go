// Package game implements the main game loop and gameplay state.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/tunnel-rush/internal/assets"
	"github.com/Faultbox/tunnel-rush/internal/config"
	"github.com/Faultbox/tunnel-rush/internal/engine/camera"
	"github.com/Faultbox/tunnel-rush/internal/engine/debug"
	"github.com/Faultbox/tunnel-rush/internal/engine/input"
	"github.com/Faultbox/tunnel-rush/internal/engine/renderer"
	"github.com/Faultbox/tunnel-rush/internal/engine/scene"
	"github.com/Faultbox/tunnel-rush/internal/engine/texture"
	"github.com/Faultbox/tunnel-rush/internal/engine/window"
	"github.com/Faultbox/tunnel-rush/internal/game/tunnel"
	"github.com/Faultbox/tunnel-rush/internal/logger"
)

const title = "Tunnel Rush"

// Largest frame step fed to the simulation, so a stall cannot tunnel the
// player through an obstacle row.
const maxFrameDelta = 0.05

// Game is the main game instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	camera   *camera.ChaseCamera
	assets   *assets.Manager
	shots    *debug.ScreenshotCapture

	session *Session
	meshes  map[*tunnel.Section]scene.MeshHandle
}

// New creates the window and GL state and starts the first run.
func New(cfg *config.Config, catalog *tunnel.Catalog) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("matrices", catalog.Len()),
	)

	g := &Game{
		cfg:    cfg,
		input:  input.New(),
		assets: assets.NewManager(),
		meshes: make(map[*tunnel.Section]scene.MeshHandle),
		shots:  debug.NewScreenshotCapture(cfg.Data.ScreenshotDir, "tunnel"),
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The drawable can be larger than the window on high-DPI displays
	width, height := g.window.GetSize()
	g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.scene, err = scene.New(scene.DefaultConfig())
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	for _, dir := range cfg.Data.AssetDirs {
		if err := g.assets.AddDir(dir); err != nil {
			logger.Warn("skipping asset dir", zap.String("dir", dir), zap.Error(err))
		}
	}
	g.loadTexture()

	geom := cfg.Tunnel.Geometry()
	g.camera = camera.NewChaseCamera(geom.Radius, cfg.Graphics.FOV, float32(width)/float32(height))

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting session", zap.Int64("seed", seed))

	g.session = NewSession(catalog, geom, rand.New(rand.NewSource(seed)),
		tunnel.TrackConfig{Ahead: cfg.Tunnel.Ahead, Behind: cfg.Tunnel.Behind},
		PlayerConfig{
			Speed:           cfg.Game.Speed,
			MaxSpeed:        cfg.Game.MaxSpeed,
			Acceleration:    cfg.Game.Acceleration,
			SteerSpeed:      cfg.Game.SteerSpeed,
			DifficultyStep:  cfg.Game.DifficultyStep,
			StartDifficulty: cfg.Game.StartDifficulty,
		},
		g,
	)

	logger.Info("game initialized successfully")
	return g, nil
}

// loadTexture uploads the wall texture, keeping the white fallback on failure.
func (g *Game) loadTexture() {
	name := g.cfg.Tunnel.Texture
	data, err := g.assets.Load(name)
	if err != nil {
		logger.Warn("tunnel texture unavailable, using fallback", zap.String("texture", name), zap.Error(err))
		return
	}
	img, err := texture.Decode(name, data)
	if err != nil {
		logger.Warn("tunnel texture unreadable, using fallback", zap.String("texture", name), zap.Error(err))
		return
	}

	params := scene.DefaultTextureParams()
	params.Anisotropy = g.cfg.Graphics.Anisotropy
	g.scene.Tunnel().SetTexture(img, params)
}

// SectionSpawned uploads the mesh of a new section.
func (g *Game) SectionSpawned(s *tunnel.Section) {
	mesh := s.BuildMesh()
	g.meshes[s] = g.scene.Tunnel().Upload(mesh)
}

// SectionRetired releases the mesh of a section left behind.
func (g *Game) SectionRetired(s *tunnel.Section) {
	if h, ok := g.meshes[s]; ok {
		g.scene.Tunnel().Release(h)
		delete(g.meshes, s)
	}
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}

		if _, _, ok := g.input.Resize(); ok {
			w, h := g.window.GetSize()
			g.renderer.Resize(w, h)
			g.camera.SetAspect(w, h)
		}
		if g.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			g.running = false
		}
		if g.input.IsKeyPressed(sdl.SCANCODE_R) {
			g.session.Restart()
		}

		g.update(dt)
		g.render()
		if g.input.IsKeyPressed(sdl.SCANCODE_F12) {
			g.screenshot()
		}
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			st := g.session.Stats()
			if g.cfg.Game.ShowFPS {
				g.window.SetTitle(fmt.Sprintf("%s - %d fps - %.0f m (best %.0f)", title, frameCount, st.Distance, st.BestDistance))
			}
			logger.Debug("frame stats",
				zap.Int("fps", frameCount),
				zap.Int("meshes", g.scene.Tunnel().Len()),
				zap.Int("difficulty", st.Difficulty),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.session != nil {
		g.session.Close()
		st := g.session.Stats()
		logger.Info("session summary",
			zap.Int("runs", st.Runs),
			zap.Int("crashes", st.Crashes),
			zap.Float64("best_distance", st.BestDistance),
		)
	}
	if g.scene != nil {
		g.scene.Destroy()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
	g.assets.Close()
}

func (g *Game) update(dt float64) {
	for dt > 0 {
		step := min(dt, maxFrameDelta)
		dt -= step
		if g.session.Update(step, g.input.Steer()) {
			break
		}
	}
	p := g.session.Player()
	g.camera.Follow(p.Angle, p.Z)
}

func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	name, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

func (g *Game) render() {
	g.renderer.Begin()
	g.scene.Render(g.camera)
	g.renderer.End()
}
