package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/terra/assets"
	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
	"github.com/milk9111/terra/engine"
	"github.com/milk9111/terra/input"
	"github.com/milk9111/terra/internal/config"
	"github.com/milk9111/terra/internal/logger"
	"github.com/milk9111/terra/prefabs"
	"github.com/milk9111/terra/render"
	"github.com/milk9111/terra/sound"
	"github.com/milk9111/terra/ui"
	"gopkg.in/yaml.v3"
)

// maxFrameDelta caps a single tick after a stall, such as a dragged window.
const maxFrameDelta = 50.0

type Game struct {
	ctx context.Context
	cfg *config.Config
	log *slog.Logger

	engine   *engine.Engine
	device   *input.Device
	renderer *render.Renderer
	overlay  *ui.Overlay
	bank     *sound.Bank
	watcher  *prefabs.Watcher

	last   time.Time
	frames int
}

func NewGame(ctx context.Context, cfg *config.Config, content *prefabs.Content, audioCtx *audio.Context, log *slog.Logger) (*Game, error) {
	eng, err := engine.New(content,
		engine.WithLogger(log),
		engine.WithSpecialUnlocked(cfg.AllAbilities),
	)
	if err != nil {
		return nil, err
	}

	lib := assets.NewLibrary(log)
	g := &Game{
		ctx:      ctx,
		cfg:      cfg,
		log:      log,
		engine:   eng,
		device:   input.NewDevice(),
		renderer: render.New(lib, content),
		bank:     sound.NewBank(audioCtx, lib, cfg.Volume, cfg.Mute, log),
	}
	g.overlay = ui.NewOverlay(content, g.actions())

	if cfg.StartLevel > 0 {
		if err := eng.StartLevel(cfg.StartLevel); err != nil {
			return nil, err
		}
	}

	if cfg.Debug {
		w, err := prefabs.NewWatcher(ctx, cfg.ContentDir)
		if err != nil {
			logger.WithError(log, err).Warn("content watcher disabled", "dir", cfg.ContentDir)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) actions() ui.Actions {
	return ui.Actions{
		Start:            g.engine.StartGame,
		CompletePrologue: g.engine.CompletePrologue,
		Dismiss:          g.dismiss,
		Answer:           g.engine.AnswerQuestion,
		Next: func() {
			if err := g.engine.NextLevel(); err != nil {
				logger.WithError(g.log, err).Error("next level")
			}
		},
		Restart: g.engine.Restart,
		Resume:  g.engine.TogglePause,
	}
}

// dismiss advances the dialogue and drops whatever was pressed to do it, so
// the key that closes the last line does not also jump.
func (g *Game) dismiss() {
	g.engine.DismissDialogue()
	g.engine.Keys().Clear()
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.frames++
	g.drainWatcher()
	g.shortcuts()

	g.device.Poll(g.engine.Keys())
	events := g.engine.Tick(g.delta())
	g.bank.Play(events)

	g.renderer.ShowTouch = g.device.TouchSeen
	g.overlay.Sync(g.engine.State())
	g.overlay.Update()
	return nil
}

func (g *Game) delta() float64 {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
		return common.FrameMillis
	}
	dt := float64(now.Sub(g.last)) / float64(time.Millisecond)
	g.last = now
	return common.Clamp(dt, 0, maxFrameDelta)
}

func (g *Game) shortcuts() {
	if input.JustPressed(ebiten.KeyEscape) || input.JustPressed(ebiten.KeyP) {
		g.engine.TogglePause()
	}
	if g.cfg.Debug && input.JustPressed(ebiten.KeyF9) {
		g.dumpState()
	}
	if !input.JustPressed(ebiten.KeyEnter) {
		return
	}

	switch s := g.engine.State(); s.Phase {
	case component.PhaseTitle:
		g.engine.StartGame()
	case component.PhasePrologue:
		g.engine.CompletePrologue()
	case component.PhaseDialogue:
		g.dismiss()
	case component.PhasePlaying:
		if s.Dialogue != nil {
			g.dismiss()
		}
	case component.PhaseLevelComplete:
		g.actions().Next()
	case component.PhaseGameOver, component.PhaseVictory:
		g.engine.Restart()
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case name := <-g.watcher.Changed:
		content, err := prefabs.LoadContent()
		if err != nil {
			logger.WithError(g.log, err).Warn("content reload failed", "file", name)
			return
		}
		if err := g.engine.ReloadContent(content); err != nil {
			logger.WithError(g.log, err).Warn("content rejected", "file", name)
			return
		}
		g.renderer.SetContent(content)
		g.overlay.SetContent(content)
		g.log.Info("content reloaded", "file", name)
	case err := <-g.watcher.Errors:
		logger.WithError(g.log, err).Warn("content watcher")
	default:
	}
}

func (g *Game) dumpState() {
	out, err := yaml.Marshal(g.engine.State())
	if err != nil {
		logger.WithError(g.log, err).Error("dump state")
		return
	}
	g.log.Debug("state", "yaml", string(out))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.engine.State())
	g.overlay.Draw(screen)

	if g.cfg.Debug {
		s := g.engine.State()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  %s  monsters: %d  keys: %d", ebiten.ActualFPS(), s.Phase, len(s.Monsters), g.engine.Keys().Len()), 4, common.GameHeight-16)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.GameWidth, common.GameHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
