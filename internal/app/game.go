// Package app wires the session machine, speed model and starfield
// into an ebiten game loop.
package app

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"starfocus/internal/audio"
	"starfocus/internal/core/model"
	"starfocus/internal/core/motion"
	"starfocus/internal/core/session"
	"starfocus/internal/starfield"
	"starfocus/internal/storage"
	"starfocus/internal/theme"
)

const (
	defaultWidth  = 960
	defaultHeight = 600

	// fadeStep ramps the work-complete black fade to its 0.5 ceiling
	// over about two seconds at 60 ticks per second.
	fadeStep    = 0.5 / 120
	fadeCeiling = 0.5
)

// Game implements ebiten.Game. Update owns every state mutation; Draw
// only paints, so the renderer always observes a settled frame.
type Game struct {
	config   model.Config
	machine  *session.Machine
	field    *starfield.Field
	renderer *starfield.Renderer
	prefs    *storage.PrefsStore
	ambient  *audio.Ambient
	colors   theme.Theme

	width, height int
	fadeOpacity   float64
	frame         starfield.Frame
	hud           hudState

	now func() time.Time
}

// New assembles the game from its already-constructed parts. ambient
// may be nil when the speaker failed to initialize.
func New(config model.Config, machine *session.Machine, field *starfield.Field, renderer *starfield.Renderer, prefs *storage.PrefsStore, ambient *audio.Ambient) *Game {
	game := &Game{
		config:   config,
		machine:  machine,
		field:    field,
		renderer: renderer,
		prefs:    prefs,
		ambient:  ambient,
		colors:   theme.Lookup(prefs.Prefs().ThemeKey),
		width:    defaultWidth,
		height:   defaultHeight,
		now:      time.Now,
	}
	game.syncAmbient()
	return game
}

// Update runs one simulation tick: input, threshold transitions,
// speed derivation and the particle step.
func (game *Game) Update() error {
	now := game.now()

	if err := game.handleInput(now); err != nil {
		return err
	}

	game.machine.Tick(now)
	snapshot := game.machine.Snapshot(now)
	game.persistSessions(snapshot.CompletedSessions)
	game.updateFade(snapshot.State)

	sample := motion.Speed(snapshot.State, snapshot.PhaseElapsed, snapshot.AccumulatedWork, game.config)
	game.frame = starfield.Frame{
		State:         snapshot.State,
		Speed:         sample.Speed,
		ExitProgress:  sample.ExitProgress,
		IsExitingWarp: sample.IsExitingWarp,
		PhaseElapsed:  snapshot.PhaseElapsed,
		FadeOpacity:   game.fadeOpacity,
		TwoColor:      game.colors.HasSecondary,
		Width:         game.width,
		Height:        game.height,
	}
	game.field.Step(game.frame)
	game.hud = buildHUD(snapshot, game.colors, game.prefs.Prefs().SoundEnabled)
	return nil
}

// Draw paints the starfield and the HUD. It mutates nothing.
func (game *Game) Draw(screen *ebiten.Image) {
	game.renderer.Draw(screen, game.frame, game.colors)
	drawHUD(screen, game.hud)
}

// Layout tracks the host viewport so the projection center follows
// window resizes.
func (game *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		game.width = outsideWidth
		game.height = outsideHeight
	}
	return game.width, game.height
}

func (game *Game) handleInput(now time.Time) error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		game.advance(now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if game.machine.State() == session.StateWorking {
			game.machine.EndSessionEarly(now)
		} else {
			return ebiten.Termination
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		game.cycleTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		game.toggleSound()
	}
	return nil
}

// advance maps the single advance action to whatever transition the
// current state defines.
func (game *Game) advance(now time.Time) {
	switch game.machine.State() {
	case session.StateIdle:
		game.machine.StartWork(now)
	case session.StateWorking:
		game.machine.TakeBreak(now)
	case session.StateWorkComplete:
		game.machine.StartBreak(now)
	case session.StateBreak:
		game.machine.ResumeWork(now)
	case session.StateBreakComplete:
		game.machine.AcknowledgeBreakComplete(now)
	}
}

func (game *Game) cycleTheme() {
	prefs := game.prefs.Prefs()
	prefs.ThemeKey = theme.Next(prefs.ThemeKey)
	game.colors = theme.Lookup(prefs.ThemeKey)
	if err := game.prefs.Update(prefs); err != nil {
		log.Printf("persist theme: %v", err)
	}
}

func (game *Game) toggleSound() {
	prefs := game.prefs.Prefs()
	prefs.SoundEnabled = !prefs.SoundEnabled
	if err := game.prefs.Update(prefs); err != nil {
		log.Printf("persist sound flag: %v", err)
	}
	game.syncAmbient()
}

func (game *Game) syncAmbient() {
	if game.ambient == nil {
		return
	}
	game.ambient.SetPlaying(game.prefs.Prefs().SoundEnabled)
}

func (game *Game) persistSessions(completed int) {
	prefs := game.prefs.Prefs()
	if prefs.CompletedSessions == completed {
		return
	}
	prefs.CompletedSessions = completed
	if err := game.prefs.Update(prefs); err != nil {
		log.Printf("persist session count: %v", err)
	}
}

func (game *Game) updateFade(state session.State) {
	if state != session.StateWorkComplete {
		game.fadeOpacity = 0
		return
	}
	game.fadeOpacity += fadeStep
	if game.fadeOpacity > fadeCeiling {
		game.fadeOpacity = fadeCeiling
	}
}
