package main

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"starfocus/internal/app"
	"starfocus/internal/audio"
	"starfocus/internal/core/session"
	"starfocus/internal/platform"
	"starfocus/internal/starfield"
	"starfocus/internal/storage"
)

const appName = "starfocus"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	config, err := storage.LoadConfig(appName)
	if err != nil {
		log.Printf("load config: %v (using defaults)", err)
	}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("open data store: %v (preferences will not persist)", err)
		manager = nil
	}
	prefs, err := storage.OpenPrefs(manager)
	if err != nil {
		log.Printf("load prefs: %v (using defaults)", err)
	}

	machine := session.New(config, prefs.Prefs().CompletedSessions)
	defer machine.Close()

	events := machine.Subscribe(8)
	go func() {
		for event := range events {
			switch event.Type {
			case session.EventStateChange:
				log.Printf("session state: %s (remaining %s)",
					event.State, session.FormatDuration(event.Remaining))
			case session.EventSessionComplete:
				log.Printf("session complete: %d total", event.Sessions)
			}
		}
	}()

	ambient := audio.NewAmbient(config.AmbientVolume)
	if err := ambient.Start(); err != nil {
		log.Printf("audio unavailable: %v", err)
		ambient = nil
	} else {
		defer ambient.Close()
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	field := starfield.NewField(config, rng)
	renderer := starfield.NewRenderer(config, field)
	game := app.New(config, machine, field, renderer, prefs, ambient)

	ebiten.SetWindowSize(960, 600)
	ebiten.SetWindowTitle("Starfocus")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("run: %v", err)
	}
}
