package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"starfocus/internal/core/session"
	"starfocus/internal/theme"
)

// hudState is the text overlay derived once per tick in Update.
type hudState struct {
	status    string
	remaining string
	sessions  string
	hint      string
}

func buildHUD(snapshot session.Snapshot, colors theme.Theme, soundEnabled bool) hudState {
	sound := "sound off"
	if soundEnabled {
		sound = "sound on"
	}
	return hudState{
		status: fmt.Sprintf("%s | %s | %s", statusLabel(snapshot.State), colors.Name, sound),
		remaining: fmt.Sprintf("%s remaining (%d%%)",
			session.FormatDuration(snapshot.Remaining), int(snapshot.Progress)),
		sessions: fmt.Sprintf("sessions completed: %d", snapshot.CompletedSessions),
		hint:     hintLabel(snapshot.State),
	}
}

func statusLabel(state session.State) string {
	switch state {
	case session.StateWorking:
		return "Focus"
	case session.StateWorkComplete:
		return "Session complete"
	case session.StateBreak:
		return "Break"
	case session.StateBreakComplete:
		return "Break over"
	default:
		return "Idle"
	}
}

func hintLabel(state session.State) string {
	switch state {
	case session.StateWorking:
		return "Space: take break | Esc: end session | T: theme | M: sound"
	case session.StateWorkComplete:
		return "Space: start break"
	case session.StateBreak:
		return "Space: resume work"
	case session.StateBreakComplete:
		return "Space: back to idle"
	default:
		return "Space: start work | T: theme | M: sound | Q: quit"
	}
}

func drawHUD(screen *ebiten.Image, hud hudState) {
	ebitenutil.DebugPrintAt(screen, hud.status, 12, 12)
	ebitenutil.DebugPrintAt(screen, hud.remaining, 12, 28)
	ebitenutil.DebugPrintAt(screen, hud.sessions, 12, 44)
	ebitenutil.DebugPrintAt(screen, hud.hint, 12, 60)
}
