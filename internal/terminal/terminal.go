// Package terminal is the in-window prompt console. ESC toggles it; typed
// lines either run a slash command or go to the scene generator.
package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"dreamscene/internal/commands"
	"dreamscene/internal/logger"
)

const (
	barHeight   = 36
	prompt      = "> "
	fontSize    = 18
	padding     = 8
	historyRows = 12
	lineHeight  = fontSize + 4
	maxLineLen  = 180
)

var (
	barColor     = rl.NewColor(30, 30, 38, 255)
	historyColor = rl.NewColor(18, 18, 24, 235)
	textColor    = rl.NewColor(220, 220, 220, 255)
)

// Terminal is the input bar at the bottom of the window. When open it
// captures the keyboard; the free camera is disabled while typing. Lines
// starting with "/" run through the command registry; anything else is a
// natural-language scene request handed to OnPrompt in a goroutine.
type Terminal struct {
	log   *logger.Logger
	reg   *commands.Registry
	input string
	open  bool

	// OnPrompt receives non-command lines. Called in a goroutine so a slow
	// LLM round trip never stalls the render loop.
	OnPrompt func(line string)
}

// New returns a closed Terminal. Press ESC to open it.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the terminal is capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Update handles ESC toggling and, while open, typing and submission.
// Call once per frame before the scene update.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if ctrl && rl.IsKeyPressed(rl.KeyV) {
		t.input += rl.GetClipboardText()
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.input += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && t.input != "" {
		_, size := utf8.DecodeLastRuneInString(t.input)
		t.input = t.input[:len(t.input)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.input != "" {
		t.submit(t.input)
		t.input = ""
	}
}

func (t *Terminal) submit(line string) {
	t.log.Infof("%s%s", prompt, line)
	if args, isCmd := commands.Parse(line); isCmd {
		if err := t.reg.Execute(args); err != nil {
			t.log.Warnf("%v", err)
		}
		return
	}
	if t.OnPrompt != nil {
		go t.OnPrompt(line)
	}
}

// Draw renders the history panel and input bar when open. Call inside the
// 2D phase of the frame, after the scene.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	barY := screenH - barHeight

	historyH := int32(historyRows * lineHeight)
	historyY := barY - historyH
	if historyY < 0 {
		historyY = 0
		historyH = barY
	}
	rl.DrawRectangle(0, historyY, screenW, historyH, historyColor)

	lines := t.log.Lines()
	start := 0
	if len(lines) > historyRows {
		start = len(lines) - historyRows
	}
	for i, line := range lines[start:] {
		line = logger.Truncate(line, maxLineLen)
		y := historyY + int32(i*lineHeight) + padding
		rl.DrawText(line, padding, y, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, barHeight, barColor)
	rl.DrawText(prompt+t.input+"_", padding, barY+padding, fontSize, textColor)
}
