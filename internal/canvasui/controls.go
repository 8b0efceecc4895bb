package canvasui

import (
	"fmt"
	"image"
	"log"
	"time"
	"unicode"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/freehand/internal/background"
	"github.com/example/freehand/internal/brush"
	"github.com/example/freehand/internal/notify"
	"github.com/example/freehand/internal/palette"
	"github.com/example/freehand/internal/render"
	"github.com/example/freehand/internal/surface"
)

// KeyShortcut is a key combination bound to an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

type binding struct {
	name string
	keys []KeyShortcut
	help string
	fn   func()
}

// backgrounds is the cycle used by the background shortcut. The empty
// entry is the flat canvas colour.
var backgrounds = []string{"", "grid", "lined", "dots"}

const messageDuration = 2 * time.Second

// controls maps window input onto the surface. It holds everything the
// event loop needs apart from the window itself.
type controls struct {
	surface  *surface.Controller
	output   string
	notifier *notify.Notifier
	copy     func(image.Image) error

	colorIdx int
	bgIdx    int

	message      string
	messageUntil time.Time
	now          func() time.Time
	start        time.Time
	down         bool
	quit         bool

	bindings []binding
	keys     map[KeyShortcut]string
	actions  map[string]func()
}

func newControls(s *surface.Controller, output string, n *notify.Notifier, copyFn func(image.Image) error) *controls {
	c := &controls{
		surface:  s,
		output:   output,
		notifier: n,
		copy:     copyFn,
		now:      time.Now,
		colorIdx: palette.Index(s.Color()),
	}
	c.start = c.now()
	if c.colorIdx < 0 {
		c.colorIdx = palette.Ensure(s.Color(), "")
	}
	c.register()
	return c
}

func (c *controls) bind(name, help string, fn func(), keys ...KeyShortcut) {
	c.bindings = append(c.bindings, binding{name: name, keys: keys, help: help, fn: fn})
	c.actions[name] = fn
	for _, k := range keys {
		c.keys[k] = name
	}
}

func (c *controls) register() {
	c.keys = map[KeyShortcut]string{}
	c.actions = map[string]func(){}

	c.bind("undo", "Ctrl+Z undo", c.surface.Undo, KeyShortcut{Rune: 'z', Modifiers: key.ModControl})
	c.bind("redo", "Ctrl+Y redo", c.surface.Redo,
		KeyShortcut{Rune: 'y', Modifiers: key.ModControl},
		KeyShortcut{Rune: 'z', Modifiers: key.ModControl | key.ModShift})
	c.bind("export", "Ctrl+S export", c.export, KeyShortcut{Rune: 's', Modifiers: key.ModControl})
	c.bind("copy", "Ctrl+C copy", c.copyToClipboard, KeyShortcut{Rune: 'c', Modifiers: key.ModControl})
	for i, l := range brush.LineTypes() {
		c.bind("line-"+l.String(), fmt.Sprintf("%d %s", i+1, l), func() { c.setLineType(l) },
			KeyShortcut{Rune: rune('1' + i)})
	}
	c.bind("next-color", "C colour", func() { c.stepColor(1) }, KeyShortcut{Rune: 'c'})
	c.bind("prev-color", "", func() { c.stepColor(-1) }, KeyShortcut{Rune: 'c', Modifiers: key.ModShift})
	c.bind("wider", "] wider", func() { c.stepWidth(1) }, KeyShortcut{Rune: ']'})
	c.bind("narrower", "[ narrower", func() { c.stepWidth(-1) }, KeyShortcut{Rune: '['})
	c.bind("background", "B background", c.nextBackground, KeyShortcut{Rune: 'b'})
	c.bind("clear", "Del clear", func() { c.clear(true) }, KeyShortcut{Code: key.CodeDeleteForward})
	c.bind("clear-hard", "", func() { c.clear(false) }, KeyShortcut{Code: key.CodeDeleteForward, Modifiers: key.ModShift})
	c.bind("cancel", "", c.surface.Cancel, KeyShortcut{Code: key.CodeEscape})
	c.bind("quit", "Q quit", func() { c.quit = true }, KeyShortcut{Rune: 'q'})
}

// Shortcuts lists the visible shortcut hints in registration order.
func (c *controls) Shortcuts() []string {
	var out []string
	for _, b := range c.bindings {
		if b.help != "" {
			out = append(out, b.help)
		}
	}
	return out
}

func (c *controls) say(format string, args ...any) {
	c.message = fmt.Sprintf(format, args...)
	c.messageUntil = c.now().Add(messageDuration)
	log.Print(c.message)
}

// Message returns the transient status message, if still current.
func (c *controls) Message() string {
	if c.message == "" || !c.now().Before(c.messageUntil) {
		return ""
	}
	return c.message
}

// handleMouse feeds left-button drags to the surface. It reports whether
// the event changed anything.
func (c *controls) handleMouse(e mouse.Event) bool {
	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		c.down = true
		c.surface.Press(e.X, e.Y)
	case e.Direction == mouse.DirNone && c.down:
		c.surface.Move(e.X, e.Y, c.now().Sub(c.start))
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease && c.down:
		c.down = false
		c.surface.Move(e.X, e.Y, c.now().Sub(c.start))
		c.surface.Release()
	default:
		return false
	}
	return true
}

// handleKey runs the action bound to e. It reports whether one ran.
func (c *controls) handleKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	r := unicode.ToLower(e.Rune)
	mods := e.Modifiers
	// Shifted punctuation and digits arrive as their shifted rune.
	if r > 0 && r == e.Rune && !unicode.IsLetter(r) {
		mods &^= key.ModShift
	}
	name, ok := c.keys[KeyShortcut{Rune: r, Code: e.Code, Modifiers: mods}]
	if !ok && r > 0 {
		name, ok = c.keys[KeyShortcut{Rune: r, Modifiers: mods}]
	}
	if !ok {
		name, ok = c.keys[KeyShortcut{Code: e.Code, Modifiers: mods}]
	}
	if !ok {
		return false
	}
	c.actions[name]()
	return true
}

func (c *controls) setLineType(l brush.LineType) {
	c.surface.SetLineType(l)
	c.say("line type %s", l)
}

func (c *controls) stepColor(d int) {
	c.colorIdx += d
	e := palette.At(c.colorIdx)
	c.surface.SetColor(e.Color)
	c.say("colour %s", e.Name)
}

func (c *controls) stepWidth(d int) {
	erasing := c.surface.LineType() == brush.Eraser
	cur := c.surface.BrushWidth()
	if erasing {
		cur = c.surface.EraserWidth()
	}
	ws := palette.Widths()
	next := ws[0]
	if d > 0 {
		next = ws[len(ws)-1]
		for _, w := range ws {
			if w > cur {
				next = w
				break
			}
		}
	} else {
		for _, w := range ws {
			if w < cur {
				next = w
			}
		}
	}
	if erasing {
		c.surface.SetEraserWidth(next)
		c.say("eraser width %g", next)
		return
	}
	c.surface.SetBrushWidth(next)
	c.say("brush width %g", next)
}

func (c *controls) nextBackground() {
	c.bgIdx = (c.bgIdx + 1) % len(backgrounds)
	id := backgrounds[c.bgIdx]
	if id == "" {
		c.surface.SetBackgroundColor(background.DefaultColor)
		c.say("background plain")
		return
	}
	c.surface.SetBackgroundImage(id)
	c.say("background %s", id)
}

func (c *controls) clear(withSaving bool) {
	c.surface.ClearCanvas(withSaving)
	if withSaving {
		c.say("cleared, redo to restore")
		return
	}
	c.say("cleared")
}

func (c *controls) export() {
	if c.output == "" {
		c.say("no output file set")
		return
	}
	img, err := c.surface.ExportRaster()
	if err != nil {
		c.say("export: %v", err)
		return
	}
	if err := render.WriteFile(c.output, img, render.FormatForPath(c.output)); err != nil {
		c.say("export: %v", err)
		return
	}
	c.say("saved %s", c.output)
	c.notifier.Export(c.output, img)
}

func (c *controls) copyToClipboard() {
	img, err := c.surface.ExportRaster()
	if err != nil {
		c.say("copy: %v", err)
		return
	}
	if err := c.copy(img); err != nil {
		c.say("copy: %v", err)
		return
	}
	c.say("drawing copied to clipboard")
	c.notifier.Copy("drawing")
}
