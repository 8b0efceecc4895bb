// Package canvasui is the interactive drawing window.
package canvasui

import (
	"image"
	"log"
	"sync"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/freehand/internal/clipboard"
	"github.com/example/freehand/internal/notify"
	"github.com/example/freehand/internal/surface"
)

// Window shows a surface and forwards pointer and keyboard input to it.
type Window struct {
	Surface  *surface.Controller
	Output   string
	Notifier *notify.Notifier
	Title    string

	updateCh  chan struct{}
	onClose   func()
	closeOnce sync.Once
}

// Option modifies a Window during creation.
type Option func(*Window)

// WithOutput sets the file written by the export shortcut.
func WithOutput(out string) Option { return func(w *Window) { w.Output = out } }

// WithNotifier sets the notifier used after export and copy.
func WithNotifier(n *notify.Notifier) Option { return func(w *Window) { w.Notifier = n } }

// WithTitle sets the window title.
func WithTitle(t string) Option { return func(w *Window) { w.Title = t } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(w *Window) { w.onClose = fn } }

// New creates a Window for s.
func New(s *surface.Controller, opts ...Option) *Window {
	w := &Window{Surface: s, Title: "Freehand", updateCh: make(chan struct{}, 1)}
	for _, o := range opts {
		o(w)
	}
	s.OnRedraw(w.requestPaint)
	return w
}

// requestPaint coalesces redraw requests from the surface.
func (w *Window) requestPaint() {
	select {
	case w.updateCh <- struct{}{}:
	default:
	}
}

func (w *Window) notifyClose() {
	w.closeOnce.Do(func() {
		if w.onClose != nil {
			w.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (w *Window) Run() { driver.Main(w.Main) }

// Main runs the event loop on s until the window is closed or quit.
func (w *Window) Main(s screen.Screen) {
	c := newControls(w.Surface, w.Output, w.Notifier, clipboard.WriteImage)
	sz := w.Surface.Size()
	width, height := sz.X, sz.Y+statusHeight

	win, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: w.Title})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer win.Release()
	defer w.notifyClose()

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-w.updateCh:
				win.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	for {
		switch e := win.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx
			if h := height - statusHeight; width > 0 && h > 0 {
				w.Surface.SetSize(width, h)
			}
			win.Send(paint.Event{})
		case paint.Event:
			w.paint(s, win, c, width, height)
		case mouse.Event:
			if c.handleMouse(e) {
				w.requestPaint()
			}
		case key.Event:
			if c.handleKey(e) {
				win.Send(paint.Event{})
			}
			if c.quit {
				return
			}
		}
	}
}

func (w *Window) paint(s screen.Screen, win screen.Window, c *controls, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	b, err := s.NewBuffer(image.Point{width, height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	if err := drawFrame(b.RGBA(), w.Surface, c); err != nil {
		log.Printf("render: %v", err)
	}
	win.Upload(image.Point{}, b, b.Bounds())
	win.Publish()
}
