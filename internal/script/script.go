// Package script replays recorded gestures against a drawing surface.
//
// A script has one command per line. Blank lines and lines starting with
// '#' are ignored:
//
//	size 400 300
//	line signing
//	color royalblue
//	press 10 10
//	move 40 12 16
//	release
package script

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/example/freehand/internal/brush"
	"github.com/example/freehand/internal/palette"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("syntax error")

// Target receives replayed commands. *surface.Controller implements it.
type Target interface {
	Press(x, y float32)
	Move(x, y float32, t time.Duration)
	Release()
	Cancel()
	SetLineType(l brush.LineType)
	SetColor(c color.RGBA)
	SetBrushWidth(w float32)
	SetEraserWidth(w float32)
	SetBackgroundColor(c color.RGBA)
	SetBackgroundImage(id string)
	SetSize(w, h int)
	Undo()
	Redo()
	ClearCanvas(withSaving bool)
}

// LineError reports the line a parse error occurred on.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err) }

func (e *LineError) Unwrap() error { return e.Err }

// Step is one parsed command.
type Step struct {
	Line int
	Name string
	run  func(Target)
}

// Script is a parsed sequence of steps.
type Script struct {
	Steps []Step
}

// Parse reads a whole script. It stops at the first malformed line.
func Parse(r io.Reader) (*Script, error) {
	s := &Script{}
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		run, err := parseStep(strings.ToLower(fields[0]), fields[1:])
		if err != nil {
			return nil, &LineError{Line: n, Text: text, Err: err}
		}
		s.Steps = append(s.Steps, Step{Line: n, Name: strings.ToLower(fields[0]), run: run})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return s, nil
}

// Replay runs every step against t in order.
func (s *Script) Replay(t Target) {
	for _, st := range s.Steps {
		st.run(t)
	}
}

// Run parses r and replays it against t.
func Run(r io.Reader, t Target) error {
	s, err := Parse(r)
	if err != nil {
		return err
	}
	s.Replay(t)
	return nil
}

func syntaxf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}

func arity(name string, args []string, want ...int) error {
	for _, w := range want {
		if len(args) == w {
			return nil
		}
	}
	return syntaxf("%s takes %v arguments, got %d", name, want, len(args))
}

func floats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, syntaxf("invalid number %q", a)
		}
		out[i] = float32(v)
	}
	return out, nil
}

func parseStep(name string, args []string) (func(Target), error) {
	switch name {
	case "press":
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		v, err := floats(args)
		if err != nil {
			return nil, err
		}
		return func(t Target) { t.Press(v[0], v[1]) }, nil
	case "move":
		if err := arity(name, args, 3); err != nil {
			return nil, err
		}
		v, err := floats(args[:2])
		if err != nil {
			return nil, err
		}
		ms, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return nil, syntaxf("invalid timestamp %q", args[2])
		}
		at := time.Duration(ms * float64(time.Millisecond))
		return func(t Target) { t.Move(v[0], v[1], at) }, nil
	case "release", "cancel", "undo", "redo":
		if err := arity(name, args, 0); err != nil {
			return nil, err
		}
		switch name {
		case "release":
			return Target.Release, nil
		case "cancel":
			return Target.Cancel, nil
		case "undo":
			return Target.Undo, nil
		}
		return Target.Redo, nil
	case "line":
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		l, err := brush.ParseLineType(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return func(t Target) { t.SetLineType(l) }, nil
	case "color", "colour":
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		c, err := palette.ParseColor(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return func(t Target) { t.SetColor(c) }, nil
	case "width", "eraser":
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		v, err := floats(args)
		if err != nil {
			return nil, err
		}
		if name == "eraser" {
			return func(t Target) { t.SetEraserWidth(v[0]) }, nil
		}
		return func(t Target) { t.SetBrushWidth(v[0]) }, nil
	case "size":
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		w, errW := strconv.Atoi(args[0])
		h, errH := strconv.Atoi(args[1])
		if errW != nil || errH != nil || w <= 0 || h <= 0 {
			return nil, syntaxf("invalid size %sx%s", args[0], args[1])
		}
		return func(t Target) { t.SetSize(w, h) }, nil
	case "background":
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		switch strings.ToLower(args[0]) {
		case "color", "colour":
			c, err := palette.ParseColor(args[1])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			return func(t Target) { t.SetBackgroundColor(c) }, nil
		case "image":
			id := args[1]
			return func(t Target) { t.SetBackgroundImage(id) }, nil
		}
		return nil, syntaxf("background kind must be color or image, got %q", args[0])
	case "clear":
		if err := arity(name, args, 0, 1); err != nil {
			return nil, err
		}
		if len(args) == 1 {
			if !strings.EqualFold(args[0], "save") {
				return nil, syntaxf("clear accepts only \"save\", got %q", args[0])
			}
			return func(t Target) { t.ClearCanvas(true) }, nil
		}
		return func(t Target) { t.ClearCanvas(false) }, nil
	}
	return nil, syntaxf("unknown command %q", name)
}
