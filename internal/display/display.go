// Package display implements the content panel collaborators that receive
// proximity reveals.
package display

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/lexcosmos/internal/logger"
)

// Panel is the content currently shown.
type Panel struct {
	Title      string
	Paragraphs []string
}

// LogPanel shows content by logging it and remembers the open panel.
type LogPanel struct {
	log     *zap.Logger
	current *Panel
}

// NewLogPanel creates a panel logging under the "panel" component.
func NewLogPanel() *LogPanel {
	return &LogPanel{log: logger.Named("panel")}
}

// Reveal opens a panel, replacing any open one.
func (p *LogPanel) Reveal(title string, paragraphs []string) {
	p.current = &Panel{Title: title, Paragraphs: append([]string(nil), paragraphs...)}
	p.log.Info("reveal",
		zap.String("title", title),
		zap.Int("paragraphs", len(paragraphs)),
		zap.String("body", strings.Join(paragraphs, "\n")))
}

// Dismiss closes the open panel, if any.
func (p *LogPanel) Dismiss() {
	if p.current == nil {
		return
	}
	p.log.Info("dismiss", zap.String("title", p.current.Title))
	p.current = nil
}

// Current returns the open panel.
func (p *LogPanel) Current() (Panel, bool) {
	if p.current == nil {
		return Panel{}, false
	}
	return *p.current, true
}

// Event is one recorded display call.
type Event struct {
	Dismiss    bool
	Title      string
	Paragraphs []string
}

// Recorder records every display call in order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Reveal(title string, paragraphs []string) {
	r.Events = append(r.Events, Event{Title: title, Paragraphs: paragraphs})
}

func (r *Recorder) Dismiss() {
	r.Events = append(r.Events, Event{Dismiss: true})
}

// Reveals returns the titles of all reveals, in order.
func (r *Recorder) Reveals() []string {
	var out []string
	for _, e := range r.Events {
		if !e.Dismiss {
			out = append(out, e.Title)
		}
	}
	return out
}

// Dismissals counts dismiss calls.
func (r *Recorder) Dismissals() int {
	n := 0
	for _, e := range r.Events {
		if e.Dismiss {
			n++
		}
	}
	return n
}

// Titler sets a window title.
type Titler interface {
	SetTitle(title string)
}

// Target is what a TitlePanel decorates.
type Target interface {
	Reveal(title string, paragraphs []string)
	Dismiss()
}

// TitlePanel forwards to another display and mirrors the revealed title
// into a window title.
type TitlePanel struct {
	next   Target
	window Titler
	base   string
}

// NewTitlePanel decorates next. base is restored on dismiss.
func NewTitlePanel(next Target, window Titler, base string) *TitlePanel {
	return &TitlePanel{next: next, window: window, base: base}
}

func (p *TitlePanel) Reveal(title string, paragraphs []string) {
	p.next.Reveal(title, paragraphs)
	p.window.SetTitle(p.base + " - " + title)
}

func (p *TitlePanel) Dismiss() {
	p.next.Dismiss()
	p.window.SetTitle(p.base)
}
