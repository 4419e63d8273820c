// Package proximity reveals content when the player flies close to a node.
package proximity

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lexcosmos/internal/logger"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

// Default trigger distances.
const (
	PlanetThreshold   = 5
	MarkerThreshold   = 10
	DefaultHysteresis = 2
)

// NoContent is shown for nodes without paragraphs.
const NoContent = "No content"

// Display is the overlay collaborator.
type Display interface {
	Reveal(title string, paragraphs []string)
	Dismiss()
}

// Positioner reports a world position.
type Positioner interface {
	Position() math.Vec3
}

// State is the reveal state of a trigger.
type State uint8

const (
	Idle State = iota
	Revealed
)

func (s State) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "idle"
}

// Content is what a trigger reveals.
type Content struct {
	Title      string
	Paragraphs []string
}

// NewContent builds reveal content, falling back to label for a missing
// title and to NoContent for missing paragraphs.
func NewContent(title, label string, paragraphs []string) Content {
	if title == "" {
		title = label
	}
	if len(paragraphs) == 0 {
		paragraphs = []string{NoContent}
	}
	return Content{Title: title, Paragraphs: paragraphs}
}

// Trigger is one tracked node.
type Trigger struct {
	Content   Content
	Threshold float32
	source    Positioner
	state     State
}

// State returns the trigger state.
func (t *Trigger) State() State {
	return t.state
}

// Tracker runs the Idle/Revealed state machine for every trigger. A
// trigger reveals once on entering its threshold and re-arms only after
// the player leaves threshold+hysteresis.
type Tracker struct {
	player     Positioner
	display    Display
	hysteresis float32
	triggers   []*Trigger
	shown      *Trigger
}

// NewTracker creates a tracker reading player's position each tick.
func NewTracker(player Positioner, display Display, hysteresis float32) *Tracker {
	return &Tracker{
		player:     player,
		display:    display,
		hysteresis: hysteresis,
	}
}

// Track starts tracking a node.
func (t *Tracker) Track(source Positioner, c Content, threshold float32) *Trigger {
	tr := &Trigger{Content: c, Threshold: threshold, source: source}
	t.triggers = append(t.triggers, tr)
	return tr
}

// Untrack stops tracking a trigger. A panel it revealed stays up.
func (t *Tracker) Untrack(tr *Trigger) {
	for i, x := range t.triggers {
		if x == tr {
			t.triggers = append(t.triggers[:i], t.triggers[i+1:]...)
			break
		}
	}
	if t.shown == tr {
		t.shown = nil
	}
}

// Len returns the number of tracked triggers.
func (t *Tracker) Len() int {
	return len(t.triggers)
}

// Shown returns the trigger whose content is on display, or nil.
func (t *Tracker) Shown() *Trigger {
	return t.shown
}

// SetPlayer switches the position source.
func (t *Tracker) SetPlayer(p Positioner) {
	t.player = p
}

// Update evaluates every trigger against the player position.
func (t *Tracker) Update(float64) error {
	if t.player == nil {
		return nil
	}
	pos := t.player.Position()

	for _, tr := range t.triggers {
		d := pos.Distance(tr.source.Position())

		switch tr.state {
		case Idle:
			if d < tr.Threshold {
				tr.state = Revealed
				t.shown = tr
				logger.Debug("revealing content",
					zap.String("title", tr.Content.Title),
					zap.Float32("distance", d))
				t.display.Reveal(tr.Content.Title, tr.Content.Paragraphs)
			}
		case Revealed:
			if d > tr.Threshold+t.hysteresis {
				tr.state = Idle
				if t.shown == tr {
					t.shown = nil
					t.display.Dismiss()
				}
			}
		}
	}
	return nil
}
