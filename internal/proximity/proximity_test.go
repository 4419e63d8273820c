package proximity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lexcosmos/pkg/math"
)

type point math.Vec3

func (p *point) Position() math.Vec3 { return math.Vec3(*p) }

type event struct {
	reveal bool
	title  string
}

type recorder struct {
	events []event
}

func (r *recorder) Reveal(title string, _ []string) {
	r.events = append(r.events, event{reveal: true, title: title})
}

func (r *recorder) Dismiss() {
	r.events = append(r.events, event{})
}

func (r *recorder) reveals() int {
	n := 0
	for _, e := range r.events {
		if e.reveal {
			n++
		}
	}
	return n
}

func setup(threshold float32) (*Tracker, *point, *Trigger, *recorder) {
	player := &point{}
	rec := &recorder{}
	tr := NewTracker(player, rec, DefaultHysteresis)
	node := &point{}
	trig := tr.Track(node, NewContent("Article 6", "Art. 6", []string{"p1"}), threshold)
	return tr, player, trig, rec
}

func moveTo(t *testing.T, tr *Tracker, p *point, x float32) {
	t.Helper()
	*p = point{X: x}
	require.NoError(t, tr.Update(1.0/60))
}

func TestRevealOncePerDwell(t *testing.T) {
	tr, player, trig, rec := setup(PlanetThreshold)

	moveTo(t, tr, player, 20)
	assert.Equal(t, Idle, trig.State())
	assert.Empty(t, rec.events)

	moveTo(t, tr, player, 4)
	assert.Equal(t, Revealed, trig.State())
	require.Len(t, rec.events, 1)
	assert.Equal(t, event{reveal: true, title: "Article 6"}, rec.events[0])

	// Loitering inside the trigger does not re-emit.
	for i := 0; i < 100; i++ {
		moveTo(t, tr, player, 1+float32(i%3))
	}
	assert.Equal(t, 1, rec.reveals())
	assert.Same(t, trig, tr.Shown())
}

func TestHysteresisBand(t *testing.T) {
	tr, player, trig, rec := setup(PlanetThreshold)

	moveTo(t, tr, player, 4)
	require.Equal(t, 1, rec.reveals())

	// Between threshold and threshold+hysteresis: still revealed, and
	// re-entering does not re-emit.
	for _, x := range []float32{6, 7, 4, 6.9, 3} {
		moveTo(t, tr, player, x)
		assert.Equal(t, Revealed, trig.State(), "x=%v", x)
	}
	assert.Equal(t, 1, rec.reveals())

	// Exactly at threshold+hysteresis is not beyond it.
	moveTo(t, tr, player, 7)
	assert.Equal(t, Revealed, trig.State())

	moveTo(t, tr, player, 7.5)
	assert.Equal(t, Idle, trig.State())
	require.Len(t, rec.events, 2)
	assert.Equal(t, event{}, rec.events[1], "re-arming dismisses the shown panel")
	assert.Nil(t, tr.Shown())

	// Leaving the band alone does not re-emit; only coming back under does.
	moveTo(t, tr, player, 6)
	assert.Equal(t, 1, rec.reveals())
	moveTo(t, tr, player, 4.9)
	assert.Equal(t, 2, rec.reveals())
}

func TestThresholdIsStrict(t *testing.T) {
	tr, player, trig, rec := setup(MarkerThreshold)
	moveTo(t, tr, player, 10)
	assert.Equal(t, Idle, trig.State())
	moveTo(t, tr, player, 9.99)
	assert.Equal(t, Revealed, trig.State())
	assert.Equal(t, 1, rec.reveals())
}

func TestRearmOnlyDismissesOwnPanel(t *testing.T) {
	player := &point{}
	rec := &recorder{}
	tr := NewTracker(player, rec, DefaultHysteresis)

	a := &point{X: 0}
	b := &point{X: 8}
	ta := tr.Track(a, NewContent("A", "", nil), PlanetThreshold)
	tb := tr.Track(b, NewContent("B", "", nil), PlanetThreshold)

	moveTo(t, tr, player, 2) // near A only
	moveTo(t, tr, player, 6) // A still in band, B revealed
	require.Equal(t, Revealed, ta.State())
	require.Equal(t, Revealed, tb.State())
	assert.Same(t, tb, tr.Shown())

	moveTo(t, tr, player, 12) // A re-arms; B is on display and still in band
	assert.Equal(t, Idle, ta.State())
	assert.Equal(t, Revealed, tb.State())
	assert.Equal(t, []event{{true, "A"}, {true, "B"}}, rec.events)
}

func TestUntrack(t *testing.T) {
	tr, player, trig, rec := setup(PlanetThreshold)
	moveTo(t, tr, player, 1)
	tr.Untrack(trig)

	assert.Zero(t, tr.Len())
	assert.Nil(t, tr.Shown())

	moveTo(t, tr, player, 50)
	moveTo(t, tr, player, 1)
	assert.Equal(t, 1, rec.reveals())
}

func TestNilPlayerIsNoop(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(nil, rec, DefaultHysteresis)
	tr.Track(&point{}, NewContent("A", "", nil), PlanetThreshold)
	require.NoError(t, tr.Update(0.1))
	assert.Empty(t, rec.events)

	tr.SetPlayer(&point{})
	require.NoError(t, tr.Update(0.1))
	assert.Equal(t, 1, rec.reveals())
}

func TestNewContent(t *testing.T) {
	c := NewContent("", "Art. 9", nil)
	assert.Equal(t, "Art. 9", c.Title)
	assert.Equal(t, []string{NoContent}, c.Paragraphs)

	c = NewContent("Article 9 - Risk", "Art. 9", []string{"a", "b"})
	assert.Equal(t, "Article 9 - Risk", c.Title)
	assert.Equal(t, []string{"a", "b"}, c.Paragraphs)
}
