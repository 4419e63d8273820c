package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lexcosmos/internal/proximity"
)

var (
	_ proximity.Display = (*LogPanel)(nil)
	_ proximity.Display = (*Recorder)(nil)
	_ proximity.Display = (*TitlePanel)(nil)
)

func TestLogPanel(t *testing.T) {
	p := NewLogPanel()
	_, ok := p.Current()
	assert.False(t, ok)

	paras := []string{"one", "two"}
	p.Reveal("Art. 6", paras)
	paras[0] = "mutated"

	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "Art. 6", cur.Title)
	assert.Equal(t, []string{"one", "two"}, cur.Paragraphs)

	p.Reveal("Art. 7", nil)
	cur, _ = p.Current()
	assert.Equal(t, "Art. 7", cur.Title)

	p.Dismiss()
	_, ok = p.Current()
	assert.False(t, ok)
	p.Dismiss()
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Reveal("a", []string{"x"})
	r.Dismiss()
	r.Reveal("b", nil)

	assert.Equal(t, []string{"a", "b"}, r.Reveals())
	assert.Equal(t, 1, r.Dismissals())
	assert.Len(t, r.Events, 3)
	assert.True(t, r.Events[1].Dismiss)
}

type fakeWindow struct{ title string }

func (w *fakeWindow) SetTitle(s string) { w.title = s }

func TestTitlePanel(t *testing.T) {
	var rec Recorder
	w := &fakeWindow{title: "LexCosmos"}
	p := NewTitlePanel(&rec, w, "LexCosmos")

	p.Reveal("Art. 9", []string{"risk"})
	assert.Equal(t, "LexCosmos - Art. 9", w.title)
	assert.Equal(t, []string{"Art. 9"}, rec.Reveals())

	p.Dismiss()
	assert.Equal(t, "LexCosmos", w.title)
	assert.Equal(t, 1, rec.Dismissals())
}
