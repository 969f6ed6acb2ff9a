package tui

import (
	"fmt"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/bitbreak/minicade/internal/core"
	"github.com/bitbreak/minicade/internal/registry"
	"github.com/bitbreak/minicade/internal/session"
)

// Seconds the total score takes to count up.
const countUpSeconds = 2.0

// SummaryModel renders the end-of-session screen: per-game results and
// a total score that counts up with an easing curve.
type SummaryModel struct {
	sess     *session.Session
	config   core.RuntimeConfig
	tween    *gween.Tween
	shown    float32 // Animated total currently displayed
	finished bool
}

// NewSummaryModel creates a summary for a finished session.
func NewSummaryModel(sess *session.Session, cfg core.RuntimeConfig) SummaryModel {
	return SummaryModel{
		sess:   sess,
		config: cfg,
		tween:  gween.New(0, float32(sess.TotalScore()), countUpSeconds, ease.OutQuad),
	}
}

// Tick advances the count-up animation by one frame.
func (m *SummaryModel) Tick() {
	if m.finished {
		return
	}
	dt := float32(1.0) / float32(m.config.TickRate)
	m.shown, m.finished = m.tween.Update(dt)
}

// Skip jumps the count-up straight to the final total.
func (m *SummaryModel) Skip() {
	m.shown = float32(m.sess.TotalScore())
	m.finished = true
}

// Done reports whether the count-up has settled.
func (m *SummaryModel) Done() bool {
	return m.finished
}

// View renders the summary screen.
func (m *SummaryModel) View() string {
	var b strings.Builder
	width := m.config.ScreenW

	b.WriteString("\n\n")
	b.WriteString(centerText("SESSION COMPLETE", width))
	b.WriteString("\n\n")

	for i, r := range m.sess.Results() {
		title := r.GameID
		if info, ok := registry.Get(r.GameID); ok {
			title = info.Title
		}
		status := "finished"
		if !r.Completed {
			status = "time up"
		}
		line := fmt.Sprintf("%d. %-24s %6d  (%s)", i+1, title, r.Score, status)
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("TOTAL: %d", int(m.shown)), width))
	b.WriteString("\n\n")

	if m.finished {
		b.WriteString(centerText("Press any key to exit", width))
		b.WriteString("\n")
	}

	return b.String()
}
