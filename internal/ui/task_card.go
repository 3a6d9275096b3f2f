package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/tasks"
)

// typeGlyphs mark a card with the kind of work it tracks.
var typeGlyphs = map[tasks.Type]string{
	tasks.TypeResearch: "⌕",
	tasks.TypeCoding:   "⌨",
	tasks.TypeAnalysis: "▤",
	tasks.TypeWriting:  "✎",
	tasks.TypeGeneral:  "◆",
}

// statusGlyphs are shown next to the status label.
var statusGlyphs = map[tasks.Status]string{
	tasks.StatusRunning:   "▶",
	tasks.StatusCompleted: "✓",
	tasks.StatusPaused:    "‖",
	tasks.StatusFailed:    "✕",
}

// StatusKey is the translation key for a status label.
func StatusKey(st tasks.Status) string {
	return "status" + capitalize(string(st))
}

// TypeKey is the translation key for a task type label.
func TypeKey(t tasks.Type) string {
	return "type" + capitalize(string(t))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TypeGlyph returns the glyph for a task type.
func TypeGlyph(t tasks.Type) string {
	if g, ok := typeGlyphs[t]; ok {
		return g
	}
	return typeGlyphs[tasks.TypeGeneral]
}

// StatusGlyph returns the glyph for a task status.
func StatusGlyph(st tasks.Status) string {
	return statusGlyphs[st]
}

// progressBar draws a running task's completion.
func progressBar(progress, width int, s *Styles) string {
	filled := progress * width / 100
	return s.ProgressFill.Render(strings.Repeat("█", filled)) +
		s.ProgressRest.Render(strings.Repeat("░", width-filled))
}

// RenderTaskCard renders one task for a list of the given width. Only running
// tasks show a progress bar; the footer shows the elapsed duration and, for
// running tasks with an estimate, the time left or "Overtime".
func RenderTaskCard(task tasks.Task, width int, s *Styles, dir i18n.Direction, t i18n.Translator, now time.Time, selected bool) string {
	card := s.Card
	if selected {
		card = s.CardSelected
	}
	inner := max(width-card.GetHorizontalFrameSize(), 10)

	typeStyle := lipgloss.NewStyle().Foreground(s.TypeColor(task.Type)).Bold(true)
	title := joinRow(dir, " ", typeStyle.Render(TypeGlyph(task.Type)), s.CardTitle.Render(task.Title))

	badge := lipgloss.NewStyle().
		Foreground(s.StatusColor(task.Status)).
		Background(s.StatusBackground(task.Status)).
		Padding(0, 1).
		Render(joinRow(dir, " ", StatusGlyph(task.Status), t.T(StatusKey(task.Status))))

	lines := []string{spread(dir, inner, title, badge)}

	if task.Description != "" {
		lines = append(lines, s.Muted.Render(wrapText(task.Description, inner)))
	}

	if task.Status == tasks.StatusRunning {
		barWidth := min(ProgressBarWidth, max(inner-6, 1))
		percent := s.CardTitle.Render(strconv.Itoa(task.Progress) + "%")
		lines = append(lines, joinRow(dir, " ", progressBar(task.Progress, barWidth, s), percent))
	}

	if task.Status == tasks.StatusFailed && task.Details != "" {
		lines = append(lines, s.StatusError.Render(wrapText(task.Details, inner)))
	}

	duration := t.T("duration", i18n.Params{"duration": tasks.FormatDuration(tasks.Elapsed(task, now))})
	left := ""
	if mins, ok := tasks.Remaining(task, now); ok {
		if mins > 0 {
			left = s.Muted.Render(t.T("estimatedLeft", i18n.Params{"minutes": fmt.Sprint(mins)}))
		} else {
			left = s.StatusError.Render(t.T("overtime"))
		}
	}
	kind := s.Muted.Render(t.T(TypeKey(task.Type)))
	lines = append(lines, spread(dir, inner, joinRow(dir, " · ", kind, s.Muted.Render(duration)), left))

	body := lipgloss.NewStyle().Width(inner).Align(leading(dir)).Render(strings.Join(lines, "\n"))
	return card.Render(body)
}
