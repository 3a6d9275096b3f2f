package ui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/keys"
	"github.com/zhubert/manus/internal/tasks"
)

// TasksView is the Tasks screen: filter chips over a list of task cards.
// The store belongs to this screen; the view only reads it and tracks which
// filter and card are selected.
type TasksView struct {
	width      int
	height     int
	store      *tasks.Store
	filter     int // 0 is "all", otherwise index+1 into tasks.Statuses
	selected   int
	offset     int
	refreshing bool
	spinner    Spinner
	styles     *Styles
	dir        i18n.Direction
	t          i18n.Translator
	now        func() time.Time
}

// NewTasksView creates the tasks screen over store.
func NewTasksView(store *tasks.Store, s *Styles, t i18n.Translator) *TasksView {
	return &TasksView{
		store:  store,
		styles: s,
		t:      t,
		now:    time.Now,
	}
}

// SetSize sets the screen dimensions
func (v *TasksView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SetStyles swaps the styles after a theme change.
func (v *TasksView) SetStyles(s *Styles) {
	v.styles = s
}

// SetDirection sets the reading direction.
func (v *TasksView) SetDirection(dir i18n.Direction) {
	v.dir = dir
}

// SetClock replaces the time source used for durations.
func (v *TasksView) SetClock(now func() time.Time) {
	v.now = now
}

// Filter returns the active filter.
func (v *TasksView) Filter() tasks.Filter {
	if v.filter == 0 {
		return tasks.FilterAll
	}
	return tasks.Only(tasks.Statuses[v.filter-1])
}

// CycleFilter moves the filter selection by delta, wrapping around.
func (v *TasksView) CycleFilter(delta int) {
	n := len(tasks.Statuses) + 1
	v.filter = ((v.filter+delta)%n + n) % n
	v.selected = 0
	v.offset = 0
}

// Visible returns the tasks that pass the active filter.
func (v *TasksView) Visible() []tasks.Task {
	return v.store.Filter(v.Filter())
}

// Selected returns the highlighted task.
func (v *TasksView) Selected() (tasks.Task, bool) {
	visible := v.Visible()
	if len(visible) == 0 {
		return tasks.Task{}, false
	}
	return visible[min(v.selected, len(visible)-1)], true
}

// MoveSelection moves the highlight by delta, clamped to the list.
func (v *TasksView) MoveSelection(delta int) {
	n := len(v.Visible())
	if n == 0 {
		v.selected = 0
		return
	}
	v.selected = min(max(v.selected+delta, 0), n-1)
}

// SetRefreshing shows or hides the refresh spinner.
func (v *TasksView) SetRefreshing(on bool) tea.Cmd {
	v.refreshing = on
	if on {
		return v.spinner.Start()
	}
	v.spinner.Stop()
	return nil
}

// IsRefreshing reports whether a refresh is in progress.
func (v *TasksView) IsRefreshing() bool {
	return v.refreshing
}

// Update handles navigation keys and spinner ticks.
func (v *TasksView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case StopwatchTickMsg:
		return v.spinner.Advance()
	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.Up, "k":
			v.MoveSelection(-1)
		case keys.Down, "j":
			v.MoveSelection(1)
		case keys.Left, "h":
			v.CycleFilter(v.visualDelta(-1))
		case keys.Right, "l":
			v.CycleFilter(v.visualDelta(1))
		}
	}
	return nil
}

// visualDelta maps an arrow direction to a logical step; in RTL the chips
// run right to left.
func (v *TasksView) visualDelta(d int) int {
	if v.dir == i18n.RTL {
		return -d
	}
	return d
}

func (v *TasksView) renderChips() string {
	counts := v.store.Counts()
	labels := []string{fmt.Sprintf("%s %d", v.t.T("filterAll"), v.store.Len())}
	for _, st := range tasks.Statuses {
		labels = append(labels, fmt.Sprintf("%s %s %d", StatusGlyph(st), v.t.T(StatusKey(st)), counts[st]))
	}
	chips := make([]string, len(labels))
	for i, l := range labels {
		style := v.styles.Chip
		if i == v.filter {
			style = v.styles.ChipActive
		}
		chips[i] = style.Render(l)
	}
	return lipgloss.PlaceHorizontal(v.width, leading(v.dir), joinRow(v.dir, " ", chips...))
}

func (v *TasksView) renderTitle() string {
	title := v.styles.ScreenTitle.Render(v.t.T("tasks"))
	if v.refreshing {
		title = joinRow(v.dir, " ", title, v.styles.StatusLoading.Render(v.spinner.View()+" "+v.t.T("refreshing")))
	}
	subtitle := v.styles.ScreenSubtitle.Render(v.t.T("tasksHeaderSubtitle"))
	return lipgloss.NewStyle().Width(v.width).Align(leading(v.dir)).Render(title + "\n" + subtitle)
}

// View renders the tasks screen
func (v *TasksView) View() string {
	header := lipgloss.JoinVertical(lipgloss.Left, v.renderTitle(), v.renderChips(), "")
	listHeight := max(v.height-lipgloss.Height(header), 1)

	visible := v.Visible()
	var body string
	if len(visible) == 0 {
		empty := v.styles.CardTitle.Render(v.t.T("noTasksFound")) + "\n" + v.styles.Empty.Render(v.t.T("noTasksSubtitle"))
		body = lipgloss.Place(v.width, listHeight, lipgloss.Center, lipgloss.Center, empty)
	} else {
		body = v.renderList(visible, listHeight)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// renderList renders the cards that fit in height, scrolled so the
// selection stays on screen.
func (v *TasksView) renderList(visible []tasks.Task, height int) string {
	now := v.now()
	sel := min(v.selected, len(visible)-1)

	cards := make([]string, len(visible))
	for i, task := range visible {
		cards[i] = RenderTaskCard(task, v.width, v.styles, v.dir, v.t, now, i == sel)
	}

	if sel < v.offset {
		v.offset = sel
	}
	for v.offset < sel && linesBetween(cards, v.offset, sel) > height {
		v.offset++
	}

	var out []string
	used := 0
	for i := v.offset; i < len(cards); i++ {
		h := lipgloss.Height(cards[i])
		if used+h > height && len(out) > 0 {
			break
		}
		out = append(out, cards[i])
		used += h
	}
	return strings.Join(out, "\n")
}

// linesBetween is the height of cards[from..to] inclusive.
func linesBetween(cards []string, from, to int) int {
	n := 0
	for i := from; i <= to; i++ {
		n += lipgloss.Height(cards[i])
	}
	return n
}
