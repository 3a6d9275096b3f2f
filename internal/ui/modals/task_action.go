package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/tasks"
)

// actionKeys maps each action to its label key.
var actionKeys = map[tasks.Action]string{
	tasks.ActionPause:    "actionPause",
	tasks.ActionResume:   "actionResume",
	tasks.ActionComplete: "actionComplete",
	tasks.ActionFail:     "actionFail",
}

// ActionKey returns the translation key for an action's label.
func ActionKey(a tasks.Action) string {
	return actionKeys[a]
}

// TaskActionState lets the user pick a status change for one task. Only
// the actions legal for the task's current status are offered.
type TaskActionState struct {
	TaskID    string
	TaskTitle string
	Actions   []tasks.Action

	selected tasks.Action
	form     *huh.Form
	styles   Styles
	t        i18n.Translator
}

func (*TaskActionState) modalState() {}

func (s *TaskActionState) Title() string { return s.t.T("taskActions") }

func (s *TaskActionState) Help() string {
	return "↑/↓ " + s.t.T("hintNavigate") + "  Enter " + s.t.T("hintConfirm") + "  Esc " + s.t.T("hintCancel")
}

func (s *TaskActionState) Render() string {
	title := s.styles.Title.Render(s.Title())
	help := s.styles.Help.Render(s.Help())
	if len(s.Actions) == 0 {
		body := s.styles.Body.Render(s.t.T("noActions"))
		return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *TaskActionState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if s.form == nil {
		return s, nil
	}
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Selected returns the highlighted action; ok is false when the task has
// no legal actions.
func (s *TaskActionState) Selected() (tasks.Action, bool) {
	if len(s.Actions) == 0 {
		return "", false
	}
	return s.selected, true
}

// NewTaskActionState creates the action menu for task.
func NewTaskActionState(task tasks.Task, actions []tasks.Action, styles Styles, t i18n.Translator) *TaskActionState {
	s := &TaskActionState{
		TaskID:    task.ID,
		TaskTitle: task.Title,
		Actions:   actions,
		styles:    styles,
		t:         t,
	}
	if len(actions) == 0 {
		return s
	}
	s.selected = actions[0]

	options := make([]huh.Option[tasks.Action], len(actions))
	for i, a := range actions {
		options[i] = huh.NewOption(t.T(ActionKey(a)), a)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[tasks.Action]().
				Title(t.T("taskActionsFor", i18n.Params{"title": task.Title})).
				Options(options...).
				Value(&s.selected),
		),
	).
		WithTheme(ModalTheme(styles)).
		WithShowHelp(false).
		WithWidth(styles.Width)

	initHuhForm(s.form)
	return s
}
