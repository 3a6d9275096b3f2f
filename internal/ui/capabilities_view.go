package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/manus/internal/capabilities"
	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/keys"
)

// Selection is an entry on the Capabilities screen that can start a chat.
type Selection struct {
	Title   string
	Prefill string
}

// CapabilitiesView is the Capabilities screen: a search box, category chips,
// the matching capabilities and the quick start prompts.
type CapabilitiesView struct {
	width    int
	height   int
	search   textinput.Model
	category int // 0 is "all", otherwise index+1 into capabilities.Categories()
	selected int
	offset   int
	dark     bool
	styles   *Styles
	dir      i18n.Direction
	t        i18n.Translator
}

// NewCapabilitiesView creates the capabilities screen.
func NewCapabilitiesView(s *Styles, t i18n.Translator) *CapabilitiesView {
	ti := textinput.New()
	ti.Placeholder = t.T("searchCapabilities")
	ti.CharLimit = SearchInputCharLimit
	ti.Prompt = "⌕ "

	return &CapabilitiesView{
		search: ti,
		styles: s,
		t:      t,
		dark:   s.Palette.Name.IsDark(),
	}
}

// SetSize sets the screen dimensions
func (v *CapabilitiesView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.search.SetWidth(max(width-BorderSize-InputPaddingWidth-2, 1))
}

// SetStyles swaps the styles after a theme change.
func (v *CapabilitiesView) SetStyles(s *Styles) {
	v.styles = s
	v.dark = s.Palette.Name.IsDark()
}

// SetDirection sets the reading direction.
func (v *CapabilitiesView) SetDirection(dir i18n.Direction) {
	v.dir = dir
}

// Retranslate refreshes strings owned by the view after a locale change.
func (v *CapabilitiesView) Retranslate() {
	v.search.Placeholder = v.t.T("searchCapabilities")
}

// SearchFocused reports whether keystrokes go to the search box.
func (v *CapabilitiesView) SearchFocused() bool {
	return v.search.Focused()
}

// FocusSearch moves keystrokes to the search box.
func (v *CapabilitiesView) FocusSearch() tea.Cmd {
	return v.search.Focus()
}

// BlurSearch returns keystrokes to list navigation.
func (v *CapabilitiesView) BlurSearch() {
	v.search.Blur()
}

// Query returns the search text.
func (v *CapabilitiesView) Query() string {
	return v.search.Value()
}

// SetQuery replaces the search text.
func (v *CapabilitiesView) SetQuery(q string) {
	v.search.SetValue(q)
	v.selected = 0
	v.offset = 0
}

// Category returns the selected category; ok is false for "all".
func (v *CapabilitiesView) Category() (capabilities.Category, bool) {
	if v.category == 0 {
		return "", false
	}
	return capabilities.Categories()[v.category-1], true
}

// CycleCategory moves the category selection by delta, wrapping around.
func (v *CapabilitiesView) CycleCategory(delta int) {
	n := len(capabilities.Categories()) + 1
	v.category = ((v.category+delta)%n + n) % n
	v.selected = 0
	v.offset = 0
}

// Visible returns the capabilities matching the query and category. A query
// ranks results by match quality; otherwise catalog order is kept.
func (v *CapabilitiesView) Visible() []capabilities.Capability {
	var list []capabilities.Capability
	if strings.TrimSpace(v.search.Value()) != "" {
		list = capabilities.Search(v.search.Value(), v.t)
	} else {
		list = capabilities.All()
	}
	cat, ok := v.Category()
	if !ok {
		return list
	}
	var out []capabilities.Capability
	for _, c := range list {
		if c.Category == cat {
			out = append(out, c)
		}
	}
	return out
}

// entries is the selectable list: visible capabilities, then quick starts.
func (v *CapabilitiesView) entries() []Selection {
	var out []Selection
	for _, c := range v.Visible() {
		out = append(out, Selection{Title: v.t.T(c.TitleKey), Prefill: capabilities.PrefillFor(c, v.t)})
	}
	for _, q := range capabilities.QuickStarts() {
		out = append(out, Selection{Title: v.t.T(q.LabelKey), Prefill: q.Prefill(v.t)})
	}
	return out
}

// Selected returns the highlighted entry.
func (v *CapabilitiesView) Selected() (Selection, bool) {
	entries := v.entries()
	if len(entries) == 0 {
		return Selection{}, false
	}
	return entries[min(v.selected, len(entries)-1)], true
}

// MoveSelection moves the highlight by delta, clamped to the list.
func (v *CapabilitiesView) MoveSelection(delta int) {
	n := len(v.entries())
	v.selected = min(max(v.selected+delta, 0), max(n-1, 0))
}

// Update handles search input and navigation.
func (v *CapabilitiesView) Update(msg tea.Msg) tea.Cmd {
	if v.search.Focused() {
		if k, ok := msg.(tea.KeyPressMsg); ok {
			switch k.String() {
			case keys.Escape, keys.Enter, keys.Down:
				v.search.Blur()
				return nil
			}
		}
		before := v.search.Value()
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		if v.search.Value() != before {
			v.selected = 0
			v.offset = 0
		}
		return cmd
	}

	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "/":
			return v.search.Focus()
		case keys.Up, "k":
			v.MoveSelection(-1)
		case keys.Down, "j":
			v.MoveSelection(1)
		case keys.Left, "h":
			v.CycleCategory(v.visualDelta(-1))
		case keys.Right, "l":
			v.CycleCategory(v.visualDelta(1))
		}
	}
	return nil
}

func (v *CapabilitiesView) visualDelta(d int) int {
	if v.dir == i18n.RTL {
		return -d
	}
	return d
}

func (v *CapabilitiesView) renderChips() string {
	labels := []string{v.t.T("filterAll")}
	for _, c := range capabilities.Categories() {
		labels = append(labels, v.t.T(string(c)))
	}
	chips := make([]string, len(labels))
	for i, l := range labels {
		style := v.styles.Chip
		if i == v.category {
			style = v.styles.ChipActive
		}
		chips[i] = style.Render(l)
	}
	return lipgloss.PlaceHorizontal(v.width, leading(v.dir), joinRow(v.dir, " ", chips...))
}

func (v *CapabilitiesView) renderCapability(c capabilities.Capability, selected bool) string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent(v.dark)))
	marker := "  "
	if selected {
		marker = v.styles.ScreenTitle.Render("▸ ")
	}
	title := joinRow(v.dir, " ", accent.Render("▌"), v.styles.CardTitle.Render(v.t.T(c.TitleKey)), v.styles.Muted.Render("· "+v.t.T(string(c.Category))))
	desc := v.styles.Muted.Render(v.t.T(c.DescriptionKey))
	block := lipgloss.NewStyle().Width(max(v.width-2, 1)).Align(leading(v.dir)).Render(title + "\n" + "  " + desc)
	return lipgloss.JoinHorizontal(lipgloss.Top, ordered(v.dir, marker, block)...)
}

// View renders the capabilities screen
func (v *CapabilitiesView) View() string {
	title := v.styles.ScreenTitle.Render(v.t.T("capabilities"))
	subtitle := v.styles.ScreenSubtitle.Render(v.t.T("capabilitiesHeaderSubtitle"))
	heading := lipgloss.NewStyle().Width(v.width).Align(leading(v.dir)).Render(title + "\n" + subtitle)

	searchStyle := v.styles.ChatInput
	if v.search.Focused() {
		searchStyle = v.styles.ChatInputFocus
	}
	search := searchStyle.Width(v.width).Render(v.search.View())

	var rows []string
	visible := v.Visible()
	sel := v.selected
	if len(visible) == 0 {
		rows = append(rows,
			v.styles.CardTitle.Render(v.t.T("noCapabilitiesFound")),
			v.styles.Empty.Render(v.t.T("selectDifferentCategory")),
		)
	}
	for i, c := range visible {
		rows = append(rows, v.renderCapability(c, i == sel))
	}

	rows = append(rows, v.styles.SectionTitle.Render(v.t.T("quickStart")), v.styles.Muted.Render(v.t.T("quickStartDescription")))
	for i, q := range capabilities.QuickStarts() {
		style := v.styles.Chip
		if len(visible)+i == sel {
			style = v.styles.ChipActive
		}
		rows = append(rows, style.Render("→ "+v.t.T(q.LabelKey)))
	}
	for i, r := range rows {
		rows[i] = lipgloss.PlaceHorizontal(v.width, leading(v.dir), r)
	}

	top := lipgloss.JoinVertical(lipgloss.Left, heading, search, v.renderChips(), "")
	list := v.scroll(strings.Split(strings.Join(rows, "\n"), "\n"), max(v.height-lipgloss.Height(top), 1), v.selectedLine(visible))
	return lipgloss.JoinVertical(lipgloss.Left, top, list)
}

// selectedLine approximates the first line of the selected entry so the
// list can keep it on screen.
func (v *CapabilitiesView) selectedLine(visible []capabilities.Capability) int {
	const capabilityLines, emptyLines, quickStartHeader = 2, 2, 3
	if v.selected < len(visible) {
		return v.selected * capabilityLines
	}
	listLines := len(visible) * capabilityLines
	if len(visible) == 0 {
		listLines = emptyLines
	}
	return listLines + quickStartHeader + (v.selected - len(visible))
}

// scroll returns the window of lines of the given height that contains line.
func (v *CapabilitiesView) scroll(lines []string, height, line int) string {
	if line < v.offset {
		v.offset = line
	}
	if line >= v.offset+height {
		v.offset = line - height + 1
	}
	v.offset = min(v.offset, max(len(lines)-height, 0))
	end := min(v.offset+height, len(lines))
	return strings.Join(lines[v.offset:end], "\n")
}
