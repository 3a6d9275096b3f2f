package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/keys"
)

// SettingID identifies a row in the profile settings list.
type SettingID int

const (
	SettingDarkMode SettingID = iota
	SettingFollowSystem
	SettingNotifications
	SettingAutoSync
	SettingLanguage
	SettingPrivacy
	SettingHelp
	SettingRate
	SettingSignOut
)

// Settings lists the rows in display order.
var Settings = []SettingID{
	SettingDarkMode,
	SettingFollowSystem,
	SettingNotifications,
	SettingAutoSync,
	SettingLanguage,
	SettingPrivacy,
	SettingHelp,
	SettingRate,
	SettingSignOut,
}

// Key is the translation key for the setting's title. The subtitle is the
// same key with a "Subtitle" suffix.
func (id SettingID) Key() string {
	switch id {
	case SettingDarkMode:
		return "settingDarkMode"
	case SettingFollowSystem:
		return "settingFollowSystem"
	case SettingNotifications:
		return "settingNotifications"
	case SettingAutoSync:
		return "settingAutoSync"
	case SettingLanguage:
		return "settingLanguage"
	case SettingPrivacy:
		return "settingPrivacy"
	case SettingHelp:
		return "settingHelp"
	case SettingRate:
		return "settingRate"
	}
	return "signOut"
}

// IsToggle reports whether the row is an on/off switch.
func (id SettingID) IsToggle() bool {
	switch id {
	case SettingDarkMode, SettingFollowSystem, SettingNotifications, SettingAutoSync:
		return true
	}
	return false
}

// ProfileState is what the profile screen displays; the app owns the
// values and pushes them in after every change.
type ProfileState struct {
	Dark          bool
	FollowSystem  bool
	Notifications bool
	AutoSync      bool
	Language      string
	Version       string
}

// stat is one usage statistic card.
type stat struct {
	key   string
	value string
	icon  string
	color string
}

var usageStats = []stat{
	{"statTasksCompleted", "127", "⚡", "#10B981"},
	{"statConversations", "89", "☺", "#3B82F6"},
	{"statDataProcessed", "2.4 GB", "▦", "#8B5CF6"},
	{"statUptime", "99.8%", "◉", "#F59E0B"},
}

// ProfileView is the Profile screen: account summary, usage statistics and
// the settings list.
type ProfileView struct {
	width    int
	height   int
	selected int
	offset   int
	state    ProfileState
	styles   *Styles
	dir      i18n.Direction
	t        i18n.Translator
}

// NewProfileView creates the profile screen.
func NewProfileView(s *Styles, t i18n.Translator) *ProfileView {
	return &ProfileView{styles: s, t: t}
}

// SetSize sets the screen dimensions
func (v *ProfileView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SetStyles swaps the styles after a theme change.
func (v *ProfileView) SetStyles(s *Styles) {
	v.styles = s
}

// SetDirection sets the reading direction.
func (v *ProfileView) SetDirection(dir i18n.Direction) {
	v.dir = dir
}

// SetState replaces the displayed settings values.
func (v *ProfileView) SetState(st ProfileState) {
	v.state = st
}

// State returns the displayed settings values.
func (v *ProfileView) State() ProfileState {
	return v.state
}

// Selected returns the highlighted setting.
func (v *ProfileView) Selected() SettingID {
	return Settings[v.selected]
}

// Select highlights id.
func (v *ProfileView) Select(id SettingID) {
	for i, s := range Settings {
		if s == id {
			v.selected = i
		}
	}
}

// Update handles navigation keys.
func (v *ProfileView) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case keys.Up, "k":
			v.selected = max(v.selected-1, 0)
		case keys.Down, "j":
			v.selected = min(v.selected+1, len(Settings)-1)
		}
	}
	return nil
}

func (v *ProfileView) value(id SettingID) string {
	on := false
	switch id {
	case SettingDarkMode:
		on = v.state.Dark
	case SettingFollowSystem:
		on = v.state.FollowSystem
	case SettingNotifications:
		on = v.state.Notifications
	case SettingAutoSync:
		on = v.state.AutoSync
	case SettingLanguage:
		return v.styles.CardTitle.Render(v.state.Language + " ›")
	case SettingSignOut:
		return ""
	default:
		return v.styles.Muted.Render("›")
	}
	if on {
		return v.styles.ToggleOn.Render("[●] " + v.t.T("on"))
	}
	return v.styles.Toggle.Render("[ ] " + v.t.T("off"))
}

func (v *ProfileView) renderSetting(id SettingID, selected bool) string {
	inner := max(v.width-4, 10)
	titleStyle := v.styles.CardTitle
	if id == SettingSignOut {
		titleStyle = v.styles.Danger
	}
	title := titleStyle.Render(v.t.T(id.Key()))
	if selected {
		title = joinRow(v.dir, " ", v.styles.ScreenTitle.Render("▸"), title)
	}
	lines := []string{spread(v.dir, inner, title, v.value(id))}
	if id != SettingSignOut {
		lines = append(lines, v.styles.Muted.Render(v.t.T(id.Key()+"Subtitle")))
	}
	return lipgloss.NewStyle().Width(inner).Align(leading(v.dir)).PaddingLeft(2).Render(strings.Join(lines, "\n"))
}

func (v *ProfileView) renderStats() string {
	cardWidth := max((v.width-4)/len(usageStats), 12)
	cards := make([]string, len(usageStats))
	for i, st := range usageStats {
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color(st.color)).Render(st.icon)
		cards[i] = v.styles.Card.Width(cardWidth).Align(lipgloss.Center).Render(
			icon + "\n" + v.styles.CardTitle.Render(st.value) + "\n" + v.styles.Muted.Render(v.t.T(st.key)),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, ordered(v.dir, cards...)...)
}

// View renders the profile screen
func (v *ProfileView) View() string {
	align := lipgloss.NewStyle().Width(v.width).Align(leading(v.dir))

	avatar := v.styles.UserAvatar.Render(UserAvatar)
	account := joinRow(v.dir, " ", avatar, v.styles.ScreenTitle.Render(v.t.T("userName")))
	email := v.styles.Muted.Render(v.t.T("userEmail"))

	var rows []string
	rows = append(rows,
		align.Render(v.styles.ScreenTitle.Render(v.t.T("profile"))),
		align.Render(account+"\n"+email),
		align.Render(v.styles.SectionTitle.Render(v.t.T("usageStatistics"))),
		lipgloss.PlaceHorizontal(v.width, leading(v.dir), v.renderStats()),
		align.Render(v.styles.SectionTitle.Render(v.t.T("settings"))),
	)
	top := strings.Join(rows, "\n")

	var settings []string
	selectedLine, line := 0, 0
	for i, id := range Settings {
		row := lipgloss.PlaceHorizontal(v.width, leading(v.dir), v.renderSetting(id, i == v.selected))
		if i == v.selected {
			selectedLine = line
		}
		line += lipgloss.Height(row)
		settings = append(settings, row)
	}
	footer := v.styles.Muted.Render(v.t.T("footerVersion", i18n.Params{"version": v.state.Version})) + "\n" +
		v.styles.Muted.Render(v.t.T("footerMadeBy"))
	settings = append(settings, "", lipgloss.PlaceHorizontal(v.width, lipgloss.Center, footer))

	// The settings list scrolls beneath the fixed top part
	lines := strings.Split(strings.Join(settings, "\n"), "\n")
	height := max(v.height-lipgloss.Height(top), 3)
	if selectedLine < v.offset {
		v.offset = selectedLine
	}
	if selectedLine+2 > v.offset+height {
		v.offset = selectedLine + 2 - height
	}
	v.offset = max(min(v.offset, len(lines)-height), 0)
	end := min(v.offset+height, len(lines))

	return top + "\n" + strings.Join(lines[v.offset:end], "\n")
}
