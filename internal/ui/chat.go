package ui

import (
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/manus/internal/conversation"
	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/keys"
)

// ChatView is the Chat screen: a status line, the scrolling conversation
// and the input box.
type ChatView struct {
	width    int
	height   int
	viewport viewport.Model
	input    textarea.Model
	spinner  Spinner
	typing   bool
	focused  bool
	messages []conversation.Message
	styles   *Styles
	dir      i18n.Direction
	t        i18n.Translator
}

// NewChatView creates the chat screen. maxInput caps the input box.
func NewChatView(s *Styles, t i18n.Translator, maxInput int) *ChatView {
	ti := textarea.New()
	ti.Placeholder = t.T("typeYourMessage")
	ti.CharLimit = maxInput
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	// Enter sends; newlines need a modifier
	ti.KeyMap.InsertNewline.SetKeys(keys.AltEnter, keys.CtrlJ)

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &ChatView{
		viewport: vp,
		input:    ti,
		styles:   s,
		t:        t,
	}
	applyTextareaStyles(&c.input, s)
	return c
}

// applyTextareaStyles configures a textarea without a background so it
// matches the screen.
func applyTextareaStyles(ta *textarea.Model, s *Styles) {
	styles := ta.Styles()

	baseStyle := lipgloss.NewStyle()

	styles.Focused.Base = baseStyle
	styles.Focused.Text = s.InputText
	styles.Focused.Placeholder = s.InputPlaceholder
	styles.Focused.CursorLine = s.InputText
	styles.Focused.Prompt = s.InputText

	styles.Blurred.Base = baseStyle
	styles.Blurred.Text = s.InputText
	styles.Blurred.Placeholder = s.InputPlaceholder
	styles.Blurred.CursorLine = s.InputText
	styles.Blurred.Prompt = s.InputText

	ta.SetStyles(styles)
}

// SetSize sets the chat screen dimensions
func (c *ChatView) SetSize(width, height int) {
	c.width = width
	c.height = height

	viewportHeight := max(height-ChatStatusHeight-InputTotalHeight, 1)
	c.viewport.SetWidth(width)
	c.viewport.SetHeight(viewportHeight)

	// Input width accounts for its own border AND padding
	c.input.SetWidth(max(width-BorderSize-InputPaddingWidth, 1))

	log().Debug("chat resized", "width", width, "height", height, "viewportHeight", viewportHeight)
	c.updateContent()
}

// SetStyles swaps the styles after a theme change.
func (c *ChatView) SetStyles(s *Styles) {
	c.styles = s
	applyTextareaStyles(&c.input, s)
	c.updateContent()
}

// SetDirection re-lays out the conversation for dir.
func (c *ChatView) SetDirection(dir i18n.Direction) {
	c.dir = dir
	c.updateContent()
}

// Retranslate refreshes strings owned by the view after a locale change.
func (c *ChatView) Retranslate() {
	c.input.Placeholder = c.t.T("typeYourMessage")
	c.updateContent()
}

// SetMessages replaces the rendered conversation and scrolls to the end.
func (c *ChatView) SetMessages(msgs []conversation.Message) {
	c.messages = msgs
	c.updateContent()
}

// SetTyping shows or hides the typing indicator. It returns the spinner's
// first tick when the indicator appears.
func (c *ChatView) SetTyping(typing bool) tea.Cmd {
	c.typing = typing
	if typing {
		return c.spinner.Start()
	}
	c.spinner.Stop()
	return nil
}

// IsTyping reports whether the typing indicator is showing.
func (c *ChatView) IsTyping() bool {
	return c.typing
}

// SetFocused sets the focus state
func (c *ChatView) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// Value returns the text in the input box.
func (c *ChatView) Value() string {
	return c.input.Value()
}

// SetValue replaces the text in the input box.
func (c *ChatView) SetValue(s string) {
	c.input.SetValue(s)
}

// ResetInput clears the input box.
func (c *ChatView) ResetInput() {
	c.input.Reset()
}

func (c *ChatView) updateContent() {
	if c.width == 0 {
		return
	}
	c.viewport.SetContent(RenderMessages(c.messages, c.width, c.styles, c.dir, c.t))
	c.viewport.GotoBottom()
}

// Update handles messages
func (c *ChatView) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(StopwatchTickMsg); ok {
		return c.spinner.Advance()
	}

	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
		switch keyMsg.String() {
		case keys.PgUp, keys.PgDown, keys.CtrlUp, keys.CtrlDown, keys.Home, keys.End:
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return cmd
		}
		if !c.focused {
			return nil
		}
		// Key events stay out of the viewport so typing doesn't scroll
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if c.focused {
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// statusLine renders the assistant name with its online or typing state.
func (c *ChatView) statusLine() string {
	name := c.styles.HeaderTitle.Render(c.t.T("manusAI"))
	state := joinRow(c.dir, " ", c.styles.OnlineDot.Render("●"), c.styles.Muted.Render(c.t.T("online")))
	if c.typing {
		state = joinRow(c.dir, " ", c.styles.TypingDot.Render(c.spinner.View()), c.styles.Muted.Render(c.t.T("typing")))
	}
	avatar := c.styles.Avatar.Render(AssistantAvatar)
	return lipgloss.PlaceHorizontal(c.width, leading(c.dir), joinRow(c.dir, " ", avatar, name, state))
}

// View renders the chat screen
func (c *ChatView) View() string {
	inputStyle := c.styles.ChatInput
	if c.focused {
		inputStyle = c.styles.ChatInputFocus
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		c.statusLine(),
		c.viewport.View(),
		inputArea,
	)
}
