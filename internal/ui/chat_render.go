package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/manus/internal/conversation"
	"github.com/zhubert/manus/internal/i18n"
)

// Compiled regex patterns for markdown parsing
var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	underscoreItalic  = regexp.MustCompile(`(?:^|[^\pL\pN_])_([^_]+)_(?:[^\pL\pN_]|$)`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	numberedPattern   = regexp.MustCompile(`^(\d{1,2})\. `)
)

// Avatars drawn next to the bubbles
const (
	AssistantAvatar = "✦"
	UserAvatar      = "●"
)

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language, styleName string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return strings.TrimRight(buf.String(), "\n")
}

// renderInlineMarkdown applies inline formatting (bold, italic, code, links) to a line
func renderInlineMarkdown(line string, s *Styles) string {
	// Protect code spans from other formatting
	var codeSpans []string
	line = inlineCodePattern.ReplaceAllStringFunc(line, func(match string) string {
		code := inlineCodePattern.FindStringSubmatch(match)[1]
		placeholder := fmt.Sprintf("\x00CODE%d\x00", len(codeSpans))
		codeSpans = append(codeSpans, s.MarkdownInlineCode.Render(code))
		return placeholder
	})

	line = boldPattern.ReplaceAllStringFunc(line, func(match string) string {
		text := boldPattern.FindStringSubmatch(match)[1]
		return s.MarkdownBold.Render(text)
	})

	// Only match underscores at word boundaries (not in identifiers like foo_bar_baz)
	line = underscoreItalic.ReplaceAllStringFunc(line, func(match string) string {
		text := underscoreItalic.FindStringSubmatch(match)[1]
		start := strings.Index(match, "_"+text+"_")
		end := start + len(text) + 2
		return match[:start] + s.MarkdownItalic.Render(text) + match[end:]
	})

	line = linkPattern.ReplaceAllStringFunc(line, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		return s.MarkdownLink.Render(parts[1]) + " (" + s.MarkdownLink.Render(parts[2]) + ")"
	})

	for i, rendered := range codeSpans {
		line = strings.Replace(line, fmt.Sprintf("\x00CODE%d\x00", i), rendered, 1)
	}

	return line
}

// wrapText wraps text to the specified width, handling ANSI escape codes
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, "")
}

// indentContinuation indents every line after the first.
func indentContinuation(text, indent string) string {
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}

// renderMarkdownLine renders a single line with markdown formatting
func renderMarkdownLine(line string, width int, s *Styles) string {
	trimmed := strings.TrimSpace(line)

	// Headers - don't wrap, they should be concise
	switch {
	case strings.HasPrefix(trimmed, "### "):
		return s.MarkdownH3.Render(strings.TrimPrefix(trimmed, "### "))
	case strings.HasPrefix(trimmed, "## "):
		return s.MarkdownH2.Render(strings.TrimPrefix(trimmed, "## "))
	case strings.HasPrefix(trimmed, "# "):
		return s.MarkdownH1.Render(strings.TrimPrefix(trimmed, "# "))
	}

	if trimmed == "---" || trimmed == "***" || trimmed == "___" {
		return s.MarkdownHR.Render(strings.Repeat("─", min(width, 32)))
	}

	if strings.HasPrefix(trimmed, "> ") {
		content := strings.TrimPrefix(trimmed, "> ")
		return s.MarkdownBlockquote.Render(wrapText(renderInlineMarkdown(content, s), width-4))
	}

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		bullet := s.MarkdownListBullet.Render("•")
		wrapped := wrapText(renderInlineMarkdown(trimmed[2:], s), width-4)
		return "  " + bullet + " " + indentContinuation(wrapped, "    ")
	}

	if m := numberedPattern.FindStringSubmatch(trimmed); m != nil {
		number := s.MarkdownListBullet.Render(m[1] + ".")
		wrapped := wrapText(renderInlineMarkdown(trimmed[len(m[0]):], s), width-6)
		return "  " + number + " " + indentContinuation(wrapped, "     ")
	}

	return wrapText(renderInlineMarkdown(line, s), width)
}

// renderMarkdown renders markdown content with syntax-highlighted code blocks
func renderMarkdown(content string, width int, s *Styles) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var result strings.Builder
	inCodeBlock := false
	codeBlockLang := ""
	var codeBlockContent strings.Builder

	flushCode := func() {
		if result.Len() > 0 {
			result.WriteString("\n")
		}
		result.WriteString(highlightCode(codeBlockContent.String(), codeBlockLang, s.Palette.CodeStyle))
		result.WriteString("\n")
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "```") {
			if !inCodeBlock {
				inCodeBlock = true
				codeBlockLang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
				codeBlockContent.Reset()
			} else {
				inCodeBlock = false
				flushCode()
				codeBlockLang = ""
			}
			continue
		}

		if inCodeBlock {
			if codeBlockContent.Len() > 0 {
				codeBlockContent.WriteString("\n")
			}
			codeBlockContent.WriteString(line)
			continue
		}
		result.WriteString(renderMarkdownLine(line, width, s))
		result.WriteString("\n")
	}

	// Unterminated fence: show what we have
	if inCodeBlock {
		flushCode()
	}

	return strings.TrimRight(result.String(), "\n")
}

// statusIndicator renders the delivery dot shown on user bubbles.
func statusIndicator(st conversation.Status, s *Styles, t i18n.Translator) string {
	c := s.ColorTextMuted
	label := ""
	switch st {
	case conversation.StatusSending:
		c = s.ColorWarning
	case conversation.StatusSent:
		c = s.ColorInfo
	case conversation.StatusDelivered:
		c = s.ColorSuccess
	case conversation.StatusError:
		c = s.ColorError
		label = " " + t.T("messageError")
	}
	return lipgloss.NewStyle().
		Foreground(c).
		Background(lipgloss.Color(s.Palette.UserBubble)).
		Render("●" + label)
}

// RenderMessageBubble renders one chat message for a chat column of the
// given width. User messages sit at the trailing edge and assistant messages
// at the leading edge, so an RTL layout mirrors them without any transform.
func RenderMessageBubble(msg conversation.Message, width int, s *Styles, dir i18n.Direction, t i18n.Translator) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	bubbleStyle := s.BotBubble
	avatar := s.Avatar.Render(AssistantAvatar)
	timeStyle := s.Timestamp
	if msg.IsUser {
		bubbleStyle = s.UserBubble
		avatar = s.UserAvatar.Render(UserAvatar)
		timeStyle = s.UserTimestamp
	}

	maxBubble := width*BubbleWidthPercent/100 - lipgloss.Width(avatar) - 1
	inner := max(maxBubble-bubbleStyle.GetHorizontalFrameSize(), 8)

	body := renderMarkdown(msg.Text, inner, s)

	meta := timeStyle.Render(msg.Timestamp.Format(TimestampFormat))
	if msg.IsUser {
		meta = joinRow(dir, " ", meta, statusIndicator(msg.Status, s, t))
	}

	blockWidth := max(lipgloss.Width(body), lipgloss.Width(meta))
	body = lipgloss.NewStyle().Width(blockWidth).Align(leading(dir)).Render(body)
	meta = lipgloss.PlaceHorizontal(blockWidth, trailing(dir), meta)
	bubble := bubbleStyle.Render(body + "\n" + meta)

	parts := []string{avatar, " ", bubble}
	pos := leading(dir)
	if msg.IsUser {
		parts = []string{bubble, " ", avatar}
		pos = trailing(dir)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, ordered(dir, parts...)...)
	return lipgloss.PlaceHorizontal(width, pos, row)
}

// RenderMessages renders a whole conversation, one blank line between bubbles.
func RenderMessages(msgs []conversation.Message, width int, s *Styles, dir i18n.Direction, t i18n.Translator) string {
	rendered := make([]string, 0, len(msgs))
	for _, m := range msgs {
		rendered = append(rendered, RenderMessageBubble(m, width, s, dir, t))
	}
	return strings.Join(rendered, "\n\n")
}
