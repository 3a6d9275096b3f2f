package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/manus/internal/i18n"
)

func TestNewLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantWidth     int
		wantContent   int
	}{
		{"normal", 120, 40, 120, 40 - HeaderHeight - FooterHeight},
		{"too small is clamped", 10, 5, MinTerminalWidth, MinTerminalHeight - HeaderHeight - FooterHeight},
		{"zero", 0, 0, MinTerminalWidth, MinTerminalHeight - HeaderHeight - FooterHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.width, tt.height)
			if l.ContentWidth != tt.wantWidth {
				t.Errorf("ContentWidth = %d, want %d", l.ContentWidth, tt.wantWidth)
			}
			if l.ContentHeight != tt.wantContent {
				t.Errorf("ContentHeight = %d, want %d", l.ContentHeight, tt.wantContent)
			}
			if l.HeaderHeight+l.ContentHeight+l.FooterHeight != l.TerminalHeight {
				t.Error("header, content and footer should fill the terminal")
			}
		})
	}
}

func TestLayout_InnerSizes(t *testing.T) {
	l := NewLayout(80, 24)
	if got := l.InnerWidth(30); got != 30-BorderSize {
		t.Errorf("InnerWidth = %d", got)
	}
	if got := l.InnerHeight(1); got != 0 {
		t.Errorf("InnerHeight should not go negative, got %d", got)
	}
	if got := l.ScreenBodyHeight(); got != l.ContentHeight-ScreenTitleHeight {
		t.Errorf("ScreenBodyHeight = %d", got)
	}
}

func TestDirectionHelpers(t *testing.T) {
	if got := ordered(i18n.RTL, "a", "b", "c"); strings.Join(got, "") != "cba" {
		t.Errorf("ordered RTL = %v", got)
	}
	if got := ordered(i18n.LTR, "a", "b"); strings.Join(got, "") != "ab" {
		t.Errorf("ordered LTR = %v", got)
	}
	if got := joinRow(i18n.LTR, "-", "a", "", "b"); got != "a-b" {
		t.Errorf("joinRow should skip empty parts, got %q", got)
	}

	line := spread(i18n.RTL, 10, "start", "end")
	if line != "end  start" {
		t.Errorf("spread RTL = %q", line)
	}
	if got := spread(i18n.LTR, 3, "long", "text"); got != "long text" {
		t.Errorf("spread should keep one space when too narrow, got %q", got)
	}
}

func TestSpinner(t *testing.T) {
	var s Spinner
	if s.Running() {
		t.Fatal("zero spinner should be stopped")
	}
	if cmd := s.Advance(); cmd != nil {
		t.Error("stopped spinner should not tick")
	}

	if cmd := s.Start(); cmd == nil {
		t.Fatal("Start should schedule a tick")
	}
	if cmd := s.Start(); cmd != nil {
		t.Error("second Start should not schedule another tick loop")
	}

	first := s.View()
	if cmd := s.Advance(); cmd == nil {
		t.Error("running spinner should keep ticking")
	}
	if s.View() == first {
		t.Error("Advance should change the frame")
	}

	s.Stop()
	if cmd := s.Advance(); cmd != nil {
		t.Error("stopped spinner should drop the pending tick")
	}
}

func TestHeader_TabsAndDirection(t *testing.T) {
	h := NewHeader(testStyles())
	h.SetWidth(60)
	h.SetTitle("Manus AI")
	h.SetTabs([]string{"Chat", "Tasks"})
	h.SetActive(1)

	ltr := ansi.Strip(h.View())
	if w := ansi.StringWidth(ltr); w != 60 {
		t.Errorf("header width = %d, want 60", w)
	}
	if !strings.HasPrefix(ltr, " Manus AI") {
		t.Errorf("LTR title should lead: %q", ltr)
	}
	if strings.Index(ltr, "1 Chat") > strings.Index(ltr, "2 Tasks") {
		t.Errorf("LTR tabs should be in order: %q", ltr)
	}

	h.SetDirection(i18n.RTL)
	rtl := ansi.Strip(h.View())
	if !strings.HasSuffix(rtl, "Manus AI ") {
		t.Errorf("RTL title should sit at the right edge: %q", rtl)
	}
	if strings.Index(rtl, "2 Tasks") > strings.Index(rtl, "1 Chat") {
		t.Errorf("RTL tabs should be mirrored: %q", rtl)
	}
}

func TestContrastText(t *testing.T) {
	if got := contrastText(255, 255, 255); got != "#0F172A" {
		t.Errorf("white background should get dark text, got %s", got)
	}
	if got := contrastText(0, 0, 0); got != "#F8FAFC" {
		t.Errorf("black background should get light text, got %s", got)
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("#7C3AED")
	if r != 0x7C || g != 0x3A || b != 0xED {
		t.Errorf("parseHexColor = %d %d %d", r, g, b)
	}
	if r, g, b := parseHexColor("bogus"); r != 0 || g != 0 || b != 0 {
		t.Error("invalid input should parse to black")
	}
}
