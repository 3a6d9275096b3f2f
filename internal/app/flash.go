package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/ui"
)

// ShowFlash puts text in the footer and starts its dismiss timer.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// flash shows the translation of key. The text is resolved now, so a later
// language switch does not change a flash already on screen.
func (m *Model) flash(flashType ui.FlashType, key string, params ...i18n.Params) tea.Cmd {
	return m.ShowFlash(m.locale.T(key, params...), flashType)
}

func (m *Model) flashInfo(key string, params ...i18n.Params) tea.Cmd {
	return m.flash(ui.FlashInfo, key, params...)
}

func (m *Model) flashSuccess(key string, params ...i18n.Params) tea.Cmd {
	return m.flash(ui.FlashSuccess, key, params...)
}

// flashComingSoon answers settings that have no screen yet. feature is the
// translation key of the setting's label.
func (m *Model) flashComingSoon(feature string) tea.Cmd {
	return m.flashInfo("comingSoon", i18n.Params{"feature": m.locale.T(feature)})
}
