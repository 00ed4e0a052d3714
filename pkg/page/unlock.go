package page

var (
	unlockMethodHeader      = accessibilityID("unlockMethodHeader", "selectAppUnlockMethod")
	unlockMethodDescription = accessibilityID("unlockMethodDescription", "description")
	usePasscodeButton       = accessibilityID("usePasscodeButton", "usePasscode")
)

// AppUnlockMethodPage asks how the wallet is unlocked.
type AppUnlockMethodPage struct {
	base *BasePage
}

// NewAppUnlockMethodPage returns the unlock method page object.
func NewAppUnlockMethodPage(base *BasePage) *AppUnlockMethodPage {
	return &AppUnlockMethodPage{base: base}
}

// Screen implements Page.
func (p *AppUnlockMethodPage) Screen() Screen { return AppUnlockMethod }

// IsLoaded implements Page.
func (p *AppUnlockMethodPage) IsLoaded() (bool, error) {
	return p.base.IsElementDisplayed(unlockMethodHeader)
}

// GetDescription returns the screen's description text.
func (p *AppUnlockMethodPage) GetDescription() (string, error) {
	return p.base.GetTextFromLocator(unlockMethodDescription)
}

// ClickOnUsePasscodeButton chooses passcode unlock.
func (p *AppUnlockMethodPage) ClickOnUsePasscodeButton() (*SetPasscodePage, error) {
	if err := p.base.ClickOnElement(usePasscodeButton); err != nil {
		return nil, err
	}
	return NewSetPasscodePage(p.base), nil
}
