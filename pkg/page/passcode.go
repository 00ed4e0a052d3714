package page

var (
	setPasscodeHeader      = accessibilityID("setPasscodeHeader", "setPasscode")
	setPasscodeDescription = accessibilityID("setPasscodeDescription", "setPasscodeDescription")
)

// SetPasscodePage prompts for a new passcode.
type SetPasscodePage struct {
	base *BasePage
}

// NewSetPasscodePage returns the set passcode page object.
func NewSetPasscodePage(base *BasePage) *SetPasscodePage {
	return &SetPasscodePage{base: base}
}

// Screen implements Page.
func (p *SetPasscodePage) Screen() Screen { return SetPasscode }

// IsLoaded implements Page.
func (p *SetPasscodePage) IsLoaded() (bool, error) {
	return p.base.IsElementDisplayed(setPasscodeHeader)
}

// GetDescription returns the screen's description text.
func (p *SetPasscodePage) GetDescription() (string, error) {
	return p.base.GetTextFromLocator(setPasscodeDescription)
}
