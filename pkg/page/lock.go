package page

var (
	unlockApplicationHeader = accessibilityID("unlockApplicationHeader", "unlockApplicationTitle")
	unlockApplicationButton = accessibilityID("unlockApplicationButton", "unlockApplication")
)

// UnlockApplicationPage is shown after logout until the user unlocks the app.
type UnlockApplicationPage struct {
	base *BasePage
}

// NewUnlockApplicationPage returns the unlock application page object.
func NewUnlockApplicationPage(base *BasePage) *UnlockApplicationPage {
	return &UnlockApplicationPage{base: base}
}

// Screen implements Page.
func (p *UnlockApplicationPage) Screen() Screen { return UnlockApplication }

// IsLoaded implements Page.
func (p *UnlockApplicationPage) IsLoaded() (bool, error) {
	return p.base.IsElementDisplayed(unlockApplicationHeader)
}

// IsUnlockButtonDisplayed reports whether the unlock button is visible.
func (p *UnlockApplicationPage) IsUnlockButtonDisplayed() (bool, error) {
	return p.base.IsElementDisplayed(unlockApplicationButton)
}
