package page

var (
	homeHeader         = accessibilityID("homeHeader", "nav-home")
	downloadCardButton = accessibilityID("downloadCardButton", "downloadCard")
	settingsButton     = accessibilityID("settingsButton", "settings")
)

// HomePage lists the wallet's credentials.
type HomePage struct {
	base *BasePage
}

// NewHomePage returns the home page object.
func NewHomePage(base *BasePage) *HomePage {
	return &HomePage{base: base}
}

// Screen implements Page.
func (p *HomePage) Screen() Screen { return Home }

// IsLoaded implements Page.
func (p *HomePage) IsLoaded() (bool, error) {
	return p.base.IsElementDisplayed(homeHeader)
}

// IsDownloadCardButtonDisplayed reports whether the download card button is visible.
func (p *HomePage) IsDownloadCardButtonDisplayed() (bool, error) {
	return p.base.IsElementDisplayed(downloadCardButton)
}

// ClickOnSettingsButton opens settings.
func (p *HomePage) ClickOnSettingsButton() (*SettingsPage, error) {
	if err := p.base.ClickOnElement(settingsButton); err != nil {
		return nil, err
	}
	return NewSettingsPage(p.base), nil
}
