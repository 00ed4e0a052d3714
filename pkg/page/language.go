package page

var (
	chooseLanguageHeader      = accessibilityID("chooseLanguageHeader", "chooseLanguage")
	chooseLanguageDescription = accessibilityID("chooseLanguageDescription", "chooseLanguageDescription")
	savePreferenceButton      = accessibilityID("savePreferenceButton", "savePreferences")
)

// ChooseLanguagePage is the first screen on a fresh install.
type ChooseLanguagePage struct {
	base *BasePage
}

// NewChooseLanguagePage returns the language selection page object.
func NewChooseLanguagePage(base *BasePage) *ChooseLanguagePage {
	return &ChooseLanguagePage{base: base}
}

// Screen implements Page.
func (p *ChooseLanguagePage) Screen() Screen { return ChooseLanguage }

// IsLoaded implements Page.
func (p *ChooseLanguagePage) IsLoaded() (bool, error) {
	return p.base.IsElementDisplayed(chooseLanguageHeader)
}

// GetDescription returns the screen's description text.
func (p *ChooseLanguagePage) GetDescription() (string, error) {
	return p.base.GetTextFromLocator(chooseLanguageDescription)
}

// ClickOnSavePreference confirms the selected language.
func (p *ChooseLanguagePage) ClickOnSavePreference() (*WelcomePage, error) {
	if err := p.base.ClickOnElement(savePreferenceButton); err != nil {
		return nil, err
	}
	return NewWelcomePage(p.base), nil
}
