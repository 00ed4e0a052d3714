package page

import "github.com/mosip/injitest/pkg/locator"

var (
	settingsHeader     = accessibilityID("settingsHeader", "settingsScreen")
	appID              = accessibilityID("appID", "appIdTitle")
	settingsBackButton = accessibilityID("settingsBackButton", "arrowLeft")
	languageButton     = accessibilityID("languageButton", "languageTitle")
	receiveCardButton  = accessibilityID("receiveCardButton", "receiveCard")
	tourGuideButton    = accessibilityID("tourGuideButton", "injiTourGuide")
	logoutButton       = accessibilityID("logoutButton", "logout")
)

var biometricUnlockToggle = locator.Element{
	Name: "biometricUnlockToggle",
	Selectors: locator.Selectors{
		locator.Android: locator.AccessibilityID("biometricToggle"),
		locator.IOS:     locator.ClassChain("**/XCUIElementTypeSwitch[`name == \"biometricToggle\"`]"),
	},
}

// SettingsPage shows app settings: the app ID, biometric unlock, language,
// receiving a card, the intro tour and logout.
type SettingsPage struct {
	base *BasePage
}

// NewSettingsPage returns the settings page object.
func NewSettingsPage(base *BasePage) *SettingsPage {
	return &SettingsPage{base: base}
}

// Screen implements Page.
func (p *SettingsPage) Screen() Screen { return Settings }

// IsLoaded implements Page.
func (p *SettingsPage) IsLoaded() (bool, error) {
	return p.base.IsElementDisplayed(settingsHeader)
}

// GetAppID returns the app ID label text.
func (p *SettingsPage) GetAppID() (string, error) {
	return p.base.GetTextFromLocator(appID)
}

// IsBiometricUnlockToggleDisplayed reports whether the biometric toggle is visible.
func (p *SettingsPage) IsBiometricUnlockToggleDisplayed() (bool, error) {
	return p.base.IsElementDisplayed(biometricUnlockToggle)
}

// ClickOnBiometricUnlockToggle flips biometric unlock. The screen stays Settings.
func (p *SettingsPage) ClickOnBiometricUnlockToggle() error {
	return p.base.ClickOnElement(biometricUnlockToggle)
}

// ClickOnBackButton returns to home.
func (p *SettingsPage) ClickOnBackButton() (*HomePage, error) {
	if err := p.base.ClickOnElement(settingsBackButton); err != nil {
		return nil, err
	}
	return NewHomePage(p.base), nil
}

// ClickOnLanguage opens the language picker.
func (p *SettingsPage) ClickOnLanguage() (*ChooseLanguagePage, error) {
	if err := p.base.ClickOnElement(languageButton); err != nil {
		return nil, err
	}
	return NewChooseLanguagePage(p.base), nil
}

// ClickOnReceiveCard opens the screen that shares this wallet's QR code.
func (p *SettingsPage) ClickOnReceiveCard() (*ReceiveCardPage, error) {
	if err := p.base.ClickOnElement(receiveCardButton); err != nil {
		return nil, err
	}
	return NewReceiveCardPage(p.base), nil
}

// ClickOnInjiTourGuide replays the intro carousel.
func (p *SettingsPage) ClickOnInjiTourGuide() (*WelcomePage, error) {
	if err := p.base.ClickOnElement(tourGuideButton); err != nil {
		return nil, err
	}
	return NewWelcomePage(p.base), nil
}

// ClickOnLogout locks the app.
func (p *SettingsPage) ClickOnLogout() (*UnlockApplicationPage, error) {
	if err := p.base.ClickOnElement(logoutButton); err != nil {
		return nil, err
	}
	return NewUnlockApplicationPage(p.base), nil
}
