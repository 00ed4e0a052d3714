package page

import "github.com/mosip/injitest/pkg/locator"

var (
	welcomeText = locator.Element{
		Name: "welcomeText",
		Selectors: locator.Selectors{
			locator.Android: locator.AccessibilityID("introTitle"),
			locator.IOS:     locator.XPath(`(//XCUIElementTypeStaticText[@name="introTitle"])[1]`),
		},
	}
	welcomeTextDescription = locator.Element{
		Name: "welcomeTextDescription",
		Selectors: locator.Selectors{
			locator.Android: locator.AccessibilityID("introText"),
			locator.IOS:     locator.XPath(`(//XCUIElementTypeStaticText[@name="introText"])[1]`),
		},
	}
	skipButton = locator.Element{
		Name: "skipButton",
		Selectors: locator.Selectors{
			locator.Android: locator.AccessibilityID("skip"),
			locator.IOS:     locator.ClassChain("**/XCUIElementTypeButton[`label == \"Skip\"`][1]"),
		},
	}
	// The iOS carousel renders the next button once per slide; the fourth
	// match is the visible one. The trailing newline is part of the selector.
	nextButton = locator.Element{
		Name: "nextButton",
		Selectors: locator.Selectors{
			locator.Android: locator.AccessibilityID("next"),
			locator.IOS:     locator.XPath(`(//XCUIElementTypeOther[@name="Susunod" or @name="next" or @name="अगला" or @name="ಮುಂದೆ" or @name="அடுத்தது"])[4]` + "\n"),
		},
	}
	backButton = locator.Element{
		Name: "backButton",
		Selectors: locator.Selectors{
			locator.Android: locator.AccessibilityID("back"),
			locator.IOS:     locator.ClassChain("**/XCUIElementTypeButton[`label == \"Back\"`][1]"),
		},
	}
)

// WelcomePage is the intro carousel shown after the language is chosen.
type WelcomePage struct {
	base *BasePage
}

// NewWelcomePage returns the welcome page object.
func NewWelcomePage(base *BasePage) *WelcomePage {
	return &WelcomePage{base: base}
}

// Screen implements Page.
func (p *WelcomePage) Screen() Screen { return Welcome }

// IsLoaded implements Page.
func (p *WelcomePage) IsLoaded() (bool, error) { return p.IsWelcomePageLoaded() }

// VerifyLanguageForWelcomePageLoaded returns the localized welcome title.
func (p *WelcomePage) VerifyLanguageForWelcomePageLoaded() (string, error) {
	return p.base.GetTextFromLocator(welcomeText)
}

// IsWelcomePageLoaded waits for the welcome title and reports whether it is displayed.
func (p *WelcomePage) IsWelcomePageLoaded() (bool, error) {
	if _, err := p.base.RetrieveElement(welcomeText); err != nil {
		return false, err
	}
	return p.base.IsElementDisplayed(welcomeText)
}

// ClickOnSkipButton skips the carousel.
func (p *WelcomePage) ClickOnSkipButton() (*AppUnlockMethodPage, error) {
	if err := p.base.ClickOnElement(skipButton); err != nil {
		return nil, err
	}
	return NewAppUnlockMethodPage(p.base), nil
}

// ClickOnNextButton advances the carousel.
func (p *WelcomePage) ClickOnNextButton() (*AppUnlockMethodPage, error) {
	if err := p.base.ClickOnElement(nextButton); err != nil {
		return nil, err
	}
	return NewAppUnlockMethodPage(p.base), nil
}

// GetWelcomeDescription waits for and returns the welcome description text.
func (p *WelcomePage) GetWelcomeDescription() (string, error) {
	if _, err := p.base.RetrieveElement(welcomeTextDescription); err != nil {
		return "", err
	}
	return p.base.GetTextFromLocator(welcomeTextDescription)
}

// ClickOnBackButton goes back one carousel slide. The screen stays Welcome.
func (p *WelcomePage) ClickOnBackButton() error {
	return p.base.ClickOnElement(backButton)
}
