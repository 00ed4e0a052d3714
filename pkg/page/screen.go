package page

import (
	"fmt"

	"github.com/mosip/injitest/pkg/locator"
)

// Screen identifies one app screen.
type Screen int

// App screens in onboarding order.
const (
	ChooseLanguage Screen = iota + 1
	Welcome
	AppUnlockMethod
	SetPasscode
	Home
	Settings
	ReceiveCard
	UnlockApplication
)

var screenNames = map[Screen]string{
	ChooseLanguage:  "choose-language",
	Welcome:         "welcome",
	AppUnlockMethod: "app-unlock-method",
	SetPasscode:     "set-passcode",
	Home:            "home",
	Settings:        "settings",

	ReceiveCard:       "receive-card",
	UnlockApplication: "unlock-application",
}

// String returns the screen name.
func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// Screens returns all screens, onboarding screens first.
func Screens() []Screen {
	return []Screen{ChooseLanguage, Welcome, AppUnlockMethod, SetPasscode, Home, Settings, ReceiveCard, UnlockApplication}
}

// Action is a user action that may change the screen.
type Action string

// Navigation actions.
const (
	ActionSavePreference Action = "save-preference"
	ActionSkip           Action = "skip"
	ActionNext           Action = "next"
	ActionBack           Action = "back"
	ActionUsePasscode    Action = "use-passcode"
	ActionOpenSettings   Action = "open-settings"
	ActionChangeLanguage Action = "change-language"
	ActionReceiveCard    Action = "receive-card"
	ActionTourGuide      Action = "tour-guide"
	ActionLogout         Action = "logout"
)

// Transition is one edge of the navigation graph: performing Action on From
// by clicking Via shows To.
type Transition struct {
	From   Screen
	Action Action
	Via    locator.Element
	To     Screen
}

// Transitions is the static navigation graph. Welcome back has no edge:
// it stays on the welcome carousel. Settings reopens the language picker
// and the intro carousel; logout locks the app.
var Transitions = []Transition{
	{From: ChooseLanguage, Action: ActionSavePreference, Via: savePreferenceButton, To: Welcome},
	{From: Welcome, Action: ActionSkip, Via: skipButton, To: AppUnlockMethod},
	{From: Welcome, Action: ActionNext, Via: nextButton, To: AppUnlockMethod},
	{From: AppUnlockMethod, Action: ActionUsePasscode, Via: usePasscodeButton, To: SetPasscode},
	{From: Home, Action: ActionOpenSettings, Via: settingsButton, To: Settings},
	{From: Settings, Action: ActionBack, Via: settingsBackButton, To: Home},
	{From: Settings, Action: ActionChangeLanguage, Via: languageButton, To: ChooseLanguage},
	{From: Settings, Action: ActionReceiveCard, Via: receiveCardButton, To: ReceiveCard},
	{From: Settings, Action: ActionTourGuide, Via: tourGuideButton, To: Welcome},
	{From: Settings, Action: ActionLogout, Via: logoutButton, To: UnlockApplication},
	{From: ReceiveCard, Action: ActionBack, Via: receiveCardBackButton, To: Settings},
}

// Next returns the screen reached by performing action on from.
func Next(from Screen, action Action) (Screen, bool) {
	for _, t := range Transitions {
		if t.From == from && t.Action == action {
			return t.To, true
		}
	}
	return 0, false
}

// Elements returns the element catalog of s.
func Elements(s Screen) []locator.Element {
	switch s {
	case ChooseLanguage:
		return []locator.Element{chooseLanguageHeader, chooseLanguageDescription, savePreferenceButton}
	case Welcome:
		return []locator.Element{welcomeText, welcomeTextDescription, skipButton, nextButton, backButton}
	case AppUnlockMethod:
		return []locator.Element{unlockMethodHeader, unlockMethodDescription, usePasscodeButton}
	case SetPasscode:
		return []locator.Element{setPasscodeHeader, setPasscodeDescription}
	case Home:
		return []locator.Element{homeHeader, downloadCardButton, settingsButton}
	case Settings:
		return []locator.Element{
			settingsHeader, appID, biometricUnlockToggle, languageButton,
			receiveCardButton, tourGuideButton, logoutButton, settingsBackButton,
		}
	case ReceiveCard:
		return []locator.Element{receiveCardHeader, qrCode, receiveCardBackButton}
	case UnlockApplication:
		return []locator.Element{unlockApplicationHeader, unlockApplicationButton}
	}
	return nil
}

// Page is implemented by every page object.
type Page interface {
	// Screen is the screen the page object models.
	Screen() Screen
	// IsLoaded reports whether the screen's landmark element is displayed.
	IsLoaded() (bool, error)
}

// accessibilityID declares an element found by the same accessibility id on
// both platforms (React Native testID).
func accessibilityID(name, id string) locator.Element {
	return locator.Element{
		Name: name,
		Selectors: locator.Selectors{
			locator.Android: locator.AccessibilityID(id),
			locator.IOS:     locator.AccessibilityID(id),
		},
	}
}
