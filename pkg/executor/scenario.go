package executor

import (
	"fmt"
	"sort"

	"github.com/mosip/injitest/pkg/core"
	"github.com/mosip/injitest/pkg/page"
)

// State is what steps of one scenario share: the session's BasePage and
// the page object the previous step navigated to.
type State struct {
	Base    *page.BasePage
	Current page.Page
}

// Step is one named action of a scenario.
type Step struct {
	Name string
	Run  func(s *State) error
}

// Scenario is a named sequence of page-object steps. Start is the screen the
// app must show when the scenario begins.
type Scenario struct {
	Name        string
	Description string
	Start       page.Screen
	Steps       []Step
}

// expectLoaded fails unless the current page reports loaded.
func expectLoaded() Step {
	return Step{
		Name: "expect loaded",
		Run: func(s *State) error {
			loaded, err := s.Current.IsLoaded()
			if err != nil {
				return err
			}
			if !loaded {
				return core.ErrConditionNotMet.WithMessage(fmt.Sprintf("%s page is not loaded", s.Current.Screen()))
			}
			return nil
		},
	}
}

// expectOn fails unless the current page object models screen.
func expectOn(screen page.Screen) Step {
	return Step{
		Name: "expect " + screen.String(),
		Run: func(s *State) error {
			if got := s.Current.Screen(); got != screen {
				return core.ErrConditionNotMet.WithMessage(fmt.Sprintf("on %s, want %s", got, screen))
			}
			return nil
		},
	}
}

// navigate runs a navigation method and makes its result the current page.
func navigate(name string, click func(s *State) (page.Page, error)) Step {
	return Step{
		Name: name,
		Run: func(s *State) error {
			next, err := click(s)
			if err != nil {
				return err
			}
			s.Current = next
			return nil
		},
	}
}

func asPage[P page.Page](p P, err error) (page.Page, error) {
	return p, err
}

func welcome(s *State) *page.WelcomePage {
	return page.NewWelcomePage(s.Base)
}

// readTwice fails unless read returns the same value on consecutive calls.
func readTwice(name string, read func(s *State) (string, error)) Step {
	return Step{
		Name: "read " + name + " twice",
		Run: func(s *State) error {
			first, err := read(s)
			if err != nil {
				return err
			}
			second, err := read(s)
			if err != nil {
				return err
			}
			if first != second {
				return core.ErrConditionNotMet.WithMessage(fmt.Sprintf("%s changed between reads: %q then %q", name, first, second))
			}
			return nil
		},
	}
}

var builtin = []Scenario{
	{
		Name:        "welcome-skip",
		Description: "Skip the intro carousel and land on the unlock method screen",
		Start:       page.Welcome,
		Steps: []Step{
			{Name: "open welcome", Run: func(s *State) error { s.Current = welcome(s); return nil }},
			expectLoaded(),
			navigate("click skip", func(s *State) (page.Page, error) { return asPage(welcome(s).ClickOnSkipButton()) }),
			expectOn(page.AppUnlockMethod),
			expectLoaded(),
		},
	},
	{
		Name:        "welcome-next",
		Description: "Advance the intro carousel with next",
		Start:       page.Welcome,
		Steps: []Step{
			{Name: "open welcome", Run: func(s *State) error { s.Current = welcome(s); return nil }},
			expectLoaded(),
			navigate("click next", func(s *State) (page.Page, error) { return asPage(welcome(s).ClickOnNextButton()) }),
			expectOn(page.AppUnlockMethod),
			expectLoaded(),
		},
	},
	{
		Name:        "welcome-back",
		Description: "Back on the carousel keeps the welcome screen",
		Start:       page.Welcome,
		Steps: []Step{
			{Name: "open welcome", Run: func(s *State) error { s.Current = welcome(s); return nil }},
			expectLoaded(),
			{Name: "click back", Run: func(s *State) error { return welcome(s).ClickOnBackButton() }},
			expectOn(page.Welcome),
			{Name: "read welcome title", Run: func(s *State) error {
				_, err := welcome(s).VerifyLanguageForWelcomePageLoaded()
				return err
			}},
			{Name: "read welcome description", Run: func(s *State) error {
				_, err := welcome(s).GetWelcomeDescription()
				return err
			}},
		},
	},
	{
		Name:        "welcome-idempotent",
		Description: "Read-only welcome methods return the same result on repeat calls",
		Start:       page.Welcome,
		Steps: []Step{
			{Name: "open welcome", Run: func(s *State) error { s.Current = welcome(s); return nil }},
			expectLoaded(),
			expectLoaded(),
			readTwice("welcome title", func(s *State) (string, error) {
				return welcome(s).VerifyLanguageForWelcomePageLoaded()
			}),
			readTwice("welcome description", func(s *State) (string, error) {
				return welcome(s).GetWelcomeDescription()
			}),
			expectOn(page.Welcome),
		},
	},
	{
		Name:        "welcome-passcode",
		Description: "Skip the carousel and choose passcode unlock",
		Start:       page.Welcome,
		Steps: []Step{
			navigate("click skip", func(s *State) (page.Page, error) { return asPage(welcome(s).ClickOnSkipButton()) }),
			expectLoaded(),
			navigate("click use passcode", func(s *State) (page.Page, error) { return asPage(page.NewAppUnlockMethodPage(s.Base).ClickOnUsePasscodeButton()) }),
			expectOn(page.SetPasscode),
			expectLoaded(),
		},
	},
	{
		Name:        "settings-roundtrip",
		Description: "Open settings from home, read the app ID and go back",
		Start:       page.Home,
		Steps: []Step{
			navigate("open settings", func(s *State) (page.Page, error) { return asPage(page.NewHomePage(s.Base).ClickOnSettingsButton()) }),
			expectLoaded(),
			{Name: "read app ID", Run: func(s *State) error {
				id, err := page.NewSettingsPage(s.Base).GetAppID()
				if err != nil {
					return err
				}
				if id == "" {
					return core.ErrConditionNotMet.WithMessage("app ID is empty")
				}
				return nil
			}},
			navigate("click back", func(s *State) (page.Page, error) { return asPage(page.NewSettingsPage(s.Base).ClickOnBackButton()) }),
			expectOn(page.Home),
			expectLoaded(),
		},
	},
	{
		Name:        "settings-receive-card",
		Description: "Open receive card from settings, check the QR code and go back",
		Start:       page.Settings,
		Steps: []Step{
			navigate("click receive card", func(s *State) (page.Page, error) {
				return asPage(page.NewSettingsPage(s.Base).ClickOnReceiveCard())
			}),
			expectOn(page.ReceiveCard),
			expectLoaded(),
			{Name: "expect QR code", Run: func(s *State) error {
				shown, err := page.NewReceiveCardPage(s.Base).IsQRCodeDisplayed()
				if err != nil {
					return err
				}
				if !shown {
					return core.ErrConditionNotMet.WithMessage("QR code is not displayed")
				}
				return nil
			}},
			navigate("click back", func(s *State) (page.Page, error) {
				return asPage(page.NewReceiveCardPage(s.Base).ClickOnBackButton())
			}),
			expectOn(page.Settings),
		},
	},
	{
		Name:        "settings-logout",
		Description: "Log out from settings and land on the unlock screen",
		Start:       page.Settings,
		Steps: []Step{
			navigate("click logout", func(s *State) (page.Page, error) { return asPage(page.NewSettingsPage(s.Base).ClickOnLogout()) }),
			expectOn(page.UnlockApplication),
			expectLoaded(),
		},
	},
}

// Scenarios returns the built-in scenarios sorted by name.
func Scenarios() []Scenario {
	out := append([]Scenario(nil), builtin...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the named scenarios in the given order, or all of them
// when names is empty.
func Lookup(names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return Scenarios(), nil
	}
	byName := make(map[string]Scenario, len(builtin))
	for _, sc := range builtin {
		byName[sc.Name] = sc
	}
	out := make([]Scenario, 0, len(names))
	for _, name := range names {
		sc, ok := byName[name]
		if !ok {
			return nil, core.ErrInvalidConfig.WithCause(fmt.Errorf("unknown scenario %q", name))
		}
		out = append(out, sc)
	}
	return out, nil
}
