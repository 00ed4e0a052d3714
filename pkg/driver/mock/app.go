package mock

import (
	"github.com/mosip/injitest/pkg/page"
)

// NewApp returns a driver scripted with every screen of the Inji wallet.
// Elements show their name as text unless texts overrides it, and clicking an
// element that triggers a transition shows the destination screen.
// Config.Start defaults to the choose-language screen.
func NewApp(cfg Config, texts map[string]string) *Driver {
	if cfg.Start == "" {
		cfg.Start = page.ChooseLanguage.String()
	}
	d := New(cfg)

	goesTo := make(map[string]string)
	for _, t := range page.Transitions {
		goesTo[t.From.String()+"/"+t.Via.Name] = t.To.String()
	}

	for _, screen := range page.Screens() {
		var elements []Element
		for _, el := range page.Elements(screen) {
			loc, err := el.For(d.Platform())
			if err != nil {
				continue
			}
			text := el.Name
			if override, ok := texts[el.Name]; ok {
				text = override
			}
			elements = append(elements, Element{
				Locator: loc,
				Text:    text,
				GoesTo:  goesTo[screen.String()+"/"+el.Name],
			})
		}
		d.AddScreen(screen.String(), elements...)
	}
	return d
}
