// Package locale lists the languages the wallet ships with and the labels
// page selectors depend on.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/unicode/norm"
)

// Language is one app language.
type Language struct {
	Tag language.Tag
	// Next is the label of the welcome carousel's next button.
	Next string
}

// Name returns the language's name in itself, e.g. "हिन्दी".
func (l Language) Name() string {
	return display.Self.Name(l.Tag)
}

// Code returns the BCP 47 tag, e.g. "hi".
func (l Language) Code() string {
	return l.Tag.String()
}

// Supported lists app languages. The first entry is the fallback.
var Supported = []Language{
	{Tag: language.English, Next: "next"},
	{Tag: language.Filipino, Next: "Susunod"},
	{Tag: language.Hindi, Next: "अगला"},
	{Tag: language.Kannada, Next: "ಮುಂದೆ"},
	{Tag: language.Tamil, Next: "அடுத்தது"},
}

var matcher = language.NewMatcher(tags())

func tags() []language.Tag {
	out := make([]language.Tag, len(Supported))
	for i, l := range Supported {
		out[i] = l.Tag
	}
	return out
}

// Default returns the fallback language.
func Default() Language {
	return Supported[0]
}

// Match returns the supported language closest to s ("hi-IN", "fil", "tl").
func Match(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default(), nil
	}
	// Tagalog is how older devices report Filipino.
	if base := strings.ToLower(strings.SplitN(strings.ReplaceAll(s, "_", "-"), "-", 2)[0]); base == "tl" {
		return lookup(language.Filipino), nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return Language{}, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Language{}, fmt.Errorf("unsupported locale %q", s)
	}
	return Supported[idx], nil
}

func lookup(tag language.Tag) Language {
	for _, l := range Supported {
		if l.Tag == tag {
			return l
		}
	}
	return Default()
}

// NextLabels returns every language's next button label.
func NextLabels() []string {
	out := make([]string, len(Supported))
	for i, l := range Supported {
		out[i] = l.Next
	}
	return out
}

// Equal compares UI strings after NFC normalization, since drivers may
// return Indic text decomposed.
func Equal(a, b string) bool {
	return norm.NFC.String(a) == norm.NFC.String(b)
}
