package format

import (
	"strings"

	"golang.org/x/text/language"
)

type Lang string

const (
	English    Lang = "en"
	Vietnamese Lang = "vi"
)

// Text is a label in both supported languages.
type Text struct {
	En string `json:"en"`
	Vi string `json:"vi"`
}

func (t Text) Pick(l Lang) string {
	if l == English {
		return t.En
	}
	return t.Vi
}

var supported = language.NewMatcher([]language.Tag{language.Vietnamese, language.English})

// ParseLang resolves a lang query value or an Accept-Language header.
// Anything unrecognised falls back to fallback.
func ParseLang(v string, fallback Lang) Lang {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}

	tags, _, err := language.ParseAcceptLanguage(v)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, idx, conf := supported.Match(tags...)
	if conf == language.No {
		return fallback
	}
	if idx == 1 {
		return English
	}
	return Vietnamese
}

func (l Lang) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.Vietnamese
}
