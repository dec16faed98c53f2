package utils

import (
	"fmt"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// Languages lists the message files loaded into the bundle
var Languages = []string{"en", "pt_br"}

var bundle *i18n.Bundle

// InitI18NBundle loads the message files of every supported language from dir
func InitI18NBundle(dir string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	for _, lang := range Languages {
		if _, err := b.LoadMessageFile(path.Join(dir, lang+".yaml")); err != nil {
			return fmt.Errorf("load %s messages: %w", lang, err)
		}
	}

	bundle = b
	return nil
}

func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}

// LocalizeError translates the message of an API error code. fallback is
// returned when no bundle is loaded or the code has no translation.
func LocalizeError(code int64, fallback string, langs ...string) string {
	if bundle == nil {
		return fallback
	}

	msg, err := NewLocalizer(langs...).Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("error.%d", code),
	})
	if err != nil {
		return fallback
	}

	return msg
}
