package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/active.*.toml
var embeddedLocales embed.FS

// Translations renders localized messages. Every locale ships embedded in
// the binary; a locales directory may add to or override them.
type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
	lang     string
}

// NewTranslations builds the message bundle from the embedded locales plus
// any active.*.toml found in localesDir, which may be empty.
func NewTranslations(defaultLang string, localesDir string) (*Translations, error) {
	if defaultLang == "" {
		return nil, errors.New("language cannot be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	embedded, err := fs.Glob(embeddedLocales, "locales/active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded locales: %w", err)
	}
	for _, file := range embedded {
		data, err := embeddedLocales.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading embedded locale %s: %w", file, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, filepath.Base(file)); err != nil {
			return nil, fmt.Errorf("error parsing embedded locale %s: %w", file, err)
		}
	}

	if localesDir != "" {
		files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}

		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	return &Translations{
		bundle:   bundle,
		localize: i18n.NewLocalizer(bundle, defaultLang),
		lang:     defaultLang,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			t.lang = lang
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

// Language returns the tag messages are currently rendered in.
func (t *Translations) Language() string {
	return t.lang
}

// GetMessage renders messageID in the active language. Unknown IDs render a
// "Translation missing" marker instead of failing.
func (t *Translations) GetMessage(messageID string, count int, templateData interface{}) string {
	localized, _ := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if localized == "" {
		return "Translation missing: " + messageID
	}
	return localized
}
