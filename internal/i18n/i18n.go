// Package i18n localizes user-facing validation and conflict messages.
// Message files are TOML bundles under configs/i18n, one per language.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
)

var (
	translatorOnce sync.Once
	translator     *Translator
)

// InitTranslator initializes the global translator once per process.
func InitTranslator(translationsPath string) error {
	var initErr error
	translatorOnce.Do(func() {
		translator = NewTranslator(language.English)
		initErr = translator.LoadTranslations(translationsPath)
	})
	return initErr
}

// GetTranslator returns the global translator, initializing it with the
// default path when needed.
func GetTranslator() *Translator {
	if translator == nil {
		_ = InitTranslator("configs/i18n")
	}
	return translator
}

// Translator manages the message bundle and per-request localization.
type Translator struct {
	bundle      *i18n.Bundle
	defaultLang language.Tag
}

func NewTranslator(defaultLang language.Tag) *Translator {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return &Translator{
		bundle:      bundle,
		defaultLang: defaultLang,
	}
}

// LoadTranslations loads every .toml message file from the directory.
func (t *Translator) LoadTranslations(dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read translations directory: %w", err)
	}
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".toml") {
			continue
		}
		t.bundle.MustLoadMessageFile(filepath.Join(dir, file.Name()))
	}
	return nil
}

// LoadMessageBytes parses an in-memory TOML message file into the bundle.
func (t *Translator) LoadMessageBytes(name string, data []byte) error {
	_, err := t.bundle.ParseMessageFileBytes(data, name)
	return err
}

// Translate returns the localized text for msgID in the requested language,
// falling back to the default language and finally to the ID itself.
func (t *Translator) Translate(msgID, lang string, templateData map[string]any) string {
	tag := language.Make(lang)
	localizer := i18n.NewLocalizer(t.bundle, tag.String(), t.defaultLang.String())

	lc := &i18n.LocalizeConfig{MessageID: msgID}
	if len(templateData) > 0 {
		lc.TemplateData = templateData
	}

	msg, err := localizer.Localize(lc)
	if err != nil {
		return msgID
	}
	return msg
}

// LocalizeValidation rewrites each field message of a ValidationError into
// the requested language. Fields without a message ID keep their default
// text.
func (t *Translator) LocalizeValidation(ve *apperr.ValidationError, lang string) {
	for i := range ve.Fields {
		f := &ve.Fields[i]
		if f.MessageID == "" {
			continue
		}
		f.Message = t.Translate(f.MessageID, lang, f.TemplateData)
	}
}
