// Package i18n localizes the strings navstack shows on behalf of an
// application: snackbar text and the labels of default alert buttons.
//
// Message files use the go-i18n TOML format and must carry the language in
// their name, e.g. "active.de.toml":
//
//	AlertCancel = "Abbrechen"
//
//	[ItemSaved]
//	other = "{{.Name}} gespeichert"
package i18n

import (
	"errors"
	"fmt"
	"maps"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs for strings navstack supplies itself.
const (
	MessageAlertOK     = "AlertOK"
	MessageAlertCancel = "AlertCancel"
)

var builtin = []*goi18n.Message{
	{ID: MessageAlertOK, Other: "OK"},
	{ID: MessageAlertCancel, Other: "Cancel"},
}

// Localizer resolves message IDs for one preferred locale, falling back to
// English.
type Localizer struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	tag       language.Tag
}

// New creates a Localizer for locale (a BCP 47 tag such as "de" or "pt-BR")
// and loads the given message files.
func New(locale string, files ...string) (*Localizer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("i18n: invalid locale %q: %w", locale, err)
	}

	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	if err := bundle.AddMessages(language.English, builtin...); err != nil {
		return nil, fmt.Errorf("i18n: add builtin messages: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}
	}

	return &Localizer{
		bundle:    bundle,
		localizer: goi18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
	}, nil
}

// LoadMessageFileBytes adds messages from an in-memory file. name must
// include the language tag, e.g. "active.fr.toml".
// Load all files before sharing the Localizer between goroutines.
func (l *Localizer) LoadMessageFileBytes(data []byte, name string) error {
	if _, err := l.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("i18n: parse %s: %w", name, err)
	}
	return nil
}

// Locale returns the preferred locale.
func (l *Localizer) Locale() language.Tag {
	return l.tag
}

// Message returns the localized text for id. Unknown IDs come back as the
// ID itself so a missing translation is visible rather than blank.
func (l *Localizer) Message(id string, data map[string]any) string {
	return l.localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

// Plural is Message with plural selection on count.
func (l *Localizer) Plural(id string, count int, data map[string]any) string {
	data = maps.Clone(data)
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Count"]; !ok {
		data["Count"] = count
	}
	return l.localize(&goi18n.LocalizeConfig{MessageID: id, PluralCount: count, TemplateData: data})
}

// OKLabel is the label for a default confirming alert button.
func (l *Localizer) OKLabel() string {
	return l.Message(MessageAlertOK, nil)
}

// CancelLabel is the label for the cancel button added to alerts that have
// no secondary button.
func (l *Localizer) CancelLabel() string {
	return l.Message(MessageAlertCancel, nil)
}

func (l *Localizer) localize(cfg *goi18n.LocalizeConfig) string {
	msg, err := l.localizer.Localize(cfg)
	if err != nil {
		var notFound *goi18n.MessageNotFoundErr
		if errors.As(err, &notFound) && msg != "" {
			return msg
		}
		return cfg.MessageID
	}
	return msg
}
