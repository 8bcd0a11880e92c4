package translator

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var embedded embed.FS

var Translator *i18n.Bundle

type Config struct {
	// TranslationFolder holds extra TOML catalogs that override the embedded ones.
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguagePtBR = "pt-BR"
	LanguageEn   = "en"
	// DefaultLanguage is used when the request does not ask for one.
	DefaultLanguage = LanguagePtBR
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.BrazilianPortuguese)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	loadFS(embedded, "translation")

	if cfg.TranslationFolder == "" {
		return
	}
	if _, err := os.Stat(cfg.TranslationFolder); err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}
	loadFS(os.DirFS(cfg.TranslationFolder), ".")
}

func loadFS(fsys fs.FS, dir string) {
	lstFiles, err := fs.ReadDir(fsys, dir)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", dir), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}
		file := path.Join(dir, f.Name())
		if _, err := Translator.LoadMessageFileFS(fsys, file); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// Localize renders messageID in lang, falling back to the default language.
// An unknown message renders as its id.
func Localize(lang, messageID string, data map[string]any) string {
	return LocalizePlural(lang, messageID, data, nil)
}

// LocalizePlural is Localize with a plural count for messages that have plural forms.
func LocalizePlural(lang, messageID string, data map[string]any, count any) string {
	if Translator == nil {
		InitTranslator(Config{})
	}
	l := i18n.NewLocalizer(Translator, lang, DefaultLanguage)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
		PluralCount:  count,
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", messageID), zap.Error(err))
		return messageID
	}
	return msg
}
