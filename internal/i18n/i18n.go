package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var supported = []language.Tag{
	language.English,
	language.Chinese,
}

var (
	mu        sync.RWMutex
	localizer *goi18n.Localizer
	current   = language.English
)

// Init loads the embedded catalogs and picks the language from, in order:
// langOverride (--lang), APKSCOPE_LANG, LC_ALL, LC_MESSAGES, LANG, the
// platform UI language, then English.
func Init(langOverride string) error {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return fmt.Errorf("list locales: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	chosen := selectLanguage(candidates(langOverride))

	mu.Lock()
	localizer = goi18n.NewLocalizer(bundle, chosen.String(), language.English.String())
	current = chosen
	mu.Unlock()

	return nil
}

// T translates a message by ID with optional template data. The ID itself
// is returned when no translation exists.
func T(id string, data ...map[string]interface{}) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	if l == nil {
		if err := Init(""); err != nil {
			fmt.Fprintf(os.Stderr, "i18n init failed: %v\n", err)
			return id
		}
		mu.RLock()
		l = localizer
		mu.RUnlock()
	}

	var templateData map[string]interface{}
	if len(data) > 0 {
		templateData = data[0]
	}

	msg, err := l.Localize(&goi18n.LocalizeConfig{
		MessageID:      id,
		TemplateData:   templateData,
		DefaultMessage: &goi18n.Message{ID: id, Other: id},
	})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// CurrentLanguage returns the chosen language tag
func CurrentLanguage() language.Tag {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func candidates(langOverride string) []string {
	var out []string
	if v := strings.TrimSpace(langOverride); v != "" {
		out = append(out, v)
	}
	for _, key := range []string{"APKSCOPE_LANG", "LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		out = append(out, platformLocales()...)
	}
	return out
}

// selectLanguage matches POSIX-style locales such as zh_CN.UTF-8 against
// the supported catalogs.
func selectLanguage(cands []string) language.Tag {
	var tags []language.Tag
	for _, cand := range cands {
		clean := cand
		if idx := strings.IndexAny(clean, ".@"); idx >= 0 {
			clean = clean[:idx]
		}
		clean = strings.ReplaceAll(clean, "_", "-")
		if clean == "" || strings.EqualFold(clean, "C") || strings.EqualFold(clean, "POSIX") {
			continue
		}
		if tag, err := language.Parse(clean); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return language.English
	}

	_, idx, conf := language.NewMatcher(supported).Match(tags...)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}
