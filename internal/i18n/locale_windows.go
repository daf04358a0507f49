//go:build windows

package i18n

import "golang.org/x/sys/windows"

// platformLocales returns the user's preferred UI languages, then the
// system's, then the default locale name.
func platformLocales() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(names []string) {
		for _, n := range names {
			if n != "" && !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}

	if langs, err := windows.GetUserPreferredUILanguages(windows.MUI_LANGUAGE_NAME); err == nil {
		add(langs)
	}
	if len(out) == 0 {
		if langs, err := windows.GetSystemPreferredUILanguages(windows.MUI_LANGUAGE_NAME); err == nil {
			add(langs)
		}
	}
	if len(out) == 0 {
		if name, err := windows.GetUserDefaultLocaleName(); err == nil {
			add([]string{name})
		}
	}
	return out
}
