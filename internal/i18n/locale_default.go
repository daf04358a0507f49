//go:build !windows

package i18n

import (
	"os"
	"strings"
)

// platformLocales reads the GNU LANGUAGE priority list, e.g. "zh_CN:en".
// It is consulted only when none of the usual locale variables are set.
func platformLocales() []string {
	var out []string
	for _, l := range strings.Split(os.Getenv("LANGUAGE"), ":") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
