package report

import (
	"path/filepath"
	"strings"
)

const reportSuffix = "_analysis_report"

// DefaultOutputPath returns <input-base-name>_analysis_report.<ext>, placed
// in dir when dir is non-empty and in the working directory otherwise.
func DefaultOutputPath(input string, format Format, dir string) string {
	name := stem(input) + reportSuffix + format.Extension()
	if dir != "" {
		return filepath.Join(dir, name)
	}
	return name
}

// iconPathFor places the exported icon next to the report
func iconPathFor(input, reportPath string) string {
	return filepath.Join(filepath.Dir(reportPath), stem(input)+"_icon.png")
}

// stem strips the extension from the base name. A name whose only dot is
// the leading one, such as ".apk", has no extension.
func stem(input string) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}
