package cmd

import "github.com/huanfeng/apkscope/internal/i18n"

// applyCommandLocalization updates command and flag descriptions after i18n is initialized.
func applyCommandLocalization() {
	rootCmd.Short = i18n.T("cmd.root.short")
	rootCmd.Long = i18n.T("cmd.root.long")

	persistent := map[string]string{
		"config":     "flags.config",
		"verbose":    "flags.verbose",
		"lang":       "flags.lang",
		"log-format": "flags.logFormat",
	}
	for name, id := range persistent {
		if flag := rootCmd.PersistentFlags().Lookup(name); flag != nil {
			flag.Usage = i18n.T(id)
		}
	}

	local := map[string]string{
		"output":     "flags.output",
		"format":     "flags.format",
		"no-extract": "flags.noExtract",
		"icon":       "flags.icon",
	}
	for name, id := range local {
		if flag := rootCmd.Flags().Lookup(name); flag != nil {
			flag.Usage = i18n.T(id)
		}
	}

	versionCmd.Short = i18n.T("cmd.version.short")
	sourcesCmd.Short = i18n.T("cmd.sources.short")
	classifyCmd.Short = i18n.T("cmd.classify.short")
	inspectCmd.Short = i18n.T("cmd.inspect.short")
	initConfigCmd.Short = i18n.T("cmd.initConfig.short")
}
