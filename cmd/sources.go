package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/huanfeng/apkscope/internal/i18n"
	"github.com/huanfeng/apkscope/pkg/apk"
	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Show available metadata sources",
	Long: `Display the metadata sources apkscope can use and whether each one is
available. In auto mode an unavailable androidbinary source degrades to
fallback data.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sources := apk.Sources()
		if len(sources) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("sources.none"))
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tVERSION\tAVAILABLE\tCAPABILITIES\tNOTE")
		fmt.Fprintln(w, "----\t-------\t---------\t------------\t----")

		for _, src := range sources {
			info := src.Info()
			available := "No"
			if info.Available {
				available = "Yes"
			}

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				info.Name,
				info.Version,
				available,
				strings.Join(info.Capabilities, ","),
				info.Reason,
			)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
