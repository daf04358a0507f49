package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/huanfeng/apkscope/internal/i18n"
	"github.com/huanfeng/apkscope/pkg/models"
	"github.com/huanfeng/apkscope/pkg/permission"
	"github.com/spf13/cobra"
)

var classifyJSON bool

var classifyCmd = &cobra.Command{
	Use:   "classify [permission...]",
	Short: "Classify permission identifiers",
	Long: `Classify Android permission identifiers into dangerous, normal or
unknown tiers. With no arguments every identifier in the lookup tables is
listed.

Matching is exact: android.permission.camera is unknown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var records []models.PermissionRecord
		if len(args) == 0 {
			records = permission.Known()
		} else {
			records = permission.ClassifyAll(args)
		}

		out := cmd.OutOrStdout()
		if classifyJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, i18n.T("classify.header"))
		fmt.Fprintln(w, "----------\t-----\t----\t-----------")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Identifier, r.Category, r.RiskNote, r.Description)
		}
		return w.Flush()
	},
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print records as JSON")
	rootCmd.AddCommand(classifyCmd)
}
