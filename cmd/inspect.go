package cmd

import (
	"fmt"

	apperrors "github.com/huanfeng/apkscope/internal/errors"
	"github.com/huanfeng/apkscope/internal/i18n"
	"github.com/huanfeng/apkscope/pkg/apk"
	"github.com/huanfeng/apkscope/pkg/models"
	"github.com/huanfeng/apkscope/pkg/permission"
	"github.com/huanfeng/apkscope/pkg/report"
	"github.com/spf13/cobra"
)

var inspectVerify string

var inspectCmd = &cobra.Command{
	Use:   "inspect <report-file>",
	Short: "Summarize a saved analysis report",
	Long: `Read a JSON or YAML report written by apkscope and print its summary.
With --verify the referenced APK is hashed again and compared against the
digests recorded in the report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := report.Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, i18n.T("inspect.file", map[string]interface{}{
			"Name": r.BasicInfo.FileName,
			"Size": r.BasicInfo.FileSize,
		}))
		fmt.Fprintln(out, i18n.T("inspect.sha256", map[string]interface{}{"Hash": r.BasicInfo.SHA256}))
		fmt.Fprintln(out, i18n.T("inspect.analyzed", map[string]interface{}{
			"Timestamp": r.AnalysisTimestamp,
			"Tool":      r.ToolVersion,
		}))
		fmt.Fprintln(out)
		printSummary(out, r)

		counts := permission.Summary(r.Permissions)
		fmt.Fprintln(out, "  "+i18n.T("inspect.levels", map[string]interface{}{
			"Dangerous": counts[models.CategoryDangerous],
			"Normal":    counts[models.CategoryNormal],
			"Unknown":   counts[models.CategoryUnknown],
		}))

		if inspectVerify == "" {
			return nil
		}
		return verifyDigests(cmd, r, inspectVerify)
	},
}

func verifyDigests(cmd *cobra.Command, r *models.FullReport, apkPath string) error {
	digests, err := apk.CalculateHashes(apkPath)
	if err != nil {
		return err
	}

	if digests.MD5 != r.BasicInfo.MD5 || digests.SHA256 != r.BasicInfo.SHA256 {
		return apperrors.NewError(apperrors.ErrorTypeValidation, apperrors.CodeInvalidReport,
			i18n.T("inspect.mismatch")).
			WithContext("apk", apkPath).
			WithContext("expected_sha256", r.BasicInfo.SHA256).
			WithContext("actual_sha256", digests.SHA256)
	}

	fmt.Fprintln(cmd.OutOrStdout(), i18n.T("inspect.verified", map[string]interface{}{"Path": apkPath}))
	return nil
}

func init() {
	inspectCmd.Flags().StringVar(&inspectVerify, "verify", "", "APK file to check against the report's digests")
	rootCmd.AddCommand(inspectCmd)
}
