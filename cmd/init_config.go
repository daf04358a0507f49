package cmd

import (
	"fmt"
	"os"

	"github.com/huanfeng/apkscope/internal/config"
	apperrors "github.com/huanfeng/apkscope/internal/errors"
	"github.com/huanfeng/apkscope/internal/i18n"
	"github.com/spf13/cobra"
)

var (
	initConfigPath  string
	initConfigForce bool
)

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a configuration template",
	Long:  `Create an apkscope.yaml template with every setting and its default value.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(initConfigPath); err == nil && !initConfigForce {
			return apperrors.NewConfigurationError(
				i18n.T("config.exists", map[string]interface{}{"Path": initConfigPath}))
		}

		if err := config.SaveTemplate(initConfigPath); err != nil {
			return apperrors.WrapError(err, apperrors.ErrorTypeFileSystem, apperrors.CodeInvalidConfig,
				"failed to write config template").WithContext("path", initConfigPath)
		}

		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", map[string]interface{}{"Path": initConfigPath}))
		return nil
	},
}

func init() {
	initConfigCmd.Flags().StringVar(&initConfigPath, "path", config.DefaultConfigName+".yaml", "Where to write the template")
	initConfigCmd.Flags().BoolVar(&initConfigForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initConfigCmd)
}
