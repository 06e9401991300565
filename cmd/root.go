package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string
var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:          "webgrade",
	Short:        "Single-shot website audit: performance, security, SEO and accessibility scoring",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".webgrade")
			viper.SetConfigType("yaml")
		}
		_ = viper.ReadInConfig()

		// init logger
		l, _ := zap.NewProduction()
		logger = l.Sugar()

		applyConfigDefaults()
		return nil
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.webgrade.yaml)")
	rootCmd.PersistentFlags().StringVarP(&runtimeCfg.Lang, "lang", "l", runtimeCfg.Lang, "interface language (en-us or pt-br)")

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(versionCmd)
}
