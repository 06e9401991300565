package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultLanguage        = "en-us"
	defaultLinkSampleSize  = 100
	defaultLinkConcurrency = 8
	defaultLinkRateLimit   = 10
)

// RuntimeConfig captures the flag- and config-driven settings for an
// audit run.
type RuntimeConfig struct {
	Lang            string
	CheckLinks      bool
	CheckDomain     bool
	LinkSampleSize  int
	LinkConcurrency int
	LinkRateLimit   int
	ProgressEnabled bool
}

var runtimeCfg = newRuntimeConfig()

func newRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Lang:            defaultLanguage,
		CheckLinks:      true,
		CheckDomain:     true,
		LinkSampleSize:  defaultLinkSampleSize,
		LinkConcurrency: defaultLinkConcurrency,
		LinkRateLimit:   defaultLinkRateLimit,
		ProgressEnabled: true,
	}
}

// applyConfigDefaults merges config file values into the runtime config
// when the user did not explicitly override the corresponding flag.
func applyConfigDefaults() {
	if viper.IsSet("defaults.lang") {
		setStringFlagIfUnset(rootCmd.PersistentFlags(), "lang", viper.GetString("defaults.lang"))
	}

	if viper.IsSet("defaults.check_links") {
		applyBoolDefault(auditCmd.Flags(), "check-links", viper.GetBool("defaults.check_links"), func(v bool) {
			runtimeCfg.CheckLinks = v
		})
	}

	if viper.IsSet("defaults.check_domain") {
		applyBoolDefault(auditCmd.Flags(), "check-domain", viper.GetBool("defaults.check_domain"), func(v bool) {
			runtimeCfg.CheckDomain = v
		})
	}

	if viper.IsSet("defaults.link_sample_size") {
		applyIntDefault(auditCmd.Flags(), "sample-size", viper.GetInt("defaults.link_sample_size"), func(v int) {
			runtimeCfg.LinkSampleSize = v
		})
	}

	if viper.IsSet("defaults.link_concurrency") {
		applyIntDefault(auditCmd.Flags(), "concurrency", viper.GetInt("defaults.link_concurrency"), func(v int) {
			runtimeCfg.LinkConcurrency = v
		})
	}

	if viper.IsSet("defaults.link_rate_limit") {
		applyIntDefault(auditCmd.Flags(), "rate-limit", viper.GetInt("defaults.link_rate_limit"), func(v int) {
			runtimeCfg.LinkRateLimit = v
		})
	}

	if viper.IsSet("defaults.progress") {
		applyBoolDefault(auditCmd.Flags(), "progress", viper.GetBool("defaults.progress"), func(v bool) {
			runtimeCfg.ProgressEnabled = v
		})
	}
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, setter func(int)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyBoolDefault(flags *pflag.FlagSet, name string, value bool, setter func(bool)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func setStringFlagIfUnset(flags *pflag.FlagSet, name, value string) {
	if flags == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag == nil || flag.Changed {
		return
	}
	_ = flag.Value.Set(value)
}
