package cmd

import (
	"testing"

	"github.com/spf13/viper"
)

func resetConfigState(t *testing.T) {
	t.Helper()
	original := runtimeCfg
	t.Cleanup(func() {
		runtimeCfg = original
		viper.Reset()
		for _, name := range []string{"check-links", "check-domain", "sample-size", "concurrency", "rate-limit", "progress"} {
			if flag := auditCmd.Flags().Lookup(name); flag != nil {
				flag.Changed = false
			}
		}
		if flag := rootCmd.PersistentFlags().Lookup("lang"); flag != nil {
			flag.Changed = false
		}
	})
	viper.Reset()
}

func TestConfigDefaultsAppliedWhenFlagsUnset(t *testing.T) {
	resetConfigState(t)

	viper.Set("defaults.link_sample_size", 25)
	viper.Set("defaults.check_links", false)
	viper.Set("defaults.lang", "pt-br")

	applyConfigDefaults()

	if runtimeCfg.LinkSampleSize != 25 {
		t.Errorf("LinkSampleSize = %d, want 25", runtimeCfg.LinkSampleSize)
	}
	if runtimeCfg.CheckLinks {
		t.Error("CheckLinks should be disabled by config")
	}
	if runtimeCfg.Lang != "pt-br" {
		t.Errorf("Lang = %q, want pt-br", runtimeCfg.Lang)
	}
}

func TestExplicitFlagWinsOverConfig(t *testing.T) {
	resetConfigState(t)

	flag := auditCmd.Flags().Lookup("sample-size")
	if flag == nil {
		t.Fatal("sample-size flag not registered")
	}
	if err := flag.Value.Set("7"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	flag.Changed = true

	viper.Set("defaults.link_sample_size", 99)
	applyConfigDefaults()

	if runtimeCfg.LinkSampleSize != 7 {
		t.Errorf("LinkSampleSize = %d, want the flag value 7", runtimeCfg.LinkSampleSize)
	}
}

func TestConfigSilentWithoutOverrides(t *testing.T) {
	resetConfigState(t)

	applyConfigDefaults()

	if runtimeCfg.LinkSampleSize != defaultLinkSampleSize {
		t.Errorf("LinkSampleSize = %d, want default %d", runtimeCfg.LinkSampleSize, defaultLinkSampleSize)
	}
	if !runtimeCfg.CheckLinks || !runtimeCfg.CheckDomain {
		t.Error("link and domain checks should default to enabled")
	}
	if runtimeCfg.Lang != defaultLanguage {
		t.Errorf("Lang = %q, want %q", runtimeCfg.Lang, defaultLanguage)
	}
}
