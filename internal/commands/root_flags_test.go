package nimbus

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/mwiater/nimbus/internal/logging"
)

func resetFlag(cmdFlag string) {
	flag := rootCmd.PersistentFlags().Lookup(cmdFlag)
	if flag == nil {
		return
	}
	_ = flag.Value.Set(flag.DefValue)
	flag.Changed = false
}

func resetAllFlags() {
	for _, name := range []string{"debug", "apiBase", "userAgent", "timeout", "logFile"} {
		resetFlag(name)
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func setupConfigFile(t *testing.T, content string) string {
	t.Helper()
	configPath := writeTempConfig(t, content)

	prevCfgFile := cfgFile
	cfgFile = configPath
	viper.SetConfigFile(configPath)
	t.Cleanup(func() {
		cfgFile = prevCfgFile
		viper.SetConfigFile(prevCfgFile)
	})
	t.Cleanup(func() { _ = logging.Close() })
	return configPath
}

func TestPersistentPreRunEUsesFlagValues(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nimbus.log")
	configPath := setupConfigFile(t, "{}")
	resetAllFlags()

	_ = rootCmd.PersistentFlags().Set("debug", "true")
	_ = rootCmd.PersistentFlags().Set("apiBase", "http://localhost:9999")
	_ = rootCmd.PersistentFlags().Set("userAgent", "test-agent/0.2")
	_ = rootCmd.PersistentFlags().Set("timeout", "7")
	_ = rootCmd.PersistentFlags().Set("logFile", logPath)

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err != nil {
		t.Fatalf("PersistentPreRunE error: %v", err)
	}

	cfg := GetConfig()
	if cfg == nil || cfg.ConfigPath != configPath {
		t.Fatalf("expected config loaded with path %s", configPath)
	}
	if !cfg.Debug {
		t.Fatal("expected debug enabled from flag")
	}
	if got := cfg.APIBaseURL(); got != "http://localhost:9999" {
		t.Fatalf("expected flag API base, got %q", got)
	}
	if got := cfg.UserAgentString(); got != "test-agent/0.2" {
		t.Fatalf("expected flag user agent, got %q", got)
	}
	if got := cfg.RequestTimeout(); got != 7*time.Second {
		t.Fatalf("expected 7s timeout, got %v", got)
	}
	if got := cfg.LogFilePath(); got != logPath {
		t.Fatalf("expected flag log file, got %q", got)
	}
}

func TestPersistentPreRunEUsesConfigFile(t *testing.T) {
	setupConfigFile(t, `{"apiBase":"http://example.test","timeout":9}`)
	resetAllFlags()

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err != nil {
		t.Fatalf("PersistentPreRunE error: %v", err)
	}

	cfg := GetConfig()
	if cfg == nil {
		t.Fatal("expected resolved config")
	}
	if got := cfg.APIBaseURL(); got != "http://example.test" {
		t.Fatalf("expected config-file API base, got %q", got)
	}
	if got := cfg.RequestTimeout(); got != 9*time.Second {
		t.Fatalf("expected 9s timeout, got %v", got)
	}
}

func TestShowConfigCommandOutput(t *testing.T) {
	setupConfigFile(t, "{}")
	resetAllFlags()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"show", "config"})
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })

	if _, err := rootCmd.ExecuteC(); err != nil {
		t.Fatalf("show config error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Current configuration:") {
		t.Fatalf("expected configuration summary, got:\n%s", out)
	}
	if !strings.Contains(out, "https://api.weather.gov") {
		t.Fatalf("expected default API base in summary, got:\n%s", out)
	}
}

func TestShowToolsOutput(t *testing.T) {
	var buf bytes.Buffer
	showToolsCmd.SetOut(&buf)
	t.Cleanup(func() { showToolsCmd.SetOut(nil) })

	if err := showToolsCmd.RunE(showToolsCmd, []string{}); err != nil {
		t.Fatalf("show tools error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"get-alerts", "get-forecast", `"minLength":2`, `"latitude"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in show tools output, got:\n%s", want, out)
		}
	}
}
