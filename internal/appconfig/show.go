package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  API Base:        %s\n", cfg.APIBaseURL())
	fmt.Fprintf(out, "  User Agent:      %s\n", cfg.UserAgentString())
	fmt.Fprintf(out, "  Request Timeout: %s\n", cfg.RequestTimeout())
	if path := cfg.LogFilePath(); path != "" {
		fmt.Fprintf(out, "  Log File:        %s\n", path)
	} else {
		fmt.Fprintf(out, "  Log File:        (stderr only)\n")
	}
}
