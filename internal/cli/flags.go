package cli

import (
	"github.com/spf13/cobra"
)

// Flags holds parsed command-line flags.
type Flags struct {
	ConfigPath  string
	Debug       bool
	ProfileName string
	Memory      bool
	Reset       bool
	Framebuffer string
}

// bind registers the flags on cmd. Flags shared with subcommands are
// persistent.
func (f *Flags) bind(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.ConfigPath, "config", "c", "", "Path to config file")
	pf.BoolVarP(&f.Debug, "debug", "d", false, "Enable debug logging")

	fl := cmd.Flags()
	fl.StringVarP(&f.ProfileName, "profile", "p", "", "Settings profile (resume or create)")
	fl.BoolVarP(&f.Memory, "memory", "m", false, "Keep settings in memory only")
	fl.BoolVar(&f.Reset, "reset", false, "Reset the profile to defaults before starting")
	fl.StringVar(&f.Framebuffer, "framebuffer", "", "Mirror the display to a framebuffer device, e.g. /dev/fb0")
}
