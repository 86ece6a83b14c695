package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xonecas/strobe/internal/styles"
)

// printHelp displays usage information with CLI styling. Subcommands use
// cobra's default help.
func printHelp(cmd *cobra.Command, _ []string) {
	if cmd.HasParent() {
		fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
		return
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, styles.Brand.Render("╔══════════════════════════════════════╗"))
	fmt.Fprintln(w, styles.Brand.Render("║")+"   "+styles.BrandBold.Render("Strobe")+" - flashing message display   "+styles.Brand.Render("║"))
	fmt.Fprintln(w, styles.Brand.Render("╚══════════════════════════════════════╝"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.BrandBold.Render("USAGE:"))
	fmt.Fprintln(w, "  strobe [flags]")
	fmt.Fprintln(w, "  strobe profiles list")
	fmt.Fprintln(w, "  strobe profiles delete NAME")
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.BrandBold.Render("FLAGS:"))
	fmt.Fprintln(w, "  "+styles.Secondary.Render("-h, --help")+"              Show this help message")
	fmt.Fprintln(w, "  "+styles.Secondary.Render("-v, --version")+"           Show version information")
	fmt.Fprintln(w, "  "+styles.Secondary.Render("-c, --config")+" PATH       Path to config file (default: config.toml)")
	fmt.Fprintln(w, "  "+styles.Secondary.Render("-d, --debug")+"             Enable debug logging")
	fmt.Fprintln(w, "  "+styles.Secondary.Render("-p, --profile")+" NAME      Settings profile (default: default)")
	fmt.Fprintln(w, "  "+styles.Secondary.Render("-m, --memory")+"            Keep settings in memory only")
	fmt.Fprintln(w, "  "+styles.Secondary.Render("--reset")+"                 Reset the profile to defaults")
	fmt.Fprintln(w, "  "+styles.Secondary.Render("--framebuffer")+" DEV       Mirror the display to a framebuffer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.BrandBold.Render("KEYS:"))
	fmt.Fprintln(w, "  "+styles.Secondary.Render("e")+"                       Edit the message (enter to save)")
	fmt.Fprintln(w, "  "+styles.Secondary.Render("c")+"                       Show or hide the controls")
	fmt.Fprintln(w, "  "+styles.Secondary.Render("tab, shift+tab")+"          Move between controls")
	fmt.Fprintln(w, "  "+styles.Secondary.Render("←/→")+"                     Adjust the focused control")
	fmt.Fprintln(w, "  "+styles.Secondary.Render("q, ctrl+c")+"               Quit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.BrandBold.Render("EXAMPLES:"))
	fmt.Fprintln(w, "  # Flash the saved message")
	fmt.Fprintln(w, "  strobe")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Use a separate profile for the stage screen")
	fmt.Fprintln(w, "  strobe -p stage")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Kiosk mode on a Raspberry Pi")
	fmt.Fprintln(w, "  strobe --framebuffer /dev/fb0")
	fmt.Fprintln(w)
}
