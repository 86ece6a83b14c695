package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/xonecas/strobe/internal/profile"
	"github.com/xonecas/strobe/internal/styles"
)

const listLimit = 20

func newProfilesCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage saved settings profiles",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recently used profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProfiles(flags, func(mgr *profile.Manager) error {
				return ListProfilesCmd(cmd.OutOrStdout(), mgr)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a profile and its settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProfiles(flags, func(mgr *profile.Manager) error {
				return DeleteProfileCmd(cmd.OutOrStdout(), mgr, args[0])
			})
		},
	})

	return cmd
}

// withProfiles opens the settings database for a profile subcommand.
func withProfiles(flags *Flags, fn func(*profile.Manager) error) error {
	SetupConsoleLogging(flags.Debug)

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(profile.NewManager(db))
}

// ListProfilesCmd lists recently used profiles.
func ListProfilesCmd(w io.Writer, mgr *profile.Manager) error {
	profiles, err := mgr.List(listLimit)
	if err != nil {
		return err
	}

	if len(profiles) == 0 {
		fmt.Fprintln(w, "No profiles found")
		return nil
	}

	fmt.Fprintln(w, styles.Brand.Render("Recent Profiles:"))
	fmt.Fprintln(w)

	for _, p := range profiles {
		fmt.Fprintf(w, "%s  %s\n", styles.Muted.Render(p.ID[:8]), styles.BrandBold.Render(p.Name))
		fmt.Fprintf(w, "          %s\n", styles.Muted.Render("last used "+profile.FormatAge(time.Since(p.LastActiveAt))))
	}

	return nil
}

// DeleteProfileCmd deletes a profile by name.
func DeleteProfileCmd(w io.Writer, mgr *profile.Manager, name string) error {
	if err := mgr.DeleteByName(name); err != nil {
		return err
	}

	fmt.Fprintln(w, styles.Success.Render(fmt.Sprintf("Deleted profile '%s'", name)))
	return nil
}
