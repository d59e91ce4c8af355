package commands

import (
	"github.com/spf13/cobra"
	"go.parcel.ch/parcel/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [packages...]",
		Short: "Install packages and their dependencies",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("version")
			remote, _ := cmd.Flags().GetString("remote")

			var dependencies *bool
			if cmd.Flags().Changed("dependencies") {
				v, _ := cmd.Flags().GetBool("dependencies")
				dependencies = &v
			}

			return c.app.Install(cmd.Context(), args, app.InstallOptions{
				Version:      version,
				Remote:       remote,
				Dependencies: dependencies,
			})
		},
	}
	cmd.Flags().String("version", "", "Install this exact version (single package only)")
	cmd.Flags().StringP("remote", "r", "", "Search this remote before the configured ones")
	cmd.Flags().Bool("dependencies", true, "Install the package's dependency tree")
	return cmd
}
