package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/blockwrap/internal/configloader"
	"github.com/yaklabco/blockwrap/internal/ui/pretty"
)

func newEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables blockwrap reads",
		Long: `List every BLOCKWRAP_* environment variable with its meaning.
Variables that are currently set are shown with their value.

Environment variables override configuration files and are overridden by
command-line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			color, _ := cmd.Flags().GetString("color")
			out := cmd.OutOrStdout()
			styles := pretty.NewStyles(pretty.IsColorEnabled(color, out))

			descriptions := configloader.ListEnvVars()
			width := 0
			for name := range descriptions {
				width = max(width, len(name))
			}

			for _, name := range configloader.SortedEnvVars() {
				var current string
				if value, ok := os.LookupEnv(name); ok {
					current = styles.Dim.Render(fmt.Sprintf(" (set: %q)", value))
				}
				fmt.Fprintf(out, "%s  %s%s\n",
					styles.Bold.Render(fmt.Sprintf("%-*s", width, name)), descriptions[name], current)
			}
			return nil
		},
	}
}
