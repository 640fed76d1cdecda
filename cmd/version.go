package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/abhisek/careerfit/internal/catalog"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "careerfit", displayVersion(version))
		fmt.Fprintln(cmd.OutOrStdout(), "catalog", displayVersion(catalog.Default().Version()))
	},
}

// displayVersion canonicalizes semantic versions and passes anything else
// (such as "(devel)") through unchanged.
func displayVersion(v string) string {
	if semver.IsValid(v) {
		return semver.Canonical(v)
	}
	if v == "" {
		return "(unknown)"
	}
	return v
}
