package cmd

import (
	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "n/a"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "authorcheck",
	Short: "Check commit authors against the AUTHORS file",
	Long: `Authorcheck verifies that everyone who committed to a repository is listed
in its AUTHORS file. In pull request mode it instead reports AUTHORS entries
with no commits on the pull request's source repository.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			clog.SetLevel(clog.DebugLevel)
		}
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log debug output to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
