// =============================================================================
// Escheatment Mailing Preparation - Root Command
// =============================================================================
//
// Root of the CLI. All commands (process, version) attach here.
//
// COBRA CLI STRUCTURE:
//   rootCmd (escheatmail)
//   ├── processCmd (escheatmail process)
//   └── versionCmd (escheatmail version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// Overridden with the --config flag.
var cfgFile string

// verbose enables debug logging.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "escheatmail",
	Short: "Escheatment mailing preparation - normalize shareholder lists into print-ready mailings",
	Long: `escheatmail prepares escheatment due-diligence mailing lists for the print
vendor. It reads shareholder records from a fixed-width flat file or a
spreadsheet export, normalizes them into one canonical layout, classifies
each record by destination (domestic, Canada, Mexico, other foreign), and
reformats the name/address lines into the fixed mailing block the mail-merge
software expects.

Each run produces four artifacts: the full static data file, the address
data file with the delivery/alternate address split, a revision workbook,
and a per-category counts report.

Example Usage:
  escheatmail process --letter-code A mailing_list.txt
  escheatmail process --letter-code RC --config ./my.yaml export.xlsx`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it.
// Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
