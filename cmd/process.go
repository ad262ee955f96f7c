// =============================================================================
// Escheatment Mailing Preparation - Process Command
// =============================================================================
//
// The 'process' command runs the whole preparation pipeline for one input
// file.
//
// COMMAND USAGE:
//   escheatmail process --letter-code CODE <input-file>
//
// FLAGS:
//   --letter-code : Mailing-template code (A, AC, FA, FC, R, RC). Required
//                   unless a default is set in the configuration file.
//   --dry-run     : Decode and classify, report counts, write nothing.
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Decode the input (fixed-width flat file, .xlsx workbook, or .csv)
//   3. Classify destinations and infer countries for the foreign subset
//   4. Assign sequence numbers and validate the batch
//   5. Write static data, address data, revision workbook and counts
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/ginjaninja78/escheatment-mailing/internal/config"
	"github.com/ginjaninja78/escheatment-mailing/internal/pipeline"
	"github.com/ginjaninja78/escheatment-mailing/internal/schema"
	"github.com/ginjaninja78/escheatment-mailing/internal/writer"
	"github.com/spf13/cobra"
)

// letterCode is the mailing-template code for this run.
var letterCode string

// dryRun decodes and classifies without writing output files.
var dryRun bool

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process <input-file>",
	Short: "Prepare one mailing list for the print vendor",
	Long: `The process command reads a mailing-list input file, normalizes every
record into the canonical 26-field layout, classifies each record's
destination and writes the four output artifacts next to the input file
(or into the configured output directory).

Letter codes select the print template:
  A  = DDA    AC = DDAC
  FA = DDFA   FC = DDFC
  R  = DDR    RC = DDRC`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(args[0])
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&letterCode,
		"letter-code",
		"",
		"Mailing-template code: A, AC, FA, FC, R or RC",
	)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Decode and classify only; report counts without writing output files",
	)
}

// runProcess loads configuration and runs the pipeline for one input file.
func runProcess(inputPath string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	code := letterCode
	if code == "" {
		code = cfg.LetterCode
	}
	if code == "" {
		return fmt.Errorf("no letter code: pass --letter-code or set letter_code in %s", cfgFile)
	}
	if !schema.ValidLetterCode(code) {
		return fmt.Errorf("letter code %q is not one of %v", code, schema.LetterCodes)
	}

	logger := pipeline.NewDefaultLogger(verbose)
	p, err := pipeline.New(cfg, code, logger)
	if err != nil {
		return err
	}

	if dryRun {
		batch, err := p.Run(inputPath)
		if err != nil {
			return err
		}
		fmt.Println(writer.RenderCounts(filepath.Base(inputPath), batch.Counts()))
		fmt.Println("\nDry run: no output files written.")
		return nil
	}

	result, err := p.Process(inputPath)
	if err != nil {
		return err
	}

	fmt.Println("=== Processing Complete ===")
	for _, output := range result.Outputs {
		fmt.Printf("  ✓ %s\n", output)
	}
	fmt.Printf("Total records:   %d\n", result.Counts.Total())
	fmt.Printf("Time elapsed:    %s\n", result.ProcessingTime)
	return nil
}
