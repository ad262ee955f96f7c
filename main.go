// =============================================================================
// Escheatment Mailing Preparation - Main Entry Point
// =============================================================================
//
// Entry point for the escheatmail CLI. Initializes the Cobra CLI framework
// and delegates command execution to the cmd package.
//
// USAGE:
//   escheatmail process --letter-code A mailing_list.txt
//   escheatmail version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : core pipeline (schema, decoders, classifier, formatter,
//                  pipeline, writers, configuration)
//   - pkg/       : shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/escheatment-mailing/cmd"
)

func main() {
	cmd.Execute()
}
