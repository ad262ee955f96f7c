// =============================================================================
// Escheatment Mailing Preparation - Batch Pipeline
// =============================================================================
//
// The pipeline sequences one whole mailing run: decode the input file into
// canonical records, classify each record's destination, infer countries
// for the foreign subset, assign final sequence numbers and write the four
// output artifacts.
//
// PIPELINE STAGES:
//   1. Decode   - fixed-width flat file, or spreadsheet/delimited table
//                 through the field mapper
//   2. Classify - letter code stamp, FO split, zip normalization
//   3. Infer    - city sort + Canada/Mexico/other-foreign heuristic
//   4. Sequence - one process-wide 1-based counter, emission order
//                 Mexico, Canada, other foreign, domestic
//   5. Validate - structural invariants, before any file is opened
//   6. Write    - static data, address data, revision workbook, counts
//
// The run is all-or-nothing: any fatal condition (malformed fixed-width
// line, unknown escheatment state) aborts before stage 6, so either all
// four artifacts appear or none do.
//
// =============================================================================

package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/escheatment-mailing/internal/classifier"
	"github.com/ginjaninja78/escheatment-mailing/internal/config"
	"github.com/ginjaninja78/escheatment-mailing/internal/decoder"
	"github.com/ginjaninja78/escheatment-mailing/internal/schema"
	"github.com/ginjaninja78/escheatment-mailing/internal/spreadsheet"
	"github.com/ginjaninja78/escheatment-mailing/internal/validation"
	"github.com/ginjaninja78/escheatment-mailing/internal/writer"
	"github.com/ginjaninja78/escheatment-mailing/pkg/utils"
)

// Batch is the full set of records from one input file, partitioned by
// destination category. The union of the four partitions is the input set;
// the partitions are disjoint.
type Batch struct {
	Mexico   []schema.Record
	Canada   []schema.Record
	Other    []schema.Record
	Domestic []schema.Record

	// SourceFile is the input file the batch was decoded from.
	SourceFile string
}

// All returns the records in emission order: Mexico, Canada, other
// foreign, then domestic.
func (b *Batch) All() []schema.Record {
	all := make([]schema.Record, 0, len(b.Mexico)+len(b.Canada)+len(b.Other)+len(b.Domestic))
	all = append(all, b.Mexico...)
	all = append(all, b.Canada...)
	all = append(all, b.Other...)
	return append(all, b.Domestic...)
}

// Counts returns the per-category record counts.
func (b *Batch) Counts() writer.Counts {
	return writer.Counts{
		Domestic: len(b.Domestic),
		Mexico:   len(b.Mexico),
		Canada:   len(b.Canada),
		Other:    len(b.Other),
	}
}

// Result is the outcome of one successful run.
type Result struct {
	// InputFile is the processed input path.
	InputFile string

	// Outputs lists the artifact paths that were written.
	Outputs []string

	// ArchivedTo is where the input file was moved, when archival is on.
	ArchivedTo string

	// Counts are the per-category record counts.
	Counts writer.Counts

	// ProcessingTime is the time taken for the whole run.
	ProcessingTime time.Duration
}

// Pipeline runs mailing batches with one configuration and letter code.
type Pipeline struct {
	cfg        *config.Config
	letterCode string
	logger     Logger
}

// New creates a pipeline. The letter code must be one of the known
// template codes; it is stamped into every record.
func New(cfg *config.Config, letterCode string, logger Logger) (*Pipeline, error) {
	if !schema.ValidLetterCode(letterCode) {
		return nil, fmt.Errorf("letter code %q is not one of %s", letterCode, strings.Join(schema.LetterCodes, ", "))
	}
	if logger == nil {
		logger = NewDefaultLogger(false)
	}
	return &Pipeline{cfg: cfg, letterCode: letterCode, logger: logger}, nil
}

// Run decodes, classifies and sequences one input file, returning the
// partitioned batch without writing any output. Process wraps Run with the
// output stage.
func (p *Pipeline) Run(inputPath string) (*Batch, error) {
	records, err := p.decode(inputPath)
	if err != nil {
		return nil, err
	}
	p.logger.Info("decoded %d record(s) from %s", len(records), filepath.Base(inputPath))

	domestic, foreign := classifier.Classify(records, p.letterCode)
	p.logger.Debug("classified: %d domestic, %d foreign pre-classification", len(domestic), len(foreign))

	canada, mexico, other := classifier.InferCountries(foreign)

	batch := &Batch{
		Mexico:     mexico,
		Canada:     canada,
		Other:      other,
		Domestic:   domestic,
		SourceFile: inputPath,
	}

	assignSequence(batch)

	if errs := validation.ValidateBatch(batch.All(), p.letterCode); len(errs) > 0 {
		p.logger.Error("batch failed validation:\n%s", validation.FormatErrors(errs))
		return nil, fmt.Errorf("batch failed validation with %d error(s)", len(errs))
	}

	return batch, nil
}

// Process runs the full pipeline for one input file and writes the four
// output artifacts.
func (p *Pipeline) Process(inputPath string) (*Result, error) {
	startTime := time.Now()

	batch, err := p.Run(inputPath)
	if err != nil {
		return nil, err
	}

	outputDir := p.cfg.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}
	fm := utils.NewFileManager(outputDir, p.cfg.InputArchiveDir)
	if err := fm.EnsureOutputDir(); err != nil {
		return nil, err
	}

	all := batch.All()
	counts := batch.Counts()

	staticPath := fm.OutputPath(p.cfg.StaticDataFile)
	if err := writer.WriteStaticData(staticPath, all); err != nil {
		return nil, err
	}

	addressPath := fm.OutputPath(p.cfg.AddressDataFile)
	if err := writer.WriteAddressData(addressPath, all); err != nil {
		return nil, err
	}

	workbookName := utils.GenerateOutputFileName(p.cfg.WorkbookNameFormat, inputPath)
	workbookPath := fm.OutputPath(workbookName)
	if err := writer.WriteWorkbook(workbookPath, p.cfg.WorkbookSheet, all); err != nil {
		return nil, err
	}

	countsPath := fm.OutputPath(p.cfg.CountsFile)
	if err := writer.WriteCounts(countsPath, filepath.Base(inputPath), counts); err != nil {
		return nil, err
	}
	p.logger.Info("%s", writer.RenderCounts(filepath.Base(inputPath), counts))

	result := &Result{
		InputFile:      inputPath,
		Outputs:        []string{staticPath, addressPath, workbookPath, countsPath},
		Counts:         counts,
		ProcessingTime: time.Since(startTime),
	}

	if p.cfg.ArchiveInputs {
		archived, err := fm.ArchiveInputFile(inputPath)
		if err != nil {
			return nil, err
		}
		result.ArchivedTo = archived
		p.logger.Info("archived input to %s", archived)
	}

	return result, nil
}

// decode reads the input file into canonical records, choosing the decode
// path from the file extension: workbooks and delimited files go through
// the field mapper and tabular decoder, anything else is treated as the
// fixed-width flat file.
func (p *Pipeline) decode(inputPath string) ([]schema.Record, error) {
	switch strings.ToUpper(strings.TrimPrefix(filepath.Ext(inputPath), ".")) {
	case "XLS", "XLSX":
		p.logger.Info("formatting data from spreadsheet")
		table, err := spreadsheet.ReadWorkbook(inputPath)
		if err != nil {
			return nil, err
		}
		return p.decodeTable(table)
	case "CSV":
		p.logger.Info("formatting data from delimited text")
		table, err := spreadsheet.ReadDelimited(inputPath)
		if err != nil {
			return nil, err
		}
		return p.decodeTable(table)
	default:
		p.logger.Info("formatting data from flat file")
		file, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open flat file: %w", err)
		}
		defer file.Close()
		return decoder.DecodeFixedFile(file)
	}
}

// decodeTable maps the table header and decodes the data rows, logging the
// mapper's diagnostics for the operator.
func (p *Pipeline) decodeTable(table [][]string) ([]schema.Record, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("input file has no header row")
	}
	mapping := schema.MapHeader(table[0])
	p.logger.Info("fields found: %s", strings.Join(mapping.Matched, ", "))
	if len(mapping.Unmatched) > 0 {
		p.logger.Info("fields not found: %s", strings.Join(mapping.Unmatched, ", "))
	}
	return decoder.DecodeTable(table, mapping)
}

// assignSequence stamps the process-wide 1-based sequence number into each
// record, in emission order.
func assignSequence(batch *Batch) {
	seq := 0
	for _, record := range batch.All() {
		seq++
		record.Set(schema.Sequence, strconv.Itoa(seq))
	}
}
