package pipeline

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/ginjaninja78/escheatment-mailing/internal/config"
	"github.com/ginjaninja78/escheatment-mailing/internal/decoder"
	"github.com/ginjaninja78/escheatment-mailing/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger keeps the test output quiet while capturing log lines.
type testLogger struct {
	errors []string
}

func (l *testLogger) Debug(format string, args ...interface{}) {}
func (l *testLogger) Info(format string, args ...interface{})  {}
func (l *testLogger) Error(format string, args ...interface{}) {
	l.errors = append(l.errors, format)
}

func canonicalRecord(lt, city, state, zip string, lines ...string) schema.Record {
	r := schema.NewRecord()
	r.Set(schema.FileTransmissionDate, "20180115")
	r.Set(schema.LT, lt)
	r.Set(schema.CompanyName, "UNION PACIFIC CORP")
	r.Set(schema.MailingCity, city)
	r.Set(schema.MailingState, state)
	r.Set(schema.Zip, zip)
	r.Set(schema.EscheatmentState, "Nebraska")
	for i, line := range lines {
		r[schema.Index(schema.NameAddress1)+i] = line
	}
	return r
}

// writeFlatFile encodes the records as fixed-width lines in a temp file.
func writeFlatFile(t *testing.T, records ...schema.Record) string {
	t.Helper()
	var b strings.Builder
	for _, r := range records {
		line, err := decoder.EncodeFixedLine(r)
		require.NoError(t, err)
		b.WriteString(line)
		b.WriteString("\n")
	}
	path := filepath.Join(t.TempDir(), "ast_input.txt")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

func mixedBatchFile(t *testing.T) string {
	t.Helper()
	return writeFlatFile(t,
		canonicalRecord("LT0000001", "OMAHA", "NE", "681790001", "JOHN DOE", "123 MAIN ST", "APT 4B"),
		canonicalRecord("LT0000002", "TORONTO", "FO", "", "J SMITH", "1 KING ST W"),
		canonicalRecord("LT0000003", "ACAPULCO", "FO", "", "J GARCIA", "AV JUAREZ 100"),
		canonicalRecord("LT0000004", "ZURICH", "FO", "", "H MUELLER", "BAHNHOFSTRASSE 1"),
	)
}

func newTestPipeline(t *testing.T, cfg *config.Config) *Pipeline {
	t.Helper()
	p, err := New(cfg, "A", &testLogger{})
	require.NoError(t, err)
	return p
}

func TestNewRejectsUnknownLetterCode(t *testing.T) {
	_, err := New(config.Default(), "XX", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"XX"`)
}

func TestRunPartitionsAndSequences(t *testing.T) {
	p := newTestPipeline(t, config.Default())
	batch, err := p.Run(mixedBatchFile(t))
	require.NoError(t, err)

	require.Len(t, batch.Mexico, 1)
	require.Len(t, batch.Canada, 1)
	require.Len(t, batch.Other, 1)
	require.Len(t, batch.Domestic, 1)

	// Emission order is Mexico, Canada, other foreign, domestic, with one
	// process-wide 1-based sequence across the partitions.
	all := batch.All()
	require.Len(t, all, 4)
	assert.Equal(t, "LT0000003", all[0].Get(schema.LT))
	assert.Equal(t, "LT0000002", all[1].Get(schema.LT))
	assert.Equal(t, "LT0000004", all[2].Get(schema.LT))
	assert.Equal(t, "LT0000001", all[3].Get(schema.LT))
	for i, r := range all {
		assert.Equal(t, strconv.Itoa(i+1), r.Get(schema.Sequence))
		assert.Equal(t, "A", r.Get(schema.LetterCode))
	}

	// Domestic zip gains the hyphen; foreign zips are blanked.
	assert.Equal(t, "68179-0001", batch.Domestic[0].Get(schema.Zip))
	assert.Equal(t, "", batch.Canada[0].Get(schema.Zip))

	counts := batch.Counts()
	assert.Equal(t, 3, counts.Foreign())
	assert.Equal(t, 4, counts.Total())
}

func TestProcessWritesAllArtifacts(t *testing.T) {
	outputDir := t.TempDir()
	cfg := config.Default()
	cfg.OutputDir = outputDir

	p := newTestPipeline(t, cfg)
	result, err := p.Process(mixedBatchFile(t))
	require.NoError(t, err)

	require.Len(t, result.Outputs, 4)
	assert.Equal(t, filepath.Join(outputDir, "StaticData.dat"), result.Outputs[0])
	assert.Equal(t, filepath.Join(outputDir, "AddressData.csv"), result.Outputs[1])
	assert.Equal(t, filepath.Join(outputDir, "ast_input_rev.xlsx"), result.Outputs[2])
	assert.Equal(t, filepath.Join(outputDir, "COUNTS.txt"), result.Outputs[3])
	for _, path := range result.Outputs {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.NotZero(t, info.Size(), path)
	}

	staticData, err := os.ReadFile(result.Outputs[0])
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(staticData), "\r\n"), "\r\n")
	require.Len(t, lines, 5) // header + 4 records
	assert.Contains(t, lines[1], `"LT0000003"`)
	assert.Contains(t, lines[4], `"LT0000001"`)

	countsData, err := os.ReadFile(result.Outputs[3])
	require.NoError(t, err)
	assert.Contains(t, string(countsData), "Filename: ast_input.txt")
	assert.Contains(t, string(countsData), "Domestic count: 1")
	assert.Contains(t, string(countsData), "Foreign count: 3")
	assert.Contains(t, string(countsData), "Total Records: 4")
}

func TestProcessArchivesInput(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.ArchiveInputs = true
	cfg.InputArchiveDir = filepath.Join(t.TempDir(), "archive")

	input := mixedBatchFile(t)
	p := newTestPipeline(t, cfg)
	result, err := p.Process(input)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cfg.InputArchiveDir, "ast_input.txt"), result.ArchivedTo)
	assert.FileExists(t, result.ArchivedTo)
	assert.NoFileExists(t, input)
}

func TestProcessDefaultsOutputDirToInputDir(t *testing.T) {
	input := mixedBatchFile(t)
	p := newTestPipeline(t, config.Default())
	result, err := p.Process(input)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(input), "StaticData.dat"), result.Outputs[0])
}

func TestRunDecodesDelimitedInput(t *testing.T) {
	content := strings.Join([]string{
		`"XRX Acct Seq","Issue Name","Company","Account","Name/Address1","Name/Address2","City","Zip","State","Eligibility State"`,
		`"LT0000001","UNION PACIFIC CORP","42","778899","JOHN DOE","123 MAIN ST","OMAHA","681790001","NE","NE"`,
	}, "\r\n") + "\r\n"
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p := newTestPipeline(t, config.Default())
	batch, err := p.Run(path)
	require.NoError(t, err)

	require.Len(t, batch.Domestic, 1)
	r := batch.Domestic[0]
	assert.Equal(t, "LT0000001", r.Get(schema.LT))
	assert.Equal(t, "Nebraska", r.Get(schema.EscheatmentState))
	assert.Equal(t, "68179-0001", r.Get(schema.Zip))
}

func TestRunAbortsOnMalformedFlatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("NOT LONG ENOUGH\n"), 0644))

	p := newTestPipeline(t, config.Default())
	_, err := p.Run(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestRunMissingInputFile(t *testing.T) {
	p := newTestPipeline(t, config.Default())
	_, err := p.Run(filepath.Join(t.TempDir(), "no-such-file.txt"))
	assert.Error(t, err)
}
