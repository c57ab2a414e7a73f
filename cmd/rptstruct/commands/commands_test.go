package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/models"
)

// execute runs the CLI in a scratch working directory and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Cleanup(func() {
		viper.Reset()
		logrus.SetOutput(os.Stderr)
	})

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestGenerateDefaultPath(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "generate", "--output-dir", dir, "--seed", "5")
	require.NoError(t, err)

	path := filepath.Join(dir, DefaultReportName)
	assert.Equal(t, path, strings.TrimSpace(out))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("CR\x00\x0A\x00\x00\x00")))
}

func TestGenerateSeedIsReproducible(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.rpt")
	b := filepath.Join(dir, "b.rpt")

	_, err := execute(t, "generate", "--out", a, "--seed", "11")
	require.NoError(t, err)
	_, err = execute(t, "generate", "--out", b, "--seed", "11")
	require.NoError(t, err)

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestGenerateCount(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "generate", "--out", filepath.Join(dir, "batch.rpt"), "--count", "3")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "batch_001.rpt"),
		filepath.Join(dir, "batch_002.rpt"),
		filepath.Join(dir, "batch_003.rpt"),
	}, strings.Fields(out))
	for _, p := range strings.Fields(out) {
		assert.FileExists(t, p)
	}
}

func TestGenerateInvalidCount(t *testing.T) {
	_, err := execute(t, "generate", "--output-dir", t.TempDir(), "--count", "0")
	assert.Error(t, err)
}

func TestGenerateMissingDirectory(t *testing.T) {
	_, err := execute(t, "generate", "--out", filepath.Join(t.TempDir(), "none", "x.rpt"))
	assert.Error(t, err)
}

func TestParseWritesExports(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	src := filepath.Join(in, "sample.rpt")
	require.NoError(t, os.WriteFile(src, []byte("\x00Orders.Total\x00Customers.Name\x00"), 0644))

	_, err := execute(t, "parse", src, "--output-dir", out, "--format", "csv,json")
	require.NoError(t, err)

	csvData, err := os.ReadFile(filepath.Join(out, "sample.csv"))
	require.NoError(t, err)
	assert.Equal(t, "table,field,full_reference\nCustomers,Name,Customers.Name\nOrders,Total,Orders.Total\n", string(csvData))

	jsonData, err := os.ReadFile(filepath.Join(out, "sample.json"))
	require.NoError(t, err)
	var table models.ReferenceTable
	require.NoError(t, json.Unmarshal(jsonData, &table))
	assert.Equal(t, 2, table.Len())
	assert.NoFileExists(t, filepath.Join(out, "sample.xlsx"))
}

func TestParseDefaultInputMissing(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	_, err := execute(t, "parse", "--input-dir", in, "--output-dir", out)
	require.NoError(t, err)

	csvData, err := os.ReadFile(filepath.Join(out, "dummy_report.csv"))
	require.NoError(t, err)
	assert.Equal(t, "table,field,full_reference\n", string(csvData))
	assert.FileExists(t, filepath.Join(out, "dummy_report.xlsx"))
}

func TestParseBatchSurvivesBadInput(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	good := filepath.Join(in, "good.rpt")
	require.NoError(t, os.WriteFile(good, []byte("A.B.C"), 0644))

	_, err := execute(t, "parse", good, filepath.Join(in, "missing.rpt"), "--output-dir", out, "--format", "csv", "--workers", "2")
	require.NoError(t, err)

	goodCSV, err := os.ReadFile(filepath.Join(out, "good.csv"))
	require.NoError(t, err)
	assert.Equal(t, "table,field,full_reference\nA,B.C,A.B.C\n", string(goodCSV))
	assert.FileExists(t, filepath.Join(out, "missing.csv"))
}

func TestParseSameBaseNames(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	a := filepath.Join(in, "a", "report.rpt")
	b := filepath.Join(in, "b", "report.rpt")
	require.NoError(t, os.MkdirAll(filepath.Dir(a), 0755))
	require.NoError(t, os.MkdirAll(filepath.Dir(b), 0755))
	require.NoError(t, os.WriteFile(a, []byte("Alpha.One"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("Beta.Two"), 0644))

	_, err := execute(t, "parse", a, b, "--output-dir", out, "--format", "csv", "--workers", "2")
	require.NoError(t, err)

	first, err := os.ReadFile(filepath.Join(out, "report.csv"))
	require.NoError(t, err)
	assert.Equal(t, "table,field,full_reference\nAlpha,One,Alpha.One\n", string(first))

	second, err := os.ReadFile(filepath.Join(out, "report_002.csv"))
	require.NoError(t, err)
	assert.Equal(t, "table,field,full_reference\nBeta,Two,Beta.Two\n", string(second))
}

func TestOutputNames(t *testing.T) {
	tests := []struct {
		name   string
		inputs []string
		want   []string
	}{
		{"distinct", []string{"a/x.rpt", "b/y.rpt"}, []string{"x", "y"}},
		{"same base", []string{"a/r.rpt", "b/r.rpt", "c/r.rpt"}, []string{"r", "r_002", "r_003"}},
		{"suffix in use", []string{"a/r.rpt", "b/r.rpt", "r_002.rpt"}, []string{"r", "r_003", "r_002"}},
		{"extension only differs", []string{"r.rpt", "r.bin"}, []string{"r", "r_002"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outputNames(tt.inputs))
		})
	}
}

func TestParseBadFormat(t *testing.T) {
	_, err := execute(t, "parse", "--output-dir", t.TempDir(), "--format", "pdf")
	assert.Error(t, err)
}

func TestLayoutCommand(t *testing.T) {
	out, err := execute(t, "layout")
	require.NoError(t, err)

	var summary models.StructureSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "Customers", summary.Tables[0].Name)
	assert.Equal(t, []string{"ReportHeader", "PageHeader", "Details", "PageFooter", "ReportFooter"}, summary.Sections)
}

func TestGeneratePath(t *testing.T) {
	assert.Equal(t, "out.rpt", generatePath(nil, "out.rpt", 0, 1))
	assert.Equal(t, "out_002.rpt", generatePath(nil, "out.rpt", 1, 2))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
