package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/encoder"
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/models"
)

// zeroRand draws minimum values and zero filler, so no accidental runs appear.
type zeroRand struct{}

func (zeroRand) Intn(n int) int { return 0 }

func (zeroRand) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.rpt")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestParseBytesReferences(t *testing.T) {
	data := []byte("\x00\x01Orders.Total\x00\xFFCustomers.Name\x00junk\x00")

	table, err := ParseBytes(data, DefaultScanParams())
	require.NoError(t, err)
	assert.Equal(t, []models.ExtractedReference{
		{Table: "Customers", Field: "Name", FullReference: "Customers.Name"},
		{Table: "Orders", Field: "Total", FullReference: "Orders.Total"},
	}, table.References)
}

func TestParseBytesDuplicatesCollapse(t *testing.T) {
	data := []byte("A.B.C\x00A.B.C\x00\x00A.B.C")

	table, err := ParseBytes(data, DefaultScanParams())
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, models.ExtractedReference{Table: "A", Field: "B.C", FullReference: "A.B.C"}, table.References[0])
}

func TestParseFileEmpty(t *testing.T) {
	logger, _ := test.NewNullLogger()
	path := writeTemp(t, nil)

	table := ParseFile(path, Options{Logger: logger})
	require.NotNil(t, table)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, []string{"table", "field", "full_reference"}, table.Columns())
	assert.Equal(t, path, table.Source)
}

func TestParseFileMissing(t *testing.T) {
	logger, hook := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "missing.rpt")

	table := ParseFile(path, Options{Logger: logger})
	require.NotNil(t, table)
	assert.Equal(t, 0, table.Len())
	assert.Len(t, table.Columns(), 3)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Data, logrus.ErrorKey)
}

func TestParseFileInvalidParams(t *testing.T) {
	logger, hook := test.NewNullLogger()
	path := writeTemp(t, []byte("Customers.Name"))

	params := DefaultScanParams()
	params.MinLen = 0
	table := ParseFile(path, Options{Params: params, Logger: logger})
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestParseFileLogsReferences(t *testing.T) {
	logger, hook := test.NewNullLogger()
	path := writeTemp(t, []byte("Customers.Name\x00Orders.Total"))

	table := ParseFile(path, Options{Logger: logger})
	assert.Equal(t, 2, table.Len())

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "  - Customers.Name")
	assert.Contains(t, messages, "  - Orders.Total")
}

func TestRoundTripDefaultLayout(t *testing.T) {
	c, err := encoder.Build(encoder.DefaultLayout(), zeroRand{})
	require.NoError(t, err)
	path := writeTemp(t, c.Bytes())

	logger, _ := test.NewNullLogger()
	table := ParseFile(path, Options{Logger: logger})
	assert.Equal(t, 0, table.Len())
}

func TestRoundTripDottedFields(t *testing.T) {
	layout := encoder.DefaultLayout()
	layout.Tables = []encoder.TableSpec{
		{Name: "Sales", Fields: []string{"Region.Code", "Amount"}},
	}
	c, err := encoder.Build(layout, zeroRand{})
	require.NoError(t, err)

	table, err := ParseBytes(c.Bytes(), DefaultScanParams())
	require.NoError(t, err)
	assert.Equal(t, []models.ExtractedReference{
		{Table: "FIELD:Region", Field: "Code:TYPE1", FullReference: "FIELD:Region.Code:TYPE1"},
	}, table.References)
}

func TestIsCompound(t *testing.T) {
	assert.True(t, IsCompound(append(append([]byte{}, compoundSignature...), 0x00)))
	assert.False(t, IsCompound([]byte("CR\x00\x0A\x00\x00\x00")))
	assert.False(t, IsCompound(compoundSignature[:4]))
}

func TestParseFileCompoundFallback(t *testing.T) {
	logger, hook := test.NewNullLogger()
	data := append(append([]byte{}, compoundSignature...), []byte("\x00Customers.Name\x00")...)
	path := writeTemp(t, data)

	table := ParseFile(path, Options{UnpackCompound: true, Logger: logger})
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Customers.Name", table.References[0].FullReference)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestParseFileUnpackIgnoresPlainFiles(t *testing.T) {
	logger, hook := test.NewNullLogger()
	path := writeTemp(t, []byte("Orders.Total"))

	table := ParseFile(path, Options{UnpackCompound: true, Logger: logger})
	assert.Equal(t, 1, table.Len())
	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, logrus.WarnLevel, e.Level)
	}
}

// panicHook fails the first log entry carrying the given message.
type panicHook struct{ message string }

func (panicHook) Levels() []logrus.Level { return []logrus.Level{logrus.InfoLevel} }

func (h panicHook) Fire(e *logrus.Entry) error {
	if e.Message == h.message {
		panic("hook failure")
	}
	return nil
}

func TestParseFileRecoversFromPanic(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.AddHook(panicHook{message: "Read report file"})
	path := writeTemp(t, []byte("Customers.Name"))

	var table *models.ReferenceTable
	require.NotPanics(t, func() {
		table = ParseFile(path, Options{Logger: logger})
	})
	require.NotNil(t, table)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, path, table.Source)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Data[logrus.ErrorKey].(error).Error(), "hook failure")
}

func TestParseFileConcurrent(t *testing.T) {
	inputs := map[string][]byte{
		"plain":    []byte("\x00Orders.Total\x00"),
		"pair":     []byte("Customers.Name\x00Orders.Total"),
		"compound": compoundDoc(cfbSector, "\x00Customers.Name\x00", "\x00Stray.Bytes\x00"),
		"oversize": compoundDoc(1<<62, "\x00Customers.Name\x00", ""),
		"empty":    nil,
	}
	want := map[string][]string{
		"plain":    {"Orders.Total"},
		"pair":     {"Customers.Name", "Orders.Total"},
		"compound": {"Customers.Name"},
		"oversize": {"Customers.Name"},
		"empty":    nil,
	}

	logger, _ := test.NewNullLogger()
	for name, data := range inputs {
		name := name
		path := writeTemp(t, data)
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for i := 0; i < 4; i++ {
				table := ParseFile(path, Options{UnpackCompound: true, Logger: logger})
				var got []string
				for _, ref := range table.References {
					got = append(got, ref.FullReference)
				}
				assert.Equal(t, want[name], got)
				assert.Equal(t, path, table.Source)
			}
		})
	}
}
