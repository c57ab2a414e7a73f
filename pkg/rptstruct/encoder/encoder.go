package encoder

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/models"
)

// Encoder writes synthetic report containers to an io.Writer.
type Encoder struct {
	w      io.Writer
	rng    Rand
	layout Layout
}

// NewEncoder creates an encoder using the default layout.
// A nil rng falls back to DefaultRand.
func NewEncoder(w io.Writer, rng Rand) *Encoder {
	if rng == nil {
		rng = DefaultRand()
	}
	return &Encoder{w: w, rng: rng, layout: DefaultLayout()}
}

// WithLayout replaces the layout used by subsequent Encode calls.
func (e *Encoder) WithLayout(l Layout) *Encoder {
	e.layout = l
	return e
}

// Encode builds one container and writes it in a single call.
func (e *Encoder) Encode() (*models.StructureSummary, error) {
	c, err := Build(e.layout, e.rng)
	if err != nil {
		return nil, err
	}
	n, err := e.w.Write(c.Bytes())
	if err != nil {
		return nil, err
	}
	summary := e.layout.Summary()
	summary.Size = n
	return summary, nil
}

// WriteFile builds a container and writes it to path.
// Write failures are returned as is; no partial-file recovery is attempted.
func WriteFile(path string, layout Layout, rng Rand) (*models.StructureSummary, error) {
	if rng == nil {
		rng = DefaultRand()
	}
	c, err := Build(layout, rng)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, c.Bytes(), 0644); err != nil {
		return nil, err
	}
	summary := layout.Summary()
	summary.Path = path
	summary.Size = c.Len()
	return summary, nil
}

// Build draws all random values and lays out every region.
func Build(layout Layout, rng Rand) (*models.Container, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}

	c := &models.Container{
		Header: []byte(Magic),
	}

	// Metadata
	span := int(layout.MetadataMax-layout.MetadataMin) + 1
	c.RecordCount = layout.MetadataMin + uint32(rng.Intn(span))
	c.Metadata = binary.LittleEndian.AppendUint32([]byte(MetadataTag), c.RecordCount)

	// Tables
	for _, spec := range layout.Tables {
		rec, block := encodeTable(spec, layout.MaxTypeCode, rng)
		c.TableRecords = append(c.TableRecords, rec)
		c.Tables = append(c.Tables, block)
	}

	// Sections
	for _, name := range layout.Sections {
		size := layout.SectionSizeMin + rng.Intn(layout.SectionSizeMax-layout.SectionSizeMin)
		rec, block, err := encodeSection(name, size, rng)
		if err != nil {
			return nil, err
		}
		c.SectionRecords = append(c.SectionRecords, rec)
		c.Sections = append(c.Sections, block)
	}

	// Formulas
	formulas, err := randomBytes(rng, layout.FormulaLen)
	if err != nil {
		return nil, NewRegionError("formulas", "", err)
	}
	c.Formulas = binary.LittleEndian.AppendUint32([]byte(FormulasTag), uint32(layout.FormulaLen))
	c.Formulas = append(c.Formulas, formulas...)

	return c, nil
}

// encodeTable lays out header || size(u32) || fields.
// The size counts the header, the fields and the size value itself.
func encodeTable(spec TableSpec, maxTypeCode int, rng Rand) (models.TableRecord, []byte) {
	header := tableHeader(spec.Name)
	rec := models.TableRecord{Name: spec.Name}

	var fields []byte
	for _, name := range spec.Fields {
		code := uint8(1 + rng.Intn(maxTypeCode))
		rec.Fields = append(rec.Fields, models.FieldDef{Name: name, TypeCode: code})
		fields = append(fields, fieldDef(name, code)...)
	}
	rec.DeclaredSize = uint32(len(header) + len(fields) + sizeFieldLen)

	block := make([]byte, 0, rec.DeclaredSize)
	block = append(block, header...)
	block = binary.LittleEndian.AppendUint32(block, rec.DeclaredSize)
	return rec, append(block, fields...)
}

// encodeSection lays out header || size(u32) || filler, with the whole block exactly size bytes.
func encodeSection(name string, size int, rng Rand) (models.SectionRecord, []byte, error) {
	header := sectionHeader(name)
	fill := size - len(header) - sizeFieldLen
	if fill < 0 {
		return models.SectionRecord{}, nil, NewRegionError("section", name,
			fmt.Errorf("%w: declared %d, header needs %d", ErrSectionOverflow, size, len(header)+sizeFieldLen))
	}

	payload, err := randomBytes(rng, fill)
	if err != nil {
		return models.SectionRecord{}, nil, NewRegionError("section", name, err)
	}

	block := make([]byte, 0, size)
	block = append(block, header...)
	block = binary.LittleEndian.AppendUint32(block, uint32(size))
	block = append(block, payload...)

	return models.SectionRecord{
		Name:         name,
		DeclaredSize: uint32(size),
		Payload:      payload,
	}, block, nil
}

func fieldDef(name string, code uint8) string {
	return FieldPrefix + name + ":" + TypePrefix + strconv.Itoa(int(code)) + "\x00"
}

func randomBytes(rng Rand, n int) ([]byte, error) {
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (l Layout) validate() error {
	switch {
	case len(l.Tables) == 0:
		return fmt.Errorf("%w: no tables", ErrInvalidLayout)
	case l.MetadataMax < l.MetadataMin:
		return fmt.Errorf("%w: metadata bounds [%d, %d]", ErrInvalidLayout, l.MetadataMin, l.MetadataMax)
	case l.MaxTypeCode < 1 || l.MaxTypeCode > 255:
		return fmt.Errorf("%w: max type code %d", ErrInvalidLayout, l.MaxTypeCode)
	case l.SectionSizeMin < 0 || l.SectionSizeMax <= l.SectionSizeMin:
		return fmt.Errorf("%w: section size bounds [%d, %d)", ErrInvalidLayout, l.SectionSizeMin, l.SectionSizeMax)
	case l.FormulaLen < 0:
		return fmt.Errorf("%w: formula length %d", ErrInvalidLayout, l.FormulaLen)
	}
	for _, t := range l.Tables {
		if len(t.Fields) == 0 {
			return fmt.Errorf("%w: table %q has no fields", ErrInvalidLayout, t.Name)
		}
	}
	return nil
}
