package payroll

import (
	"fmt"

	"github.com/currency-covenant/amg-delivery-logger/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

// Block is a region's reserved slice of the template: a contiguous row
// range plus the row whose cell styles are cloned onto written rows.
type Block struct {
	Start int
	End   int
	Donor int
}

// Layout describes the fixed geometry of the payroll template. The row
// ranges are baked in because the underlying document carries pre-applied
// borders and shading per region; the writer stays inside them instead of
// inserting rows.
type Layout struct {
	Sheet  string
	Blocks map[domain.Region]Block
}

func DefaultLayout() Layout {
	return Layout{
		Sheet: "Payroll",
		Blocks: map[domain.Region]Block{
			domain.RegionRedlands:          {Start: 6, End: 22, Donor: 6},
			domain.RegionFloater:           {Start: 24, End: 40, Donor: 24},
			domain.RegionLancasterPalmdale: {Start: 48, End: 66, Donor: 48},
			domain.RegionHesperia:          {Start: 68, End: 74, Donor: 68},
		},
	}
}

var (
	identityColumns = []string{"A", "B", "C", "D"}
	dayColumns      = []string{"F", "G", "H", "I", "J", "K", "L"}
	allColumns      = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M"}
)

const totalColumn = "M"

// Template wraps the payroll workbook during a single report request.
type Template struct {
	file   *excelize.File
	layout Layout
}

// OpenTemplate loads the payroll template from disk.
func OpenTemplate(path string) (*Template, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open payroll template: %w", err)
	}
	layout := DefaultLayout()
	if idx, err := file.GetSheetIndex(layout.Sheet); err != nil || idx < 0 {
		// Older template revisions keep the layout on the first sheet
		// under a different name.
		layout.Sheet = file.GetSheetName(0)
	}
	if layout.Sheet == "" {
		_ = file.Close()
		return nil, fmt.Errorf("payroll template has no worksheet")
	}
	return &Template{file: file, layout: layout}, nil
}

// NewDefaultTemplate builds the baked-in layout programmatically: title,
// column headers, region headings and a styled donor row per region. It
// stands in when no template file is configured and backs the tests.
func NewDefaultTemplate() (*Template, error) {
	return newTemplateWithLayout(DefaultLayout())
}

func newTemplateWithLayout(layout Layout) (*Template, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", layout.Sheet); err != nil {
		return nil, err
	}

	titleStyle, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	headingStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	if err != nil {
		return nil, err
	}
	donorStyle, err := file.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	sheet := layout.Sheet
	if err := file.SetCellValue(sheet, "A1", "Weekly Payroll — Deliveries by Driver"); err != nil {
		return nil, err
	}
	if err := file.MergeCell(sheet, "A1", "M1"); err != nil {
		return nil, err
	}
	if err := file.SetCellStyle(sheet, "A1", "M1", titleStyle); err != nil {
		return nil, err
	}

	headers := []string{"#", "Area", "Role", "Driver", "Number", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Weekly Total"}
	for i, col := range allColumns {
		addr := cellAddr(col, 4)
		if err := file.SetCellValue(sheet, addr, headers[i]); err != nil {
			return nil, err
		}
	}
	if err := file.SetCellStyle(sheet, "A4", "M4", headerStyle); err != nil {
		return nil, err
	}

	for _, region := range domain.Regions() {
		block, ok := layout.Blocks[region]
		if !ok {
			continue
		}
		heading := cellAddr("A", block.Start-1)
		if err := file.SetCellValue(sheet, heading, region.Label()); err != nil {
			return nil, err
		}
		if err := file.SetCellStyle(sheet, heading, heading, headingStyle); err != nil {
			return nil, err
		}
		donorStart := cellAddr("A", block.Donor)
		donorEnd := cellAddr(totalColumn, block.Donor)
		if err := file.SetCellStyle(sheet, donorStart, donorEnd, donorStyle); err != nil {
			return nil, err
		}
	}

	if err := file.SetColWidth(sheet, "D", "D", 24); err != nil {
		return nil, err
	}
	if err := file.SetColWidth(sheet, "B", "B", 18); err != nil {
		return nil, err
	}
	if err := file.SetColWidth(sheet, "M", "M", 14); err != nil {
		return nil, err
	}

	return &Template{file: file, layout: layout}, nil
}

func (t *Template) Close() error {
	return t.file.Close()
}

// File exposes the underlying workbook for cell-level inspection.
func (t *Template) File() *excelize.File {
	return t.file
}

// WriteBuckets writes every region independently and returns one outcome
// per region in template order.
func (t *Template) WriteBuckets(buckets map[domain.Region][]domain.BucketDriver) ([]domain.RegionOutcome, error) {
	var outcomes []domain.RegionOutcome
	for _, region := range domain.Regions() {
		outcome, err := t.writeRegion(region, buckets[region])
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// writeRegion walks the bucket with a row cursor. One row per driver line;
// the sequence index advances once per driver. Once the cursor passes the
// block's end the region is full and every remaining line is dropped
// without touching the sheet. Identity columns are merged vertically
// across multi-line drivers; per-line columns never are.
func (t *Template) writeRegion(region domain.Region, bucket []domain.BucketDriver) (domain.RegionOutcome, error) {
	outcome := domain.RegionOutcome{Region: region}
	block, ok := t.layout.Blocks[region]
	if !ok {
		for _, d := range bucket {
			outcome.Dropped += len(d.Lines)
		}
		return outcome, nil
	}

	donors, err := t.donorStyles(block)
	if err != nil {
		return outcome, err
	}

	row := block.Start
	index := 1
	full := false

	for _, d := range bucket {
		if full {
			outcome.Dropped += len(d.Lines)
			continue
		}

		firstRow := row
		for _, line := range d.Lines {
			if row > block.End {
				full = true
				outcome.Dropped++
				continue
			}

			if err := t.setCell("A", row, index, donors); err != nil {
				return outcome, err
			}
			if err := t.setCell("B", row, region.Label(), donors); err != nil {
				return outcome, err
			}
			if err := t.setCell("C", row, string(d.Role), donors); err != nil {
				return outcome, err
			}
			if err := t.setCell("D", row, d.Name, donors); err != nil {
				return outcome, err
			}
			if err := t.setCell("E", row, line.Number, donors); err != nil {
				return outcome, err
			}
			for i, col := range dayColumns {
				if err := t.setCell(col, row, line.Days[i], donors); err != nil {
					return outcome, err
				}
			}
			if err := t.setCell(totalColumn, row, line.Days.Total(), donors); err != nil {
				return outcome, err
			}

			row++
			outcome.Written++
		}

		lastRow := row - 1
		if lastRow > firstRow {
			for _, col := range identityColumns {
				err := t.file.MergeCell(t.layout.Sheet, cellAddr(col, firstRow), cellAddr(col, lastRow))
				if err != nil {
					return outcome, err
				}
			}
		}

		index++
	}

	return outcome, nil
}

// donorStyles snapshots the donor row's style per column, once, for reuse
// on every cell the region writes.
func (t *Template) donorStyles(block Block) (map[string]int, error) {
	donors := make(map[string]int, len(allColumns))
	for _, col := range allColumns {
		style, err := t.file.GetCellStyle(t.layout.Sheet, cellAddr(col, block.Donor))
		if err != nil {
			return nil, fmt.Errorf("failed to read donor style: %w", err)
		}
		donors[col] = style
	}
	return donors, nil
}

func (t *Template) setCell(col string, row int, value any, donors map[string]int) error {
	addr := cellAddr(col, row)
	if err := t.file.SetCellValue(t.layout.Sheet, addr, value); err != nil {
		return err
	}
	return t.file.SetCellStyle(t.layout.Sheet, addr, addr, donors[col])
}

// Bytes serializes the workbook to an xlsx payload.
func (t *Template) Bytes() ([]byte, error) {
	buf, err := t.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cellAddr(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
