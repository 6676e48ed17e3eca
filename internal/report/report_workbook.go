package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// workbook lays out a single-sheet report: title rows, an info row, a header
// row and zebra-striped data rows.
type workbook struct {
	f      *excelize.File
	sheet  string
	cols   int
	row    int
	styles map[string]int
}

func newWorkbook(sheet string, cols int) (*workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	wb := &workbook{f: f, sheet: sheet, cols: cols, row: 1, styles: map[string]int{}}
	border := []excelize.Border{
		{Type: "left", Color: "BFBFBF", Style: 1},
		{Type: "right", Color: "BFBFBF", Style: 1},
		{Type: "top", Color: "BFBFBF", Style: 1},
		{Type: "bottom", Color: "BFBFBF", Style: 1},
	}
	defs := map[string]*excelize.Style{
		"title": {
			Font:      &excelize.Font{Bold: true, Size: 16, Color: "FFFFFF", Family: "Arial"},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F3864"}},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		},
		"info": {
			Font: &excelize.Font{Italic: true, Size: 10, Family: "Arial"},
		},
		"header": {
			Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF", Family: "Arial"},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"7F7F7F"}},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    border,
		},
		"text":     {Font: &excelize.Font{Size: 10, Family: "Arial"}, Border: border},
		"money":    {Font: &excelize.Font{Size: 10, Family: "Arial"}, Border: border, NumFmt: 4},
		"textAlt":  {Font: &excelize.Font{Size: 10, Family: "Arial"}, Border: border, Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F2F2F2"}}},
		"moneyAlt": {Font: &excelize.Font{Size: 10, Family: "Arial"}, Border: border, NumFmt: 4, Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F2F2F2"}}},
	}
	for name, def := range defs {
		id, err := f.NewStyle(def)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("create %s style: %w", name, err)
		}
		wb.styles[name] = id
	}
	return wb, nil
}

func (w *workbook) Close() error {
	return w.f.Close()
}

func (w *workbook) lastCol() string {
	name, _ := excelize.ColumnNumberToName(w.cols)
	return name
}

func (w *workbook) title(text string) error {
	start := fmt.Sprintf("A%d", w.row)
	end := fmt.Sprintf("%s%d", w.lastCol(), w.row)
	if err := w.f.SetCellValue(w.sheet, start, text); err != nil {
		return err
	}
	if err := w.f.MergeCell(w.sheet, start, end); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(w.sheet, start, end, w.styles["title"]); err != nil {
		return err
	}
	if err := w.f.SetRowHeight(w.sheet, w.row, 28); err != nil {
		return err
	}
	w.row++
	return nil
}

// info writes label/value pairs spread across one row.
func (w *workbook) info(values ...string) error {
	step := w.cols / len(values)
	if step == 0 {
		step = 1
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i*step+1, w.row)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(w.sheet, cell, v); err != nil {
			return err
		}
		if err := w.f.SetCellStyle(w.sheet, cell, cell, w.styles["info"]); err != nil {
			return err
		}
	}
	w.row += 2
	return nil
}

func (w *workbook) header(names ...string) error {
	start := fmt.Sprintf("A%d", w.row)
	row := make([]interface{}, len(names))
	for i, n := range names {
		row[i] = n
	}
	if err := w.f.SetSheetRow(w.sheet, start, &row); err != nil {
		return err
	}
	end := fmt.Sprintf("%s%d", w.lastCol(), w.row)
	if err := w.f.SetCellStyle(w.sheet, start, end, w.styles["header"]); err != nil {
		return err
	}
	w.row++
	return nil
}

// data writes one record. Columns listed in moneyCols get the currency format.
func (w *workbook) data(index int, values []interface{}, moneyCols map[int]bool) error {
	text, money := w.styles["text"], w.styles["money"]
	if index%2 == 1 {
		text, money = w.styles["textAlt"], w.styles["moneyAlt"]
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(w.sheet, cell, v); err != nil {
			return err
		}
		style := text
		if moneyCols[i] {
			style = money
		}
		if err := w.f.SetCellStyle(w.sheet, cell, cell, style); err != nil {
			return err
		}
	}
	w.row++
	return nil
}

func (w *workbook) bytes() ([]byte, error) {
	if err := w.f.SetColWidth(w.sheet, "A", w.lastCol(), 18); err != nil {
		return nil, err
	}
	buf, err := w.f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
