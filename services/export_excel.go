package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// GenerateQuotesExcel creates an Excel workbook from the committed quotes:
// a summary sheet listing every quote's selling price, then one sheet per
// quote with its full cost breakdown. Returns the file contents.
func GenerateQuotesExcel(quotes []Quote, info CompanyInfo, createdAt time.Time) ([]byte, error) {
	if len(quotes) == 0 {
		return nil, fmt.Errorf("no quotes to render")
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, summarySheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	styles, err := newQuoteSheetStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeSummarySheet(f, summarySheet, quotes, info, createdAt, styles); err != nil {
		return nil, err
	}

	usedNames := map[string]bool{summarySheet: true}
	for _, q := range quotes {
		sheetName := uniqueSheetName(q.Name, usedNames)
		if _, err := f.NewSheet(sheetName); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheetName, err)
		}
		if err := writeQuoteSheet(f, sheetName, q, styles); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

type quoteSheetStyles struct {
	title        int
	subtitle     int
	header       int
	body         int
	summaryLabel int
	summaryValue int
}

func newQuoteSheetStyles(f *excelize.File) (quoteSheetStyles, error) {
	var s quoteSheetStyles
	var err error

	s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}

	s.subtitle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return s, fmt.Errorf("create subtitle style: %w", err)
	}

	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}

	s.body, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create body style: %w", err)
	}

	s.summaryLabel, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return s, fmt.Errorf("create summary label style: %w", err)
	}

	s.summaryValue, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return s, fmt.Errorf("create summary value style: %w", err)
	}

	return s, nil
}

func writeSummarySheet(f *excelize.File, sheet string, quotes []Quote, info CompanyInfo, createdAt time.Time, styles quoteSheetStyles) error {
	widths := map[string]float64{"A": 32, "B": 22, "C": 8, "D": 14, "E": 18}
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	if err := f.MergeCell(sheet, "A1", "E1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(info.QuoteTitle))
	f.SetCellStyle(sheet, "A1", "E1", styles.title)

	f.SetCellValue(sheet, "A2", sanitizeExcelCell(info.CompanyName))
	f.SetCellStyle(sheet, "A2", "A2", styles.subtitle)
	f.SetCellValue(sheet, "A3", "Date: "+createdAt.Format("2006-01-02"))
	f.SetCellStyle(sheet, "A3", "A3", styles.subtitle)

	headers := []string{"Quote", "Service", "Rush", "Delivery", "Selling price"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c5", 'A'+i)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A5", "E5", styles.header)

	row := 6
	grandTotal := 0.0
	for _, q := range quotes {
		rowStr := fmt.Sprintf("%d", row)
		selling := SellingPrice(q.Result)
		grandTotal += selling

		f.SetCellValue(sheet, "A"+rowStr, sanitizeExcelCell(q.Name))
		f.SetCellValue(sheet, "B"+rowStr, sanitizeExcelCell(q.ServiceTypeLabel))
		f.SetCellValue(sheet, "C"+rowStr, rushMark(q.Result))
		f.SetCellValue(sheet, "D"+rowStr, deliveryText(q.Result))
		f.SetCellValue(sheet, "E"+rowStr, FormatPHP(selling))
		f.SetCellStyle(sheet, "A"+rowStr, "E"+rowStr, styles.body)
		row++
	}

	row++
	summaryRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheet, "D"+summaryRow, "Grand total:")
	f.SetCellStyle(sheet, "D"+summaryRow, "D"+summaryRow, styles.summaryLabel)
	f.SetCellValue(sheet, "E"+summaryRow, FormatPHP(grandTotal))
	f.SetCellStyle(sheet, "E"+summaryRow, "E"+summaryRow, styles.summaryValue)

	return nil
}

func writeQuoteSheet(f *excelize.File, sheet string, q Quote, styles quoteSheetStyles) error {
	if err := f.SetColWidth(sheet, "A", "A", 36); err != nil {
		return fmt.Errorf("set col width A: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 20); err != nil {
		return fmt.Errorf("set col width B: %w", err)
	}

	if err := f.MergeCell(sheet, "A1", "B1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(q.Name))
	f.SetCellStyle(sheet, "A1", "B1", styles.title)

	f.SetCellValue(sheet, "A2", sanitizeExcelCell(q.ServiceTypeLabel))
	f.SetCellStyle(sheet, "A2", "A2", styles.subtitle)

	f.SetCellValue(sheet, "A4", "Item")
	f.SetCellValue(sheet, "B4", "Amount")
	f.SetCellStyle(sheet, "A4", "B4", styles.header)

	row := 5
	for _, item := range q.Result.LineItems {
		rowStr := fmt.Sprintf("%d", row)
		display := item.Display
		if display == "" {
			display = FormatAmount(item.Amount)
		}
		f.SetCellValue(sheet, "A"+rowStr, sanitizeExcelCell(item.Label))
		f.SetCellValue(sheet, "B"+rowStr, sanitizeExcelCell(display))
		f.SetCellStyle(sheet, "A"+rowStr, "B"+rowStr, styles.body)
		row++
	}

	row++
	summaryRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheet, "A"+summaryRow, "Subtotal expenses:")
	f.SetCellStyle(sheet, "A"+summaryRow, "A"+summaryRow, styles.summaryLabel)
	f.SetCellValue(sheet, "B"+summaryRow, FormatPHP(q.Result.Subtotal))
	f.SetCellStyle(sheet, "B"+summaryRow, "B"+summaryRow, styles.summaryValue)
	row++

	summaryRow = fmt.Sprintf("%d", row)
	f.SetCellValue(sheet, "A"+summaryRow, "Selling price:")
	f.SetCellStyle(sheet, "A"+summaryRow, "A"+summaryRow, styles.summaryLabel)
	f.SetCellValue(sheet, "B"+summaryRow, FormatPHP(SellingPrice(q.Result)))
	f.SetCellStyle(sheet, "B"+summaryRow, "B"+summaryRow, styles.summaryValue)

	return nil
}

// uniqueSheetName derives a legal, unused sheet name from a quote name.
// Excel caps sheet names at 31 chars and forbids a handful of characters.
func uniqueSheetName(name string, used map[string]bool) string {
	cleaned := make([]rune, 0, len(name))
	for _, r := range name {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			cleaned = append(cleaned, ' ')
		default:
			cleaned = append(cleaned, r)
		}
	}
	// cap on runes, not bytes, so multibyte names stay valid UTF-8
	if len(cleaned) > 28 {
		cleaned = cleaned[:28]
	}
	base := string(cleaned)
	if base == "" {
		base = "Quote"
	}

	candidate := base
	for i := 2; used[candidate]; i++ {
		candidate = fmt.Sprintf("%s %d", base, i)
	}
	used[candidate] = true
	return candidate
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
