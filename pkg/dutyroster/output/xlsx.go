package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName names the sheet of a single-teacher workbook.
const DefaultSheetName = "Schedule"

const maxSheetNameLen = 31

// WriteXLSX writes a single-sheet workbook holding one teacher's records.
func WriteXLSX(w io.Writer, records []models.ScheduleRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DefaultSheetName); err != nil {
		return err
	}
	if err := writeScheduleSheet(f, DefaultSheetName, records); err != nil {
		return err
	}
	_, err := f.WriteTo(w)
	return err
}

// WriteAllXLSX writes one sheet per teacher, ordered by name.
func WriteAllXLSX(w io.Writer, all map[string][]models.ScheduleRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	schedules := Sorted(all)
	if len(schedules) == 0 {
		if err := f.SetSheetName("Sheet1", DefaultSheetName); err != nil {
			return err
		}
		if err := writeScheduleSheet(f, DefaultSheetName, nil); err != nil {
			return err
		}
		_, err := f.WriteTo(w)
		return err
	}

	used := make(map[string]bool)
	for i, s := range schedules {
		name := uniqueSheetName(s.Teacher, used)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if err := writeScheduleSheet(f, name, s.Records); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	_, err := f.WriteTo(w)
	return err
}

// writeScheduleSheet writes the header and records with thin borders and
// wrapped, top-aligned text on every cell.
func writeScheduleSheet(f *excelize.File, sheet string, records []models.ScheduleRecord) error {
	headers := models.RecordHeaders
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	for i, rec := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := rec.Values()
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	align := &excelize.Alignment{WrapText: true, Vertical: "top"}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: align,
		Font:      &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{Border: border, Alignment: align})
	if err != nil {
		return err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}
	if len(records) > 0 {
		if err := f.SetCellStyle(sheet, "A2", fmt.Sprintf("%s%d", lastCol, len(records)+1), bodyStyle); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", lastCol, 24)
}

// uniqueSheetName maps a teacher name to a valid, unused sheet name.
// Excel compares sheet names case-insensitively.
func uniqueSheetName(teacher string, used map[string]bool) string {
	base := sanitizeSheetName(teacher)
	name := base
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncateRunes(base, maxSheetNameLen-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

func sanitizeSheetName(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, s)
	s = strings.Trim(strings.TrimSpace(s), "'")
	s = truncateRunes(s, maxSheetNameLen)
	if s == "" {
		return "Sheet"
	}
	return s
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
