package parser

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadGrid(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Duty Role")
	f.SetCellValue(sheetName, "B1", "Mon 1")
	f.SetCellValue(sheetName, "A3", "Gate")
	f.SetCellValue(sheetName, "C3", "J. Smith + A. Lee")
	f.SetCellValue(sheetName, "B4", 101)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("Failed to write test workbook: %v", err)
	}
	f2, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("Failed to open test workbook: %v", err)
	}
	defer f2.Close()

	grid, err := ReadGrid(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}

	if len(grid) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(grid))
	}
	if grid.Text(0, 1) != "Mon 1" {
		t.Errorf("Expected 'Mon 1', got %q", grid.Text(0, 1))
	}
	// Empty rows between data rows are kept so indexes match the sheet.
	if len(grid[1]) != 0 {
		t.Errorf("Expected empty row 1, got %v", grid[1])
	}
	if grid.Text(2, 2) != "J. Smith + A. Lee" {
		t.Errorf("Expected packed cell, got %q", grid.Text(2, 2))
	}
	if grid.Text(2, 1) != "" {
		t.Errorf("Expected empty B3, got %q", grid.Text(2, 1))
	}
	// Numbers are read as displayed text.
	if grid.Text(3, 1) != "101" {
		t.Errorf("Expected '101', got %q", grid.Text(3, 1))
	}
}

func TestReadFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "Roster")
	f.NewSheet("Other")
	f.SetCellValue("Roster", "A1", "first")
	f.SetCellValue("Other", "A1", "second")

	grid, err := ReadFirstSheet(f)
	if err != nil {
		t.Fatalf("ReadFirstSheet failed: %v", err)
	}
	if grid.Text(0, 0) != "first" {
		t.Errorf("Expected 'first', got %q", grid.Text(0, 0))
	}
}

func TestReadGridMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ReadGrid(f, "Nope"); err == nil {
		t.Errorf("Expected error for a missing sheet")
	}
}
