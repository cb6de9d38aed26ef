package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrSourceMissing is returned by Read when the backing file does not exist.
var ErrSourceMissing = errors.New("dataset source missing")

// Source is a flat tabular file a dataset is loaded from and, for migrations, written back to.
type Source interface {
	Name() string
	Read() (*Table, error)
	Write(t *Table) error
}

// OpenSource picks the source implementation from the file extension.
func OpenSource(path string) Source {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return &XLSXSource{Path: path}
	}
	return &CSVSource{Path: path}
}

// CSVSource reads and writes comma-separated files with a header row.
type CSVSource struct {
	Path string
}

func (s *CSVSource) Name() string { return s.Path }

func (s *CSVSource) Read() (*Table, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, s.Path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", s.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Path, err)
	}

	table, err := tableFromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return table, nil
}

// Write replaces the file atomically via a temp file in the same directory,
// keeping the permissions of the file it replaces.
func (s *CSVSource) Write(t *Table) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.Path), filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", s.Path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	mode := os.FileMode(0o644)
	if info, err := os.Stat(s.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set mode on temp file for %s: %w", s.Path, err)
	}

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(t.Records()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for %s: %w", s.Path, err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.Path, err)
	}
	return nil
}

// XLSXSource reads and writes a single worksheet of an Excel workbook.
// An empty Sheet means the first sheet of the workbook.
type XLSXSource struct {
	Path  string
	Sheet string
}

func (s *XLSXSource) Name() string { return s.Path }

func (s *XLSXSource) Read() (*Table, error) {
	if _, err := os.Stat(s.Path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, s.Path)
	}

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.Path, err)
	}
	defer f.Close()

	sheet := s.sheetName(f)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, s.Path, err)
	}

	table, err := tableFromRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return table, nil
}

// Write rebuilds the workbook with one sheet holding the table.
func (s *XLSXSource) Write(t *Table) error {
	sheet := s.Sheet
	if sheet == "" {
		sheet = "Sheet1"
		if existing, err := excelize.OpenFile(s.Path); err == nil {
			sheet = s.sheetName(existing)
			existing.Close()
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("failed to name sheet %q: %w", sheet, err)
		}
	}

	for i, rec := range t.Records() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		values := make([]interface{}, len(rec))
		for j, v := range rec {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, s.Path, err)
		}
	}

	tmpName := s.Path + ".tmp.xlsx"
	if err := f.SaveAs(tmpName); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to save %s: %w", s.Path, err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", s.Path, err)
	}
	return nil
}

func (s *XLSXSource) sheetName(f *excelize.File) string {
	if s.Sheet != "" {
		return s.Sheet
	}
	return f.GetSheetName(0)
}
