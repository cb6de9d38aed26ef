package repository

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"hospital-reception-backend/internal/dataset"

	"go.uber.org/zap"
)

// RecordStore holds one dataset's decoded records, read-only after construction.
type RecordStore[T any] struct {
	dataset string
	records []T
	empty   bool
}

func newRecordStore[T any](name string, records []T, empty bool) *RecordStore[T] {
	return &RecordStore[T]{dataset: name, records: records, empty: empty}
}

// Dataset returns the dataset name used in not-found reasons.
func (s *RecordStore[T]) Dataset() string {
	return s.dataset
}

// Empty reports whether the dataset source was missing at load time.
func (s *RecordStore[T]) Empty() bool {
	return s.empty
}

// Count returns the number of records.
func (s *RecordStore[T]) Count() int {
	return len(s.records)
}

// All returns a copy of every record in dataset order.
func (s *RecordStore[T]) All() []T {
	return append([]T{}, s.records...)
}

// Matching returns the records for which pred is true, in dataset order.
func (s *RecordStore[T]) Matching(pred func(T) bool) []T {
	out := []T{}
	for _, rec := range s.records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// First returns the first record for which pred is true.
func (s *RecordStore[T]) First(pred func(T) bool) (T, bool) {
	for _, rec := range s.records {
		if pred(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// readSource reads a dataset; a missing source yields a nil table and a logged warning.
func readSource(src dataset.Source, name string, logger *zap.Logger) (*dataset.Table, error) {
	table, err := src.Read()
	if err != nil {
		if errors.Is(err, dataset.ErrSourceMissing) {
			logger.Warn("Dataset source missing, starting with an empty store",
				zap.String("dataset", name),
				zap.String("source", src.Name()),
			)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s data: %w", name, err)
	}
	return table, nil
}

// rowDecoder accumulates the first decode error so field mapping stays linear.
type rowDecoder struct {
	row  dataset.Row
	line int
	err  error
}

func newRowDecoder(row dataset.Row, index int) *rowDecoder {
	// header is line 1
	return &rowDecoder{row: row, line: index + 2}
}

func (d *rowDecoder) str(column string) string {
	return d.row.Get(column)
}

func (d *rowDecoder) int(column string) int {
	raw := d.row.Get(column)
	if raw == "" || d.err != nil {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		// some exports write whole numbers as "12.0"
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int(f)) {
			d.err = fmt.Errorf("row %d: column %s: %q is not an integer", d.line, column, raw)
			return 0
		}
		return int(f)
	}
	return v
}

func (d *rowDecoder) float(column string) float64 {
	raw := d.row.Get(column)
	if raw == "" || d.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		d.err = fmt.Errorf("row %d: column %s: %q is not a number", d.line, column, raw)
		return 0
	}
	return v
}

func (d *rowDecoder) date(column string) string {
	raw := d.row.Get(column)
	if d.err != nil {
		return raw
	}
	if _, err := time.Parse(time.DateOnly, raw); err != nil {
		d.err = fmt.Errorf("row %d: column %s: %q is not a YYYY-MM-DD date", d.line, column, raw)
	}
	return raw
}
