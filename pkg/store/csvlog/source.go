// Package csvlog reads the school PLTS production monitoring export. The
// file is a plain CSV keyed by plant name and update time; column headers
// follow the upstream monitoring system's naming.
package csvlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
)

const (
	colPlantName  = "plant_name"
	colUpdatedAt  = "updated_time"
	colProduction = "production-this_month(kwh)"
	colSavings    = "anticipated_yield(idr)_tarif_sosial_pln_-_rp.900/kwh"
	colCapacity   = "capacity"
)

// ReadFile loads production records from a monitoring CSV on disk.
func ReadFile(path string) ([]domain.ProductionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open monitoring csv: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses production records from CSV content. Rows missing a plant name
// or month are skipped; numeric fields tolerate thousand separators and
// blank values.
func Read(r io.Reader) ([]domain.ProductionRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colPlantName, colUpdatedAt, colProduction} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("monitoring csv missing column %q", required)
		}
	}

	var records []domain.ProductionRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		plant := strings.ToLower(strings.TrimSpace(field(row, idx, colPlantName)))
		month := monthOf(field(row, idx, colUpdatedAt))
		if plant == "" || month == "" {
			continue
		}

		records = append(records, domain.ProductionRecord{
			PlantName:     plant,
			Month:         month,
			ProductionKwh: toNum(field(row, idx, colProduction)),
			SavingsIDR:    toNum(field(row, idx, colSavings)),
			CapacityKwp:   toNum(field(row, idx, colCapacity)),
		})
	}
	return records, nil
}

func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// monthOf truncates an update timestamp to YYYY-MM.
func monthOf(ts string) string {
	ts = strings.TrimSpace(ts)
	if len(ts) < 7 {
		return ""
	}
	return ts[:7]
}

func toNum(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}
