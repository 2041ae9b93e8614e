package csvlog

import (
	"context"

	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
)

// FileSource serves monitoring records parsed once at startup. The export is
// refreshed out of band, so there is no re-read during the process lifetime.
type FileSource struct {
	records []domain.ProductionRecord
}

func NewFileSource(path string) (*FileSource, error) {
	records, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{records: records}, nil
}

func (s *FileSource) Records(_ context.Context) ([]domain.ProductionRecord, error) {
	return s.records, nil
}
