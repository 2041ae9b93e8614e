package main

import (
	"context"

	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
)

// emptySource keeps the dashboard endpoint functional when the monitoring
// export is absent from the deployment.
type emptySource struct{}

func (emptySource) Records(context.Context) ([]domain.ProductionRecord, error) {
	return nil, nil
}
