package domain

import (
	"errors"
	"time"
)

// ErrProjectNotFound is returned by project stores for unknown project ids.
var ErrProjectNotFound = errors.New("project not found")

// Project is a school solar fundraising listing.
type Project struct {
	ID        int
	Name      string
	District  District
	TargetIDR float64
	RaisedIDR float64
}

// Investment is a single recorded contribution towards a project.
type Investment struct {
	ID        string
	ProjectID int
	AmountIDR float64
	CreatedAt time.Time
}
