package api

import "time"

type Project struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	District     string  `json:"district"`
	TargetAmount float64 `json:"target_amount"`
	RaisedAmount float64 `json:"raised_amount"`
}

type InvestRequest struct {
	Amount float64 `json:"amount"`
}

type InvestResponse struct {
	InvestmentID string    `json:"investment_id"`
	ProjectID    int       `json:"project_id"`
	Amount       float64   `json:"amount"`
	RaisedAmount float64   `json:"raised_amount"`
	CreatedAt    time.Time `json:"created_at"`
}
