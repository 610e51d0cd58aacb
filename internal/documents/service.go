package documents

import (
	"context"
	"fmt"

	"finboard-backend/internal/dashboard"
)

// Service generates the document listing from live aggregate counts. There is
// no documents table; the counts come from the dashboard aggregator so the
// two surfaces can never drift apart.
type Service struct {
	Metrics *dashboard.Service
}

// Document is one generated row of the documents table view.
type Document struct {
	ID       int    `json:"id"`
	Header   string `json:"header"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Target   string `json:"target"`
	Limit    string `json:"limit"`
	Reviewer string `json:"reviewer"`
}

// DocumentDetail is the by-id response with the per-user transaction count.
type DocumentDetail struct {
	ID         int        `json:"id"`
	Header     string     `json:"header"`
	Type       string     `json:"type"`
	Content    string     `json:"content"`
	Statistics Statistics `json:"statistics"`
}

type Statistics struct {
	TotalRecords int64 `json:"totalRecords"`
}

// List builds the eight document rows, embedding the current entity counts in
// the headers.
func (s *Service) List(ctx context.Context) ([]Document, error) {
	userCount, err := s.Metrics.UserCount(ctx)
	if err != nil {
		return nil, err
	}
	txCount, err := s.Metrics.TransactionCount(ctx)
	if err != nil {
		return nil, err
	}
	activeCount, err := s.Metrics.ActiveAccountCount(ctx)
	if err != nil {
		return nil, err
	}
	assetCount, err := s.Metrics.AssetCount(ctx)
	if err != nil {
		return nil, err
	}

	return []Document{
		{ID: 1, Header: "Portfolio Overview", Type: "Report", Status: "Done", Target: "25", Limit: "30", Reviewer: "System"},
		{ID: 2, Header: fmt.Sprintf("User Management (%d users)", userCount), Type: "Documentation", Status: "Done", Target: "20", Limit: "25", Reviewer: "Admin"},
		{ID: 3, Header: fmt.Sprintf("Transaction Analysis (%d transactions)", txCount), Type: "Report", Status: "In Process", Target: "15", Limit: "20", Reviewer: "Analyst"},
		{ID: 4, Header: fmt.Sprintf("Asset Holdings (%d assets)", assetCount), Type: "Documentation", Status: "Done", Target: "18", Limit: "22", Reviewer: "Manager"},
		{ID: 5, Header: fmt.Sprintf("Active Portfolios (%d active)", activeCount), Type: "Report", Status: "Done", Target: "12", Limit: "15", Reviewer: "Supervisor"},
		{ID: 6, Header: "Data Validation Report", Type: "Technical", Status: "In Process", Target: "10", Limit: "12", Reviewer: "Assign reviewer"},
		{ID: 7, Header: "System Performance Metrics", Type: "Technical", Status: "Done", Target: "22", Limit: "28", Reviewer: "DevOps"},
		{ID: 8, Header: "Security Audit", Type: "Security", Status: "In Process", Target: "30", Limit: "35", Reviewer: "Security Lead"},
	}, nil
}

// GetByID returns the detail view; totalRecords is the count of transactions
// belonging to the user whose id equals the document id.
func (s *Service) GetByID(ctx context.Context, id int) (*DocumentDetail, error) {
	n, err := s.Metrics.UserTransactionCount(ctx, uint(id))
	if err != nil {
		return nil, err
	}
	return &DocumentDetail{
		ID:         id,
		Header:     "Document Details",
		Type:       "Report",
		Content:    fmt.Sprintf("Details for document %d", id),
		Statistics: Statistics{TotalRecords: n},
	}, nil
}
