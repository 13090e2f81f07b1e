//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

// Package mysql provides a MySQL-backed storage implementation for
// evaluation reports.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"trpc.group/trpc-go/trpc-phenoeval-go/report"
	"trpc.group/trpc-go/trpc-phenoeval-go/reportstore"
)

// schemaReports bootstraps the report table; the payload column carries the
// full report JSON so the schema never chases the report shape.
const schemaReports = `CREATE TABLE IF NOT EXISTS %s (
  id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  report_id VARCHAR(191) NOT NULL,
  payload LONGTEXT NOT NULL,
  created_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
  updated_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
  PRIMARY KEY (id),
  UNIQUE KEY uk_report_id (report_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

var _ reportstore.Manager = (*manager)(nil)

// manager implements the reportstore.Manager interface on MySQL.
type manager struct {
	db     *sql.DB
	table  string
	ownsDB bool
}

// New creates a MySQL-backed report manager. Either a DSN or an existing
// *sql.DB must be supplied through options.
func New(opt ...Option) (reportstore.Manager, error) {
	opts := newOptions(opt...)
	db := opts.db
	ownsDB := false
	if db == nil {
		if opts.dsn == "" {
			return nil, errors.New("mysql dsn is empty")
		}
		if _, err := mysql.ParseDSN(opts.dsn); err != nil {
			return nil, fmt.Errorf("invalid mysql dsn: %w", err)
		}
		opened, err := sql.Open("mysql", opts.dsn)
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		db = opened
		ownsDB = true
	}
	m := &manager{db: db, table: opts.tablePrefix + "reports", ownsDB: ownsDB}
	if !opts.skipDBInit {
		ctx, cancel := context.WithTimeout(context.Background(), opts.initTimeout)
		defer cancel()
		if _, err := db.ExecContext(ctx, fmt.Sprintf(schemaReports, m.table)); err != nil {
			if ownsDB {
				_ = db.Close()
			}
			return nil, fmt.Errorf("init database failed: %w", err)
		}
	}
	return m, nil
}

// Save upserts a report into MySQL.
func (m *manager) Save(ctx context.Context, r *report.Report) (string, error) {
	if r == nil {
		return "", errors.New("report is nil")
	}
	if r.ReportID == "" {
		r.ReportID = uuid.New().String()
	}
	payload, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	query := fmt.Sprintf(
		`INSERT INTO %s (report_id, payload) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE payload = VALUES(payload), updated_at = CURRENT_TIMESTAMP(6)`,
		m.table,
	)
	if _, err := m.db.ExecContext(ctx, query, r.ReportID, payload); err != nil {
		return "", fmt.Errorf("store report %s: %w", r.ReportID, err)
	}
	return r.ReportID, nil
}

// Get loads a report from MySQL.
func (m *manager) Get(ctx context.Context, reportID string) (*report.Report, error) {
	if reportID == "" {
		return nil, errors.New("report id is empty")
	}
	query := fmt.Sprintf("SELECT payload FROM %s WHERE report_id = ?", m.table)
	var payload []byte
	if err := m.db.QueryRowContext(ctx, query, reportID).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("report %s not found", reportID)
		}
		return nil, fmt.Errorf("load report %s: %w", reportID, err)
	}
	var r report.Report
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", reportID, err)
	}
	return &r, nil
}

// List returns all stored report IDs.
func (m *manager) List(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("SELECT report_id FROM %s ORDER BY created_at", m.table)
	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Close closes the connection pool when this manager opened it.
func (m *manager) Close() error {
	if m.db == nil || !m.ownsDB {
		return nil
	}
	return m.db.Close()
}
