//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

// Package clone provides deep copies of reports so store snapshots stay
// isolated from caller mutation.
package clone

import (
	"encoding/json"
	"errors"

	"trpc.group/trpc-go/trpc-phenoeval-go/report"
)

// CloneReport returns a deep copy of a report via a JSON round trip.
func CloneReport(r *report.Report) (*report.Report, error) {
	if r == nil {
		return nil, errors.New("report is nil")
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var cloned report.Report
	if err := json.Unmarshal(data, &cloned); err != nil {
		return nil, err
	}
	return &cloned, nil
}
