//
// Tencent is pleased to support the open source community by making trpc-phenoeval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-phenoeval-go is licensed under the Apache License Version 2.0.
//
//

package phenoeval

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/panjf2000/ants/v2"
	"trpc.group/trpc-go/trpc-phenoeval-go/confusion"
	"trpc.group/trpc-go/trpc-phenoeval-go/reportstore"
	"trpc.group/trpc-go/trpc-phenoeval-go/scorer"
)

// evaluator is the default Evaluator implementation.
type evaluator struct {
	scorer        *scorer.Scorer
	reportManager reportstore.Manager
	pool          *ants.PoolWithFunc
	creator       string
	experiment    string
	model         string
	metadata      map[string]any
	zeroDivision  *float64
}

// scoreCases fans the cases out over the pool when one is configured and
// otherwise scores them in order. Nil cases are skipped.
func (e *evaluator) scoreCases(ctx context.Context, cases []*Case) ([]*CaseResult, error) {
	results := make([]*CaseResult, len(cases))
	metricOpts := e.metricOptions()
	if e.pool == nil {
		for i, evalCase := range cases {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if evalCase == nil {
				continue
			}
			results[i] = scoreCase(e.scorer, i, evalCase, metricOpts)
		}
		return results, nil
	}

	var wg sync.WaitGroup
	var errs error
	for i, evalCase := range cases {
		if err := ctx.Err(); err != nil {
			errs = multierror.Append(errs, err)
			break
		}
		if evalCase == nil {
			continue
		}
		param, ok := scoreCaseParamPool.Get().(*scoreCaseParam)
		if !ok {
			return nil, errors.New("score case param pool type error")
		}
		param.idx = i
		param.evalCase = evalCase
		param.scorer = e.scorer
		param.metricOpts = metricOpts
		param.results = results
		param.wg = &wg
		wg.Add(1)
		if err := e.pool.Invoke(param); err != nil {
			wg.Done()
			param.reset()
			scoreCaseParamPool.Put(param)
			errs = multierror.Append(errs, fmt.Errorf("score case %d: %w", i, err))
		}
	}
	wg.Wait()
	if errs != nil {
		return nil, errs
	}
	return results, nil
}

type scoreCaseParam struct {
	idx        int
	evalCase   *Case
	scorer     *scorer.Scorer
	metricOpts []confusion.Option
	results    []*CaseResult
	wg         *sync.WaitGroup
}

func (p *scoreCaseParam) reset() {
	p.idx = 0
	p.evalCase = nil
	p.scorer = nil
	p.metricOpts = nil
	p.results = nil
	p.wg = nil
}

var scoreCaseParamPool = &sync.Pool{
	New: func() any { return new(scoreCaseParam) },
}

func createScoreCasePool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*scoreCaseParam)
		if !ok {
			panic("score case pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			scoreCaseParamPool.Put(param)
		}()
		param.results[param.idx] = scoreCase(param.scorer, param.idx, param.evalCase, param.metricOpts)
	})
	if err != nil {
		return nil, fmt.Errorf("create score case pool: %w", err)
	}
	return pool, nil
}
