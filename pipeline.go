package smblevels

import (
	"context"
	"fmt"
	"sync"

	"github.com/bodgit/smblevels/manifest"
	"github.com/bodgit/smblevels/rom"
)

const workers = 4

type job struct {
	index int
	level manifest.Level
}

func (x *Extractor) feedLevels(ctx context.Context, levels []manifest.Level) (<-chan job, <-chan error, error) {
	out := make(chan job)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for i, l := range levels {
			select {
			case out <- job{i, l}:
			case <-ctx.Done():
				// Whoever cancelled reports why
				return
			}
		}
	}()
	return out, errc, nil
}

func (x *Extractor) levelWorker(ctx context.Context, cancel context.CancelFunc, img *rom.Image, m *manifest.Manifest, in <-chan job, results []*Level) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for j := range in {
			level, err := x.Decode(img, m, j.level)
			if err != nil {
				errc <- err
				cancel()
				return
			}
			// Each index is only ever written by one worker
			results[j.index] = level
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	var first error
	for err := range errc {
		if err != nil && first == nil {
			first = err
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// DecodeAll decodes every level in m concurrently. Results are returned in
// manifest order; the first decode error stops the remaining work and is
// returned as is. If ctx is cancelled the error wraps ctx.Err().
func (x *Extractor) DecodeAll(ctx context.Context, img *rom.Image, m *manifest.Manifest) ([]*Level, error) {
	if err := x.Check(img, m); err != nil {
		return nil, err
	}

	parent := ctx
	ctx, cancelFunc := context.WithCancel(parent)
	defer cancelFunc()

	results := make([]*Level, len(m.Levels))

	var errcList []<-chan error

	jobs, errc, err := x.feedLevels(ctx, m.Levels)
	if err != nil {
		return nil, err
	}
	errcList = append(errcList, errc)

	for i := 0; i < workers; i++ {
		errc, err := x.levelWorker(ctx, cancelFunc, img, m, jobs, results)
		if err != nil {
			return nil, err
		}
		errcList = append(errcList, errc)
	}

	if err := waitForPipeline(errcList...); err != nil {
		return nil, err
	}
	if err := parent.Err(); err != nil {
		return nil, fmt.Errorf("decode cancelled: %w", err)
	}

	return results, nil
}
