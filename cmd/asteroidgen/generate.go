// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"cogentcore.org/procgen/asteroid"
	"cogentcore.org/procgen/base/randx"
	"cogentcore.org/procgen/cmd/asteroidgen/config"
	"cogentcore.org/procgen/meshio"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/sync/errgroup"
)

// seeds returns the seed of each asteroid to generate.
func seeds(c *config.Config, rnd randx.Rand) randx.Seeds {
	var sd randx.Seeds
	if c.Asteroid.Seed != nil {
		sd.Init(c.Count, *c.Asteroid.Seed)
		return sd
	}
	sd = make(randx.Seeds, c.Count)
	if rnd == nil {
		sd.NewSeeds()
	} else {
		sd.NewSeeds(rnd)
	}
	return sd
}

// Generate generates the configured asteroids concurrently, writing
// each one to <Out>/asteroid_<seed>.obj, and returns the file names in
// seed order. A leading ~ in Out is the home directory. All asteroids
// share one connector cache.
func Generate(ctx context.Context, c *config.Config, rnd randx.Rand) ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	out, err := homedir.Expand(c.Out)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		return nil, err
	}
	jobs := c.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	sd := seeds(c, rnd)
	files := make([]string, len(sd))
	gen := asteroid.NewGenerator()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i, seed := range sd {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := c.Asteroid
			p.Seed = &seed
			b, err := p.Generate(gen)
			if err != nil {
				return fmt.Errorf("asteroid %d (seed %d): %w", i, seed, err)
			}
			fn := filepath.Join(out, fmt.Sprintf("asteroid_%d.obj", seed))
			if err := meshio.SaveOBJ(fn, fmt.Sprintf("asteroid_%d", seed), b); err != nil {
				return err
			}
			slog.Info("wrote asteroid", "file", fn, "vertices", b.NumVertex(), "triangles", b.NumTriangle())
			files[i] = fn
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	hits, misses := gen.Connector.Stats()
	slog.Debug("connector cache", "hits", hits, "misses", misses)
	return files, nil
}
