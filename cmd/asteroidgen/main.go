// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command asteroidgen generates procedural asteroid meshes and
// writes them as Wavefront OBJ files.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/procgen/cmd/asteroidgen/config"
	"cogentcore.org/procgen/logx"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags are the command line options shared by all commands.
type flags struct {
	config      string
	verbose     bool
	veryVerbose bool
	quiet       bool
}

func newRootCmd() *cobra.Command {
	fl := &flags{}
	root := &cobra.Command{
		Use:           "asteroidgen",
		Short:         "asteroidgen generates procedural asteroid meshes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(fl.veryVerbose, fl.verbose, fl.quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&fl.verbose, "verbose", "v", false, "show info messages")
	pf.BoolVar(&fl.veryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&fl.quiet, "quiet", "q", false, "only show errors")

	root.AddCommand(newGenerateCmd(fl), newConfigCmd())
	return root
}

func newGenerateCmd(fl *flags) *cobra.Command {
	var (
		out         string
		count, jobs int
		seed        int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate asteroids and write them as OBJ files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := config.Default()
			if fl.config != "" {
				fn, err := homedir.Expand(fl.config)
				if err != nil {
					return err
				}
				if err := c.Open(fn); err != nil {
					return err
				}
			}
			fs := cmd.Flags()
			if fs.Changed("out") {
				c.Out = out
			}
			if fs.Changed("count") {
				c.Count = count
			}
			if fs.Changed("jobs") {
				c.Jobs = jobs
			}
			if fs.Changed("seed") {
				c.Asteroid.Seed = &seed
			}
			files, err := Generate(cmd.Context(), c, nil)
			if err != nil {
				return err
			}
			slog.Info("done", "files", len(files), "out", c.Out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&fl.config, "config", "c", "", "TOML or YAML config file")
	f.StringVarP(&out, "out", "o", ".", "output directory")
	f.IntVarP(&count, "count", "n", 1, "number of asteroids")
	f.IntVarP(&jobs, "jobs", "j", 0, "maximum concurrent generations (0 = one per CPU)")
	f.Int64VarP(&seed, "seed", "s", 0, "seed of the first asteroid (default random)")
	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <file>",
		Short: "Write the default config to a TOML or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Default().Save(args[0]); err != nil {
				return err
			}
			slog.Info("wrote config", "file", args[0])
			return nil
		},
	}
}
