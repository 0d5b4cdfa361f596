// Copyright 2025 go-fastfloat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command fastgen generates the unrolled reduction kernels used by
// package reduce.
//
// Usage:
//
//	fastgen --pkg reduce --lanes 4 --output z_unrolled.gen.go
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/fastgen --pkg reduce --lanes 4 --output z_unrolled.gen.go
//
// Each kernel keeps one named accumulator per lane, so the compiler can
// hold them in registers, and combines them with a balanced pairwise tree.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCommand = &cobra.Command{
	Use:   "fastgen",
	Short: "Generate unrolled fast-math reduction kernels.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		logger, err := newLogger(debug)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		gen := &Generator{}
		gen.Package, _ = cmd.Flags().GetString("pkg")
		gen.Lanes, _ = cmd.Flags().GetInt("lanes")
		gen.Output, _ = cmd.Flags().GetString("output")

		logger.Debug("generate kernels",
			zap.String("package", gen.Package),
			zap.Int("lanes", gen.Lanes),
			zap.String("output", gen.Output))
		if err := gen.Run(); err != nil {
			return err
		}
		logger.Info("generated kernels", zap.String("output", gen.Output), zap.Int("lanes", gen.Lanes))
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCommand.Flags().String("pkg", "", "output package name (required)")
	rootCommand.Flags().Int("lanes", 4, "number of independent accumulators, a power of two")
	rootCommand.Flags().StringP("output", "o", "z_unrolled.gen.go", "output file path")
	rootCommand.Flags().Bool("debug", false, "use debug log mode")
	_ = rootCommand.MarkFlagRequired("pkg")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		os.Exit(report(err, zap.NewProduction, os.Stderr))
	}
}

// report logs err with a logger from build and returns the exit code. If no
// logger can be built, err goes to stderr instead.
func report(err error, build func(...zap.Option) (*zap.Logger, error), stderr io.Writer) int {
	logger, logErr := build()
	if logErr != nil {
		_, _ = fmt.Fprintf(stderr, "fastgen: %v (logger: %v)\n", err, logErr)
		return 1
	}
	logger.Error("failed to execute", zap.Error(err))
	_ = logger.Sync()
	return 1
}
