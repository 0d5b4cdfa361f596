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

package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

const (
	minLanes = 2
	maxLanes = 16
)

// Generator writes the unrolled reduction kernels for one package.
type Generator struct {
	Package string // Output package name
	Lanes   int    // Number of independent accumulators, a power of two
	Output  string // Output file path
}

// pair is one step of the pairwise accumulator combine: sDst += sSrc.
type pair struct {
	Dst, Src int
}

var kernelTemplate = template.Must(template.New("kernels").Parse(`// Code generated by fastgen. DO NOT EDIT.

package {{.Package}}

import "github.com/ajroetker/go-fastfloat/fast"

// unrollLanes is the number of independent accumulators.
const unrollLanes = {{.Lanes}}

// sumUnrolled adds the first n elements of xs, n being len(xs) rounded
// down to a multiple of unrollLanes, and returns the sum and n.
func sumUnrolled[F fast.Floats](xs []fast.Fast[F]) (fast.Fast[F], int) {
	var {{.Accumulators}} fast.Fast[F]
	n := len(xs) &^ (unrollLanes - 1)
	for i := 0; i < n; i += unrollLanes {
		x := xs[i : i+unrollLanes : i+unrollLanes]
{{- range .Indices}}
		s{{.}} = s{{.}}.Add(x[{{.}}])
{{- end}}
	}
{{- range .Combine}}
	s{{.Dst}} = s{{.Dst}}.Add(s{{.Src}})
{{- end}}
	return s0, n
}

// dotUnrolled accumulates a[i]*b[i] for the first n elements, n being
// min(len(a), len(b)) rounded down to a multiple of unrollLanes, and
// returns the sum and n.
func dotUnrolled[F fast.Floats](a, b []fast.Fast[F]) (fast.Fast[F], int) {
	var {{.Accumulators}} fast.Fast[F]
	n := min(len(a), len(b)) &^ (unrollLanes - 1)
	for i := 0; i < n; i += unrollLanes {
		x := a[i : i+unrollLanes : i+unrollLanes]
		y := b[i : i+unrollLanes : i+unrollLanes]
{{- range .Indices}}
		s{{.}} = x[{{.}}].MulAdd(y[{{.}}], s{{.}})
{{- end}}
	}
{{- range .Combine}}
	s{{.Dst}} = s{{.Dst}}.Add(s{{.Src}})
{{- end}}
	return s0, n
}
`))

// Validate checks the generator configuration.
func (g *Generator) Validate() error {
	if g.Package == "" {
		return fmt.Errorf("package name is required")
	}
	if g.Lanes < minLanes || g.Lanes > maxLanes || g.Lanes&(g.Lanes-1) != 0 {
		return fmt.Errorf("lanes must be a power of two in [%d, %d], got %d", minLanes, maxLanes, g.Lanes)
	}
	return nil
}

// Render returns the formatted source of the kernels file.
func (g *Generator) Render() ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	indices := make([]int, g.Lanes)
	names := make([]string, g.Lanes)
	for i := range g.Lanes {
		indices[i] = i
		names[i] = fmt.Sprintf("s%d", i)
	}

	var buf bytes.Buffer
	err := kernelTemplate.Execute(&buf, struct {
		Package      string
		Lanes        int
		Accumulators string
		Indices      []int
		Combine      []pair
	}{
		Package:      g.Package,
		Lanes:        g.Lanes,
		Accumulators: strings.Join(names, ", "),
		Indices:      indices,
		Combine:      combinePairs(g.Lanes),
	})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	formatted, err := imports.Process(g.Output, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return formatted, nil
}

// Run renders the kernels and writes them to g.Output.
func (g *Generator) Run() error {
	src, err := g.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.Output, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", g.Output, err)
	}
	return nil
}

// combinePairs returns the steps of a pairwise tree combine of lanes
// accumulators into s0. Adjacent accumulators are merged first so that the
// tree is balanced.
func combinePairs(lanes int) []pair {
	var pairs []pair
	for stride := 1; stride < lanes; stride *= 2 {
		for i := 0; i+stride < lanes; i += 2 * stride {
			pairs = append(pairs, pair{Dst: i, Src: i + stride})
		}
	}
	return pairs
}
