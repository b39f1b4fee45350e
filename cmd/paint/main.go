// seehuhn.de/go/paint - a scene-description language and rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command paint reads a scene description file, rasterizes it, and writes
// the result alongside the input as a binary PPM image.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"seehuhn.de/go/paint/parse"
	"seehuhn.de/go/paint/ppm"
	"seehuhn.de/go/paint/raster"
)

func main() {
	log.SetFlags(0)

	parallel := flag.Bool("parallel", false, "rasterize using one goroutine per CPU")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] scene-file\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	if err := run(path, *parallel); err != nil {
		fmt.Fprintf(os.Stderr, "%s:%s\n", path, err)
		os.Exit(1)
	}
}

func run(path string, parallel bool) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}

	start := time.Now()
	sc, err := parse.Parse(lines)
	if err != nil {
		return err
	}
	parseTime := time.Since(start)

	fmt.Printf("Parsed %s in %s\n", path, parseTime)
	fmt.Println("----------")
	fmt.Printf("Number of shapes: %d\n", len(sc.Shapes))
	fmt.Printf("Number of colors: %d\n", len(sc.Colors))
	fmt.Printf("Number of fills: %d\n", len(sc.Fills))
	fmt.Println("----------")

	r := raster.New()
	if parallel {
		r = raster.NewParallel()
	}

	start = time.Now()
	img := r.Render(sc)
	out := outputPath(path)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}
	defer f.Close()

	if err := ppm.Encode(f, img); err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}
	writeTime := time.Since(start)

	fmt.Printf("Wrote %s in %s\n", out, writeTime)
	return nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return []string{""}, nil
	}
	return strings.Split(text, "\n"), nil
}

// outputPath replaces path's extension with ".ppm".
func outputPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".ppm"
}
