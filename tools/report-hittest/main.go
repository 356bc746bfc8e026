// seehuhn.de/go/reportpaint - paintables and hit regions for report pages
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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


package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/reportpaint/numfmt"
	"seehuhn.de/go/reportpaint/region"
	"seehuhn.de/go/reportpaint/shape"
	"seehuhn.de/go/reportpaint/tools/internal/buildinfo"
	"seehuhn.de/go/reportpaint/tools/internal/profile"
)

var (
	regionsArg = flag.String("r", "", "read regions from `file` (required)")
	widthArg   = flag.Int("w", 0, "wrap output at `columns` (default: terminal width)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("report-hittest: ")

	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "report-hittest - find the regions at given positions\n")
		fmt.Fprintf(w, "%s\n\n", buildinfo.Short("report-hittest"))
		fmt.Fprintf(w, "Usage:\n")
		fmt.Fprintf(w, "  report-hittest -r regions.xml <query>...\n\n")
		fmt.Fprintf(w, "Queries:\n")
		fmt.Fprintf(w, "  x,y        list the regions containing the point\n")
		fmt.Fprintf(w, "  x,y,w,h    list the regions intersecting the rectangle\n\n")
		fmt.Fprintf(w, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *regionsArg == "" || flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if err := stop(); err != nil {
			log.Print(err)
		}
	}()

	fd, err := os.Open(*regionsArg)
	if err != nil {
		return err
	}
	regions, err := region.ReadAll(fd)
	fd.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", *regionsArg, err)
	}
	if len(regions) == 0 {
		log.Printf("%s: no regions found", *regionsArg)
	}

	width := *widthArg
	if width <= 0 {
		width = terminalWidth()
	}
	for _, q := range flag.Args() {
		err := report(os.Stdout, regions, q, width)
		if err != nil {
			return err
		}
	}
	return nil
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// query is a point or a rectangle given on the command line.
type query struct {
	x, y, w, h float64
	isRect     bool
}

var errQuery = errors.New("expected x,y or x,y,w,h")

func parseQuery(s string) (*query, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 && len(fields) != 4 {
		return nil, fmt.Errorf("%q: %w", s, errQuery)
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, errQuery)
		}
		vals[i] = x
	}
	q := &query{x: vals[0], y: vals[1]}
	if len(vals) == 4 {
		q.w, q.h, q.isRect = vals[2], vals[3], true
	}
	return q, nil
}

func (q *query) String() string {
	if q.isRect {
		return fmt.Sprintf("rect(%s, %s, %s, %s)",
			numfmt.Format(q.x), numfmt.Format(q.y), numfmt.Format(q.w), numfmt.Format(q.h))
	}
	return fmt.Sprintf("point(%s, %s)", numfmt.Format(q.x), numfmt.Format(q.y))
}

// hits returns the names of all regions matching q, in file order.
func (q *query) hits(regions []region.Region) []string {
	var res []string
	for _, r := range regions {
		var ok bool
		if q.isRect {
			ok = r.Intersects(shape.R(q.x, q.y, q.w, q.h))
		} else {
			ok = r.Contains(q.x, q.y)
		}
		if ok {
			res = append(res, r.Name())
		}
	}
	return res
}

func report(w io.Writer, regions []region.Region, s string, width int) error {
	q, err := parseQuery(s)
	if err != nil {
		return err
	}
	names := q.hits(regions)
	if len(names) == 0 {
		names = []string{"-"}
	}

	head := q.String() + ":"
	line := head
	indent := strings.Repeat(" ", 4)
	for _, name := range names {
		if len(line)+1+len(name) > width && line != head && line != indent {
			_, err = fmt.Fprintln(w, line)
			if err != nil {
				return err
			}
			line = indent
		}
		if line != indent {
			line += " "
		}
		line += name
	}
	_, err = fmt.Fprintln(w, line)
	return err
}
