// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/evil-spirit/adjacent-go/constraint"
	"github.com/evil-spirit/adjacent-go/eqsys"
	"github.com/evil-spirit/adjacent-go/geom"
	"github.com/evil-spirit/adjacent-go/sketch"
)

func main() {
	verbose := true

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	flag.BoolVar(&verbose, "verbose", true, "print solved parameter values")
	flag.Parse()

	// message
	if verbose {
		io.PfWhite("\nAdjacent -- a 2D geometric constraint solver\n\n")
		io.Pf("Copyright 2016 The Adjacent Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
	}

	s := demoSketch()
	outcome := s.Update()
	if outcome != eqsys.OKAY {
		chk.Panic("demo sketch did not converge: %v", outcome)
	}

	if !verbose {
		return
	}
	io.Pf("outcome: %v\n", outcome)
	for _, e := range s.Entities() {
		io.Pf("%v\n", e)
	}
}

// demoSketch builds a small worked example: a horizontal segment of
// length 15, free to translate — the same configuration as this
// project's S1 test scenario, kept here as a runnable illustration of
// the library's surface rather than a test.
func demoSketch() *sketch.Sketch {
	s := sketch.New()
	p1 := geom.NewPoint("p1", 3, 1, 0)
	p2 := geom.NewPoint("p2", 4, 2, 0)
	l := geom.NewLine(p1, p2)
	s.AddEntity(p1)
	s.AddEntity(p2)
	s.AddConstraint(constraint.NewLength(l, 15))
	s.AddConstraint(constraint.NewHV(p1, p2, constraint.OX))
	return s
}
