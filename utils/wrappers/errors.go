// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"fmt"
	"io"
)

// Errs keeps the first non-nil error it is given.
type Errs struct{ Err error }

func (errs *Errs) Errored() bool { return errs.Err != nil }

func (errs *Errs) Add(errors ...error) {
	if errs.Err == nil {
		for _, err := range errors {
			if err != nil {
				errs.Err = err
				break
			}
		}
	}
}

// Printer formats to a writer and keeps the first write error. Once a write
// has failed, later writes are skipped.
type Printer struct {
	W    io.Writer
	Errs Errs
}

func (p *Printer) Printf(format string, args ...interface{}) {
	if p.Errs.Errored() {
		return
	}
	_, err := fmt.Fprintf(p.W, format, args...)
	p.Errs.Add(err)
}
