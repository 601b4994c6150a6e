// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errTest = errors.New("non-nil error")

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, errTest
}

func TestErrs(t *testing.T) {
	require := require.New(t)

	errs := Errs{}
	errs.Add(nil, nil)
	require.False(errs.Errored())

	errs.Add(nil, errTest, errors.New("second"))
	require.ErrorIs(errs.Err, errTest)

	errs.Add(errors.New("third"))
	require.ErrorIs(errs.Err, errTest)
}

func TestPrinter(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	p := Printer{W: &buf}
	p.Printf("%s: %d\n", "Alive", 3)
	require.NoError(p.Errs.Err)
	require.Equal("Alive: 3\n", buf.String())

	w := &failingWriter{}
	p = Printer{W: w}
	p.Printf("a")
	p.Printf("b")
	require.ErrorIs(p.Errs.Err, errTest)
	require.Equal(1, w.writes)
}
