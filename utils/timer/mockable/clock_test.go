// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mockable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClockSet(t *testing.T) {
	require := require.New(t)

	clock := Clock{}
	start := time.Unix(1_000_000, 0)
	clock.Set(start)
	require.Equal(start, clock.Time())

	clock.Advance(time.Minute)
	require.Equal(time.Minute, clock.Since(start))

	clock.Sync()
	require.True(clock.Time().After(start))
}
