// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hbytes/background"
)

type counter struct {
	ticks   int64
	stopped int32
}

func (c *counter) Run(args interface{}, shutdown <-chan struct{}) {
	delay := args.(time.Duration)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(delay):
			atomic.AddInt64(&c.ticks, 1)
		}
	}
	atomic.StoreInt32(&c.stopped, 1)
}

func TestStartStop(t *testing.T) {
	c1 := &counter{}
	c2 := &counter{}

	p := background.Start(background.Processes{c1, c2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	for i, c := range []*counter{c1, c2} {
		assert.True(t, atomic.LoadInt64(&c.ticks) > 0, "%d: process did not run", i)
		assert.Equal(t, int32(1), atomic.LoadInt32(&c.stopped), "%d: process did not finish", i)
	}

	// idempotent on an already stopped handle
	p.Stop()
}

func TestFunc(t *testing.T) {
	started := make(chan interface{}, 1)

	p := background.Start(background.Processes{
		background.Func(func(args interface{}, shutdown <-chan struct{}) {
			started <- args
			<-shutdown
		}),
	}, "feed")

	assert.Equal(t, "feed", <-started)

	done := p.Done()
	select {
	case <-done:
		t.Fatal("finished before stop")
	case <-time.After(10 * time.Millisecond):
	}

	p.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("done not closed after stop")
	}
}

func TestDoneOnEarlyReturn(t *testing.T) {
	p := background.Start(background.Processes{
		background.Func(func(args interface{}, shutdown <-chan struct{}) {}),
	}, nil)

	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("done not closed")
	}
	p.Stop()
}
