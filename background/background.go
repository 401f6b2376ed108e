// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long lived goroutines with an orderly stop
package background

// Process - a long lived task
//
// Run must return soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Func - adapt a plain function to a Process
type Func func(args interface{}, shutdown <-chan struct{})

// Run - call the function
func (f Func) Run(args interface{}, shutdown <-chan struct{}) {
	f(args, shutdown)
}

// Processes - list of processes to start
type Processes []Process

// the shutdown and completed channels of one process
type control struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for a started set of processes
type T struct {
	c []control
}

// Start - start each process in its own goroutine
func Start(processes Processes, args interface{}) *T {

	register := &T{
		c: make([]control, len(processes)),
	}

	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.c[i].shutdown = shutdown
		register.c[i].finished = finished

		go func(p Process) {
			defer close(finished)
			p.Run(args, shutdown)
		}(p)
	}
	return register
}

// Stop - signal every process then wait for all to return
//
// processes are signalled in reverse start order
func (t *T) Stop() {
	if nil == t {
		return
	}

	for i := len(t.c) - 1; i >= 0; i -= 1 {
		close(t.c[i].shutdown)
	}

	for _, c := range t.c {
		<-c.finished
	}
	t.c = nil
}

// Done - a channel closed once every process has returned
func (t *T) Done() <-chan struct{} {
	done := make(chan struct{})
	finished := make([]chan struct{}, len(t.c))
	for i, c := range t.c {
		finished[i] = c.finished
	}
	go func() {
		for _, f := range finished {
			<-f
		}
		close(done)
	}()
	return done
}
