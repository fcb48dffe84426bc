// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrInterrupted is returned by Latch.Err once a termination signal has been received.
var ErrInterrupted = errors.New("interrupted by signal")

// Latch remembers the first termination signal delivered to the process.
// It never resets. The zero value is ready to use.
type Latch struct {
	m   sync.Mutex
	sig os.Signal
}

// Trip records sig unless a signal was already recorded.
func (l *Latch) Trip(sig os.Signal) {
	l.m.Lock()
	defer l.m.Unlock()

	if l.sig == nil {
		l.sig = sig
	}
}

// Signal returns the recorded signal, if any.
func (l *Latch) Signal() (os.Signal, bool) {
	l.m.Lock()
	defer l.m.Unlock()

	return l.sig, l.sig != nil
}

// Err returns nil until a signal is recorded, then an error wrapping ErrInterrupted.
func (l *Latch) Err() error {
	sig, ok := l.Signal()
	if !ok {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInterrupted, sig)
}
