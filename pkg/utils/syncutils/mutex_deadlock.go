//go:build deadlock
// +build deadlock

// Package syncutils switches the store locks to deadlock-detecting ones when
// built with -tags deadlock.
package syncutils

import (
	"time"

	"github.com/sasha-s/go-deadlock"
)

func init() {
	deadlock.Opts.DeadlockTimeout = 10 * time.Second
}

type Mutex = deadlock.Mutex

type RWMutex = deadlock.RWMutex
