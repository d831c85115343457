//go:build !deadlock
// +build !deadlock

// Package syncutils switches the store locks to deadlock-detecting ones when
// built with -tags deadlock.
package syncutils

import "sync"

type Mutex = sync.Mutex

type RWMutex = sync.RWMutex
