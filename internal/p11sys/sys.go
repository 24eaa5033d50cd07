// Package p11sys reports the process and thread identifiers used to prefix
// trace lines.
package p11sys

import "os"

// Pid returns the current process ID.
func Pid() int { return os.Getpid() }

// Tid returns the ID of the OS thread running the caller, or 0 where the
// platform has no cheap way to get it. Goroutines migrate between threads,
// so the value identifies the thread at the moment of the call only.
func Tid() uint64 { return tid() }
