//go:build linux

package p11sys

import "golang.org/x/sys/unix"

func tid() uint64 { return uint64(unix.Gettid()) }
