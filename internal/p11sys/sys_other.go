//go:build !linux

package p11sys

func tid() uint64 { return 0 }
