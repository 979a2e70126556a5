//go:build !linux && !windows && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !solaris

package internal

// fillFromSys leaves every extended field absent. Platforms built here
// (js, wasip1, plan9, aix) carry no Stat_t shape this package reads.
func fillFromSys(rec *Record, sys any) {}
