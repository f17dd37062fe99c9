//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/zephyrtronium/coco"
)

var faultSignals = map[os.Signal]coco.FaultKind{
	unix.SIGABRT: coco.FaultAbort,
	unix.SIGINT:  coco.FaultInterrupt,
	unix.SIGTERM: coco.FaultTerminate,
}

func signalName(s os.Signal) string {
	if u, ok := s.(unix.Signal); ok {
		if name := unix.SignalName(u); name != "" {
			return name
		}
	}
	return s.String()
}
