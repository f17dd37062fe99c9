//go:build !unix

package main

import (
	"os"

	"github.com/zephyrtronium/coco"
)

var faultSignals = map[os.Signal]coco.FaultKind{
	os.Interrupt: coco.FaultInterrupt,
}

func signalName(s os.Signal) string {
	return s.String()
}
