// Package buildinfo reports the version stamped in at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/hrconsole/internal/buildinfo.BuildVersion=v1.0.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	BuildVersion = "N/A"
	BuildDate    = "N/A"
	BuildCommit  = "N/A"
)

func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", BuildVersion)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "Build commit: %s\n", BuildCommit)
}
