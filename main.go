// Package main is the entrypoint of the salesrank CLI.
package main

import (
	"github.com/huangsam/salesrank/cmd"
	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/internal/observability"
)

func main() {
	defer observability.Sync()
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			contract.LogWarn("Error stopping profiling", err)
		}
	}()
	if err := cmd.Execute(); err != nil {
		_ = cmd.StopProfiling()
		observability.Sync()
		contract.LogFatal("Error running salesrank", err)
	}
}
