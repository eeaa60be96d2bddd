// main is the entry point for the llmpick CLI.
package main

import (
	"github.com/huangsam/llmpick/cmd"
	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/internal/iocache"
)

func main() {
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()

	iocache.CloseCaching()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
