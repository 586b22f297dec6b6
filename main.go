// Package main is the entry point of the heatpump CLI.
package main

import (
	"github.com/huangsam/heatpump/cmd"
	"github.com/huangsam/heatpump/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("heatpump failed", err)
	}
}
