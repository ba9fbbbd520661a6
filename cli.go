//go:build cli
// +build cli

package main

import (
	_ "github.com/DoTranTuyen/fullstack-dath/custom"

	"github.com/DoTranTuyen/fullstack-dath/cmd"
	"github.com/DoTranTuyen/fullstack-dath/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
