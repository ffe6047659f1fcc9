package main

import (
	"flag"
	"os"

	"github.com/louisbranch/calorie.space/internal/platform/config"
	"github.com/louisbranch/calorie.space/internal/tools/apikeygen"
)

func main() {
	cfg, err := apikeygen.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := apikeygen.Run(cfg, os.Stdout, nil); err != nil {
		config.Exitf("generate key: %v", err)
	}
}
