// SPDX-License-Identifier: MIT

// Command gridpath answers routing puzzles from a text input.
//
//	gridpath -puzzle hills -input map.txt
//	gridpath -puzzle valley -input basin.txt.zst -config gridpath.yaml
//	gridpath -puzzle valves -input - < scan.txt
//
// Inputs ending in .zst are decompressed on the fly. Answers go to stdout,
// diagnostics to stderr.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/config"
)

var log = logrus.New()

func setupLogging(c config.Config) {
	log.SetOutput(os.Stderr)
	log.SetLevel(c.Level())
	if c.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		puzzle     = flag.String("puzzle", "", "puzzle kind: hills, valley or valves")
		inputPath  = flag.String("input", "-", "input file, - for stdin; .zst is decompressed")
	)
	flag.Parse()

	if *puzzle == "" {
		fmt.Fprintln(os.Stderr, "missing -puzzle")
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, "load config:", err)
			os.Exit(1)
		}
	}
	setupLogging(cfg)
	log.WithFields(cfg.Fields()).Debug("config")

	in, err := openInput(*inputPath)
	if err != nil {
		log.Fatal("unable to open input: ", err)
	}
	defer in.Close()

	if err := solve(*puzzle, in, os.Stdout, cfg, log); err != nil {
		log.WithField("puzzle", *puzzle).Error(err)
		in.Close()
		os.Exit(1)
	}
}
