// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/hills"
	"github.com/katalvlaran/gridpath/valley"
	"github.com/katalvlaran/gridpath/valves"
	"github.com/katalvlaran/gridpath/wavefront"
)

var errUnknownPuzzle = errors.New("unknown puzzle")

// solve parses r as the named puzzle and writes one answer per line to w.
func solve(puzzle string, r io.Reader, w io.Writer, cfg config.Config, log logrus.FieldLogger) error {
	entry := log.WithField("puzzle", puzzle)
	switch puzzle {
	case "hills":
		return solveHills(r, w, cfg, entry)
	case "valley":
		return solveValley(r, w, cfg, entry)
	case "valves":
		return solveValves(r, w, cfg, entry)
	}
	return fmt.Errorf("%w: %q", errUnknownPuzzle, puzzle)
}

func dijkstraOptions(cfg config.Config, log logrus.FieldLogger) []dijkstra.Option {
	opts := []dijkstra.Option{dijkstra.WithLogger(log)}
	if cfg.Search.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(cfg.Search.MaxDistance))
	}
	return opts
}

func solveHills(r io.Reader, w io.Writer, cfg config.Config, log *logrus.Entry) error {
	m, err := hills.Parse(r, hills.WithSearchOptions(dijkstraOptions(cfg, log)...))
	if err != nil {
		return err
	}
	climb, path, err := m.Climb()
	if err != nil {
		return err
	}
	descend, from, _, err := m.Descend()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"start":   m.Start,
		"end":     m.End,
		"lowland": from,
		"basins":  len(m.Lowlands()),
	}).Info("hills solved")
	if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		log.WithField("steps", climb).Debug("climb route:\n" + m.Render(path))
	}
	_, err = fmt.Fprintf(w, "%d\n%d\n", climb, descend)
	return err
}

func solveValley(r io.Reader, w io.Writer, cfg config.Config, log logrus.FieldLogger) error {
	opts := []wavefront.Option{wavefront.WithLogger(log)}
	if cfg.Search.MaxTime > 0 {
		opts = append(opts, wavefront.WithMaxTime(cfg.Search.MaxTime))
	}
	v, err := valley.Parse(r, valley.WithSearchOptions(opts...))
	if err != nil {
		return err
	}
	once, err := v.Trip(1)
	if err != nil {
		return err
	}
	trip, err := v.Trip(cfg.Valley.Legs)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"height": v.Height,
		"width":  v.Width,
		"period": v.Period(),
		"legs":   cfg.Valley.Legs,
	}).Info("valley solved")
	_, err = fmt.Fprintf(w, "%d\n%d\n", once, trip)
	return err
}

func solveValves(r io.Reader, w io.Writer, cfg config.Config, log logrus.FieldLogger) error {
	n, err := valves.Parse(r, valves.WithLogger(log), valves.WithSearchOptions(dijkstraOptions(cfg, log)...))
	if err != nil {
		return err
	}
	plan, err := n.MaxRelease(cfg.Valves.Start, cfg.Valves.Minutes)
	if err != nil {
		return err
	}
	pair, err := n.MaxReleasePair(cfg.Valves.Start, cfg.Valves.PairMinutes)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"valves": n.Len(),
		"order":  plan.Order,
	}).Info("valves solved")
	_, err = fmt.Fprintf(w, "%d\n%d\n", plan.Released, pair)
	return err
}
