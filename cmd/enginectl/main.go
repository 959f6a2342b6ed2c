// Command enginectl loads a position, searches it to a configured depth,
// and reports the best move. It has no UCI, no opening book, no time
// management and no castling - the core it drives implements none of
// those, by design.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/op/go-logging"

	"github.com/AndyWilliams682/aperiodic-chess-sub000/board"
	"github.com/AndyWilliams682/aperiodic-chess-sub000/config"
	"github.com/AndyWilliams682/aperiodic-chess-sub000/engine"
	"github.com/AndyWilliams682/aperiodic-chess-sub000/notation"
)

var log = logging.MustGetLogger("enginectl")

var (
	configPath   = flag.String("config", "", "path to a TOML config file; defaults baked in if omitted")
	positionFlag = flag.String("position", "", "position string to search; traditional start position if omitted")
)

func setupLogging() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(`%{color}%{time:15:04:05.000} %{level:.4s}%{color:reset} %{message}`)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))
}

func startingPositionString(topologyName string) (string, error) {
	if topologyName != config.TopologyTraditional {
		return "", fmt.Errorf("enginectl: no built-in starting position for topology %q; pass --position", topologyName)
	}
	return "RNBQKBNRPPPPPPPP32pppppppprnbqkbnr w -", nil
}

func run() error {
	flag.Parse()
	setupLogging()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	topology, err := cfg.Board.Topology()
	if err != nil {
		return err
	}
	tables := board.BuildMoveTables(board.NewGraph(topology))

	posString := *positionFlag
	if posString == "" {
		posString, err = startingPositionString(cfg.Board.TopologyName)
		if err != nil {
			return err
		}
	}
	pos, err := notation.Decode(posString, tables)
	if err != nil {
		return fmt.Errorf("enginectl: %w", err)
	}

	gen := board.NewMoveGenerator()
	table := engine.NewTranspositionTable(cfg.Search.TableSize)
	evaluator := engine.NewMobilityEvaluator(tables)
	searcher := engine.NewSearcher(table, evaluator)

	log.Infof("searching %s to depth %d on %s", notation.Encode(pos, tables.Graph.NumTiles()), cfg.Search.MaxDepth, cfg.Board.TopologyName)

	outcome := pos.Result(gen)
	if outcome.Outcome != board.Ongoing {
		fmt.Println(color.YellowString("game over: %s", outcome.Outcome))
		return nil
	}

	result := searcher.GetBestMove(pos, cfg.Search.MaxDepth)
	if !result.HasMove {
		fmt.Println(color.RedString("no legal move found"))
		return nil
	}

	fmt.Printf("%s %s  (score %s, nodes %s)\n",
		color.GreenString("best move:"),
		color.CyanString("%d->%d", result.Move.Source, result.Move.Destination),
		color.YellowString("%d", result.Score),
		color.WhiteString("%d", result.Stats.Nodes))
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
