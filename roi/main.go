package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/roitrk/roitrack/cmd"
)

func main() {
	// Shell completion: invoked by the completion hooks, this returns
	// without reaching the commander.
	completion().Complete("roi")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	indexFlags := map[string]complete.Predictor{"i": predict.Something}
	tickerFlags := map[string]complete.Predictor{"t": predict.Something}
	tradeFlags := map[string]complete.Predictor{
		"s": predict.Something,
		"c": predict.Something,
		"q": predict.Something,
		"p": predict.Something,
		"b": predict.Something,
		"d": predict.Something,
	}
	editFlags := map[string]complete.Predictor{"i": predict.Something}
	for k, v := range tradeFlags {
		editFlags[k] = v
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"trades-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"import": {
				Flags: map[string]complete.Predictor{"n": predict.Nothing},
				Args:  predict.Files("*.csv"),
			},
			"add":     {Flags: tradeFlags},
			"edit":    {Flags: editFlags},
			"delete":  {Flags: indexFlags},
			"list":    {Flags: tickerFlags},
			"show":    {Flags: indexFlags},
			"summary": {Flags: tickerFlags},
			"fmt":     {},
			"topic":   {Args: predict.Set{"readme", "statements", "dates"}},
			"assist":  {},
		},
	}
}
