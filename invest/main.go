package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/eladshoshani/Investments/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	// Load API tokens from a .env file if there is one.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for the subcommands. It returns
// immediately unless the shell is asking for completions.
func completion() {
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"estimate": {Flags: map[string]complete.Predictor{
				"format": predict.Set{"markdown", "json"},
				"policy": predict.Set{"balance", "balance+interest"},
			}},
			"schedule": {},
			"sweep": {Flags: map[string]complete.Predictor{
				"file": predict.Files("*.csv"),
				"plot": predict.Files("*.png"),
			}},
			"fetch": {Flags: map[string]complete.Predictor{
				"o": predict.Files("*.csv"),
			}},
			"topic":  {Args: predict.Set{"readme", "apartment", "strategies", "data"}},
			"assist": {},
		},
	}
	c.Complete("invest")
}
