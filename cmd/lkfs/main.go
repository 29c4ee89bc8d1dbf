// Command lkfs measures ITU-R BS.1770-4 integrated loudness of WAV files.
//
// Usage:
//
//	lkfs measure [flags] <file.wav ...>
//	lkfs tone [flags] <out.wav>
//
// Examples:
//
//	lkfs measure programme.wav
//	lkfs measure --json --filter=rbj a.wav b.wav
//	lkfs measure --weights=1,1,1,1.41,1.41 surround.wav
//	lkfs tone --level=-23 --duration=20 --channels=2 cal.wav
package main

import (
	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

var version = "dev"

// CLI is the command-line interface.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable debug logging on stderr."`
	Version kong.VersionFlag `help:"Show version information."`

	Measure measureCmd `cmd:"" help:"Measure integrated loudness of WAV files."`
	Tone    toneCmd    `cmd:"" help:"Write a sine calibration tone."`
}

func main() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("lkfs"),
		kong.Description("ITU-R BS.1770-4 integrated loudness meter"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	log, err := newLogger(cli.Verbose)
	ctx.FatalIfErrorf(err)

	defer func() { _ = log.Sync() }()

	err = ctx.Run(log)
	if err != nil {
		log.Debug("command failed", zap.String("command", ctx.Command()), zap.Error(err))
	}

	ctx.FatalIfErrorf(err)
}
