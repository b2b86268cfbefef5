// Command flatgen renders the generated parts of flatabi: the array term
// list of the Layout constraint and C headers for the record shapes.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var logger log.Logger = log.NewNopLogger()

func main() {
	app := newApp()
	_, err := app.Parse(os.Args[1:])
	app.FatalIfError(err, "")
}

func newApp() *kingpin.Application {
	app := kingpin.New("flatgen", "Generate flatabi layout code and C headers.")
	logLevel := app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").Enum("debug", "info", "warn", "error")
	app.PreAction(func(*kingpin.ParseContext) error {
		logger = newLogger(*logLevel)
		return nil
	})

	addTypesCommand(app)
	addHeaderCommand(app)
	return app
}

func newLogger(lvl string) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	l = level.NewFilter(l, level.Allow(level.ParseDefault(lvl, level.InfoValue())))
	return log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

