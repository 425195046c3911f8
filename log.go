package main

import (
	"log/slog"
	"os"
)

func (a *blogger2hugo) initLog() {
	a.initLogOnce.Do(func() {
		a.logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	})
}

func (a *blogger2hugo) debug(msg string, args ...any) {
	a.initLog()
	a.logger.Debug(msg, args...)
}

func (a *blogger2hugo) info(msg string, args ...any) {
	a.initLog()
	a.logger.Info(msg, args...)
}

func (a *blogger2hugo) error(msg string, args ...any) {
	a.initLog()
	a.logger.Error(msg, args...)
}

func (a *blogger2hugo) logErrAndQuit(msg string, args ...any) {
	a.error(msg, args...)
	os.Exit(1)
}
