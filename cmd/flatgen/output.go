package main

import (
	"os"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return errors.Wrap(err, "write stdout")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	level.Info(logger).Log("msg", "wrote file", "path", path, "bytes", len(data))
	return nil
}
