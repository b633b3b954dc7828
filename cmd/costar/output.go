package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/costar/report"
)

// writeFile creates path and hands it to write, reporting the first error of
// write or Close.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// saveReport finishes rep and writes it when a report path is configured.
func (a *app) saveReport(rep *report.Report) error {
	rep.Finish()
	if a.cfg.Report == "" {
		return nil
	}
	if err := rep.Save(a.cfg.Report); err != nil {
		return err
	}
	a.log.Debug("report saved", "path", a.cfg.Report, "run_id", rep.RunID, "elapsed", rep.Elapsed())

	return nil
}
