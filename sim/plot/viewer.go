package plot

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Opener displays a written figure.
type Opener func(path string) error

// OpenWithViewer hands path to the platform's default image viewer and
// returns without waiting for the viewer to exit.
func OpenWithViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

// WriteAll writes every figure under dir. When open is non-nil each written
// figure is passed to it right after it is saved, and a display failure stops
// the run.
func WriteAll(figs []Figure, dir string, open Opener) ([]string, error) {
	paths := make([]string, 0, len(figs))
	for _, f := range figs {
		path, err := f.Write(dir)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
		if open != nil {
			if err := open(path); err != nil {
				return paths, fmt.Errorf("display %s: %w", path, err)
			}
			logrus.Debugf("Displayed %s", path)
		}
	}
	return paths, nil
}
