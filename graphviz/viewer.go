package graphviz

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/robertmattmueller/go-evmdd"
)

// RenderToFile writes edge's DOT encoding to path.
func RenderToFile(edge evmdd.Edge, path string) error {
	dot, err := NewWriter().WriteDOT(edge)
	if err != nil {
		return fmt.Errorf("render DOT: %w", err)
	}
	if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
		return fmt.Errorf("write DOT file %s: %w", path, err)
	}
	return nil
}

// Open renders edge to a DOT file at dotPath (left in place afterwards) and launches a
// viewer on it: xdot on Linux, or dot -Tsvg followed by the "open"
// command on macOS. It assumes Graphviz (and, on macOS, "open") are
// installed; if the viewer binary is missing, Open returns an error
// instead of silently doing nothing.
func Open(edge evmdd.Edge, dotPath string) error {
	if err := RenderToFile(edge, dotPath); err != nil {
		return err
	}

	switch runtime.GOOS {
	case "darwin":
		svgPath := dotPath + ".svg"
		if err := exec.Command("dot", "-Tsvg", "-o", svgPath, dotPath).Run(); err != nil {
			return fmt.Errorf("convert %s to SVG: %w", dotPath, err)
		}
		if err := exec.Command("open", svgPath).Run(); err != nil {
			return fmt.Errorf("open %s: %w", svgPath, err)
		}
		return nil
	default:
		if err := exec.Command("xdot", dotPath).Run(); err != nil {
			return fmt.Errorf("run xdot on %s: %w", dotPath, err)
		}
		return nil
	}
}
