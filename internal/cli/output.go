package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signalsfoundry/frame-converter/core"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validFormat(f string) bool {
	switch f {
	case formatText, formatJSON, formatYAML:
		return true
	}
	return false
}

// Result is the structured form of one conversion, used by the json and yaml
// output formats.
type Result struct {
	Strategy  string     `json:"strategy" yaml:"strategy"`
	Direction string     `json:"direction" yaml:"direction"`
	Input     [4]float64 `json:"input" yaml:"input,flow"`
	Output    [4]float64 `json:"output" yaml:"output,flow"`
}

func writeResult(w io.Writer, cfg Config, s core.Strategy, q core.Quaternion) error {
	switch cfg.Output {
	case formatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(newResult(cfg, s, q))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(newResult(cfg, s, q)); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, q.W, q.X, q.Y, q.Z)
		return err
	}
}

func newResult(cfg Config, s core.Strategy, q core.Quaternion) Result {
	return Result{
		Strategy:  s.Name,
		Direction: cfg.Direction(),
		Input:     cfg.Input.Components(),
		Output:    q.Components(),
	}
}
