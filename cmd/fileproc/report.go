package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/fileproc/config"
	"github.com/jmgilman/fileproc/errors"
	"github.com/jmgilman/fileproc/processor"
)

// result is the serializable report entry for one outcome.
type result struct {
	Title   string                `json:"title" yaml:"title"`
	CallID  string                `json:"call_id" yaml:"call_id"`
	File    string                `json:"file,omitempty" yaml:"file,omitempty"`
	Success bool                  `json:"success" yaml:"success"`
	Content string                `json:"content,omitempty" yaml:"content,omitempty"`
	Handle  string                `json:"handle,omitempty" yaml:"handle,omitempty"`
	SavedAs string                `json:"saved_as,omitempty" yaml:"saved_as,omitempty"`
	Error   *errors.ErrorResponse `json:"error,omitempty" yaml:"error,omitempty"`

	// Events is the number of events the call emitted.
	Events int `json:"events" yaml:"events"`
	// HandleClosed reports whether cleanup released an acquired handle.
	HandleClosed bool `json:"handle_closed" yaml:"handle_closed"`
}

func newResult(title string, out processor.Outcome, events []processor.Event) result {
	r := result{
		Title:   title,
		CallID:  out.CallID,
		File:    out.Name,
		Success: out.Succeeded(),
		Content: out.Content,
		Handle:  out.HandleID,
		SavedAs: out.SavedAs,
		Events:  len(events),
	}
	for _, e := range events {
		if e.Kind == processor.EventClosingHandle {
			r.HandleClosed = true
		}
	}
	if out.Err != nil {
		r.Error = errors.ToJSON(out.Err)
	}
	return r
}

func render(w io.Writer, output config.Output, results []result) error {
	switch output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderText(w, results)
	}
}

func renderText(w io.Writer, results []result) error {
	for i, r := range results {
		if _, err := fmt.Fprintf(w, "=== Test %d: %s ===\n", i+1, r.Title); err != nil {
			return err
		}

		var line string
		if r.Success {
			line = fmt.Sprintf("OK %s -> %s", r.File, r.Content)
		} else {
			line = fmt.Sprintf("FAILED [%s] %s", r.Error.Code, r.Error.Message)
		}
		if r.HandleClosed {
			line += " (handle closed)"
		} else {
			line += " (no handle to close)"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
