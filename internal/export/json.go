// Package export serializes composed views for external renderers.
package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/butterfly/internal/view"
)

// Bundle is the wire form of one generate request: the three views plus
// the sample count renderers need for frame slicing sanity checks.
type Bundle struct {
	Samples int         `json:"samples"`
	Views   *view.Views `json:"views"`
}

// WriteJSON encodes the views as indented JSON.
func WriteJSON(w io.Writer, samples int, views *view.Views) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Bundle{Samples: samples, Views: views})
}

// SaveJSON writes the views to a file, creating or truncating it.
func SaveJSON(path string, samples int, views *view.Views) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, samples, views)
}
