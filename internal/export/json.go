package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/spinlab/internal/storage"
)

// ExportData is the JSON shape of a stored run: its metadata plus every
// observable column.
type ExportData struct {
	Meta   storage.RunMeta `json:"meta"`
	Series storage.Series  `json:"series"`
}

// ExportJSON writes one run as an indented JSON file.
func ExportJSON(path string, meta *storage.RunMeta, series *storage.Series) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, meta, series)
}

// ExportJSONStdout writes one run as indented JSON to standard output.
func ExportJSONStdout(meta *storage.RunMeta, series *storage.Series) error {
	return writeJSON(os.Stdout, meta, series)
}

func writeJSON(w io.Writer, meta *storage.RunMeta, series *storage.Series) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Meta: *meta, Series: *series})
}
