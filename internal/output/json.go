package output

import (
	"encoding/json"
	"io"

	"github.com/yiyuanlee/EPL-shot-maps/pkg/models"
)

// WriteJSON writes the shot table as an indented JSON array.
func WriteJSON(w io.Writer, shots []models.Shot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(shots)
}
