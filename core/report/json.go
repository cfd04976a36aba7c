package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/takaraplatform/apiparity/core/models"
)

// JSON renders the Result as an indented JSON document, one per run.
type JSON struct{}

func (j *JSON) Render(w io.Writer, res *models.Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
