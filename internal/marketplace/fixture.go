package marketplace

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

var datasetValidator = validator.New(validator.WithRequiredStructEnabled())

// LoadDataset decodes a JSON fixture and validates every record before it is
// handed to a seeder. Unknown fields are rejected.
func LoadDataset(r io.Reader) (Dataset, error) {
	var data Dataset
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&data); err != nil {
		return Dataset{}, fmt.Errorf("decode fixture: %w", err)
	}
	if err := datasetValidator.Struct(data); err != nil {
		return Dataset{}, fmt.Errorf("invalid fixture: %w", err)
	}
	return data, nil
}
