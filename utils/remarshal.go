package utils

import (
	"encoding/json"
	"fmt"
)

// Remarshal copies input into output through its json representation, handy
// to turn structs into generic maps.
func Remarshal(input interface{}, output interface{}) error {
	b, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return json.Unmarshal(b, output)
}
