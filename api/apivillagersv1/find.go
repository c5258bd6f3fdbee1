package apivillagersv1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	json2 "github.com/go-json-experiment/json"

	"github.com/fulldump/villagerdb/villagers"
)

var ErrBadInput = errors.New("bad input")

type findInput struct {
	Filter map[string]interface{} `json:"filter"`
	Skip   int64                  `json:"skip"`
	Limit  int64                  `json:"limit"`
}

// find streams the matching records, one json document per line.
func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	input := &findInput{
		Limit: 1,
	}
	if len(requestBody) > 0 {
		err = json2.Unmarshal(requestBody, input)
		if err != nil {
			return fmt.Errorf("%w: decode find input: %s", ErrBadInput, err)
		}
	}

	var writeErr error
	started := false
	err = GetServicer(ctx).FindVillagers(input.Filter, input.Skip, input.Limit, func(record *villagers.Record) {
		if writeErr != nil {
			return
		}
		if !started {
			w.Header().Set("Content-Type", "application/x-ndjson")
			started = true
		}
		writeErr = writeRecord(w, record)
	})
	if errors.Is(err, villagers.ErrUnknownField) {
		return fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	if err != nil {
		return err
	}

	return writeErr
}

func writeRecord(w io.Writer, record *villagers.Record) error {
	payload, err := json2.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	payload = append(payload, '\n')
	_, err = w.Write(payload)
	return err
}
