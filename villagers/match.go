package villagers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SierraSoftworks/connor"

	"github.com/fulldump/villagerdb/utils"
)

var ErrUnknownField = errors.New("unknown field")

var recordFields = map[string]bool{
	"name":        true,
	"species":     true,
	"personality": true,
	"hobby":       true,
	"motto":       true,
}

// Match traverses the data file and calls f with every record matching
// filter, a connor query over the record json fields. skip records are
// ignored first and at most limit records are returned, limit < 0 means no
// limit.
func Match(filename string, filter map[string]interface{}, skip, limit int64, f func(r *Record)) error {

	if err := checkFilter(filter); err != nil {
		return err
	}

	records, err := Parse(filename)
	if err != nil {
		return err
	}

	hasFilter := len(filter) > 0

	for _, record := range records {

		if limit == 0 {
			break
		}

		if hasFilter {
			recordData := map[string]interface{}{}
			if err := utils.Remarshal(record, &recordData); err != nil {
				return fmt.Errorf("remarshal record: %w", err)
			}

			match, err := connor.Match(filter, recordData)
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		limit--
		f(record)
	}

	return nil
}

func checkFilter(filter map[string]interface{}) error {
	for key := range filter {
		if strings.HasPrefix(key, "$") {
			continue
		}
		if !recordFields[key] {
			return fmt.Errorf("%w '%s', must be [%s]", ErrUnknownField, key, strings.Join(utils.GetKeys(recordFields), "|"))
		}
	}
	return nil
}
