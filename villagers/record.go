package villagers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Delimiter separates the fields of a line in the data file.
const Delimiter = "|"

const fieldCount = 5

type Record struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Personality string `json:"personality"`
	Hobby       string `json:"hobby"`
	Motto       string `json:"motto"`
}

// Parse reads the whole data file at filename. Records keep file order.
//
// Empty lines are skipped, lines with less than five fields are padded with
// empty strings and any extra delimiter ends up inside Motto.
func Parse(filename string) ([]*Record, error) {

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	records, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("read data file '%s': %w", filename, err)
	}

	return records, nil
}

func ParseReader(r io.Reader) ([]*Record, error) {

	records := []*Record{}

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}

		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			records = append(records, parseLine(line))
		}

		if err == io.EOF {
			break
		}
	}

	return records, nil
}

func parseLine(line string) *Record {

	fields := strings.SplitN(line, Delimiter, fieldCount)
	for len(fields) < fieldCount {
		fields = append(fields, "")
	}

	return &Record{
		Name:        fields[0],
		Species:     fields[1],
		Personality: fields[2],
		Hobby:       fields[3],
		Motto:       fields[4],
	}
}

// String renders the record back in the data file format.
func (r *Record) String() string {
	return strings.Join([]string{r.Name, r.Species, r.Personality, r.Hobby, r.Motto}, Delimiter)
}
