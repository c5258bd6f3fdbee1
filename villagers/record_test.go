package villagers

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/fulldump/biff"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	Environment(t, sampleData, func(filename string) {

		records, err := Parse(filename)
		AssertNil(err)
		AssertEqual(len(records), 9)

		expected := &Record{
			Name:        "Bella",
			Species:     "Cat",
			Personality: "Peppy",
			Hobby:       "Fashion",
			Motto:       `"Fashion first!"`,
		}
		if diff := cmp.Diff(expected, records[0]); diff != "" {
			t.Errorf("first record mismatch (-want +got):\n%s", diff)
		}
		AssertEqual(records[8].Name, "Zucker")
	})
}

func TestParse_FileNotFound(t *testing.T) {

	records, err := Parse(filepath.Join(t.TempDir(), "missing.csv"))

	AssertNil(records)
	AssertNotNil(err)
	AssertTrue(errors.Is(err, fs.ErrNotExist))
}

func TestParseReader_LineTerminators(t *testing.T) {

	records, err := ParseReader(strings.NewReader("Bella|Cat|Peppy|Fashion|Hi\r\n\r\nBob|Cat|Lazy|Play|Nap\n\n"))
	AssertNil(err)

	expected := []*Record{
		{Name: "Bella", Species: "Cat", Personality: "Peppy", Hobby: "Fashion", Motto: "Hi"},
		{Name: "Bob", Species: "Cat", Personality: "Lazy", Hobby: "Play", Motto: "Nap"},
	}
	if diff := cmp.Diff(expected, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReader_ShortLineIsPadded(t *testing.T) {

	records, err := ParseReader(strings.NewReader("Bella|Cat"))
	AssertNil(err)
	AssertEqual(len(records), 1)
	AssertEqual(*records[0], Record{Name: "Bella", Species: "Cat"})
}

func TestParseReader_ExtraDelimitersStayInMotto(t *testing.T) {

	records, err := ParseReader(strings.NewReader("Bella|Cat|Peppy|Fashion|one|two"))
	AssertNil(err)
	AssertEqual(records[0].Motto, "one|two")
}

func TestParseReader_Empty(t *testing.T) {

	records, err := ParseReader(strings.NewReader(""))
	AssertNil(err)
	AssertEqual(len(records), 0)
}

func TestRecord_String(t *testing.T) {

	line := `Bella|Cat|Peppy|Fashion|"Fashion first!"`
	records, _ := ParseReader(strings.NewReader(line))

	AssertEqual(records[0].String(), line)
}

func TestParseReader_LongLine(t *testing.T) {

	motto := strings.Repeat("z", 2*1024*1024)
	data := "Bella|Cat|Peppy|Fashion|" + motto + "\nBob|Cat|Lazy|Play|Nap\n"

	records, err := ParseReader(strings.NewReader(data))
	AssertNil(err)
	AssertEqual(len(records), 2)
	AssertEqual(len(records[0].Motto), len(motto))
	AssertEqual(records[1].Name, "Bob")
}

func TestParseReader_LastLineWithoutTerminator(t *testing.T) {

	records, err := ParseReader(strings.NewReader("Bella|Cat|Peppy|Fashion|Hi\nBob|Cat|Lazy|Play|Nap"))
	AssertNil(err)
	AssertEqual(len(records), 2)
	AssertEqual(records[1].Motto, "Nap")
}
