package villagers

import (
	"bitbucket.org/creachadair/stringset"
	"github.com/google/btree"
)

// All is the species filter that disables filtering. It is checked before
// comparing species, so a species literally called "All" is not special.
const All = "All"

func AllSpecies(filename string) (stringset.Set, error) {

	records, err := Parse(filename)
	if err != nil {
		return nil, err
	}

	result := stringset.New()
	for _, record := range records {
		result[record.Species] = struct{}{}
	}

	return result, nil
}

type nameEntry struct {
	Name     string
	Position int // position in file, keeps duplicated names
}

func lessNameEntry(a, b nameEntry) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.Position < b.Position
}

// VillagersBySpecies returns the names of the villagers of a species sorted in
// ascending order. Use All to get every name.
func VillagersBySpecies(filename, species string) ([]string, error) {

	records, err := Parse(filename)
	if err != nil {
		return nil, err
	}

	names := btree.NewG(32, lessNameEntry)
	for i, record := range records {
		if species == All || record.Species == species {
			names.ReplaceOrInsert(nameEntry{Name: record.Name, Position: i})
		}
	}

	result := make([]string, 0, names.Len())
	names.Ascend(func(entry nameEntry) bool {
		result = append(result, entry.Name)
		return true
	})

	return result, nil
}

// NamesByHobby returns one list of names per entry in Hobbies, in the same
// order. Villagers with an unknown hobby are not included.
func NamesByHobby(filename string) ([][]string, error) {

	records, err := Parse(filename)
	if err != nil {
		return nil, err
	}

	result := make([][]string, len(Hobbies))
	for i := range result {
		result[i] = []string{}
	}

	for _, record := range records {
		i := hobbyPosition(record.Hobby)
		if i < 0 {
			continue
		}
		result[i] = append(result[i], record.Name)
	}

	return result, nil
}

func AllData(filename string) ([]*Record, error) {
	return Parse(filename)
}

// FindMotto returns the motto of the first villager called name.
func FindMotto(filename, name string) (motto string, found bool, err error) {

	records, err := Parse(filename)
	if err != nil {
		return "", false, err
	}

	for _, record := range records {
		if record.Name == name {
			return record.Motto, true, nil
		}
	}

	return "", false, nil
}

// FindLikeMinded returns the names of the villagers sharing personality with
// the first villager called name. The result never contains name.
func FindLikeMinded(filename, name string) (stringset.Set, error) {

	records, err := Parse(filename)
	if err != nil {
		return nil, err
	}

	result := stringset.New()

	target := ""
	for _, record := range records {
		if record.Name == name {
			target = record.Personality
			break
		}
	}
	if target == "" {
		return result, nil
	}

	for _, record := range records {
		if record.Personality != target || record.Name == name {
			continue
		}
		result[record.Name] = struct{}{}
	}

	return result, nil
}
