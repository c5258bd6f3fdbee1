package villagers

import (
	"path/filepath"
	"sort"
	"testing"

	. "github.com/fulldump/biff"
)

func TestAllSpecies(t *testing.T) {
	Environment(t, sampleData, func(filename string) {

		species, err := AllSpecies(filename)
		AssertNil(err)

		AssertEqual(species.Elements(), []string{"Cat", "Eagle", "Octopus", "Rabbit", "Sheep", "Squirrel"})
	})
}

func TestAllSpecies_FileNotFound(t *testing.T) {

	_, err := AllSpecies(filepath.Join(t.TempDir(), "missing.csv"))
	AssertNotNil(err)
}

func TestVillagersBySpecies(t *testing.T) {
	Environment(t, sampleData, func(filename string) {

		names, err := VillagersBySpecies(filename, "Cat")
		AssertNil(err)
		AssertEqual(names, []string{"Ankha", "Bella", "Bob", "Kid Cat"})
	})
}

func TestVillagersBySpecies_All(t *testing.T) {
	Environment(t, sampleData, func(filename string) {

		names, err := VillagersBySpecies(filename, All)
		AssertNil(err)
		AssertEqual(len(names), 9)
		AssertTrue(sort.StringsAreSorted(names))
	})
}

func TestVillagersBySpecies_Unknown(t *testing.T) {
	Environment(t, sampleData, func(filename string) {

		names, err := VillagersBySpecies(filename, "Dragon")
		AssertNil(err)
		AssertEqual(names, []string{})
	})
}

func TestVillagersBySpecies_SpeciesCalledAll(t *testing.T) {
	data := "Bella|Cat|Peppy|Fashion|a\nOmni|All|Lazy|Play|b\n"
	Environment(t, data, func(filename string) {

		names, err := VillagersBySpecies(filename, All)
		AssertNil(err)
		AssertEqual(names, []string{"Bella", "Omni"})
	})
}

func TestVillagersBySpecies_DuplicatedNames(t *testing.T) {
	data := "Bob|Cat|Lazy|Play|a\nAnkha|Cat|Snooty|Education|b\nBob|Cat|Jock|Fitness|c\n"
	Environment(t, data, func(filename string) {

		names, err := VillagersBySpecies(filename, "Cat")
		AssertNil(err)
		AssertEqual(names, []string{"Ankha", "Bob", "Bob"})
	})
}

func TestNamesByHobby(t *testing.T) {
	Environment(t, sampleData, func(filename string) {

		groups, err := NamesByHobby(filename)
		AssertNil(err)

		AssertEqual(groups, [][]string{
			{"Ankha"},            // Education
			{"Kid Cat"},          // Fitness
			{"Bella"},            // Fashion
			{"Carmen", "Apollo"}, // Nature
			{"Wendy", "Bob"},     // Play
			{"Marshal"},          // Music
		})
	})
}

func TestNamesByHobby_UnknownHobbyIsDropped(t *testing.T) {
	data := "Kid Cat|Cat|Jock|Fitness|a\nZucker|Octopus|Lazy|Unknown|b\n"
	Environment(t, data, func(filename string) {

		groups, err := NamesByHobby(filename)
		AssertNil(err)
		AssertEqual(len(groups), len(Hobbies))

		total := 0
		for _, group := range groups {
			AssertNotNil(group)
			total += len(group)
			for _, name := range group {
				AssertNotEqual(name, "Zucker")
			}
		}
		AssertEqual(total, 1)
		AssertEqual(groups[1], []string{"Kid Cat"})
	})
}

func TestAllData(t *testing.T) {
	Environment(t, sampleData, func(filename string) {

		records, err := AllData(filename)
		AssertNil(err)
		AssertEqual(len(records), 9)
		AssertEqual(records[0].Name, "Bella")
		AssertEqual(records[3].Name, "Apollo")
	})
}

func TestFindMotto(t *testing.T) {
	Environment(t, sampleData, func(filename string) {

		motto, found, err := FindMotto(filename, "Apollo")
		AssertNil(err)
		AssertTrue(found)
		AssertEqual(motto, `"Pah."`)
	})
}

func TestFindMotto_NotFound(t *testing.T) {
	Environment(t, sampleData, func(filename string) {

		motto, found, err := FindMotto(filename, "Nonexistent")
		AssertNil(err)
		AssertFalse(found)
		AssertEqual(motto, "")
	})
}

func TestFindMotto_FirstMatchWins(t *testing.T) {
	data := "Bob|Cat|Lazy|Play|first\nBob|Cat|Lazy|Play|second\n"
	Environment(t, data, func(filename string) {

		motto, found, err := FindMotto(filename, "Bob")
		AssertNil(err)
		AssertTrue(found)
		AssertEqual(motto, "first")
	})
}

func TestFindLikeMinded(t *testing.T) {
	data := `Bella|Cat|Sisterly|Nature|"..."
Carmen|Cat|Sisterly|Nature|"..."
Wendy|Dog|Sisterly|Play|"..."
Bob|Cat|Lazy|Play|"..."
`
	Environment(t, data, func(filename string) {

		names, err := FindLikeMinded(filename, "Wendy")
		AssertNil(err)
		AssertEqual(names.Elements(), []string{"Bella", "Carmen"})
	})
}

func TestFindLikeMinded_NotFound(t *testing.T) {
	Environment(t, sampleData, func(filename string) {

		names, err := FindLikeMinded(filename, "Nonexistent")
		AssertNil(err)
		AssertEqual(len(names), 0)
	})
}

func TestFindLikeMinded_ExcludesDuplicatedName(t *testing.T) {
	data := "Bob|Cat|Lazy|Play|a\nZucker|Octopus|Lazy|Play|b\nBob|Cat|Lazy|Nature|c\n"
	Environment(t, data, func(filename string) {

		names, err := FindLikeMinded(filename, "Bob")
		AssertNil(err)
		AssertEqual(names.Elements(), []string{"Zucker"})
	})
}

func TestFindLikeMinded_FirstPersonalityWins(t *testing.T) {
	data := "Bob|Cat|Lazy|Play|a\nBob|Cat|Jock|Play|b\nKid Cat|Cat|Jock|Fitness|c\nZucker|Octopus|Lazy|Play|d\n"
	Environment(t, data, func(filename string) {

		names, err := FindLikeMinded(filename, "Bob")
		AssertNil(err)
		AssertEqual(names.Elements(), []string{"Zucker"})
	})
}

func TestMatch(t *testing.T) {
	Environment(t, sampleData, func(filename string) {

		names := []string{}
		err := Match(filename, map[string]interface{}{"species": "Cat"}, 1, 2, func(r *Record) {
			names = append(names, r.Name)
		})
		AssertNil(err)
		AssertEqual(names, []string{"Ankha", "Bob"})
	})
}

func TestMatch_NoFilterNoLimit(t *testing.T) {
	Environment(t, sampleData, func(filename string) {

		n := 0
		err := Match(filename, nil, 0, -1, func(r *Record) {
			n++
		})
		AssertNil(err)
		AssertEqual(n, 9)
	})
}

func TestMatch_UnknownField(t *testing.T) {
	Environment(t, sampleData, func(filename string) {

		err := Match(filename, map[string]interface{}{"color": "red"}, 0, -1, func(r *Record) {})
		AssertNotNil(err)
		AssertEqual(err.Error(), "unknown field 'color', must be [hobby|motto|name|personality|species]")
	})
}
