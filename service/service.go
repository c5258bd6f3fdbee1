package service

import (
	"bitbucket.org/creachadair/stringset"

	"github.com/fulldump/villagerdb/database"
	"github.com/fulldump/villagerdb/villagers"
)

type Service struct {
	db *database.Database
}

func NewService(db *database.Database) *Service {
	return &Service{
		db: db,
	}
}

func (s *Service) ListSpecies() ([]string, error) {
	species, err := villagers.AllSpecies(s.db.Filename())
	if err != nil {
		return nil, err
	}
	return elements(species), nil
}

func (s *Service) ListVillagers(species string) ([]string, error) {
	if species == "" {
		species = villagers.All
	}
	return villagers.VillagersBySpecies(s.db.Filename(), species)
}

func (s *Service) FindVillagers(filter map[string]interface{}, skip, limit int64, f func(r *villagers.Record)) error {
	return villagers.Match(s.db.Filename(), filter, skip, limit, f)
}

func (s *Service) ListHobbyGroups() ([]*HobbyGroup, error) {

	groups, err := villagers.NamesByHobby(s.db.Filename())
	if err != nil {
		return nil, err
	}

	result := make([]*HobbyGroup, len(villagers.Hobbies))
	for i, hobby := range villagers.Hobbies {
		result[i] = &HobbyGroup{
			Hobby: hobby,
			Names: groups[i],
		}
	}

	return result, nil
}

func (s *Service) ListRecords() ([]*villagers.Record, error) {
	return villagers.AllData(s.db.Filename())
}

func (s *Service) GetMotto(name string) (*Motto, error) {

	motto, found, err := villagers.FindMotto(s.db.Filename(), name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrorVillagerNotFound
	}

	return &Motto{
		Name:  name,
		Motto: motto,
	}, nil
}

func (s *Service) ListLikeMinded(name string) ([]string, error) {
	names, err := villagers.FindLikeMinded(s.db.Filename(), name)
	if err != nil {
		return nil, err
	}
	return elements(names), nil
}

// elements returns the sorted elements of set, never nil.
func elements(set stringset.Set) []string {
	result := set.Elements()
	if result == nil {
		result = []string{}
	}
	return result
}
