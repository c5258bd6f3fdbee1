package service

import (
	"errors"

	"github.com/fulldump/villagerdb/villagers"
)

var ErrorVillagerNotFound = errors.New("villager not found")

type HobbyGroup struct {
	Hobby villagers.Hobby `json:"hobby"`
	Names []string        `json:"names"`
}

type Motto struct {
	Name  string `json:"name"`
	Motto string `json:"motto"`
}

type Servicer interface {
	ListSpecies() ([]string, error)
	// ListVillagers lists every villager when species is empty.
	ListVillagers(species string) ([]string, error)
	FindVillagers(filter map[string]interface{}, skip, limit int64, f func(r *villagers.Record)) error
	ListHobbyGroups() ([]*HobbyGroup, error)
	ListRecords() ([]*villagers.Record, error)
	GetMotto(name string) (*Motto, error)
	ListLikeMinded(name string) ([]string, error)
}
