package apivillagersv1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/villagerdb/service"
	"github.com/fulldump/villagerdb/villagers"
)

func listVillagers(ctx context.Context, r *http.Request) ([]string, error) {

	species := r.URL.Query().Get("species")
	return GetServicer(ctx).ListVillagers(species)
}

func getMotto(ctx context.Context) (*service.Motto, error) {
	name := box.GetUrlParameter(ctx, "villagerName")
	return GetServicer(ctx).GetMotto(name)
}

func listLikeMinded(ctx context.Context) ([]string, error) {
	name := box.GetUrlParameter(ctx, "villagerName")
	return GetServicer(ctx).ListLikeMinded(name)
}

func listHobbies(ctx context.Context) ([]*service.HobbyGroup, error) {
	return GetServicer(ctx).ListHobbyGroups()
}

func listRecords(ctx context.Context) ([]*villagers.Record, error) {
	return GetServicer(ctx).ListRecords()
}
