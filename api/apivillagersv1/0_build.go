package apivillagersv1

import (
	"github.com/fulldump/box"
)

// BuildV1Villagers mounts the villager resources on v1 and returns it. The
// servicer must be injected by an interceptor, see SetServicer.
func BuildV1Villagers(v1 *box.R) *box.R {

	v1.Resource("/species").
		WithActions(
			box.Get(listSpecies),
		)

	v1.Resource("/villagers").
		WithActions(
			box.Get(listVillagers),
			box.ActionPost(find),
		)

	v1.Resource("/villagers/{villagerName}/motto").
		WithActions(
			box.Get(getMotto),
		)

	v1.Resource("/villagers/{villagerName}/likeminded").
		WithActions(
			box.Get(listLikeMinded),
		)

	v1.Resource("/hobbies").
		WithActions(
			box.Get(listHobbies),
		)

	v1.Resource("/records").
		WithActions(
			box.Get(listRecords),
		)

	return v1
}
