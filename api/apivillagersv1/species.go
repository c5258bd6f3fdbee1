package apivillagersv1

import (
	"context"
)

func listSpecies(ctx context.Context) ([]string, error) {
	return GetServicer(ctx).ListSpecies()
}
