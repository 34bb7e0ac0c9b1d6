package service

import (
	"context"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
)

// requireShipPort loads the parent port call of a new record. A missing
// parent is a client error, not a 404 on the record itself.
func requireShipPort(ctx context.Context, store *repository.Store, id int64) (*domain.ShipPort, error) {
	port, err := store.ShipPorts.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, invalidInput("ship port %d does not exist", id)
		}
		return nil, translate(err, "get ship port")
	}
	return port, nil
}
