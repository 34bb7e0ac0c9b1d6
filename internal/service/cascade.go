package service

import (
	"context"

	"github.com/gunnargantzel/NMS-sub000/internal/repository"
)

// deleteShips removes ships together with their port calls and records.
// It must run inside a transaction.
func deleteShips(ctx context.Context, tx *repository.Store, shipIDs []int64) error {
	if len(shipIDs) == 0 {
		return nil
	}
	portIDs, err := tx.ShipPorts.IDsByShips(ctx, shipIDs)
	if err != nil {
		return translate(err, "list ship ports")
	}
	if err := deletePortRecords(ctx, tx, portIDs); err != nil {
		return err
	}
	if err := tx.ShipPorts.DeleteByShips(ctx, shipIDs); err != nil {
		return translate(err, "delete ship ports")
	}
	for _, id := range shipIDs {
		if err := tx.Ships.Delete(ctx, id); err != nil {
			return translate(err, "delete ship")
		}
	}
	return nil
}

// deletePortRecords removes order lines, timelog entries, samples and
// remarks of the given port calls
func deletePortRecords(ctx context.Context, tx *repository.Store, portIDs []int64) error {
	if len(portIDs) == 0 {
		return nil
	}
	if err := tx.OrderLines.DeleteByShipPorts(ctx, portIDs); err != nil {
		return translate(err, "delete order lines")
	}
	if err := tx.Timelogs.DeleteByShipPorts(ctx, portIDs); err != nil {
		return translate(err, "delete timelog entries")
	}
	if err := tx.Samplings.DeleteByShipPorts(ctx, portIDs); err != nil {
		return translate(err, "delete sampling records")
	}
	if err := tx.Remarks.DeleteByShipPorts(ctx, portIDs); err != nil {
		return translate(err, "delete remarks")
	}
	return nil
}
