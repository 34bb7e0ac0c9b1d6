package service_test

import (
	"context"
	"testing"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurveyTypeService_DeleteGuard(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	svc := service.NewSurveyTypeService(store, nopLogger)

	used, err := svc.Create(ctx, &domain.CreateSurveyTypeRequest{Name: "Cargo damage survey"})
	require.NoError(t, err)
	assert.True(t, used.IsActive)
	unused, err := svc.Create(ctx, &domain.CreateSurveyTypeRequest{Name: "Draft survey"})
	require.NoError(t, err)

	createOrder(t, ctx, newOrderService(store), acmeOrder())

	err = svc.Delete(ctx, used.ID)
	assert.ErrorIs(t, err, service.ErrConflict)
	_, err = svc.GetByID(ctx, used.ID)
	assert.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, unused.ID))
	assert.ErrorIs(t, svc.Delete(ctx, unused.ID), service.ErrNotFound)
}

func TestSurveyTypeService_UniqueAndRename(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	svc := service.NewSurveyTypeService(store, nopLogger)

	st, err := svc.Create(ctx, &domain.CreateSurveyTypeRequest{Name: "Cargo damage survey"})
	require.NoError(t, err)
	other, err := svc.Create(ctx, &domain.CreateSurveyTypeRequest{Name: "Draft survey"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &domain.CreateSurveyTypeRequest{Name: " Cargo damage survey "})
	assert.ErrorIs(t, err, service.ErrConflict)

	taken := "Cargo damage survey"
	_, err = svc.Update(ctx, other.ID, &domain.UpdateSurveyTypeRequest{Name: &taken})
	assert.ErrorIs(t, err, service.ErrConflict)

	order := createOrder(t, ctx, newOrderService(store), acmeOrder())

	renamed := "Cargo condition survey"
	updated, err := svc.Update(ctx, st.ID, &domain.UpdateSurveyTypeRequest{Name: &renamed})
	require.NoError(t, err)
	assert.Equal(t, renamed, updated.Name)

	stored, err := store.Orders.GetByID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, renamed, stored.SurveyType)

	inactive := false
	updated, err = svc.Update(ctx, other.ID, &domain.UpdateSurveyTypeRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	active, err := svc.List(ctx, domain.ReferenceFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, renamed, active[0].Name)

	_, err = svc.Update(ctx, st.ID, &domain.UpdateSurveyTypeRequest{})
	assert.ErrorIs(t, err, service.ErrNoFieldsToUpdate)
}

func TestLookupServices_Uniqueness(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	ports := service.NewPortService(store, nopLogger)
	p, err := ports.Create(ctx, &domain.CreatePortRequest{Name: "Bergen", Country: "Norway", Code: "nobgo"})
	require.NoError(t, err)
	assert.Equal(t, "NOBGO", p.Code)
	_, err = ports.Create(ctx, &domain.CreatePortRequest{Name: "Bergen"})
	assert.ErrorIs(t, err, service.ErrConflict)

	products := service.NewProductService(store, nopLogger)
	_, err = products.Create(ctx, &domain.CreateProductRequest{Name: "Urea", Category: "Fertilizer"})
	require.NoError(t, err)
	_, err = products.Create(ctx, &domain.CreateProductRequest{Name: "Urea"})
	assert.ErrorIs(t, err, service.ErrConflict)
	_, err = products.Create(ctx, &domain.CreateProductRequest{Name: "Wheat", Category: "Grain"})
	require.NoError(t, err)
	fert, err := products.List(ctx, domain.ReferenceFilter{Category: "Fertilizer"})
	require.NoError(t, err)
	assert.Len(t, fert, 1)

	activities := service.NewTimelogActivityService(store, nopLogger)
	a, err := activities.Create(ctx, &domain.CreateTimelogActivityRequest{Name: "Loading commenced"})
	require.NoError(t, err)
	b, err := activities.Create(ctx, &domain.CreateTimelogActivityRequest{Name: "Loading completed"})
	require.NoError(t, err)
	_, err = activities.Create(ctx, &domain.CreateTimelogActivityRequest{Name: "Loading commenced"})
	assert.ErrorIs(t, err, service.ErrConflict)

	same := "Loading commenced"
	_, err = activities.Update(ctx, a.ID, &domain.UpdateTimelogActivityRequest{Name: &same})
	assert.NoError(t, err, "keeping its own name is not a conflict")
	_, err = activities.Update(ctx, b.ID, &domain.UpdateTimelogActivityRequest{Name: &same})
	assert.ErrorIs(t, err, service.ErrConflict)

	found, err := activities.List(ctx, domain.ReferenceFilter{Search: "COMPLETED"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, b.ID, found[0].ID)

	assert.ErrorIs(t, ports.Delete(ctx, 999), service.ErrNotFound)
	require.NoError(t, ports.Delete(ctx, p.ID))
}
