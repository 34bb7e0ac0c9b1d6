package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/notification"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"github.com/gunnargantzel/NMS-sub000/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []notification.Message
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, msg notification.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type failingStorage struct{}

func (failingStorage) Put(ctx context.Context, key, contentType string, data io.Reader) (int64, error) {
	return 0, errors.New("disk full")
}

func (failingStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, storage.ErrNotFound
}

func (failingStorage) Delete(ctx context.Context, key string) error { return nil }

func TestNotificationService_SendOrderConfirmation(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	orders := newOrderService(store)
	order := createOrder(t, ctx, orders, acmeOrder())

	archive, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	mailer := &recordingMailer{}
	svc := service.NewNotificationService(orders, notification.NewFormatter(), mailer, archive, nopLogger)

	resp, err := svc.SendOrderConfirmation(ctx, order.OrderID, "See you on Monday")
	require.NoError(t, err)
	assert.Equal(t, "ops@acme.test", resp.Recipient)
	require.NotEmpty(t, resp.ArchiveID)
	assert.True(t, strings.HasPrefix(resp.ArchiveID, "confirmations/"+order.OrderNumber+"/"))

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "ops@acme.test", msg.To)
	assert.Contains(t, msg.Subject, order.OrderNumber)
	assert.Contains(t, msg.HTML, "M/T Test")
	assert.Contains(t, msg.HTML, "Bergen")
	assert.Contains(t, msg.HTML, "See you on Monday")

	rc, err := archive.Get(ctx, resp.ArchiveID)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, msg.HTML, string(body))
}

func TestNotificationService_Failures(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	orders := newOrderService(store)

	noEmail := acmeOrder()
	noEmail.ClientEmail = ""
	withoutEmail := createOrder(t, ctx, orders, noEmail)
	withEmail := createOrder(t, ctx, orders, acmeOrder())

	mailer := &recordingMailer{}
	svc := service.NewNotificationService(orders, notification.NewFormatter(), mailer, failingStorage{}, nopLogger)

	_, err := svc.SendOrderConfirmation(ctx, 999, "")
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.SendOrderConfirmation(ctx, withoutEmail.OrderID, "")
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	resp, err := svc.SendOrderConfirmation(ctx, withEmail.OrderID, "")
	require.NoError(t, err, "archive failure is not fatal")
	assert.Empty(t, resp.ArchiveID)

	mailer.err = errors.New("connection refused")
	_, err = svc.SendOrderConfirmation(ctx, withEmail.OrderID, "")
	assert.ErrorIs(t, err, service.ErrDeliveryFailed)
}

func TestNotificationService_NilArchive(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	orders := newOrderService(store)
	order := createOrder(t, ctx, orders, acmeOrder())

	svc := service.NewNotificationService(orders, notification.NewFormatter(), &recordingMailer{}, nil, nopLogger)
	resp, err := svc.SendOrderConfirmation(ctx, order.OrderID, "")
	require.NoError(t, err)
	assert.Equal(t, &domain.SendConfirmationResponse{
		Message:   "Order confirmation sent",
		Recipient: "ops@acme.test",
	}, resp)
}
