package notification_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/config"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleAggregate() *domain.OrderAggregate {
	order := domain.Order{
		OrderNumber: "ORD-1700000000000-AB12",
		ClientName:  "Acme",
		SurveyType:  "Cargo damage survey",
		Status:      domain.OrderStatusPending,
	}
	order.CreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	return &domain.OrderAggregate{
		OrderWithCreator: domain.OrderWithCreator{Order: order},
		Ships: []domain.ShipAggregate{
			{
				Ship: domain.Ship{VesselName: "M/T Test"},
				Ports: []domain.ShipPortWithCounts{
					{ShipPort: domain.ShipPort{PortName: "Bergen", PortSequence: 1}},
					{ShipPort: domain.ShipPort{PortName: "Oslo", PortSequence: 2}},
				},
			},
			{Ship: domain.Ship{VesselName: "M/V Second"}},
		},
	}
}

func TestFormatter_Render(t *testing.T) {
	f := notification.NewFormatter()

	c, err := f.Render(sampleAggregate(), "")
	require.NoError(t, err)

	assert.Equal(t, "Order confirmation ORD-1700000000000-AB12", c.Subject)
	assert.Contains(t, c.HTML, "ORD-1700000000000-AB12")
	assert.Contains(t, c.HTML, "Cargo damage survey")
	assert.Contains(t, c.HTML, "M/T Test")
	assert.Contains(t, c.HTML, "Bergen")
	assert.Contains(t, c.HTML, "pending")
	assert.Contains(t, c.HTML, "Fri, 01 Mar 2024 12:00:00 UTC")
	assert.NotContains(t, c.HTML, "Oslo")
	assert.NotContains(t, c.HTML, "M/V Second")
}

func TestFormatter_CustomMessageBeforeClosing(t *testing.T) {
	f := notification.NewFormatter()

	c, err := f.Render(sampleAggregate(), "Surveyor arrives at 08:00")
	require.NoError(t, err)

	msgAt := strings.Index(c.HTML, "Surveyor arrives at 08:00")
	closingAt := strings.Index(c.HTML, "Kind regards")
	require.GreaterOrEqual(t, msgAt, 0)
	assert.Less(t, msgAt, closingAt)
}

func TestFormatter_EscapesInput(t *testing.T) {
	f := notification.NewFormatter()
	agg := sampleAggregate()
	agg.ClientName = "<script>alert(1)</script>"

	c, err := f.Render(agg, "<b>bold</b>")
	require.NoError(t, err)

	assert.NotContains(t, c.HTML, "<script>")
	assert.NotContains(t, c.HTML, "<b>bold</b>")
	assert.Contains(t, c.HTML, "&lt;b&gt;bold&lt;/b&gt;")
}

func TestFormatter_NoShips(t *testing.T) {
	f := notification.NewFormatter()
	agg := sampleAggregate()
	agg.Ships = nil

	c, err := f.Render(agg, "")
	require.NoError(t, err)
	assert.Contains(t, c.HTML, "<td>-</td>")
}

func TestNewMailer(t *testing.T) {
	logger := zap.NewNop()

	m, err := notification.NewMailer(&config.MailConfig{Enabled: false}, logger)
	require.NoError(t, err)
	assert.IsType(t, &notification.LogMailer{}, m)
	assert.NoError(t, m.Send(context.Background(), notification.Message{To: "a@b.c"}))

	_, err = notification.NewMailer(&config.MailConfig{Enabled: true, From: "x@y.z"}, logger)
	assert.Error(t, err, "host is required")

	_, err = notification.NewMailer(&config.MailConfig{Enabled: true, Host: "smtp", From: "x@y.z", TLSPolicy: "sometimes"}, logger)
	assert.Error(t, err)

	m, err = notification.NewMailer(&config.MailConfig{Enabled: true, Host: "smtp", Port: 587, From: "x@y.z", Timeout: 5}, logger)
	require.NoError(t, err)
	assert.IsType(t, &notification.SMTPMailer{}, m)
}
