package service

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// orderSuffixLen is the number of random base36 characters in an order number
const orderSuffixLen = 4

// OrderNumberGenerator produces ORD-<epoch millis>-<4 base36 chars>.
// Uniqueness is practical, not cryptographic; the store's unique index
// catches the rare collision.
type OrderNumberGenerator struct {
	now  func() time.Time
	intn func(n int) int
}

// NewOrderNumberGenerator uses the wall clock and math/rand/v2
func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{now: time.Now, intn: rand.IntN}
}

// NewOrderNumberGeneratorWith uses the given clock and random source
func NewOrderNumberGeneratorWith(now func() time.Time, intn func(n int) int) *OrderNumberGenerator {
	return &OrderNumberGenerator{now: now, intn: intn}
}

// Next returns a new order number
func (g *OrderNumberGenerator) Next() string {
	var sb strings.Builder
	sb.WriteString("ORD-")
	sb.WriteString(strconv.FormatInt(g.now().UnixMilli(), 10))
	sb.WriteByte('-')
	for i := 0; i < orderSuffixLen; i++ {
		sb.WriteByte(base36Alphabet[g.intn(len(base36Alphabet))])
	}
	return sb.String()
}

// Totals are the ship and port counters stored on an order at creation
type Totals struct {
	Ships int
	Ports int
}

// CalculateTotals counts the ships and the sum of their port lists
func CalculateTotals(ships []domain.CreateOrderShipRequest) Totals {
	t := Totals{Ships: len(ships)}
	for _, s := range ships {
		t.Ports += len(s.Ports)
	}
	return t
}
