package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tradematch/engine/internal/domain"
)

// Order-record ingestion errors, tagged per field.
var (
	ErrOrderShortRecord = errors.New("order record has too few fields")
	ErrOrderSide        = errors.New("unknown side code")
	ErrOrderPrice       = errors.New("unparsable price")
	ErrOrderQuantity    = errors.New("unparsable quantity")
)

// ParseOrder parses one order line: client id, side code (b/s), asset,
// limit price, quantity. Sequence ids are assigned later by the engine.
func ParseOrder(line string) (domain.Order, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return domain.Order{}, fmt.Errorf("got %d fields, want 5: %w", len(fields), ErrOrderShortRecord)
	}

	var side domain.Side
	switch fields[1] {
	case "b":
		side = domain.Buy
	case "s":
		side = domain.Sell
	default:
		return domain.Order{}, fmt.Errorf("%q: %w", fields[1], ErrOrderSide)
	}

	price, err := strconv.ParseUint(fields[3], 10, 64)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%q: %w", fields[3], ErrOrderPrice)
	}
	qty, err := strconv.ParseUint(fields[4], 10, 64)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%q: %w", fields[4], ErrOrderQuantity)
	}

	return domain.Order{
		ClientID:  fields[0],
		Side:      side,
		Asset:     fields[2],
		Price:     price,
		Quantity:  qty,
		Remaining: qty,
	}, nil
}

// ReadOrders parses every line of r in stream order. Any malformed record
// aborts the whole load; no partial stream is ever returned.
func ReadOrders(r io.Reader) ([]domain.Order, error) {
	var out []domain.Order
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		o, err := ParseOrder(text)
		if err != nil {
			return nil, fmt.Errorf("orders line %d: %w", line, err)
		}
		out = append(out, o)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	return out, nil
}
