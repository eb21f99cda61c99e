package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradematch/engine/internal/domain"
)

func TestWriteLedger(t *testing.T) {
	clients := []domain.Client{
		{ID: "C1", Cash: 1000, Assets: map[string]uint64{"A": 130, "B": 240}},
		{ID: "C2", Cash: 4350, Assets: map[string]uint64{"A": 370}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLedger(&buf, clients, []string{"A", "B"}))

	// C2 never held B; it serializes as zero.
	want := "C1\t1000\t130\t240\nC2\t4350\t370\t0\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteLedgerDeterministic(t *testing.T) {
	clients := []domain.Client{
		{ID: "a", Cash: 1, Assets: map[string]uint64{"A": 2, "B": 3, "C": 4}},
	}
	var first, second bytes.Buffer
	require.NoError(t, WriteLedger(&first, clients, []string{"A", "B", "C"}))
	require.NoError(t, WriteLedger(&second, clients, []string{"A", "B", "C"}))
	assert.Equal(t, first.String(), second.String())
}

func TestSummarize(t *testing.T) {
	trades := []*domain.Trade{
		{Asset: "A", Price: 8, Quantity: 4},
		{Asset: "A", Price: 10, Quantity: 2},
		{Asset: "B", Price: 3, Quantity: 7},
	}

	sums := Summarize(trades)
	require.Len(t, sums, 2)

	assert.Equal(t, "A", sums[0].Asset)
	assert.Equal(t, 2, sums[0].Trades)
	assert.Equal(t, uint64(6), sums[0].Volume)
	// (8*4 + 10*2) / 6 = 8.6667
	assert.Equal(t, "8.6667", sums[0].VWAP.String())

	assert.Equal(t, "B", sums[1].Asset)
	assert.Equal(t, uint64(7), sums[1].Volume)
	assert.Equal(t, "3", sums[1].VWAP.String())
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}
