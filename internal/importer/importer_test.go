package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vowvenues/vowvenues/internal/store"
)

const sampleTSV = "Grand Hall\t300\t50\t555-0100\t1 Main St\t1200\tbook@grandhall.com\n" +
	"Garden Pavilion\t120\t\t555-0101\t2 Side St\t800\n" +
	"short line\t100\n" +
	"Bad Capacity\tlots\t10\t555-0102\t3 Back St\t500\n" +
	"\n" +
	"Bad Price\t80\t5\t555-0103\t4 Front St\tcheap\n"

func TestParse(t *testing.T) {
	venues, stats, err := Parse(context.Background(), strings.NewReader(sampleTSV))
	require.NoError(t, err)
	require.Equal(t, 2, stats.Imported)
	require.Equal(t, 3, stats.Skipped)
	require.Len(t, venues, 2)

	require.Equal(t, "Grand Hall", venues[0].Name)
	require.Equal(t, 300, venues[0].Capacity)
	require.NotNil(t, venues[0].AdditionalMetric)
	require.Equal(t, 50, *venues[0].AdditionalMetric)
	require.Equal(t, "book@grandhall.com", venues[0].Email)
	require.Equal(t, 1200.0, venues[0].Price)

	require.Equal(t, "Garden Pavilion", venues[1].Name)
	require.Nil(t, venues[1].AdditionalMetric)
	require.Empty(t, venues[1].Email)
}

func TestRunSeedsOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	venues := store.InMemoryVenues()

	stats, err := Run(ctx, venues, strings.NewReader(sampleTSV), false)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Imported)

	n, err := venues.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	// second run is a no-op against a seeded collection
	stats, err = Run(ctx, venues, strings.NewReader(sampleTSV), false)
	require.NoError(t, err)
	require.Zero(t, stats.Imported)

	n, err = venues.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestRunForce(t *testing.T) {
	ctx := context.Background()
	venues := store.InMemoryVenues()
	_, err := Run(ctx, venues, strings.NewReader(sampleTSV), false)
	require.NoError(t, err)
	_, err = Run(ctx, venues, strings.NewReader(sampleTSV), true)
	require.NoError(t, err)

	n, err := venues.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 4, n)
}
