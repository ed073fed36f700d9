// Package importer seeds the venues collection from the tab-separated
// export the venue data arrives in.
package importer

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/vowvenues/vowvenues/internal/logutil"
	"github.com/vowvenues/vowvenues/internal/store"
)

// Stats summarizes one import run.
type Stats struct {
	Imported int
	Skipped  int
}

// Parse reads tab-separated venue lines:
//
//	name \t capacity \t additionalMetric \t phone \t address \t price [\t email]
//
// Lines that are short, blank or carry unparseable numbers are skipped and
// counted, never fatal. An empty or unparseable additionalMetric just
// leaves the field unset.
func Parse(ctx context.Context, r io.Reader) ([]store.Venue, Stats, error) {
	log := logutil.GetOrDefault(ctx)
	var venues []store.Venue
	var stats Stats
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 6 {
			log.Warn().Int("line", lineno).Msg("Skipping short line")
			stats.Skipped++
			continue
		}
		capacity, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			log.Warn().Int("line", lineno).Str("capacity", fields[1]).Msg("Skipping line with bad capacity")
			stats.Skipped++
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(fields[5]), 64)
		if err != nil {
			log.Warn().Int("line", lineno).Str("price", fields[5]).Msg("Skipping line with bad price")
			stats.Skipped++
			continue
		}
		v := store.Venue{
			Name:     strings.TrimSpace(fields[0]),
			Capacity: capacity,
			Phone:    strings.TrimSpace(fields[3]),
			Address:  strings.TrimSpace(fields[4]),
			Price:    price,
		}
		if metric, err := strconv.Atoi(strings.TrimSpace(fields[2])); err == nil {
			v.AdditionalMetric = &metric
		}
		if len(fields) > 6 {
			v.Email = strings.TrimSpace(fields[6])
		}
		venues = append(venues, v)
		stats.Imported++
	}
	return venues, stats, scanner.Err()
}

// Run parses r and inserts the venues. Unless force is set, a non-empty
// collection is left untouched: the import exists to seed, not to append.
func Run(ctx context.Context, venues store.Venues, r io.Reader, force bool) (Stats, error) {
	log := logutil.GetOrDefault(ctx)
	if !force {
		n, err := venues.Count(ctx)
		if err != nil {
			return Stats{}, err
		}
		if n > 0 {
			log.Info().Int64("existing", n).Msg("Venues collection already seeded, nothing to do")
			return Stats{}, nil
		}
	}
	parsed, stats, err := Parse(ctx, r)
	if err != nil {
		return stats, err
	}
	if err := venues.InsertMany(ctx, parsed); err != nil {
		return stats, err
	}
	log.Info().Int("imported", stats.Imported).Int("skipped", stats.Skipped).Msg("Venue import finished")
	return stats, nil
}
