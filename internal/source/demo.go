package source

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"
)

var demoWords = []string{
	"amber", "basalt", "cedar", "delta", "ember", "fjord", "granite", "harbor",
	"indigo", "juniper", "kestrel", "lagoon", "meadow", "nimbus", "obsidian",
	"prairie", "quartz", "raven", "sierra", "tundra", "umber", "violet",
	"willow", "xenon", "yarrow", "zephyr",
}

// Demo mutates a list of words at a fixed rate: rows are inserted at random
// positions, removed, or both in one step.
type Demo struct {
	rng  *rand.Rand
	rate time.Duration
	size int
	next int
}

// NewDemo returns a deterministic feed for seed that starts with size rows.
func NewDemo(seed uint64, rate time.Duration, size int) *Demo {
	if rate <= 0 {
		rate = 1500 * time.Millisecond
	}
	if size <= 0 {
		size = 8
	}
	return &Demo{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		rate: rate,
		size: size,
	}
}

func (d *Demo) Name() string { return "demo" }

// Run emits the initial rows and then one mutation per tick. It never fails.
func (d *Demo) Run(ctx context.Context, emit func([]Row), _ Reporter) error {
	rows := d.Initial()
	emit(slices.Clone(rows))

	ticker := time.NewTicker(d.rate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rows = d.Step(rows)
			emit(slices.Clone(rows))
		}
	}
}

// Initial returns the starting rows.
func (d *Demo) Initial() []Row {
	rows := make([]Row, 0, d.size)
	for range d.size {
		rows = append(rows, d.newRow())
	}
	return rows
}

// Step returns rows after one random mutation. The list drifts back towards
// its starting size so it neither empties nor grows without bound.
func (d *Demo) Step(rows []Row) []Row {
	out := slices.Clone(rows)

	grow := d.rng.IntN(2*d.size+1) >= len(out)
	switch {
	case len(out) == 0 || grow:
		at := d.rng.IntN(len(out) + 1)
		out = slices.Insert(out, at, d.newRow())
	default:
		at := d.rng.IntN(len(out))
		out = slices.Delete(out, at, at+1)
	}

	// Occasionally swap one row for a new one so adds and removes overlap.
	if len(out) > 0 && d.rng.IntN(4) == 0 {
		at := d.rng.IntN(len(out))
		out[at] = d.newRow()
	}
	return out
}

func (d *Demo) newRow() Row {
	d.next++
	word := demoWords[d.rng.IntN(len(demoWords))]
	return Row{
		ID:     fmt.Sprintf("demo-%d", d.next),
		Label:  fmt.Sprintf("%s %d", word, d.next),
		Detail: "synthetic",
	}
}
