// Tablestats fills every generated table up to its capacity limit with
// synthetic keys and reports how evenly the slot reduction spreads them.
//
// Usage:
//
//	go run ./cmd/tablestats -hash xxh3 -max-power 24
//
// Flags:
//
//	-hash       Key hash: murmur3 or xxh3 (default: murmur3)
//	-reduce     Slot reduction: debiased or fastrange (default: debiased)
//	-seed       Seed mixed into every synthetic key (default: 0x1234)
//	-workers    Number of tables measured in parallel (default: NumCPU)
//	-max-power  Largest power level to measure (default: 24)
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"slices"
	"time"

	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"

	"github.com/tamirms/hmapsizes"
	intbits "github.com/tamirms/hmapsizes/internal/bits"
)

type hashFunc func(key []byte) uint32

var hashFuncs = map[string]hashFunc{
	"murmur3": murmur3.Sum32,
	"xxh3":    xxh3Sum32,
}

func xxh3Sum32(key []byte) uint32 {
	return uint32(xxh3.Hash(key))
}

type reduceFunc func(e hmapsizes.Entry, h uint32) uint32

var reduceFuncs = map[string]reduceFunc{
	"debiased":  debiasedSlot,
	"fastrange": fastRangeSlot,
}

// debiasedSlot is the reduction the pointer map uses.
func debiasedSlot(e hmapsizes.Entry, h uint32) uint32 {
	return e.Slot(h)
}

// fastRangeSlot drops the bias, as a baseline for the debiased reduction.
func fastRangeSlot(e hmapsizes.Entry, h uint32) uint32 {
	return intbits.FastRange32(uint64(h)<<32, e.Size)
}

// tableStats summarises one table filled to its capacity limit.
type tableStats struct {
	entry   hmapsizes.Entry
	used    uint32  // slots holding at least one key
	maxLoad uint32  // keys in the fullest slot
	chi2    float64 // Pearson statistic against a uniform spread
}

// load returns the fill ratio keys/slots.
func (s tableStats) load() float64 {
	return float64(s.entry.Limit) / float64(s.entry.Size)
}

// measure hashes Limit keys of the form (seed, i) into Size slots.
func measure(e hmapsizes.Entry, hash hashFunc, reduce reduceFunc, seed uint64) tableStats {
	counts := make([]uint32, e.Size)
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	for i := uint64(0); i < uint64(e.Limit); i++ {
		binary.LittleEndian.PutUint64(key[8:], i)
		counts[reduce(e, hash(key[:]))]++
	}

	s := tableStats{entry: e}
	mean := float64(e.Limit) / float64(e.Size)
	for _, c := range counts {
		if c > 0 {
			s.used++
		}
		s.maxLoad = max(s.maxLoad, c)
		d := float64(c) - mean
		s.chi2 += d * d / mean
	}
	return s
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "tablestats: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tablestats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	hashFlag := fs.String("hash", "murmur3", "key hash: murmur3 or xxh3")
	reduceFlag := fs.String("reduce", "debiased", "slot reduction: debiased or fastrange")
	seedFlag := fs.Uint64("seed", 0x1234, "seed mixed into every synthetic key")
	workersFlag := fs.Int("workers", runtime.NumCPU(), "number of tables measured in parallel")
	maxPowerFlag := fs.Int("max-power", 24, "largest power level to measure")
	if err := fs.Parse(args); err != nil {
		return err
	}

	hash, ok := hashFuncs[*hashFlag]
	if !ok {
		return fmt.Errorf("unknown hash %q (use murmur3 or xxh3)", *hashFlag)
	}
	reduce, ok := reduceFuncs[*reduceFlag]
	if !ok {
		return fmt.Errorf("unknown reduction %q (use debiased or fastrange)", *reduceFlag)
	}
	if *maxPowerFlag < hmapsizes.MinPower || *maxPowerFlag > hmapsizes.MaxPower {
		return fmt.Errorf("-max-power %d not in [%d, %d]", *maxPowerFlag, hmapsizes.MinPower, hmapsizes.MaxPower)
	}
	if *workersFlag < 1 {
		return fmt.Errorf("-workers must be at least 1, got %d", *workersFlag)
	}

	t, err := hmapsizes.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	entries := slices.DeleteFunc(t.Entries(), func(e hmapsizes.Entry) bool {
		return e.Power > *maxPowerFlag
	})

	start := time.Now()
	results := make([]tableStats, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workersFlag)
	for i, e := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = measure(e, hash, reduce, *seedFlag)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "hash=%s reduce=%s seed=%#x\n", *hashFlag, *reduceFlag, *seedFlag)
	fmt.Fprintf(stdout, "%5s %10s %10s %6s %9s %9s %5s %8s\n",
		"power", "size", "keys", "load", "occupied", "expected", "max", "chi2/df")
	for _, s := range results {
		expected := 1 - math.Exp(-s.load())
		fmt.Fprintf(stdout, "%5d %10d %10d %6.3f %9.4f %9.4f %5d %8.3f\n",
			s.entry.Power, s.entry.Size, s.entry.Limit, s.load(),
			float64(s.used)/float64(s.entry.Size), expected, s.maxLoad,
			s.chi2/float64(s.entry.Size-1))
	}
	fmt.Fprintf(stderr, "measured %d tables in %v\n", len(results), time.Since(start).Round(time.Millisecond))
	return nil
}
