// Package hmapsizes generates the size table of the pointer map used to
// detect cross-linked nodes in forward-only binary trees.
//
// Every row of the table holds a table length close to φ^p for a power
// level p, the capacity limit (2/3 of the length) at which the map rehashes
// into the next row, and the bias 2^32 mod length used to reduce a 32-bit
// hash onto the table. Lengths are odd and share no factor with any probe
// step in [1,128], so double hashing always covers the whole table.
//
// # Basic Usage
//
// Generating and printing the table:
//
//	t, err := hmapsizes.Generate(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := t.WriteTo(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// Checking that a committed header is up to date:
//
//	if err := hmapsizes.CheckFile("src/PointerMapInfo.inc", t); err != nil {
//	    log.Fatal(err)
//	}
//
// # Package Structure
//
//   - Public API: generate.go (Generate), table.go (Table, Select, Verify), emit.go (WriteTo)
//   - Configuration: options.go (GenerateOption, With* functions)
//   - Files: writer.go (WriteFile, CheckFile)
//   - Witness primes: internal/witness/
//   - Size solving: internal/growth/ (golden seed, repair walk, limit, bias)
//   - Platform: fallocate_*.go, fadvise_*.go, prefault_*.go
package hmapsizes
