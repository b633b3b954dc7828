// Package builder generates deterministic synthetic movie catalogs for
// tests, benchmarks and the `costar gen` command.
//
// The package offers the following key components:
//
//   - Generators:
//     – Cast:   credit records for M movies over a pool of N actors.
//     – Pairs:  random actor query pairs over the same pool.
//   - Writers:
//     – WriteCast, WritePairs: the TSV formats read by package cast.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSeed / WithRand, WithActors, WithMovies, WithCastSize, WithYears.
//   - Name schemes (IDFn implementations):
//     – SymbolNumberIDFn: prefix + decimal ("Actor 0", …), the default.
//     – ExcelColumnIDFn:  Excel-style columns ("A","Z","AA",…).
//     – DefaultIDFn:      decimal strings ("0","1",…).
//
// Guarantees:
//
//   - Same options and seed produce identical output.
//   - A movie never credits the same actor twice.
//   - Invalid sizes or ranges surface as sentinel errors (errors.Is), while
//     nil functions passed to option constructors panic.
package builder
