// Package homefinder provides the core types and persistence logic for a
// local-first real-estate listing tool. All data lives in three flat
// delimited text files that remain human-readable and easy to inspect or
// version-control.
//
// The core functionalities include:
//   - Record Types: immutable Property, Sale, and User records built
//     through validating factories.
//   - Delimited File Store: reading, appending, and rewriting the
//     property listings file (CSV), the sale ledger (TSV), and the user
//     credential file, skipping malformed rows instead of failing.
//   - Query Engine: stateless filtering of listings by size, price,
//     type, and project, plus project-scoped sale history windows.
//   - Auth: credential matching against the stored users, resolving the
//     seller or buyer role that drives the command-line workflows.
//
// This package serves as the foundational logic for the `hf` command-line
// tool; every mutation is written through to disk before it is reported
// as successful.
package homefinder
