// Package ledger holds the reconciliation rules for book requests, course
// reserves, borrowed books and the persona flag.
//
// Every operation is a pure function of the current state and its operands:
// it returns the next state and a result, or the unchanged state and an
// error from package errs. Nothing here performs I/O; loading and saving
// state is up to the caller.
//
// Two identifier comparisons exist and are never mixed. Ledger dedup uses
// Normalize, which only strips dashes and keeps case. Catalog matching uses
// SameIdentity, which also ignores case and accepts title substrings.
package ledger
