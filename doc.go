// Package stockbroker implements a single-party trade book ledger. It
// records investor buy and sell orders, consolidating orders that share the
// same action, stock code and price into a single trade book by summing
// volumes, and persists the resulting books to a CSV file.
//
// The core functionalities include:
//   - Order Validation: Checking the trade action, the stock code format and
//     membership in the known stock-code set, the price precision and floor,
//     and the volume range before any order is recorded.
//   - Ledger Reconciliation: Looking up the trade book matching an order's
//     book key (action, stock code, price), creating a new book or adjusting
//     the matched book's volume according to a swappable netting policy.
//   - Data Persistence: Encoding and decoding trade books to and from a
//     plain comma-separated format so a later process start resumes from the
//     latest state.
//
// This package serves as the foundational logic for the `stockbroker`
// command-line tool, which feeds it orders from an interactive prompt or a
// batch file.
package stockbroker
