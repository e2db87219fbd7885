// Package billing holds the invoice bounded context.
//
// Its aggregate root is Invoice: an amount owed by a customer, carrying a
// payment status, an immutable creation date and a free-form note. The
// package also owns the invoice form parser, which turns raw string form
// input into a typed, validated form or a map of per-field messages, and the
// repository contract including the joined listing read model.
//
// The package references customers only by id; resolving them to names and
// avatars for the listing is the store's job at query time.
package billing
