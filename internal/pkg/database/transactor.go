package database

import "context"

// Transactor runs fn inside a database transaction. Implementations carry
// the transaction in the context so repositories pick it up transparently
// through GetQuerier.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
