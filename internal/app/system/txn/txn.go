// internal/app/system/txn/txn.go

// Package txn wraps multi-document writes in a Mongo session transaction,
// degrading to sequential execution on deployments that cannot run
// transactions (standalone servers without a replica set).
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// WithTransaction runs fn inside a transaction, passing it the session-bound
// context. Every store call inside fn must use that context or it escapes the
// transaction.
//
// When the deployment does not support transactions, fn runs once against the
// plain context instead. Callers relying on all-or-nothing semantics for
// correctness must pair this with a store-level constraint (the membership
// unique index) so the fallback path stays safe.
func WithTransaction(ctx context.Context, client *mongo.Client, fn func(ctx context.Context) error) error {
	sess, err := client.StartSession()
	if err != nil {
		if IsNotSupported(err) {
			return fn(ctx)
		}
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		return fn(ctx)
	}
	return err
}

// Server error codes that indicate transactions are unavailable rather than
// that this transaction failed.
const (
	codeTransactionNumbers = 20  // "Transaction numbers are only allowed on a replica set member"
	codeIllegalOperation   = 51
	codeOperationNotInTxn  = 263
)

// IsNotSupported reports whether err means the server cannot run
// multi-document transactions at all. Errors from a transaction that could
// have succeeded (write conflicts, aborts) report false.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		switch ce.Code {
		case codeTransactionNumbers, codeIllegalOperation, codeOperationNotInTxn:
			return true
		}
	}

	// Driver and proxy layers sometimes wrap the condition in plain text.
	msg := strings.ToLower(err.Error())
	has := func(s string) bool { return strings.Contains(msg, s) }
	if has("transaction") && (has("replica set") || has("session") || has("illegal operation")) {
		return true
	}
	if has("session") && has("not supported") {
		return true
	}
	return false
}
