// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil error", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, Retryable},
		{"deadlock detected", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, Retryable},
		{"serialization failure", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, Retryable},
		{"cannot connect now", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, Retryable},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, NonRetryable},
		{"syntax error", &pgconn.PgError{Code: pgerrcode.SyntaxError}, NonRetryable},
		{
			"wrapped pg error",
			fmt.Errorf("saving settings: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}),
			Retryable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil error", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable},
		{"locked", sqlite3.Error{Code: sqlite3.ErrLocked}, Retryable},
		{"constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, NonRetryable},
		{
			"wrapped busy",
			fmt.Errorf("saving settings: %w", sqlite3.Error{Code: sqlite3.ErrBusy}),
			Retryable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}
