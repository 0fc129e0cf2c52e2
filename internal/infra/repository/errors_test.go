package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "translated", err: gorm.ErrDuplicatedKey, expected: true},
		{name: "raw pg", err: &pgconn.PgError{Code: "23505"}, expected: true},
		{name: "wrapped pg", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), expected: true},
		{name: "other pg", err: &pgconn.PgError{Code: "23503"}, expected: false},
		{name: "plain", err: errors.New("timeout"), expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isDuplicateKey(tc.err); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestOrNil(t *testing.T) {
	v := 1

	got, err := orNil(&v, gorm.ErrRecordNotFound)
	if got != nil || err != nil {
		t.Fatalf("missing row must be (nil, nil), got (%v, %v)", got, err)
	}

	boom := errors.New("boom")
	if _, err := orNil(&v, boom); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if got, err := orNil(&v, nil); got != &v || err != nil {
		t.Fatal("found row must be returned as is")
	}
}
