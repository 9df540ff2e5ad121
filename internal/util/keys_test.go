package util

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateKey(t *testing.T) {
	cases := []struct {
		name string
		key  string
		want error
	}{
		{"uuid", "oat-health-check-16dfb592-dbc2-4727-9fff-34db268fdddd", nil},
		{"empty", "", ErrEmptyKey},
		{"too long", strings.Repeat("k", MaxKeyLen+1), ErrKeyTooLong},
		{"max len", strings.Repeat("k", MaxKeyLen), nil},
		{"colon", "a:b", ErrReservedKey},
		{"brace", "a{b}", ErrReservedKey},
		{"slash", `a\b`, ErrReservedKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateKey(tc.key)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestItemKey(t *testing.T) {
	if got := ItemKey("healthcheck", "k1"); got != "item:healthcheck:k1" {
		t.Fatalf("ItemKey = %q", got)
	}
}
