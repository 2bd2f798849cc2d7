package main

import (
	"errors"
	"fmt"
	"testing"

	"articraft/internal/catalog"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "generic", err: errors.New("boom"), want: 1},
		{name: "field", err: &catalog.FieldMissingError{Path: "images.icon"}, want: 2},
		{name: "wrapped field", err: fmt.Errorf("search: %w", &catalog.FieldMissingError{Path: "name"}), want: 2},
		{name: "transport", err: &catalog.TransportError{URL: "http://x", StatusCode: 500}, want: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Fatalf("exitCode=%d want %d", got, tc.want)
			}
		})
	}
}
