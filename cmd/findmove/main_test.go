package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draughtsbot/findmove/draughtstest"
	"github.com/draughtsbot/findmove/notation"
)

func TestRunExitStatus(t *testing.T) {
	board := draughtstest.Input("W", ",,,,,,,,,", ",,,,,,,,,", ",,,,,,,,,", ",,,,MW,,,,,")
	cases := []struct {
		name string
		args []string
		in   string
		code int
		out  string
		diag string
	}{
		{"no moves", nil, board, 0, "", notation.NoMovesMessage + "\n"},
		{"fixed", []string{"-selector=fixed"}, board, 0, "61,50;\n", ""},
		{"short line", nil, "W\n,,,\n", 1, "", "line 2: malformed board line"},
		{"truncated", nil, "B\n", 1, "", "truncated input"},
		{"no color", nil, "", 1, "", "missing player color"},
		{"unknown selector", []string{"-selector=minimax"}, board, 2, "", "unknown selector"},
		{"bad flag", []string{"-depth=3"}, board, 2, "", "flag provided but not defined"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out, diag bytes.Buffer
			code := run(context.Background(), tc.args, strings.NewReader(tc.in), &out, &diag)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.out, out.String())
			if tc.diag == "" {
				assert.Empty(t, diag.String())
			} else {
				assert.Contains(t, diag.String(), tc.diag)
			}
		})
	}
}
