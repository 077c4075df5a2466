package domain

import "testing"

func TestExitCode_Int(t *testing.T) {
	tests := []struct {
		code ExitCode
		want int
	}{
		{ExitOK, 0},
		{ExitStatusFailure, 1},
		{ExitError, 2},
	}

	for _, tc := range tests {
		if got := tc.code.Int(); got != tc.want {
			t.Errorf("ExitCode(%d).Int() = %d, want %d", tc.code, got, tc.want)
		}
	}
}
