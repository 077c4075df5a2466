package osstatus

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Status
		wantErr bool
	}{
		{"negative decimal", "-50", -50, false},
		{"zero", "0", 0, false},
		{"positive decimal", "1718449215", 1718449215, false},
		{"hex", "0x666D743F", cc("fmt?"), false},
		{"bare four-char code", "FRMT", cc("FRMT"), false},
		{"quoted four-char code", "'fmt?'", cc("fmt?"), false},
		{"code with space", "'aac '", cc("aac "), false},
		{"too short", "abc", 0, true},
		{"too long", "abcde", 0, true},
		{"quoted wrong length", "'ab'", 0, true},
		{"empty", "", 0, true},
		{"overflows int32", "4294967296", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %d, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}
