package utils

import (
	"strings"
	"testing"
)

func TestGenerateJoinCodeFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateJoinCode()
		if len(code) != JoinCodeLength {
			t.Fatalf("expected length %d, got %q", JoinCodeLength, code)
		}
		for _, c := range code {
			if !strings.ContainsRune(joinCodeAlphabet, c) {
				t.Fatalf("code %q contains invalid character %q", code, c)
			}
		}
	}
}

func TestNormalizeJoinCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "already normalized", input: "ABC123", want: "ABC123"},
		{name: "lowercase is uppercased", input: "abc123", want: "ABC123"},
		{name: "surrounding whitespace trimmed", input: "  ABC123  ", want: "ABC123"},
		{name: "mixed case", input: "aBc12Z", want: "ABC12Z"},
		{name: "too short", input: "ABC12", wantErr: true},
		{name: "too long", input: "ABC1234", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "invalid character", input: "ABC12!", wantErr: true},
		{name: "space inside", input: "AB C12", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeJoinCode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
