package errors

import (
	"strings"
	"testing"
)

func TestValidateOutputFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", "THIRD_PARTY.md", false},
		{"notice", "NOTICE.md", false},
		{"hidden allowed", ".notices.md", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 300), true},
		{"with path /", "docs/THIRD_PARTY.md", true},
		{"with path \\", "docs\\THIRD_PARTY.md", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
		{"control char", "THIRD\x01PARTY.md", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateOutputFilename(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateRepoPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"current dir", ".", false},
		{"absolute", "/src/engine", false},
		{"empty", "", true},
		{"null byte", "repo\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRepoPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRepoPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateChoice(t *testing.T) {
	if err := ValidateChoice("format", "dot", "dot", "svg"); err != nil {
		t.Errorf("ValidateChoice(dot) error = %v", err)
	}

	err := ValidateChoice("format", "png", "dot", "svg")
	if err == nil {
		t.Fatal("ValidateChoice(png) should fail")
	}
	if !Is(err, ErrCodeInvalidInput) {
		t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
	}
	if !strings.Contains(err.Error(), "dot, svg") {
		t.Errorf("error should list choices: %v", err)
	}
}
