package charlint_test

import (
	"errors"
	"testing"

	"github.com/vvka-141/charlint/pkg/charlint"
)

func TestLintConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  charlint.LintConfig
		wantErr bool
	}{
		{"valid", charlint.LintConfig{TargetPath: "./src"}, false},
		{"valid verbose", charlint.LintConfig{TargetPath: ".", Verbose: true}, false},
		{"empty path", charlint.LintConfig{}, true},
		{"whitespace path is left to stat", charlint.LintConfig{TargetPath: "   "}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, charlint.ErrInvalidConfig) {
				t.Errorf("Validate() error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestViolation_IsFilename(t *testing.T) {
	if !(charlint.Violation{Path: "Привет.txt"}).IsFilename() {
		t.Error("violation without line should be a filename violation")
	}
	if (charlint.Violation{Path: "a.txt", Line: 3}).IsFilename() {
		t.Error("violation with line should not be a filename violation")
	}
}
