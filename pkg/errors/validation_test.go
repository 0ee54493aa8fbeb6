package errors

import "testing"

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"fff", true},
		{"ffff", true},
		{"2f80ed", true},
		{"2F80EDcc", true},
		{"", false},
		{"#fff", false},
		{"ff", false},
		{"fffff", false},
		{"gggggg", false},
	}

	for _, tt := range tests {
		if got := IsHexColor(tt.input); got != tt.want {
			t.Errorf("IsHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"hex", "2f80ed", false},
		{"gradient", "90,ff0000,00ff00", false},
		{"gradient three stops", "30,fff,000,2f80ed", false},

		{"named color", "red", true},
		{"gradient single stop", "90,ff0000", true},
		{"gradient bad stop", "90,ff0000,zz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor("bg_color", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColor) {
				t.Errorf("ValidateColor(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateNumberFormat(t *testing.T) {
	for _, ok := range []string{"", "short", "long", "LONG"} {
		if err := ValidateNumberFormat(ok); err != nil {
			t.Errorf("ValidateNumberFormat(%q) = %v, want nil", ok, err)
		}
	}
	if err := ValidateNumberFormat("scientific"); !Is(err, ErrCodeInvalidNumberFormat) {
		t.Errorf("ValidateNumberFormat(scientific) = %v", err)
	}
}

func TestValidateRankIcon(t *testing.T) {
	for _, ok := range []string{"", "default", "github", "percentile"} {
		if err := ValidateRankIcon(ok); err != nil {
			t.Errorf("ValidateRankIcon(%q) = %v, want nil", ok, err)
		}
	}
	if err := ValidateRankIcon("star"); !Is(err, ErrCodeInvalidRankIcon) {
		t.Errorf("ValidateRankIcon(star) = %v", err)
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "octocat", false},
		{"with dash", "octo-cat", false},
		{"digits", "user123", false},

		{"empty", "", true},
		{"path traversal", "../etc", true},
		{"slash", "a/b", true},
		{"starts with dash", "-user", true},
		{"control char", "user\x01", true},
		{"too long", "a123456789012345678901234567890123456789", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidLocale,
		ErrCodeInvalidColor,
		ErrCodeInvalidNumberFormat,
		ErrCodeInvalidRankIcon,
		ErrCodeInvalidUsername,
		ErrCodeNothingToRender,
		ErrCodeNotFound,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
