package normalize

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii_noop", "Patient ID: 12345", "Patient ID: 12345"},
		{"trims_ends", "  Patient ID: 12345  ", "Patient ID: 12345"},
		{"collapses_space_runs", "Patient   ID:    12345", "Patient ID: 12345"},
		{"keeps_newlines", "Patient ID: 12345\nSex: M", "Patient ID: 12345\nSex: M"},
		{"nbsp_to_space", "Patient ID: 12345", "Patient ID: 12345"},
		{"en_quad_to_space", "a b", "a b"},
		{"em_quad_to_space", "a b", "a b"},
		{"thin_space_to_space", "a b", "a b"},
		{"hair_space_to_space", "a b", "a b"},
		{"narrow_nbsp_to_space", "a b", "a b"},
		{"zero_width_space_deleted", "12​345", "12345"},
		{"zero_width_non_joiner_deleted", "12‌345", "12345"},
		{"zero_width_joiner_deleted", "12‍345", "12345"},
		{"bom_deleted", "﻿Patient ID: 12345", "Patient ID: 12345"},
		{"mixed_invisibles_collapse", "  a​   b ", "a b"},
		{"time_split_across_lines", "May 13, 2025, 2:40:\n38 PM", "May 13, 2025, 2:40:38 PM"},
		{"time_split_by_spaces", "2:40:   38 PM", "2:40:38 PM"},
		{"time_intact_untouched", "2:40:38 PM", "2:40:38 PM"},
		{"unit_suffixes_untouched", "DLP = 102.69 mGy.cm", "DLP = 102.69 mGy.cm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanText(tt.in)
			if got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := CleanText(got); again != got {
				t.Errorf("not idempotent: CleanText(%q) = %q, then %q", tt.in, got, again)
			}
		})
	}
}
