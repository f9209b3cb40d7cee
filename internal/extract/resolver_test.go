package extract

import (
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name  string
		field string
		text  string
		want  string
	}{
		{
			name:  "strict_form_first",
			field: "patient_id",
			text:  "Patient ID: 12345",
			want:  "12345",
		},
		{
			name:  "case_insensitive_with_spaced_colon",
			field: "patient_id",
			text:  "PATIENT id : 123",
			want:  "123",
		},
		{
			name:  "glued_label_fallback",
			field: "study_id",
			text:  "StudyID: 67890",
			want:  "67890",
		},
		{
			name:  "id_last_resort",
			field: "patient_id",
			text:  "Some Other ID: 42",
			want:  "42",
		},
		{
			name:  "no_match_empty",
			field: "patient_id",
			text:  "no identifiers here",
			want:  "",
		},
		{
			name:  "date_ends_at_line_end",
			field: "birth_date",
			text:  "Patient's Birth Date: Jul 1, 1997\nPatient's Sex: M",
			want:  "Jul 1, 1997",
		},
		{
			name:  "date_ends_at_next_capitalized_label",
			field: "birth_date",
			text:  "Patient's Birth Date: Jul 1, 1997 Study ID: 67890",
			want:  "Jul 1, 1997",
		},
		{
			name:  "date_at_end_of_text_without_newline",
			field: "birth_date",
			text:  "Patient's Birth Date: Jul 1, 1997",
			want:  "Jul 1, 1997",
		},
		{
			name:  "capture_is_cleaned",
			field: "device_name",
			text:  "Device Observer Name: CT99   \nnext",
			want:  "CT99",
		},
		{
			name:  "units_kept_in_capture",
			field: "total_dlp",
			text:  "CT Dose Length Product Total = 625.01 mGy.cm",
			want:  "625.01 mGy.cm",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.text, catalogue[tc.field]); got != tc.want {
				t.Errorf("Resolve(%s) = %q, want %q", tc.field, got, tc.want)
			}
		})
	}
}

func TestResolveTubeCurrentGuard(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "skips_maximum_line",
			text: "Maximum X-Ray Tube Current = 404 mA\nX-Ray Tube Current = 179 mA",
			want: "179 mA",
		},
		{
			name: "plain_line_first",
			text: "X-Ray Tube Current = 179 mA\nMaximum X-Ray Tube Current = 404 mA",
			want: "179 mA",
		},
		{
			name: "only_maximum_present",
			text: "Maximum X-Ray Tube Current = 404 mA",
			want: "",
		},
		{
			name: "guard_is_case_insensitive",
			text: "MAXIMUM X-Ray Tube Current = 404 mA\nX-Ray Tube Current = 88 mA",
			want: "88 mA",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.text, catalogue["tube_current"]); got != tc.want {
				t.Errorf("Resolve(tube_current) = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCompileExtra(t *testing.T) {
	t.Run("single_capture_group_compiles", func(t *testing.T) {
		p, err := CompileExtra(`Pt\s*#\s*(\d+)`)
		if err != nil {
			t.Fatalf("CompileExtra: %v", err)
		}
		v, ok := p.capture("PT # 777")
		if !ok || v != "777" {
			t.Errorf("capture = %q, %v, want %q, true", v, ok, "777")
		}
	})
	t.Run("zero_groups_rejected", func(t *testing.T) {
		if _, err := CompileExtra(`Patient ID: \d+`); err == nil {
			t.Fatal("expected error for pattern without capture group")
		}
	})
	t.Run("two_groups_rejected", func(t *testing.T) {
		if _, err := CompileExtra(`(\w+): (\d+)`); err == nil {
			t.Fatal("expected error for pattern with two capture groups")
		}
	})
	t.Run("bad_syntax_rejected", func(t *testing.T) {
		_, err := CompileExtra(`([unclosed`)
		if err == nil {
			t.Fatal("expected compile error")
		}
		if !strings.Contains(err.Error(), "compile") {
			t.Errorf("error %q does not mention compile", err)
		}
	})
}
