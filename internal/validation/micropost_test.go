package validation

import (
	"strings"
	"testing"
)

func TestValidateMicropost(t *testing.T) {
	tests := []struct {
		name  string
		in    MicropostInput
		field string
	}{
		{"valid", MicropostInput{UserID: 1, Content: "Lorem ipsum"}, ""},
		{"blank content", MicropostInput{UserID: 1, Content: "   "}, "content"},
		{"too long", MicropostInput{UserID: 1, Content: strings.Repeat("a", 141)}, "content"},
		{"at limit", MicropostInput{UserID: 1, Content: strings.Repeat("a", 140)}, ""},
		{"missing owner", MicropostInput{Content: "Lorem ipsum"}, "user_id"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateMicropost(tc.in)
			if tc.field == "" {
				if errs != nil {
					t.Fatalf("expected valid, got %v", errs)
				}
				return
			}
			if errs == nil || len(errs.Fields[tc.field]) == 0 {
				t.Fatalf("expected a violation on %q, got %v", tc.field, errs)
			}
		})
	}
}
