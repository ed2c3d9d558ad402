package csvread

import (
	"fmt"
	"strings"

	"github.com/gyeh/patientload/internal/model"
)

// ValidateHeader checks that the header record carries the fixed field
// layout in order. Comparison is case-insensitive and whitespace-tolerant;
// trailing extra columns are allowed (they are truncated at shaping), but a
// missing or misordered column is fatal since every downstream field access
// is positional.
func ValidateHeader(header []string) error {
	if len(header) < model.NumFields {
		return fmt.Errorf("header has %d columns, need %d: %s",
			len(header), model.NumFields, strings.Join(model.FieldNames, ","))
	}
	for i, want := range model.FieldNames {
		got := strings.ToLower(strings.TrimSpace(header[i]))
		if got != want {
			return fmt.Errorf("header column %d is %q, want %q", i, header[i], want)
		}
	}
	return nil
}
