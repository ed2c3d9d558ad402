// mkfixture writes a deliberately messy patient/appointment CSV fixture:
// mixed date formats, "[at]" emails, placeholder phones, stray commas in
// addresses, short and long rows, and duplicate patient ids.
// Usage: go run ./cmd/mkfixture --out testdata/patients_and_appointments.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/gyeh/patientload/internal/model"
)

var firstNames = []string{"john", "JANE", " mary ", "robert", "linda", "james", "susan", "david"}
var lastNames = []string{"doe", "SMITH", "johnson ", "brown", "garcia", "miller", ""}
var streets = []string{
	"123 Main St", "456 Oak Ave,, Apt 4", `"789 Pine Rd"`, "12 Elm   Street",
	"unknown", ",101 Maple Dr,", "55 Cedar Ln, Springfield",
}
var dobFormats = []string{"01/02/2006", "2006-01-02", "January 2, 2006", "Jan 2 2006", "01-02-2006"}
var apptTypes = []string{"checkup", "follow-up", " Consultation", "imaging", ""}

func phoneFor(r *rand.Rand, i int) string {
	switch r.Intn(6) {
	case 0:
		return fmt.Sprintf("555-%03d-%04d", 100+i%900, 1000+i%9000)
	case 1:
		return fmt.Sprintf("+1 (555) %03d-%04d", 100+i%900, 1000+i%9000)
	case 2:
		return fmt.Sprintf("555%04d", 1000+i%9000) // partial, no area code
	case 3:
		return "1111111111" // repeated digit
	case 4:
		return "1234567890" // placeholder
	default:
		return ""
	}
}

func emailFor(r *rand.Rand, first, last string, i int) string {
	first = strings.TrimSpace(strings.ToLower(first))
	last = strings.TrimSpace(strings.ToLower(last))
	switch r.Intn(5) {
	case 0:
		return fmt.Sprintf("%s.%s%d@example.com", first, last, i)
	case 1:
		return fmt.Sprintf("%s.%s%d[at]example.com", first, last, i)
	case 2:
		return fmt.Sprintf("%s(at)%s%d.org", first, last, i)
	case 3:
		return "not-an-email"
	default:
		return ""
	}
}

func main() {
	out := flag.String("out", "testdata/patients_and_appointments.csv", "output csv")
	rows := flag.Int("rows", 50, "approximate data rows to generate")
	seed := flag.Int64("seed", 7, "rng seed (fixed for reproducible fixtures)")
	flag.Parse()

	r := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(model.FieldNames); err != nil {
		fmt.Fprintf(os.Stderr, "write header: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *rows; i++ {
		first := firstNames[r.Intn(len(firstNames))]
		last := lastNames[r.Intn(len(lastNames))]
		dob := ""
		if r.Intn(10) > 1 {
			y, m, d := 1940+r.Intn(60), 1+r.Intn(12), 1+r.Intn(28)
			dob = formatDate(dobFormats[r.Intn(len(dobFormats))], y, m, d)
		}

		record := []string{
			fmt.Sprintf("P%03d", 1+i-i%3), // every third id repeats: dedup fodder
			first,
			last,
			dob,
			emailFor(r, first, last, i),
			phoneFor(r, i),
			streets[r.Intn(len(streets))],
			apptID(r, i),
			apptDate(r),
			apptTypes[r.Intn(len(apptTypes))],
		}

		// A few structurally bad rows: missing id, short, long.
		switch r.Intn(12) {
		case 0:
			record[0] = "  "
		case 1:
			record = record[:6]
		case 2:
			record = append(record, "trailing", "junk")
		}

		if err := w.Write(record); err != nil {
			fmt.Fprintf(os.Stderr, "write row: %v\n", err)
			os.Exit(1)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "flush: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}

func apptID(r *rand.Rand, i int) string {
	if r.Intn(5) == 0 {
		return ""
	}
	return fmt.Sprintf("A%04d", 1000+i)
}

func apptDate(r *rand.Rand) string {
	if r.Intn(4) == 0 {
		return ""
	}
	y, m, d := 2024, 1+r.Intn(12), 1+r.Intn(28)
	return formatDate(dobFormats[r.Intn(len(dobFormats))], y, m, d)
}

func formatDate(layout string, y, m, d int) string {
	months := []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	switch layout {
	case "01/02/2006":
		return fmt.Sprintf("%02d/%02d/%d", m, d, y)
	case "01-02-2006":
		return fmt.Sprintf("%02d-%02d-%d", m, d, y)
	case "2006-01-02":
		return fmt.Sprintf("%d-%02d-%02d", y, m, d)
	case "January 2, 2006":
		return fmt.Sprintf("%s %d, %d", months[m-1], d, y)
	default:
		return fmt.Sprintf("%s %d %d", months[m-1][:3], d, y)
	}
}
