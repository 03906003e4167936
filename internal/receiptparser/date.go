package receiptparser

import "regexp"

// dateScanWindow is how many leading lines are searched for a date token.
const dateScanWindow = 20

// Finnish day.month.year date token, single- or double-digit day and month.
var dateRe = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)

// extractDate finds the first Finnish-format date token within the scan
// window and converts it to ISO "YYYY-MM-DD" form. Day and month are
// zero-padded; the year is copied verbatim. No calendar validity check is
// performed, so a token like 31.2.2026 passes through as written. Returns
// an empty string when no token is found.
func extractDate(lines []string) string {
	for i, l := range lines {
		if i >= dateScanWindow {
			break
		}
		if m := dateRe.FindStringSubmatch(l); m != nil {
			return m[3] + "-" + zeroPad(m[2]) + "-" + zeroPad(m[1])
		}
	}
	return ""
}

func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
