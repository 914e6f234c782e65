package crossval

import "fmt"

// ReportHeader precedes the per-configuration report rows on stdout.
const ReportHeader = "Binned\tP\t\tR"

// ReportRow renders one configuration's aggregate line, e.g.
//
//	True	0.95 ±0.03	0.95 ±0.03
func (s *Summary) ReportRow() string {
	return fmt.Sprintf("%s\t%.2f ±%.2f\t%.2f ±%.2f",
		flagString(s.Binned),
		s.PrecisionMean, s.PrecisionSpread,
		s.RecallMean, s.RecallSpread,
	)
}

func flagString(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
