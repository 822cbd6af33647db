package scanner

import "encoding/json"

// Check is one checkov check result, reduced to the fields the summary needs.
type Check struct {
	CheckID   string `json:"check_id"`
	CheckName string `json:"check_name"`
	Severity  string `json:"severity"`
	FilePath  string `json:"file_path"`
	Resource  string `json:"resource"`
}

// Report mirrors one checkov JSON report object. Multi-framework runs emit an
// array of these; single-framework runs emit a bare object.
type Report struct {
	CheckType string `json:"check_type"`
	Results   struct {
		FailedChecks  []Check `json:"failed_checks"`
		PassedChecks  []Check `json:"passed_checks"`
		SkippedChecks []Check `json:"skipped_checks"`
	} `json:"results"`
	Summary struct {
		Passed        int `json:"passed"`
		Failed        int `json:"failed"`
		Skipped       int `json:"skipped"`
		ParsingErrors int `json:"parsing_errors"`
		ResourceCount int `json:"resource_count"`
	} `json:"summary"`
}

// ParseReports decodes checkov JSON output, accepting either a single report
// object or an array of them.
func ParseReports(data []byte) ([]Report, error) {
	var many []Report
	if err := json.Unmarshal(data, &many); err == nil {
		return many, nil
	}
	var one Report
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, err
	}
	return []Report{one}, nil
}

// FailedBySeverity counts failed checks per severity string. Checks without a
// severity (checkov omits it for some check sources) are bucketed as UNKNOWN.
func FailedBySeverity(reports []Report) map[string]int {
	counts := make(map[string]int)
	for _, r := range reports {
		for _, c := range r.Results.FailedChecks {
			sev := c.Severity
			if sev == "" {
				sev = "UNKNOWN"
			}
			counts[sev]++
		}
	}
	return counts
}
