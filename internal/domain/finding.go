// Package domain holds the pure types and vocabulary of the robots
// exclusion protocol validator.
package domain

// Severity indicates how severe a finding is.
type Severity string

const (
	// SeverityError indicates a protocol violation that renders the
	// document invalid.
	SeverityError Severity = "error"
	// SeverityWarning indicates a stylistic or non-standard issue that
	// does not affect validity.
	SeverityWarning Severity = "warning"
)

// FindingType identifies the rule that produced a finding.
type FindingType string

// Finding type constants, one per validation rule.
const (
	FindingEmptyFile             FindingType = "empty_file"
	FindingFileTooLarge          FindingType = "file_too_large"
	FindingInvalidEncoding       FindingType = "invalid_encoding"
	FindingMissingColon          FindingType = "missing_colon"
	FindingNonstandardDirective  FindingType = "nonstandard_directive"
	FindingUnknownDirective      FindingType = "unknown_directive"
	FindingEmptyUserAgent        FindingType = "empty_user_agent"
	FindingInvalidUserAgent      FindingType = "invalid_user_agent"
	FindingOrphanedRule          FindingType = "orphaned_rule"
	FindingRelativePath          FindingType = "relative_path"
	FindingUnencodedPathChars    FindingType = "unencoded_path_chars"
	FindingMisplacedDollar       FindingType = "misplaced_dollar"
	FindingEmptySitemapURL       FindingType = "empty_sitemap_url"
	FindingInvalidSitemapURL     FindingType = "invalid_sitemap_url"
	FindingInsecureSitemapScheme FindingType = "insecure_sitemap_scheme"
	FindingInvalidCrawlDelay     FindingType = "invalid_crawl_delay"
	FindingNegativeCrawlDelay    FindingType = "negative_crawl_delay"
	FindingMissingUserAgent      FindingType = "missing_user_agent"
)

// findingTypes is the closed set of known finding types.
var findingTypes = map[FindingType]bool{
	FindingEmptyFile:             true,
	FindingFileTooLarge:          true,
	FindingInvalidEncoding:       true,
	FindingMissingColon:          true,
	FindingNonstandardDirective:  true,
	FindingUnknownDirective:      true,
	FindingEmptyUserAgent:        true,
	FindingInvalidUserAgent:      true,
	FindingOrphanedRule:          true,
	FindingRelativePath:          true,
	FindingUnencodedPathChars:    true,
	FindingMisplacedDollar:       true,
	FindingEmptySitemapURL:       true,
	FindingInvalidSitemapURL:     true,
	FindingInsecureSitemapScheme: true,
	FindingInvalidCrawlDelay:     true,
	FindingNegativeCrawlDelay:    true,
	FindingMissingUserAgent:      true,
}

// KnownFindingType reports whether t names a validation rule.
func KnownFindingType(t FindingType) bool {
	return findingTypes[t]
}

// Finding represents one issue discovered while validating a document.
// Line is 1-indexed; line 0 is the sentinel for whole-document findings.
type Finding struct {
	Type     FindingType `json:"type"`
	Severity Severity    `json:"severity"`
	Line     int         `json:"line"`
	Message  string      `json:"message"`
}

// Report holds the outcome of validating one document. Valid is true
// iff Errors is empty; warnings never affect validity. Both slices
// preserve emission order: whole-document findings first, then per-line
// findings in ascending line order.
type Report struct {
	Valid    bool      `json:"valid"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// NewReport partitions findings by severity and derives validity.
// The relative order of findings is preserved within each partition.
func NewReport(findings []Finding) *Report {
	r := &Report{Errors: []Finding{}, Warnings: []Finding{}}
	for _, f := range findings {
		if f.Severity == SeverityError {
			r.Errors = append(r.Errors, f)
		} else {
			r.Warnings = append(r.Warnings, f)
		}
	}
	r.Valid = len(r.Errors) == 0
	return r
}
