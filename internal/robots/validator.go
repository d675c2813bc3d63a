// Package robots implements the rule-based validator for the robots
// exclusion protocol text format. It parses a document line by line,
// classifies directives, tracks grouping context, and reports every
// anomaly as a finding rather than an error: Validate never fails for
// any text input.
package robots

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/eykd/robotslint-go/internal/domain"
)

// MaxFileSize is the byte length beyond which crawlers are permitted to
// stop parsing (RFC 9309 §2.5: at least 500 KiB must be processed).
const MaxFileSize = 512000

// userAgentToken matches a well-formed product token or the * wildcard.
var userAgentToken = regexp.MustCompile(`^[A-Za-z0-9_*-]+$`)

// scanState is the grouping context carried across a single line scan.
// It is local to one Validate call; nothing persists between calls.
type scanState struct {
	// inGroup is true once any user-agent line has opened a group,
	// making subsequent allow/disallow lines well-placed.
	inGroup bool
	// currentAgent is the value of the most recent user-agent line.
	currentAgent string
	// hasUserAgent is true if any user-agent line appeared anywhere.
	hasUserAgent bool
}

// directiveCheck validates one directive's value and may update the
// grouping state. Checks return findings; they never fail.
type directiveCheck func(d domain.Directive, value string, line int, st *scanState) []domain.Finding

// directiveChecks is the fixed dispatch table from directive to its
// semantic check. Directives absent from the table get no per-value
// check beyond classification.
var directiveChecks = map[domain.Directive]directiveCheck{
	domain.DirectiveUserAgent:  checkUserAgent,
	domain.DirectiveDisallow:   checkRule,
	domain.DirectiveAllow:      checkRule,
	domain.DirectiveSitemap:    checkSitemap,
	domain.DirectiveCrawlDelay: checkCrawlDelay,
}

// Validate runs the full validation pipeline over a document and
// returns its report. It is a pure function of content: safe to call
// concurrently, idempotent, and it never panics on adversarial input.
func Validate(content string) *domain.Report {
	if strings.TrimSpace(content) == "" {
		return domain.NewReport([]domain.Finding{{
			Type:     domain.FindingEmptyFile,
			Severity: domain.SeverityError,
			Line:     0,
			Message:  "file is empty",
		}})
	}

	var findings []domain.Finding
	findings = append(findings, documentFindings(content)...)

	st := &scanState{}
	for i, raw := range strings.Split(content, "\n") {
		findings = append(findings, lineFindings(raw, i+1, st)...)
	}

	if !st.hasUserAgent {
		findings = append(findings, domain.Finding{
			Type:     domain.FindingMissingUserAgent,
			Severity: domain.SeverityError,
			Line:     0,
			Message:  "file must contain at least one user-agent directive",
		})
	}

	return domain.NewReport(findings)
}

// ValidateRobotsTxt is the stable convenience entry point for callers
// outside this package. It is equivalent to Validate.
func ValidateRobotsTxt(content string) *domain.Report {
	return Validate(content)
}

// documentFindings runs the whole-document checks: size limit and
// UTF-8 well-formedness. Both report at line 0 and never block the
// line scan.
func documentFindings(content string) []domain.Finding {
	var findings []domain.Finding
	if len(content) > MaxFileSize {
		findings = append(findings, domain.Finding{
			Type:     domain.FindingFileTooLarge,
			Severity: domain.SeverityWarning,
			Line:     0,
			Message:  fmt.Sprintf("file exceeds %d bytes; crawlers may stop parsing beyond this limit", MaxFileSize),
		})
	}
	if !utf8.ValidString(content) {
		findings = append(findings, domain.Finding{
			Type:     domain.FindingInvalidEncoding,
			Severity: domain.SeverityWarning,
			Line:     0,
			Message:  "file contains byte sequences that are not valid UTF-8",
		})
	}
	return findings
}

// lineFindings validates a single raw line. Blank lines and comments
// never produce findings. The classification warning for non-standard
// directives does not suppress the directive's own check.
func lineFindings(raw string, line int, st *scanState) []domain.Finding {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	name, value, ok := domain.SplitLine(trimmed)
	if !ok {
		return []domain.Finding{{
			Type:     domain.FindingMissingColon,
			Severity: domain.SeverityError,
			Line:     line,
			Message:  "directive must contain a colon separator",
		}}
	}

	d := domain.ParseDirective(name)

	var findings []domain.Finding
	switch d.Category() {
	case domain.CategoryNonstandard:
		findings = append(findings, domain.Finding{
			Type:     domain.FindingNonstandardDirective,
			Severity: domain.SeverityWarning,
			Line:     line,
			Message:  fmt.Sprintf("directive %q is not part of the standard", d),
		})
	case domain.CategoryUnknown:
		findings = append(findings, domain.Finding{
			Type:     domain.FindingUnknownDirective,
			Severity: domain.SeverityWarning,
			Line:     line,
			Message:  fmt.Sprintf("unknown directive %q", d),
		})
	}

	if check, ok := directiveChecks[d]; ok {
		findings = append(findings, check(d, value, line, st)...)
	}
	return findings
}

// checkUserAgent validates a user-agent value and opens a new group.
// The group opens regardless of the value's validity, so following
// allow/disallow lines are never reported as orphaned twice.
func checkUserAgent(_ domain.Directive, value string, line int, st *scanState) []domain.Finding {
	var findings []domain.Finding
	switch {
	case value == "":
		findings = append(findings, domain.Finding{
			Type:     domain.FindingEmptyUserAgent,
			Severity: domain.SeverityError,
			Line:     line,
			Message:  "user-agent value cannot be empty",
		})
	case !userAgentToken.MatchString(value):
		findings = append(findings, domain.Finding{
			Type:     domain.FindingInvalidUserAgent,
			Severity: domain.SeverityWarning,
			Line:     line,
			Message:  "user-agent should contain only letters, numbers, hyphens, underscores, or *",
		})
	}
	st.inGroup = true
	st.currentAgent = value
	st.hasUserAgent = true
	return findings
}

// checkRule validates an allow or disallow line. Outside a group the
// line is an ordering error and its value goes unchecked.
func checkRule(d domain.Directive, value string, line int, st *scanState) []domain.Finding {
	if !st.inGroup {
		return []domain.Finding{{
			Type:     domain.FindingOrphanedRule,
			Severity: domain.SeverityError,
			Line:     line,
			Message:  fmt.Sprintf("%s must follow a user-agent directive", d),
		}}
	}
	return pathFindings(d, value, line)
}

// pathFindings validates the path value of an allow or disallow line.
// An empty value is valid only for disallow, where it means "allow
// everything". All path-shape issues are warnings, never errors: RFC
// 9309 treats path shape as advisory.
func pathFindings(d domain.Directive, value string, line int) []domain.Finding {
	if value == "" && d == domain.DirectiveDisallow {
		return nil
	}

	var findings []domain.Finding
	if !strings.HasPrefix(value, "/") {
		findings = append(findings, domain.Finding{
			Type:     domain.FindingRelativePath,
			Severity: domain.SeverityWarning,
			Line:     line,
			Message:  "path should start with / for proper matching",
		})
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x21 || value[i] > 0x7e {
			findings = append(findings, domain.Finding{
				Type:     domain.FindingUnencodedPathChars,
				Severity: domain.SeverityWarning,
				Line:     line,
				Message:  "non-ASCII characters in path should be percent-encoded",
			})
			break
		}
	}
	if i := strings.IndexByte(value, '$'); i >= 0 && i != len(value)-1 {
		findings = append(findings, domain.Finding{
			Type:     domain.FindingMisplacedDollar,
			Severity: domain.SeverityWarning,
			Line:     line,
			Message:  "$ should only appear at the end of the path",
		})
	}
	return findings
}

// checkSitemap validates a sitemap URL. Sitemap lines may appear
// anywhere; they are not part of any group.
func checkSitemap(_ domain.Directive, value string, line int, _ *scanState) []domain.Finding {
	if value == "" {
		return []domain.Finding{{
			Type:     domain.FindingEmptySitemapURL,
			Severity: domain.SeverityError,
			Line:     line,
			Message:  "sitemap URL cannot be empty",
		}}
	}
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return []domain.Finding{{
			Type:     domain.FindingInvalidSitemapURL,
			Severity: domain.SeverityError,
			Line:     line,
			Message:  "sitemap must be a valid absolute URL",
		}}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return []domain.Finding{{
			Type:     domain.FindingInsecureSitemapScheme,
			Severity: domain.SeverityError,
			Line:     line,
			Message:  "sitemap URL must use HTTP or HTTPS protocol",
		}}
	}
	return nil
}

// checkCrawlDelay validates a crawl-delay value. Crawl-delay is not a
// standard directive, so its issues are warnings only.
func checkCrawlDelay(_ domain.Directive, value string, line int, _ *scanState) []domain.Finding {
	delay, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return []domain.Finding{{
			Type:     domain.FindingInvalidCrawlDelay,
			Severity: domain.SeverityWarning,
			Line:     line,
			Message:  "crawl-delay should be a number",
		}}
	}
	if delay < 0 {
		return []domain.Finding{{
			Type:     domain.FindingNegativeCrawlDelay,
			Severity: domain.SeverityWarning,
			Line:     line,
			Message:  "crawl-delay should not be negative",
		}}
	}
	return nil
}
