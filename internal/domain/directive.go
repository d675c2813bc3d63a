package domain

import "strings"

// Directive is a recognized robots.txt directive name, normalized to
// lowercase. Unrecognized names are still carried as Directive values so
// callers can report them verbatim.
type Directive string

// Standard directives defined by RFC 9309, plus the sitemap extension.
const (
	DirectiveUserAgent Directive = "user-agent"
	DirectiveDisallow  Directive = "disallow"
	DirectiveAllow     Directive = "allow"
	DirectiveSitemap   Directive = "sitemap"
)

// Common non-standard directives seen in the wild.
const (
	DirectiveCrawlDelay  Directive = "crawl-delay"
	DirectiveRequestRate Directive = "request-rate"
	DirectiveVisitTime   Directive = "visit-time"
	DirectiveHost        Directive = "host"
	DirectiveCleanParam  Directive = "clean-param"
)

// Category classifies a directive within the closed vocabulary.
type Category string

const (
	// CategoryStandard covers the directives defined by RFC 9309.
	CategoryStandard Category = "standard"
	// CategoryNonstandard covers widely used extension directives.
	CategoryNonstandard Category = "nonstandard"
	// CategoryUnknown covers everything else.
	CategoryUnknown Category = "unknown"
)

// directiveCategories maps each known directive to its category.
var directiveCategories = map[Directive]Category{
	DirectiveUserAgent:   CategoryStandard,
	DirectiveDisallow:    CategoryStandard,
	DirectiveAllow:       CategoryStandard,
	DirectiveSitemap:     CategoryStandard,
	DirectiveCrawlDelay:  CategoryNonstandard,
	DirectiveRequestRate: CategoryNonstandard,
	DirectiveVisitTime:   CategoryNonstandard,
	DirectiveHost:        CategoryNonstandard,
	DirectiveCleanParam:  CategoryNonstandard,
}

// ParseDirective normalizes a directive name to its lowercase Directive
// value. Matching everywhere else is case-insensitive because robots.txt
// directive names are.
func ParseDirective(name string) Directive {
	return Directive(strings.ToLower(strings.TrimSpace(name)))
}

// Category returns the directive's category within the vocabulary.
func (d Directive) Category() Category {
	if c, ok := directiveCategories[d]; ok {
		return c
	}
	return CategoryUnknown
}

// Directives returns the known vocabulary in a stable order, standard
// directives first. Used by the directives command and editor tooling
// that wants suggestion data.
func Directives() []Directive {
	return []Directive{
		DirectiveUserAgent,
		DirectiveDisallow,
		DirectiveAllow,
		DirectiveSitemap,
		DirectiveCrawlDelay,
		DirectiveRequestRate,
		DirectiveVisitTime,
		DirectiveHost,
		DirectiveCleanParam,
	}
}

// SplitLine splits a trimmed directive line at its first colon into a
// name and a value, both trimmed. Further colons belong to the value
// (URLs legitimately contain them). ok is false when the line has no
// colon at all.
func SplitLine(line string) (name, value string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
}
