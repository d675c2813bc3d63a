// Package lint provides the application service that runs the robots
// validator over named inputs and persists reports.
package lint

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eykd/robotslint-go/internal/domain"
	"github.com/eykd/robotslint-go/internal/robots"
)

// Options controls how the service filters and reclassifies validator
// findings. The zero value leaves reports untouched.
type Options struct {
	// Ignore lists finding types to drop from reports.
	Ignore []domain.FindingType
	// WarningsAsErrors promotes surviving warnings to errors.
	WarningsAsErrors bool
}

// ignored reports whether findings of type t should be dropped.
func (o Options) ignored(t domain.FindingType) bool {
	for _, ig := range o.Ignore {
		if ig == t {
			return true
		}
	}
	return false
}

// SourceReader abstracts reading one input and decoding it to UTF-8.
type SourceReader interface {
	ReadSource(ctx context.Context, path string) (string, error)
}

// ReportWriter abstracts persisting a serialized run report.
type ReportWriter interface {
	WriteReport(ctx context.Context, path string, data []byte) error
}

// Locker abstracts advisory lock acquisition around report writes.
type Locker interface {
	TryLock(ctx context.Context) error
	Unlock() error
}

// FileReport pairs one input path with its validation report.
type FileReport struct {
	Path   string         `json:"path"`
	Report *domain.Report `json:"report"`
}

// RunResult holds the reports and severity totals of one lint run.
type RunResult struct {
	Files    []FileReport `json:"files"`
	Errors   int          `json:"errors"`
	Warnings int          `json:"warnings"`
}

// Clean reports whether the run produced no errors at all.
func (r *RunResult) Clean() bool {
	return r.Errors == 0
}

// Service coordinates lint runs. Validation findings are data in the
// result; only infrastructure failures surface as errors.
type Service struct {
	reader SourceReader
	writer ReportWriter
	locker Locker
	opts   Options
}

// NewService creates a Service with the given dependencies.
func NewService(reader SourceReader, writer ReportWriter, locker Locker, opts Options) *Service {
	return &Service{reader: reader, writer: writer, locker: locker, opts: opts}
}

// Run validates each input in order, applying the ignore list and
// severity promotion to every report. The context is checked
// between files so a cancelled run stops promptly.
func (s *Service) Run(ctx context.Context, paths []string) (*RunResult, error) {
	result := &RunResult{Files: []FileReport{}}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := s.reader.ReadSource(ctx, path)
		if err != nil {
			return nil, err
		}

		report := s.applyOptions(robots.ValidateRobotsTxt(text))
		result.Files = append(result.Files, FileReport{Path: path, Report: report})
		result.Errors += len(report.Errors)
		result.Warnings += len(report.Warnings)
	}
	return result, nil
}

// WriteReport serializes a run result as indented JSON and writes it
// under the advisory lock.
func (s *Service) WriteReport(ctx context.Context, result *RunResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')

	if err := s.locker.TryLock(ctx); err != nil {
		return err
	}
	defer func() { _ = s.locker.Unlock() }()

	return s.writer.WriteReport(ctx, path, data)
}

// applyOptions drops ignored findings and optionally promotes warnings
// to errors, then rebuilds the report so validity stays consistent.
func (s *Service) applyOptions(r *domain.Report) *domain.Report {
	if len(s.opts.Ignore) == 0 && !s.opts.WarningsAsErrors {
		return r
	}

	var findings []domain.Finding
	for _, f := range r.Errors {
		if !s.opts.ignored(f.Type) {
			findings = append(findings, f)
		}
	}
	for _, f := range r.Warnings {
		if s.opts.ignored(f.Type) {
			continue
		}
		if s.opts.WarningsAsErrors {
			f.Severity = domain.SeverityError
		}
		findings = append(findings, f)
	}
	return domain.NewReport(findings)
}
