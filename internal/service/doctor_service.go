package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/shades/internal/config"
	"github.com/amterp/shades/internal/model"
	"github.com/amterp/shades/internal/namepool"
	"github.com/amterp/shades/internal/version"
)

// IssueSeverity indicates how critical an issue is.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// Issue codes for diagnostic results.
const (
	// Global config
	CodeMalformedGlobalConfig = "MALFORMED_GLOBAL_CONFIG"
	CodeGlobalSchemaMissing   = "GLOBAL_SCHEMA_MISSING"
	CodeGlobalSchemaOutdated  = "GLOBAL_SCHEMA_OUTDATED"
	CodeColumnsOutOfRange     = "COLUMNS_OUT_OF_RANGE"
	CodeNegativeBias          = "NEGATIVE_BIAS"

	// Name table
	CodeMissingPoolFile   = "MISSING_POOL_FILE"
	CodeMalformedPool     = "MALFORMED_POOL"
	CodeInvalidPoolValue  = "INVALID_POOL_VALUE"
	CodeDuplicatePoolName = "DUPLICATE_POOL_NAME"
	CodeSmallPool         = "SMALL_POOL"
)

// Config keys rewritten by fixes.
const (
	keySchema   = "shades_schema"
	keyColumns  = "columns"
	keyBias     = "bias"
	keyPoolFile = "pool_file"
)

// Issue represents a single diagnostic finding.
type Issue struct {
	Severity  IssueSeverity `json:"severity"`
	Code      string        `json:"code"`
	Field     string        `json:"field,omitempty"` // config key or table name
	Message   string        `json:"message"`
	Fixable   bool          `json:"fixable"`
	FixAction string        `json:"fix_action,omitempty"`
	FixError  string        `json:"fix_error,omitempty"` // Populated if fix was attempted but failed
}

// PoolDiagnostic contains stats for the name table in use.
type PoolDiagnostic struct {
	Path     string `json:"path,omitempty"` // empty for the built-in table
	Builtin  bool   `json:"builtin"`
	Names    int    `json:"names"`
	Shades   int    `json:"shades"`
	Synonyms int    `json:"synonyms"` // names sharing a shade with an earlier name
}

// ReportSummary summarizes the diagnostic results.
type ReportSummary struct {
	Errors    int `json:"errors"`
	Warnings  int `json:"warnings"`
	Fixed     int `json:"fixed"`
	FixFailed int `json:"fix_failed,omitempty"`
}

// DiagnosticReport contains all diagnostic results.
type DiagnosticReport struct {
	ConfigPath string          `json:"config_path"`
	Pool       *PoolDiagnostic `json:"pool,omitempty"`
	Issues     []Issue         `json:"issues"`
	Summary    ReportSummary   `json:"summary"`
}

// HasErrors returns true if there are any error-level issues.
func (r *DiagnosticReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

func (r *DiagnosticReport) add(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

func (r *DiagnosticReport) summarize() {
	r.Summary.Errors, r.Summary.Warnings = 0, 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			r.Summary.Errors++
		} else {
			r.Summary.Warnings++
		}
	}
}

// DoctorService checks the global config and the name table it points at.
type DoctorService struct {
	paths *config.Paths
}

// NewDoctorService creates a new diagnostic service.
func NewDoctorService(paths *config.Paths) *DoctorService {
	return &DoctorService{paths: paths}
}

// Diagnose reads the config file and name table from disk and reports
// anything that would make shades ignore, clamp or reject a setting.
func (s *DoctorService) Diagnose() (*DiagnosticReport, error) {
	report := &DiagnosticReport{
		ConfigPath: s.paths.GlobalConfigPath(),
		Issues:     []Issue{},
	}

	raw := s.checkGlobalConfig(report)

	poolFile, _ := raw[keyPoolFile].(string)
	columns := model.DefaultColumnCount
	if n, ok := tomlNumber(raw[keyColumns]); ok && n > 0 {
		columns = min(int(n), model.MaxColumnCount)
	}
	s.checkPool(report, poolFile, columns)

	report.summarize()
	return report, nil
}

// Fix applies automatic fixes for issues that have deterministic solutions.
// Returns a new report showing remaining issues and what was fixed.
func (s *DoctorService) Fix(report *DiagnosticReport) (*DiagnosticReport, error) {
	fixed := 0
	fixFailed := 0
	remaining := []Issue{}

	for _, issue := range report.Issues {
		if !issue.Fixable {
			remaining = append(remaining, issue)
			continue
		}

		var err error
		switch issue.Code {
		case CodeGlobalSchemaMissing:
			err = s.fixConfigKey(keySchema, version.CurrentGlobalSchema())
		case CodeColumnsOutOfRange:
			err = s.fixColumns()
		case CodeNegativeBias:
			err = s.fixConfigKey(keyBias, 0.0)
		case CodeMissingPoolFile:
			err = s.fixConfigKey(keyPoolFile, nil)
		default:
			remaining = append(remaining, issue)
			continue
		}

		if err != nil {
			// If fix failed, keep the issue with error recorded
			issue.FixError = err.Error()
			remaining = append(remaining, issue)
			fixFailed++
		} else {
			fixed++
		}
	}

	newReport := &DiagnosticReport{
		ConfigPath: report.ConfigPath,
		Pool:       report.Pool,
		Issues:     remaining,
		Summary: ReportSummary{
			Fixed:     fixed,
			FixFailed: fixFailed,
		},
	}
	newReport.summarize()

	return newReport, nil
}

// checkGlobalConfig returns the raw config, or an empty map when there is
// none or it can't be parsed.
func (s *DoctorService) checkGlobalConfig(report *DiagnosticReport) map[string]any {
	path := report.ConfigPath
	if path == "" {
		return map[string]any{}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return map[string]any{} // No global config is fine
	}

	raw, err := readTOMLMap(path)
	if err != nil {
		report.add(Issue{
			Severity: SeverityError,
			Code:     CodeMalformedGlobalConfig,
			Message:  fmt.Sprintf("Invalid global config, defaults are used instead: %v", err),
		})
		return map[string]any{}
	}

	schema, ok := raw[keySchema].(string)
	switch {
	case !ok || schema == "":
		report.add(Issue{
			Severity:  SeverityError,
			Code:      CodeGlobalSchemaMissing,
			Field:     keySchema,
			Message:   fmt.Sprintf("Global config missing schema version, current is %s", version.CurrentGlobalSchema()),
			Fixable:   true,
			FixAction: fmt.Sprintf("Set %s = %q", keySchema, version.CurrentGlobalSchema()),
		})
	case schema != version.CurrentGlobalSchema():
		report.add(Issue{
			Severity: SeverityError,
			Code:     CodeGlobalSchemaOutdated,
			Field:    keySchema,
			Message:  fmt.Sprintf("Global config has schema %s, this version reads %s", schema, version.CurrentGlobalSchema()),
		})
	}

	if n, ok := tomlNumber(raw[keyColumns]); ok && (n < 0 || n > model.MaxColumnCount) {
		report.add(Issue{
			Severity:  SeverityWarning,
			Code:      CodeColumnsOutOfRange,
			Field:     keyColumns,
			Message:   fmt.Sprintf("columns = %v is outside 1-%d", n, model.MaxColumnCount),
			Fixable:   true,
			FixAction: "Clamp to 9, or remove to use the default",
		})
	}

	if n, ok := tomlNumber(raw[keyBias]); ok && n < 0 {
		report.add(Issue{
			Severity:  SeverityWarning,
			Code:      CodeNegativeBias,
			Field:     keyBias,
			Message:   fmt.Sprintf("bias = %v is negative and treated as 0", n),
			Fixable:   true,
			FixAction: "Set bias = 0",
		})
	}

	return raw
}

func (s *DoctorService) checkPool(report *DiagnosticReport, poolFile string, columns int) {
	if poolFile == "" {
		pool := namepool.Builtin(nil)
		report.Pool = &PoolDiagnostic{
			Builtin:  true,
			Names:    len(pool.Names()),
			Shades:   pool.Len(),
			Synonyms: countSynonyms(pool),
		}
		return
	}

	path := s.paths.PoolPath(poolFile)
	f, err := os.Open(path)
	if err != nil {
		report.add(Issue{
			Severity:  SeverityError,
			Code:      CodeMissingPoolFile,
			Field:     keyPoolFile,
			Message:   fmt.Sprintf("Cannot read name table %s: %v", path, err),
			Fixable:   os.IsNotExist(err),
			FixAction: "Remove pool_file to use the built-in table",
		})
		return
	}
	defer f.Close()

	entries, err := namepool.ReadEntries(f)
	if err != nil {
		report.add(Issue{
			Severity: SeverityError,
			Code:     CodeMalformedPool,
			Message:  fmt.Sprintf("Invalid name table %s: %v", path, err),
		})
		return
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Name] {
			report.add(Issue{
				Severity: SeverityWarning,
				Code:     CodeDuplicatePoolName,
				Field:    e.Name,
				Message:  fmt.Sprintf("%q is listed more than once; only the first value is used", e.Name),
			})
			continue
		}
		seen[e.Name] = true

		if !namepool.ValidValue(e.Value) {
			report.add(Issue{
				Severity: SeverityWarning,
				Code:     CodeInvalidPoolValue,
				Field:    e.Name,
				Message:  fmt.Sprintf("%q has value %q, expected two hex digits; the name never resolves", e.Name, strings.TrimSpace(e.Value)),
			})
		}
	}

	pool := namepool.New(entries, nil)
	report.Pool = &PoolDiagnostic{
		Path:     path,
		Names:    len(pool.Names()),
		Shades:   pool.Len(),
		Synonyms: countSynonyms(pool),
	}

	if pool.Len() < columns {
		report.add(Issue{
			Severity: SeverityWarning,
			Code:     CodeSmallPool,
			Field:    keyPoolFile,
			Message:  fmt.Sprintf("Name table has %d usable shades for %d columns; the rest are random unnamed darks", pool.Len(), columns),
		})
	}
}

func countSynonyms(pool *namepool.Pool) int {
	n := 0
	for _, shade := range pool.Shades() {
		n += len(pool.Synonyms(shade.String())) - 1
	}
	return n
}

// Fix implementations

// fixConfigKey sets key in the config file, or removes it when value is nil.
func (s *DoctorService) fixConfigKey(key string, value any) error {
	path := s.paths.GlobalConfigPath()
	raw, err := readTOMLMap(path)
	if err != nil {
		return err
	}
	if value == nil {
		delete(raw, key)
	} else {
		raw[key] = value
	}
	return writeTOMLMap(path, raw)
}

func (s *DoctorService) fixColumns() error {
	path := s.paths.GlobalConfigPath()
	raw, err := readTOMLMap(path)
	if err != nil {
		return err
	}
	// Non-positive counts already mean "default"
	n, _ := tomlNumber(raw[keyColumns])
	if n < 1 {
		delete(raw, keyColumns)
	} else {
		raw[keyColumns] = int64(min(int(n), model.MaxColumnCount))
	}
	return writeTOMLMap(path, raw)
}
