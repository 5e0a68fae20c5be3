// Package export writes the merged dataset to the artifact store: one
// all-records file, one file per category, and an optional HTML index. Each
// file is an independent unit of work walking an ordered attempt chain
// (XLSX, sanitized XLSX, CSV) until one attempt lands.
package export

import (
	"bytes"
	"context"
	"strings"
	"time"

	"memberdir/internal/artifact"
	"memberdir/pkg/directory"
)

// Logger is the logging slice the writer consumes.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Recorder receives one observation per stored or failed output unit.
type Recorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

// Writer persists merged records through an artifact store.
type Writer struct {
	Store     artifact.Store
	Log       Logger
	Metrics   Recorder
	HTMLIndex bool // also emit index.html over the full set
}

const (
	allMembersUnit = "all_members"
	categoriesDir  = "categories"
	indexKey       = "index.html"
)

type attempt struct {
	format    Format
	sanitized bool
}

// attemptChain is the per-unit write plan: primary format, sanitized retry,
// then the delimited-text fallback.
var attemptChain = []attempt{
	{format: FormatXLSX, sanitized: false},
	{format: FormatXLSX, sanitized: true},
	{format: FormatCSV, sanitized: true},
}

type unit struct {
	name    string
	baseKey string
	records []directory.MergedRecord
}

// Write persists the full ordered record set plus one file per category and
// reports the outcome per output unit. A unit exhausting its attempt chain is
// fatal for that unit only.
func (w *Writer) Write(ctx context.Context, records []directory.MergedRecord) []directory.FileReport {
	log := w.Log
	if log == nil {
		log = nopLogger{}
	}

	units := []unit{{name: allMembersUnit, baseKey: allMembersUnit, records: records}}
	partition := directory.PartitionByCategory(records)
	for _, cat := range partition.Categories {
		units = append(units, unit{
			name:    cat,
			baseKey: categoriesDir + "/" + fileSafeName(cat),
			records: partition.ByCategory[cat],
		})
	}

	reports := make([]directory.FileReport, 0, len(units))
	for _, u := range units {
		rep := w.writeUnit(ctx, u)
		if rep.Status == directory.FileFailed {
			log.Error("output unit failed", "unit", u.name, "error", rep.Error)
		} else if rep.Fallback {
			log.Warn("output unit fell back to csv", "unit", u.name, "key", rep.Key)
		} else {
			log.Info("output unit written", "unit", u.name, "key", rep.Key, "sanitized", rep.Sanitized)
		}
		reports = append(reports, rep)
	}

	if w.HTMLIndex {
		reports = append(reports, w.writeIndex(ctx, records, log))
	}
	return reports
}

func (w *Writer) writeUnit(ctx context.Context, u unit) directory.FileReport {
	rawRows := unitRows(u.records)
	var sanitized [][]string

	report := directory.FileReport{Unit: u.name}
	for _, a := range attemptChain {
		rows := rawRows
		if a.sanitized {
			if sanitized == nil {
				sanitized = sanitizeRows(rawRows)
			}
			rows = sanitized
		}
		key := u.baseKey + "." + string(a.format)
		err := w.storeRows(ctx, key, a.format, rows)
		step := directory.WriteAttempt{Format: string(a.format), Sanitized: a.sanitized}
		if err != nil {
			step.Error = err.Error()
			report.Attempts = append(report.Attempts, step)
			continue
		}
		report.Attempts = append(report.Attempts, step)
		report.Status = directory.FileDone
		report.Key = key
		report.Format = string(a.format)
		report.Sanitized = a.sanitized
		report.Fallback = a.format == FormatCSV
		return report
	}

	report.Status = directory.FileFailed
	report.Error = report.Attempts[len(report.Attempts)-1].Error
	return report
}

func (w *Writer) storeRows(ctx context.Context, key string, format Format, rows [][]string) error {
	start := time.Now()
	err := w.renderAndPut(ctx, key, format, rows)
	if w.Metrics != nil {
		w.Metrics.Observe(ctx, "write_file", err == nil, time.Since(start))
	}
	return err
}

func (w *Writer) renderAndPut(ctx context.Context, key string, format Format, rows [][]string) error {
	var payload []byte
	var contentType string
	var err error
	switch format {
	case FormatCSV:
		payload, err = renderCSV(rows)
		contentType = contentTypeCSV
	default:
		payload, err = renderXLSX(rows)
		contentType = contentTypeXLSX
	}
	if err != nil {
		return err
	}
	_, err = w.Store.Put(ctx, key, bytes.NewReader(payload), artifact.PutOptions{ContentType: contentType})
	return err
}

// writeIndex emits the HTML gallery supplement. It is best-effort: a failure
// is reported but triggers no fallback chain.
func (w *Writer) writeIndex(ctx context.Context, records []directory.MergedRecord, log Logger) directory.FileReport {
	report := directory.FileReport{Unit: "index", Key: indexKey, Format: string(FormatHTML)}
	payload := renderHTMLIndex(records)
	start := time.Now()
	_, err := w.Store.Put(ctx, indexKey, bytes.NewReader(payload), artifact.PutOptions{ContentType: contentTypeHTML})
	if w.Metrics != nil {
		w.Metrics.Observe(ctx, "write_file", err == nil, time.Since(start))
	}
	report.Attempts = []directory.WriteAttempt{{Format: string(FormatHTML)}}
	if err != nil {
		report.Status = directory.FileFailed
		report.Error = err.Error()
		report.Attempts[0].Error = err.Error()
		log.Warn("html index failed", "error", err.Error())
		return report
	}
	report.Status = directory.FileDone
	return report
}

func unitRows(records []directory.MergedRecord) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, directory.Header())
	for _, rec := range records {
		rows = append(rows, rec.Row())
	}
	return rows
}

// fileSafeName maps a category value to a stable file name component. Dots
// are mapped too: the appended extension dot must never combine with category
// text into a ".." sequence, which stores reject as traversal.
func fileSafeName(category string) string {
	if strings.TrimSpace(category) == "" {
		return "uncategorized"
	}
	return strings.NewReplacer("/", "_", " ", "_", ".", "_").Replace(category)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
