package directory

import "time"

// FileStatus describes the terminal state of one output unit.
type FileStatus string

const (
	// FileDone means an attempt in the chain produced a stored file.
	FileDone FileStatus = "done"
	// FileFailed means every attempt in the chain was exhausted.
	FileFailed FileStatus = "failed"
)

// WriteAttempt records one step of the per-file attempt chain.
type WriteAttempt struct {
	Format    string `json:"format"`
	Sanitized bool   `json:"sanitized"`
	Error     string `json:"error,omitempty"`
}

// FileReport captures the outcome of writing one output unit. A unit walks
// pending → primary_attempted → sanitized_retry → fallback_attempted until an
// attempt succeeds or the chain is exhausted.
type FileReport struct {
	Unit      string         `json:"unit"`
	Key       string         `json:"key"`
	Status    FileStatus     `json:"status"`
	Format    string         `json:"format,omitempty"`
	Sanitized bool           `json:"sanitized,omitempty"`
	Fallback  bool           `json:"fallback,omitempty"`
	Attempts  []WriteAttempt `json:"attempts"`
	Error     string         `json:"error,omitempty"`
}

// RunReport is the user-visible completion summary for one run.
type RunReport struct {
	StartedAt       time.Time    `json:"started_at"`
	CompletedAt     time.Time    `json:"completed_at"`
	PagesFetched    int          `json:"pages_fetched"`
	Summaries       int          `json:"summaries_fetched"`
	Merged          int          `json:"records_merged"`
	ProfilesSkipped int          `json:"profiles_skipped"`
	Categories      int          `json:"categories"`
	Files           []FileReport `json:"files"`
}

// FallbackFiles lists output units that ended up in the fallback format.
func (r RunReport) FallbackFiles() []string {
	var out []string
	for _, f := range r.Files {
		if f.Status == FileDone && f.Fallback {
			out = append(out, f.Key)
		}
	}
	return out
}

// FailedFiles lists output units whose whole attempt chain failed.
func (r RunReport) FailedFiles() []string {
	var out []string
	for _, f := range r.Files {
		if f.Status == FileFailed {
			out = append(out, f.Unit)
		}
	}
	return out
}
