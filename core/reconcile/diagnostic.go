package reconcile

import (
	"fmt"
	"strconv"
)

// DiagnosticKind classifies a diagnostic record.
type DiagnosticKind string

const (
	// KindWarning flags an update targeting an id missing from the existing batch.
	KindWarning DiagnosticKind = "Warning"
	// KindPassThrough marks a reference kept as a plain file reference.
	KindPassThrough DiagnosticKind = "PassThrough"
	// KindUnresolvable marks an entry whose fetch produced no usable content.
	KindUnresolvable DiagnosticKind = "Unresolvable"
	// KindDuplicate marks an entry removed as a duplicate within the batch.
	KindDuplicate DiagnosticKind = "Duplicate"
	// KindUnchanged marks an entry that reuses an existing stored file.
	KindUnchanged DiagnosticKind = "Unchanged"
	// KindOverride marks an entry carrying new or changed content.
	KindOverride DiagnosticKind = "Override"
)

// Diagnostic records one decision taken during reconciliation.
type Diagnostic struct {
	// Kind is the decision category.
	Kind DiagnosticKind `json:"kind"`

	// Position is the index of the entry in the incoming batch.
	Position int `json:"position"`

	// ID is the entry id at the time of the decision (0 if none).
	ID int64 `json:"id,omitempty"`

	// MatchID is the existing id the entry matched, if any.
	MatchID int64 `json:"match_id,omitempty"`

	// File is the file reference involved.
	File string `json:"file,omitempty"`
}

// String renders the diagnostic as a single trail line.
func (d Diagnostic) String() string {
	switch d.Kind {
	case KindWarning:
		return fmt.Sprintf("Warning: entry %d targets id %d which is not in the existing gallery", d.Position, d.ID)
	case KindPassThrough:
		return fmt.Sprintf("PassThrough: entry %d keeps file reference %q", d.Position, d.File)
	case KindUnresolvable:
		return fmt.Sprintf("Unresolvable: entry %d reference %q produced no content", d.Position, d.File)
	case KindDuplicate:
		return fmt.Sprintf("Duplicate: entry %d matches id %d claimed by another entry, removed", d.Position, d.MatchID)
	case KindUnchanged:
		return fmt.Sprintf("Unchanged: entry %d matches id %d, reusing file %q", d.Position, d.MatchID, d.File)
	case KindOverride:
		return fmt.Sprintf("Override: entry %d id %s file %q", d.Position, formatID(d.ID), d.File)
	default:
		return fmt.Sprintf("%s: entry %d", d.Kind, d.Position)
	}
}

func formatID(id int64) string {
	if id == 0 {
		return "new"
	}
	return strconv.FormatInt(id, 10)
}
