package chart

import "errors"

// RowIssue describes one incomplete row found during validation.
type RowIssue struct {
	Index int
	ID    string
	Label string
	// MissingLabel is true when the row has a value but no label; otherwise
	// the value is missing.
	MissingLabel bool
}

// ValidationReport classifies every row of a model.
type ValidationReport struct {
	Complete int
	Partial  []RowIssue
}

// HasData reports whether at least one complete row exists.
func (r *ValidationReport) HasData() bool {
	return r != nil && r.Complete > 0
}

// Valid reports whether a commit may proceed.
func (r *ValidationReport) Valid() bool {
	return r.HasData() && len(r.Partial) == 0
}

// Err converts the report into a DomainError. Missing data takes precedence
// over partial rows.
func (r *ValidationReport) Err() error {
	if r == nil {
		return NewError(ErrCodeNoData, "no complete data entry", nil, nil)
	}
	if !r.HasData() {
		return NewError(ErrCodeNoData, "no complete data entry", nil, map[string]interface{}{
			"partial_rows": r.rows(),
		})
	}
	if len(r.Partial) > 0 {
		labels := make([]string, len(r.Partial))
		for i, issue := range r.Partial {
			labels[i] = issue.Label
		}
		return NewError(ErrCodePartialEntry, "incomplete data entries", nil, map[string]interface{}{
			"rows":   r.rows(),
			"labels": labels,
		})
	}
	return nil
}

func (r *ValidationReport) rows() []int {
	rows := make([]int, len(r.Partial))
	for i, issue := range r.Partial {
		rows[i] = issue.Index
	}
	return rows
}

// Validate classifies all rows of the model without mutating it. A row with
// a label but a blank or zero value, or a value but no label, is partial.
func Validate(model *SeriesModel) *ValidationReport {
	report := &ValidationReport{}
	if model == nil {
		return report
	}
	for i, e := range model.entries {
		hasLabel := e.HasLabel()
		hasNumber := e.Number() != 0
		switch {
		case hasLabel && hasNumber:
			report.Complete++
		case hasLabel:
			report.Partial = append(report.Partial, RowIssue{Index: i, ID: e.ID, Label: e.TrimmedLabel()})
		case e.HasValueText():
			report.Partial = append(report.Partial, RowIssue{Index: i, ID: e.ID, MissingLabel: true})
		}
	}
	return report
}

// PartialRows extracts the offending row indexes from a PARTIAL_ENTRY error.
func PartialRows(err error) []int {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != ErrCodePartialEntry {
		return nil
	}
	rows, _ := domainErr.Context["rows"].([]int)
	return rows
}
