package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modelOf(rows ...[2]string) *SeriesModel {
	m := NewSeriesModel()
	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = Entry{Label: r[0], Value: r[1]}
	}
	m.ReplaceAll(entries)
	return m
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		model    *SeriesModel
		code     ErrorCode
		wantRows []int
	}{
		{
			name:  "all complete",
			model: modelOf([2]string{"A", "5"}, [2]string{"B", "6"}),
		},
		{
			name:  "blank rows are ignored",
			model: modelOf([2]string{"A", "5"}, [2]string{"", ""}),
		},
		{
			name:     "label without value",
			model:    modelOf([2]string{"A", "5"}, [2]string{"B", ""}),
			code:     ErrCodePartialEntry,
			wantRows: []int{1},
		},
		{
			name:     "value without label",
			model:    modelOf([2]string{"", "3"}, [2]string{"A", "5"}),
			code:     ErrCodePartialEntry,
			wantRows: []int{0},
		},
		{
			name:     "zero value counts as missing",
			model:    modelOf([2]string{"A", "5"}, [2]string{"B", "0"}),
			code:     ErrCodePartialEntry,
			wantRows: []int{1},
		},
		{
			name:  "empty model",
			model: NewSeriesModel(),
			code:  ErrCodeNoData,
		},
		{
			name:  "only partial rows reports no data",
			model: modelOf([2]string{"B", ""}),
			code:  ErrCodeNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Validate(tt.model)
			err := report.Err()
			if tt.code == "" {
				require.NoError(t, err)
				assert.True(t, report.Valid())
				return
			}
			require.Error(t, err)
			assert.True(t, IsCode(err, tt.code), "got %v", err)
			assert.False(t, report.Valid())
			if tt.wantRows != nil {
				assert.Equal(t, tt.wantRows, PartialRows(err))
			}
		})
	}
}

func TestValidateIdentifiesPartialLabel(t *testing.T) {
	report := Validate(modelOf([2]string{"A", "5"}, [2]string{"B", ""}))

	require.Len(t, report.Partial, 1)
	assert.Equal(t, "B", report.Partial[0].Label)
	assert.False(t, report.Partial[0].MissingLabel)
	assert.Equal(t, 1, report.Complete)

	var domainErr *DomainError
	require.ErrorAs(t, report.Err(), &domainErr)
	assert.Equal(t, []string{"B"}, domainErr.Context["labels"])
}

func TestValidateDoesNotMutate(t *testing.T) {
	m := modelOf([2]string{"A", "5"}, [2]string{"", "x"})
	before := m.Entries()

	Validate(m)

	assert.Equal(t, before, m.Entries())
}

func TestValidateNilModel(t *testing.T) {
	assert.True(t, IsCode(Validate(nil).Err(), ErrCodeNoData))
	assert.Nil(t, PartialRows(nil))
}
