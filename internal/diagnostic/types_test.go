package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Collect(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning(CodeUnknownDatatype, "no datatype marker among ancestors", "F1")
	d.AddError(CodeInconsistentDefinition, "fully defined with one defining element", "E")
	d.AddError(CodeInconsistentDefinition, "fully defined with one defining element", "G")
	d.AddInfo(CodeImplicitConcept, "created from relationship source", "X")

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	assert.Equal(t, []string{"E", "G"}, d.Subjects(CodeInconsistentDefinition))
	assert.Len(t, d.ByCode(CodeUnknownDatatype), 1)
	assert.Len(t, d.ByCode(CodeImplicitConcept), 1)

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 structural error(s)")
	assert.Contains(t, err.Error(), "E: [inconsistent_definition]")
	assert.Contains(t, err.Error(), "G: [inconsistent_definition]")
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError(CodeRoleParentConflict, "conflict", "R")
	b.AddWarning(CodeUnknownDatatype, "unknown", "F")
	b.AddError(CodeInconsistentDefinition, "bad", "C")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{name: "message only", d: Diagnostic{Message: "oops"}, want: "oops"},
		{name: "with code", d: Diagnostic{Code: "c", Message: "oops"}, want: "[c] oops"},
		{name: "with subject", d: Diagnostic{Code: "c", Message: "oops", Subject: "123"}, want: "123: [c] oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
