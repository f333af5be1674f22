package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Add(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddInfo("note", "linked", "users.User", "id")
	d.AddWarning("source_kind", "source is not a map", "users.User", "Name")
	d.AddError("unknown_type", "type not found", "users.Admin", "", "users.User")

	assert.True(t, d.HasErrors())
	assert.Equal(t, []string{"unknown_type", "source_kind", "note"}, d.Codes())
	assert.Equal(t, SeverityWarning, d.Warnings[0].Severity)
	assert.EqualError(t, d.Error(), "[users.Admin]: [unknown_type] type not found (did you mean users.User?)")
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("x", "first", "", "")
	b.AddError("y", "second", "", "")
	b.AddWarning("z", "third", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.EqualError(t, a.Error(), "[x] first; [y] second")
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Code: "missing_field", Message: "target is required", Type: "users.User", Attr: "UserData"}
	assert.Equal(t, "[users.User] UserData: [missing_field] target is required", d.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
