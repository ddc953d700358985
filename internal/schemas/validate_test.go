package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResume(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
		field   string
	}{
		{name: "minimal", doc: `{"personalInfo":{"name":"Jane"}}`},
		{name: "missing personal info", doc: `{"summary":"x"}`, wantErr: true, field: "(root)"},
		{name: "experience needs role", doc: `{"personalInfo":{},"experience":[{"company":"Acme"}]}`, wantErr: true, field: "experience.0"},
		{name: "skills must be strings", doc: `{"personalInfo":{},"skills":{"technical":[1]}}`, wantErr: true, field: "skills.technical.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResume([]byte(tt.doc))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.NotEmpty(t, ve.Errors)
			assert.Equal(t, tt.field, ve.Errors[0].Field)
		})
	}
}

func TestValidateCatalog(t *testing.T) {
	valid := `[{"id":"job-1","title":"SDE","company":"Acme","location":"Pune","mode":"Remote",
		"experience":"Fresher","skills":["Go"],"source":"LinkedIn","postedDaysAgo":1,"applyUrl":"https://acme.com/1"}]`
	assert.NoError(t, ValidateCatalog([]byte(valid)))

	badMode := `[{"id":"job-1","title":"SDE","company":"Acme","location":"Pune","mode":"Mars",
		"experience":"Fresher","skills":[],"source":"LinkedIn","postedDaysAgo":1,"applyUrl":"https://acme.com/1"}]`
	var ve *ValidationError
	require.ErrorAs(t, ValidateCatalog([]byte(badMode)), &ve)
	assert.Contains(t, ve.Error(), "mode")
}

func TestValidateNotJSON(t *testing.T) {
	assert.ErrorIs(t, ValidateResume([]byte("{nope")), ErrInvalidJSON)
}

func TestValidateUnknownSchema(t *testing.T) {
	var le *SchemaLoadError
	require.ErrorAs(t, Validate("missing.schema.json", []byte(`{}`)), &le)
	assert.Equal(t, "missing.schema.json", le.Name)
}
