package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyport-cloud/skyport-mcp/internal/toolerr"
)

func requireCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)

	var verr *toolerr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, code, verr.Code)
}

func TestRequireValue(t *testing.T) {
	var nilString *string
	empty := ""
	zero := 0

	missing := []any{nil, "", nilString, &empty}
	for _, v := range missing {
		requireCode(t, RequireValue(v, "field"), toolerr.CodeMissingRequiredField)
	}

	present := []any{0, false, []string{}, map[string]any{}, "x", &zero}
	for _, v := range present {
		assert.NoError(t, RequireValue(v, "field"), "%#v should be accepted", v)
	}
}

func TestRequireValueMessageNamesField(t *testing.T) {
	err := RequireValue("", "bucket")

	var verr *toolerr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "bucket", verr.Field)
	assert.Equal(t, "bucket is required", verr.Message)
	assert.NotEmpty(t, verr.Suggestions())
}

func TestValidateAppName(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"abc", ""},
		{"my-app", ""},
		{"app--name", ""},
		{"123456", ""},
		{strings.Repeat("a", 32), ""},
		{"", toolerr.CodeMissingRequiredField},
		{"ab", CodeAppNameTooShort},
		{strings.Repeat("a", 33), CodeAppNameTooLong},
		{"MyApp", CodeAppNameInvalidCharacters},
		{"my_app", CodeAppNameInvalidCharacters},
		{"my app", CodeAppNameInvalidCharacters},
		{"-app", CodeAppNameInvalidHyphen},
		{"app-", CodeAppNameInvalidHyphen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAppName(tt.name)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			requireCode(t, err, tt.code)
			assert.NotEmpty(t, toolerr.GetErrorSuggestions(err))
		})
	}
}

func TestValidateAppNameSuggestsFix(t *testing.T) {
	err := ValidateAppName("My_App")

	assert.Contains(t, toolerr.GetErrorSuggestions(err), `Try "my-app"`)
}

func TestValidateDomainName(t *testing.T) {
	valid := []string{"example.com", "app.example.com", "my-site.co.uk", "EXAMPLE.ORG"}
	for _, d := range valid {
		assert.NoError(t, ValidateDomainName(d), d)
	}

	invalid := []string{"example", "example.", ".example.com", "localhost", "example.c", "exa mple.com", "http://example.com", "-example.com", "example.123"}
	for _, d := range invalid {
		requireCode(t, ValidateDomainName(d), CodeInvalidDomainName)
	}

	requireCode(t, ValidateDomainName(""), toolerr.CodeMissingRequiredField)
}

func TestValidateEnvKey(t *testing.T) {
	valid := []string{"NODE_ENV", "API_KEY", "_PRIVATE", "___", "A", "KEY2"}
	for _, k := range valid {
		assert.NoError(t, ValidateEnvKey(k), k)
	}

	invalid := []string{"123KEY", "api_key", "API-KEY", "API.KEY", "API KEY", "Api_Key"}
	for _, k := range invalid {
		requireCode(t, ValidateEnvKey(k), CodeInvalidEnvKey)
	}

	requireCode(t, ValidateEnvKey(""), toolerr.CodeMissingRequiredField)
}

func TestValidateDNSRecordType(t *testing.T) {
	for _, rt := range []string{"A", "aaaa", "CNAME", "mx", "TXT", "SRV", "CAA"} {
		assert.NoError(t, ValidateDNSRecordType(rt), rt)
	}

	requireCode(t, ValidateDNSRecordType("BOGUS"), CodeInvalidDNSRecordType)
	requireCode(t, ValidateDNSRecordType(""), toolerr.CodeMissingRequiredField)
}

func TestIsObjectID(t *testing.T) {
	assert.True(t, IsObjectID("64b7f0c2a1e4d3b2c1a09f8e"))
	assert.False(t, IsObjectID("64B7F0C2A1E4D3B2C1A09F8E"))
	assert.False(t, IsObjectID("64b7f0c2a1e4d3b2c1a09f8"))
	assert.False(t, IsObjectID("db-primary.skyport.cloud"))
}
