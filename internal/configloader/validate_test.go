package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdscan/pkg/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		mutate    func(cfg *config.Config)
		wantField string
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "unset values", mutate: func(cfg *config.Config) { *cfg = config.Config{} }},
		{name: "negative tab width", mutate: func(cfg *config.Config) { cfg.TabWidth = -1 }, wantField: "tab_width"},
		{name: "huge tab width", mutate: func(cfg *config.Config) { cfg.TabWidth = 33 }, wantField: "tab_width"},
		{name: "negative indent", mutate: func(cfg *config.Config) { cfg.Indent = -2 }, wantField: "indent"},
		{name: "unicode form", mutate: func(cfg *config.Config) { cfg.UnicodeForm = "NFC" }, wantField: "unicode_form"},
		{name: "policy", mutate: func(cfg *config.Config) { cfg.InvalidCodePoints = "ignore" }, wantField: "invalid_code_points"},
		{name: "format", mutate: func(cfg *config.Config) { cfg.Format = "sarif" }, wantField: "format"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			testCase.mutate(cfg)

			result := Validate(cfg)
			if testCase.wantField == "" {
				assert.True(t, result.Valid(), "unexpected errors: %v", result.AllMessages())
				return
			}

			require.False(t, result.Valid())
			assert.Equal(t, testCase.wantField, result.Errors[0].Field)
		})
	}
}

func TestValidateWithFile(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Indent = -1

	result := ValidateWithFile(cfg, "/repo/.mdscan.yml")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "/repo/.mdscan.yml: indent: indent must be >= 0", result.Errors[0].Error())
	assert.Equal(t, []string{"error: /repo/.mdscan.yml: indent: indent must be >= 0"}, result.AllMessages())
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Field: "tab_width", Message: "bad", FilePath: "cfg.yaml", Line: 3}
	assert.Equal(t, "cfg.yaml:3: tab_width: bad", err.Error())

	err = &ValidationError{Message: "bad"}
	assert.Equal(t, "bad", err.Error())
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	assert.True(t, Validate(nil).Valid())
}
