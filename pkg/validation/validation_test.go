package validation_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/pkg/validation"
)

type linkForm struct {
	Website string `validate:"url_or_empty"`
}

func TestURLOrEmpty(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	assert.NoError(t, v.Struct(linkForm{Website: ""}))
	assert.NoError(t, v.Struct(linkForm{Website: "https://example.com"}))
	assert.NoError(t, v.Struct(linkForm{Website: "http://example.com/path"}))
	assert.Error(t, v.Struct(linkForm{Website: "ftp://example.com"}))
	assert.Error(t, v.Struct(linkForm{Website: "example.com"}))
	assert.Error(t, v.Struct(linkForm{Website: "not a url"}))
}

func TestNormalizeStringSlice(t *testing.T) {
	assert.Equal(t,
		[]string{"a", "b"},
		validation.NormalizeStringSlice([]string{" a ", "", "  ", "b"}),
	)
	assert.Empty(t, validation.NormalizeStringSlice(nil))
}
