package shared_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammadsarwary/anki-ai-service/internal/api/shared"
)

type decodeTarget struct {
	Term  string `json:"term"  validate:"required"`
	Count int    `json:"count" validate:"gte=1,lte=50"`
}

func (d *decodeTarget) Normalize() {
	if d.Count == 0 {
		d.Count = 5
	}
}

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
}

func TestDecodeAndValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid body with defaults", func(t *testing.T) {
		t.Parallel()
		var target decodeTarget
		err := shared.DecodeAndValidate(newRequest(`{"term":"hello"}`), &target)
		require.NoError(t, err)
		assert.Equal(t, "hello", target.Term)
		assert.Equal(t, 5, target.Count)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		var target decodeTarget
		err := shared.DecodeAndValidate(newRequest(`{"term":`), &target)
		require.Error(t, err)
		var validationErrs validator.ValidationErrors
		assert.False(t, errors.As(err, &validationErrs))
	})

	t.Run("field validation error uses json name", func(t *testing.T) {
		t.Parallel()
		var target decodeTarget
		err := shared.DecodeAndValidate(newRequest(`{"count":99}`), &target)
		require.Error(t, err)
		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)

		fields := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, fe.Field())
		}
		assert.Contains(t, fields, "term")
		assert.Contains(t, fields, "count")
	})
}
