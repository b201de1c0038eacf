package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
)

type sample struct {
	Title   string   `json:"title" validate:"required,max=5"`
	Email   string   `json:"email" validate:"omitempty,email"`
	Kind    string   `json:"kind" validate:"omitempty,oneof=a b"`
	UserIDs []string `json:"userIds" validate:"min=1,dive,required"`
}

func TestFields(t *testing.T) {
	v := New()

	fields, err := Fields(v, sample{Title: "too long", Email: "nope", Kind: "c", UserIDs: []string{"u1", ""}})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"title":      "must be at most 5 characters",
		"email":      "must be a valid email address",
		"kind":       "must be one of: a b",
		"userIds[1]": "is required",
	}, fields)
}

func TestFields_EmptySlice(t *testing.T) {
	fields, err := Fields(New(), sample{Title: "ok"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"userIds": "must not be empty"}, fields)
}

func TestFields_Valid(t *testing.T) {
	fields, err := Fields(New(), sample{Title: "ok", UserIDs: []string{"u1"}})

	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestFields_NotAStruct(t *testing.T) {
	_, err := Fields(New(), 42)
	assert.Error(t, err)
}

func TestError(t *testing.T) {
	err := &Error{Fields: map[string]string{"phone": "is required", "email": "is required"}}

	assert.Equal(t, "invalid form: email: is required; phone: is required", err.Error())
	assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
}
