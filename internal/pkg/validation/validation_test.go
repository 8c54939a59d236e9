package validation_test

import (
	"errors"
	"testing"

	"github.com/Leopold1975/recipes/internal/pkg/validation"
	"github.com/stretchr/testify/require"
)

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	Name     string `json:"name"     validate:"notblank"`
}

type recipeRequest struct {
	Title string  `json:"title" validate:"required"`
	Price string  `json:"price" validate:"price"`
	Tags  []int64 `json:"tags"  validate:"dive,gt=0"`
}

func fields(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *validation.Error
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)

	return verr.Fields
}

func TestValidateOK(t *testing.T) {
	v := validation.New()

	err := v.Validate(registerRequest{Email: "test@lucie.com", Password: "testpass", Name: "Test"})
	require.NoError(t, err)
}

func TestValidateFields(t *testing.T) {
	v := validation.New()

	f := fields(t, v.Validate(registerRequest{Email: "nope", Password: "pw", Name: "  "}))
	require.Equal(t, "must be a valid email address", f["email"])
	require.Equal(t, "must be at least 5 characters", f["password"])
	require.Equal(t, "may not be blank", f["name"])
}

func TestValidatePrice(t *testing.T) {
	v := validation.New()

	for _, p := range []string{"5", "5.0", "15.50", "999.99"} {
		require.NoError(t, v.Validate(recipeRequest{Title: "Cake", Price: p}), p)
	}

	for _, p := range []string{"", "1000", "1.234", "-1", "abc", "1."} {
		f := fields(t, v.Validate(recipeRequest{Title: "Cake", Price: p}))
		require.Contains(t, f, "price", p)
	}
}

func TestValidateSliceIndex(t *testing.T) {
	v := validation.New()

	f := fields(t, v.Validate(recipeRequest{Title: "Cake", Price: "1", Tags: []int64{1, 0}}))
	require.Equal(t, "must be greater than 0", f["tags[1]"])
}

func TestErrorMessage(t *testing.T) {
	err := validation.FieldError("name", "may not be blank")
	require.Equal(t, "validation failed: name may not be blank", err.Error())
}
