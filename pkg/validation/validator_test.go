package validation

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
)

type signupForm struct {
	Username string `json:"username" binding:"required" validate:"required"`
	DOB      string `json:"dob" validate:"required,dob"`
}

type scoreForm struct {
	Marks map[string]int `json:"marks" validate:"required,dive,score"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

func TestDOBRule(t *testing.T) {
	v := newValidator()

	cases := []struct {
		dob string
		ok  bool
	}{
		{"2000-01-01", true},
		{"1960-01-01", true},
		{"1959-12-31", false},
		{"01/01/2000", false},
		{time.Now().AddDate(0, 0, 2).Format(entity.DateLayout), false},
	}
	for _, tc := range cases {
		err := v.Struct(signupForm{Username: "alice", DOB: tc.dob})
		if tc.ok {
			assert.NoError(t, err, tc.dob)
		} else {
			require.Error(t, err, tc.dob)
			assert.Equal(t, "must be a date between 1960-01-01 and today", ToDetails(err)["dob"])
		}
	}
}

func TestScoreAlias(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(scoreForm{Marks: map[string]int{"FOML": 0, "AAI": 100}}))

	err := v.Struct(scoreForm{Marks: map[string]int{"FOML": 101}})
	require.Error(t, err)
	assert.Equal(t, "must be between 0 and 100", ToDetails(err)["marks[FOML]"])
}

func TestMissingFields(t *testing.T) {
	v := newValidator()

	err := v.Struct(signupForm{DOB: "2000-01-01"})
	require.Error(t, err)
	assert.True(t, MissingFields(err))
	assert.Equal(t, "is required", ToDetails(err)["username"])

	err = v.Struct(signupForm{Username: "a", DOB: "1900-01-01"})
	require.Error(t, err)
	assert.False(t, MissingFields(err))
}

func TestToDetailsFallback(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(assert.AnError))
}
