package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuild_NoErrors() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ruleset_id", "srd", vb)
	errors.ValidateRange("level", 3, 0, 9, vb)
	errors.ValidateEnum("kind", "spells", []string{"spells", "races"}, vb)

	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestBuild_MessageKeepsReportOrder() {
	err := errors.NewValidationBuilder().
		RequiredField("ruleset_id").
		InvalidField("page", "cannot be negative").
		Field("ruleset_id", "must be a slug").
		Build()

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(
		"INVALID_ARGUMENT: invalid request: ruleset_id is required, must be a slug; page is invalid: cannot be negative",
		err.Error(),
	)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "set", value: "srd"},
		{name: "empty", value: "", wantErr: true},
		{name: "blank", value: "   ", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("ruleset_id", tc.value, vb)
			if tc.wantErr {
				s.Error(vb.Build())
				return
			}
			s.NoError(vb.Build())
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("pool_size", 0, 1, 1000, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "pool_size must be between 1 and 1000")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("overlay_type", "delete", []string{"modify", "homebrew", "disable"}, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "overlay_type must be one of: modify, homebrew, disable")
}
