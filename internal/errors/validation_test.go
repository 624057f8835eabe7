package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuildOrdersFields() {
	err := errors.NewValidationBuilder().
		RequiredField("name").
		Field("birthdate", "is invalid").
		Field("name", "is too short").
		Build()
	s.Require().Error(err)
	s.Equal("validation failed: birthdate: is invalid; name: is required, is too short", errors.GetMessage(err))

	fields, ok := errors.GetMeta(err)[errors.MetaFields].(map[string][]string)
	s.Require().True(ok)
	s.Equal([]string{"is required", "is too short"}, fields["name"])
}

func (s *ValidationTestSuite) TestMaxLengthCountsCharacters() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", "Pokémon", 7, vb)
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("name").Fieldf("limit", "must be between %d and %d", 1, 500)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateHelpers() {
	testCases := []struct {
		name      string
		check     func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required ok", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "Ash", vb) }, false},
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "  ", vb) }, true},
		{"max length ok", func(vb *errors.ValidationBuilder) { errors.ValidateMaxLength("name", "Misty", 10, vb) }, false},
		{"max length exceeded", func(vb *errors.ValidationBuilder) { errors.ValidateMaxLength("name", "Brockbrockbrock", 10, vb) }, true},
		{"positive ok", func(vb *errors.ValidationBuilder) { errors.ValidatePositive("api_id", 25, vb) }, false},
		{"positive zero", func(vb *errors.ValidationBuilder) { errors.ValidatePositive("api_id", 0, vb) }, true},
		{"range ok", func(vb *errors.ValidationBuilder) { errors.ValidateRange("limit", 100, 1, 500, vb) }, false},
		{"range exceeded", func(vb *errors.ValidationBuilder) { errors.ValidateRange("limit", 501, 1, 500, vb) }, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.check(vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}
