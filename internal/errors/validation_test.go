package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/forgelight/creator-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("level", "must be positive")

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "level: must be positive")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationErrorEmpty() {
	ve := errors.NewValidationError()
	s.Assert().False(ve.HasErrors())
	s.Assert().Nil(ve.ToError())
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be between %v and %v", 0.25, 30).
		RequiredField("ownerID").
		InvalidField("kind", "not a known entity kind")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "ownerID: is required")
	s.Assert().Contains(err.Error(), "kind: is invalid: not a known entity kind")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", "", vb)
	errors.ValidateRequired("name", "  ", vb)
	errors.ValidateRequired("kind", "character", vb)

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().Contains(err.Error(), "ownerID: is required")
	s.Assert().Contains(err.Error(), "name: is required")
	s.Assert().NotContains(err.Error(), "kind")
}

func (s *ValidationTestSuite) TestValidateNonNegative() {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("rank", -1, vb)
	errors.ValidateNonNegative("points", 0, vb)
	errors.ValidateNonNegative("budget", 5, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().Contains(err.Error(), "rank: must not be negative, got -1")
	s.Assert().NotContains(err.Error(), "points")
	s.Assert().NotContains(err.Error(), "budget")
}
