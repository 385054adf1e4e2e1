package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "stats not found",
			expected: "NOT_FOUND: stats not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "roll already in progress",
			expected: "FAILED_PRECONDITION: roll already in progress",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("disk full")
	wrapped := errors.Wrap(baseErr, "failed to save stats")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to save stats", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Equal("INTERNAL: failed to save stats: disk full", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("key not found").WithMeta("key", "sheet:default:stats")
	wrapped := errors.Wrap(baseErr, "failed to load stats")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("sheet:default:stats", wrapped.Meta["key"])
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "redis unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"Unavailable", func() *errors.Error { return errors.Unavailable("test") }, errors.CodeUnavailable},
		{"DataLoss", func() *errors.Error { return errors.DataLoss("test") }, errors.CodeDataLoss},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.Assert().True(errors.Is(errors.Wrap(errors.FailedPrecondition("a"), "b"), errors.FailedPrecondition("c")))
	s.Assert().False(errors.NotFound("test").Is(errors.InvalidArgument("test")))
}

func (s *ErrorsTestSuite) TestGetCodeAndMessage() {
	err := errors.NotFound("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))

	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Assert().Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeInvalidArgument, 2},
		{errors.CodeFailedPrecondition, 3},
		{errors.CodeNotFound, 4},
		{errors.CodeUnavailable, 69},
		{errors.CodeInternal, 1},
		{errors.CodeDataLoss, 1},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.ExitCode())
		})
	}
}
