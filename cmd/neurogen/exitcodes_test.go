package main

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitError(t *testing.T) {
	err := exitError(ExitRenderFailure, "neurogen: writing %s: %v", "out.pdf", io.ErrShortWrite)
	assert.Equal(t, "neurogen: writing out.pdf: short write", err.Error())
	assert.Equal(t, ExitRenderFailure, err.ExitCode())
	assert.True(t, errors.Is(err, io.ErrShortWrite))
}

func TestExitError_GenericMessage(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{ExitRenderFailure, "neurogen: rendering failed"},
		{ExitInternal, "neurogen: internal error"},
		{ExitInvalidArgs, "neurogen: exit code 1"},
	}
	for _, tt := range tests {
		err := exitError(tt.code, "")
		assert.Equal(t, tt.want, err.Error())
		assert.Nil(t, err.Unwrap())
	}
}

func TestExitError_NonErrorTrailingArg(t *testing.T) {
	err := exitError(ExitInvalidArgs, "neurogen: bad %s", "thing")
	assert.Nil(t, err.Unwrap())
}

func TestExitCodeError_As(t *testing.T) {
	var wrapped error = exitError(ExitInternal, "boom")
	var ece *exitCodeError
	assert.True(t, errors.As(wrapped, &ece))
	assert.Equal(t, ExitInternal, ece.code)
}

func TestVersionDefault(t *testing.T) {
	assert.Equal(t, "dev", Version)
}
