package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type useCase struct{}

func TestUseCaseName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "app.useCase", useCaseName(useCase{}))
	assert.Equal(t, "*app.useCase", useCaseName(&useCase{}))
	assert.Equal(t, "int", useCaseName(1))
	assert.Equal(t, "<nil>", useCaseName(nil))
}
