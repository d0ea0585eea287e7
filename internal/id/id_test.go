package id_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/quiz/internal/id"
)

func TestGenerateID(t *testing.T) {
	a := id.GenerateID()
	b := id.GenerateID()

	parsed, err := uuid.Parse(a)
	require.NoError(t, err, "expected %q to be a valid id", a)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.NotEqual(t, a, b, "expected different IDs")
}
