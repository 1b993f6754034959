package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterComponentsIdempotent(t *testing.T) {
	assert.NoError(t, RegisterComponents())
	assert.NoError(t, RegisterComponents())
}
