package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "v1.2.3", Normalize("1.2.3"))
	assert.Equal(t, "v1.2.3", Normalize(" v1.2.3 "))
	assert.Equal(t, "", Normalize(""))
}

func TestCurrent(t *testing.T) {
	original := Version
	t.Cleanup(func() { Version = original })

	Version = "1.4"
	assert.Equal(t, "v1.4.0", Current())

	Version = "dev"
	assert.Equal(t, "dev", Current())
}
