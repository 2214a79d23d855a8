package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	assert := assert.New(t)
	defer SetFilter("")

	out := filterOutput("sum of %d weights is %s", 3, "1/1")
	assert.Contains(out, "1/1")

	err := SetFilter("split")
	assert.Nil(err)
	out = filterOutput("sum of %d weights is %s", 3, "1/1")
	assert.Equal("", out)
	out = filterOutput("split %s into %d parts", "100", 3)
	assert.Contains(out, "100")

	err = SetFilter("(?i)SPLIT|sum")
	assert.Nil(err)
	out = filterOutput("Split %s into %d parts", "100", 3)
	assert.Contains(out, "100")
	out = filterOutput("sum of %d weights is %s", 3, "1/1")
	assert.Contains(out, "1/1")
	out = filterOutput("cmp %s %s", "1/2", "2/4")
	assert.Equal("", out)

	err = SetFilter("(")
	assert.NotNil(err)
}

func TestLimiter(t *testing.T) {
	assert := assert.New(t)
	defer SetLimiter(0)

	la := limiterAvailable("share 0 is 50/1")
	assert.True(la)
	SetLimiter(3)
	for i := 0; i < 2; i++ {
		la := limiterAvailable("share 1 is 50/1")
		assert.True(la)
	}
	la = limiterAvailable("share 1 is 50/1")
	assert.True(la)
	la = limiterAvailable("share 1 is 50/1")
	assert.False(la)
	la = limiterAvailable("share 2 is 100/3")
	assert.True(la)
}

func TestLevel(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(0)

	SetLevel(ERROR)
	Printf("info %d", 1)
	Verbosef("verbose %d", 1)
	Errorf("error %d", 1)
	assert.NotContains(buf.String(), "info 1")
	assert.NotContains(buf.String(), "verbose 1")
	assert.Contains(buf.String(), "error 1")

	SetLevel(VERBOSE)
	Printf("info %d", 2)
	Verbosef("verbose %d", 2)
	Debugf("debug %d", 2)
	assert.Contains(buf.String(), "info 2")
	assert.Contains(buf.String(), "verbose 2")
	assert.NotContains(buf.String(), "debug 2")
}
