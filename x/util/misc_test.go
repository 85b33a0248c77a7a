package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionStrings(t *testing.T) {
	short := GetGitShortHash()
	assert.Len(t, short, 7)

	full := GetFullVersion()
	assert.Contains(t, full, "-"+short)
}
