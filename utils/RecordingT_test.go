package utils

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_RecordingT_CapturesAssertFailures(t *testing.T) {
	// arrange
	rt := &RecordingT{}

	// act
	ok := assert.Equal(rt, 1, 2, "because %s", "reasons")

	// assert
	assert.False(t, ok)
	assert.True(t, rt.Failed())
	assert.Len(t, rt.Errors(), 1)
	assert.Contains(t, rt.Output(), "because reasons")
	assert.Equal(t, 0, rt.FailNowCalls())
}

func Test_RecordingT_CountsFailNow(t *testing.T) {
	// arrange
	rt := &RecordingT{}

	// act
	require.True(rt, false)

	// assert
	assert.True(t, rt.Failed())
	assert.Equal(t, 1, rt.FailNowCalls())
}

func Test_RecordingT_Clean(t *testing.T) {
	// arrange
	rt := &RecordingT{}

	// act
	assert.True(rt, true)

	// assert
	assert.False(t, rt.Failed())
	assert.Empty(t, rt.Output())
}
