package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, false)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Debug("hidden")
	log.WithField("file", "a.cpp").Info("Processing")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `msg=Processing file=a.cpp`)
	assert.NotContains(t, buf.String(), "time=")
}

func TestVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, true)
	log.Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("dropped")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
