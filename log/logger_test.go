package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New(DefaultOptions().
		WithLevel(DebugLevel).
		WithOutputEncoder(ConsoleOutputEncoder).
		WithCallerEncoder(ShortCallerEncoder).
		WithNamed("tt"))
	assert.NotNil(t, logger)
	logger.Infof("hello %s", "world")
	logger.Debugw("hello", "k", "v")

	named := logger.Named("ttt")
	assert.NotNil(t, named)
	named.Warnf("warn %d", 1)
}

func TestNop(t *testing.T) {
	logger := Nop()
	assert.NotNil(t, logger)
	logger.Errorf("dropped %s", "entirely")
	assert.NotNil(t, logger.Named("tt"))
}
