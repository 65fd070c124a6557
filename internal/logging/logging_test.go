package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nuvias-uc/hubctl/internal/config"
	"github.com/nuvias-uc/hubctl/internal/logging"
)

func TestNewWithWriter_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.NewWithWriter(&buf, config.LoggingConfig{Level: "info", Format: "text"}, false)

	log.Info("hello", "key", "value")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "key=value")
}

func TestNewWithWriter_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.NewWithWriter(&buf, config.LoggingConfig{Level: "info", Format: "json"}, false)

	log.Info("hello")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.NewWithWriter(&buf, config.LoggingConfig{Level: "error", Format: "text"}, false)

	log.Debug("quiet")
	log.Info("also quiet")
	assert.Empty(t, buf.String())

	log.Error("loud")
	assert.Contains(t, buf.String(), "msg=loud")
}

func TestNewWithWriter_VerboseOverride(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.NewWithWriter(&buf, config.LoggingConfig{Level: "error", Format: "text"}, true)

	log.Debug("now visible")
	assert.Contains(t, buf.String(), "msg=now visible")
}

func TestNewWithWriter_UnknownLevelDefaultsToInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.NewWithWriter(&buf, config.LoggingConfig{Level: "shout", Format: "text"}, false)

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
