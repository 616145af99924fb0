package spincube

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := newDefaultLogger("levels-test", false, &buf)

	log.Debugf("hidden %d", 1)
	assert.False(t, log.DebugEnabled())
	assert.Empty(t, buf.String())

	log.Infof("camera at %v", 5)
	assert.Contains(t, buf.String(), "[levels-test]")
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "camera at 5")

	log.SetDebug(true)
	assert.True(t, log.DebugEnabled())
	buf.Reset()
	log.Debugf("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")

	buf.Reset()
	log.Warnf("careful")
	assert.Contains(t, buf.String(), "WARNING")
	log.Errorf("broken")
	assert.Contains(t, buf.String(), "ERROR")
}

func TestApp_Logger(t *testing.T) {
	var nilApp *App
	assert.NotNil(t, nilApp.Logger())

	app := NewAppBuilder().Build()
	assert.IsType(t, &nopLogger{}, app.Logger())

	app = NewAppBuilder().UseModule(LoggingModule{Prefix: "app-logger-test"}).Build()
	assert.IsType(t, &DefaultLogger{}, app.Logger())
	assert.Equal(t, app.Logger(), app.Commands().Logger())
}
