package logrus

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unkn0wn-root/tiercache"
)

func TestLogrusLogger(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := LogrusLogger{E: logrus.NewEntry(base).WithField("component", "users")}

	l.Debug("stored, pushing", tiercache.Fields{"cache": "mem", "target": "redis"})
	boom := errors.New("quota")
	l.Warn("push failed", tiercache.Fields{"err": boom})
	l.Error("no fields", nil)

	require.Len(t, hook.AllEntries(), 3)
	first := hook.AllEntries()[0]
	assert.Equal(t, logrus.DebugLevel, first.Level)
	assert.Equal(t, "stored, pushing", first.Message)
	assert.Equal(t, "mem", first.Data["cache"])
	assert.Equal(t, "redis", first.Data["target"])
	assert.Equal(t, "users", first.Data["component"])

	assert.Equal(t, logrus.WarnLevel, hook.AllEntries()[1].Level)
	assert.Equal(t, boom, hook.AllEntries()[1].Data["err"])

	last := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, last.Level)
	assert.Len(t, last.Data, 1)
}
