package interactive

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gopcua/opcua/ua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/uaflow/uaflow-go/pkg/reader"
	"github.com/uaflow/uaflow-go/pkg/session/mocks"
)

func TestExecuteRead(t *testing.T) {
	sess := mocks.NewMockSession(t)
	sess.EXPECT().
		ReadValue(mock.Anything, time.Second, ua.TimestampsToReturnBoth, mock.Anything).
		Return(&ua.DataValue{
			EncodingMask: ua.DataValueValue,
			Value:        ua.MustVariant(int32(42)),
			Status:       ua.StatusOK,
		}, nil).
		Once()

	var out bytes.Buffer
	sh := newShell(sess, time.Second, &out)

	assert.False(t, sh.Execute(context.Background(), "read ns=2;s=Counter"))
	assert.Contains(t, out.String(), "ns=2;s=Counter")
	assert.Contains(t, out.String(), "GOOD")
	assert.Contains(t, out.String(), "42")
}

func TestExecuteReadShowsFailures(t *testing.T) {
	sess := mocks.NewMockSession(t)
	sess.EXPECT().
		ReadValue(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("secure channel closed")).
		Once()

	var out bytes.Buffer
	sh := newShell(sess, time.Second, &out)
	sh.Execute(context.Background(), "r i=2258")

	assert.Contains(t, out.String(), "ERROR")
	assert.Contains(t, out.String(), "secure channel closed")
}

func TestExecuteMaxAge(t *testing.T) {
	sess := mocks.NewMockSession(t)
	sess.EXPECT().
		ReadValue(mock.Anything, time.Duration(0), mock.Anything, mock.Anything).
		Return(nil, nil).
		Once()

	var out bytes.Buffer
	sh := newShell(sess, 10*time.Second, &out)

	sh.Execute(context.Background(), "maxage")
	assert.Contains(t, out.String(), "max age: 10s")

	sh.Execute(context.Background(), "maxage soon")
	assert.Contains(t, out.String(), "Invalid duration: soon")

	sh.Execute(context.Background(), "maxage 0")
	assert.Contains(t, out.String(), "max age set to 0s")

	sh.Execute(context.Background(), "read i=2258")
	assert.Contains(t, out.String(), "TIMEOUT")
}

func TestExecuteMisc(t *testing.T) {
	var out bytes.Buffer
	sh := newShell(mocks.NewMockSession(t), time.Second, &out)

	assert.False(t, sh.Execute(context.Background(), "   "))
	assert.False(t, sh.Execute(context.Background(), "read"))
	assert.Contains(t, out.String(), "Usage: read")
	assert.False(t, sh.Execute(context.Background(), "write x"))
	assert.Contains(t, out.String(), "Unknown command: write")
	assert.False(t, sh.Execute(context.Background(), "help"))
	assert.Contains(t, out.String(), "maxage [duration]")
	assert.True(t, sh.Execute(context.Background(), "quit"))
	assert.True(t, sh.Execute(context.Background(), "EXIT"))
}

func TestPrintResults(t *testing.T) {
	bad := ua.StatusBadNodeIDUnknown
	var out bytes.Buffer
	PrintResults(&out, []reader.Result{
		{Identifier: "a", Value: 1.5, Status: new(ua.StatusCode), StatusGood: true},
		{Identifier: "b", Status: &bad},
		{Identifier: "c", DataValue: &ua.DataValue{}},
	})

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "GOOD")
	assert.Contains(t, string(lines[1]), "0x80340000")
	assert.Contains(t, string(lines[2]), "TIMEOUT")
}
