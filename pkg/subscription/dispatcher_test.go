package subscription

import (
	"testing"

	"github.com/gopcua/opcua/ua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uaflow/uaflow-go/internal/logtest"
	"github.com/uaflow/uaflow-go/pkg/log"
	"github.com/uaflow/uaflow-go/pkg/session"
	"github.com/uaflow/uaflow-go/pkg/session/mocks"
)

type pair struct {
	item  *session.MonitoredItem
	value *ua.DataValue
}

func batch(m int) ([]*session.MonitoredItem, []*ua.DataValue) {
	items := make([]*session.MonitoredItem, m)
	values := make([]*ua.DataValue, m)
	for i := 0; i < m; i++ {
		items[i] = session.NewDataItem("item", ua.NewNumericNodeID(2, uint32(i)))
		items[i].ClientHandle = uint32(i + 1)
		values[i] = &ua.DataValue{Value: ua.MustVariant(int32(i)), Status: ua.StatusOK}
	}
	return items, values
}

func TestDispatcherForwardsEveryPairInOrder(t *testing.T) {
	for _, m := range []int{0, 1, 5} {
		var got []pair
		d := NewDispatcher(CallbackFunc(func(item *session.MonitoredItem, value *ua.DataValue) {
			got = append(got, pair{item, value})
		}))

		items, values := batch(m)
		d.OnDataReceived(nil, items, values)

		require.Len(t, got, m)
		for i := range got {
			assert.Same(t, items[i], got[i].item)
			assert.Same(t, values[i], got[i].value)
		}
	}
}

func TestDispatcherLengthMismatch(t *testing.T) {
	h, logger := logtest.New()
	calls := 0
	d := NewDispatcher(CallbackFunc(func(*session.MonitoredItem, *ua.DataValue) { calls++ }))
	d.logger = logger

	items, values := batch(3)
	d.OnDataReceived(nil, items, values[:2])

	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, h.Count("notification batch length mismatch"))
}

func TestDispatcherNilCallback(t *testing.T) {
	d := NewDispatcher(nil)
	items, values := batch(2)
	d.OnDataReceived(nil, items, values)
}

func TestDispatcherDoesNotRecoverCallbackPanic(t *testing.T) {
	d := NewDispatcher(CallbackFunc(func(*session.MonitoredItem, *ua.DataValue) {
		panic("callback failure")
	}))
	items, values := batch(1)

	assert.PanicsWithValue(t, "callback failure", func() {
		d.OnDataReceived(nil, items, values)
	})
}

func TestDispatcherCapturesNotifications(t *testing.T) {
	sub := mocks.NewMockSubscription(t)
	sub.EXPECT().ID().Return(uint32(9))

	rec := &eventRecorder{}
	d := NewDispatcher(CallbackFunc(func(*session.MonitoredItem, *ua.DataValue) {}))
	d.events = rec
	d.runID = "run-1"

	items, values := batch(2)
	d.OnDataReceived(sub, items, values)

	events := rec.all()
	require.Len(t, events, 2)
	assert.Equal(t, log.CategoryNotification, events[0].Category)
	assert.Equal(t, uint32(9), events[0].SubscriptionID)
	assert.Equal(t, "run-1", events[0].RunID)
	assert.Equal(t, uint32(2), events[1].Notification.ClientHandle)
	assert.Equal(t, int32(1), events[1].Notification.Value)
	assert.Equal(t, "ns=2;i=1", events[1].Notification.NodeID)
}
