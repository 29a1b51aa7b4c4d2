package uaclient

import (
	"context"
	"sync"
	"time"

	"github.com/gopcua/opcua"
	"github.com/gopcua/opcua/ua"
)

type fakeConn struct {
	mu sync.Mutex

	connectErrs []error
	connects    int
	closes      int

	readResp *ua.ReadResponse
	readErr  error
	lastRead *ua.ReadRequest

	sub      *fakeServerSub
	subErr   error
	interval time.Duration
	ch       chan<- *opcua.PublishNotificationData
}

func (f *fakeConn) Connect(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connects++
	if len(f.connectErrs) > 0 {
		err := f.connectErrs[0]
		f.connectErrs = f.connectErrs[1:]
		return err
	}
	return nil
}

func (f *fakeConn) Read(_ context.Context, req *ua.ReadRequest) (*ua.ReadResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastRead = req
	return f.readResp, f.readErr
}

func (f *fakeConn) Subscribe(_ context.Context, interval time.Duration, ch chan<- *opcua.PublishNotificationData) (serverSubscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subErr != nil {
		return nil, f.subErr
	}
	f.interval = interval
	f.ch = ch
	if f.sub == nil {
		f.sub = &fakeServerSub{id: 1}
	}
	return f.sub, nil
}

func (f *fakeConn) Close(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closes++
	return nil
}

func (f *fakeConn) publish(msg *opcua.PublishNotificationData) {
	f.mu.Lock()
	ch := f.ch
	f.mu.Unlock()
	ch <- msg
}

type fakeServerSub struct {
	mu sync.Mutex

	id       uint32
	requests []*ua.MonitoredItemCreateRequest
	statuses map[uint32]ua.StatusCode
	monErr   error
	cancels  int
}

func (f *fakeServerSub) ID() uint32 { return f.id }

func (f *fakeServerSub) Monitor(_ context.Context, _ ua.TimestampsToReturn, items ...*ua.MonitoredItemCreateRequest) (*ua.CreateMonitoredItemsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.monErr != nil {
		return nil, f.monErr
	}
	f.requests = append(f.requests, items...)
	resp := &ua.CreateMonitoredItemsResponse{}
	for _, item := range items {
		handle := item.RequestedParameters.ClientHandle
		status := ua.StatusOK
		if s, ok := f.statuses[handle]; ok {
			status = s
		}
		res := &ua.MonitoredItemCreateResult{StatusCode: status}
		if status == ua.StatusOK {
			res.MonitoredItemID = 100 + handle
		}
		resp.Results = append(resp.Results, res)
	}
	return resp, nil
}

func (f *fakeServerSub) Cancel(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
	return nil
}

// useFakeConn routes Dial to fc for the duration of the test.
func useFakeConn(t interface{ Cleanup(func()) }, fc *fakeConn) {
	orig := newConn
	newConn = func(Config) (conn, error) { return fc, nil }
	t.Cleanup(func() { newConn = orig })
}
