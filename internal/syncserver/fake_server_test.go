// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncserver

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Syncano/syncano-dotnet-sub001/internal/adapter"
	"github.com/Syncano/syncano-dotnet-sub001/internal/logger"
	"github.com/Syncano/syncano-dotnet-sub001/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

const (
	validKey      = "valid-key"
	testInstance  = "test-instance"
	missingTarget = "missing"
	hangMethod    = "test.hang"
)

// ── fake sync server ─────────────────────────────────────────────────────────

type fakeConn struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
}

func (c *fakeConn) write(f Frame) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteJSON(f)
}

// fakeServer speaks the sync protocol. It records every inbound frame and
// answers each request on its own goroutine so responses may be reordered.
type fakeServer struct {
	t   *testing.T
	srv *httptest.Server

	mu       sync.Mutex
	conns    map[*fakeConn]struct{}
	received []Frame
	nextData int
	nextSess int
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	s := &fakeServer{t: t, conns: make(map[*fakeConn]struct{})}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(func() {
		s.killAll()
		s.srv.Close()
	})
	return s
}

func (s *fakeServer) url() string {
	return "ws" + strings.TrimPrefix(s.srv.URL, "http")
}

func (s *fakeServer) serve(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{}
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	conn := &fakeConn{ws: ws}

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		_ = ws.Close()
	}()

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			return
		}
		var f Frame
		if err = json.Unmarshal(data, &f); err != nil {
			return
		}

		s.mu.Lock()
		s.received = append(s.received, f)
		s.mu.Unlock()

		go s.handle(conn, f)
	}
}

func (s *fakeServer) handle(conn *fakeConn, f Frame) {
	reply := func(payload any) {
		raw, _ := json.Marshal(payload)
		_ = conn.write(Frame{Type: FrameResponse, RequestID: f.RequestID, Payload: raw})
	}
	reject := func(code string) {
		_ = conn.write(Frame{
			Type:      FrameResponse,
			RequestID: f.RequestID,
			Error:     &adapter.ServerError{Code: code, Message: code},
		})
	}

	switch f.Type {
	case FrameAuth:
		var p authParams
		_ = json.Unmarshal(f.Payload, &p)
		if p.APIKey != validKey {
			reject("unauthorized")
			return
		}
		reply(nil)

	case FrameSession:
		var p sessionParams
		_ = json.Unmarshal(f.Payload, &p)
		s.mu.Lock()
		s.nextSess++
		id := fmt.Sprintf("session-%d", s.nextSess)
		s.mu.Unlock()
		reply(sessionResult{SessionID: id, Timezone: p.Timezone})

	case FrameCall:
		s.handleCall(f, reply, reject)
	}
}

func (s *fakeServer) handleCall(f Frame, reply func(any), reject func(string)) {
	switch f.Method {
	case methodProjectSubscribe, methodProjectUnsubscribe, methodCollectionSubscribe, methodCollectionUnsubscribe:
		var p subscriptionParams
		_ = json.Unmarshal(f.Payload, &p)
		if p.ProjectID == missingTarget || p.CollectionID == missingTarget {
			reject("not_found")
			return
		}
		reply(true)

	case "data.get_one":
		var ref models.DataObjectRef
		_ = json.Unmarshal(f.Payload, &ref)
		time.Sleep(time.Duration(rand.Intn(20)) * time.Millisecond)
		reply(models.DataObject{ID: ref.DataID, Title: "title-" + ref.DataID})

	case "data.new":
		var req models.NewDataObjectRequest
		_ = json.Unmarshal(f.Payload, &req)
		s.mu.Lock()
		s.nextData++
		obj := models.DataObject{ID: fmt.Sprintf("%d", s.nextData), Title: req.Title}
		s.mu.Unlock()
		reply(obj)
		s.push(models.NotificationNew, models.CollectionTarget(req.CollectionRef), &obj)

	case hangMethod:
		// never answered

	default:
		reject("unknown_method")
	}
}

// push sends a notification to every connection, subscribed or not, so the
// client-side scope filtering is what the tests observe.
func (s *fakeServer) push(kind models.NotificationKind, target models.Target, obj *models.DataObject) {
	raw, _ := json.Marshal(notificationPayload{Kind: kind, Target: target, Data: obj})
	for _, c := range s.connections() {
		_ = c.write(Frame{Type: FrameNotification, Payload: raw})
	}
}

func (s *fakeServer) sendRaw(msg string) {
	for _, c := range s.connections() {
		c.writeMu.Lock()
		_ = c.ws.WriteMessage(websocket.TextMessage, []byte(msg))
		c.writeMu.Unlock()
	}
}

func (s *fakeServer) killAll() {
	for _, c := range s.connections() {
		_ = c.ws.Close()
	}
}

func (s *fakeServer) connections() []*fakeConn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*fakeConn, 0, len(s.conns))
	for c := range s.conns {
		out = append(out, c)
	}
	return out
}

func (s *fakeServer) frames() []Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Frame(nil), s.received...)
}

func (s *fakeServer) countMethod(method string) int {
	n := 0
	for _, f := range s.frames() {
		if f.Method == method {
			n++
		}
	}
	return n
}

// ── scripted transport ───────────────────────────────────────────────────────

// scriptedTransport is an in-memory Transport. respond computes the frames
// delivered back for each sent frame.
type scriptedTransport struct {
	mu      sync.Mutex
	sent    []Frame
	frames  chan Frame
	done    chan struct{}
	closed  bool
	err     error
	respond func(Frame) []Frame
}

func newScriptedTransport(respond func(Frame) []Frame) *scriptedTransport {
	return &scriptedTransport{
		frames:  make(chan Frame, 64),
		done:    make(chan struct{}),
		respond: respond,
	}
}

// acceptAll acknowledges auth, session and every call with an empty payload.
func acceptAll(f Frame) []Frame {
	switch f.Type {
	case FrameSession:
		raw, _ := json.Marshal(sessionResult{SessionID: "scripted-session"})
		return []Frame{{Type: FrameResponse, RequestID: f.RequestID, Payload: raw}}
	default:
		return []Frame{{Type: FrameResponse, RequestID: f.RequestID}}
	}
}

func (s *scriptedTransport) dialer() Dialer {
	return func(context.Context, Settings, *logger.Logger) (Transport, error) {
		return s, nil
	}
}

func (s *scriptedTransport) Send(_ context.Context, f Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return adapter.ErrConnectionClosed
	}
	s.sent = append(s.sent, f)
	if s.respond != nil {
		for _, r := range s.respond(f) {
			s.frames <- r
		}
	}
	return nil
}

func (s *scriptedTransport) inject(f Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.frames <- f
	}
}

func (s *scriptedTransport) Frames() <-chan Frame  { return s.frames }
func (s *scriptedTransport) Done() <-chan struct{} { return s.done }

func (s *scriptedTransport) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		return nil
	}
	if s.err == nil {
		return adapter.ErrConnectionClosed
	}
	return s.err
}

func (s *scriptedTransport) Close() error {
	s.fail(nil)
	return nil
}

func (s *scriptedTransport) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.done)
	close(s.frames)
}

func (s *scriptedTransport) sentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func testSettings(address string) Settings {
	s := DefaultSettings(address)
	s.HandshakeTimeout = 2 * time.Second
	s.PingInterval = 0
	s.ReadTimeout = 0
	s.RequestTimeout = 2 * time.Second
	s.ObserverBuffer = 16
	return s
}

func newTestClient(t *testing.T, address string, opts ...Option) *Client {
	t.Helper()
	c := New(testSettings(address), logger.Nop(), opts...)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func connectAndLogin(t *testing.T, c *Client) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))
	require.NoError(t, c.Login(ctx, validKey, testInstance))
	require.Equal(t, StateAuthenticated, c.State())
}

func receive(t *testing.T, o *Observer, within time.Duration) models.NotificationEnvelope {
	t.Helper()
	select {
	case env, ok := <-o.C():
		require.True(t, ok, "observer channel closed")
		return env
	case <-time.After(within):
		t.Fatalf("no notification within %s", within)
		return models.NotificationEnvelope{}
	}
}

func assertSilent(t *testing.T, o *Observer, within time.Duration) {
	t.Helper()
	select {
	case env, ok := <-o.C():
		if ok {
			t.Fatalf("unexpected notification: %+v", env)
		}
	case <-time.After(within):
	}
}
