package rpctester

import (
	"context"

	"github.com/gorilla/websocket"
	"github.com/sourcegraph/jsonrpc2"

	"ddreduce/internal/ddreduce/outcome"
	"ddreduce/internal/ddreduce/tester"
)

// Tester dispatches test calls to a remote agent (see cmd/ddreduce-agent)
// over a JSON-RPC connection, fulfilling the Tester contract (spec §6)
// without spawning a subprocess per call - useful when the
// interestingness test has expensive startup cost and is better served
// by a long-lived process.
type Tester struct {
	conn *jsonrpc2.Conn
}

// Dial connects to an agent listening at a ws:// or wss:// URL.
func Dial(ctx context.Context, url string) (*Tester, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	stream := jsonrpc2.NewPlainObjectStream(newWSStream(conn))
	rpc := jsonrpc2.NewConn(ctx, stream, nil)
	return &Tester{conn: rpc}, nil
}

// Test implements tester.Tester.
func (t *Tester) Test(ctx context.Context, content string, id tester.ID) (outcome.Outcome, error) {
	var resp testResponse
	err := t.conn.Call(ctx, testMethod, testRequest{Content: content, ID: []string(id)}, &resp)
	if err != nil {
		return outcome.Pass, err
	}
	if resp.Outcome == outcome.Fail.String() {
		return outcome.Fail, nil
	}
	return outcome.Pass, nil
}

// Close disconnects from the agent.
func (t *Tester) Close() error {
	return t.conn.Close()
}

var _ tester.Tester = (*Tester)(nil)
