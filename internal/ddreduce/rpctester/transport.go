// Package rpctester implements a Tester adapter and matching agent
// server that speak JSON-RPC over a websocket connection, recovered
// from the teacher's LSP transport stack (cmd/kanso-lsp/main.go wires a
// handler to a persistent connection) but built directly on
// sourcegraph/jsonrpc2 instead of glsp, since glsp's surface is
// LSP-protocol specific (see DESIGN.md). This is local IPC to a single
// external test collaborator, not the distributed execution the spec's
// Non-goals (§1) exclude.
package rpctester

import (
	"io"

	"github.com/gorilla/websocket"
)

// wsStream adapts a *websocket.Conn to io.ReadWriteCloser so it can
// back a jsonrpc2.ObjectStream.
type wsStream struct {
	conn *websocket.Conn
	r    io.Reader
}

func newWSStream(conn *websocket.Conn) *wsStream {
	return &wsStream{conn: conn}
}

func (s *wsStream) Read(p []byte) (int, error) {
	for {
		if s.r == nil {
			_, r, err := s.conn.NextReader()
			if err != nil {
				return 0, err
			}
			s.r = r
		}
		n, err := s.r.Read(p)
		if err == io.EOF {
			s.r = nil
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, err
	}
}

func (s *wsStream) Write(p []byte) (int, error) {
	if err := s.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *wsStream) Close() error {
	return s.conn.Close()
}
