package rpctester

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sourcegraph/jsonrpc2"
	"github.com/tliron/commonlog"

	"ddreduce/internal/ddreduce/outcome"
	"ddreduce/internal/ddreduce/tester"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handler dispatches the "test" RPC method against a wrapped local
// Tester, for use by cmd/ddreduce-agent. One handler instance serves
// any number of concurrent connections; Tester implementations are
// already required to be concurrency-safe (spec §6).
type handler struct {
	t   tester.Tester
	log commonlog.Logger
}

// NewHandler wraps a local Tester as a jsonrpc2.Handler.
func NewHandler(t tester.Tester) jsonrpc2.Handler {
	return &handler{t: t, log: commonlog.GetLogger("ddreduce.rpctester")}
}

func (h *handler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	if req.Method != testMethod || req.Params == nil {
		if req.Notif {
			return
		}
		_ = conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeMethodNotFound,
			Message: "unknown method: " + req.Method,
		})
		return
	}

	var params testRequest
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		_ = conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeInvalidParams,
			Message: err.Error(),
		})
		return
	}

	out, err := h.t.Test(ctx, params.Content, tester.ID(params.ID))
	if err != nil {
		h.log.Errorf("test %v failed: %s", params.ID, err)
		_ = conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeInternalError,
			Message: err.Error(),
		})
		return
	}

	resp := testResponse{Outcome: out.String()}
	if out == outcome.Fail {
		h.log.Debugf("test %v: FAIL", params.ID)
	} else {
		h.log.Debugf("test %v: PASS", params.ID)
	}
	if req.Notif {
		return
	}
	if err := conn.Reply(ctx, req.ID, resp); err != nil {
		h.log.Errorf("reply to %v failed: %s", req.ID, err)
	}
}

// ServeHTTP upgrades an HTTP connection to a websocket and serves the
// "test" method against h for the lifetime of the connection. Mount at
// an endpoint such as /rpc in cmd/ddreduce-agent.
func ServeHTTP(h jsonrpc2.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		stream := jsonrpc2.NewPlainObjectStream(newWSStream(conn))
		rpc := jsonrpc2.NewConn(r.Context(), stream, h)
		<-rpc.DisconnectNotify()
	}
}
