package httpadapter

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const writeTimeout = 5 * time.Second

// hub fans state out to stream clients. Each client has a one-slot
// mailbox holding the newest state not yet written.
type hub struct {
	mu      sync.Mutex
	clients map[chan stateResp]struct{}
}

func newHub() *hub { return &hub{clients: make(map[chan stateResp]struct{})} }

func (b *hub) add() chan stateResp {
	ch := make(chan stateResp, 1)
	b.mu.Lock()
	b.clients[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *hub) remove(ch chan stateResp) {
	b.mu.Lock()
	delete(b.clients, ch)
	b.mu.Unlock()
}

func (b *hub) broadcast(s stateResp) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.clients {
		offer(ch, s)
	}
}

// offer puts s in the mailbox, replacing an unsent older state.
func offer(ch chan stateResp, s stateResp) {
	for {
		select {
		case ch <- s:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.Log.WithError(err).Warn("stream accept failed")
		return
	}
	defer c.Close(websocket.StatusNormalClosure, "")

	ctx := c.CloseRead(r.Context())
	ch := h.hub.add()
	defer h.hub.remove(ch)
	offer(ch, h.state())

	for {
		select {
		case <-ctx.Done():
			return
		case s := <-ch:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, c, s)
			cancel()
			if err != nil {
				h.Log.WithError(err).Debug("stream client gone")
				return
			}
		}
	}
}
