package client

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cmgoes/zigzag-frontend/logger"
)

// RelayClient is a persistent websocket connection to the order relayer.
// Messages are fire-and-forget JSON op frames; the relayer does not ack
// at this layer.
type RelayClient struct {
	mu           sync.Mutex
	conn         *websocket.Conn
	url          string
	headers      map[string]string
	logger       logger.Logger
	pingInterval time.Duration
	stopPing     chan struct{}
	closeOnce    sync.Once
}

// opFrame is the relayer's wire envelope.
type opFrame struct {
	Op   string `json:"op"`
	Args []any  `json:"args"`
}

func NewRelayClient(url string, logger logger.Logger) *RelayClient {
	return &RelayClient{
		url:          url,
		headers:      map[string]string{},
		logger:       logger,
		pingInterval: 50 * time.Second,
		stopPing:     make(chan struct{}),
	}
}

func (rc *RelayClient) SetHeaders(h map[string]string) {
	for k, v := range h {
		rc.headers[k] = v
	}
}

func (rc *RelayClient) Connect() error {
	reqHeaders := make(http.Header)
	for k, v := range rc.headers {
		reqHeaders.Set(k, v)
	}
	conn, resp, err := websocket.DefaultDialer.Dial(rc.url, reqHeaders)
	if err != nil {
		if resp != nil {
			rc.logger.Error("relay_connect_failed", "status", resp.Status, "err", err)
		}
		return err
	}
	rc.conn = conn
	rc.logger.Info("relay_connected", "url", rc.url)

	go rc.startPinger()

	return nil
}

// Close is safe to call more than once.
func (rc *RelayClient) Close() error {
	rc.closeOnce.Do(func() { close(rc.stopPing) })
	if rc.conn != nil {
		return rc.conn.Close()
	}
	return nil
}

// Send writes one op frame. Write errors surface to the caller but the
// connection is left for the caller to close; there is no retry here.
func (rc *RelayClient) Send(method string, params []any) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.conn == nil {
		return websocket.ErrBadHandshake
	}
	return rc.conn.WriteJSON(opFrame{Op: method, Args: params})
}

func (rc *RelayClient) startPinger() {
	ticker := time.NewTicker(rc.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rc.stopPing:
			return
		case <-ticker.C:
			rc.mu.Lock()
			err := rc.conn.WriteMessage(websocket.TextMessage, []byte("PING"))
			rc.mu.Unlock()
			if err != nil {
				rc.logger.Error("relay_ping_failed", "err", err)
				return
			}
		}
	}
}
