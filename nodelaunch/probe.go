package nodelaunch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// probeTimeout bounds a single reachability probe.
	probeTimeout = 2 * time.Second

	// clientVersionRequest is the JSON-RPC request used to probe HTTP
	// endpoints. Any answer at all, even a JSON-RPC error, proves a
	// listener is up.
	clientVersionRequest = `{"jsonrpc":"2.0","id":1,"method":"web3_clientVersion","params":[]}`
)

var probeHTTPClient = &http.Client{Timeout: probeTimeout}

// probeFunc reports whether an RPC endpoint answers at uri.
// Swappable in tests.
type probeFunc func(ctx context.Context, uri string) error

// probeURI probes uri for a listening RPC endpoint. ws:// and wss://
// URIs get a websocket handshake; anything else is treated as HTTP.
func probeURI(ctx context.Context, uri string) error {
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("probe: parsing uri %q: %w", uri, err)
	}

	switch u.Scheme {
	case "ws", "wss":
		return probeWebsocket(ctx, uri)
	default:
		return probeHTTP(ctx, uri)
	}
}

func probeWebsocket(ctx context.Context, uri string) error {
	dialCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	conn, resp, err := websocket.DefaultDialer.DialContext(dialCtx, uri, nil)
	if err != nil {
		return fmt.Errorf("probe: websocket dial %s: %w", uri, err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	return conn.Close()
}

func probeHTTP(ctx context.Context, uri string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, strings.NewReader(clientVersionRequest))
	if err != nil {
		return fmt.Errorf("probe: building request for %s: %w", uri, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := probeHTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("probe: %s: %w", uri, err)
	}
	return resp.Body.Close()
}
