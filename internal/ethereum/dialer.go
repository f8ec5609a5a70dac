package ethereum

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// Dialer keeps one client per RPC endpoint for the life of the process.
type Dialer struct {
	logs    *zap.SugaredLogger
	timeout time.Duration

	mu      sync.Mutex
	clients map[string]*ethclient.Client
}

func NewDialer(logger *zap.SugaredLogger, timeout time.Duration) *Dialer {
	return &Dialer{
		logs:    logger,
		timeout: timeout,
		clients: make(map[string]*ethclient.Client),
	}
}

func (d *Dialer) Dial(ctx context.Context, rpcURL string) (*EthService, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if client, ok := d.clients[rpcURL]; ok {
		return NewEthService(client, d.timeout), nil
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc endpoint: %w", Classify(err))
	}
	d.clients[rpcURL] = client

	d.logs.Infow("connected to rpc endpoint", "endpoints", len(d.clients))
	return NewEthService(client, d.timeout), nil
}

func (d *Dialer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for url, client := range d.clients {
		client.Close()
		delete(d.clients, url)
	}
}
