package ethereum

import (
	"context"
	"errors"
	"ethwallet/pkg/erc20"
	"fmt"
	"math/big"
	"sync"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type EthService struct {
	client  EthClient
	timeout time.Duration
}

// NewEthService wraps client. A positive timeout bounds every RPC call.
func NewEthService(ethClient EthClient, timeout time.Duration) *EthService {
	return &EthService{
		client:  ethClient,
		timeout: timeout,
	}
}

func (s *EthService) GetBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	balance, err := s.client.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", Classify(err))
	}
	return balance, nil
}

func (s *EthService) GetTokenBalance(ctx context.Context, owner, contract common.Address) (*big.Int, error) {
	data, err := erc20.PackBalanceOf(owner)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out, err := s.client.CallContract(ctx, geth.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("get token balance: %w", Classify(err))
	}

	balance, err := erc20.UnpackBalanceOf(out)
	if err != nil {
		return nil, fmt.Errorf("get token balance of %s: %w", contract.Hex(), err)
	}
	return balance, nil
}

// GetTokenBalances queries every contract concurrently. Balances that could
// be read are returned in input order alongside the joined errors.
func (s *EthService) GetTokenBalances(ctx context.Context, owner common.Address, contracts []common.Address) ([]TokenBalance, error) {
	resultsChan := make(chan tokenResult)

	var wg sync.WaitGroup
	for i, contract := range contracts {
		wg.Add(1)
		go func(i int, contract common.Address) {
			defer wg.Done()
			balance, err := s.GetTokenBalance(ctx, owner, contract)
			if err != nil {
				err = fmt.Errorf("fetching balance of %q: %w", contract.Hex(), err)
			}
			resultsChan <- tokenResult{index: i, balance: balance, err: err}
		}(i, contract)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	balances := make([]*big.Int, len(contracts))
	var aggrErr error
	for result := range resultsChan {
		if result.err != nil {
			aggrErr = errors.Join(aggrErr, result.err)
			continue
		}
		balances[result.index] = result.balance
	}

	results := make([]TokenBalance, 0, len(contracts))
	for i, b := range balances {
		if b != nil {
			results = append(results, TokenBalance{Contract: contracts[i], Balance: b})
		}
	}

	return results, aggrErr
}

func (s *EthService) GetGasPrice(ctx context.Context) (*big.Int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	price, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("get gas price: %w", Classify(err))
	}
	return price, nil
}

func (s *EthService) EstimateGas(ctx context.Context, msg geth.CallMsg) (uint64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	gas, err := s.client.EstimateGas(ctx, msg)
	if err != nil {
		return 0, fmt.Errorf("estimate gas: %w", Classify(err))
	}
	return gas, nil
}

func (s *EthService) PendingNonce(ctx context.Context, account common.Address) (uint64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	nonce, err := s.client.PendingNonceAt(ctx, account)
	if err != nil {
		return 0, fmt.Errorf("get pending nonce: %w", Classify(err))
	}
	return nonce, nil
}

func (s *EthService) ChainID(ctx context.Context) (*big.Int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", Classify(err))
	}
	return id, nil
}

// SubmitTransaction broadcasts a signed transaction and returns its hash.
func (s *EthService) SubmitTransaction(ctx context.Context, tx *types.Transaction) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.client.SendTransaction(ctx, tx); err != nil {
		return "", fmt.Errorf("submit transaction: %w", Classify(err))
	}
	return tx.Hash().Hex(), nil
}

func (s *EthService) TransactionStatus(ctx context.Context, hash common.Hash) (*TransactionStatus, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err == nil {
		status := TxFailed
		if receipt.Status == types.ReceiptStatusSuccessful {
			status = TxSuccess
		}
		var block uint64
		if receipt.BlockNumber != nil {
			block = receipt.BlockNumber.Uint64()
		}
		return &TransactionStatus{
			Hash:        hash.Hex(),
			Status:      status,
			BlockNumber: block,
			GasUsed:     receipt.GasUsed,
		}, nil
	}
	if !errors.Is(err, geth.NotFound) {
		return nil, fmt.Errorf("get transaction receipt: %w", Classify(err))
	}

	_, pending, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, geth.NotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTxNotFound, hash.Hex())
		}
		return nil, fmt.Errorf("get transaction: %w", Classify(err))
	}
	if !pending {
		return nil, fmt.Errorf("%w: %s has no receipt", ErrTxNotFound, hash.Hex())
	}

	return &TransactionStatus{Hash: hash.Hex(), Status: TxPending}, nil
}

func (s *EthService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
