package core

import (
	"context"
	"errors"
	"ethwallet/internal/ethereum"
	"ethwallet/internal/keystore"
	"ethwallet/internal/network"
	"ethwallet/internal/txbuilder"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type buildFunc func(from common.Address, net network.Network) (txbuilder.UnsignedTransaction, error)

// SendNative transfers the native currency from the current wallet.
func (w *WalletService) SendNative(ctx context.Context, req NativeTransfer) SendResult {
	gasPrice := defaultGasPrice(req.GasPriceGwei)
	gasLimit := req.GasLimit
	if gasLimit == 0 {
		gasLimit = txbuilder.NativeTransferGas
	}

	return w.send(ctx, req.Password, func(from common.Address, net network.Network) (txbuilder.UnsignedTransaction, error) {
		return txbuilder.BuildNativeTransfer(from, req.To, req.Amount, gasPrice, gasLimit, net)
	})
}

// SendToken transfers an ERC-20 token from the current wallet.
func (w *WalletService) SendToken(ctx context.Context, req TokenTransfer) SendResult {
	gasPrice := defaultGasPrice(req.GasPriceGwei)
	gasLimit := req.GasLimit
	if gasLimit == 0 {
		gasLimit = txbuilder.TokenTransferGas
	}

	return w.send(ctx, req.Password, func(from common.Address, net network.Network) (txbuilder.UnsignedTransaction, error) {
		return txbuilder.BuildTokenTransfer(from, req.To, req.Contract, req.Amount, req.Decimals, gasPrice, gasLimit, net)
	})
}

// send runs one transfer through building, signing and submission. The
// sender's lock is held from nonce selection until the node answers, so
// sends from one address never share a nonce. Cancelling ctx aborts the
// send up to submission; after that the transaction may already be
// broadcast and the call runs to completion.
func (w *WalletService) send(ctx context.Context, password string, build buildFunc) SendResult {
	result := SendResult{State: StateIdle}

	wallet, err := w.selected(ctx)
	if err != nil {
		return w.fail(result, err)
	}
	from := walletAddress(wallet)

	net, err := w.networks.Current(ctx)
	if err != nil {
		return w.fail(result, fmt.Errorf("resolve network: %w", err))
	}

	result.State = StateBuildingTx
	unsigned, err := build(from, net)
	if err != nil {
		return w.fail(result, err)
	}

	client, err := w.dialer.Dial(ctx, net.RPCURL)
	if err != nil {
		return w.fail(result, err)
	}

	unlock, err := w.senderLocks.Lock(ctx, from.Hex())
	if err != nil {
		return w.fail(result, err)
	}
	defer unlock()

	nonce, err := w.nextNonce(ctx, client, net.ChainID, from)
	if err != nil {
		return w.fail(result, err)
	}
	unsigned = unsigned.WithNonce(nonce)

	result.State = StateSigning
	km, err := w.keyMaterial(ctx, wallet)
	if err != nil {
		return w.fail(result, err)
	}

	var signed *txbuilder.SignedTransaction
	err = keystore.WithKey(km, []byte(password), from, func(h *keystore.KeyHandle) error {
		signed, err = txbuilder.Sign(unsigned, h)
		return err
	})
	if err != nil {
		return w.fail(result, err)
	}

	if err := ctx.Err(); err != nil {
		return w.fail(result, fmt.Errorf("send abandoned before submission: %w", err))
	}

	result.State = StateSubmitting
	w.logs.Infow("submitting transaction",
		"from", from.Hex(),
		"to", unsigned.To.Hex(),
		"nonce", nonce,
		"chain_id", net.ChainID.String(),
		"hash", signed.Hash.Hex())

	hash, err := client.SubmitTransaction(context.WithoutCancel(ctx), signed.Transaction())
	if err != nil {
		w.resetNonce(net.ChainID, from)
		return w.fail(result, err)
	}
	w.commitNonce(net.ChainID, from, nonce+1)

	result.State = StateConfirmed
	result.Code = CodeOK
	result.Payload = hash
	result.TxHash = hash

	w.logs.Infow("transaction submitted",
		"from", from.Hex(),
		"hash", hash,
		"explorer", net.TxURL(hash))
	return result
}

// fail maps err onto the status/payload pair callers expect. Node rejections
// keep their status code and carry no payload.
func (w *WalletService) fail(result SendResult, err error) SendResult {
	w.logs.Errorw("send failed", "state", result.State, "error", err)

	result.State = StateFailed
	result.Code = CodeLocalError
	result.Payload = err.Error()

	var chainErr *ethereum.ChainError
	if errors.As(err, &chainErr) {
		switch chainErr.Kind {
		case ethereum.ClientError, ethereum.ServerError:
			result.Code = chainErr.Code
			result.Payload = ""
		default:
			result.Payload = chainErr.Message
		}
	}
	if errors.Is(err, ErrNoWalletSelected) {
		result.Payload = ErrNoWalletSelected.Error()
	}
	return result
}

func nonceKey(chainID *big.Int, addr common.Address) string {
	return chainID.String() + ":" + strings.ToLower(addr.Hex())
}

// nextNonce is the node's pending nonce raised to the local high-water mark.
// Callers hold the sender lock.
func (w *WalletService) nextNonce(ctx context.Context, client ChainClient, chainID *big.Int, from common.Address) (uint64, error) {
	pending, err := client.PendingNonce(ctx, from)
	if err != nil {
		return 0, fmt.Errorf("get pending nonce: %w", err)
	}

	w.nonceMu.Lock()
	defer w.nonceMu.Unlock()

	if local, ok := w.nonces[nonceKey(chainID, from)]; ok && local > pending {
		return local, nil
	}
	return pending, nil
}

func (w *WalletService) commitNonce(chainID *big.Int, from common.Address, next uint64) {
	w.nonceMu.Lock()
	w.nonces[nonceKey(chainID, from)] = next
	w.nonceMu.Unlock()
}

func (w *WalletService) resetNonce(chainID *big.Int, from common.Address) {
	w.nonceMu.Lock()
	delete(w.nonces, nonceKey(chainID, from))
	w.nonceMu.Unlock()
}

func defaultGasPrice(gwei string) string {
	if strings.TrimSpace(gwei) == "" {
		return DefaultGasPriceGwei
	}
	return gwei
}
