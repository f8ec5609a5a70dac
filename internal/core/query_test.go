package core_test

import (
	"context"
	"encoding/base64"
	"errors"
	"ethwallet/internal/core"
	"ethwallet/internal/core/fake"
	"ethwallet/internal/ethereum"
	"ethwallet/internal/keystore"
	"ethwallet/internal/network"
	"ethwallet/internal/repository"
	"ethwallet/internal/txbuilder"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("WalletService queries", func() {
	var (
		fakeWallets  *fake.WalletRepository
		fakeNetworks *fake.NetworkProvider
		fakeDialer   *fake.ChainDialer
		fakeClient   *fake.ChainClient
		ctx          context.Context

		service *core.WalletService

		fakeErr error
	)

	BeforeEach(func() {
		fakeWallets = new(fake.WalletRepository)
		fakeNetworks = new(fake.NetworkProvider)
		fakeDialer = new(fake.ChainDialer)
		fakeClient = new(fake.ChainClient)
		ctx = context.Background()

		fakeWallets.GetSelectedWalletReturns(repository.Wallet{
			ID:         "w1",
			Address:    testKeyAddress,
			IsSelected: true,
		}, nil)
		fakeNetworks.CurrentReturns(network.BSC(), nil)
		fakeDialer.DialReturns(fakeClient, nil)

		service = core.NewWalletService(
			zap.NewNop().Sugar(),
			new(fake.KeystoreStore),
			fakeWallets,
			fakeNetworks,
			fakeDialer,
			new(fake.JWTIssuer),
			keystore.LightScryptParams)

		fakeErr = errors.New("fake error")
	})

	Describe("GetBalance", func() {
		It("formats the native balance with four digits, truncating", func() {
			wei, _ := new(big.Int).SetString("1234567890000000000", 10)
			fakeClient.GetBalanceReturns(wei, nil)

			balance, err := service.GetBalance(ctx, "", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal("1.2345"))

			_, owner := fakeClient.GetBalanceArgsForCall(0)
			Expect(owner).To(Equal(common.HexToAddress(testKeyAddress)))
		})

		It("scales token balances by their decimals", func() {
			fakeClient.GetTokenBalanceReturns(big.NewInt(2_500_000), nil)

			balance, err := service.GetBalance(ctx, usdt, 6)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal("2.5"))

			_, _, contract := fakeClient.GetTokenBalanceArgsForCall(0)
			Expect(contract).To(Equal(common.HexToAddress(usdt)))
		})

		It("rejects a malformed contract before dialing", func() {
			_, err := service.GetBalance(ctx, "usdt", 6)
			Expect(err).To(MatchError(txbuilder.ErrInvalidAddress))
			Expect(fakeDialer.DialCallCount()).To(Equal(0))
		})

		It("propagates node failures", func() {
			fakeClient.GetBalanceReturns(nil, fakeErr)
			_, err := service.GetBalance(ctx, "", 0)
			Expect(err).To(MatchError(fakeErr))
		})

		It("requires a selected wallet", func() {
			fakeWallets.GetSelectedWalletReturns(repository.Wallet{}, repository.ErrWalletNotFound)
			_, err := service.GetBalance(ctx, "", 0)
			Expect(err).To(MatchError(core.ErrNoWalletSelected))
		})
	})

	Describe("TokenBalances", func() {
		It("returns what could be read alongside the errors", func() {
			fakeClient.GetTokenBalancesReturns([]ethereum.TokenBalance{
				{Contract: common.HexToAddress(usdt), Balance: big.NewInt(1_000_000)},
			}, fakeErr)

			amounts, err := service.TokenBalances(ctx, []core.TokenQuery{
				{Contract: usdt, Decimals: 6},
				{Contract: recipient, Decimals: 18},
			})
			Expect(err).To(MatchError(fakeErr))
			Expect(amounts).To(Equal([]core.TokenAmount{
				{Contract: common.HexToAddress(usdt).Hex(), Amount: "1"},
			}))
		})
	})

	Describe("GasPrice", func() {
		It("reports gwei", func() {
			fakeClient.GetGasPriceReturns(big.NewInt(24_981_836_000), nil)
			price, err := service.GasPrice(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(price).To(Equal("24.9818"))
		})
	})

	Describe("EstimateGas", func() {
		It("returns the estimated gas units, priced at the given gas price", func() {
			fakeClient.EstimateGasReturns(21000, nil)

			gas, err := service.EstimateGas(ctx, recipient, "2")
			Expect(err).NotTo(HaveOccurred())
			Expect(gas).To(Equal("21000"))

			_, msg := fakeClient.EstimateGasArgsForCall(0)
			Expect(msg.GasPrice).To(Equal(big.NewInt(2_000_000_000)))
			Expect(*msg.To).To(Equal(common.HexToAddress(recipient)))
			Expect(msg.From).To(Equal(common.HexToAddress(testKeyAddress)))
			Expect(msg.Value.Sign()).To(BeZero())
		})

		It("defaults the gas price to one gwei", func() {
			fakeClient.EstimateGasReturns(52_000, nil)
			gas, err := service.EstimateGas(ctx, recipient, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(gas).To(Equal("52000"))

			_, msg := fakeClient.EstimateGasArgsForCall(0)
			Expect(msg.GasPrice).To(Equal(big.NewInt(1_000_000_000)))
		})

		It("rejects a malformed recipient before dialing", func() {
			_, err := service.EstimateGas(ctx, "0x12", "")
			Expect(err).To(MatchError(txbuilder.ErrInvalidAddress))
			Expect(fakeDialer.DialCallCount()).To(Equal(0))
		})
	})

	Describe("ReceiveAddress", func() {
		It("returns the address with a PNG QR code", func() {
			info, err := service.ReceiveAddress(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Address).To(Equal(testKeyAddress))
			Expect(info.Network).To(Equal("BSC"))

			png, err := base64.StdEncoding.DecodeString(info.QRCode)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(png[:4])).To(Equal("\x89PNG"))
		})
	})

	Describe("TransactionStatus", func() {
		hash := "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"

		It("links the receipt to the explorer", func() {
			fakeClient.TransactionStatusReturns(&ethereum.TransactionStatus{
				Hash:        hash,
				Status:      ethereum.TxSuccess,
				BlockNumber: 100,
				GasUsed:     21000,
			}, nil)

			status, err := service.TransactionStatus(ctx, hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(status.Status).To(Equal("success"))
			Expect(status.ExplorerURL).To(Equal("https://bscscan.com/tx/" + hash))
		})

		It("passes ErrTxNotFound through", func() {
			fakeClient.TransactionStatusReturns(nil, ethereum.ErrTxNotFound)
			_, err := service.TransactionStatus(ctx, hash)
			Expect(err).To(MatchError(ethereum.ErrTxNotFound))
		})

		It("rejects malformed hashes", func() {
			_, err := service.TransactionStatus(ctx, "0x1234")
			Expect(err).To(MatchError(core.ErrInvalidTxHash))
			Expect(fakeDialer.DialCallCount()).To(Equal(0))
		})
	})
})
