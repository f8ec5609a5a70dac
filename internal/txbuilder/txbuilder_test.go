package txbuilder_test

import (
	"encoding/hex"
	"errors"
	"ethwallet/internal/keystore"
	"ethwallet/internal/network"
	"ethwallet/internal/txbuilder"
	"ethwallet/internal/units"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	// Private key and expected encoding of the EIP-155 worked example.
	eip155Key = "4646464646464646464646464646464646464646464646464646464646464646"
	eip155Raw = "0xf86c098504a817c800825208943535353535353535353535353535353535353535880de0b6b3a76400008025a028ef61340bd939bc2195fe537567866003e1a15d3c71ff63e1590620aa636276a067cbe9d8997f761aecb703304b3800ccf555c9f3dc64214b297fb1966a3b6d83"

	recipient = "0x3535353535353535353535353535353535353535"
	usdt      = "0xdAC17F958D2ee523a2206206994597C13D831ec7"
)

type brokenSigner struct {
	addr common.Address
}

func (b brokenSigner) Address() common.Address           { return b.addr }
func (b brokenSigner) SignHash([]byte) ([]byte, error) { return nil, errors.New("device unplugged") }

func unlock(hexKey string) *keystore.KeyHandle {
	ks, err := keystore.NewFromPrivateKey(hexKey, []byte("pw"), keystore.LightScryptParams)
	Expect(err).NotTo(HaveOccurred())
	handle, err := ks.Unlock([]byte("pw"), ks.Addresses()[0])
	Expect(err).NotTo(HaveOccurred())
	return handle
}

var _ = Describe("TransactionBuilder", func() {
	var (
		eth    network.Network
		handle *keystore.KeyHandle
		from   common.Address
	)

	BeforeEach(func() {
		eth = network.Mainnet("")
		handle = unlock(eip155Key)
		from = handle.Address()
	})

	AfterEach(func() {
		handle.Close()
	})

	Describe("BuildNativeTransfer", func() {
		It("should scale the amount to wei and embed the chain id", func() {
			u, err := txbuilder.BuildNativeTransfer(from, recipient, "1.5", "1", 21000, eth)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Value.String()).To(Equal("1500000000000000000"))
			Expect(u.ChainID.Int64()).To(Equal(int64(1)))
			Expect(u.GasPrice.String()).To(Equal("1000000000"))
			Expect(u.GasLimit).To(Equal(uint64(21000)))
			Expect(u.To).To(Equal(common.HexToAddress(recipient)))
			Expect(u.Data).To(BeEmpty())
		})

		DescribeTable("invalid recipients",
			func(to string) {
				_, err := txbuilder.BuildNativeTransfer(from, to, "1", "1", 21000, eth)
				Expect(err).To(MatchError(txbuilder.ErrInvalidAddress))
			},
			Entry("empty", ""),
			Entry("too short", "0x1234"),
			Entry("no prefix", strings.TrimPrefix(recipient, "0x")),
			Entry("not hex", "0xZZ35353535353535353535353535353535353535"),
			Entry("bad checksum", "0xdac17F958D2ee523a2206206994597C13D831ec7"),
		)

		It("should accept all-lowercase and checksummed addresses", func() {
			_, err := txbuilder.ParseAddress(strings.ToLower(usdt))
			Expect(err).NotTo(HaveOccurred())
			_, err = txbuilder.ParseAddress(usdt)
			Expect(err).NotTo(HaveOccurred())
		})

		DescribeTable("invalid amounts",
			func(amount string) {
				_, err := txbuilder.BuildNativeTransfer(from, recipient, amount, "1", 21000, eth)
				Expect(err).To(MatchError(units.ErrInvalidAmount))
			},
			Entry("negative", "-1"),
			Entry("too precise", "0.0000000000000000001"),
			Entry("garbage", "one"),
		)

		It("should reject a zero gas limit", func() {
			_, err := txbuilder.BuildNativeTransfer(from, recipient, "1", "1", 0, eth)
			Expect(err).To(MatchError(txbuilder.ErrInvalidGas))
		})

		It("should reject a malformed gas price", func() {
			_, err := txbuilder.BuildNativeTransfer(from, recipient, "1", "fast", 21000, eth)
			Expect(err).To(MatchError(txbuilder.ErrInvalidGas))
		})

		It("should reject a gas cost wider than 256 bits", func() {
			huge := "1" + strings.Repeat("0", 66)
			_, err := txbuilder.BuildNativeTransfer(from, recipient, "1", huge, ^uint64(0), eth)
			Expect(err).To(MatchError(txbuilder.ErrInvalidGas))
		})

		It("should reject a network without chain id", func() {
			_, err := txbuilder.BuildNativeTransfer(from, recipient, "1", "1", 21000, network.Network{})
			Expect(err).To(MatchError(network.ErrInvalidNetwork))
		})
	})

	Describe("BuildTokenTransfer", func() {
		It("should encode transfer(address,uint256) against the contract", func() {
			u, err := txbuilder.BuildTokenTransfer(from, recipient, usdt, "2.5", 6, "1", 210000, eth)
			Expect(err).NotTo(HaveOccurred())

			Expect(u.To).To(Equal(common.HexToAddress(usdt)))
			Expect(u.Value.Sign()).To(Equal(0))
			Expect(u.Data).To(HaveLen(68))
			Expect(hex.EncodeToString(u.Data[:4])).To(Equal("a9059cbb"))
			Expect(u.Data[4:36]).To(Equal(common.LeftPadBytes(common.HexToAddress(recipient).Bytes(), 32)))
			Expect(new(big.Int).SetBytes(u.Data[36:]).Int64()).To(Equal(int64(2500000)))
		})

		It("should reject an invalid contract address", func() {
			_, err := txbuilder.BuildTokenTransfer(from, recipient, "0xnope", "1", 6, "1", 210000, eth)
			Expect(err).To(MatchError(txbuilder.ErrInvalidAddress))
		})

		It("should respect the token's decimals", func() {
			_, err := txbuilder.BuildTokenTransfer(from, recipient, usdt, "0.0000001", 6, "1", 210000, eth)
			Expect(err).To(MatchError(units.ErrInvalidAmount))
		})
	})

	Describe("Sign", func() {
		It("should reproduce the EIP-155 reference encoding", func() {
			u, err := txbuilder.BuildNativeTransfer(from, recipient, "1", "20", 21000, eth)
			Expect(err).NotTo(HaveOccurred())

			signed, err := txbuilder.Sign(u.WithNonce(9), handle)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed.RawHex()).To(Equal(eip155Raw))
			Expect(signed.V.Int64()).To(Equal(int64(37)))
			Expect(signed.Hash).To(Equal(signed.Transaction().Hash()))
			Expect(signed.Value.String()).To(Equal("1000000000000000000"))
		})

		It("should be deterministic and recover to the sender", func() {
			u, err := txbuilder.BuildTokenTransfer(from, recipient, usdt, "10", 6, "2", 210000, network.BSC())
			Expect(err).NotTo(HaveOccurred())

			first, err := txbuilder.Sign(u, handle)
			Expect(err).NotTo(HaveOccurred())
			second, err := txbuilder.Sign(u, handle)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Raw).To(Equal(second.Raw))

			var decoded types.Transaction
			Expect(decoded.UnmarshalBinary(first.Raw)).To(Succeed())
			Expect(decoded.ChainId().Int64()).To(Equal(int64(56)))
			sender, err := types.Sender(types.NewEIP155Signer(big.NewInt(56)), &decoded)
			Expect(err).NotTo(HaveOccurred())
			Expect(sender).To(Equal(from))
		})

		It("should fail with ErrSigning once the key handle is closed", func() {
			u, err := txbuilder.BuildNativeTransfer(from, recipient, "1", "1", 21000, eth)
			Expect(err).NotTo(HaveOccurred())

			handle.Close()
			_, err = txbuilder.Sign(u, handle)
			Expect(err).To(MatchError(txbuilder.ErrSigning))
			Expect(err).To(MatchError(keystore.ErrHandleClosed))
		})

		It("should refuse a key for another account", func() {
			other, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			u, err := txbuilder.BuildNativeTransfer(crypto.PubkeyToAddress(other.PublicKey), recipient, "1", "1", 21000, eth)
			Expect(err).NotTo(HaveOccurred())

			_, err = txbuilder.Sign(u, handle)
			Expect(err).To(MatchError(txbuilder.ErrSigning))
		})

		It("should wrap signer failures", func() {
			u, err := txbuilder.BuildNativeTransfer(from, recipient, "1", "1", 21000, eth)
			Expect(err).NotTo(HaveOccurred())

			_, err = txbuilder.Sign(u, brokenSigner{addr: from})
			Expect(err).To(MatchError(txbuilder.ErrSigning))
			Expect(err).To(MatchError(ContainSubstring("device unplugged")))
		})
	})

	It("should compute the maximum cost", func() {
		u, err := txbuilder.BuildNativeTransfer(from, recipient, "1", "1", 21000, eth)
		Expect(err).NotTo(HaveOccurred())
		Expect(u.MaxCost().String()).To(Equal("1000021000000000000"))
	})
})
