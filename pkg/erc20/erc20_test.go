package erc20_test

import (
	"encoding/hex"
	"math/big"

	"ethwallet/pkg/erc20"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ERC20", func() {
	to := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	It("should expose the transfer selector", func() {
		Expect(hex.EncodeToString(erc20.TransferSelector())).To(Equal("a9059cbb"))
	})

	It("should pack transfer as selector, padded address and amount", func() {
		data, err := erc20.PackTransfer(to, big.NewInt(1000))
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(HaveLen(4 + 32 + 32))
		Expect(hex.EncodeToString(data[:4])).To(Equal("a9059cbb"))
		Expect(data[4:35]).To(Equal(make([]byte, 31)))
		Expect(data[35]).To(Equal(byte(0xaa)))
		Expect(new(big.Int).SetBytes(data[36:]).Int64()).To(Equal(int64(1000)))
	})

	It("should pack balanceOf", func() {
		data, err := erc20.PackBalanceOf(to)
		Expect(err).NotTo(HaveOccurred())
		Expect(hex.EncodeToString(data[:4])).To(Equal("70a08231"))
		Expect(data).To(HaveLen(36))
	})

	It("should unpack a balance", func() {
		out := common.LeftPadBytes(big.NewInt(123456).Bytes(), 32)
		balance, err := erc20.UnpackBalanceOf(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(balance.Int64()).To(Equal(int64(123456)))
	})

	It("should fail on short output", func() {
		_, err := erc20.UnpackBalanceOf([]byte{0x01})
		Expect(err).To(HaveOccurred())
	})
})
