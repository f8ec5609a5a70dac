package units_test

import (
	"math/big"
	"strings"

	"ethwallet/internal/units"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	Expect(ok).To(BeTrue())
	return v
}

var _ = Describe("Units", func() {
	Describe("ParseAmount", func() {
		DescribeTable("valid amounts",
			func(amount string, decimals int, expected string) {
				value, err := units.ParseAmount(amount, decimals)
				Expect(err).NotTo(HaveOccurred())
				Expect(value.String()).To(Equal(expected))
			},
			Entry("ether with fraction", "1.5", 18, "1500000000000000000"),
			Entry("whole ether", "2", 18, "2000000000000000000"),
			Entry("smallest unit", "0.000000000000000001", 18, "1"),
			Entry("leading dot", ".25", 6, "250000"),
			Entry("trailing dot", "7.", 6, "7000000"),
			Entry("zero decimals", "42", 0, "42"),
			Entry("surrounding spaces", "  3.1  ", 1, "31"),
			Entry("gwei", "1", units.GweiDecimals, "1000000000"),
			Entry("zero", "0", 18, "0"),
		)

		DescribeTable("invalid amounts",
			func(amount string, decimals int) {
				_, err := units.ParseAmount(amount, decimals)
				Expect(err).To(MatchError(units.ErrInvalidAmount))
			},
			Entry("empty", "", 18),
			Entry("only a dot", ".", 18),
			Entry("negative", "-1", 18),
			Entry("explicit plus", "+1", 18),
			Entry("two dots", "1.2.3", 18),
			Entry("letters", "1a", 18),
			Entry("exponent", "1e18", 18),
			Entry("too many fractional digits", "1.0000001", 6),
			Entry("fraction with zero decimals", "1.5", 0),
			Entry("negative decimals", "1", -1),
			Entry("overflows 256 bits", "1"+strings.Repeat("0", 60), 18),
		)
	})

	Describe("FormatAmount", func() {
		DescribeTable("formatting",
			func(value string, decimals, precision int, expected string) {
				Expect(units.FormatAmount(mustBig(value), decimals, precision)).To(Equal(expected))
			},
			Entry("one and a half ether", "1500000000000000000", 18, 18, "1.5"),
			Entry("truncates not rounds", "1999999999999999999", 18, 4, "1.9999"),
			Entry("sub-unit value", "24981836", 9, 4, "0.0249"),
			Entry("truncated to zero", "1", 18, 4, "0"),
			Entry("whole value", "3000000", 6, 2, "3"),
			Entry("zero", "0", 18, 18, "0"),
			Entry("zero decimals", "12", 0, 4, "12"),
			Entry("zero precision", "1500000", 6, 0, "1"),
			Entry("negative", "-1500000", 6, 6, "-1.5"),
		)

		It("should render nil as zero", func() {
			Expect(units.FormatAmount(nil, 18, 4)).To(Equal("0"))
		})
	})

	Describe("round trip", func() {
		DescribeTable("format(parse(s)) is canonical",
			func(amount string, decimals int, canonical string) {
				value, err := units.ParseAmount(amount, decimals)
				Expect(err).NotTo(HaveOccurred())
				Expect(units.FormatAmount(value, decimals, decimals)).To(Equal(canonical))

				again, err := units.ParseAmount(units.FormatAmount(value, decimals, decimals), decimals)
				Expect(err).NotTo(HaveOccurred())
				Expect(again).To(Equal(value))
			},
			Entry("plain", "1.5", 18, "1.5"),
			Entry("leading zeros", "001.500", 18, "1.5"),
			Entry("full precision", "0.123456", 6, "0.123456"),
			Entry("integer", "10", 6, "10"),
			Entry("max decimals", "0.000000000000000001", 18, "0.000000000000000001"),
		)
	})

	Describe("ToUint256", func() {
		It("should reject negative values", func() {
			_, err := units.ToUint256(big.NewInt(-1))
			Expect(err).To(MatchError(units.ErrInvalidAmount))
		})

		It("should reject values wider than 256 bits", func() {
			_, err := units.ToUint256(new(big.Int).Lsh(big.NewInt(1), 256))
			Expect(err).To(MatchError(units.ErrInvalidAmount))
		})

		It("should convert in-range values", func() {
			v, err := units.ToUint256(big.NewInt(21000))
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Uint64()).To(Equal(uint64(21000)))
		})
	})

	Describe("gwei helpers", func() {
		It("should parse and format gwei", func() {
			wei, err := units.ParseGwei("1.5")
			Expect(err).NotTo(HaveOccurred())
			Expect(wei.String()).To(Equal("1500000000"))
			Expect(units.FormatGwei(wei)).To(Equal("1.5"))
		})
	})
})
