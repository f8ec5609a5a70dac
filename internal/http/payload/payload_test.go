package payload_test

import (
	"ethwallet/internal/http/payload"
	"math/big"
	"net/http/httptest"
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	recipient = "0x52908400098527886E0F7030069857D2E4169EE7"
	usdt      = "0xdAC17F958D2ee523a2206206994597C13D831ec7"
)

var _ = Describe("Decoder", func() {
	var decoder payload.Decoder

	It("decodes and validates the body", func() {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"to":"`+recipient+`","amount":"0.5","password":"pw1"}`))

		var send payload.SendNativeRequest
		Expect(decoder.DecodeJSONPayload(req, &send)).To(Succeed())
		Expect(send.Amount).To(Equal("0.5"))
	})

	It("rejects unknown fields", func() {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"password":"pw1","admin":true}`))

		var auth payload.AuthRequest
		Expect(decoder.DecodeJSONPayload(req, &auth)).To(MatchError(ContainSubstring("unknown field")))
	})

	It("reports validation failures", func() {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"to":"bob","amount":"-1","password":"pw1"}`))

		var send payload.SendNativeRequest
		err := decoder.DecodeJSONPayload(req, &send)
		Expect(err).To(MatchError(ContainSubstring("validating payload")))
		Expect(err.Error()).To(ContainSubstring("to:"))
		Expect(err.Error()).To(ContainSubstring("amount:"))
	})

	It("rejects bodies that are not JSON", func() {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`password=pw1`))

		var auth payload.AuthRequest
		Expect(decoder.DecodeJSONPayload(req, &auth)).To(MatchError(ContainSubstring("decoding json payload")))
	})
})

var _ = Describe("SendTokenRequest", func() {
	It("defaults decimals to 18", func() {
		req := payload.SendTokenRequest{To: recipient, Contract: usdt, Amount: "1", Password: "pw1"}
		Expect(req.Validate()).To(Succeed())
		Expect(req.ToCoreTransfer().Decimals).To(Equal(18))
	})

	It("keeps explicit zero decimals", func() {
		zero := 0
		req := payload.SendTokenRequest{To: recipient, Contract: usdt, Amount: "1", Password: "pw1", Decimals: &zero}
		Expect(req.ToCoreTransfer().Decimals).To(Equal(0))
	})
})

var _ = Describe("query requests", func() {
	It("defaults balance decimals to 18", func() {
		req, err := payload.NewBalanceRequest(url.Values{})
		Expect(err).NotTo(HaveOccurred())
		Expect(req.Contract).To(BeEmpty())
		Expect(req.Decimals).To(Equal(18))
	})

	It("rejects non-numeric decimals", func() {
		_, err := payload.NewBalanceRequest(url.Values{"decimals": {"six"}})
		Expect(err).To(HaveOccurred())
	})

	It("pairs contracts with decimals", func() {
		req, err := payload.NewTokenBalancesRequest(url.Values{
			"contract": {usdt, recipient},
			"decimals": {"6", "18"},
		})
		Expect(err).NotTo(HaveOccurred())

		queries := req.ToCoreQueries()
		Expect(queries).To(HaveLen(2))
		Expect(queries[0].Contract).To(Equal(usdt))
		Expect(queries[0].Decimals).To(Equal(6))
	})

	It("requires one decimals value per contract", func() {
		_, err := payload.NewTokenBalancesRequest(url.Values{
			"contract": {usdt, recipient},
			"decimals": {"6"},
		})
		Expect(err).To(HaveOccurred())
	})

	It("requires a recipient for gas estimates", func() {
		_, err := payload.NewEstimateGasRequest(url.Values{"gasPrice": {"2"}})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("NetworkRequest", func() {
	It("converts to a custom network", func() {
		req := payload.NetworkRequest{
			Name:         "local",
			ChainID:      "1337",
			RPCURL:       "http://127.0.0.1:8545",
			NativeSymbol: "ETH",
		}
		Expect(req.Validate()).To(Succeed())

		n := req.ToNetwork()
		Expect(n.ChainID).To(Equal(big.NewInt(1337)))
		Expect(n.IsPreset).To(BeFalse())
	})

	It("rejects a zero chain id", func() {
		_, err := payload.ParseChainID("0")
		Expect(err).To(HaveOccurred())
	})
})
