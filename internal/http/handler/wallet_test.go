package handler_test

import (
	"encoding/json"
	"errors"
	"ethwallet/internal/core"
	"ethwallet/internal/ethereum"
	"ethwallet/internal/http/handler"
	"ethwallet/internal/http/handler/fake"
	"ethwallet/internal/http/payload"
	"ethwallet/internal/keystore"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("WalletHandler", func() {
	var (
		wh            *handler.WalletHandler
		fakeService   *fake.WalletService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		testToken     string
		fakeErr       error
	)

	BeforeEach(func() {
		testToken = "test-token"
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.WalletService)
		fakeService.AuthenticateReturns(testToken, nil)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return payload.Decoder{}.DecodeJSONPayload(rec, jsonPayload)
		}

		w = httptest.NewRecorder()
		wh = handler.NewWalletHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleAuthenticate", func() {
		var response map[string]string

		BeforeEach(func() {
			body := strings.NewReader(`{"password":"pw1"}`)
			req = httptest.NewRequest("POST", "/wallet/authenticate", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			wh.HandleAuthenticate(w, req)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["token"]).To(Equal(testToken))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(1))
				_, msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg.Password).To(Equal("pw1"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the password is empty", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/wallet/authenticate", strings.NewReader(`{"password":""}`))
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", keystore.ErrInvalidPassword)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("no wallet is selected", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrNoWalletSelected)
			})

			It("should return 409 Conflict", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(w.Body.String()).To(ContainSubstring("no wallet selected"))
			})
		})

		When("something unexpected fails", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should hide the detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("RequireToken", func() {
		var called bool

		BeforeEach(func() {
			called = false
			req = httptest.NewRequest("GET", "/wallet/balance", nil)
		})

		JustBeforeEach(func() {
			wh.RequireToken(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})(w, req)
		})

		When("the header is missing", func() {
			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(called).To(BeFalse())
				Expect(fakeService.AuthorizeCallCount()).To(Equal(0))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				req.Header.Set("AUTH_TOKEN", testToken)
				fakeService.AuthorizeReturns("", fakeErr)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(called).To(BeFalse())
			})
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				req.Header.Set("AUTH_TOKEN", testToken)
				fakeService.AuthorizeReturns("w1", nil)
			})

			It("should call the next handler", func() {
				Expect(called).To(BeTrue())
				Expect(fakeService.AuthorizeArgsForCall(0)).To(Equal(testToken))
			})
		})
	})

	Describe("HandleCreateWallet", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/wallet/create", strings.NewReader(`{"password":"pw1","name":"main"}`))
			fakeService.CreateMnemonicWalletReturns(core.WalletRecord{ID: "w1", Name: "main"}, "word list", nil)
		})

		It("should return the wallet and its mnemonic once", func() {
			wh.HandleCreateWallet(w, req)
			Expect(w.Code).To(Equal(http.StatusCreated))

			var response struct {
				Data struct {
					Wallet   core.WalletRecord `json:"wallet"`
					Mnemonic string            `json:"mnemonic"`
				} `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Data.Wallet.ID).To(Equal("w1"))
			Expect(response.Data.Mnemonic).To(Equal("word list"))

			_, password, name := fakeService.CreateMnemonicWalletArgsForCall(0)
			Expect(password).To(Equal("pw1"))
			Expect(name).To(Equal("main"))
		})
	})

	Describe("HandleImportMnemonic", func() {
		It("should reject unknown fields", func() {
			req = httptest.NewRequest("POST", "/wallet/import/mnemonic",
				strings.NewReader(`{"mnemonic":"a b c","password":"pw1","seed":"x"}`))
			wh.HandleImportMnemonic(w, req)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(fakeService.ImportFromMnemonicCallCount()).To(Equal(0))
		})

		It("should map an invalid mnemonic to 400", func() {
			fakeService.ImportFromMnemonicReturns(core.WalletRecord{}, keystore.ErrInvalidMnemonic)
			req = httptest.NewRequest("POST", "/wallet/import/mnemonic",
				strings.NewReader(`{"mnemonic":"a b c","password":"pw1"}`))
			wh.HandleImportMnemonic(w, req)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("invalid mnemonic"))
		})
	})

	Describe("HandleSendNative", func() {
		var result core.SendResult

		BeforeEach(func() {
			body := `{"to":"0x52908400098527886E0F7030069857D2E4169EE7","amount":"1.5","password":"pw1"}`
			req = httptest.NewRequest("POST", "/wallet/send/native", strings.NewReader(body))
		})

		JustBeforeEach(func() {
			wh.HandleSendNative(w, req)
			Expect(json.NewDecoder(w.Body).Decode(&result)).To(Succeed())
		})

		When("the transaction is submitted", func() {
			BeforeEach(func() {
				fakeService.SendNativeReturns(core.SendResult{Code: 200, Payload: "0xhash", State: core.StateConfirmed, TxHash: "0xhash"})
			})

			It("should return 200 with the hash", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(result.Code).To(Equal(200))
				Expect(result.Payload).To(Equal("0xhash"))

				_, transfer := fakeService.SendNativeArgsForCall(0)
				Expect(transfer.Amount).To(Equal("1.5"))
				Expect(transfer.GasPriceGwei).To(BeEmpty())
				Expect(transfer.GasLimit).To(BeZero())
			})
		})

		When("the node rejects it", func() {
			BeforeEach(func() {
				fakeService.SendNativeReturns(core.SendResult{Code: 429, State: core.StateFailed})
			})

			It("should return 502 with the node code", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
				Expect(result.Code).To(Equal(429))
				Expect(result.Payload).To(BeEmpty())
			})
		})

		When("it fails locally", func() {
			BeforeEach(func() {
				fakeService.SendNativeReturns(core.SendResult{Code: -1, Payload: "no wallet selected", State: core.StateFailed})
			})

			It("should return 400 with the message", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(result.Code).To(Equal(-1))
				Expect(result.Payload).To(Equal("no wallet selected"))
			})
		})
	})

	Describe("HandleSendToken", func() {
		It("should default decimals to 18", func() {
			body := `{"to":"0x52908400098527886E0F7030069857D2E4169EE7","contract":"0xdAC17F958D2ee523a2206206994597C13D831ec7","amount":"1","password":"pw1"}`
			req = httptest.NewRequest("POST", "/wallet/send/token", strings.NewReader(body))
			fakeService.SendTokenReturns(core.SendResult{Code: 200, Payload: "0xhash"})

			wh.HandleSendToken(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			_, transfer := fakeService.SendTokenArgsForCall(0)
			Expect(transfer.Decimals).To(Equal(18))
		})

		It("should reject a malformed recipient before calling the service", func() {
			body := `{"to":"bob","contract":"0xdAC17F958D2ee523a2206206994597C13D831ec7","amount":"1","password":"pw1"}`
			req = httptest.NewRequest("POST", "/wallet/send/token", strings.NewReader(body))

			wh.HandleSendToken(w, req)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(fakeService.SendTokenCallCount()).To(Equal(0))
		})
	})

	Describe("HandleBalance", func() {
		It("should pass contract and decimals through", func() {
			fakeService.GetBalanceReturns("2.5", nil)
			req = httptest.NewRequest("GET", "/wallet/balance?contract=0xdAC17F958D2ee523a2206206994597C13D831ec7&decimals=6", nil)

			wh.HandleBalance(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"balance":"2.5"`))
			_, contract, decimals := fakeService.GetBalanceArgsForCall(0)
			Expect(contract).To(Equal("0xdAC17F958D2ee523a2206206994597C13D831ec7"))
			Expect(decimals).To(Equal(6))
		})

		It("should reject a malformed contract", func() {
			req = httptest.NewRequest("GET", "/wallet/balance?contract=usdt", nil)
			wh.HandleBalance(w, req)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(fakeService.GetBalanceCallCount()).To(Equal(0))
		})

		It("should map node failures to 502", func() {
			fakeService.GetBalanceReturns("", &ethereum.ChainError{Kind: ethereum.ServerError, Code: 503, Message: "503 Service Unavailable"})
			req = httptest.NewRequest("GET", "/wallet/balance", nil)
			wh.HandleBalance(w, req)
			Expect(w.Code).To(Equal(http.StatusBadGateway))
		})
	})

	Describe("HandleEstimateGas", func() {
		It("returns the gas units", func() {
			fakeService.EstimateGasReturns("21000", nil)
			req = httptest.NewRequest("GET", "/wallet/estimate-gas?to=0x52908400098527886E0F7030069857D2E4169EE7&gasPrice=2", nil)

			wh.HandleEstimateGas(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"gas":"21000"`))

			_, to, gasPrice := fakeService.EstimateGasArgsForCall(0)
			Expect(to).To(Equal("0x52908400098527886E0F7030069857D2E4169EE7"))
			Expect(gasPrice).To(Equal("2"))
		})
	})

	Describe("HandleTokenBalances", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/wallet/balances?contract=0xdAC17F958D2ee523a2206206994597C13D831ec7&decimals=6&contract=0x52908400098527886E0F7030069857D2E4169EE7&decimals=18", nil)
		})

		It("should return 206 when only some balances were read", func() {
			fakeService.TokenBalancesReturns([]core.TokenAmount{{Contract: "0xdAC17F958D2ee523a2206206994597C13D831ec7", Amount: "1"}}, fakeErr)
			wh.HandleTokenBalances(w, req)
			Expect(w.Code).To(Equal(http.StatusPartialContent))

			_, queries := fakeService.TokenBalancesArgsForCall(0)
			Expect(queries).To(HaveLen(2))
			Expect(queries[1].Decimals).To(Equal(18))
		})

		It("should reject unpaired decimals", func() {
			req = httptest.NewRequest("GET", "/wallet/balances?contract=0xdAC17F958D2ee523a2206206994597C13D831ec7", nil)
			wh.HandleTokenBalances(w, req)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("HandleTxStatus", func() {
		hash := "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"

		It("should return the status", func() {
			fakeService.TransactionStatusReturns(core.TxStatusRecord{Hash: hash, Status: "pending"}, nil)
			req = httptest.NewRequest("GET", "/wallet/tx/"+hash, nil)
			req.SetPathValue("hash", hash)

			wh.HandleTxStatus(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"status":"pending"`))
		})

		It("should map ErrTxNotFound to 404", func() {
			fakeService.TransactionStatusReturns(core.TxStatusRecord{}, ethereum.ErrTxNotFound)
			req = httptest.NewRequest("GET", "/wallet/tx/"+hash, nil)
			req.SetPathValue("hash", hash)

			wh.HandleTxStatus(w, req)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should reject short hashes", func() {
			req = httptest.NewRequest("GET", "/wallet/tx/0x12", nil)
			req.SetPathValue("hash", "0x12")

			wh.HandleTxStatus(w, req)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(fakeService.TransactionStatusCallCount()).To(Equal(0))
		})
	})

	Describe("HandleDeleteWallet", func() {
		It("should pass the path id", func() {
			req = httptest.NewRequest("DELETE", "/wallet/wallets/w1", nil)
			req.SetPathValue("id", "w1")

			wh.HandleDeleteWallet(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			_, id := fakeService.DeleteWalletArgsForCall(0)
			Expect(id).To(Equal("w1"))
		})

		It("should return 404 for unknown wallets", func() {
			fakeService.DeleteWalletReturns(core.ErrWalletNotFound)
			req = httptest.NewRequest("DELETE", "/wallet/wallets/w9", nil)
			req.SetPathValue("id", "w9")

			wh.HandleDeleteWallet(w, req)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
