package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"txledger/internal/core"
	"txledger/internal/http/handler"
	"txledger/internal/http/handler/fake"
	"txledger/internal/http/payload"
	"txledger/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	gojwt "github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("LedgerHandler", func() {
	var (
		lh             *handler.LedgerHandler
		fakeSession    *fake.WalletSession
		fakeForm       *fake.FormEditor
		fakeTxs        *fake.TransactionService
		fakeHistory    *fake.SubmissionHistory
		fakeTokens     *fake.TokenIssuer
		fakeValidator  *fake.RequestValidator
		w              *httptest.ResponseRecorder
		req            *http.Request
		account        common.Address
		testToken      string
		fakeErr        error
		decodeResponse func(into any)
		taggedErr      func(kind error) error
	)

	BeforeEach(func() {
		account = common.HexToAddress("0xABC")
		testToken = "test-token"
		fakeErr = errors.New("fake-error")

		fakeSession = new(fake.WalletSession)
		fakeForm = new(fake.FormEditor)
		fakeTxs = new(fake.TransactionService)
		fakeHistory = new(fake.SubmissionHistory)
		fakeTokens = new(fake.TokenIssuer)
		fakeValidator = new(fake.RequestValidator)

		fakeTokens.GenerateReturns(gojwt.New(gojwt.SigningMethodHS512))
		fakeTokens.SignReturns(testToken, nil)
		fakeTokens.ValidateReturns(gojwt.MapClaims{"sub": account.Hex()}, nil)

		w = httptest.NewRecorder()
		lh = handler.NewLedgerHandler(zap.NewNop().Sugar(), fakeValidator, fakeSession, fakeForm, fakeTxs, fakeHistory, fakeTokens)

		decodeResponse = func(into any) {
			Expect(json.NewDecoder(w.Body).Decode(into)).To(Succeed())
		}
		taggedErr = func(kind error) error {
			return &core.Error{Op: "test", Kind: kind, Err: fakeErr}
		}
	})

	Describe("HandleCheckWallet", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/wallet/check", nil)
		})

		JustBeforeEach(func() {
			lh.HandleCheckWallet(w, req)
		})

		When("an account is authorized", func() {
			BeforeEach(func() {
				fakeSession.AccountReturns(account, true)
			})

			It("should report the connected account", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var resp map[string]any
				decodeResponse(&resp)
				Expect(resp).To(HaveKeyWithValue("connected", true))
				Expect(resp).To(HaveKeyWithValue("account", account.Hex()))
				Expect(fakeSession.CheckConnectionCallCount()).To(Equal(1))
			})
		})

		When("no wallet is available", func() {
			BeforeEach(func() {
				fakeSession.CheckConnectionReturns(&core.Error{Op: "check connection", Kind: core.ErrWalletUnavailable})
			})

			It("should return 503", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
				Expect(w.Body.String()).To(ContainSubstring("wallet unavailable"))
			})
		})
	})

	Describe("HandleConnectWallet", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/wallet/connect", nil)
		})

		JustBeforeEach(func() {
			lh.HandleConnectWallet(w, req)
		})

		When("the user authorizes an account", func() {
			BeforeEach(func() {
				fakeSession.RequestConnectionReturns(account, nil)
			})

			It("should return the account and a token for it", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var resp map[string]string
				decodeResponse(&resp)
				Expect(resp).To(Equal(map[string]string{
					"account": account.Hex(),
					"token":   testToken,
				}))

				Expect(fakeTokens.GenerateCallCount()).To(Equal(1))
				info := fakeTokens.GenerateArgsForCall(0)
				Expect(info.Subject).To(Equal(account.Hex()))
				Expect(info.Account).To(Equal(account.Hex()))
				Expect(fakeTokens.SignCallCount()).To(Equal(1))
			})
		})

		When("the user rejects the request", func() {
			BeforeEach(func() {
				fakeSession.RequestConnectionReturns(common.Address{}, taggedErr(core.ErrUserRejected))
			})

			It("should return 403 without issuing a token", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
				Expect(fakeTokens.GenerateCallCount()).To(Equal(0))
			})
		})

		When("signing the token fails", func() {
			BeforeEach(func() {
				fakeSession.RequestConnectionReturns(account, nil)
				fakeTokens.SignReturns("", fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetAccount", func() {
		It("should report a disconnected session", func() {
			req = httptest.NewRequest("GET", "/wallet/account", nil)
			lh.HandleGetAccount(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			decodeResponse(&resp)
			Expect(resp).To(Equal(map[string]any{"connected": false}))
		})
	})

	Describe("form", func() {
		var data core.FormData

		BeforeEach(func() {
			data = core.FormData{AddressTo: "0xDEF", Amount: "1.5", Message: "hi", Keyword: "greeting"}
			fakeForm.DataReturns(data)
		})

		Describe("HandleGetForm", func() {
			It("should return the form", func() {
				req = httptest.NewRequest("GET", "/form", nil)
				lh.HandleGetForm(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				var resp core.FormData
				decodeResponse(&resp)
				Expect(resp).To(Equal(data))
			})
		})

		Describe("HandleUpdateForm", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("PUT", "/form", strings.NewReader(`{"field":"amount","value":"1.5"}`))
				fakeValidator.DecodeJSONPayloadStub = func(r *http.Request, jsonPayload any) error {
					return json.NewDecoder(r.Body).Decode(jsonPayload)
				}
			})

			JustBeforeEach(func() {
				lh.HandleUpdateForm(w, req)
			})

			When("the payload is valid", func() {
				It("should update the field and return the form", func() {
					Expect(w.Code).To(Equal(http.StatusOK))
					Expect(fakeForm.UpdateFieldCallCount()).To(Equal(1))
					field, value := fakeForm.UpdateFieldArgsForCall(0)
					Expect(field).To(Equal("amount"))
					Expect(value).To(Equal("1.5"))

					argReq, argPayload := fakeValidator.DecodeJSONPayloadArgsForCall(0)
					Expect(argReq).To(Equal(req))
					Expect(argPayload).To(BeAssignableToTypeOf(&payload.FieldRequest{}))
				})
			})

			When("the payload is invalid", func() {
				BeforeEach(func() {
					fakeValidator.DecodeJSONPayloadReturns(fakeErr)
					fakeValidator.DecodeJSONPayloadStub = nil
				})

				It("should return 400 without touching the form", func() {
					Expect(w.Code).To(Equal(http.StatusBadRequest))
					Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
					Expect(fakeForm.UpdateFieldCallCount()).To(Equal(0))
				})
			})

			When("the field is unknown", func() {
				BeforeEach(func() {
					fakeForm.UpdateFieldReturns(fmt.Errorf("%w: %q", core.ErrUnknownField, "nonce"))
				})

				It("should return 400", func() {
					Expect(w.Code).To(Equal(http.StatusBadRequest))
				})
			})
		})

		Describe("HandleResetForm", func() {
			It("should reset the form", func() {
				fakeForm.DataReturns(core.FormData{})
				req = httptest.NewRequest("DELETE", "/form", nil)
				lh.HandleResetForm(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeForm.ResetCallCount()).To(Equal(1))
			})
		})
	})

	Describe("HandleSubmitTransaction", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/transactions", nil)
			req.Header.Set("AUTH_TOKEN", testToken)
		})

		JustBeforeEach(func() {
			lh.HandleSubmitTransaction(w, req)
		})

		When("the submit succeeds", func() {
			BeforeEach(func() {
				fakeTxs.SubmitReturns(core.Receipt{TransferHash: "0x01", AppendHash: "0x02", BlockNumber: 7}, nil)
			})

			It("should return the receipt", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var resp core.Receipt
				decodeResponse(&resp)
				Expect(resp).To(Equal(core.Receipt{TransferHash: "0x01", AppendHash: "0x02", BlockNumber: 7}))

				Expect(fakeTokens.ValidateCallCount()).To(Equal(1))
				Expect(fakeTokens.ValidateArgsForCall(0)).To(Equal(testToken))
			})
		})

		When("no auth token is provided", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("should return 401 without submitting", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("AUTH_TOKEN header is required"))
				Expect(fakeTxs.SubmitCallCount()).To(Equal(0))
			})
		})

		When("the token is expired", func() {
			BeforeEach(func() {
				fakeTokens.ValidateReturns(nil, jwt.ErrTokenExpired)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeTxs.SubmitCallCount()).To(Equal(0))
			})
		})

		When("the token subject is not an account", func() {
			BeforeEach(func() {
				fakeTokens.ValidateReturns(gojwt.MapClaims{"sub": "alice"}, nil)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeTxs.SubmitCallCount()).To(Equal(0))
			})
		})

		When("the confirmation times out", func() {
			BeforeEach(func() {
				fakeTxs.SubmitReturns(core.Receipt{TransferHash: "0x01", AppendHash: "0x02"}, taggedErr(core.ErrTimeout))
			})

			It("should return 504 with the pending hashes", func() {
				Expect(w.Code).To(Equal(http.StatusGatewayTimeout))
				Expect(w.Body.String()).To(ContainSubstring("0x02"))
			})
		})
	})

	Describe("submit error kinds", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/transactions", nil)
			req.Header.Set("AUTH_TOKEN", testToken)
		})

		DescribeTable("map to status codes",
			func(err error, code int) {
				fakeTxs.SubmitReturns(core.Receipt{}, err)
				lh.HandleSubmitTransaction(w, req)
				Expect(w.Code).To(Equal(code))
			},
			Entry("wallet unavailable", &core.Error{Kind: core.ErrWalletUnavailable}, http.StatusServiceUnavailable),
			Entry("user rejected", &core.Error{Kind: core.ErrUserRejected}, http.StatusForbidden),
			Entry("call reverted", &core.Error{Kind: core.ErrCallReverted}, http.StatusUnprocessableEntity),
			Entry("network failure", &core.Error{Kind: core.ErrNetworkFailure}, http.StatusBadGateway),
			Entry("invalid form", fmt.Errorf("%w: amount", core.ErrInvalidForm), http.StatusBadRequest),
			Entry("not connected", core.ErrNotConnected, http.StatusConflict),
		)
	})

	Describe("HandleGetTransactions", func() {
		BeforeEach(func() {
			fakeTxs.EntriesReturns([]core.LedgerEntry{{Message: "hi"}})
			fakeTxs.LoadingReturns(true)
		})

		It("should return the cached entries and loading flag", func() {
			req = httptest.NewRequest("GET", "/transactions", nil)
			lh.HandleGetTransactions(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Transactions []core.LedgerEntry `json:"transactions"`
				Loading      bool               `json:"loading"`
			}
			decodeResponse(&resp)
			Expect(resp.Transactions).To(Equal([]core.LedgerEntry{{Message: "hi"}}))
			Expect(resp.Loading).To(BeTrue())
			Expect(fakeTxs.FetchAllEntriesCallCount()).To(Equal(0))
		})
	})

	Describe("HandleRefreshTransactions", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/transactions/refresh", nil)
		})

		JustBeforeEach(func() {
			lh.HandleRefreshTransactions(w, req)
		})

		When("the ledger is read", func() {
			BeforeEach(func() {
				fakeTxs.FetchAllEntriesReturns([]core.LedgerEntry{{Message: "a"}, {Message: "b"}}, nil)
			})

			It("should return the fresh entries", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var resp map[string][]core.LedgerEntry
				decodeResponse(&resp)
				Expect(resp["transactions"]).To(HaveLen(2))
			})
		})

		When("the node is unreachable", func() {
			BeforeEach(func() {
				fakeTxs.FetchAllEntriesReturns(nil, taggedErr(core.ErrNetworkFailure))
			})

			It("should return 502", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
			})
		})
	})

	Describe("HandleGetTransactionCount", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/transactions/count", nil)
		})

		JustBeforeEach(func() {
			lh.HandleGetTransactionCount(w, req)
		})

		When("both counts are read", func() {
			BeforeEach(func() {
				fakeSession.TransactionCountsReturns(core.TransactionCounts{Cached: 3, CachedExists: true, Ledger: 5}, nil)
			})

			It("should report them side by side", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var resp core.TransactionCounts
				decodeResponse(&resp)
				Expect(resp).To(Equal(core.TransactionCounts{Cached: 3, CachedExists: true, Ledger: 5}))
			})
		})

		When("the ledger cannot be read", func() {
			BeforeEach(func() {
				fakeSession.TransactionCountsReturns(core.TransactionCounts{}, taggedErr(core.ErrNetworkFailure))
			})

			It("should return 502", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
			})
		})
	})

	Describe("HandleGetSubmissions", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/submissions", nil)
			req.Header.Set("AUTH_TOKEN", testToken)
		})

		JustBeforeEach(func() {
			lh.HandleGetSubmissions(w, req)
		})

		When("the history is reconciled", func() {
			BeforeEach(func() {
				fakeHistory.ReconcileReturns([]core.SubmissionRecord{{TransferHash: "0x01", Status: "confirmed"}}, nil)
			})

			It("should return the submissions of the token's account", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("0x01"))

				_, acc := fakeHistory.ReconcileArgsForCall(0)
				Expect(acc).To(Equal(account))
			})
		})

		When("the journal fails", func() {
			BeforeEach(func() {
				fakeHistory.ReconcileReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
			})
		})

		When("no auth token is provided", func() {
			BeforeEach(func() {
				req.Header.Set("AUTH_TOKEN", "")
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeHistory.ReconcileCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Register", func() {
		It("should route requests to the handlers", func() {
			mux := http.NewServeMux()
			lh.Register(mux)

			fakeTxs.EntriesReturns([]core.LedgerEntry{})
			req = httptest.NewRequest("GET", "/transactions", nil)
			mux.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeTxs.EntriesCallCount()).To(Equal(1))
		})
	})
})
