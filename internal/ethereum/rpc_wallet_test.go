package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"txledger/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type walletError struct {
	code    int
	message string
}

func (e walletError) Error() string  { return e.message }
func (e walletError) ErrorCode() int { return e.code }

// walletAPI serves the eth_ namespace the way an injected browser wallet does.
type walletAPI struct {
	authorized []common.Address
	requestErr error
	sendErr    error
	sent       []map[string]interface{}
	hash       common.Hash
}

func (api *walletAPI) Accounts() []common.Address {
	return api.authorized
}

func (api *walletAPI) RequestAccounts() ([]common.Address, error) {
	if api.requestErr != nil {
		return nil, api.requestErr
	}
	return api.authorized, nil
}

func (api *walletAPI) SendTransaction(args map[string]interface{}) (common.Hash, error) {
	api.sent = append(api.sent, args)
	if api.sendErr != nil {
		return common.Hash{}, api.sendErr
	}
	return api.hash, nil
}

var _ = Describe("RPCWallet", func() {
	var (
		wallet  *ethereum.RPCWallet
		api     *walletAPI
		server  *rpc.Server
		client  *rpc.Client
		ctx     context.Context
		account common.Address
	)

	BeforeEach(func() {
		ctx = context.Background()
		account = common.HexToAddress("0xABC")
		api = &walletAPI{
			authorized: []common.Address{account},
			hash:       common.HexToHash("0x01"),
		}

		server = rpc.NewServer()
		Expect(server.RegisterName("eth", api)).To(Succeed())
		client = rpc.DialInProc(server)
		wallet = ethereum.NewRPCWallet(client)
	})

	AfterEach(func() {
		client.Close()
		server.Stop()
	})

	Describe("Accounts", func() {
		It("should return the authorized accounts", func() {
			accounts, err := wallet.Accounts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(accounts).To(Equal([]common.Address{account}))
		})

		When("nothing is authorized yet", func() {
			BeforeEach(func() {
				api.authorized = []common.Address{}
			})

			It("should return an empty list", func() {
				accounts, err := wallet.Accounts(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(accounts).To(BeEmpty())
			})
		})
	})

	Describe("RequestAccounts", func() {
		It("should return the accounts the user approved", func() {
			accounts, err := wallet.RequestAccounts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(accounts).To(Equal([]common.Address{account}))
		})

		When("the user rejects the request", func() {
			BeforeEach(func() {
				api.requestErr = walletError{code: 4001, message: "User rejected the request."}
			})

			It("should return ErrUserRejected", func() {
				_, err := wallet.RequestAccounts(ctx)
				Expect(err).To(MatchError(ethereum.ErrUserRejected))
				Expect(err).To(MatchError(ContainSubstring("eth_requestAccounts")))
			})
		})

		When("the wallet fails for another reason", func() {
			BeforeEach(func() {
				api.requestErr = errors.New("wallet locked up")
			})

			It("should pass the error through", func() {
				_, err := wallet.RequestAccounts(ctx)
				Expect(err).To(MatchError(ContainSubstring("wallet locked up")))
				Expect(errors.Is(err, ethereum.ErrUserRejected)).To(BeFalse())
			})
		})
	})

	Describe("SendTransaction", func() {
		var (
			to  common.Address
			req ethereum.TxRequest
		)

		BeforeEach(func() {
			to = common.HexToAddress("0xDEF")
			req = ethereum.TxRequest{
				From:  account,
				To:    &to,
				Value: big.NewInt(1500000000000000000),
				Gas:   21000,
			}
		})

		It("should hex encode the value and gas", func() {
			hash, err := wallet.SendTransaction(ctx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal(common.HexToHash("0x01")))

			Expect(api.sent).To(HaveLen(1))
			Expect(api.sent[0]).To(HaveKeyWithValue("from", strings.ToLower(account.Hex())))
			Expect(api.sent[0]).To(HaveKeyWithValue("to", strings.ToLower(to.Hex())))
			Expect(api.sent[0]).To(HaveKeyWithValue("value", "0x14d1120d7b160000"))
			Expect(api.sent[0]).To(HaveKeyWithValue("gas", "0x5208"))
			Expect(api.sent[0]).NotTo(HaveKey("data"))
		})

		When("the request is a contract call", func() {
			BeforeEach(func() {
				req.Value = nil
				req.Gas = 0
				req.Data = []byte{0xca, 0xfe}
			})

			It("should leave gas estimation to the wallet", func() {
				_, err := wallet.SendTransaction(ctx, req)
				Expect(err).NotTo(HaveOccurred())
				Expect(api.sent[0]).To(HaveKeyWithValue("data", "0xcafe"))
				Expect(api.sent[0]).NotTo(HaveKey("gas"))
				Expect(api.sent[0]).NotTo(HaveKey("value"))
			})
		})

		When("the call reverts", func() {
			BeforeEach(func() {
				api.sendErr = walletError{code: 3, message: "execution reverted: insufficient funds"}
			})

			It("should return ErrReverted", func() {
				_, err := wallet.SendTransaction(ctx, req)
				Expect(err).To(MatchError(ethereum.ErrReverted))
			})
		})

		When("the user rejects the transaction", func() {
			BeforeEach(func() {
				api.sendErr = walletError{code: 4001, message: "User denied transaction signature."}
			})

			It("should return ErrUserRejected", func() {
				_, err := wallet.SendTransaction(ctx, req)
				Expect(err).To(MatchError(ethereum.ErrUserRejected))
			})
		})
	})
})
