package core_test

import (
	"context"
	"errors"
	"math/big"

	"txledger/internal/core"
	"txledger/internal/core/fake"
	"txledger/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Session", func() {
	var (
		session    *core.Session
		fakeWallet *fake.Wallet
		fakeLedger *fake.Ledger
		fakeStore  *fake.CountStore
		cache      *core.LedgerCache
		ctx        context.Context
		account    common.Address
		fakeErr    error
	)

	BeforeEach(func() {
		ctx = context.Background()
		account = common.HexToAddress("0xABC")
		fakeErr = errors.New("fake error")
		fakeWallet = new(fake.Wallet)
		fakeLedger = new(fake.Ledger)
		fakeStore = new(fake.CountStore)
		cache = core.NewLedgerCache()

		fakeLedger.GetEntryCountReturns(big.NewInt(0), nil)
	})

	JustBeforeEach(func() {
		session = core.NewSession(zap.NewNop().Sugar(), fakeWallet, fakeLedger, fakeStore, cache)
	})

	Context("without a wallet", func() {
		JustBeforeEach(func() {
			session = core.NewSession(zap.NewNop().Sugar(), nil, fakeLedger, fakeStore, cache)
		})

		It("should signal absence from CheckConnection without external calls", func() {
			err := session.CheckConnection(ctx)
			Expect(err).To(MatchError(core.ErrWalletUnavailable))
			Expect(fakeLedger.Invocations()).To(BeEmpty())
			Expect(fakeStore.Invocations()).To(BeEmpty())
		})

		It("should signal absence from RequestConnection without external calls", func() {
			_, err := session.RequestConnection(ctx)
			Expect(err).To(MatchError(core.ErrWalletUnavailable))
			Expect(fakeLedger.Invocations()).To(BeEmpty())

			_, ok := session.Account()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("CheckConnection", func() {
		var err error

		JustBeforeEach(func() {
			err = session.CheckConnection(ctx)
		})

		When("the wallet has an authorized account", func() {
			BeforeEach(func() {
				fakeWallet.AccountsReturns([]common.Address{account, common.HexToAddress("0x123")}, nil)
				fakeLedger.GetAllEntriesReturns([]ethereum.RawEntry{
					{Sender: account, Receiver: common.HexToAddress("0xDEF"), Amount: big.NewInt(1e16), Timestamp: big.NewInt(0)},
				}, nil)
			})

			It("should connect the first account and refresh the entries", func() {
				Expect(err).NotTo(HaveOccurred())

				current, ok := session.Account()
				Expect(ok).To(BeTrue())
				Expect(current).To(Equal(account))

				Expect(fakeWallet.RequestAccountsCallCount()).To(Equal(0))
				Expect(fakeLedger.GetAllEntriesCallCount()).To(Equal(1))
				Expect(cache.Entries()).To(HaveLen(1))
				Expect(cache.Entries()[0].Amount).To(Equal("0.01"))
			})
		})

		When("the entry refresh fails", func() {
			BeforeEach(func() {
				fakeWallet.AccountsReturns([]common.Address{account}, nil)
				fakeLedger.GetAllEntriesReturns(nil, fakeErr)
			})

			It("should still connect without returning the error", func() {
				Expect(err).NotTo(HaveOccurred())
				_, ok := session.Account()
				Expect(ok).To(BeTrue())
			})
		})

		When("no account is authorized", func() {
			BeforeEach(func() {
				fakeWallet.AccountsReturns([]common.Address{}, nil)
			})

			It("should stay disconnected", func() {
				Expect(err).NotTo(HaveOccurred())
				_, ok := session.Account()
				Expect(ok).To(BeFalse())
				Expect(fakeLedger.GetAllEntriesCallCount()).To(Equal(0))
			})
		})

		When("the wallet call fails", func() {
			BeforeEach(func() {
				fakeWallet.AccountsReturns(nil, fakeErr)
			})

			It("should return a network failure", func() {
				Expect(err).To(MatchError(core.ErrNetworkFailure))
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("RequestConnection", func() {
		var (
			connected common.Address
			err       error
		)

		JustBeforeEach(func() {
			connected, err = session.RequestConnection(ctx)
		})

		When("the user authorizes an account", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns([]common.Address{account}, nil)
			})

			It("should connect it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(connected).To(Equal(account))

				current, ok := session.Account()
				Expect(ok).To(BeTrue())
				Expect(current).To(Equal(account))
			})
		})

		When("the user rejects the request", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns(nil, ethereum.ErrUserRejected)
			})

			It("should return ErrUserRejected", func() {
				Expect(err).To(MatchError(core.ErrUserRejected))
				_, ok := session.Account()
				Expect(ok).To(BeFalse())
			})
		})

		When("the wallet authorizes nothing", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns([]common.Address{}, nil)
			})

			It("should return ErrUserRejected", func() {
				Expect(err).To(MatchError(core.ErrUserRejected))
			})
		})
	})

	Describe("RefreshCachedTransactionCount", func() {
		var err error

		JustBeforeEach(func() {
			err = session.RefreshCachedTransactionCount(ctx)
		})

		When("the ledger count is read", func() {
			BeforeEach(func() {
				fakeLedger.GetEntryCountReturns(big.NewInt(4), nil)
			})

			It("should overwrite the stored and in-memory count", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.SaveTransactionCountCallCount()).To(Equal(1))
				Expect(fakeStore.SaveTransactionCountArgsForCall(0)).To(Equal(uint64(4)))
				Expect(cache.Count()).To(Equal(uint64(4)))
			})
		})

		When("the ledger cannot be reached", func() {
			BeforeEach(func() {
				fakeLedger.GetEntryCountReturns(nil, fakeErr)
			})

			It("should not touch the store", func() {
				Expect(err).To(MatchError(core.ErrNetworkFailure))
				Expect(fakeStore.SaveTransactionCountCallCount()).To(Equal(0))
			})
		})

		When("the store write fails", func() {
			BeforeEach(func() {
				fakeLedger.GetEntryCountReturns(big.NewInt(2), nil)
				fakeStore.SaveTransactionCountReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("LoadCachedTransactionCount", func() {
		When("a count was stored", func() {
			BeforeEach(func() {
				fakeStore.LoadTransactionCountReturns(6, true, nil)
			})

			It("should seed the in-memory count", func() {
				Expect(session.LoadCachedTransactionCount()).To(Succeed())
				Expect(cache.Count()).To(Equal(uint64(6)))
			})
		})

		When("the store read fails", func() {
			BeforeEach(func() {
				fakeStore.LoadTransactionCountReturns(0, false, fakeErr)
			})

			It("should return the error", func() {
				Expect(session.LoadCachedTransactionCount()).To(MatchError(fakeErr))
			})
		})
	})

	Describe("TransactionCounts", func() {
		BeforeEach(func() {
			fakeStore.LoadTransactionCountReturns(3, true, nil)
			fakeLedger.GetEntryCountReturns(big.NewInt(5), nil)
			fakeLedger.GetAllEntriesReturns([]ethereum.RawEntry{{}, {}}, nil)
		})

		It("should report the cached and ledger counts independently", func() {
			counts, err := session.TransactionCounts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(counts).To(Equal(core.TransactionCounts{
				Cached:       3,
				CachedExists: true,
				Ledger:       5,
			}))
			Expect(fakeStore.SaveTransactionCountCallCount()).To(Equal(0))
		})
	})
})
