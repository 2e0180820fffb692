package ethereum_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"txledger/internal/ethereum"
	"txledger/internal/ethereum/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EthService", func() {
	var (
		service    *ethereum.EthService
		fakeClient *fake.EthClient
		ctx        context.Context
		testErr    error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		testErr = errors.New("test error")
		ctx = context.Background()
		service = ethereum.NewEthService(fakeClient)
	})

	Describe("FetchTransactions", func() {
		var (
			hashes    []string
			results   []*ethereum.Transaction
			err       error
			signedTx1 *types.Transaction
			signedTx2 *types.Transaction
			sender    common.Address
			chainID   *big.Int
		)

		BeforeEach(func() {
			privateKey, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			sender = crypto.PubkeyToAddress(privateKey.PublicKey)

			chainID = big.NewInt(1337)
			signer := types.LatestSignerForChainID(chainID)

			recipient := common.HexToAddress("0xDEF")
			tx1 := types.NewTransaction(0, recipient, big.NewInt(0), 21000, big.NewInt(1), nil)
			tx2 := types.NewTransaction(1, recipient, big.NewInt(1), 21000, big.NewInt(1), nil)

			signedTx1, err = types.SignTx(tx1, signer, privateKey)
			Expect(err).NotTo(HaveOccurred())
			signedTx2, err = types.SignTx(tx2, signer, privateKey)
			Expect(err).NotTo(HaveOccurred())

			hashes = []string{
				signedTx1.Hash().Hex(),
				signedTx2.Hash().Hex(),
			}

			fakeClient.ChainIDReturns(chainID, nil)
			fakeClient.TransactionReceiptStub = func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
				if hash == signedTx1.Hash() {
					return &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(100), GasUsed: 21000}, nil
				}
				return &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(101), GasUsed: 21000}, nil
			}
		})

		JustBeforeEach(func() {
			results, err = service.FetchTransactions(ctx, hashes)
		})

		When("all transactions are fetched successfully", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashStub = func(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
					if hash == signedTx1.Hash() {
						return signedTx1, false, nil
					}
					return signedTx2, false, nil
				}
			})

			It("should return all transactions with their receipts", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))

				byHash := map[string]*ethereum.Transaction{}
				for _, tx := range results {
					byHash[tx.TransactionHash] = tx
				}

				first := byHash[signedTx1.Hash().Hex()]
				Expect(first).NotTo(BeNil())
				Expect(first.TransactionStatus).To(Equal(uint64(1)))
				Expect(first.BlockNumber).To(Equal(uint64(100)))
				Expect(first.From).To(Equal(sender.Hex()))
				Expect(*first.To).To(Equal(common.HexToAddress("0xDEF").Hex()))

				second := byHash[signedTx2.Hash().Hex()]
				Expect(second).NotTo(BeNil())
				Expect(second.TransactionStatus).To(Equal(uint64(0)))
				Expect(second.Value).To(Equal("1"))

				Expect(fakeClient.ChainIDCallCount()).To(Equal(1))
				Expect(fakeClient.TransactionByHashCallCount()).To(Equal(2))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))
			})
		})

		When("some transactions fail to fetch", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashStub = func(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
					if hash == signedTx1.Hash() {
						return nil, false, testErr
					}
					return signedTx2, false, nil
				}
			})

			It("should return partial results with error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring(fmt.Sprintf("fetching transaction %q: %s", hashes[0], testErr.Error())))
				Expect(results).To(HaveLen(1))
				Expect(results[0].TransactionHash).To(Equal(signedTx2.Hash().Hex()))
			})
		})

		When("the chain id cannot be read", func() {
			BeforeEach(func() {
				fakeClient.ChainIDReturns(nil, testErr)
			})

			It("should not look up any transaction", func() {
				Expect(err).To(MatchError(testErr))
				Expect(err).To(MatchError(ContainSubstring("get chain id")))
				Expect(fakeClient.TransactionByHashCallCount()).To(Equal(0))
			})
		})

		When("context is cancelled", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()

				fakeClient.TransactionByHashStub = func(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
					select {
					case <-ctx.Done():
						return nil, false, ctx.Err()
					case <-time.After(100 * time.Millisecond):
						return signedTx1, false, nil
					}
				}
			})

			It("should return context cancelled error", func() {
				Expect(err).To(MatchError(context.Canceled))
			})
		})
	})
})
