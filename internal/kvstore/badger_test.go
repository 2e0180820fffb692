package kvstore_test

import (
	"txledger/internal/kvstore"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Store", func() {
	var store *kvstore.Store

	BeforeEach(func() {
		var err error
		store, err = kvstore.Open("", zap.NewNop().Sugar())
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(store.Close()).To(Succeed())
	})

	Describe("Get", func() {
		When("the key is missing", func() {
			It("should return ErrKeyNotFound", func() {
				_, err := store.Get("missing")
				Expect(err).To(MatchError(kvstore.ErrKeyNotFound))
			})
		})

		When("the key was set", func() {
			BeforeEach(func() {
				Expect(store.Set("greeting", "hi")).To(Succeed())
			})

			It("should return the value", func() {
				value, err := store.Get("greeting")
				Expect(err).NotTo(HaveOccurred())
				Expect(value).To(Equal("hi"))
			})
		})
	})

	Describe("transaction count", func() {
		When("nothing was stored", func() {
			It("should report no value", func() {
				count, ok, err := store.LoadTransactionCount()
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeFalse())
				Expect(count).To(BeZero())
			})
		})

		When("a count was stored", func() {
			BeforeEach(func() {
				Expect(store.SaveTransactionCount(3)).To(Succeed())
			})

			It("should be stored as a decimal string", func() {
				value, err := store.Get("transactionCount")
				Expect(err).NotTo(HaveOccurred())
				Expect(value).To(Equal("3"))
			})

			It("should be overwritten by the next save", func() {
				Expect(store.SaveTransactionCount(7)).To(Succeed())

				count, ok, err := store.LoadTransactionCount()
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeTrue())
				Expect(count).To(Equal(uint64(7)))
			})
		})

		When("the stored value is not a number", func() {
			BeforeEach(func() {
				Expect(store.Set("transactionCount", "many")).To(Succeed())
			})

			It("should return a parse error", func() {
				_, _, err := store.LoadTransactionCount()
				Expect(err).To(MatchError(ContainSubstring("parse transaction count")))
			})
		})
	})
})
