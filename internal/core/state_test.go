package core_test

import (
	"txledger/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Form", func() {
	var form *core.Form

	BeforeEach(func() {
		form = core.NewForm()
	})

	Describe("UpdateField", func() {
		It("should overwrite only the named field", func() {
			Expect(form.UpdateField(core.FieldAddressTo, "0xDEF")).To(Succeed())
			Expect(form.UpdateField(core.FieldAmount, "1.5")).To(Succeed())
			Expect(form.UpdateField(core.FieldMessage, "hi")).To(Succeed())
			Expect(form.UpdateField(core.FieldKeyword, "greeting")).To(Succeed())

			Expect(form.Data()).To(Equal(core.FormData{
				AddressTo: "0xDEF",
				Amount:    "1.5",
				Message:   "hi",
				Keyword:   "greeting",
			}))
		})

		It("should be idempotent", func() {
			Expect(form.UpdateField(core.FieldAmount, "0.01")).To(Succeed())
			first := form.Data()

			Expect(form.UpdateField(core.FieldAmount, "0.01")).To(Succeed())
			Expect(form.Data()).To(Equal(first))
		})

		It("should store values without validating them", func() {
			Expect(form.UpdateField(core.FieldAmount, "not a number")).To(Succeed())
			Expect(form.Data().Amount).To(Equal("not a number"))
		})

		When("the field is unknown", func() {
			It("should return ErrUnknownField and leave the form untouched", func() {
				err := form.UpdateField("nonce", "1")
				Expect(err).To(MatchError(core.ErrUnknownField))
				Expect(form.Data()).To(Equal(core.FormData{}))
			})
		})
	})

	Describe("Reset", func() {
		It("should clear every field", func() {
			Expect(form.UpdateField(core.FieldMessage, "hi")).To(Succeed())
			form.Reset()
			Expect(form.Data()).To(Equal(core.FormData{}))
		})
	})
})

var _ = Describe("LedgerCache", func() {
	var cache *core.LedgerCache

	BeforeEach(func() {
		cache = core.NewLedgerCache()
	})

	It("should start empty", func() {
		Expect(cache.Entries()).To(BeEmpty())
		Expect(cache.Count()).To(BeZero())
	})

	It("should replace the snapshot instead of appending", func() {
		cache.Replace([]core.LedgerEntry{{Message: "a"}, {Message: "b"}})
		cache.Replace([]core.LedgerEntry{{Message: "c"}})

		Expect(cache.Entries()).To(Equal([]core.LedgerEntry{{Message: "c"}}))
	})

	It("should not expose its internal slice", func() {
		cache.Replace([]core.LedgerEntry{{Message: "a"}})

		entries := cache.Entries()
		entries[0].Message = "changed"

		Expect(cache.Entries()[0].Message).To(Equal("a"))
	})

	It("should keep the count apart from the entries", func() {
		cache.Replace([]core.LedgerEntry{{Message: "a"}})
		cache.SetCount(9)

		Expect(cache.Count()).To(Equal(uint64(9)))
		Expect(cache.Entries()).To(HaveLen(1))
	})
})
