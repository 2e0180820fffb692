package repository_test

import (
	"context"
	"errors"

	"txledger/internal/db"
	"txledger/internal/repository"
	"txledger/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SubmissionRepository", func() {
	var (
		repo        *repository.SubmissionRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeStorage = new(fake.Storage)
		repo = repository.NewSubmissionRepository(fakeStorage)
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Migrate()
		})

		When("migration succeeds", func() {
			It("should migrate the submissions table", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(1))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Submission{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("SaveSubmission", func() {
		var (
			submission repository.Submission
			err        error
		)

		BeforeEach(func() {
			submission = repository.Submission{
				Account:      "0x00000000000000000000000000000000000000aB",
				AddressTo:    "0x00000000000000000000000000000000000000dE",
				Amount:       "1500000000000000000",
				Keyword:      "greeting",
				Message:      "hi",
				TransferHash: "0x01",
				Status:       repository.StatusPending,
			}
		})

		JustBeforeEach(func() {
			err = repo.SaveSubmission(ctx, submission)
		})

		When("save succeeds", func() {
			It("should assign an id and creation time", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
				_, arg := fakeStorage.SaveToTableArgsForCall(0)
				saved, ok := arg.(*repository.Submission)
				Expect(ok).To(BeTrue())
				Expect(saved.ID).NotTo(BeEmpty())
				Expect(saved.CreatedAt.IsZero()).To(BeFalse())
				Expect(saved.TransferHash).To(Equal("0x01"))
				Expect(saved.Status).To(Equal(repository.StatusPending))
			})
		})

		When("the submission already has an id", func() {
			BeforeEach(func() {
				submission.ID = "fixed-id"
			})

			It("should keep it", func() {
				Expect(err).NotTo(HaveOccurred())
				_, arg := fakeStorage.SaveToTableArgsForCall(0)
				Expect(arg.(*repository.Submission).ID).To(Equal("fixed-id"))
			})
		})

		When("save fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).To(MatchError(ContainSubstring("save submission")))
			})
		})
	})

	Describe("UpdateSubmissionStatus", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.UpdateSubmissionStatus(ctx, "0x01", repository.StatusConfirmed)
		})

		When("the submission exists", func() {
			It("should update its status by transfer hash", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.UpdateByCallCount()).To(Equal(1))
				_, model, col, val, updates := fakeStorage.UpdateByArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Submission{}))
				Expect(col).To(Equal("transfer_hash"))
				Expect(val).To(Equal("0x01"))
				Expect(updates).To(Equal(map[string]any{"status": repository.StatusConfirmed}))
			})
		})

		When("the submission does not exist", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByReturns(db.ErrNotFound)
			})

			It("should return submission not found error", func() {
				Expect(err).To(MatchError(repository.ErrSubmissionNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetSubmissions", func() {
		var (
			submissions []repository.Submission
			err         error
		)

		JustBeforeEach(func() {
			submissions, err = repo.GetSubmissions(ctx, "0xabc")
		})

		When("submissions exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, orderBy string, dest any) error {
					subs := dest.(*[]repository.Submission)
					*subs = []repository.Submission{
						{TransferHash: "0x2"},
						{TransferHash: "0x1"},
					}
					return nil
				}
			})

			It("should return them newest first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(submissions).To(HaveLen(2))
				Expect(submissions[0].TransferHash).To(Equal("0x2"))

				Expect(fakeStorage.GetAllByCallCount()).To(Equal(1))
				_, col, val, orderBy, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("account"))
				Expect(val).To(Equal("0xabc"))
				Expect(orderBy).To(Equal("created_at desc"))
			})
		})

		When("no submissions exist", func() {
			It("should return empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(submissions).To(BeEmpty())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
