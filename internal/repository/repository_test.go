package repository_test

import (
	"context"
	"errors"
	"ethwallet/internal/db"
	"ethwallet/internal/repository"
	"ethwallet/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WalletRepository", func() {
	var (
		repo        *repository.WalletRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewWalletRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		It("should migrate the wallets table", func() {
			Expect(repo.Migrate()).To(Succeed())

			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			tables := fakeStorage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(1))
			Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Wallet{}))
		})

		It("should wrap migration errors", func() {
			fakeStorage.MigrateTableReturns(errors.New("migration error"))
			Expect(repo.Migrate()).To(MatchError("migrate table(s): migration error"))
		})
	})

	Describe("SaveWallet", func() {
		var (
			wallet repository.Wallet
			err    error
		)

		BeforeEach(func() {
			wallet = repository.Wallet{
				ID:      uuid.NewString(),
				Address: "0x9858EfFD232B4033E47d90003D41EC34EcaEda94",
				Name:    "main",
			}
		})

		JustBeforeEach(func() {
			err = repo.SaveWallet(ctx, wallet)
		})

		When("insert succeeds", func() {
			It("should insert the wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				_, arg := fakeStorage.InsertArgsForCall(0)
				Expect(arg).To(Equal(&wallet))
			})
		})

		When("the address already exists", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicate)
			})

			It("should return ErrDuplicateWallet", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateWallet))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListWallets", func() {
		It("should return wallets ordered by creation", func() {
			fakeStorage.GetAllStub = func(ctx context.Context, order string, dest any) error {
				wallets := dest.(*[]repository.Wallet)
				*wallets = []repository.Wallet{{Name: "a"}, {Name: "b"}}
				return nil
			}

			wallets, err := repo.ListWallets(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(wallets).To(HaveLen(2))

			_, order, _ := fakeStorage.GetAllArgsForCall(0)
			Expect(order).To(Equal("created_at, id"))
		})

		It("should return an empty slice when there are none", func() {
			wallets, err := repo.ListWallets(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(wallets).To(BeEmpty())
		})
	})

	Describe("GetSelectedWallet", func() {
		var (
			wallet repository.Wallet
			err    error
		)

		JustBeforeEach(func() {
			wallet, err = repo.GetSelectedWallet(ctx)
		})

		When("a wallet is selected", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					w := dest.(*repository.Wallet)
					*w = repository.Wallet{ID: "w1", IsSelected: true}
					return nil
				}
			})

			It("should return it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(wallet.ID).To(Equal("w1"))

				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("is_selected"))
				Expect(val).To(Equal(true))
			})
		})

		When("no wallet is selected", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrWalletNotFound", func() {
				Expect(err).To(MatchError(repository.ErrWalletNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetWalletsByKeystore", func() {
		It("should query by keystore id", func() {
			_, err := repo.GetWalletsByKeystore(ctx, "ks1")
			Expect(err).NotTo(HaveOccurred())

			_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
			Expect(col).To(Equal("keystore_id"))
			Expect(val).To(Equal([]string{"ks1"}))
		})
	})

	Describe("SelectWallet", func() {
		It("should flip the selection flag exclusively", func() {
			Expect(repo.SelectWallet(ctx, "w1")).To(Succeed())

			_, model, flag, col, val := fakeStorage.SelectExclusiveArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.Wallet{}))
			Expect(flag).To(Equal("is_selected"))
			Expect(col).To(Equal("id"))
			Expect(val).To(Equal("w1"))
		})

		It("should return ErrWalletNotFound for unknown wallets", func() {
			fakeStorage.SelectExclusiveReturns(db.ErrNotFound)
			Expect(repo.SelectWallet(ctx, "nope")).To(MatchError(repository.ErrWalletNotFound))
		})
	})

	Describe("RenameWallet", func() {
		It("should update the name", func() {
			Expect(repo.RenameWallet(ctx, "w1", "savings")).To(Succeed())

			_, _, col, val, updates := fakeStorage.UpdateByArgsForCall(0)
			Expect(col).To(Equal("id"))
			Expect(val).To(Equal("w1"))
			Expect(updates).To(Equal(map[string]any{"name": "savings"}))
		})

		It("should return ErrWalletNotFound for unknown wallets", func() {
			fakeStorage.UpdateByReturns(db.ErrNotFound)
			Expect(repo.RenameWallet(ctx, "nope", "x")).To(MatchError(repository.ErrWalletNotFound))
		})
	})

	Describe("DeleteWallet", func() {
		It("should delete by id", func() {
			Expect(repo.DeleteWallet(ctx, "w1")).To(Succeed())
			_, _, col, val := fakeStorage.DeleteByArgsForCall(0)
			Expect(col).To(Equal("id"))
			Expect(val).To(Equal("w1"))
		})

		It("should return ErrWalletNotFound for unknown wallets", func() {
			fakeStorage.DeleteByReturns(db.ErrNotFound)
			Expect(repo.DeleteWallet(ctx, "nope")).To(MatchError(repository.ErrWalletNotFound))
		})

		It("should wrap other errors", func() {
			fakeStorage.DeleteByReturns(fakeErr)
			Expect(repo.DeleteWallet(ctx, "w1")).To(MatchError(fakeErr))
		})
	})
})
