package repository_test

import (
	"context"
	"errors"
	"ethwallet/internal/db"
	"ethwallet/internal/repository"
	"ethwallet/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NetworkRepository", func() {
	var (
		repo        *repository.NetworkRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewNetworkRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("SeedNetworks", func() {
		It("should seed the presets", func() {
			presets := []repository.Network{{ChainID: "1"}, {ChainID: "56"}}
			Expect(repo.SeedNetworks(ctx, presets)).To(Succeed())

			_, records := fakeStorage.SaveToTableArgsForCall(0)
			Expect(records).To(Equal(&presets))
		})

		It("should wrap seeding errors", func() {
			fakeStorage.SaveToTableReturns(errors.New("seed error"))
			Expect(repo.SeedNetworks(ctx, nil)).To(MatchError("seed networks: seed error"))
		})
	})

	Describe("AddNetwork", func() {
		It("should insert the network", func() {
			Expect(repo.AddNetwork(ctx, repository.Network{ChainID: "5"})).To(Succeed())
			Expect(fakeStorage.InsertCallCount()).To(Equal(1))
		})

		It("should return ErrDuplicateNetwork on a taken chain id", func() {
			fakeStorage.InsertReturns(db.ErrDuplicate)
			Expect(repo.AddNetwork(ctx, repository.Network{ChainID: "1"})).To(MatchError(repository.ErrDuplicateNetwork))
		})
	})

	Describe("GetNetwork", func() {
		It("should return ErrNetworkNotFound for unknown chains", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
			_, err := repo.GetNetwork(ctx, "999")
			Expect(err).To(MatchError(repository.ErrNetworkNotFound))
		})

		It("should query by chain id", func() {
			fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
				n := dest.(*repository.Network)
				*n = repository.Network{ChainID: "56", Name: "BSC"}
				return nil
			}

			network, err := repo.GetNetwork(ctx, "56")
			Expect(err).NotTo(HaveOccurred())
			Expect(network.Name).To(Equal("BSC"))

			_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(col).To(Equal("chain_id"))
			Expect(val).To(Equal("56"))
		})
	})

	Describe("DeleteNetwork", func() {
		It("should return ErrNetworkNotFound when nothing was deleted", func() {
			fakeStorage.DeleteByReturns(db.ErrNotFound)
			Expect(repo.DeleteNetwork(ctx, "5")).To(MatchError(repository.ErrNetworkNotFound))
		})
	})

	Describe("PreferredNetwork", func() {
		It("should return nil when none is selected", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
			network, err := repo.PreferredNetwork(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(network).To(BeNil())
		})

		It("should return the error on database failure", func() {
			fakeStorage.GetOneByReturns(fakeErr)
			_, err := repo.PreferredNetwork(ctx)
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("SetPreferred", func() {
		It("should select the network exclusively", func() {
			Expect(repo.SetPreferred(ctx, "56")).To(Succeed())

			_, model, flag, col, val := fakeStorage.SelectExclusiveArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.Network{}))
			Expect(flag).To(Equal("is_selected"))
			Expect(col).To(Equal("chain_id"))
			Expect(val).To(Equal("56"))
		})

		It("should return ErrNetworkNotFound for unknown chains", func() {
			fakeStorage.SelectExclusiveReturns(db.ErrNotFound)
			Expect(repo.SetPreferred(ctx, "7")).To(MatchError(repository.ErrNetworkNotFound))
		})
	})
})
