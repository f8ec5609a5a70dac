package storage

import (
	"context"
	"encoding/json"
	"ethwallet/internal/keystore"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("KeystoreStore index repair", func() {
	var (
		ctx   context.Context
		store *KeystoreStore
		rec   *keystore.Record
		addr  common.Address
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		store, err = NewKeystoreStore(zap.NewNop().Sugar(), GinkgoT().TempDir())
		Expect(err).NotTo(HaveOccurred())

		ks, err := keystore.NewFromPrivateKey(
			"4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318",
			[]byte("pw1"),
			keystore.LightScryptParams)
		Expect(err).NotTo(HaveOccurred())
		rec = ks.Record()
		addr = common.HexToAddress(rec.Addresses[0])
	})

	It("keeps an entry reserved by a save that has not written its record yet", func() {
		unlock, err := store.locks.Lock(ctx, rec.ID)
		Expect(err).NotTo(HaveOccurred())
		_, err = store.reserve(rec)
		Expect(err).NotTo(HaveOccurred())

		type result struct {
			rec *keystore.Record
			err error
		}
		done := make(chan result, 1)
		go func() {
			defer GinkgoRecover()
			found, err := store.LoadByAddress(ctx, addr)
			done <- result{found, err}
		}()

		Consistently(done, "200ms").ShouldNot(Receive())

		store.indexMu.Lock()
		Expect(store.index).To(HaveKeyWithValue(indexKey(addr), rec.ID))
		store.indexMu.Unlock()

		data, err := json.Marshal(rec)
		Expect(err).NotTo(HaveOccurred())
		Expect(writeFileAtomic(store.dir, rec.ID+recordExt, data)).To(Succeed())
		unlock()

		var got result
		Eventually(done).Should(Receive(&got))
		Expect(got.err).NotTo(HaveOccurred())
		Expect(got.rec.ID).To(Equal(rec.ID))
	})

	It("drops an entry whose record never appears", func() {
		_, err := store.reserve(rec)
		Expect(err).NotTo(HaveOccurred())

		_, err = store.LoadByAddress(ctx, addr)
		Expect(err).To(MatchError(ErrNotFound))

		store.indexMu.Lock()
		defer store.indexMu.Unlock()
		Expect(store.index).NotTo(HaveKey(indexKey(addr)))
	})
})
