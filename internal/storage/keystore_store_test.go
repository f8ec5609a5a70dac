package storage_test

import (
	"context"
	"encoding/json"
	"ethwallet/internal/keystore"
	"ethwallet/internal/storage"
	"os"
	"path/filepath"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const (
	testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testKey      = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
)

var password = []byte("pw1")

func singleRecord() *keystore.Record {
	ks, err := keystore.NewFromPrivateKey(testKey, password, keystore.LightScryptParams)
	Expect(err).NotTo(HaveOccurred())
	return ks.Record()
}

func hdKeystore() *keystore.HDKeystore {
	ks, err := keystore.NewFromMnemonic(testMnemonic, password, keystore.LightScryptParams)
	Expect(err).NotTo(HaveOccurred())
	return ks
}

var _ = Describe("KeystoreStore", func() {
	var (
		ctx   context.Context
		root  string
		store *storage.KeystoreStore
	)

	BeforeEach(func() {
		ctx = context.Background()
		root = GinkgoT().TempDir()

		var err error
		store, err = storage.NewKeystoreStore(zap.NewNop().Sugar(), root)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should create the keystore directory with owner-only permissions", func() {
		info, err := os.Stat(filepath.Join(root, "keystore"))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o700)))
	})

	It("should fail with ErrInvalidPath when the root is a file", func() {
		file := filepath.Join(root, "blocker")
		Expect(os.WriteFile(file, []byte("x"), 0o600)).To(Succeed())

		_, err := storage.NewKeystoreStore(zap.NewNop().Sugar(), file)
		Expect(err).To(MatchError(storage.ErrInvalidPath))
	})

	Context("when a record is saved", func() {
		var rec *keystore.Record

		BeforeEach(func() {
			rec = singleRecord()
			Expect(store.Save(ctx, rec, true)).To(Succeed())
		})

		It("should write one owner-only file named after the record", func() {
			info, err := os.Stat(filepath.Join(store.Dir(), rec.ID+".json"))
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))
		})

		It("should load it by address and id", func() {
			addr := common.HexToAddress(rec.Addresses[0])

			byAddr, err := store.LoadByAddress(ctx, addr)
			Expect(err).NotTo(HaveOccurred())
			Expect(byAddr).To(Equal(rec))

			byID, err := store.LoadByID(ctx, rec.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(byID).To(Equal(rec))
		})

		It("should reject saving the same record as new twice", func() {
			err := store.Save(ctx, rec, true)
			Expect(err).To(MatchError(storage.ErrDuplicateKeystore))
		})

		It("should reject another record for the same address", func() {
			err := store.Save(ctx, singleRecord(), false)
			Expect(err).To(MatchError(storage.ErrDuplicateKeystore))

			records, err := store.LoadAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
		})

		It("should delete the file and the index entry", func() {
			addr := common.HexToAddress(rec.Addresses[0])
			Expect(store.Delete(ctx, addr)).To(Succeed())

			_, err := store.LoadByAddress(ctx, addr)
			Expect(err).To(MatchError(storage.ErrNotFound))
			_, err = os.Stat(filepath.Join(store.Dir(), rec.ID+".json"))
			Expect(os.IsNotExist(err)).To(BeTrue())

			Expect(store.Save(ctx, singleRecord(), true)).To(Succeed())
		})

		It("should rebuild a missing index on reopen", func() {
			Expect(os.Remove(filepath.Join(store.Dir(), "index.json"))).To(Succeed())

			reopened, err := storage.NewKeystoreStore(zap.NewNop().Sugar(), root)
			Expect(err).NotTo(HaveOccurred())

			loaded, err := reopened.LoadByAddress(ctx, common.HexToAddress(rec.Addresses[0]))
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.ID).To(Equal(rec.ID))
		})

		It("should rebuild a corrupt index on reopen", func() {
			Expect(os.WriteFile(filepath.Join(store.Dir(), "index.json"), []byte("{"), 0o600)).To(Succeed())

			reopened, err := storage.NewKeystoreStore(zap.NewNop().Sugar(), root)
			Expect(err).NotTo(HaveOccurred())

			_, err = reopened.LoadByAddress(ctx, common.HexToAddress(rec.Addresses[0]))
			Expect(err).NotTo(HaveOccurred())
		})
	})

	It("should replace an HD record as accounts are derived", func() {
		hd := hdKeystore()
		Expect(store.Save(ctx, hd.Record(), true)).To(Succeed())

		child, err := hd.DeriveChildAccount(password)
		Expect(err).NotTo(HaveOccurred())
		Expect(store.Save(ctx, hd.Record(), false)).To(Succeed())

		loaded, err := store.LoadByAddress(ctx, child)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Addresses).To(HaveLen(2))

		km, err := keystore.Load(loaded)
		Expect(err).NotTo(HaveOccurred())
		Expect(km.VerifyPassword(password)).To(BeTrue())
	})

	It("should return ErrNotFound for unknown addresses and ids", func() {
		_, err := store.LoadByAddress(ctx, common.HexToAddress("0x01"))
		Expect(err).To(MatchError(storage.ErrNotFound))

		_, err = store.LoadByID(ctx, "../../etc/passwd")
		Expect(err).To(MatchError(storage.ErrNotFound))

		err = store.Delete(ctx, common.HexToAddress("0x01"))
		Expect(err).To(MatchError(storage.ErrNotFound))
	})

	It("should reject malformed records", func() {
		rec := singleRecord()
		rec.Crypto.CipherParams.IV = ""
		Expect(store.Save(ctx, rec, true)).To(MatchError(keystore.ErrMalformedKeystore))
	})

	It("should skip corrupt and temporary files when loading", func() {
		rec := singleRecord()
		Expect(store.Save(ctx, rec, true)).To(Succeed())

		hd := hdKeystore().Record()
		data, err := json.Marshal(hd)
		Expect(err).NotTo(HaveOccurred())

		Expect(os.WriteFile(filepath.Join(store.Dir(), hd.ID+".json"), data[:len(data)/2], 0o600)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(store.Dir(), "."+hd.ID+".json.tmp-1"), data, 0o600)).To(Succeed())

		records, err := store.LoadAll(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].ID).To(Equal(rec.ID))
	})

	It("should order records by creation time", func() {
		first := singleRecord()
		second := hdKeystore().Record()
		second.CreatedAt = first.CreatedAt.Add(-1)

		Expect(store.Save(ctx, first, true)).To(Succeed())
		Expect(store.Save(ctx, second, true)).To(Succeed())

		records, err := store.LoadAll(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
		Expect(records[0].ID).To(Equal(second.ID))
		Expect(records[1].ID).To(Equal(first.ID))
	})

	Context("when saving concurrently", func() {
		It("should keep exactly one record when two records claim the same address", func() {
			a, b := singleRecord(), singleRecord()

			var wg sync.WaitGroup
			errs := make([]error, 2)
			for i, rec := range []*keystore.Record{a, b} {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					errs[i] = store.Save(ctx, rec, true)
				}()
			}
			wg.Wait()

			succeeded := 0
			for _, err := range errs {
				if err == nil {
					succeeded++
				} else {
					Expect(err).To(MatchError(storage.ErrDuplicateKeystore))
				}
			}
			Expect(succeeded).To(Equal(1))

			records, err := store.LoadAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))

			km, err := keystore.Load(records[0])
			Expect(err).NotTo(HaveOccurred())
			Expect(km.VerifyPassword(password)).To(BeTrue())
		})

		It("should never tear a record rewritten by many writers", func() {
			hd := hdKeystore()
			Expect(store.Save(ctx, hd.Record(), true)).To(Succeed())

			versions := []*keystore.Record{hd.Record()}
			for range 3 {
				_, err := hd.DeriveChildAccount(password)
				Expect(err).NotTo(HaveOccurred())
				versions = append(versions, hd.Record())
			}

			var wg sync.WaitGroup
			for _, v := range versions {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					Expect(store.Save(ctx, v, false)).To(Succeed())
				}()
			}
			wg.Wait()

			records, err := store.LoadAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(versions).To(ContainElement(records[0]))

			entries, err := os.ReadDir(store.Dir())
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
		})
	})
})
