package keystore_test

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"ethwallet/internal/keystore"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	firstHD      = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
	secondHD     = "0x6Fac4D18c912343BF86fa7049364Dd4E424Ab9C0"

	testKey     = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testKeyAddr = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
)

var (
	pw1   = []byte("pw1")
	wrong = []byte("wrong")
)

var _ = Describe("Keystore", func() {
	Describe("NewFromMnemonic", func() {
		var hd *keystore.HDKeystore

		BeforeEach(func() {
			var err error
			hd, err = keystore.NewFromMnemonic(testMnemonic, pw1, keystore.LightScryptParams)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should derive the first account on the standard path", func() {
			Expect(hd.Kind()).To(Equal(keystore.KindHD))
			Expect(hd.Addresses()).To(Equal([]common.Address{common.HexToAddress(firstHD)}))
		})

		It("should verify the password it was created with", func() {
			Expect(hd.VerifyPassword(pw1)).To(BeTrue())
			Expect(hd.VerifyPassword(wrong)).To(BeFalse())
		})

		It("should never persist the mnemonic or seed in plaintext", func() {
			data, err := json.Marshal(hd.Record())
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).NotTo(ContainSubstring("abandon"))
			Expect(hd.Record().Validate()).To(Succeed())
		})

		It("should accept irregular whitespace", func() {
			spaced := "  " + strings.ReplaceAll(testMnemonic, " ", "   ") + "\n"
			other, err := keystore.NewFromMnemonic(spaced, pw1, keystore.LightScryptParams)
			Expect(err).NotTo(HaveOccurred())
			Expect(other.Addresses()).To(Equal(hd.Addresses()))
		})

		It("should reject a mnemonic with a bad checksum", func() {
			bad := strings.Replace(testMnemonic, "about", "abandon", 1)
			_, err := keystore.NewFromMnemonic(bad, pw1, keystore.LightScryptParams)
			Expect(err).To(MatchError(keystore.ErrInvalidMnemonic))
		})

		It("should reject unknown words", func() {
			_, err := keystore.NewFromMnemonic("hello world", pw1, keystore.LightScryptParams)
			Expect(err).To(MatchError(keystore.ErrInvalidMnemonic))
		})

		Context("when deriving child accounts", func() {
			It("should append sequential distinct addresses", func() {
				second, err := hd.DeriveChildAccount(pw1)
				Expect(err).NotTo(HaveOccurred())
				Expect(second).To(Equal(common.HexToAddress(secondHD)))

				third, err := hd.DeriveChildAccount(pw1)
				Expect(err).NotTo(HaveOccurred())
				Expect(third).NotTo(Equal(second))

				Expect(hd.Addresses()).To(Equal([]common.Address{
					common.HexToAddress(firstHD), second, third,
				}))
				rec := hd.Record()
				Expect(rec.HD.NextIndex).To(Equal(uint32(3)))
				Expect(rec.Validate()).To(Succeed())
			})

			It("should fail with the wrong password and leave the accounts unchanged", func() {
				before := hd.Record()
				_, err := hd.DeriveChildAccount(wrong)
				Expect(err).To(MatchError(keystore.ErrInvalidPassword))
				Expect(hd.Record()).To(Equal(before))
			})

			It("should re-encrypt with a fresh salt", func() {
				before := hd.Record().Crypto.KDFParams.Salt
				_, err := hd.DeriveChildAccount(pw1)
				Expect(err).NotTo(HaveOccurred())
				Expect(hd.Record().Crypto.KDFParams.Salt).NotTo(Equal(before))
				Expect(hd.VerifyPassword(pw1)).To(BeTrue())
			})

			It("should unlock a derived child", func() {
				child, err := hd.DeriveChildAccount(pw1)
				Expect(err).NotTo(HaveOccurred())

				handle, err := hd.Unlock(pw1, child)
				Expect(err).NotTo(HaveOccurred())
				defer handle.Close()
				Expect(handle.Address()).To(Equal(child))
			})
		})
	})

	Describe("NewFromPrivateKey", func() {
		It("should import a valid key and round trip it", func() {
			single, err := keystore.NewFromPrivateKey("0x"+testKey, pw1, keystore.LightScryptParams)
			Expect(err).NotTo(HaveOccurred())
			Expect(single.Addresses()).To(Equal([]common.Address{common.HexToAddress(testKeyAddr)}))

			err = keystore.WithKey(single, pw1, common.HexToAddress(testKeyAddr), func(h *keystore.KeyHandle) error {
				raw, err := h.PrivateKeyBytes()
				if err != nil {
					return err
				}
				Expect(hex.EncodeToString(raw)).To(Equal(testKey))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
		})

		DescribeTable("invalid keys",
			func(key string) {
				_, err := keystore.NewFromPrivateKey(key, pw1, keystore.LightScryptParams)
				Expect(err).To(MatchError(keystore.ErrInvalidKey))
			},
			Entry("not hex", "zz"),
			Entry("too short", "0x1234"),
			Entry("zero scalar", strings.Repeat("0", 64)),
			Entry("curve order", "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
		)

		It("should fail closed on a wrong password", func() {
			single, err := keystore.NewFromPrivateKey(testKey, pw1, keystore.LightScryptParams)
			Expect(err).NotTo(HaveOccurred())

			handle, err := single.Unlock(wrong, common.HexToAddress(testKeyAddr))
			Expect(err).To(MatchError(keystore.ErrInvalidPassword))
			Expect(handle).To(BeNil())
			Expect(single.VerifyPassword(wrong)).To(BeFalse())
			Expect(single.VerifyPassword(pw1)).To(BeTrue())
		})

		It("should reject accounts it does not hold", func() {
			single, err := keystore.NewFromPrivateKey(testKey, pw1, keystore.LightScryptParams)
			Expect(err).NotTo(HaveOccurred())

			_, err = single.Unlock(pw1, common.HexToAddress(firstHD))
			Expect(err).To(MatchError(keystore.ErrUnknownAccount))
		})
	})

	Describe("KeyHandle", func() {
		It("should sign deterministically and refuse to sign after close", func() {
			single, err := keystore.NewFromPrivateKey(testKey, pw1, keystore.LightScryptParams)
			Expect(err).NotTo(HaveOccurred())
			handle, err := single.Unlock(pw1, common.HexToAddress(testKeyAddr))
			Expect(err).NotTo(HaveOccurred())

			hash := crypto.Keccak256([]byte("message"))
			sig1, err := handle.SignHash(hash)
			Expect(err).NotTo(HaveOccurred())
			sig2, err := handle.SignHash(hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(sig1).To(Equal(sig2))

			pub, err := crypto.SigToPub(hash, sig1)
			Expect(err).NotTo(HaveOccurred())
			Expect(crypto.PubkeyToAddress(*pub)).To(Equal(common.HexToAddress(testKeyAddr)))

			handle.Close()
			handle.Close()
			_, err = handle.SignHash(hash)
			Expect(err).To(MatchError(keystore.ErrHandleClosed))
			_, err = handle.PrivateKeyBytes()
			Expect(err).To(MatchError(keystore.ErrHandleClosed))
		})

		It("should close the handle even when the callback fails", func() {
			single, err := keystore.NewFromPrivateKey(testKey, pw1, keystore.LightScryptParams)
			Expect(err).NotTo(HaveOccurred())

			var leaked *keystore.KeyHandle
			err = keystore.WithKey(single, pw1, common.HexToAddress(testKeyAddr), func(h *keystore.KeyHandle) error {
				leaked = h
				return keystore.ErrUnknownAccount
			})
			Expect(err).To(MatchError(keystore.ErrUnknownAccount))
			_, err = leaked.SignHash(make([]byte, 32))
			Expect(err).To(MatchError(keystore.ErrHandleClosed))
		})
	})

	Describe("Load", func() {
		It("should rebuild key material from its record", func() {
			hd, err := keystore.NewFromMnemonic(testMnemonic, pw1, keystore.LightScryptParams)
			Expect(err).NotTo(HaveOccurred())

			data, err := json.Marshal(hd.Record())
			Expect(err).NotTo(HaveOccurred())
			var rec keystore.Record
			Expect(json.Unmarshal(data, &rec)).To(Succeed())

			km, err := keystore.Load(&rec)
			Expect(err).NotTo(HaveOccurred())
			Expect(km.Kind()).To(Equal(keystore.KindHD))
			Expect(km.ID()).To(Equal(hd.ID()))
			Expect(km.VerifyPassword(pw1)).To(BeTrue())
		})

		It("should not decrypt a ciphertext moved to another record", func() {
			a, err := keystore.NewFromPrivateKey(testKey, pw1, keystore.LightScryptParams)
			Expect(err).NotTo(HaveOccurred())
			b, err := keystore.NewFromPrivateKey(testKey, pw1, keystore.LightScryptParams)
			Expect(err).NotTo(HaveOccurred())

			rec := b.Record()
			rec.Crypto = a.Record().Crypto
			km, err := keystore.Load(rec)
			Expect(err).NotTo(HaveOccurred())
			Expect(km.VerifyPassword(pw1)).To(BeFalse())
		})

		DescribeTable("malformed records",
			func(mutate func(*keystore.Record)) {
				single, err := keystore.NewFromPrivateKey(testKey, pw1, keystore.LightScryptParams)
				Expect(err).NotTo(HaveOccurred())
				rec := single.Record()
				mutate(rec)

				_, err = keystore.Load(rec)
				Expect(err).To(MatchError(keystore.ErrMalformedKeystore))
			},
			Entry("unknown version", func(r *keystore.Record) { r.Version = 9 }),
			Entry("bad id", func(r *keystore.Record) { r.ID = "nope" }),
			Entry("no addresses", func(r *keystore.Record) { r.Addresses = nil }),
			Entry("bad address", func(r *keystore.Record) { r.Addresses = []string{"0x12"} }),
			Entry("unknown kind", func(r *keystore.Record) { r.Kind = "paper" }),
			Entry("hd without params", func(r *keystore.Record) { r.Kind = keystore.KindHD }),
			Entry("truncated iv", func(r *keystore.Record) { r.Crypto.CipherParams.IV = "00" }),
			Entry("non-hex ciphertext", func(r *keystore.Record) { r.Crypto.CipherText = "xyz" }),
			Entry("bad kdf work factor", func(r *keystore.Record) { r.Crypto.KDFParams.N = 3 }),
			Entry("oversized kdf work factor", func(r *keystore.Record) { r.Crypto.KDFParams.N = 1 << 40 }),
			Entry("oversized kdf block size", func(r *keystore.Record) { r.Crypto.KDFParams.R = 1 << 20 }),
			Entry("unsupported cipher", func(r *keystore.Record) { r.Crypto.Cipher = "aes-128-ctr" }),
		)
	})

	It("should generate valid mnemonics", func() {
		mnemonic, err := keystore.NewMnemonic()
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Fields(mnemonic)).To(HaveLen(12))

		_, err = keystore.NewFromMnemonic(mnemonic, pw1, keystore.LightScryptParams)
		Expect(err).NotTo(HaveOccurred())
	})
})
