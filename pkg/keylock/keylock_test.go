package keylock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"ethwallet/pkg/keylock"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("KeyedMutex", func() {
	var (
		km  *keylock.KeyedMutex
		ctx context.Context
	)

	BeforeEach(func() {
		km = keylock.New()
		ctx = context.Background()
	})

	When("the same key is locked concurrently", func() {
		It("should allow a single holder at a time", func() {
			var (
				wg      sync.WaitGroup
				holders int32
				maxSeen int32
			)

			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()

					unlock, err := km.Lock(ctx, "0xabc")
					Expect(err).NotTo(HaveOccurred())
					defer unlock()

					current := atomic.AddInt32(&holders, 1)
					for {
						seen := atomic.LoadInt32(&maxSeen)
						if current <= seen || atomic.CompareAndSwapInt32(&maxSeen, seen, current) {
							break
						}
					}
					time.Sleep(time.Millisecond)
					atomic.AddInt32(&holders, -1)
				}()
			}
			wg.Wait()

			Expect(maxSeen).To(Equal(int32(1)))
			Expect(km.Held("0xabc")).To(BeFalse())
		})
	})

	When("different keys are locked", func() {
		It("should not block each other", func() {
			unlockA, err := km.Lock(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			defer unlockA()

			done := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				unlockB, err := km.Lock(ctx, "b")
				Expect(err).NotTo(HaveOccurred())
				unlockB()
				close(done)
			}()

			Eventually(done).Should(BeClosed())
		})
	})

	When("the context is cancelled while waiting", func() {
		It("should return the context error and release the waiter", func() {
			unlock, err := km.Lock(ctx, "a")
			Expect(err).NotTo(HaveOccurred())

			waitCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
			defer cancel()

			_, err = km.Lock(waitCtx, "a")
			Expect(err).To(MatchError(context.DeadlineExceeded))

			unlock()
			Expect(km.Held("a")).To(BeFalse())
		})
	})

	When("the unlock func is called twice", func() {
		It("should release only once", func() {
			unlock, err := km.Lock(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			unlock()
			unlock()

			again, err := km.Lock(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			again()
		})
	})
})
