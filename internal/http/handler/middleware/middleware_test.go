package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"ethwallet/internal/http/handler/middleware"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		seen    string
		next    http.Handler
		handler http.Handler
		w       *httptest.ResponseRecorder
		req     *http.Request
	)

	BeforeEach(func() {
		seen = ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.FromContext(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})
		handler = middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next)
		handler = middleware.NewRequestIDMiddleware().RequestID(handler)
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/wallet/balance", nil)
	})

	JustBeforeEach(func() {
		handler.ServeHTTP(w, req)
	})

	It("assigns a request id and passes the status through", func() {
		Expect(w.Code).To(Equal(http.StatusTeapot))
		_, err := uuid.Parse(seen)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Header().Get("X-Request-ID")).To(Equal(seen))
	})

	When("the client sends a request id", func() {
		var id string

		BeforeEach(func() {
			id = uuid.NewString()
			req.Header.Set("X-Request-ID", id)
		})

		It("keeps it", func() {
			Expect(seen).To(Equal(id))
		})
	})

	When("the client sends garbage", func() {
		BeforeEach(func() {
			req.Header.Set("X-Request-ID", "not-an-id")
		})

		It("replaces it", func() {
			Expect(seen).NotTo(Equal("not-an-id"))
			Expect(seen).NotTo(BeEmpty())
		})
	})
})
