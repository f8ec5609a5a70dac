package server_test

import (
	"ethwallet/internal/http/server"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	It("serves until shut down", func() {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		port := strconv.Itoa(l.Addr().(*net.TCPAddr).Port)
		Expect(l.Close()).To(Succeed())

		mux := http.NewServeMux()
		mux.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "pong")
		})

		srv := server.NewHTTP(zap.NewNop().Sugar(), mux, port)
		errChan := srv.Run()

		var body string
		Eventually(func() error {
			resp, err := http.Get("http://127.0.0.1:" + port + "/ping")
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			b, err := io.ReadAll(resp.Body)
			body = string(b)
			return err
		}).Should(Succeed())
		Expect(body).To(Equal("pong"))

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})
})
