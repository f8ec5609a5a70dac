package cmd

import (
	"errors"
	"net/http"
	"os"
	"syscall"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubServer struct {
	errChan     chan error
	shutdownErr error
	shutdowns   int
}

func (s *stubServer) Run() <-chan error {
	return s.errChan
}

func (s *stubServer) Shutdown() error {
	s.shutdowns++
	return s.shutdownErr
}

var _ = Describe("run", func() {
	var (
		srv *stubServer
		sig chan os.Signal
	)

	BeforeEach(func() {
		srv = &stubServer{errChan: make(chan error, 1)}
		sig = make(chan os.Signal, 1)
	})

	When("a signal arrives", func() {
		BeforeEach(func() {
			sig <- syscall.SIGTERM
		})

		It("shuts down cleanly", func() {
			Expect(run(srv, sig)).To(Succeed())
			Expect(srv.shutdowns).To(Equal(1))
		})

		It("reports a failed shutdown", func() {
			srv.shutdownErr = errors.New("connections still open")
			Expect(run(srv, sig)).To(MatchError(ContainSubstring("connections still open")))
		})
	})

	When("the server stops on its own", func() {
		It("returns the serve error", func() {
			srv.errChan <- errors.New("address already in use")
			Expect(run(srv, sig)).To(MatchError("address already in use"))
			Expect(srv.shutdowns).To(Equal(1))
		})

		It("reports a failed shutdown after the server was closed", func() {
			srv.errChan <- http.ErrServerClosed
			srv.shutdownErr = errors.New("shutdown timed out")
			Expect(run(srv, sig)).To(MatchError(ContainSubstring("shutdown timed out")))
		})
	})
})
