package ethereum

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/ethereum/go-ethereum/rpc"
)

type ErrorKind string

const (
	ClientError     ErrorKind = "client_error"
	ServerError     ErrorKind = "server_error"
	NodeError       ErrorKind = "node_error"
	InputError      ErrorKind = "input_error"
	ProcessingError ErrorKind = "processing_error"
	UnknownError    ErrorKind = "unknown"
)

// JSON-RPC 2.0 codes for requests the node could not parse or accept.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeInvalidParams  = -32602
)

var ErrTxNotFound error = errors.New("transaction not found")

// ChainError is the classified form of every failure coming from the node.
// Code carries the HTTP status for client and server errors and the
// JSON-RPC code for node and input errors.
type ChainError struct {
	Kind    ErrorKind
	Code    int
	Message string
	Err     error
}

func (e *ChainError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ChainError) Unwrap() error {
	return e.Err
}

// Classify maps transport, JSON-RPC and context errors onto ChainError.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var chainErr *ChainError
	if errors.As(err, &chainErr) {
		return err
	}

	ce := &ChainError{Kind: UnknownError, Message: err.Error(), Err: err}

	var httpErr rpc.HTTPError
	var rpcErr rpc.Error
	var netErr net.Error

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		ce.Kind = ProcessingError
	case errors.As(err, &httpErr):
		ce.Code = httpErr.StatusCode
		ce.Message = httpErr.Status
		if httpErr.StatusCode >= 500 {
			ce.Kind = ServerError
		} else {
			ce.Kind = ClientError
		}
	case errors.As(err, &rpcErr):
		ce.Code = rpcErr.ErrorCode()
		switch rpcErr.ErrorCode() {
		case codeParseError, codeInvalidRequest, codeInvalidParams:
			ce.Kind = InputError
		default:
			ce.Kind = NodeError
		}
	case errors.As(err, &netErr):
		ce.Kind = ProcessingError
	}

	return ce
}
