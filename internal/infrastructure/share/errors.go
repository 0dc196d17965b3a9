package share

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// Kind classifies share failures so callers can decide whether a retry makes sense.
type Kind string

const (
	KindInput     Kind = "input"
	KindTransport Kind = "transport"
	KindStatus    Kind = "status"
	KindAuth      Kind = "auth"
	KindFormat    Kind = "format"
)

// Error is the only error FetchAll returns. Message is safe to show to users.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func inputError(msg string) *Error {
	return &Error{Kind: KindInput, Message: msg}
}

func statusError(what string, status int) *Error {
	return &Error{
		Kind:    KindStatus,
		Status:  status,
		Message: fmt.Sprintf("%sに失敗しました（HTTP %d）", what, status),
	}
}

func authError(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

func formatError(msg string, err error) *Error {
	return &Error{Kind: KindFormat, Message: msg, Err: err}
}

func transportError(err error) *Error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return &Error{Kind: KindTransport, Message: "サーバーへの接続がタイムアウトしました", Err: err}
	case errors.Is(err, syscall.ECONNREFUSED):
		return &Error{Kind: KindTransport, Message: "サーバーに接続できませんでした（接続が拒否されました）", Err: err}
	default:
		return &Error{Kind: KindTransport, Message: "サーバーとの通信中にエラーが発生しました", Err: err}
	}
}
