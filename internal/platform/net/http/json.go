package http

import (
	"net/http"

	"stockcount/internal/platform/net/http/bind"
)

// JSONHandler binds and validates T from the body, then calls fn
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return JSONHandlerStatus(http.StatusOK, fn)
}

// JSONHandlerStatus is JSONHandler answering status on success
// a Response returned by fn is written as is
func JSONHandlerStatus[T any](status int, fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		return wrap(status, out, err)
	})
}

// JSONHandlerNoBody calls fn without reading the body
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		return wrap(http.StatusOK, out, err)
	})
}

func wrap(status int, out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return Response{Status: status, Body: out}
}
