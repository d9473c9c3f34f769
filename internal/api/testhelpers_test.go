package api

import (
	"errors"
	"net/http"
)

// errRT is a RoundTripper that always fails, for exercising transport-fault
// paths.
type errRT struct{}

func (errRT) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("transport down")
}

func errClient() *http.Client { return &http.Client{Transport: &errRT{}} }
