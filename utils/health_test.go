package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"washly/utils"

	"github.com/stretchr/testify/assert"
)

func TestCheckGatewayUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.True(t, utils.CheckGateway(srv.Client(), srv.URL))
}

func TestCheckGatewayNotFoundStillCountsAsUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	assert.True(t, utils.CheckGateway(srv.Client(), srv.URL))
}

func TestCheckGatewayServerErrorCountsAsDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.False(t, utils.CheckGateway(srv.Client(), srv.URL))
}

func TestCheckGatewayUnreachable(t *testing.T) {
	client := &http.Client{Timeout: 200 * time.Millisecond}
	assert.False(t, utils.CheckGateway(client, "http://127.0.0.1:1"))
}
