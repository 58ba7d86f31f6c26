package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestLimitBlocksAfterBurst(t *testing.T) {
	rl := New(1, 2)
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
		req.RemoteAddr = "10.0.0.1:4321"
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestLimitIsPerClient(t *testing.T) {
	rl := New(1, 1)
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	for _, addr := range []string{"10.0.0.1:1111", "10.0.0.2:2222"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		assert.Equal(t, http.StatusOK, rec.Code, "first request from %s", addr)
	}
}
