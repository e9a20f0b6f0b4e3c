package clients

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ujwegh/leadmart/internal/app/config"
)

func TestProofClientImpl_CheckProof(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		switch r.URL.Path {
		case "/ok.png":
			w.WriteHeader(http.StatusOK)
		case "/gone.png":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer server.Close()

	client := NewProofClient(config.AppConfig{ProofCheckMaxRPS: 100, ProofCheckTimeoutSec: 5})

	tests := []struct {
		name            string
		path            string
		wantErr         bool
		wantUnreachable bool
	}{
		{name: "Reachable proof", path: "/ok.png"},
		{name: "Missing proof", path: "/gone.png", wantErr: true, wantUnreachable: true},
		{name: "Host unavailable", path: "/busy.png", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.CheckProof(server.URL + tt.path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantUnreachable, errors.Is(err, ErrProofUnreachable))
		})
	}
}
