package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goldsaver/memberkit/pkg/clientip"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		trusted []string
		want    string
	}{
		{name: "remote addr", remote: "203.0.113.7:5123", want: "203.0.113.7"},
		{name: "remote without port", remote: "203.0.113.7", want: "203.0.113.7"},
		{name: "ipv6 remote", remote: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "forwarded first valid", headers: map[string]string{"X-Forwarded-For": "garbage, 198.51.100.4, 10.0.0.1"}, remote: "10.0.0.2:80", want: "198.51.100.4"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": " 198.51.100.9 "}, remote: "10.0.0.2:80", want: "198.51.100.9"},
		{name: "mapped ipv4", headers: map[string]string{"X-Real-IP": "::ffff:198.51.100.9"}, remote: "10.0.0.2:80", want: "198.51.100.9"},
		{name: "invalid headers fall back", headers: map[string]string{"X-Forwarded-For": "unknown"}, remote: "10.0.0.2:80", want: "10.0.0.2"},
		{
			name:    "configured header only",
			headers: map[string]string{"X-Forwarded-For": "198.51.100.4", "CF-Connecting-IP": "192.0.2.10"},
			remote:  "10.0.0.2:80",
			trusted: []string{"CF-Connecting-IP"},
			want:    "192.0.2.10",
		},
		{name: "nothing valid", remote: "pipe", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.FromRequest(r, tt.trusted...))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "198.51.100.4")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "198.51.100.4", got)
}

func TestExtractor(t *testing.T) {
	t.Parallel()

	_, ok := clientip.Extractor(context.Background())
	assert.False(t, ok)

	attr, ok := clientip.Extractor(clientip.WithContext(context.Background(), "198.51.100.4"))
	assert.True(t, ok)
	assert.Equal(t, "client_ip", attr.Key)
	assert.Equal(t, "198.51.100.4", attr.Value.String())
}
