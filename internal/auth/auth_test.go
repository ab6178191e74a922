package auth

import (
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerAuthenticator_Check(t *testing.T) {
	a := NewBearerAuthenticator("s3cret")

	assert.True(t, a.Check("s3cret"))
	assert.False(t, a.Check("S3cret"))
	assert.False(t, a.Check("s3cret "))
	assert.False(t, a.Check(""))
	assert.True(t, a.Enabled())
}

func TestBearerAuthenticator_EmptySecretDeniesAll(t *testing.T) {
	a := NewBearerAuthenticator("")

	assert.False(t, a.Enabled())
	assert.False(t, a.Check(""))
	assert.False(t, a.Check("anything"))
}

func TestBearerAuthenticator_SetSecret(t *testing.T) {
	a := NewBearerAuthenticator("old")
	a.SetSecret("new")

	assert.False(t, a.Check("old"))
	assert.True(t, a.Check("new"))
}

func TestBearerAuthenticator_ConcurrentSwap(t *testing.T) {
	a := NewBearerAuthenticator("a")
	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = a.Check("a")
			}
		}()
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				a.SetSecret("a")
			} else {
				a.SetSecret("b")
			}
		}()
	}
	wg.Wait()
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer", "Bearer abc", "abc"},
		{"missing", "", ""},
		{"basic scheme", "Basic abc", ""},
		{"lowercase scheme", "bearer abc", ""},
		{"empty token", "Bearer ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/tasks", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, ExtractBearer(r))
		})
	}
}
