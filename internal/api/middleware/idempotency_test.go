package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"user-service/internal/domain/idempotency"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type memoryIdempotencyStore struct {
	mu        sync.Mutex
	responses map[string]*idempotency.Response
}

func newMemoryIdempotencyStore() *memoryIdempotencyStore {
	return &memoryIdempotencyStore{responses: make(map[string]*idempotency.Response)}
}

func (s *memoryIdempotencyStore) Get(ctx context.Context, key string) (*idempotency.Response, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp, ok := s.responses[key]
	return resp, ok, nil
}

func (s *memoryIdempotencyStore) Set(ctx context.Context, key string, resp *idempotency.Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[key] = resp
	return nil
}

func setupIdempotentRouter(store idempotency.Store, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/users", Idempotency(store), func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusCreated, gin.H{"id": uuid.New().String()})
	})
	return r
}

func postUsers(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	hits := 0
	r := setupIdempotentRouter(newMemoryIdempotencyStore(), &hits)

	first := postUsers(r, "key-1")
	if first.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", first.Code)
	}

	second := postUsers(r, "key-1")
	if second.Code != http.StatusCreated {
		t.Fatalf("Expected replayed status 201, got %d", second.Code)
	}
	if second.Body.String() != first.Body.String() {
		t.Errorf("Expected identical replayed body, got %s and %s", first.Body.String(), second.Body.String())
	}
	if hits != 1 {
		t.Errorf("Expected handler to run once, ran %d times", hits)
	}
}

func TestIdempotency_DistinctKeys(t *testing.T) {
	hits := 0
	r := setupIdempotentRouter(newMemoryIdempotencyStore(), &hits)

	postUsers(r, "key-1")
	postUsers(r, "key-2")

	if hits != 2 {
		t.Errorf("Expected handler to run twice, ran %d times", hits)
	}
}

func TestIdempotency_FailedResponseNotStored(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hits := 0
	store := newMemoryIdempotencyStore()
	r := gin.New()
	r.POST("/users", Idempotency(store), func(c *gin.Context) {
		hits++
		if hits == 1 {
			c.JSON(http.StatusConflict, gin.H{"error": "Conflict"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": uuid.New().String()})
	})

	first := postUsers(r, "key-1")
	if first.Code != http.StatusConflict {
		t.Fatalf("Expected status 409, got %d", first.Code)
	}
	if len(store.responses) != 0 {
		t.Fatalf("Expected a failed response not to be stored, got %d entries", len(store.responses))
	}

	// A retry with the same key reaches the handler and can succeed.
	second := postUsers(r, "key-1")
	if second.Code != http.StatusCreated {
		t.Fatalf("Expected retried status 201, got %d", second.Code)
	}
	if hits != 2 {
		t.Errorf("Expected handler to run twice, ran %d times", hits)
	}
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	hits := 0
	store := newMemoryIdempotencyStore()
	r := setupIdempotentRouter(store, &hits)

	postUsers(r, "")
	postUsers(r, "")

	if hits != 2 {
		t.Errorf("Expected handler to run twice without header, ran %d times", hits)
	}
	if len(store.responses) != 0 {
		t.Errorf("Expected nothing stored without header, got %d entries", len(store.responses))
	}
}
