//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/wb_inventory/internal/cache/memory"
	"github.com/Gunvolt24/wb_inventory/internal/domain"
	pgrepo "github.com/Gunvolt24/wb_inventory/internal/repo/postgres"
	"github.com/Gunvolt24/wb_inventory/internal/testutil"
	rest "github.com/Gunvolt24/wb_inventory/internal/transport/http"
	"github.com/Gunvolt24/wb_inventory/internal/usecase"
	"github.com/Gunvolt24/wb_inventory/pkg/logger"
)

type stack struct {
	server *httptest.Server
	repo   *pgrepo.ProductRepository
}

func startStack(ctx context.Context, t *testing.T) *stack {
	t.Helper()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	repo := pgrepo.NewProductRepository(pg.Pool)
	products := usecase.NewProductService(repo, cachemem.NewProductLRU(100, time.Minute), logg)
	items := usecase.NewItemService(products, pgrepo.NewProductItemRepository(pg.Pool), logg, 1000)

	h := rest.NewHandler(products, items, logg, 2*time.Second)
	ts := httptest.NewServer(rest.NewRouter(h, "test"))
	t.Cleanup(ts.Close)

	return &stack{server: ts, repo: repo}
}

func (s *stack) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, s.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// GET /api/product/:code — 200 для засеянного продукта, 404 для неизвестного
func TestHTTP_GetProduct_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()
	s := startStack(ctx, t)

	def := testutil.MakeProduct(testutil.WithPrice(250))
	_, err := s.repo.Insert(ctx, def)
	require.NoError(t, err)

	resp := s.do(t, http.MethodGet, "/api/product/"+def.Code, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.ProductDefinition
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, def.Code, got.Code)
	require.Equal(t, int64(250), got.Price)
	require.Equal(t, def.ID, got.ID)

	resp = s.do(t, http.MethodGet, "/api/product/missing-"+testutil.UniqSuffix(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Импорт, просмотр и выдача единиц до исчерпания (409)
func TestHTTP_ItemsLifecycle_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()
	s := startStack(ctx, t)

	def := testutil.MakeProduct()
	_, err := s.repo.Insert(ctx, def)
	require.NoError(t, err)

	codes := testutil.ItemCodes(3)
	resp := s.do(t, http.MethodPut, "/api/productitem/import/"+def.Code, codes)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/productitem/"+def.Code+"?limit=10", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []domain.ProductItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 3)

	for i := 0; i < len(codes); i++ {
		resp = s.do(t, http.MethodPut, "/api/productitem/export/"+def.Code, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode, "export #%d", i)
	}
	resp = s.do(t, http.MethodPut, "/api/productitem/export/"+def.Code, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = s.do(t, http.MethodPut, "/api/productitem/import/unknown-"+testutil.UniqSuffix(), []string{"x"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodPut, "/api/productitem/import/"+def.Code, []string{"dup", "dup"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Параллельная выдача: каждая единица выдаётся ровно один раз
func TestHTTP_ExportConcurrent_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()
	s := startStack(ctx, t)

	def := testutil.MakeProduct()
	_, err := s.repo.Insert(ctx, def)
	require.NoError(t, err)

	const n = 5
	resp := s.do(t, http.MethodPut, "/api/productitem/import/"+def.Code, testutil.ItemCodes(n))
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok, taken int
	)
	for i := 0; i < 2*n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, _ := http.NewRequest(http.MethodPut, s.server.URL+"/api/productitem/export/"+def.Code, http.NoBody)
			r, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			_ = r.Body.Close()
			mu.Lock()
			defer mu.Unlock()
			switch r.StatusCode {
			case http.StatusNoContent:
				ok++
			case http.StatusConflict:
				taken++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, n, ok)
	require.Equal(t, n, taken)
}
