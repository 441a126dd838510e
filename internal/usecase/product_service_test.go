package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_inventory/internal/cache/memory"
	"github.com/Gunvolt24/wb_inventory/internal/domain"
	"github.com/Gunvolt24/wb_inventory/internal/ports/mocks"
	"github.com/Gunvolt24/wb_inventory/internal/testutil"
	"github.com/Gunvolt24/wb_inventory/internal/usecase"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newMockedProductService(t *testing.T) (*usecase.ProductService, *mocks.MockProductStore, *mocks.MockProductCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockProductStore(ctrl)
	cache := mocks.NewMockProductCache(ctrl)
	return usecase.NewProductService(store, cache, noopLogger{}), store, cache
}

func TestApplyChange_StatusNew_Inserts(t *testing.T) {
	svc, store, cache := newMockedProductService(t)

	gomock.InOrder(
		store.EXPECT().Insert(gomock.Any(), &domain.ProductDefinition{Code: "SKU1", Status: 0, Price: 100}).
			Return("id-1", nil),
		cache.EXPECT().Delete(gomock.Any(), "SKU1"),
	)

	out, err := svc.ApplyChange(context.Background(), &domain.ProductChangeRecord{Code: "SKU1", Status: 0, Price: 100})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeInserted, out)
}

func TestApplyChange_StatusUpdate_UpdatesCodeAndStatusOnly(t *testing.T) {
	svc, store, cache := newMockedProductService(t)

	// цена в UpdateByCode не передаётся вовсе
	store.EXPECT().UpdateByCode(gomock.Any(), "SKU1", domain.ProductStatusUpdate).Return(nil)
	cache.EXPECT().Delete(gomock.Any(), "SKU1")

	out, err := svc.ApplyChange(context.Background(), &domain.ProductChangeRecord{Code: "SKU1", Status: 1, Price: 999})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUpdated, out)
}

func TestApplyChange_StatusUpdate_NotFoundIsNoop(t *testing.T) {
	svc, store, _ := newMockedProductService(t)

	store.EXPECT().UpdateByCode(gomock.Any(), "ghost", domain.ProductStatusUpdate).Return(domain.ErrProductNotFound)

	out, err := svc.ApplyChange(context.Background(), &domain.ProductChangeRecord{Code: "ghost", Status: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNotFound, out)
}

func TestApplyChange_UnknownStatus_NoStoreCalls(t *testing.T) {
	svc, _, _ := newMockedProductService(t)

	for _, st := range []domain.ProductStatus{2, -1, 42} {
		out, err := svc.ApplyChange(context.Background(), &domain.ProductChangeRecord{Code: "X", Status: st})
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeNoop, out)
	}

	out, err := svc.ApplyChange(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNoop, out)
}

func TestApplyChange_StoreFailure(t *testing.T) {
	svc, store, _ := newMockedProductService(t)
	dbErr := errors.New("connection refused")

	store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return("", dbErr)
	_, err := svc.ApplyChange(context.Background(), &domain.ProductChangeRecord{Code: "A", Status: 0})
	require.ErrorIs(t, err, dbErr)

	store.EXPECT().UpdateByCode(gomock.Any(), "A", domain.ProductStatusUpdate).Return(dbErr)
	_, err = svc.ApplyChange(context.Background(), &domain.ProductChangeRecord{Code: "A", Status: 1})
	require.ErrorIs(t, err, dbErr)
}

// SKU1: вставка с ценой 100, затем status=1 с ценой 999 — цена остаётся 100.
func TestApplyChange_Scenario_PriceNotUpdated(t *testing.T) {
	store := testutil.NewMemProductStore()
	svc := usecase.NewProductService(store, memory.NewProductLRU(10, 0), noopLogger{})
	ctx := context.Background()

	_, err := svc.ApplyChange(ctx, &domain.ProductChangeRecord{Code: "SKU1", Status: 0, Price: 100})
	require.NoError(t, err)

	rows := store.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "SKU1", rows[0].Code)
	assert.Equal(t, domain.ProductStatusNew, rows[0].Status)
	assert.Equal(t, int64(100), rows[0].Price)

	// прогреваем кэш, чтобы проверить инвалидацию
	_, err = svc.GetProduct(ctx, "SKU1")
	require.NoError(t, err)

	_, err = svc.ApplyChange(ctx, &domain.ProductChangeRecord{Code: "SKU1", Status: 1, Price: 999})
	require.NoError(t, err)

	rows = store.Rows()
	require.Len(t, rows, 1, "update must not create a row")
	assert.Equal(t, domain.ProductStatusUpdate, rows[0].Status)
	assert.Equal(t, int64(100), rows[0].Price)

	got, err := svc.GetProduct(ctx, "SKU1")
	require.NoError(t, err)
	assert.Equal(t, domain.ProductStatusUpdate, got.Status, "cache must not serve stale status")
}

func TestApplyChange_UpdateUnknownCode_StoreUnchanged(t *testing.T) {
	store := testutil.NewMemProductStore()
	svc := usecase.NewProductService(store, memory.NewProductLRU(10, 0), noopLogger{})
	ctx := context.Background()

	_, err := svc.ApplyChange(ctx, &domain.ProductChangeRecord{Code: "A", Status: 0, Price: 1})
	require.NoError(t, err)
	before := store.Rows()

	out, err := svc.ApplyChange(ctx, &domain.ProductChangeRecord{Code: "B", Status: 1, Price: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNotFound, out)
	assert.Equal(t, before, store.Rows())
}

func TestGetProduct_CacheHit(t *testing.T) {
	svc, _, cache := newMockedProductService(t)

	def := &domain.ProductDefinition{Code: "SKU1"}
	cache.EXPECT().Get(gomock.Any(), "SKU1").Return(def, true)

	got, err := svc.GetProduct(context.Background(), "SKU1")
	require.NoError(t, err)
	assert.Same(t, def, got)
}

func TestGetProduct_CacheMiss_FetchAndCache(t *testing.T) {
	svc, store, cache := newMockedProductService(t)

	def := &domain.ProductDefinition{Code: "SKU1", Price: 5}
	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), "SKU1").Return(nil, false),
		store.EXPECT().GetByCode(gomock.Any(), "SKU1").Return(def, nil),
		cache.EXPECT().Set(gomock.Any(), def).Return(nil),
	)

	got, err := svc.GetProduct(context.Background(), "SKU1")
	require.NoError(t, err)
	assert.Equal(t, def, got)
}

// Обновление из цикла сверки между чтением из хранилища и записью в кэш:
// устаревшая строка в кэш не попадает, следующее чтение видит новый статус.
func TestGetProduct_UpdateDuringRead_StaleRowNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockProductStore(ctrl)
	cache := memory.NewProductLRU(10, 0)
	svc := usecase.NewProductService(store, cache, noopLogger{})
	ctx := context.Background()

	stale := &domain.ProductDefinition{ID: "p-1", Code: "SKU1", Status: domain.ProductStatusNew, Price: 100}
	fresh := &domain.ProductDefinition{ID: "p-1", Code: "SKU1", Status: domain.ProductStatusUpdate, Price: 100}

	gomock.InOrder(
		store.EXPECT().GetByCode(gomock.Any(), "SKU1").
			DoAndReturn(func(context.Context, string) (*domain.ProductDefinition, error) {
				out, err := svc.ApplyChange(ctx, &domain.ProductChangeRecord{Code: "SKU1", Status: 1, Price: 100})
				require.NoError(t, err)
				require.Equal(t, domain.OutcomeUpdated, out)
				return stale, nil
			}),
		store.EXPECT().UpdateByCode(gomock.Any(), "SKU1", domain.ProductStatusUpdate).Return(nil),
		store.EXPECT().GetByCode(gomock.Any(), "SKU1").Return(fresh, nil),
	)

	got, err := svc.GetProduct(ctx, "SKU1")
	require.NoError(t, err)
	assert.Equal(t, domain.ProductStatusNew, got.Status)
	assert.Equal(t, 0, cache.Len())

	got, err = svc.GetProduct(ctx, "SKU1")
	require.NoError(t, err)
	assert.Equal(t, domain.ProductStatusUpdate, got.Status)
	assert.Equal(t, 1, cache.Len())
}

// Мутация успела пройти между проверкой и Set: запись в кэше снимается повторно.
func TestGetProduct_UpdateDuringSet_Reinvalidated(t *testing.T) {
	svc, store, cache := newMockedProductService(t)
	ctx := context.Background()

	stale := &domain.ProductDefinition{Code: "SKU1", Status: domain.ProductStatusNew}
	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), "SKU1").Return(nil, false),
		store.EXPECT().GetByCode(gomock.Any(), "SKU1").Return(stale, nil),
		cache.EXPECT().Set(gomock.Any(), stale).DoAndReturn(func(context.Context, *domain.ProductDefinition) error {
			_, err := svc.ApplyChange(ctx, &domain.ProductChangeRecord{Code: "SKU1", Status: 1})
			require.NoError(t, err)
			return nil
		}),
		store.EXPECT().UpdateByCode(gomock.Any(), "SKU1", domain.ProductStatusUpdate).Return(nil),
		cache.EXPECT().Delete(gomock.Any(), "SKU1"), // из ApplyChange
		cache.EXPECT().Delete(gomock.Any(), "SKU1"), // повторная инвалидация в GetProduct
	)

	_, err := svc.GetProduct(ctx, "SKU1")
	require.NoError(t, err)
}

// Запись, отвергнутая хранилищем, отдаётся наверх с сохранением domain.ErrRejected.
func TestApplyChange_RejectedPropagates(t *testing.T) {
	svc, store, _ := newMockedProductService(t)

	store.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("insert product: %w: sqlstate=22021", domain.ErrRejected))
	_, err := svc.ApplyChange(context.Background(), &domain.ProductChangeRecord{Code: "a\x00", Status: 0})
	require.ErrorIs(t, err, domain.ErrRejected)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc, store, cache := newMockedProductService(t)

	cache.EXPECT().Get(gomock.Any(), "nope").Return(nil, false)
	store.EXPECT().GetByCode(gomock.Any(), "nope").Return(nil, nil)

	got, err := svc.GetProduct(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetProduct_StoreError(t *testing.T) {
	svc, store, cache := newMockedProductService(t)

	cache.EXPECT().Get(gomock.Any(), "x").Return(nil, false)
	store.EXPECT().GetByCode(gomock.Any(), "x").Return(nil, errors.New("db down"))

	_, err := svc.GetProduct(context.Background(), "x")
	require.Error(t, err)
}

func TestWarmUpCache(t *testing.T) {
	svc, store, cache := newMockedProductService(t)

	defs := []*domain.ProductDefinition{{Code: "A"}, {Code: "B"}}
	store.EXPECT().LastN(gomock.Any(), 2).Return(defs, nil)
	cache.EXPECT().WarmUp(gomock.Any(), defs).Return(nil)

	require.NoError(t, svc.WarmUpCache(context.Background(), 2))
}

func TestWarmUpCache_SkipAndError(t *testing.T) {
	svc, store, _ := newMockedProductService(t)

	require.NoError(t, svc.WarmUpCache(context.Background(), 0))

	store.EXPECT().LastN(gomock.Any(), 5).Return(nil, errors.New("db down"))
	require.Error(t, svc.WarmUpCache(context.Background(), 5))
}
