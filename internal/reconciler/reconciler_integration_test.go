//go:build integration

package reconciler_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/wb_inventory/internal/cache/memory"
	"github.com/Gunvolt24/wb_inventory/internal/domain"
	ikafka "github.com/Gunvolt24/wb_inventory/internal/kafka"
	pgrepo "github.com/Gunvolt24/wb_inventory/internal/repo/postgres"
	"github.com/Gunvolt24/wb_inventory/internal/reconciler"
	"github.com/Gunvolt24/wb_inventory/internal/testutil"
	"github.com/Gunvolt24/wb_inventory/internal/usecase"
	"github.com/Gunvolt24/wb_inventory/pkg/validate"
)

// Kafka → цикл сверки → Postgres: вставка, обновление без смены цены, пропуск мусора и неизвестного статуса.
func TestReconciler_EndToEnd_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup("products-e2e")
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	code := "SKU-" + testutil.UniqSuffix()
	require.NoError(t, testutil.Produce(ctx, kf.Brokers, topic,
		testutil.ChangeJSON(code, 0, 100),
		[]byte(`{"code":`),
		testutil.ChangeJSON(code, 7, 1),
		testutil.ChangeJSON(code, 1, 200),
		testutil.ChangeJSON("unknown-"+code, 1, 5),
	))

	repo := pgrepo.NewProductRepository(pg.Pool)
	svc := usecase.NewProductService(repo, cachemem.NewProductLRU(16, time.Minute), testutil.NopLogger{})

	queue := ikafka.NewQueue(&ikafka.QueueConfig{
		Brokers: kf.Brokers, Topic: topic, GroupID: group, StartOffset: "first",
	})
	t.Cleanup(func() { _ = queue.Close() })

	loop := reconciler.New(queue, validate.NewProductDecoder(), svc, testutil.NopLogger{}, reconciler.Config{
		Topic:          topic,
		ReceiveTimeout: 500 * time.Millisecond,
		PollInterval:   20 * time.Millisecond,
	})
	sup := reconciler.NewSupervisor(loop, testutil.NopLogger{}, reconciler.SupervisorConfig{})
	errCh := sup.Start(ctx)

	// обновление статуса видно, цена осталась от вставки
	require.Eventually(t, func() bool {
		def, err := repo.GetByCode(ctx, code)
		return err == nil && def != nil && def.Status == domain.ProductStatusUpdate
	}, 60*time.Second, 200*time.Millisecond)

	def, err := repo.GetByCode(ctx, code)
	require.NoError(t, err)
	require.Equal(t, int64(100), def.Price)

	missing, err := repo.GetByCode(ctx, "unknown-"+code)
	require.NoError(t, err)
	require.Nil(t, missing)

	require.NoError(t, sup.Stop(10*time.Second))
	require.Equal(t, reconciler.StateStopped, loop.State())
	for err := range errCh {
		require.NoError(t, err)
	}
}
