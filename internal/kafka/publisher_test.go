package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
	"github.com/Gunvolt24/wb_inventory/internal/kafka/mocks"
)

func TestPublish_KeysByCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := &Publisher{writer: w}

	recs := []*domain.ProductChangeRecord{
		{Code: "SKU1", Status: domain.ProductStatusNew, Price: 100},
		{Code: "SKU1", Status: domain.ProductStatusUpdate, Price: 999},
	}

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 2)
			for i, m := range msgs {
				assert.Equal(t, "SKU1", string(m.Key))
				var got domain.ProductChangeRecord
				require.NoError(t, json.Unmarshal(m.Value, &got))
				assert.Equal(t, *recs[i], got)
			}
			return nil
		})

	require.NoError(t, p.Publish(context.Background(), recs...))
}

func TestPublish_Empty_NoWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := &Publisher{writer: mocks.NewMockwriter(ctrl)}

	require.NoError(t, p.Publish(context.Background()))
}

func TestPublish_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := &Publisher{writer: w}

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("leader not available"))

	err := p.Publish(context.Background(), &domain.ProductChangeRecord{Code: "A"})
	require.Error(t, err)
}

func TestPublisher_CloseOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := &Publisher{writer: w}

	w.EXPECT().Close().Return(nil).Times(1)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
}
