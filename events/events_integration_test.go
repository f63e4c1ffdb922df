//go:build integration

package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/zap-shift/parcel-delivery-api/config"
)

type mockSchemaResponse struct {
	Schema string `json:"schema"`
}

func startMockSchemaRegistry(t *testing.T) *httptest.Server {
	t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.schemaregistry.v1+json")
		_ = json.NewEncoder(w).Encode(mockSchemaResponse{Schema: parcelPaidSchema})
	})
	return httptest.NewServer(handler)
}

func setupKafkaContainer(t *testing.T) *kafka.KafkaContainer {
	t.Helper()

	ctx := context.Background()

	kafkaContainer, err := kafka.Run(ctx, "confluentinc/cp-kafka:7.5.0", kafka.WithClusterID("test-cluster"))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, kafkaContainer.Terminate(ctx))
	})

	return kafkaContainer
}

func TestIntegrationKafkaPublisher(t *testing.T) {

	ctx := context.Background()

	mockSchemaRegistry := startMockSchemaRegistry(t)
	defer mockSchemaRegistry.Close()
	kafkaContainer := setupKafkaContainer(t)

	brokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err)

	publisher, err := New(&config.Config{
		BrokerAddr:        brokers,
		SchemaRegistryURL: mockSchemaRegistry.URL,
		ParcelPaidTopic:   "parcel-paid",
	})
	require.NoError(t, err)
	require.IsType(t, &KafkaPublisher{}, publisher)
	defer publisher.Close()

	require.NoError(t, publisher.PublishParcelPaid(ctx, event))
}
