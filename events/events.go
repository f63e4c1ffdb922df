// Package events announces parcel delivery milestones to downstream consumers.
package events

import (
	"context"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/companieshouse/chs.go/log"
	"github.com/zap-shift/parcel-delivery-api/config"
	"github.com/zap-shift/parcel-delivery-api/data"
	"github.com/zap-shift/parcel-delivery-api/keys"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=events

// ParcelPaidSchemaName is the schema registry subject of the parcel-paid event
const ParcelPaidSchemaName = "parcel-paid"

// Publisher sends events about parcels
type Publisher interface {
	PublishParcelPaid(ctx context.Context, event data.ParcelPaid) error
	Close() error
}

// KafkaPublisher publishes avro encoded events to kafka
type KafkaPublisher struct {
	Producer *producer.Producer
	Schema   *avro.Schema
	Topic    string
}

// Discard drops every event, used when no brokers are configured
type Discard struct{}

// PublishParcelPaid does nothing
func (Discard) PublishParcelPaid(ctx context.Context, event data.ParcelPaid) error {
	return nil
}

// Close does nothing
func (Discard) Close() error {
	return nil
}

// New returns a kafka publisher for the configured brokers, or Discard when there are none
func New(cfg *config.Config) (Publisher, error) {

	if len(cfg.BrokerAddr) == 0 {
		log.Info("no kafka brokers configured, parcel-paid events will not be published")
		return Discard{}, nil
	}

	parcelPaidSchema, err := schema.Get(cfg.SchemaRegistryURL, ParcelPaidSchemaName)
	if err != nil {
		log.Error(fmt.Errorf("error receiving %s schema: %s", ParcelPaidSchemaName, err))
		return nil, err
	}
	log.Info("Successfully received schema", log.Data{"schema_name": ParcelPaidSchemaName})

	p, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		log.Error(fmt.Errorf("error initialising producer: %s", err), nil)
		return nil, err
	}

	return &KafkaPublisher{
		Producer: p,
		Schema:   &avro.Schema{Definition: parcelPaidSchema},
		Topic:    cfg.ParcelPaidTopic,
	}, nil
}

// PublishParcelPaid sends the event keyed by parcel id so events for a parcel stay ordered
func (k *KafkaPublisher) PublishParcelPaid(ctx context.Context, event data.ParcelPaid) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	message, err := k.Schema.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshalling parcel-paid event: %w", err)
	}

	partition, offset, err := k.Producer.SendMessage(&sarama.ProducerMessage{
		Topic: k.Topic,
		Key:   sarama.StringEncoder(event.ParcelID),
		Value: sarama.ByteEncoder(message),
	})
	if err != nil {
		return fmt.Errorf("error sending parcel-paid event: %w", err)
	}

	log.Trace("parcel-paid event sent", log.Data{
		keys.Topic:      k.Topic,
		keys.ParcelID:   event.ParcelID,
		keys.TrackingID: event.TrackingID,
		"partition":     partition,
		"offset":        offset,
	})

	return nil
}

// Close closes the underlying producer
func (k *KafkaPublisher) Close() error {
	log.Info("Closing producer", log.Data{keys.Topic: k.Topic})
	return k.Producer.Close()
}
