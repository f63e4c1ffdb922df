package events

import (
	"context"
	"errors"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/kafka/producer"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/zap-shift/parcel-delivery-api/config"
	"github.com/zap-shift/parcel-delivery-api/data"
)

const parcelPaidSchema = `{"type":"record","name":"parcel_paid","namespace":"parcels","fields":[` +
	`{"name":"parcel_id","type":"string"},{"name":"tracking_id","type":"string"},` +
	`{"name":"transaction_id","type":"string"},{"name":"email","type":"string"},` +
	`{"name":"amount","type":"string"},{"name":"currency","type":"string"},` +
	`{"name":"paid_at","type":"string"}]}`

type MockProducer struct {
	sarama.SyncProducer
	sent   []*sarama.ProducerMessage
	err    error
	closed bool
}

func (m *MockProducer) SendMessage(msg *sarama.ProducerMessage) (int32, int64, error) {
	if m.err != nil {
		return 0, 0, m.err
	}
	m.sent = append(m.sent, msg)
	return 0, int64(len(m.sent) - 1), nil
}

func (m *MockProducer) Close() error {
	m.closed = true
	return nil
}

var event = data.ParcelPaid{
	ParcelID:      "64b7f0c2a1b2c3d4e5f60718",
	TrackingID:    "PRCL-20260310-0A1B2C3D4E5F",
	TransactionID: "pi_123",
	Email:         "a@x.com",
	Amount:        "25.50",
	Currency:      "usd",
	PaidAt:        "2026-03-10T14:30:00Z",
}

func TestUnitKafkaPublisher(t *testing.T) {

	Convey("Given a kafka publisher", t, func() {
		mockProducer := &MockProducer{}
		publisher := &KafkaPublisher{
			Producer: &producer.Producer{SyncProducer: mockProducer},
			Schema:   &avro.Schema{Definition: parcelPaidSchema},
			Topic:    "parcel-paid",
		}

		Convey("When a parcel-paid event is published", func() {
			err := publisher.PublishParcelPaid(context.Background(), event)

			Convey("Then one avro message keyed by parcel id is sent to the topic", func() {
				So(err, ShouldBeNil)
				So(mockProducer.sent, ShouldHaveLength, 1)
				So(mockProducer.sent[0].Topic, ShouldEqual, "parcel-paid")
				So(mockProducer.sent[0].Key, ShouldEqual, sarama.StringEncoder(event.ParcelID))

				var decoded data.ParcelPaid
				value, _ := mockProducer.sent[0].Value.Encode()
				So(publisher.Schema.Unmarshal(value, &decoded), ShouldBeNil)
				So(decoded, ShouldResemble, event)
			})
		})

		Convey("When the producer fails", func() {
			mockProducer.err = errors.New("broker unavailable")
			err := publisher.PublishParcelPaid(context.Background(), event)

			Convey("Then the error is returned", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, mockProducer.err), ShouldBeTrue)
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			err := publisher.PublishParcelPaid(ctx, event)

			Convey("Then nothing is sent", func() {
				So(err, ShouldEqual, context.Canceled)
				So(mockProducer.sent, ShouldBeEmpty)
			})
		})

		Convey("When the publisher is closed", func() {
			So(publisher.Close(), ShouldBeNil)
			So(mockProducer.closed, ShouldBeTrue)
		})
	})
}

func TestUnitNew(t *testing.T) {

	Convey("Given no kafka brokers are configured", t, func() {
		publisher, err := New(&config.Config{})

		Convey("Then events are discarded", func() {
			So(err, ShouldBeNil)
			So(publisher, ShouldHaveSameTypeAs, Discard{})
			So(publisher.PublishParcelPaid(context.Background(), event), ShouldBeNil)
			So(publisher.Close(), ShouldBeNil)
		})
	})
}
