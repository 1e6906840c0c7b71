package consumer

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/validation"
)

type mockReader struct {
	fetch  func(ctx context.Context) (kafka.Message, error)
	commit func(ctx context.Context, msgs ...kafka.Message) error
}

func (m *mockReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	return m.fetch(ctx)
}

func (m *mockReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	if m.commit != nil {
		return m.commit(ctx, msgs...)
	}
	return nil
}

func (m *mockReader) Close() error { return nil }

type recordingCreator struct {
	created []models.Order
}

func (r *recordingCreator) Create(order models.Order) models.Order {
	r.created = append(r.created, order)
	return order
}

// queueReader serves the given payloads one by one, then reports the
// context as cancelled.
func queueReader(commits *int, payloads ...[]byte) *mockReader {
	i := 0
	return &mockReader{
		fetch: func(ctx context.Context) (kafka.Message, error) {
			if i >= len(payloads) {
				return kafka.Message{}, context.Canceled
			}
			m := kafka.Message{Topic: "checkout-orders", Offset: int64(i), Value: payloads[i]}
			i++
			return m, nil
		},
		commit: func(ctx context.Context, msgs ...kafka.Message) error {
			*commits += len(msgs)
			return nil
		},
	}
}

const validOrderJSON = `{
	"id": "o-1",
	"status": "pending",
	"items": [
		{"productId": "p-1", "productName": "Cidre Brut", "producerId": "prod-1", "quantity": 2, "unitPrice": 6.5, "totalPrice": 13.0}
	],
	"customerInfo": {"name": "Anne Le Gall", "email": "anne@example.com"}
}`

func TestConsumeCreatesValidOrder(t *testing.T) {
	commits := 0
	reader := queueReader(&commits, []byte(validOrderJSON))
	creator := &recordingCreator{}

	err := consume(context.Background(), reader, creator, validation.New())
	require.NoError(t, err)

	require.Len(t, creator.created, 1)
	assert.Equal(t, "o-1", creator.created[0].ID)
	assert.Equal(t, 1, commits)
}

func TestConsumeSkipsMalformedPayload(t *testing.T) {
	commits := 0
	reader := queueReader(&commits, []byte(`{not json`), []byte(validOrderJSON))
	creator := &recordingCreator{}

	err := consume(context.Background(), reader, creator, validation.New())
	require.NoError(t, err)

	require.Len(t, creator.created, 1, "the bad message is skipped, the next one still lands")
	assert.Equal(t, 2, commits, "the bad message is committed so it never wedges the topic")
}

func TestConsumeSkipsInvalidOrder(t *testing.T) {
	commits := 0
	// Missing items: parses fine but fails validation.
	reader := queueReader(&commits, []byte(`{"id": "o-2", "items": []}`))
	creator := &recordingCreator{}

	err := consume(context.Background(), reader, creator, validation.New())
	require.NoError(t, err)

	assert.Empty(t, creator.created)
	assert.Equal(t, 1, commits)
}

func TestConsumeReturnsNilOnCancel(t *testing.T) {
	reader := &mockReader{
		fetch: func(ctx context.Context) (kafka.Message, error) {
			return kafka.Message{}, context.Canceled
		},
	}
	err := consume(context.Background(), reader, &recordingCreator{}, validation.New())
	assert.NoError(t, err)
}

func TestConsumePropagatesReaderError(t *testing.T) {
	reader := &mockReader{
		fetch: func(ctx context.Context) (kafka.Message, error) {
			return kafka.Message{}, assert.AnError
		},
	}
	err := consume(context.Background(), reader, &recordingCreator{}, validation.New())
	assert.ErrorIs(t, err, assert.AnError)
}
