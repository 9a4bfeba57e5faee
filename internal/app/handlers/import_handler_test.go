package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	pkgmodels "documentstore/internal/pkg/models"

	kafkaclient "github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockImportConsumer struct {
	mock.Mock
}

func (m *mockImportConsumer) Subscribe(topic string) error {
	args := m.Called(topic)
	return args.Error(0)
}

func (m *mockImportConsumer) Consume() (*kafkaclient.Message, error) {
	args := m.Called()
	msg, _ := args.Get(0).(*kafkaclient.Message)
	return msg, args.Error(1)
}

func (m *mockImportConsumer) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestRunImportConsumer_StopsOnConsumerError(t *testing.T) {
	consumer := new(mockImportConsumer)
	service := new(MockNotesService)
	handler := NewImportHandler(context.Background(), nil)

	payload := pkgmodels.NoteImportMessage{
		RequestID: "batch-1",
		Notes:     []pkgmodels.NoteImport{{Title: "first"}},
	}
	payloadBytes, _ := json.Marshal(payload)

	// One good batch, then the consumer dies and the loop must return.
	consumer.On("Consume").Return(&kafkaclient.Message{Value: payloadBytes}, nil).Once()
	service.On("ImportNotes", mock.Anything, mock.MatchedBy(func(msg *pkgmodels.NoteImportMessage) bool {
		return msg.RequestID == "batch-1"
	})).Return(true, nil).Once()
	consumer.On("Consume").Return(nil, errors.New("broker gone")).Once()

	err := handler.RunImportConsumer(context.Background(), consumer, service)

	assert.Error(t, err)
	consumer.AssertExpectations(t)
	service.AssertExpectations(t)
}

func TestRunImportConsumer_ContinuesPastFailedBatch(t *testing.T) {
	consumer := new(mockImportConsumer)
	service := new(MockNotesService)
	handler := NewImportHandler(context.Background(), nil)

	payload := pkgmodels.NoteImportMessage{RequestID: "batch-2"}
	payloadBytes, _ := json.Marshal(payload)

	consumer.On("Consume").Return(&kafkaclient.Message{Value: payloadBytes}, nil).Once()
	service.On("ImportNotes", mock.Anything, mock.Anything).Return(false, assert.AnError).Once()
	consumer.On("Consume").Return(nil, errors.New("shutdown")).Once()

	err := handler.RunImportConsumer(context.Background(), consumer, service)

	assert.Error(t, err)
	service.AssertExpectations(t)
}
