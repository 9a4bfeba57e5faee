package log_messages

const (
	FailureInKafkaConsumerCreation = "failed to create Kafka consumer %v"
	KafkaErrorConsuming            = "kafka consumer error in consuming %v"
	ErrorSerializingKafkaMessage   = "error serializing Kafka message %v"
	KafkaConsumerCreated           = "kafka consumer created"
	KafkaConsumerClosed            = "kafka consumer closed"
	ErrorPubSubClientCreation      = "error creating pubsub client: %v"
	ErrorInMessagePublishing       = "failed to publish message: %v"
	ErrorMarshallingMessage        = "failed to marshal message: %v"
	PubsubPublisherCreated         = "pubsub publisher created"
	SuccessChangeEventPublished    = "change event published"
	ErrorInsertingDocument         = "error inserting document into collection"
	ErrorInsertingDocumentBatch    = "error inserting document batch into collection"
	ErrorDeletingDocument          = "error deleting document from collection"
	ErrorDeletingDocuments         = "error deleting documents from collection"
	ErrorUpdatingDocument          = "error updating document in collection"
	NoUpdateStrategyConfigured     = "no update strategy configured for repository"
	EmptyDocumentFoundFromDb       = "no associated mongodb document found: %v"
	DuplicateCreateRequest         = "duplicate create request suppressed"
	ErrorCheckingRequestMarker     = "error checking request marker in redis"
)
