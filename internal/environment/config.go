package environment

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	HTTPAddr string

	AwsRegion        string
	S3Bucket         string
	RequestQueueName string
	ResponseQueueURL string

	// QueueTransport selects "sqs" (default) or "nats".
	QueueTransport      string
	NatsURL             string
	NatsRequestSubject  string
	NatsResponseSubject string

	TemplatesDir      string
	CompressArtifacts bool

	SqlxConnString string
}

func ReadEnvConfig() *EnvConfig {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	result := &EnvConfig{}

	result.HTTPAddr = os.Getenv("HTTP_ADDR")

	result.AwsRegion = getenvDefault("AWS_REGION", "eu-central-1")
	result.S3Bucket = os.Getenv("S3_BUCKET_NAME")
	result.RequestQueueName = os.Getenv("SQS_REQUEST_QUEUE_NAME")
	result.ResponseQueueURL = os.Getenv("SQS_RESPONSE_QUEUE_URL")

	result.QueueTransport = getenvDefault("QUEUE_TRANSPORT", "sqs")
	result.NatsURL = os.Getenv("NATS_URL")
	result.NatsRequestSubject = getenvDefault("NATS_REQUEST_SUBJECT", "jobs.requests")
	result.NatsResponseSubject = getenvDefault("NATS_RESPONSE_SUBJECT", "jobs.responses")

	result.TemplatesDir = getenvDefault("TEMPLATES_DIR", "templates/code")
	result.CompressArtifacts = os.Getenv("COMPRESS_ARTIFACTS") == "true"

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dbSslMode := os.Getenv("DB_SSLMODE")

	result.SqlxConnString = fmt.Sprintf(
		`host=%s port=%s user=%s password=%s dbname=%s sslmode=%s`,
		dbHost, dbPort, dbUser, dbPass, dbName, dbSslMode)

	return result
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
