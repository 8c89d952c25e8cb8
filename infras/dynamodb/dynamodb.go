package dynamodb

import (
	"todoapp/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

// New builds the DynamoDB client. EXTERNAL_DYNAMODB_ENDPOINT points it at a
// local emulator instead of the regional endpoint.
func New(awsCfg aws.Config, config *config.Config) *dynamodb.Client {
	endpoint := config.External.DynamoDB.Endpoint

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	log.Info().
		Str("table", config.External.DynamoDB.TodosTable).
		Str("index", config.External.DynamoDB.UserIndex).
		Str("endpoint", endpoint).
		Msg("DynamoDB client created")

	return client
}
