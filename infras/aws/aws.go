package aws

import (
	"context"

	"todoapp/config"

	awsSDK "github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/rs/zerolog/log"
)

// New loads the shared AWS configuration. Static credentials win when both keys
// are set; otherwise the default chain (env, shared profile, role) applies.
func New(config *config.Config) awsSDK.Config {
	awsCfg := config.External.AWS

	options := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(awsCfg.Region),
	}

	if awsCfg.AccessKeyID != "" && awsCfg.SecretAccessKey != "" {
		options = append(options, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsCfg.AccessKeyID, awsCfg.SecretAccessKey, ""),
		))
	}

	cfg, err := awsConfig.LoadDefaultConfig(context.TODO(), options...)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	log.Info().Str("region", cfg.Region).Msg("AWS configuration loaded")

	return cfg
}
