package dynamo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Table names
const (
	TableRateTables   = "portal_rate_tables"
	TableQuotations   = "portal_quotations"
	TablePolicies     = "portal_policies"
	TableInstallments = "portal_installments"
	TablePenalties    = "portal_penalties"
	TableClaims       = "portal_claims"
	TableCounters     = "portal_counters" // For quotation sequences
)

// GSI names
const (
	GSIQuotationsCreatedYear = "created_year-index"
	GSIPoliciesNumber        = "number-index"
	GSIPoliciesStatus        = "status-index"
)

// EnsureTables creates all required tables if they don't exist.
func EnsureTables(ctx context.Context, client *dynamodb.Client, log *slog.Logger) error {
	for _, in := range tableDefinitions() {
		name := aws.ToString(in.TableName)
		exists, err := tableExists(ctx, client, name)
		if err != nil {
			return fmt.Errorf("check table %s: %w", name, err)
		}
		if exists {
			log.Info("table exists", "table", name)
			continue
		}

		log.Info("creating table", "table", name)
		in.BillingMode = types.BillingModePayPerRequest
		if _, err := client.CreateTable(ctx, in); err != nil {
			return fmt.Errorf("create table %s: %w", name, err)
		}
		log.Info("table created", "table", name)
	}
	return nil
}

func tableExists(ctx context.Context, client *dynamodb.Client, name string) (bool, error) {
	_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(name),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func tableDefinitions() []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName:            aws.String(TableRateTables),
			KeySchema:            []types.KeySchemaElement{hashKey("vehicle_type")},
			AttributeDefinitions: []types.AttributeDefinition{attr("vehicle_type", types.ScalarAttributeTypeS)},
		},
		{
			TableName: aws.String(TableQuotations),
			KeySchema: []types.KeySchemaElement{hashKey("id")},
			AttributeDefinitions: []types.AttributeDefinition{
				attr("id", types.ScalarAttributeTypeS),
				attr("created_year", types.ScalarAttributeTypeN),
				attr("created_at", types.ScalarAttributeTypeS),
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				gsi(GSIQuotationsCreatedYear, hashKey("created_year"), rangeKey("created_at")),
			},
		},
		{
			TableName: aws.String(TablePolicies),
			KeySchema: []types.KeySchemaElement{hashKey("id")},
			AttributeDefinitions: []types.AttributeDefinition{
				attr("id", types.ScalarAttributeTypeS),
				attr("number", types.ScalarAttributeTypeS),
				attr("status", types.ScalarAttributeTypeS),
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				gsi(GSIPoliciesNumber, hashKey("number")),
				gsi(GSIPoliciesStatus, hashKey("status")),
			},
		},
		{
			TableName: aws.String(TableInstallments),
			KeySchema: []types.KeySchemaElement{hashKey("policy_id"), rangeKey("seq")},
			AttributeDefinitions: []types.AttributeDefinition{
				attr("policy_id", types.ScalarAttributeTypeS),
				attr("seq", types.ScalarAttributeTypeN),
			},
		},
		{
			TableName: aws.String(TablePenalties),
			KeySchema: []types.KeySchemaElement{hashKey("installment_id"), rangeKey("id")},
			AttributeDefinitions: []types.AttributeDefinition{
				attr("installment_id", types.ScalarAttributeTypeS),
				attr("id", types.ScalarAttributeTypeS),
			},
		},
		{
			TableName: aws.String(TableClaims),
			KeySchema: []types.KeySchemaElement{hashKey("policy_id"), rangeKey("sk")},
			AttributeDefinitions: []types.AttributeDefinition{
				attr("policy_id", types.ScalarAttributeTypeS),
				attr("sk", types.ScalarAttributeTypeS),
			},
		},
		{
			TableName:            aws.String(TableCounters),
			KeySchema:            []types.KeySchemaElement{hashKey("counter_name")},
			AttributeDefinitions: []types.AttributeDefinition{attr("counter_name", types.ScalarAttributeTypeS)},
		},
	}
}

func hashKey(name string) types.KeySchemaElement {
	return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}
}

func rangeKey(name string) types.KeySchemaElement {
	return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeRange}
}

func attr(name string, t types.ScalarAttributeType) types.AttributeDefinition {
	return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: t}
}

func gsi(name string, keys ...types.KeySchemaElement) types.GlobalSecondaryIndex {
	return types.GlobalSecondaryIndex{
		IndexName:  aws.String(name),
		KeySchema:  keys,
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}
