package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/MrKriegler/go-motor-portal/internal/core"
)

type ClaimRepo struct {
	client *dynamodb.Client
}

func NewClaimRepo(client *dynamodb.Client) *ClaimRepo {
	return &ClaimRepo{client: client}
}

func (r *ClaimRepo) Create(ctx context.Context, c core.Claim) error {
	av, err := attributevalue.MarshalMap(claimItemFromCore(c))
	if err != nil {
		return fmt.Errorf("claims.marshal: %w", err)
	}

	cond := expression.AttributeNotExists(expression.Name("sk"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("claims.buildExpr: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(TableClaims),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		if isConditionCheckFailed(err) {
			return core.ErrConflict
		}
		return fmt.Errorf("claims.putItem: %w", err)
	}
	return nil
}

func (r *ClaimRepo) ListByPolicy(ctx context.Context, policyID string) ([]core.Claim, error) {
	keyCond := expression.Key("policy_id").Equal(expression.Value(policyID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("claims.buildExpr: %w", err)
	}

	var claims []core.Claim
	p := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(TableClaims),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("claims.query: %w", err)
		}
		var items []ClaimItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("claims.unmarshal: %w", err)
		}
		for _, item := range items {
			claims = append(claims, item.ToCore())
		}
	}
	return claims, nil
}
