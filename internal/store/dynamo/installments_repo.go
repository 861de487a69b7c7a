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

// InstallmentRepo reads the payment ledger. Installments are keyed by
// (policy_id, seq) and penalties by (installment_id, id).
type InstallmentRepo struct {
	client *dynamodb.Client
}

func NewInstallmentRepo(client *dynamodb.Client) *InstallmentRepo {
	return &InstallmentRepo{client: client}
}

func (r *InstallmentRepo) ListByPolicy(ctx context.Context, policyID string) ([]core.Installment, error) {
	keyCond := expression.Key("policy_id").Equal(expression.Value(policyID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("installments.buildExpr: %w", err)
	}

	var out []core.Installment
	p := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(TableInstallments),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("installments.query: %w", err)
		}
		var items []InstallmentItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("installments.unmarshal: %w", err)
		}
		for _, item := range items {
			out = append(out, item.ToCore())
		}
	}
	return out, nil
}

func (r *InstallmentRepo) ListPenalties(ctx context.Context, installmentIDs []string) ([]core.Penalty, error) {
	var out []core.Penalty
	for _, id := range installmentIDs {
		keyCond := expression.Key("installment_id").Equal(expression.Value(id))
		expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
		if err != nil {
			return nil, fmt.Errorf("penalties.buildExpr: %w", err)
		}

		p := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
			TableName:                 aws.String(TablePenalties),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("penalties.query: %w", err)
			}
			var items []PenaltyItem
			if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
				return nil, fmt.Errorf("penalties.unmarshal: %w", err)
			}
			for _, item := range items {
				out = append(out, item.ToCore())
			}
		}
	}
	return out, nil
}

// SeedLedger writes installments and penalties for demo data.
func (r *InstallmentRepo) SeedLedger(ctx context.Context, insts []core.Installment, penalties []core.Penalty) error {
	for _, inst := range insts {
		av, err := attributevalue.MarshalMap(installmentItemFromCore(inst))
		if err != nil {
			return fmt.Errorf("installments.marshal: %w", err)
		}
		if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(TableInstallments),
			Item:      av,
		}); err != nil {
			return fmt.Errorf("installments.putItem: %w", err)
		}
	}
	for _, pen := range penalties {
		av, err := attributevalue.MarshalMap(penaltyItemFromCore(pen))
		if err != nil {
			return fmt.Errorf("penalties.marshal: %w", err)
		}
		if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(TablePenalties),
			Item:      av,
		}); err != nil {
			return fmt.Errorf("penalties.putItem: %w", err)
		}
	}
	return nil
}
