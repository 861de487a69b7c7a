package dynamo

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/MrKriegler/go-motor-portal/internal/core"
)

type PolicyRepo struct {
	client *dynamodb.Client
}

func NewPolicyRepo(client *dynamodb.Client) *PolicyRepo {
	return &PolicyRepo{client: client}
}

func (r *PolicyRepo) Create(ctx context.Context, policy core.Policy) error {
	av, err := attributevalue.MarshalMap(policyItemFromCore(policy))
	if err != nil {
		return fmt.Errorf("policies.marshal: %w", err)
	}

	cond := expression.AttributeNotExists(expression.Name("id"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("policies.buildExpr: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(TablePolicies),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		if isConditionCheckFailed(err) {
			return core.ErrPolicyExists
		}
		return fmt.Errorf("policies.putItem: %w", err)
	}
	return nil
}

func (r *PolicyRepo) Get(ctx context.Context, id string) (core.Policy, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(TablePolicies),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return core.Policy{}, fmt.Errorf("policies.getItem: %w", err)
	}

	if out.Item == nil {
		return core.Policy{}, core.ErrPolicyNotFound
	}

	var item PolicyItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return core.Policy{}, fmt.Errorf("policies.unmarshal: %w", err)
	}
	return item.ToCore(), nil
}

func (r *PolicyRepo) GetByNumber(ctx context.Context, number string) (core.Policy, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(TablePolicies),
		IndexName:              aws.String(GSIPoliciesNumber),
		KeyConditionExpression: aws.String("#number = :number"),
		ExpressionAttributeNames: map[string]string{
			"#number": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number": &types.AttributeValueMemberS{Value: number},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return core.Policy{}, fmt.Errorf("policies.query: %w", err)
	}

	if len(out.Items) == 0 {
		return core.Policy{}, core.ErrPolicyNotFound
	}

	var item PolicyItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &item); err != nil {
		return core.Policy{}, fmt.Errorf("policies.unmarshal: %w", err)
	}
	return item.ToCore(), nil
}

// List filters with a scan (or the status index when only a status is
// given), orders newest first and pages in memory.
func (r *PolicyRepo) List(ctx context.Context, filter core.PolicyFilter, limit, offset int) ([]core.Policy, int64, error) {
	items, err := r.collect(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return parseTime(items[i].IssuedAt).After(parseTime(items[j].IssuedAt))
	})

	total := int64(len(items))
	if offset >= len(items) {
		return []core.Policy{}, total, nil
	}
	end := min(offset+limit, len(items))

	policies := make([]core.Policy, 0, end-offset)
	for _, item := range items[offset:end] {
		policies = append(policies, item.ToCore())
	}
	return policies, total, nil
}

func (r *PolicyRepo) collect(ctx context.Context, filter core.PolicyFilter) ([]PolicyItem, error) {
	var items []PolicyItem
	appendPage := func(page []map[string]types.AttributeValue) error {
		var batch []PolicyItem
		if err := attributevalue.UnmarshalListOfMaps(page, &batch); err != nil {
			return fmt.Errorf("policies.unmarshal: %w", err)
		}
		items = append(items, batch...)
		return nil
	}

	if filter.Status != "" && filter.HolderEmail == "" {
		keyCond := expression.Key("status").Equal(expression.Value(string(filter.Status)))
		expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
		if err != nil {
			return nil, fmt.Errorf("policies.buildExpr: %w", err)
		}
		p := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
			TableName:                 aws.String(TablePolicies),
			IndexName:                 aws.String(GSIPoliciesStatus),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
		})
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("policies.query: %w", err)
			}
			if err := appendPage(out.Items); err != nil {
				return nil, err
			}
		}
		return items, nil
	}

	scanInput := &dynamodb.ScanInput{TableName: aws.String(TablePolicies)}
	if filter.HolderEmail != "" || filter.Status != "" {
		var cond expression.ConditionBuilder
		hasCond := false
		if filter.HolderEmail != "" {
			cond = expression.Name("holder_email").Equal(expression.Value(filter.HolderEmail))
			hasCond = true
		}
		if filter.Status != "" {
			statusCond := expression.Name("status").Equal(expression.Value(string(filter.Status)))
			if hasCond {
				cond = cond.And(statusCond)
			} else {
				cond = statusCond
			}
		}
		expr, err := expression.NewBuilder().WithFilter(cond).Build()
		if err != nil {
			return nil, fmt.Errorf("policies.buildExpr: %w", err)
		}
		scanInput.FilterExpression = expr.Filter()
		scanInput.ExpressionAttributeNames = expr.Names()
		scanInput.ExpressionAttributeValues = expr.Values()
	}

	p := dynamodb.NewScanPaginator(r.client, scanInput)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("policies.scan: %w", err)
		}
		if err := appendPage(out.Items); err != nil {
			return nil, err
		}
	}
	return items, nil
}
