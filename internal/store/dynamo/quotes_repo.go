package dynamo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/MrKriegler/go-motor-portal/internal/core"
)

type QuoteRepo struct {
	client *dynamodb.Client
}

func NewQuoteRepo(client *dynamodb.Client) *QuoteRepo {
	return &QuoteRepo{client: client}
}

func (r *QuoteRepo) Create(ctx context.Context, q core.Quotation) error {
	av, err := attributevalue.MarshalMap(quotationItemFromCore(q))
	if err != nil {
		return fmt.Errorf("quotations.marshal: %w", err)
	}

	cond := expression.AttributeNotExists(expression.Name("id"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("quotations.buildExpr: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(TableQuotations),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		if isConditionCheckFailed(err) {
			return core.ErrConflict
		}
		return fmt.Errorf("quotations.putItem: %w", err)
	}
	return nil
}

func (r *QuoteRepo) Get(ctx context.Context, id string) (core.Quotation, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(TableQuotations),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return core.Quotation{}, fmt.Errorf("quotations.getItem: %w", err)
	}

	if out.Item == nil {
		return core.Quotation{}, core.ErrQuoteNotFound
	}

	var item QuotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return core.Quotation{}, fmt.Errorf("quotations.unmarshal: %w", err)
	}
	return item.ToCore(), nil
}

// CountCreatedBetween queries the created_year index once per UTC year
// the range touches and sums the counts.
func (r *QuoteRepo) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var total int64
	for year := start.UTC().Year(); year <= end.UTC().Year(); year++ {
		keyCond := expression.Key("created_year").Equal(expression.Value(year)).
			And(expression.Key("created_at").Between(
				expression.Value(formatSortable(start)),
				expression.Value(formatSortable(end)),
			))
		expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
		if err != nil {
			return 0, fmt.Errorf("quotations.buildExpr: %w", err)
		}

		p := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
			TableName:                 aws.String(TableQuotations),
			IndexName:                 aws.String(GSIQuotationsCreatedYear),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			Select:                    types.SelectCount,
		})
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return 0, fmt.Errorf("quotations.query: %w", err)
			}
			total += int64(out.Count)
		}
	}
	return total, nil
}

// NextQuotationSeq atomically increments the per-year quotation counter.
func (r *QuoteRepo) NextQuotationSeq(ctx context.Context, year int) (int64, error) {
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(TableCounters),
		Key: map[string]types.AttributeValue{
			"counter_name": &types.AttributeValueMemberS{Value: fmt.Sprintf("quotation_%d", year)},
		},
		UpdateExpression: aws.String("SET counter_value = if_not_exists(counter_value, :zero) + :inc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":inc":  &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("counters.updateItem: %w", err)
	}

	n, ok := out.Attributes["counter_value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counters.updateItem: missing counter_value")
	}
	seq, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("counters.parse: %w", err)
	}
	return seq, nil
}
