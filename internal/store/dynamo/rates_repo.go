package dynamo

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/MrKriegler/go-motor-portal/internal/core"
)

type RateTableRepo struct {
	client *dynamodb.Client
}

func NewRateTableRepo(client *dynamodb.Client) *RateTableRepo {
	return &RateTableRepo{client: client}
}

// List scans the rate tables; there is one item per vehicle type.
func (r *RateTableRepo) List(ctx context.Context) ([]core.RateTable, error) {
	var items []RateTableItem
	p := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(TableRateTables),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("rates.scan: %w", err)
		}
		var page []RateTableItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("rates.unmarshal: %w", err)
		}
		items = append(items, page...)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].VehicleType < items[j].VehicleType })

	tables := make([]core.RateTable, len(items))
	for i, item := range items {
		tables[i] = item.ToCore()
	}
	return tables, nil
}

func (r *RateTableRepo) GetByVehicleType(ctx context.Context, vehicleType string) (core.RateTable, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(TableRateTables),
		Key: map[string]types.AttributeValue{
			"vehicle_type": &types.AttributeValueMemberS{Value: vehicleType},
		},
	})
	if err != nil {
		return core.RateTable{}, fmt.Errorf("rates.getItem: %w", err)
	}

	if out.Item == nil {
		return core.RateTable{}, core.ErrRateTableNotFound
	}

	var item RateTableItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return core.RateTable{}, fmt.Errorf("rates.unmarshal: %w", err)
	}
	return item.ToCore(), nil
}

func (r *RateTableRepo) Upsert(ctx context.Context, rt core.RateTable) error {
	av, err := attributevalue.MarshalMap(RateTableItem(rt))
	if err != nil {
		return fmt.Errorf("rates.marshal: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(TableRateTables),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("rates.putItem: %w", err)
	}
	return nil
}
