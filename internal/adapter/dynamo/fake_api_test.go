package dynamo

import (
	"context"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeAPI is an in-memory table honouring the condition expressions the
// store uses. Scan returns pages of pageSize items ordered by id.
type fakeAPI struct {
	mu       sync.Mutex
	items    map[string]map[string]types.AttributeValue
	pageSize int
	scans    int
}

func newFakeAPI(pageSize int) *fakeAPI {
	return &fakeAPI{items: make(map[string]map[string]types.AttributeValue), pageSize: pageSize}
}

func keyOf(k map[string]types.AttributeValue) string {
	return k["id"].(*types.AttributeValueMemberS).Value
}

func (f *fakeAPI) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := keyOf(in.Item)
	if aws.ToString(in.ConditionExpression) == "attribute_not_exists(id)" {
		if _, ok := f.items[id]; ok {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeAPI) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeAPI) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans++

	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := 0
	if in.ExclusiveStartKey != nil {
		after := keyOf(in.ExclusiveStartKey)
		start = sort.SearchStrings(ids, after) + 1
	}
	end := min(start+f.pageSize, len(ids))

	out := &dynamodb.ScanOutput{}
	for _, id := range ids[start:end] {
		out.Items = append(out.Items, f.items[id])
	}
	if end < len(ids) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: ids[end-1]}}
	}
	return out, nil
}

func (f *fakeAPI) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cur, ok := f.items[keyOf(in.Key)]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{}
	}
	if _, set := cur["ai_thank_you_message"]; set {
		return nil, &types.ConditionalCheckFailedException{Item: cur}
	}

	next := make(map[string]types.AttributeValue, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	next["ai_thank_you_message"] = in.ExpressionAttributeValues[":m"]
	f.items[keyOf(in.Key)] = next
	return &dynamodb.UpdateItemOutput{}, nil
}
