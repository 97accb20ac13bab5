package s3

import (
	"context"
	"strconv"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDDB is an in-memory DDBClient good enough for catalog semantics:
// items ordered by version, conditional puts reject existing versions.
type fakeDDB struct {
	items map[string]map[uint64]string // doc_name -> version -> object_key
}

func newFakeDDB() *fakeDDB {
	return &fakeDDB{items: make(map[string]map[uint64]string)}
}

func (f *fakeDDB) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	name := params.Item["doc_name"].(*types.AttributeValueMemberS).Value
	version, _ := strconv.ParseUint(params.Item["version"].(*types.AttributeValueMemberN).Value, 10, 64)
	key := params.Item["object_key"].(*types.AttributeValueMemberS).Value

	if f.items[name] == nil {
		f.items[name] = make(map[uint64]string)
	}
	if _, exists := f.items[name][version]; exists {
		return nil, &types.ConditionalCheckFailedException{}
	}
	f.items[name][version] = key
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDDB) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	name := params.ExpressionAttributeValues[":n"].(*types.AttributeValueMemberS).Value

	var latest uint64
	var key string
	for v, k := range f.items[name] {
		if v > latest {
			latest, key = v, k
		}
	}
	if latest == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	return &dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{{
			"doc_name":   &types.AttributeValueMemberS{Value: name},
			"version":    &types.AttributeValueMemberN{Value: strconv.FormatUint(latest, 10)},
			"object_key": &types.AttributeValueMemberS{Value: key},
		}},
	}, nil
}

func TestCatalogPublishAndLatest(t *testing.T) {
	ctx := context.Background()
	cat := NewCatalog(newFakeDDB(), "plotspec-catalog")

	version, key, err := cat.Latest(ctx, "scene")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), version)
	assert.Empty(t, key)

	v1, err := cat.Publish(ctx, "scene", "scene/v1.json")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v1)

	v2, err := cat.Publish(ctx, "scene", "scene/v2.json")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v2)

	version, key, err = cat.Latest(ctx, "scene")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), version)
	assert.Equal(t, "scene/v2.json", key)
}

func TestCatalogConcurrentPublish(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDDB()
	cat := NewCatalog(ddb, "plotspec-catalog")

	_, err := cat.Publish(ctx, "scene", "scene/v1.json")
	require.NoError(t, err)

	// Simulate a racing publisher that claimed version 2 between our
	// Latest read and conditional put.
	ddb.items["scene"][2] = "scene/raced.json"

	_, err = cat.Publish(ctx, "scene", "scene/v2.json")
	assert.ErrorIs(t, err, ErrConcurrentPublish)
}
