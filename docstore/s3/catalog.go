package s3

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Catalog tracks the latest published version of named documents in
// DynamoDB. S3 alone has no compare-and-swap, so concurrent publishers
// racing on the same document name are ordered through DynamoDB
// conditional writes: the document bytes live in S3 under a versioned
// key, the catalog row points at the current one.
//
// Table schema:
//   - Partition key: doc_name (string)
//   - Sort key: version (number) - monotonically increasing version
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name plotspec-catalog \
//	  --attribute-definitions AttributeName=doc_name,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=doc_name,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type Catalog struct {
	client    DDBClient
	tableName string
}

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// ErrConcurrentPublish is returned when a concurrent publisher claimed
// the version first.
var ErrConcurrentPublish = errors.New("concurrent publish detected")

// NewCatalog creates a catalog on the given DynamoDB table.
func NewCatalog(client DDBClient, tableName string) *Catalog {
	return &Catalog{client: client, tableName: tableName}
}

// Latest returns the newest version and its S3 key for a document name.
// Version zero with an empty key means the document was never published.
func (c *Catalog) Latest(ctx context.Context, docName string) (uint64, string, error) {
	resp, err := c.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(c.tableName),
		KeyConditionExpression: aws.String("doc_name = :n"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberS{Value: docName},
		},
		ScanIndexForward: aws.Bool(false), // Descending order
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return 0, "", fmt.Errorf("failed to query DynamoDB: %w", err)
	}

	if len(resp.Items) == 0 {
		return 0, "", nil
	}

	item := resp.Items[0]
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, "", errors.New("invalid version attribute in DynamoDB")
	}
	keyAttr, ok := item["object_key"].(*types.AttributeValueMemberS)
	if !ok {
		return 0, "", errors.New("invalid object_key attribute in DynamoDB")
	}

	version, err := strconv.ParseUint(versionAttr.Value, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("failed to parse version: %w", err)
	}
	return version, keyAttr.Value, nil
}

// Publish atomically records objectKey as the next version of docName.
// Returns the committed version number.
func (c *Catalog) Publish(ctx context.Context, docName, objectKey string) (uint64, error) {
	current, _, err := c.Latest(ctx, docName)
	if err != nil {
		return 0, err
	}
	next := current + 1

	// Conditional put: only succeed if this version doesn't exist yet
	_, err = c.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item: map[string]types.AttributeValue{
			"doc_name":   &types.AttributeValueMemberS{Value: docName},
			"version":    &types.AttributeValueMemberN{Value: strconv.FormatUint(next, 10)},
			"object_key": &types.AttributeValueMemberS{Value: objectKey},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return 0, ErrConcurrentPublish
		}
		return 0, fmt.Errorf("failed to publish version to DynamoDB: %w", err)
	}
	return next, nil
}
