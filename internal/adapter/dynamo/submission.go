package dynamo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// SubmissionStore persists submissions as flat items: common fields plus the
// attributes of the submission's mission type.
type SubmissionStore struct {
	client API
	table  string
	now    func() time.Time
}

// NewSubmissionStore creates a store writing to table.
func NewSubmissionStore(client API, table string) *SubmissionStore {
	return &SubmissionStore{client: client, table: table, now: time.Now}
}

type item struct {
	ID              string    `dynamodbav:"id"`
	MissionType     string    `dynamodbav:"mission_type"`
	FirstName       string    `dynamodbav:"first_name"`
	LastName        string    `dynamodbav:"last_name"`
	Email           string    `dynamodbav:"email"`
	Message         *string   `dynamodbav:"message,omitempty"`
	Emotion         string    `dynamodbav:"emotion_preference"`
	ThankYouMessage *string   `dynamodbav:"ai_thank_you_message,omitempty"`
	CreatedAt       time.Time `dynamodbav:"created_at"`

	Amount        int     `dynamodbav:"amount,omitempty"`
	Frequency     string  `dynamodbav:"frequency,omitempty"`
	CustomMessage *string `dynamodbav:"custom_message,omitempty"`

	Skills       []string `dynamodbav:"skills,omitempty"`
	Availability string   `dynamodbav:"availability,omitempty"`
	Motivation   *string  `dynamodbav:"motivation,omitempty"`

	Subject  string `dynamodbav:"subject,omitempty"`
	Category string `dynamodbav:"category,omitempty"`
	Priority string `dynamodbav:"priority,omitempty"`
	Summary  string `dynamodbav:"ai_summary,omitempty"`

	RequestType      string  `dynamodbav:"request_type,omitempty"`
	SpecificQuestion *string `dynamodbav:"specific_question,omitempty"`
}

// Create assigns id and created_at and writes the item. The write fails if
// the id is already taken.
func (s *SubmissionStore) Create(ctx context.Context, sub *domain.Submission) error {
	id := uuid.New()
	createdAt := s.now().UTC()

	it, err := toItem(sub, id, createdAt)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("submission %s: %w", id, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("put submission: %w", err)
	}

	sub.ID = id
	sub.CreatedAt = createdAt
	return nil
}

// GetByID reads one submission with a consistent read.
func (s *SubmissionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get submission %s: %w", id, err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
	}

	var it item
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("unmarshal submission %s: %w", id, err)
	}
	return it.toDomain()
}

// List scans the whole table and returns submissions newest first.
func (s *SubmissionStore) List(ctx context.Context) ([]domain.Submission, error) {
	out := []domain.Submission{}
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName:      aws.String(s.table),
			ConsistentRead: aws.Bool(true),
		}
		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		page, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("scan submissions: %w", err)
		}

		for _, raw := range page.Items {
			var it item
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, fmt.Errorf("unmarshal submission: %w", err)
			}
			sub, err := it.toDomain()
			if err != nil {
				return nil, err
			}
			out = append(out, *sub)
		}

		lastEvaluatedKey = page.LastEvaluatedKey
		if len(lastEvaluatedKey) == 0 {
			break
		}
	}

	slices.SortFunc(out, func(a, b domain.Submission) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID.String(), a.ID.String())
	})
	return out, nil
}

// SetThankYouMessage stores the thank-you message once, using a condition
// expression so that concurrent writers cannot both succeed.
func (s *SubmissionStore) SetThankYouMessage(ctx context.Context, id uuid.UUID, message string) error {
	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.table),
		Key:                 key(id),
		UpdateExpression:    aws.String("SET ai_thank_you_message = :m"),
		ConditionExpression: aws.String("attribute_exists(id) AND attribute_not_exists(ai_thank_you_message)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":m": &types.AttributeValueMemberS{Value: message},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err == nil {
		return nil
	}

	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		if len(ccf.Item) == 0 {
			return fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("submission %s: thank-you message: %w", id, domain.ErrConflict)
	}
	return fmt.Errorf("update submission %s: %w", id, err)
}

func key(id uuid.UUID) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id.String()},
	}
}

func toItem(sub *domain.Submission, id uuid.UUID, createdAt time.Time) (item, error) {
	it := item{
		ID:              id.String(),
		MissionType:     string(sub.MissionType()),
		FirstName:       sub.FirstName,
		LastName:        sub.LastName,
		Email:           sub.Email,
		Message:         sub.Message,
		Emotion:         string(sub.Emotion),
		ThankYouMessage: sub.ThankYouMessage,
		CreatedAt:       createdAt,
	}

	switch d := sub.Details.(type) {
	case domain.DonationDetails:
		it.Amount = d.Amount
		it.Frequency = string(d.Frequency)
		it.CustomMessage = d.CustomMessage
	case domain.VolunteerDetails:
		it.Skills = d.Skills
		it.Availability = d.Availability
		it.Motivation = d.Motivation
	case domain.ContactDetails:
		it.Subject = d.Subject
		it.Category = string(d.Category)
		it.Priority = string(d.Priority)
		it.Summary = d.Summary
	case domain.InformationDetails:
		it.RequestType = d.RequestType
		it.SpecificQuestion = d.SpecificQuestion
	default:
		return item{}, fmt.Errorf("submission: unsupported details %T: %w", d, domain.ErrValidation)
	}
	return it, nil
}

func (it item) toDomain() (*domain.Submission, error) {
	id, err := uuid.Parse(it.ID)
	if err != nil {
		return nil, fmt.Errorf("submission id %q: %w", it.ID, err)
	}

	sub := &domain.Submission{
		ID:              id,
		FirstName:       it.FirstName,
		LastName:        it.LastName,
		Email:           it.Email,
		Message:         it.Message,
		Emotion:         domain.Emotion(it.Emotion),
		ThankYouMessage: it.ThankYouMessage,
		CreatedAt:       it.CreatedAt.UTC(),
	}

	switch domain.MissionType(it.MissionType) {
	case domain.MissionDonation:
		sub.Details = domain.DonationDetails{Amount: it.Amount, Frequency: domain.Frequency(it.Frequency), CustomMessage: it.CustomMessage}
	case domain.MissionVolunteer:
		sub.Details = domain.VolunteerDetails{Skills: it.Skills, Availability: it.Availability, Motivation: it.Motivation}
	case domain.MissionContact:
		sub.Details = domain.ContactDetails{
			Subject:  it.Subject,
			Category: domain.ContactCategory(it.Category),
			Priority: domain.ContactPriority(it.Priority),
			Summary:  it.Summary,
		}
	case domain.MissionInformation:
		sub.Details = domain.InformationDetails{RequestType: it.RequestType, SpecificQuestion: it.SpecificQuestion}
	default:
		return nil, fmt.Errorf("submission %s: unknown mission type %q", it.ID, it.MissionType)
	}
	return sub, nil
}
