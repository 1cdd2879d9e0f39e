package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
)

const recipientsCollection = "email_recipients"

type RecipientRepository struct {
	coll *mongo.Collection
}

func NewRecipientRepository(db *mongo.Database) *RecipientRepository {
	return &RecipientRepository{coll: db.Collection(recipientsCollection)}
}

type recipientDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Email       string             `bson:"email"`
	Name        string             `bson:"name,omitempty"`
	Description string             `bson:"description,omitempty"`
	Active      bool               `bson:"active"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d recipientDoc) toDomain() *domain.EmailRecipient {
	return &domain.EmailRecipient{
		ID:          d.ID.Hex(),
		Email:       d.Email,
		Name:        d.Name,
		Description: d.Description,
		Active:      d.Active,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *RecipientRepository) Create(ctx context.Context, recipient *domain.EmailRecipient) (*domain.EmailRecipient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := recipientDoc{
		Email:       recipient.Email,
		Name:        recipient.Name,
		Description: recipient.Description,
		Active:      recipient.Active,
		CreatedAt:   recipient.CreatedAt,
		UpdatedAt:   recipient.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRecipientExists
		}
		return nil, fmt.Errorf("insert recipient: %w", err)
	}

	created := *recipient
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *RecipientRepository) FindAll(ctx context.Context) ([]*domain.EmailRecipient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}

	var docs []recipientDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode recipients: %w", err)
	}

	recipients := make([]*domain.EmailRecipient, len(docs))
	for i, d := range docs {
		recipients[i] = d.toDomain()
	}
	return recipients, nil
}

func (r *RecipientRepository) FindByID(ctx context.Context, id string) (*domain.EmailRecipient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRecipientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc recipientDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("find recipient: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RecipientRepository) Update(ctx context.Context, id string, update ports.UpdateRecipientInput) (*domain.EmailRecipient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRecipientNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Active != nil {
		set["active"] = *update.Active
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc recipientDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecipientNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRecipientExists
		}
		return nil, fmt.Errorf("update recipient: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RecipientRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRecipientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete recipient: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecipientNotFound
	}
	return nil
}

// ActiveEmails resolves the distribution list at call time: exactly the set of
// recipients active at this moment receives the notification.
func (r *RecipientRepository) ActiveEmails(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("list active recipients: %w", err)
	}

	var docs []recipientDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode active recipients: %w", err)
	}

	emails := make([]string, len(docs))
	for i, d := range docs {
		emails[i] = d.Email
	}
	return emails, nil
}

// EnsureIndexes creates the unique email index on the distribution list.
func (r *RecipientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
