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

const prospectsCollection = "prospects"

type ProspectRepository struct {
	coll *mongo.Collection
}

func NewProspectRepository(db *mongo.Database) *ProspectRepository {
	return &ProspectRepository{coll: db.Collection(prospectsCollection)}
}

type prospectDoc struct {
	ID        primitive.ObjectID    `bson:"_id,omitempty"`
	Contact   domain.Contact        `bson:"contact"`
	Goals     domain.Goals          `bson:"goals"`
	Services  domain.Services       `bson:"services"`
	Budget    domain.Budget         `bson:"budget"`
	Status    domain.ProspectStatus `bson:"status"`
	Notes     string                `bson:"notes,omitempty"`
	CreatedAt time.Time             `bson:"created_at"`
	UpdatedAt time.Time             `bson:"updated_at"`
}

func (d prospectDoc) toDomain() *domain.Prospect {
	return &domain.Prospect{
		ID:        d.ID.Hex(),
		Contact:   d.Contact,
		Goals:     d.Goals,
		Services:  d.Services,
		Budget:    d.Budget,
		Status:    d.Status,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *ProspectRepository) Create(ctx context.Context, p *domain.Prospect) (*domain.Prospect, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := prospectDoc{
		Contact:   p.Contact,
		Goals:     p.Goals,
		Services:  p.Services,
		Budget:    p.Budget,
		Status:    p.Status,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert prospect: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindAll returns every prospect, newest first.
func (r *ProspectRepository) FindAll(ctx context.Context) ([]*domain.Prospect, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list prospects: %w", err)
	}

	var docs []prospectDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode prospects: %w", err)
	}

	prospects := make([]*domain.Prospect, len(docs))
	for i, d := range docs {
		prospects[i] = d.toDomain()
	}
	return prospects, nil
}

func (r *ProspectRepository) Update(ctx context.Context, id string, update ports.UpdateProspectInput) (*domain.Prospect, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProspectNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Contact != nil {
		set["contact"] = domain.Contact{
			Name: domain.Name{
				FirstName: update.Contact.Name.FirstName,
				LastName:  update.Contact.Name.LastName,
			},
			Email:            update.Contact.Email,
			Phone:            update.Contact.Phone,
			PreferredContact: domain.PreferredContact(update.Contact.PreferredContact),
			BusinessName:     update.Contact.BusinessName,
		}
	}
	if update.Goals != nil {
		set["goals"] = domain.Goals{
			FinancialGoals: update.Goals.FinancialGoals,
			Challenges:     update.Goals.Challenges,
		}
	}
	if update.Services != nil {
		set["services"] = domain.Services{SelectedServices: update.Services.SelectedServices}
	}
	if update.Budget != nil {
		set["budget"] = domain.Budget{BudgetRange: domain.BudgetRange(update.Budget.BudgetRange)}
	}
	if update.Status != nil {
		set["status"] = domain.ProspectStatus(*update.Status)
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc prospectDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProspectNotFound
		}
		return nil, fmt.Errorf("update prospect: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProspectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProspectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete prospect: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProspectNotFound
	}
	return nil
}

// EnsureIndexes creates the sort index backing the newest-first listing.
func (r *ProspectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
