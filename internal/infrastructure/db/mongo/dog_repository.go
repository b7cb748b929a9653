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

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
	"github.com/dogwalk/dogwalk-api/internal/core/ports"
)

const collectionDogs = "dogs"

type DogRepository struct {
	col *mongo.Collection
}

func NewDogRepository(db *mongo.Database) *DogRepository {
	return &DogRepository{col: db.Collection(collectionDogs)}
}

type dogDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Name      string               `bson:"name"`
	Birthdate time.Time            `bson:"birthdate"`
	Breed     string               `bson:"breed"`
	Masters   []primitive.ObjectID `bson:"master"`
	Dislikes  []primitive.ObjectID `bson:"dislike,omitempty"`
	Picture   string               `bson:"picture"`
	CreatedAt time.Time            `bson:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

func (d *dogDoc) toDomain() *domain.Dog {
	return &domain.Dog{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Birthdate: d.Birthdate,
		Breed:     d.Breed,
		Masters:   hexList(d.Masters),
		Dislikes:  hexList(d.Dislikes),
		Picture:   d.Picture,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func hexList(oids []primitive.ObjectID) []string {
	if oids == nil {
		return nil
	}
	out := make([]string, len(oids))
	for i, oid := range oids {
		out[i] = oid.Hex()
	}
	return out
}

// oidList converts ID strings to ObjectIDs. The referential check has
// already rejected malformed IDs, so a parse failure here is a plain error.
func oidList(ids []string) ([]primitive.ObjectID, error) {
	if ids == nil {
		return nil, nil
	}
	out := make([]primitive.ObjectID, len(ids))
	for i, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("malformed id %q: %w", id, err)
		}
		out[i] = oid
	}
	return out, nil
}

func (r *DogRepository) Create(ctx context.Context, d *domain.Dog) (*domain.Dog, error) {
	masters, err := oidList(d.Masters)
	if err != nil {
		return nil, err
	}
	dislikes, err := oidList(d.Dislikes)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := dogDoc{
		Name:      d.Name,
		Birthdate: d.Birthdate,
		Breed:     d.Breed,
		Masters:   masters,
		Dislikes:  dislikes,
		Picture:   d.Picture,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert dog: %w", err)
	}

	created := *d
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DogRepository) FindByID(ctx context.Context, id string) (*domain.Dog, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return nil, domain.ErrDogNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc dogDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDogNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *DogRepository) List(ctx context.Context, page ports.Page) ([]*domain.Dog, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count dogs: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Size))

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list dogs: %w", err)
	}
	defer cursor.Close(ctx)

	dogs := make([]*domain.Dog, 0, page.Size)
	for cursor.Next(ctx) {
		var doc dogDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}
		dogs = append(dogs, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return dogs, total, nil
}

func (r *DogRepository) Update(ctx context.Context, id string, upd ports.DogUpdate) (*domain.Dog, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return nil, domain.ErrDogNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Birthdate != nil {
		set["birthdate"] = *upd.Birthdate
	}
	if upd.Breed != nil {
		set["breed"] = *upd.Breed
	}
	if upd.Picture != nil {
		set["picture"] = *upd.Picture
	}
	if upd.Masters != nil {
		masters, err := oidList(upd.Masters)
		if err != nil {
			return nil, err
		}
		set["master"] = masters
	}
	if upd.Dislikes != nil {
		dislikes, err := oidList(upd.Dislikes)
		if err != nil {
			return nil, err
		}
		set["dislike"] = dislikes
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc dogDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDogNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *DogRepository) Replace(ctx context.Context, d *domain.Dog) (*domain.Dog, error) {
	oid, ok := oidFromHex(d.ID)
	if !ok {
		return nil, domain.ErrDogNotFound
	}
	masters, err := oidList(d.Masters)
	if err != nil {
		return nil, err
	}
	dislikes, err := oidList(d.Dislikes)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := dogDoc{
		ID:        oid,
		Name:      d.Name,
		Birthdate: d.Birthdate,
		Breed:     d.Breed,
		Masters:   masters,
		Dislikes:  dislikes,
		Picture:   d.Picture,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("replace dog: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrDogNotFound
	}
	return d, nil
}

func (r *DogRepository) Delete(ctx context.Context, id string) error {
	oid, ok := oidFromHex(id)
	if !ok {
		return domain.ErrDogNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrDogNotFound
	}
	return nil
}

func (r *DogRepository) Exists(ctx context.Context, id string) (bool, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// EnsureIndexes creates the master index used by the account list lookup.
func (r *DogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "master", Value: 1}},
	})
	return err
}
