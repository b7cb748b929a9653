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

const collectionAccounts = "accounts"

type AccountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{col: db.Collection(collectionAccounts)}
}

type accountDoc struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	Firstname    string              `bson:"firstname"`
	Lastname     string              `bson:"lastname"`
	Email        string              `bson:"email"`
	PasswordHash string              `bson:"password_hash"`
	Birthdate    time.Time           `bson:"birthdate"`
	Picture      string              `bson:"picture"`
	IsAdmin      bool                `bson:"is_admin"`
	Localisation *domain.GeoPoint    `bson:"localisation,omitempty"`
	CurrentWalk  *primitive.ObjectID `bson:"current_walk,omitempty"`
	DogCount     int64               `bson:"dog_count"`
	CreatedAt    time.Time           `bson:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at"`
}

func (d *accountDoc) toDomain() *domain.Account {
	a := &domain.Account{
		ID:           d.ID.Hex(),
		Firstname:    d.Firstname,
		Lastname:     d.Lastname,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Birthdate:    d.Birthdate,
		Picture:      d.Picture,
		IsAdmin:      d.IsAdmin,
		Localisation: d.Localisation,
		DogCount:     d.DogCount,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.CurrentWalk != nil {
		hex := d.CurrentWalk.Hex()
		a.CurrentWalk = &hex
	}
	return a
}

// oidFromHex parses an ID string. A malformed ID behaves exactly like a
// missing record.
func oidFromHex(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := accountDoc{
		Firstname:    a.Firstname,
		Lastname:     a.Lastname,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Birthdate:    a.Birthdate,
		Picture:      a.Picture,
		IsAdmin:      a.IsAdmin,
		Localisation: a.Localisation,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *a
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// List pages through accounts sorted by firstname. A $lookup against the
// dogs collection annotates every account with the number of dogs that list
// it as a master.
func (r *AccountRepository) List(ctx context.Context, page ports.Page) ([]*domain.Account, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count accounts: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "firstname", Value: 1}}}},
		{{Key: "$skip", Value: page.Skip()}},
		{{Key: "$limit", Value: int64(page.Size)}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionDogs},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "master"},
			{Key: "as", Value: "owned_dogs"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "dog_count", Value: bson.D{{Key: "$size", Value: "$owned_dogs"}}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "owned_dogs", Value: 0}}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("list accounts: %w", err)
	}
	defer cursor.Close(ctx)

	accounts := make([]*domain.Account, 0, page.Size)
	for cursor.Next(ctx) {
		var doc accountDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

func (r *AccountRepository) Update(ctx context.Context, id string, upd ports.AccountUpdate) (*domain.Account, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Firstname != nil {
		set["firstname"] = *upd.Firstname
	}
	if upd.Lastname != nil {
		set["lastname"] = *upd.Lastname
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.PasswordHash != nil {
		set["password_hash"] = *upd.PasswordHash
	}
	if upd.Birthdate != nil {
		set["birthdate"] = *upd.Birthdate
	}
	if upd.Picture != nil {
		set["picture"] = *upd.Picture
	}
	if upd.Localisation != nil {
		set["localisation"] = upd.Localisation
	}

	return r.findOneAndSet(ctx, oid, bson.M{"$set": set})
}

func (r *AccountRepository) Replace(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	oid, ok := oidFromHex(a.ID)
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := accountDoc{
		ID:           oid,
		Firstname:    a.Firstname,
		Lastname:     a.Lastname,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Birthdate:    a.Birthdate,
		Picture:      a.Picture,
		IsAdmin:      a.IsAdmin,
		Localisation: a.Localisation,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("replace account: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

func (r *AccountRepository) SetCurrentWalk(ctx context.Context, id string, walkID *string) (*domain.Account, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	if walkID == nil {
		return r.findOneAndSet(ctx, oid, bson.M{
			"$set":   bson.M{"updated_at": time.Now().UTC()},
			"$unset": bson.M{"current_walk": ""},
		})
	}

	walkOID, ok := oidFromHex(*walkID)
	if !ok {
		return nil, domain.ErrWalkNotFound
	}
	return r.findOneAndSet(ctx, oid, bson.M{
		"$set": bson.M{"current_walk": walkOID, "updated_at": time.Now().UTC()},
	})
}

func (r *AccountRepository) findOneAndSet(ctx context.Context, oid primitive.ObjectID, update bson.M) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc accountDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	oid, ok := oidFromHex(id)
	if !ok {
		return domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) Exists(ctx context.Context, id string) (bool, error) {
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

// EnsureIndexes creates the unique email index.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
