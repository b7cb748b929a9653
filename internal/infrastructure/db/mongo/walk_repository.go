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

const collectionWalks = "walks"

type WalkRepository struct {
	col *mongo.Collection
}

func NewWalkRepository(db *mongo.Database) *WalkRepository {
	return &WalkRepository{col: db.Collection(collectionWalks)}
}

type walkDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Path      []domain.GeoPoint  `bson:"path"`
	Creator   primitive.ObjectID `bson:"creator"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *walkDoc) toDomain() *domain.Walk {
	return &domain.Walk{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Path:      d.Path,
		Creator:   d.Creator.Hex(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *WalkRepository) Create(ctx context.Context, w *domain.Walk) (*domain.Walk, error) {
	creator, ok := oidFromHex(w.Creator)
	if !ok {
		return nil, fmt.Errorf("malformed creator id %q", w.Creator)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := walkDoc{
		Title:     w.Title,
		Path:      w.Path,
		Creator:   creator,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	if doc.Path == nil {
		doc.Path = []domain.GeoPoint{}
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert walk: %w", err)
	}

	created := *w
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *WalkRepository) FindByID(ctx context.Context, id string) (*domain.Walk, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return nil, domain.ErrWalkNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc walkDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWalkNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *WalkRepository) List(ctx context.Context, page ports.Page) ([]*domain.Walk, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count walks: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "title", Value: 1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Size))

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list walks: %w", err)
	}
	defer cursor.Close(ctx)

	walks := make([]*domain.Walk, 0, page.Size)
	for cursor.Next(ctx) {
		var doc walkDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}
		walks = append(walks, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return walks, total, nil
}

func (r *WalkRepository) Update(ctx context.Context, id string, upd ports.WalkUpdate) (*domain.Walk, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return nil, domain.ErrWalkNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Path != nil {
		set["path"] = upd.Path
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc walkDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWalkNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *WalkRepository) Replace(ctx context.Context, w *domain.Walk) (*domain.Walk, error) {
	oid, ok := oidFromHex(w.ID)
	if !ok {
		return nil, domain.ErrWalkNotFound
	}
	creator, ok := oidFromHex(w.Creator)
	if !ok {
		return nil, fmt.Errorf("malformed creator id %q", w.Creator)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := walkDoc{
		ID:        oid,
		Title:     w.Title,
		Path:      w.Path,
		Creator:   creator,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	if doc.Path == nil {
		doc.Path = []domain.GeoPoint{}
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("replace walk: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrWalkNotFound
	}
	return w, nil
}

func (r *WalkRepository) Delete(ctx context.Context, id string) error {
	oid, ok := oidFromHex(id)
	if !ok {
		return domain.ErrWalkNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrWalkNotFound
	}
	return nil
}

func (r *WalkRepository) Exists(ctx context.Context, id string) (bool, error) {
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

// EnsureIndexes creates the creator index.
func (r *WalkRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "creator", Value: 1}},
	})
	return err
}
