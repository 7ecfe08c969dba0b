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

	"github.com/moviebag/movie-bag/internal/core/domain"
)

const collectionMovies = "movies"

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{col: db.Collection(collectionMovies)}
}

type mongoMovie struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Casts   []string           `bson:"casts"`
	Genres  []string           `bson:"genres"`
	AddedBy primitive.ObjectID `bson:"added_by,omitempty"`
}

func (mm *mongoMovie) toDomain() domain.Movie {
	m := domain.Movie{
		ID:     mm.ID.Hex(),
		Name:   mm.Name,
		Casts:  mm.Casts,
		Genres: mm.Genres,
	}
	if !mm.AddedBy.IsZero() {
		m.AddedBy = mm.AddedBy.Hex()
	}
	return m
}

// Create inserts a new movie document. The unique index on name translates
// a duplicate into domain.ErrMovieExists.
func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMovie{
		Name:   movie.Name,
		Casts:  movie.Casts,
		Genres: movie.Genres,
	}
	if movie.AddedBy != "" {
		oid, err := primitive.ObjectIDFromHex(movie.AddedBy)
		if err != nil {
			return nil, domain.ErrUserNotFound
		}
		doc.AddedBy = oid
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrMovieExists
		}
		return nil, fmt.Errorf("insert movie: %w", err)
	}

	created := *movie
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MovieRepository) FindAll(ctx context.Context) ([]domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer cursor.Close(ctx)

	movies := make([]domain.Movie, 0)
	for cursor.Next(ctx) {
		var mm mongoMovie
		if err := cursor.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode movie: %w", err)
		}
		movies = append(movies, mm.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return movies, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	var mm mongoMovie
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	m := mm.toDomain()
	return &m, nil
}

// Update replaces the mutable fields in a single conditional write filtered
// on both id and owner. A non-owner (or missing movie) matches nothing, so
// the caller cannot distinguish the two cases.
func (r *MovieRepository) Update(ctx context.Context, id, ownerID string, movie *domain.Movie) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownedFilter(id, ownerID)
	if err != nil {
		return err
	}

	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"name":   movie.Name,
		"casts":  movie.Casts,
		"genres": movie.Genres,
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrMovieExists
		}
		return fmt.Errorf("update movie: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// Delete removes the movie in a single conditional write filtered on both
// id and owner.
func (r *MovieRepository) Delete(ctx context.Context, id, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownedFilter(id, ownerID)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// DeleteByOwner removes every movie added by the given user. Used when the
// owning account is deleted.
func (r *MovieRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if _, err := r.col.DeleteMany(ctx, bson.M{"added_by": oid}); err != nil {
		return fmt.Errorf("delete movies by owner: %w", err)
	}
	return nil
}

// ownedFilter builds the {_id, added_by} filter used by conditional writes.
// Malformed ids report not-found, matching what a lookup would say.
func ownedFilter(id, ownerID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}
	return bson.M{"_id": oid, "added_by": owner}, nil
}

// EnsureIndexes creates the unique name index and the owner index used by
// the cascade delete.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "added_by", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
