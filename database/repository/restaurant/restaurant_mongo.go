package restaurantRepo

import (
	"context"
	"fmt"
	"time"

	"savora/database"
	"savora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRestaurantRepo implements RestaurantRepository using MongoDB.
type MongoRestaurantRepo struct {
	coll *mongo.Collection
}

// NewMongoRestaurantRepo creates a new instance of RestaurantRepository using MongoDB.
func NewMongoRestaurantRepo() RestaurantRepository {
	repo := &MongoRestaurantRepo{coll: database.Collection("restaurants")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoRestaurantRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "cuisine", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// activeFilter builds the Mongo query for a listing filter.
func activeFilter(f Filter) bson.M {
	query := bson.M{"is_active": true}
	if f.City != "" {
		query["city"] = bson.M{"$regex": fmt.Sprintf("^%s$", f.City), "$options": "i"}
	}
	if f.State != "" {
		query["state"] = bson.M{"$regex": fmt.Sprintf("^%s$", f.State), "$options": "i"}
	}
	if f.Cuisine != "" {
		query["cuisine"] = bson.M{"$regex": f.Cuisine, "$options": "i"}
	}
	if f.Search != "" {
		pattern := bson.M{"$regex": f.Search, "$options": "i"}
		query["$or"] = []bson.M{
			{"name": pattern},
			{"description": pattern},
			{"cuisine": pattern},
		}
	}
	return query
}

// ListActive retrieves active restaurants matching the filter, sorted by name.
func (r *MongoRestaurantRepo) ListActive(f Filter) ([]models.Restaurant, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if f.Skip > 0 {
		opts.SetSkip(f.Skip)
	}
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cursor, err := r.coll.Find(ctx, activeFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve restaurants: %w", err)
	}
	defer cursor.Close(ctx)

	var restaurants []models.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, fmt.Errorf("failed to decode restaurants: %w", err)
	}
	return restaurants, nil
}

// GetByID retrieves a restaurant by its unique ID, nil when absent.
func (r *MongoRestaurantRepo) GetByID(id string) (*models.Restaurant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var restaurant models.Restaurant
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&restaurant); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch restaurant with id %s: %w", id, err)
	}
	return &restaurant, nil
}

// Create inserts a new restaurant document.
func (r *MongoRestaurantRepo) Create(restaurant *models.Restaurant) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	restaurant.CreatedAt = now
	restaurant.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, restaurant)
	if err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	return nil
}

// Update modifies an existing restaurant document.
func (r *MongoRestaurantRepo) Update(restaurant *models.Restaurant) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	restaurant.UpdatedAt = time.Now()
	filter := bson.M{"id": restaurant.ID}
	update := bson.M{"$set": restaurant}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update restaurant with id %s: %w", restaurant.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("restaurant with id %s not found", restaurant.ID)
	}
	return nil
}

// DistinctActive returns the distinct values of a field across active restaurants.
func (r *MongoRestaurantRepo) DistinctActive(field string) ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	raw, err := r.coll.Distinct(ctx, field, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distinct %s: %w", field, err)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			values = append(values, s)
		}
	}
	return values, nil
}

// CountActive counts active restaurants.
func (r *MongoRestaurantRepo) CountActive() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count restaurants: %w", err)
	}
	return count, nil
}
