package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kosapp/kos-api/internal/core/domain"
	"github.com/kosapp/kos-api/internal/core/ports"
)

const collectionRooms = "rooms"

type RoomRepository struct {
	col *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection(collectionRooms)}
}

type roomDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Number      string             `bson:"number"`
	Type        string             `bson:"type"`
	MonthlyRate int64              `bson:"monthly_rate"`
	Status      string             `bson:"status"`
	Amenities   []string           `bson:"amenities"`
	RenterID    string             `bson:"renter_id,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *roomDoc) toDomain() *domain.Room {
	return &domain.Room{
		ID:          d.ID.Hex(),
		Number:      d.Number,
		Type:        d.Type,
		MonthlyRate: d.MonthlyRate,
		Status:      domain.RoomStatus(d.Status),
		Amenities:   d.Amenities,
		RenterID:    d.RenterID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func roomToDoc(r *domain.Room) *roomDoc {
	return &roomDoc{
		Number:      r.Number,
		Type:        r.Type,
		MonthlyRate: r.MonthlyRate,
		Status:      string(r.Status),
		Amenities:   r.Amenities,
		RenterID:    r.RenterID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Create inserts a new room. The unique index on number turns duplicate
// room numbers into domain.ErrDuplicateRoomNumber.
func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, roomToDoc(room))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateRoomNumber
		}
		return nil, err
	}

	created := *room
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(room.ID)
	if err != nil {
		return domain.ErrRoomNotFound
	}

	doc := roomToDoc(room)
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateRoomNumber
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRoomNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoomNotFound
	}

	var doc roomDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// List returns rooms matching filter, ordered by room number.
func (r *RoomRepository) List(ctx context.Context, filter ports.RoomFilter) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}

	opts := options.Find().SetSort(bson.D{{Key: "number", Value: 1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rooms := []*domain.Room{}
	for cur.Next(ctx) {
		var doc roomDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		rooms = append(rooms, doc.toDomain())
	}
	return rooms, cur.Err()
}

// OccupancyStats aggregates room counts per status and the monthly rates in
// one pipeline, so the snapshot is consistent as-of query time.
func (r *RoomRepository) OccupancyStats(ctx context.Context) (*domain.OccupancyStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$monthly_rate"}}},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	stats := &domain.OccupancyStats{}
	for cur.Next(ctx) {
		var bucket struct {
			Status  string `bson:"_id"`
			Count   int    `bson:"count"`
			Revenue int64  `bson:"revenue"`
		}
		if err := cur.Decode(&bucket); err != nil {
			return nil, err
		}
		stats.TotalRooms += bucket.Count
		switch domain.RoomStatus(bucket.Status) {
		case domain.RoomAvailable:
			stats.Available = bucket.Count
		case domain.RoomOccupied:
			stats.Occupied = bucket.Count
			stats.PotentialRevenue = bucket.Revenue
		case domain.RoomMaintenance:
			stats.Maintenance = bucket.Count
		}
	}
	return stats, cur.Err()
}

func (r *RoomRepository) ExistsOccupiedByRenter(ctx context.Context, renterID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{
		"renter_id": renterID,
		"status":    string(domain.RoomOccupied),
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// EnsureIndexes creates the unique index on room number.
func (r *RoomRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
