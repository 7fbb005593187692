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

const collectionPayments = "payments"

type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(collectionPayments)}
}

type paymentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	RoomID      string             `bson:"room_id"`
	RenterID    string             `bson:"renter_id"`
	Month       int                `bson:"month"`
	Year        int                `bson:"year"`
	Amount      int64              `bson:"amount"`
	Status      string             `bson:"status"`
	PaymentDate *time.Time         `bson:"payment_date,omitempty"`
	Note        string             `bson:"note,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *paymentDoc) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:          d.ID.Hex(),
		RoomID:      d.RoomID,
		RenterID:    d.RenterID,
		Month:       d.Month,
		Year:        d.Year,
		Amount:      d.Amount,
		Status:      domain.PaymentStatus(d.Status),
		PaymentDate: d.PaymentDate,
		Note:        d.Note,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func paymentToDoc(p *domain.Payment) *paymentDoc {
	return &paymentDoc{
		RoomID:      p.RoomID,
		RenterID:    p.RenterID,
		Month:       p.Month,
		Year:        p.Year,
		Amount:      p.Amount,
		Status:      string(p.Status),
		PaymentDate: p.PaymentDate,
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Create inserts a new rent bill. The unique compound index on
// (room_id, renter_id, month, year) makes the one-bill-per-period invariant
// a store-level constraint: under concurrent inserts exactly one succeeds
// and the rest surface domain.ErrDuplicatePayment.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, paymentToDoc(payment))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicatePayment
		}
		return nil, err
	}

	created := *payment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(payment.ID)
	if err != nil {
		return domain.ErrPaymentNotFound
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, paymentToDoc(payment))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicatePayment
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

// FindByID retrieves a payment by id. When renterID is non-empty the query
// is additionally filtered by renter_id, so rows belonging to other renters
// come back as not-found.
func (r *PaymentRepository) FindByID(ctx context.Context, id string, renterID string) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPaymentNotFound
	}

	query := bson.M{"_id": oid}
	if renterID != "" {
		query["renter_id"] = renterID
	}

	var doc paymentDoc
	if err := r.col.FindOne(ctx, query).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// List returns payments matching filter, newest period first.
func (r *PaymentRepository) List(ctx context.Context, filter ports.PaymentFilter) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.RenterID != "" {
		query["renter_id"] = filter.RenterID
	}
	if filter.RoomID != "" {
		query["room_id"] = filter.RoomID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Month != 0 && filter.Year != 0 {
		query["month"] = filter.Month
		query["year"] = filter.Year
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "year", Value: -1},
		{Key: "month", Value: -1},
	})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	payments := []*domain.Payment{}
	for cur.Next(ctx) {
		var doc paymentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		payments = append(payments, doc.toDomain())
	}
	return payments, cur.Err()
}

// HasPendingSince reports whether the room has a pending bill for
// (month, year) or any later period.
func (r *PaymentRepository) HasPendingSince(ctx context.Context, roomID string, month, year int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{
		"room_id": roomID,
		"status":  string(domain.PaymentPending),
		"$or": bson.A{
			bson.M{"year": bson.M{"$gt": year}},
			bson.M{"year": year, "month": bson.M{"$gte": month}},
		},
	}

	n, err := r.col.CountDocuments(ctx, query, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MonthlyReport aggregates the ledger for one period in a single pipeline.
// An empty ledger yields zeroed totals, never an error.
func (r *PaymentRepository) MonthlyReport(ctx context.Context, month, year int) (*domain.MonthlyReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "month", Value: month},
			{Key: "year", Value: year},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	report := &domain.MonthlyReport{Month: month, Year: year}
	for cur.Next(ctx) {
		var bucket struct {
			Status string `bson:"_id"`
			Count  int    `bson:"count"`
			Total  int64  `bson:"total"`
		}
		if err := cur.Decode(&bucket); err != nil {
			return nil, err
		}
		switch domain.PaymentStatus(bucket.Status) {
		case domain.PaymentPaid:
			report.PaidCount = bucket.Count
			report.TotalCollected = bucket.Total
		case domain.PaymentPending:
			report.PendingCount = bucket.Count
			report.TotalOutstanding = bucket.Total
		}
	}
	return report, cur.Err()
}

// EnsureIndexes creates the unique compound index backing the
// one-bill-per-(room, renter, period) invariant.
func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "room_id", Value: 1},
				{Key: "renter_id", Value: 1},
				{Key: "month", Value: 1},
				{Key: "year", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "renter_id", Value: 1}}},
		{Keys: bson.D{{Key: "year", Value: -1}, {Key: "month", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
