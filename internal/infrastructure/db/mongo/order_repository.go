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

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
	"github.com/burgerqueen/burger-queen-api/internal/core/ports"
)

const ordersCollection = "orders"

// OrderRepository implements ports.OrderRepository using MongoDB. Updates go
// through FindOneAndUpdate, the store's atomic find-and-update primitive.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

// The product inside an order line is a snapshot of the catalog entry at
// order time, not a live reference; its id is stored as a plain string.
type mongoOrderProduct struct {
	ID    string  `bson:"id,omitempty"`
	Name  string  `bson:"name"`
	Price float64 `bson:"price"`
	Image string  `bson:"image,omitempty"`
	Type  string  `bson:"type,omitempty"`
}

type mongoOrderItem struct {
	Qty     int               `bson:"qty"`
	Product mongoOrderProduct `bson:"product"`
}

type mongoOrder struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	Client        string             `bson:"client"`
	Products      []mongoOrderItem   `bson:"products"`
	Status        string             `bson:"status"`
	DateEntry     time.Time          `bson:"date_entry"`
	DateProcessed *time.Time         `bson:"date_processed,omitempty"`
}

func itemsToMongo(items []domain.OrderItem) []mongoOrderItem {
	out := make([]mongoOrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, mongoOrderItem{
			Qty: it.Qty,
			Product: mongoOrderProduct{
				ID:    it.Product.ID,
				Name:  it.Product.Name,
				Price: it.Product.Price,
				Image: it.Product.Image,
				Type:  it.Product.Type,
			},
		})
	}
	return out
}

func (mo mongoOrder) toDomain() *domain.Order {
	items := make([]domain.OrderItem, 0, len(mo.Products))
	for _, it := range mo.Products {
		items = append(items, domain.OrderItem{
			Qty: it.Qty,
			Product: domain.Product{
				ID:    it.Product.ID,
				Name:  it.Product.Name,
				Price: it.Product.Price,
				Image: it.Product.Image,
				Type:  it.Product.Type,
			},
		})
	}
	order := &domain.Order{
		ID:        mo.ID.Hex(),
		UserID:    mo.UserID,
		Client:    mo.Client,
		Products:  items,
		Status:    domain.OrderStatus(mo.Status),
		DateEntry: mo.DateEntry.UTC(),
	}
	if mo.DateProcessed != nil {
		ts := mo.DateProcessed.UTC()
		order.DateProcessed = &ts
	}
	return order
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoOrder{
		UserID:    order.UserID,
		Client:    order.Client,
		Products:  itemsToMongo(order.Products),
		Status:    string(order.Status),
		DateEntry: order.DateEntry,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	var mo mongoOrder
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return mo.toDomain(), nil
}

func (r *OrderRepository) List(ctx context.Context, page ports.Page) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSkip(int64((page.Number - 1) * page.Limit)).
		SetLimit(int64(page.Limit)).
		SetSort(bson.D{{Key: "date_entry", Value: 1}})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []*domain.Order
	for cur.Next(ctx) {
		var mo mongoOrder
		if err := cur.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, mo.toDomain())
	}
	return orders, cur.Err()
}

func (r *OrderRepository) Update(ctx context.Context, id string, upd ports.OrderUpdate) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	set := bson.M{}
	if upd.UserID != nil {
		set["user_id"] = *upd.UserID
	}
	if upd.Client != nil {
		set["client"] = *upd.Client
	}
	if upd.Products != nil {
		set["products"] = itemsToMongo(upd.Products)
	}
	if upd.Status != nil {
		set["status"] = string(*upd.Status)
	}
	if upd.DateProcessed != nil {
		set["date_processed"] = *upd.DateProcessed
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mo mongoOrder
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order: %w", err)
	}
	return mo.toDomain(), nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
