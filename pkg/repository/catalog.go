package repository

import (
	"context"
	"errors"

	"github.com/example/tableserve/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *MongoRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	collection := m.database.Collection(categoriesColl)

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (m *MongoRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	collection := m.database.Collection(categoriesColl)

	res, err := collection.InsertOne(ctx, category)
	if err != nil {
		return err
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *MongoRepository) UpdateCategory(ctx context.Context, id primitive.ObjectID, name, imageURL string) (*models.Category, error) {
	collection := m.database.Collection(categoriesColl)

	update := bson.M{"$set": bson.M{"name": name, "imageUrl": imageURL}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var category models.Category
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (m *MongoRepository) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	collection := m.database.Collection(categoriesColl)

	res, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepository) CategoryExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	collection := m.database.Collection(categoriesColl)

	err := collection.FindOne(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *MongoRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	return m.findProducts(ctx, bson.M{})
}

func (m *MongoRepository) ListProductsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	return m.findProducts(ctx, bson.M{"category": categoryID})
}

func (m *MongoRepository) findProducts(ctx context.Context, filter bson.M) ([]models.Product, error) {
	collection := m.database.Collection(productsColl)

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (m *MongoRepository) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	collection := m.database.Collection(productsColl)

	var product models.Product
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (m *MongoRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	collection := m.database.Collection(productsColl)

	res, err := collection.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ProductUpdate carries the mutable product fields; nil means leave unchanged.
type ProductUpdate struct {
	Name      *string
	Price     *float64
	ImageURL  *string
	Available *bool
}

func (m *MongoRepository) UpdateProduct(ctx context.Context, id primitive.ObjectID, upd ProductUpdate) (*models.Product, error) {
	collection := m.database.Collection(productsColl)

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}
	if upd.Available != nil {
		set["available"] = *upd.Available
	}

	filter := bson.M{"_id": id}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	var err error
	if len(set) == 0 {
		err = collection.FindOne(ctx, filter).Decode(&product)
	} else {
		err = collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&product)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (m *MongoRepository) DeleteProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	collection := m.database.Collection(productsColl)

	var product models.Product
	err := collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
