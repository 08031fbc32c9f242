package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Nombres de colecciones.
const (
	UsersCollection     = "users"
	EmployeesCollection = "employees"
)

// NewClient conecta con MongoDB y verifica la conexión con un ping al primario.
func NewClient(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(25).
		SetServerSelectionTimeout(10 * time.Second)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes crea los índices únicos que garantizan username/email sin duplicados
// y los índices de búsqueda por designation y department. Es idempotente.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("users_username_key")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("users_email_key")},
	}
	if _, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, users); err != nil {
		return fmt.Errorf("índices users: %w", err)
	}
	employees := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("employees_email_key")},
		{Keys: bson.D{{Key: "designation", Value: 1}}, Options: options.Index().SetName("employees_designation_idx")},
		{Keys: bson.D{{Key: "department", Value: 1}}, Options: options.Index().SetName("employees_department_idx")},
	}
	if _, err := db.Collection(EmployeesCollection).Indexes().CreateMany(ctx, employees); err != nil {
		return fmt.Errorf("índices employees: %w", err)
	}
	return nil
}
