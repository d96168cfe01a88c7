package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "PesquisaDB"

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	QuestionnaireCollection *mongo.Collection
	QuestionCollection      *mongo.Collection
	SubmissionCollection    *mongo.Collection
	CompanyCollection       *mongo.Collection
	EmployeeCollection      *mongo.Collection
	InviteCollection        *mongo.Collection
	UserCollection          *mongo.Collection
)

// ConnectMongoDB connects to MongoDB exactly once and wires the shared
// collection handles.
func ConnectMongoDB() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("MongoDB ping failed:", connectErr)
			return
		}

		QuestionnaireCollection = GetCollection(DBName, "questionnaires")
		QuestionCollection = GetCollection(DBName, "questions")
		SubmissionCollection = GetCollection(DBName, "submissions")
		CompanyCollection = GetCollection(DBName, "companies")
		EmployeeCollection = GetCollection(DBName, "employees")
		InviteCollection = GetCollection(DBName, "invites")
		UserCollection = GetCollection(DBName, "users")

		log.Println("MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
