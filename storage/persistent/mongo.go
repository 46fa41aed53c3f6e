package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"blog/storage"
	"blog/storage/models"
)

type Post struct {
	Id       primitive.ObjectID `bson:"_id,omitempty"`
	Title    string             `bson:"title"`
	Excerpt  string             `bson:"excerpt"`
	Content  string             `bson:"content"`
	Date     time.Time          `bson:"date"`
	Author   string             `bson:"author"`
	Category string             `bson:"category"`
	ReadTime string             `bson:"readTime"`
	Tags     []string           `bson:"tags"`
	ImageUrl string             `bson:"imageUrl,omitempty"`
}

func (p *Post) ToModel() models.Post {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Post{
		Id:       p.Id.Hex(),
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Content:  p.Content,
		Date:     p.Date.UTC(),
		Author:   p.Author,
		Category: p.Category,
		ReadTime: p.ReadTime,
		Tags:     tags,
		ImageUrl: p.ImageUrl,
	}
}

func fromModel(p models.Post) Post {
	return Post{
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Content:  p.Content,
		Date:     p.Date,
		Author:   p.Author,
		Category: p.Category,
		ReadTime: p.ReadTime,
		Tags:     p.Tags,
		ImageUrl: p.ImageUrl,
	}
}

type MongoStorage struct {
	client *mongo.Client
	posts  *mongo.Collection
	logger *zap.Logger
}

func (s *MongoStorage) ListPosts(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.posts.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find posts: %s, %w", err.Error(), storage.InternalError)
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			s.logger.Warn("cursor closing failed", zap.Error(err))
		}
	}(cursor, ctx)

	posts := make([]models.Post, 0)
	for cursor.Next(ctx) {
		var next Post
		if err = cursor.Decode(&next); err != nil {
			return nil, fmt.Errorf("decode error: %s, %w", err.Error(), storage.InternalError)
		}
		posts = append(posts, next.ToModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %s, %w", err.Error(), storage.InternalError)
	}
	return posts, nil
}

func (s *MongoStorage) AddPost(ctx context.Context, post models.Post) (models.Post, error) {
	if err := post.Validate(); err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", err.Error(), storage.ValidationError)
	}
	post.Normalize(time.Now())
	doc := fromModel(post)
	res, err := s.posts.InsertOne(ctx, doc)
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to insert post: %s, %w", err.Error(), storage.InternalError)
	}
	doc.Id = res.InsertedID.(primitive.ObjectID)
	return doc.ToModel(), nil
}

func (s *MongoStorage) GetPost(ctx context.Context, postId string) (models.Post, error) {
	postMongoId, err := primitive.ObjectIDFromHex(postId)
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to convert provided id to Mongo object id: %w", storage.NotFoundError)
	}
	var result Post
	err = s.posts.FindOne(ctx, bson.M{"_id": postMongoId}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Post{}, fmt.Errorf("no document with id %v: %w", postId, storage.NotFoundError)
		}
		return models.Post{}, fmt.Errorf("failed to find post: %s %w", err.Error(), storage.InternalError)
	}
	return result.ToModel(), nil
}

// DeletePost removes the post if present. Ids that are not valid object ids
// cannot name a stored document, so they are treated as already deleted.
func (s *MongoStorage) DeletePost(ctx context.Context, postId string) error {
	postMongoId, err := primitive.ObjectIDFromHex(postId)
	if err != nil {
		return nil
	}
	res, err := s.posts.DeleteOne(ctx, bson.M{"_id": postMongoId})
	if err != nil {
		return fmt.Errorf("failed to delete post %s: %s %w", postId, err.Error(), storage.InternalError)
	}
	s.logger.Debug("deleted post", zap.String("postId", postId), zap.Int64("deleted", res.DeletedCount))
	return nil
}

func (s *MongoStorage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func CreateMongoStorage(ctx context.Context, dbUrl, dbName string, logger *zap.Logger) (*MongoStorage, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dbUrl))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	posts := client.Database(dbName).Collection("posts")
	if err := ensurePostsIndexes(ctx, posts); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &MongoStorage{
		client: client,
		posts:  posts,
		logger: logger,
	}, nil
}

var _ storage.Storage = (*MongoStorage)(nil)
