package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"venue-webapp/store"
)

const BucketName = "show-images"

// GridFSStorage keeps images in a GridFS bucket next to the shows
// collection.
type GridFSStorage struct {
	bucket *gridfs.Bucket
}

func NewGridFSStorage(db *mongo.Database) (*GridFSStorage, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(BucketName))
	if err != nil {
		return nil, fmt.Errorf("cannot open gridfs bucket: %w", err)
	}
	return &GridFSStorage{bucket: bucket}, nil
}

func (g *GridFSStorage) Save(_ context.Context, name, contentType string, r io.Reader) error {
	uploadOpts := options.GridFSUpload().SetMetadata(bson.D{{Key: "contentType", Value: contentType}})
	if _, err := g.bucket.UploadFromStream(name, io.LimitReader(r, MaxUploadSize+1), uploadOpts); err != nil {
		return fmt.Errorf("cannot upload %v: %w", name, err)
	}
	return nil
}

func (g *GridFSStorage) Open(_ context.Context, name string) (io.ReadCloser, string, error) {
	stream, err := g.bucket.OpenDownloadStreamByName(name)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return nil, "", fmt.Errorf("media %v: %w", name, store.ErrNotFound)
	}
	if err != nil {
		return nil, "", fmt.Errorf("cannot open %v: %w", name, err)
	}
	return stream, ContentType(name), nil
}

func (g *GridFSStorage) Delete(ctx context.Context, name string) error {
	cur, err := g.bucket.Find(bson.M{"filename": name})
	if err != nil {
		return fmt.Errorf("cannot look up %v: %w", name, err)
	}
	defer cur.Close(ctx)

	var files []struct {
		Id interface{} `bson:"_id"`
	}
	if err := cur.All(ctx, &files); err != nil {
		return fmt.Errorf("cannot decode %v: %w", name, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("media %v: %w", name, store.ErrNotFound)
	}
	for _, f := range files {
		if err := g.bucket.Delete(f.Id); err != nil {
			return fmt.Errorf("cannot delete %v: %w", name, err)
		}
	}
	return nil
}
