package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/pkg/errors"
)

type firestoreMediaRepository struct {
	client *firestore.Client
}

func NewFirestoreMediaRepository(client *firestore.Client) repository.MediaRepository {
	return &firestoreMediaRepository{
		client: client,
	}
}

func (r *firestoreMediaRepository) Create(ctx context.Context, file *entity.MediaFile) error {
	if file.ID == "" {
		file.ID = uuid.New().String()
	}
	file.CreatedAt = time.Now()

	_, err := r.client.Collection("media_files").Doc(file.ID).Set(ctx, file)
	if err != nil {
		return errors.Internal("Failed to create media record", err)
	}

	return nil
}

func (r *firestoreMediaRepository) List(ctx context.Context, limit, offset int) ([]*entity.MediaFile, int64, error) {
	query := r.client.Collection("media_files").OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count media records", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var files []*entity.MediaFile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate media records", err)
		}

		var file entity.MediaFile
		if err := doc.DataTo(&file); err != nil {
			return nil, 0, errors.Internal("Failed to parse media record data", err)
		}
		files = append(files, &file)
	}

	return files, total, nil
}

func (r *firestoreMediaRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("media_files").Doc(id).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Media record", err)
		}
		return errors.Internal("Failed to delete media record", err)
	}
	return nil
}
