package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/pkg/errors"
)

type firestoreContactRepository struct {
	client *firestore.Client
}

func NewFirestoreContactRepository(client *firestore.Client) repository.ContactRepository {
	return &firestoreContactRepository{
		client: client,
	}
}

func (r *firestoreContactRepository) CreateMessage(ctx context.Context, msg *entity.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	msg.CreatedAt = time.Now()

	_, err := r.client.Collection("contact_messages").Doc(msg.ID).Set(ctx, msg)
	if err != nil {
		return errors.Internal("Failed to create contact message", err)
	}

	return nil
}

func (r *firestoreContactRepository) ListMessages(ctx context.Context, limit, offset int) ([]*entity.ContactMessage, int64, error) {
	query := r.client.Collection("contact_messages").OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count contact messages", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var messages []*entity.ContactMessage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate contact messages", err)
		}

		var msg entity.ContactMessage
		if err := doc.DataTo(&msg); err != nil {
			return nil, 0, errors.Internal("Failed to parse contact message data", err)
		}
		messages = append(messages, &msg)
	}

	return messages, total, nil
}

func (r *firestoreContactRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Collection("contact_messages").Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		return errors.Internal("Failed to mark contact message read", err)
	}
	return nil
}

func (r *firestoreContactRepository) CreateEmailLog(ctx context.Context, log *entity.EmailLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("email_logs").Doc(log.ID).Set(ctx, log)
	if err != nil {
		return errors.Internal("Failed to create email log", err)
	}

	return nil
}

func (r *firestoreContactRepository) ListEmailLogs(ctx context.Context, limit, offset int) ([]*entity.EmailLog, int64, error) {
	query := r.client.Collection("email_logs").OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count email logs", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var logs []*entity.EmailLog
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate email logs", err)
		}

		var log entity.EmailLog
		if err := doc.DataTo(&log); err != nil {
			return nil, 0, errors.Internal("Failed to parse email log data", err)
		}
		logs = append(logs, &log)
	}

	return logs, total, nil
}
