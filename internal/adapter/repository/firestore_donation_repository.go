package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/pkg/errors"
)

type firestoreDonationRepository struct {
	client *firestore.Client
}

func NewFirestoreDonationRepository(client *firestore.Client) repository.DonationRepository {
	return &firestoreDonationRepository{
		client: client,
	}
}

// Create keys the document by payment reference, so a re-verified reference
// hits the already-exists path instead of inserting a second row.
func (r *firestoreDonationRepository) Create(ctx context.Context, donation *entity.Donation) (bool, *entity.Donation, error) {
	donation.ID = donation.Reference
	donation.CreatedAt = time.Now()

	docRef := r.client.Collection("donations").Doc(donation.Reference)
	_, err := docRef.Create(ctx, donation)
	if err == nil {
		return true, donation, nil
	}

	if status.Code(err) == codes.AlreadyExists {
		existing, getErr := r.GetByReference(ctx, donation.Reference)
		if getErr != nil {
			return false, nil, getErr
		}
		return false, existing, nil
	}

	return false, nil, errors.Internal("Failed to create donation", err)
}

func (r *firestoreDonationRepository) GetByReference(ctx context.Context, reference string) (*entity.Donation, error) {
	doc, err := r.client.Collection("donations").Doc(reference).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Donation", err)
		}
		return nil, errors.Internal("Failed to get donation", err)
	}

	var donation entity.Donation
	if err := doc.DataTo(&donation); err != nil {
		return nil, errors.Internal("Failed to parse donation data", err)
	}
	return &donation, nil
}

func (r *firestoreDonationRepository) List(ctx context.Context, limit, offset int) ([]*entity.Donation, int64, error) {
	query := r.client.Collection("donations").OrderBy("paidAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count donations", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var donations []*entity.Donation
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate donations", err)
		}

		var donation entity.Donation
		if err := doc.DataTo(&donation); err != nil {
			return nil, 0, errors.Internal("Failed to parse donation data", err)
		}
		donations = append(donations, &donation)
	}

	return donations, total, nil
}
