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

type firestoreContentRepository struct {
	client *firestore.Client
}

func NewFirestoreContentRepository(client *firestore.Client) repository.ContentRepository {
	return &firestoreContentRepository{
		client: client,
	}
}

func collectDocs[T any](iter *firestore.DocumentIterator, resource string) ([]*T, error) {
	var items []*T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate "+resource, err)
		}

		item := new(T)
		if err := doc.DataTo(item); err != nil {
			return nil, errors.Internal("Failed to parse "+resource+" data", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *firestoreContentRepository) ListServices(ctx context.Context) ([]*entity.ServiceItem, error) {
	iter := r.client.Collection("services").OrderBy("sortOrder", firestore.Asc).Documents(ctx)
	return collectDocs[entity.ServiceItem](iter, "services")
}

func (r *firestoreContentRepository) SaveService(ctx context.Context, item *entity.ServiceItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
		item.CreatedAt = time.Now()
	}
	item.UpdatedAt = time.Now()

	_, err := r.client.Collection("services").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to save service", err)
	}
	return nil
}

func (r *firestoreContentRepository) DeleteService(ctx context.Context, id string) error {
	_, err := r.client.Collection("services").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete service", err)
	}
	return nil
}

func (r *firestoreContentRepository) ListSkills(ctx context.Context) ([]*entity.Skill, error) {
	iter := r.client.Collection("skills").OrderBy("sortOrder", firestore.Asc).Documents(ctx)
	return collectDocs[entity.Skill](iter, "skills")
}

func (r *firestoreContentRepository) SaveSkill(ctx context.Context, skill *entity.Skill) error {
	if skill.ID == "" {
		skill.ID = uuid.New().String()
		skill.CreatedAt = time.Now()
	}
	skill.UpdatedAt = time.Now()

	_, err := r.client.Collection("skills").Doc(skill.ID).Set(ctx, skill)
	if err != nil {
		return errors.Internal("Failed to save skill", err)
	}
	return nil
}

func (r *firestoreContentRepository) DeleteSkill(ctx context.Context, id string) error {
	_, err := r.client.Collection("skills").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete skill", err)
	}
	return nil
}

func (r *firestoreContentRepository) ListEducation(ctx context.Context) ([]*entity.Education, error) {
	iter := r.client.Collection("education").OrderBy("startYear", firestore.Desc).Documents(ctx)
	return collectDocs[entity.Education](iter, "education")
}

func (r *firestoreContentRepository) SaveEducation(ctx context.Context, edu *entity.Education) error {
	if edu.ID == "" {
		edu.ID = uuid.New().String()
		edu.CreatedAt = time.Now()
	}
	edu.UpdatedAt = time.Now()

	_, err := r.client.Collection("education").Doc(edu.ID).Set(ctx, edu)
	if err != nil {
		return errors.Internal("Failed to save education", err)
	}
	return nil
}

func (r *firestoreContentRepository) DeleteEducation(ctx context.Context, id string) error {
	_, err := r.client.Collection("education").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete education", err)
	}
	return nil
}

func (r *firestoreContentRepository) ListProjects(ctx context.Context, featuredOnly bool) ([]*entity.Project, error) {
	query := r.client.Collection("projects").Query
	if featuredOnly {
		query = query.Where("featured", "==", true)
	}
	iter := query.OrderBy("sortOrder", firestore.Asc).Documents(ctx)
	return collectDocs[entity.Project](iter, "projects")
}

func (r *firestoreContentRepository) SaveProject(ctx context.Context, project *entity.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
		project.CreatedAt = time.Now()
	}
	project.UpdatedAt = time.Now()

	_, err := r.client.Collection("projects").Doc(project.ID).Set(ctx, project)
	if err != nil {
		return errors.Internal("Failed to save project", err)
	}
	return nil
}

func (r *firestoreContentRepository) DeleteProject(ctx context.Context, id string) error {
	_, err := r.client.Collection("projects").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete project", err)
	}
	return nil
}

func (r *firestoreContentRepository) ListTestimonials(ctx context.Context, approvedOnly bool) ([]*entity.Testimonial, error) {
	query := r.client.Collection("testimonials").Query
	if approvedOnly {
		query = query.Where("approved", "==", true)
	}
	iter := query.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	return collectDocs[entity.Testimonial](iter, "testimonials")
}

func (r *firestoreContentRepository) SaveTestimonial(ctx context.Context, t *entity.Testimonial) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
		t.CreatedAt = time.Now()
	}
	t.UpdatedAt = time.Now()

	_, err := r.client.Collection("testimonials").Doc(t.ID).Set(ctx, t)
	if err != nil {
		return errors.Internal("Failed to save testimonial", err)
	}
	return nil
}

func (r *firestoreContentRepository) DeleteTestimonial(ctx context.Context, id string) error {
	_, err := r.client.Collection("testimonials").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete testimonial", err)
	}
	return nil
}
