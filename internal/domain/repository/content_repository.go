package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type ContentRepository interface {
	ListServices(ctx context.Context) ([]*entity.ServiceItem, error)
	SaveService(ctx context.Context, item *entity.ServiceItem) error
	DeleteService(ctx context.Context, id string) error

	ListSkills(ctx context.Context) ([]*entity.Skill, error)
	SaveSkill(ctx context.Context, skill *entity.Skill) error
	DeleteSkill(ctx context.Context, id string) error

	ListEducation(ctx context.Context) ([]*entity.Education, error)
	SaveEducation(ctx context.Context, edu *entity.Education) error
	DeleteEducation(ctx context.Context, id string) error

	ListProjects(ctx context.Context, featuredOnly bool) ([]*entity.Project, error)
	SaveProject(ctx context.Context, project *entity.Project) error
	DeleteProject(ctx context.Context, id string) error

	ListTestimonials(ctx context.Context, approvedOnly bool) ([]*entity.Testimonial, error)
	SaveTestimonial(ctx context.Context, t *entity.Testimonial) error
	DeleteTestimonial(ctx context.Context, id string) error
}
