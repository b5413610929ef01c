package usecase

import (
	"context"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/internal/infrastructure/querycache"
	"portfolia/internal/infrastructure/realtime"
)

// ContentUseCase serves the marketing pages (services, skills, education,
// projects, testimonials). Public reads go through the query cache; admin
// writes publish a row-change event, which invalidates the matching key.
type ContentUseCase struct {
	contentRepo repository.ContentRepository
	bus         *realtime.Bus
	cache       *querycache.Cache
}

func NewContentUseCase(contentRepo repository.ContentRepository, bus *realtime.Bus, cache *querycache.Cache) *ContentUseCase {
	return &ContentUseCase{
		contentRepo: contentRepo,
		bus:         bus,
		cache:       cache,
	}
}

func (uc *ContentUseCase) publish(event realtime.ChangeType, table string, row interface{}) {
	uc.bus.Publish(realtime.ChangeEvent{
		Event: event,
		Table: table,
		New:   row,
	})
}

func (uc *ContentUseCase) ListServices(ctx context.Context) ([]*entity.ServiceItem, error) {
	value, err := uc.cache.Read(ctx, servicesKey, func(ctx context.Context) (interface{}, error) {
		return uc.contentRepo.ListServices(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]*entity.ServiceItem), nil
}

func (uc *ContentUseCase) SaveService(ctx context.Context, item *entity.ServiceItem) error {
	event := realtime.EventUpdate
	if item.ID == "" {
		event = realtime.EventInsert
	}
	if err := uc.contentRepo.SaveService(ctx, item); err != nil {
		return err
	}
	uc.publish(event, servicesTable, item)
	return nil
}

func (uc *ContentUseCase) DeleteService(ctx context.Context, id string) error {
	if err := uc.contentRepo.DeleteService(ctx, id); err != nil {
		return err
	}
	uc.publish(realtime.EventDelete, servicesTable, nil)
	return nil
}

func (uc *ContentUseCase) ListSkills(ctx context.Context) ([]*entity.Skill, error) {
	value, err := uc.cache.Read(ctx, skillsKey, func(ctx context.Context) (interface{}, error) {
		return uc.contentRepo.ListSkills(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]*entity.Skill), nil
}

func (uc *ContentUseCase) SaveSkill(ctx context.Context, skill *entity.Skill) error {
	event := realtime.EventUpdate
	if skill.ID == "" {
		event = realtime.EventInsert
	}
	if err := uc.contentRepo.SaveSkill(ctx, skill); err != nil {
		return err
	}
	uc.publish(event, skillsTable, skill)
	return nil
}

func (uc *ContentUseCase) DeleteSkill(ctx context.Context, id string) error {
	if err := uc.contentRepo.DeleteSkill(ctx, id); err != nil {
		return err
	}
	uc.publish(realtime.EventDelete, skillsTable, nil)
	return nil
}

func (uc *ContentUseCase) ListEducation(ctx context.Context) ([]*entity.Education, error) {
	value, err := uc.cache.Read(ctx, educationKey, func(ctx context.Context) (interface{}, error) {
		return uc.contentRepo.ListEducation(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]*entity.Education), nil
}

func (uc *ContentUseCase) SaveEducation(ctx context.Context, edu *entity.Education) error {
	event := realtime.EventUpdate
	if edu.ID == "" {
		event = realtime.EventInsert
	}
	if err := uc.contentRepo.SaveEducation(ctx, edu); err != nil {
		return err
	}
	uc.publish(event, educationTable, edu)
	return nil
}

func (uc *ContentUseCase) DeleteEducation(ctx context.Context, id string) error {
	if err := uc.contentRepo.DeleteEducation(ctx, id); err != nil {
		return err
	}
	uc.publish(realtime.EventDelete, educationTable, nil)
	return nil
}

func (uc *ContentUseCase) ListProjects(ctx context.Context, featuredOnly bool) ([]*entity.Project, error) {
	if featuredOnly {
		// The featured subset is small and rarely viewed outside the
		// homepage; fetch it directly.
		return uc.contentRepo.ListProjects(ctx, true)
	}
	value, err := uc.cache.Read(ctx, projectsKey, func(ctx context.Context) (interface{}, error) {
		return uc.contentRepo.ListProjects(ctx, false)
	})
	if err != nil {
		return nil, err
	}
	return value.([]*entity.Project), nil
}

func (uc *ContentUseCase) SaveProject(ctx context.Context, project *entity.Project) error {
	event := realtime.EventUpdate
	if project.ID == "" {
		event = realtime.EventInsert
	}
	if err := uc.contentRepo.SaveProject(ctx, project); err != nil {
		return err
	}
	uc.publish(event, projectsTable, project)
	return nil
}

func (uc *ContentUseCase) DeleteProject(ctx context.Context, id string) error {
	if err := uc.contentRepo.DeleteProject(ctx, id); err != nil {
		return err
	}
	uc.publish(realtime.EventDelete, projectsTable, nil)
	return nil
}

func (uc *ContentUseCase) ListTestimonials(ctx context.Context, approvedOnly bool) ([]*entity.Testimonial, error) {
	if !approvedOnly {
		return uc.contentRepo.ListTestimonials(ctx, false)
	}
	value, err := uc.cache.Read(ctx, testimonialsKey, func(ctx context.Context) (interface{}, error) {
		return uc.contentRepo.ListTestimonials(ctx, true)
	})
	if err != nil {
		return nil, err
	}
	return value.([]*entity.Testimonial), nil
}

func (uc *ContentUseCase) SaveTestimonial(ctx context.Context, t *entity.Testimonial) error {
	event := realtime.EventUpdate
	if t.ID == "" {
		event = realtime.EventInsert
	}
	if err := uc.contentRepo.SaveTestimonial(ctx, t); err != nil {
		return err
	}
	uc.publish(event, testimonialsTable, t)
	return nil
}

func (uc *ContentUseCase) DeleteTestimonial(ctx context.Context, id string) error {
	if err := uc.contentRepo.DeleteTestimonial(ctx, id); err != nil {
		return err
	}
	uc.publish(realtime.EventDelete, testimonialsTable, nil)
	return nil
}
