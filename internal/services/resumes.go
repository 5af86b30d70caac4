package services

import (
	"context"

	"spread/internal/models"
)

type ResumeInput struct {
	Title      string              `json:"title"`
	Education  []models.Education  `json:"education"`
	Employment []models.Employment `json:"employment"`
	References []models.Contact    `json:"references"`
	Skills     []string            `json:"skills"`
}

func (f *Facade) CreateResume(ctx context.Context, ownerID uint, in ResumeInput) (*models.Resume, error) {
	if _, err := f.user(ctx, ownerID); err != nil {
		return nil, translate(err)
	}
	resume := &models.Resume{
		OwnerID:    ownerID,
		Title:      in.Title,
		Education:  in.Education,
		Employment: in.Employment,
		References: in.References,
		Skills:     in.Skills,
	}
	if err := f.store.Create(ctx, resume); err != nil {
		return nil, translate(err)
	}
	return resume, nil
}

func (f *Facade) UpdateResume(ctx context.Context, actorID, resumeID uint, in ResumeInput) (*models.Resume, error) {
	e, err := f.store.Update(ctx, models.KindResume, resumeID, func(e models.Entity) error {
		resume := e.(*models.Resume)
		if resume.OwnerID != actorID {
			return forbidden("resume %d does not belong to user %d", resumeID, actorID)
		}
		if in.Title != "" {
			resume.Title = in.Title
		}
		if in.Education != nil {
			resume.Education = in.Education
		}
		if in.Employment != nil {
			resume.Employment = in.Employment
		}
		if in.References != nil {
			resume.References = in.References
		}
		if in.Skills != nil {
			resume.Skills = in.Skills
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return e.(*models.Resume), nil
}

// ListResumes returns the owner's resumes. The model keeps a list
// rather than a single document for extensibility, even though most
// users hold one.
func (f *Facade) ListResumes(ctx context.Context, ownerID uint) ([]*models.Resume, error) {
	entities, err := f.store.ListByRef(ctx, models.KindResume, models.RefOwner, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	resumes := make([]*models.Resume, len(entities))
	for i, e := range entities {
		resumes[i] = e.(*models.Resume)
	}
	return resumes, nil
}

func (f *Facade) DeleteResume(ctx context.Context, actorID, resumeID uint) error {
	e, err := f.resolver.Resolve(ctx, models.KindResume, resumeID)
	if err != nil {
		return translate(err)
	}
	if e.(*models.Resume).OwnerID != actorID {
		return forbidden("resume %d does not belong to user %d", resumeID, actorID)
	}
	return translate(f.store.Delete(ctx, models.KindResume, resumeID))
}
