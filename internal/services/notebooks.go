package services

import (
	"context"
	"strings"

	"spread/internal/models"
	"spread/internal/refs"
)

type NotebookInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Tags        []string `json:"tags"`
}

func (f *Facade) CreateNotebook(ctx context.Context, ownerID uint, in NotebookInput) (*models.Notebook, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationFailed("notebook name is required", map[string]string{"name": "required"})
	}
	if _, err := f.user(ctx, ownerID); err != nil {
		return nil, translate(err)
	}
	nb := &models.Notebook{
		OwnerID:     ownerID,
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		Tags:        in.Tags,
	}
	if err := f.store.Create(ctx, nb); err != nil {
		return nil, translate(err)
	}
	return nb, nil
}

func (f *Facade) UpdateNotebook(ctx context.Context, actorID, notebookID uint, in NotebookInput) (*models.Notebook, error) {
	e, err := f.store.Update(ctx, models.KindNotebook, notebookID, func(e models.Entity) error {
		nb := e.(*models.Notebook)
		if nb.OwnerID != actorID {
			return forbidden("notebook %d does not belong to user %d", notebookID, actorID)
		}
		if in.Name != "" {
			nb.Name = in.Name
		}
		nb.Description = in.Description
		nb.Color = in.Color
		if in.Tags != nil {
			nb.Tags = in.Tags
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return e.(*models.Notebook), nil
}

// NotebookView is a notebook with its sections.
type NotebookView struct {
	Notebook *models.Notebook          `json:"notebook"`
	Sections []*models.NotebookSection `json:"sections"`
}

func (f *Facade) GetNotebook(ctx context.Context, notebookID uint) (*NotebookView, error) {
	e, err := f.resolver.Resolve(ctx, models.KindNotebook, notebookID)
	if err != nil {
		return nil, translate(err)
	}
	entities, err := f.store.ListByRef(ctx, models.KindSection, models.RefNotebook, notebookID)
	if err != nil {
		return nil, translate(err)
	}
	view := &NotebookView{Notebook: e.(*models.Notebook)}
	for _, se := range entities {
		view.Sections = append(view.Sections, se.(*models.NotebookSection))
	}
	return view, nil
}

func (f *Facade) ListNotebooks(ctx context.Context, ownerID uint) ([]*models.Notebook, error) {
	entities, err := f.store.ListByRef(ctx, models.KindNotebook, models.RefOwner, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	books := make([]*models.Notebook, len(entities))
	for i, e := range entities {
		books[i] = e.(*models.Notebook)
	}
	return books, nil
}

// DeleteNotebook cascades over the notebook's sections and notes.
func (f *Facade) DeleteNotebook(ctx context.Context, actorID, notebookID uint) error {
	e, err := f.resolver.Resolve(ctx, models.KindNotebook, notebookID)
	if err != nil {
		return translate(err)
	}
	if e.(*models.Notebook).OwnerID != actorID {
		return forbidden("notebook %d does not belong to user %d", notebookID, actorID)
	}
	return translate(f.hier.DeleteNotebook(ctx, notebookID))
}

type SectionInput struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Color    string   `json:"color"`
	Tags     []string `json:"tags"`
}

// CreateSection adds a section under an existing notebook owned by the
// actor.
func (f *Facade) CreateSection(ctx context.Context, actorID, notebookID uint, in SectionInput) (*models.NotebookSection, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, validationFailed("section title is required", map[string]string{"title": "required"})
	}
	e, err := f.resolver.Resolve(ctx, models.KindNotebook, notebookID)
	if err != nil {
		return nil, translate(err)
	}
	if e.(*models.Notebook).OwnerID != actorID {
		return nil, forbidden("notebook %d does not belong to user %d", notebookID, actorID)
	}
	section := &models.NotebookSection{
		NotebookID: notebookID,
		Title:      in.Title,
		Category:   in.Category,
		Color:      in.Color,
		Tags:       in.Tags,
	}
	if err := f.store.Create(ctx, section); err != nil {
		return nil, translate(err)
	}
	return section, nil
}

// SectionView is a section with its notes.
type SectionView struct {
	Section *models.NotebookSection `json:"section"`
	Notes   []*models.Note          `json:"notes"`
}

func (f *Facade) GetSection(ctx context.Context, notebookID, sectionID uint) (*SectionView, error) {
	err := f.resolver.ValidateChain(ctx,
		refs.ParentRef{Kind: models.KindNotebook, ID: notebookID},
		refs.ParentRef{Kind: models.KindSection, ID: sectionID},
	)
	if err != nil {
		return nil, translate(err)
	}
	e, err := f.resolver.Resolve(ctx, models.KindSection, sectionID)
	if err != nil {
		return nil, translate(err)
	}
	entities, err := f.store.ListByRef(ctx, models.KindNote, models.RefSection, sectionID)
	if err != nil {
		return nil, translate(err)
	}
	view := &SectionView{Section: e.(*models.NotebookSection)}
	for _, ne := range entities {
		view.Notes = append(view.Notes, ne.(*models.Note))
	}
	return view, nil
}

// DeleteSection removes one section and its notes.
func (f *Facade) DeleteSection(ctx context.Context, actorID, notebookID, sectionID uint) error {
	err := f.resolver.ValidateChain(ctx,
		refs.ParentRef{Kind: models.KindNotebook, ID: notebookID},
		refs.ParentRef{Kind: models.KindSection, ID: sectionID},
	)
	if err != nil {
		return translate(err)
	}
	nb, err := f.resolver.Resolve(ctx, models.KindNotebook, notebookID)
	if err != nil {
		return translate(err)
	}
	if nb.(*models.Notebook).OwnerID != actorID {
		return forbidden("notebook %d does not belong to user %d", notebookID, actorID)
	}
	return translate(f.hier.DeleteSection(ctx, sectionID))
}

type NoteInput struct {
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	References []string `json:"references"`
}

// CreateNote writes a note under a notebook/section pair. The whole
// chain validates first: the section must belong to the notebook named
// in the same request.
func (f *Facade) CreateNote(ctx context.Context, actorID, notebookID, sectionID uint, in NoteInput) (*models.Note, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, validationFailed("note title is required", map[string]string{"title": "required"})
	}
	err := f.resolver.ValidateChain(ctx,
		refs.ParentRef{Kind: models.KindNotebook, ID: notebookID},
		refs.ParentRef{Kind: models.KindSection, ID: sectionID},
	)
	if err != nil {
		return nil, translate(err)
	}
	nb, err := f.resolver.Resolve(ctx, models.KindNotebook, notebookID)
	if err != nil {
		return nil, translate(err)
	}
	if nb.(*models.Notebook).OwnerID != actorID {
		return nil, forbidden("notebook %d does not belong to user %d", notebookID, actorID)
	}
	note := &models.Note{
		NotebookID: notebookID,
		SectionID:  sectionID,
		Title:      in.Title,
		Body:       in.Body,
		References: in.References,
	}
	if err := f.store.Create(ctx, note); err != nil {
		return nil, translate(err)
	}
	return note, nil
}

// UpdateNote edits title/body/references. Parent references are
// immutable; there is no re-parenting. Ownership is validated before
// any write is applied.
func (f *Facade) UpdateNote(ctx context.Context, actorID, noteID uint, in NoteInput) (*models.Note, error) {
	if err := f.authorizeNote(ctx, actorID, noteID); err != nil {
		return nil, err
	}
	e, err := f.store.Update(ctx, models.KindNote, noteID, func(e models.Entity) error {
		note := e.(*models.Note)
		if in.Title != "" {
			note.Title = in.Title
		}
		note.Body = in.Body
		if in.References != nil {
			note.References = in.References
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return e.(*models.Note), nil
}

// authorizeNote walks note -> notebook -> owner and checks the actor.
func (f *Facade) authorizeNote(ctx context.Context, actorID, noteID uint) error {
	e, err := f.resolver.Resolve(ctx, models.KindNote, noteID)
	if err != nil {
		return translate(err)
	}
	nb, err := f.resolver.Resolve(ctx, models.KindNotebook, e.(*models.Note).NotebookID)
	if err != nil {
		return translate(err)
	}
	if nb.(*models.Notebook).OwnerID != actorID {
		return forbidden("note %d does not belong to user %d", noteID, actorID)
	}
	return nil
}

func (f *Facade) DeleteNote(ctx context.Context, actorID, noteID uint) error {
	if err := f.authorizeNote(ctx, actorID, noteID); err != nil {
		return err
	}
	return translate(f.store.Delete(ctx, models.KindNote, noteID))
}
