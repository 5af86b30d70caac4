package services

import (
	"context"
	"strings"

	"spread/internal/models"
	"spread/internal/setops"
)

type CompanyInput struct {
	Name        string   `json:"name"`
	Bio         string   `json:"bio"`
	Street1     string   `json:"street_1"`
	Street2     string   `json:"street_2"`
	Suite       string   `json:"suite"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Zip         string   `json:"zip"`
	Country     string   `json:"country"`
	Type        string   `json:"type"`
	Phone       string   `json:"phone"`
	Fax         string   `json:"fax"`
	Email       string   `json:"email"`
	Website     string   `json:"website"`
	Departments []string `json:"departments"`
}

func (f *Facade) CreateCompany(ctx context.Context, ownerID uint, in CompanyInput) (*models.Company, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationFailed("company name is required", map[string]string{"name": "required"})
	}
	if _, err := f.user(ctx, ownerID); err != nil {
		return nil, translate(err)
	}
	company := &models.Company{
		OwnerID:     ownerID,
		Name:        in.Name,
		Bio:         in.Bio,
		Street1:     in.Street1,
		Street2:     in.Street2,
		Suite:       in.Suite,
		City:        in.City,
		State:       in.State,
		Zip:         in.Zip,
		Country:     in.Country,
		Type:        in.Type,
		Phone:       in.Phone,
		Fax:         in.Fax,
		Email:       in.Email,
		Website:     in.Website,
		Departments: in.Departments,
	}
	if err := f.store.Create(ctx, company); err != nil {
		return nil, translate(err)
	}
	return company, nil
}

func (f *Facade) GetCompany(ctx context.Context, companyID uint) (*models.Company, error) {
	e, err := f.resolver.Resolve(ctx, models.KindCompany, companyID)
	if err != nil {
		return nil, translate(err)
	}
	return e.(*models.Company), nil
}

// ApplyForJob adds the actor's resume to the company's applicant set.
// The resume must exist and belong to the applicant; applying twice is
// a no-op.
func (f *Facade) ApplyForJob(ctx context.Context, actorID, companyID, resumeID uint) (changed bool, err error) {
	if _, err := f.resolver.Resolve(ctx, models.KindCompany, companyID); err != nil {
		return false, translate(err)
	}
	re, err := f.resolver.Resolve(ctx, models.KindResume, resumeID)
	if err != nil {
		return false, translate(err)
	}
	if re.(*models.Resume).OwnerID != actorID {
		return false, forbidden("resume %d does not belong to user %d", resumeID, actorID)
	}
	changed, err = f.sets.AddIfAbsent(ctx, models.KindCompany, companyID, models.SetJobApplicants, resumeID)
	if err != nil {
		return false, translate(err)
	}
	return changed, nil
}

// WithdrawApplication removes the actor's resume from the applicant
// set; withdrawing an absent application is a no-op.
func (f *Facade) WithdrawApplication(ctx context.Context, actorID, companyID, resumeID uint) (changed bool, err error) {
	re, err := f.resolver.Resolve(ctx, models.KindResume, resumeID)
	if err != nil {
		return false, translate(err)
	}
	if re.(*models.Resume).OwnerID != actorID {
		return false, forbidden("resume %d does not belong to user %d", resumeID, actorID)
	}
	changed, err = f.sets.RemoveIfPresent(ctx, models.KindCompany, companyID, models.SetJobApplicants, resumeID)
	if err != nil {
		return false, translate(err)
	}
	return changed, nil
}

// Hire moves an applicant into the employee set: the resume leaves
// job_applicants and its owner joins employees. Only the company owner
// may hire.
func (f *Facade) Hire(ctx context.Context, actorID, companyID, resumeID uint) error {
	ce, err := f.resolver.Resolve(ctx, models.KindCompany, companyID)
	if err != nil {
		return translate(err)
	}
	if ce.(*models.Company).OwnerID != actorID {
		return forbidden("company %d does not belong to user %d", companyID, actorID)
	}
	re, err := f.resolver.Resolve(ctx, models.KindResume, resumeID)
	if err != nil {
		return translate(err)
	}
	candidateID := re.(*models.Resume).OwnerID
	if _, err := f.user(ctx, candidateID); err != nil {
		return translate(err)
	}

	if _, err := f.sets.RemoveIfPresent(ctx, models.KindCompany, companyID, models.SetJobApplicants, resumeID); err != nil {
		return translate(err)
	}
	if _, err := f.sets.AddIfAbsent(ctx, models.KindCompany, companyID, models.SetEmployees, candidateID); err != nil {
		return translate(err)
	}
	return nil
}

// UpsertInventoryLine writes one stock line, addressed by its item
// reference. An existing line is replaced in place; a new one is
// appended.
func (f *Facade) UpsertInventoryLine(ctx context.Context, actorID, companyID uint, listName string, line models.InventoryLine) (*models.Company, error) {
	if strings.TrimSpace(line.ItemRef) == "" {
		return nil, validationFailed("item reference is required", map[string]string{"item_ref": "required"})
	}
	e, err := f.store.Update(ctx, models.KindCompany, companyID, func(e models.Entity) error {
		company := e.(*models.Company)
		if company.OwnerID != actorID {
			return forbidden("company %d does not belong to user %d", companyID, actorID)
		}
		switch listName {
		case "office":
			company.Inventory.Office, _ = setops.Upsert(company.Inventory.Office, line)
		case "sale":
			company.Inventory.Sale, _ = setops.Upsert(company.Inventory.Sale, line)
		default:
			return validationFailed("unknown inventory list", map[string]string{"list": listName})
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return e.(*models.Company), nil
}

func (f *Facade) RemoveInventoryLine(ctx context.Context, actorID, companyID uint, listName, itemRef string) (*models.Company, error) {
	e, err := f.store.Update(ctx, models.KindCompany, companyID, func(e models.Entity) error {
		company := e.(*models.Company)
		if company.OwnerID != actorID {
			return forbidden("company %d does not belong to user %d", companyID, actorID)
		}
		switch listName {
		case "office":
			company.Inventory.Office, _ = setops.Remove(company.Inventory.Office, itemRef)
		case "sale":
			company.Inventory.Sale, _ = setops.Remove(company.Inventory.Sale, itemRef)
		default:
			return validationFailed("unknown inventory list", map[string]string{"list": listName})
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return e.(*models.Company), nil
}
