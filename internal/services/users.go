package services

import (
	"context"
	"errors"
	"strings"

	"spread/internal/models"
	"spread/internal/store"
	"spread/internal/utils"
)

const minPasswordLen = 6

type RegisterInput struct {
	FName     string `json:"fname"`
	LName     string `json:"lname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// Register creates a user after field-level validation. The email must
// not already be registered.
func (f *Facade) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	fields := map[string]string{}
	if strings.TrimSpace(in.FName) == "" {
		fields["fname"] = "please fill in all fields"
	}
	if strings.TrimSpace(in.LName) == "" {
		fields["lname"] = "please fill in all fields"
	}
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		fields["email"] = "a valid email is required"
	}
	if len(in.Password) < minPasswordLen {
		fields["password"] = "password should be at least 6 characters"
	}
	if in.Password != in.Password2 {
		fields["password2"] = "passwords do not match"
	}
	if len(fields) > 0 {
		return nil, validationFailed("registration failed", fields)
	}

	_, err := f.store.FindUserByEmail(ctx, in.Email)
	if err == nil {
		return nil, validationFailed("registration failed", map[string]string{
			"email": "email is already registered",
		})
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, translate(err)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		FName:    strings.TrimSpace(in.FName),
		LName:    strings.TrimSpace(in.LName),
		Email:    in.Email,
		Password: hash,
	}
	if err := f.store.Create(ctx, user); err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// Authenticate checks credentials and returns the user. Failures are
// deliberately indistinguishable between unknown email and wrong
// password.
func (f *Facade) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := f.store.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, validationFailed("invalid email or password", nil)
	}
	if err != nil {
		return nil, translate(err)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, validationFailed("invalid email or password", nil)
	}
	return user, nil
}

// ProfileUpdate uses pointers so absent fields stay untouched.
type ProfileUpdate struct {
	FName   *string `json:"fname"`
	LName   *string `json:"lname"`
	Bio     *string `json:"bio"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Zip     *string `json:"zip"`
	Country *string `json:"country"`
	Avatar  *string `json:"avatar"`
}

func (f *Facade) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdate) (*models.User, error) {
	e, err := f.store.Update(ctx, models.KindUser, userID, func(e models.Entity) error {
		u := e.(*models.User)
		apply := func(dst *string, src *string) {
			if src != nil {
				*dst = *src
			}
		}
		apply(&u.FName, in.FName)
		apply(&u.LName, in.LName)
		apply(&u.Bio, in.Bio)
		apply(&u.City, in.City)
		apply(&u.State, in.State)
		apply(&u.Zip, in.Zip)
		apply(&u.Country, in.Country)
		apply(&u.Avatar, in.Avatar)
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return e.(*models.User), nil
}

// ProfileView is a user together with their posts, newest first.
type ProfileView struct {
	User    *models.User     `json:"user"`
	Friends []*models.User   `json:"friends"`
	Posts   []*models.Post   `json:"posts"`
	Reposts []*models.Repost `json:"reposts"`
}

func (f *Facade) Profile(ctx context.Context, userID uint) (*ProfileView, error) {
	user, err := f.user(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}

	view := &ProfileView{User: user}
	for _, id := range user.Friends {
		friend, err := f.user(ctx, id)
		if err != nil {
			return nil, translate(err)
		}
		view.Friends = append(view.Friends, friend)
	}

	posts, err := f.ListPostsByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	view.Posts = posts

	inbound, err := f.store.ListByRef(ctx, models.KindRepost, models.RefTo, userID)
	if err != nil {
		return nil, translate(err)
	}
	for _, e := range inbound {
		rp := e.(*models.Repost)
		if rp.Visible {
			view.Reposts = append(view.Reposts, rp)
		}
	}
	return view, nil
}

// DeleteUser applies the configured cascade policy: friend sets are
// always scrubbed, content only when CascadeUserContent is set.
func (f *Facade) DeleteUser(ctx context.Context, userID uint) error {
	return translate(f.hier.DeleteUser(ctx, userID, f.opts.CascadeUserContent))
}
