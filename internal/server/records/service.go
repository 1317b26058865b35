// Package records implements the record store: one JSON document
// collection per HR entity (admin, users, attendance, leave) with ids
// allocated by the store, bcrypt-hashed passwords and equality queries.
package records

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/hrconsole/internal/common"
	"github.com/dmitrijs2005/hrconsole/internal/logging"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
	log  logging.Logger
	cost int
}

func NewService(repo Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: log.With("module", "records"), cost: bcrypt.DefaultCost}
}

func (s *Service) collection(entity string) error {
	if !knownCollection(entity) {
		return fmt.Errorf("%w: collection %q", common.ErrorNotFound, entity)
	}
	return nil
}

// List returns the documents of entity whose fields equal every query
// value. A password value is checked against the stored hash.
func (s *Service) List(ctx context.Context, entity string, query url.Values) ([]Document, error) {
	if err := s.collection(entity); err != nil {
		return nil, err
	}

	recs, err := s.repo.List(ctx, entity)
	if err != nil {
		return nil, err
	}

	out := make([]Document, 0, len(recs))
	for _, rec := range recs {
		if matches(rec, query) {
			out = append(out, render(rec.ID, rec.Doc))
		}
	}
	return out, nil
}

func matches(rec Record, query url.Values) bool {
	for key, values := range query {
		want := ""
		if len(values) > 0 {
			want = values[0]
		}

		switch key {
		case fieldID:
			if stringify(rec.ID) != want {
				return false
			}
		case fieldPassword:
			hash := rec.Doc.String(fieldPassword)
			if hash == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(want)) != nil {
				return false
			}
		default:
			if rec.Doc.String(key) != want {
				return false
			}
		}
	}
	return true
}

func (s *Service) Get(ctx context.Context, entity, id string) (Document, error) {
	if err := s.collection(entity); err != nil {
		return nil, err
	}
	n, err := ParseID(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	doc, err := s.repo.Get(ctx, entity, n)
	if err != nil {
		return nil, err
	}
	return render(n, doc), nil
}

// Create stores doc. A doc without an id gets the next free one; an id that
// is already taken is a conflict.
func (s *Service) Create(ctx context.Context, entity string, doc Document) (Document, error) {
	if err := s.collection(entity); err != nil {
		return nil, err
	}

	doc = doc.Clone()
	rawID, hasID := doc[fieldID]
	delete(doc, fieldID)
	if rawID == nil || rawID == "" {
		hasID = false
	}

	if err := s.hashPassword(doc); err != nil {
		return nil, err
	}
	if err := s.checkUsername(ctx, entity, 0, doc); err != nil {
		return nil, err
	}

	var id int64
	if hasID {
		n, err := ParseID(rawID)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Insert(ctx, entity, n, doc); err != nil {
			return nil, err
		}
		id = n
	} else {
		n, err := s.repo.InsertNext(ctx, entity, doc)
		if err != nil {
			return nil, err
		}
		id = n
	}

	s.log.Info(ctx, "record created", "entity", entity, "id", id)
	return render(id, doc), nil
}

// Update merges patch over the stored document. A blank or masked password
// keeps the stored hash.
func (s *Service) Update(ctx context.Context, entity, id string, patch Document) (Document, error) {
	if err := s.collection(entity); err != nil {
		return nil, err
	}
	n, err := ParseID(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	current, err := s.repo.Get(ctx, entity, n)
	if err != nil {
		return nil, err
	}

	patch = patch.Clone()
	delete(patch, fieldID)
	if err := s.hashPassword(patch); err != nil {
		return nil, err
	}
	if _, ok := patch[fieldUsername]; ok && patch.String(fieldUsername) != current.String(fieldUsername) {
		if err := s.checkUsername(ctx, entity, n, patch); err != nil {
			return nil, err
		}
	}

	merged := current.Clone()
	for k, v := range patch {
		merged[k] = v
	}
	if err := s.repo.Update(ctx, entity, n, merged); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "record updated", "entity", entity, "id", n)
	return render(n, merged), nil
}

func (s *Service) Delete(ctx context.Context, entity, id string) error {
	if err := s.collection(entity); err != nil {
		return err
	}
	n, err := ParseID(id)
	if err != nil {
		return common.ErrorNotFound
	}

	if err := s.repo.Delete(ctx, entity, n); err != nil {
		return err
	}
	s.log.Info(ctx, "record deleted", "entity", entity, "id", n)
	return nil
}

// SeedAdmin creates the first admin account when the admin collection is
// empty. It reports whether an account was created.
func (s *Service) SeedAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" {
		return false, nil
	}

	recs, err := s.repo.List(ctx, Admins)
	if err != nil {
		return false, err
	}
	if len(recs) > 0 {
		return false, nil
	}

	_, err = s.Create(ctx, Admins, Document{
		fieldUsername: username,
		fieldPassword: password,
		"email":       username + "@localhost",
		"fullname":    "Administrator",
		"access":      "admin",
	})
	if err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	return true, nil
}

// hashPassword replaces a plaintext password with its bcrypt hash. A blank
// or masked value is removed so it never overwrites a stored hash.
func (s *Service) hashPassword(doc Document) error {
	v, ok := doc[fieldPassword]
	if !ok {
		return nil
	}
	pw, isString := v.(string)
	if !isString || pw == "" || pw == PasswordMask {
		delete(doc, fieldPassword)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pw), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fmt.Errorf("%w: %v", common.ErrorValidation, err)
		}
		return fmt.Errorf("hash password: %w", err)
	}
	doc[fieldPassword] = string(hash)
	return nil
}

// checkUsername rejects a username already used by another record of the
// collection.
func (s *Service) checkUsername(ctx context.Context, entity string, self int64, doc Document) error {
	if !hasUsername(entity) {
		return nil
	}
	name := doc.String(fieldUsername)
	if name == "" {
		return nil
	}

	recs, err := s.repo.List(ctx, entity)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if rec.ID != self && rec.Doc.String(fieldUsername) == name {
			return fmt.Errorf("%w: username %q is taken", common.ErrorConflict, name)
		}
	}
	return nil
}
