package storage

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/openresume/resume-builder/internal/schemas"
	"github.com/openresume/resume-builder/internal/types"
)

// Observer is an optional diagnostics hook invoked whenever a fail-soft
// operation swallows an error. op is "load", "save", "load-saved" or
// "save-saved".
type Observer func(op string, err error)

// Adapter mirrors the resume editing state to a Store with fail-soft
// semantics: loads fall back to a default record, saves are fire-and-forget.
type Adapter struct {
	store   Store
	log     logrus.FieldLogger
	observe Observer
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger routes diagnostics to the given logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(a *Adapter) { a.log = log }
}

// WithObserver registers a hook for swallowed storage errors.
func WithObserver(fn Observer) Option {
	return func(a *Adapter) { a.observe = fn }
}

// NewAdapter wraps a Store. A nil store is allowed and behaves like a
// permanently empty backend (headless context).
func NewAdapter(store Store, opts ...Option) *Adapter {
	a := &Adapter{
		store: store,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) fail(op string, err error) {
	a.log.WithError(err).WithField("op", op).Warn("storage operation failed")
	if a.observe != nil {
		a.observe(op, err)
	}
}

// LoadResume reads the active resume record. Missing data, unparsable data,
// or an absent backend all yield a freshly constructed default resume; the
// call never fails.
func (a *Adapter) LoadResume(ctx context.Context) *types.ResumeData {
	if a.store == nil {
		return types.NewDefaultResume()
	}

	raw, err := a.store.Get(ctx, ResumeKey)
	if err != nil {
		if err != ErrNotFound {
			a.fail("load", err)
		}
		return types.NewDefaultResume()
	}

	var resume types.ResumeData
	if err := json.Unmarshal([]byte(raw), &resume); err != nil {
		a.fail("load", err)
		return types.NewDefaultResume()
	}

	schemas.ApplyDefaults(&resume)
	return &resume
}

// SaveResume serializes the full record into the active slot, overwriting any
// prior value. Serialization or storage failures are swallowed: no retry, no
// user-visible error.
func (a *Adapter) SaveResume(ctx context.Context, data *types.ResumeData) {
	if a.store == nil || data == nil {
		return
	}

	raw, err := json.Marshal(data)
	if err != nil {
		a.fail("save", err)
		return
	}
	if err := a.store.Set(ctx, ResumeKey, string(raw)); err != nil {
		a.fail("save", err)
	}
}

// LoadSavedResumes reads the labeled snapshots list; failures yield an empty
// list.
func (a *Adapter) LoadSavedResumes(ctx context.Context) []types.SavedResume {
	if a.store == nil {
		return []types.SavedResume{}
	}

	raw, err := a.store.Get(ctx, SavedResumesKey)
	if err != nil {
		if err != ErrNotFound {
			a.fail("load-saved", err)
		}
		return []types.SavedResume{}
	}

	var saved []types.SavedResume
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		a.fail("load-saved", err)
		return []types.SavedResume{}
	}
	if saved == nil {
		saved = []types.SavedResume{}
	}
	return saved
}

// SaveSavedResumes overwrites the snapshots slot with the given list, with
// the same fire-and-forget semantics as SaveResume.
func (a *Adapter) SaveSavedResumes(ctx context.Context, saved []types.SavedResume) {
	if a.store == nil {
		return
	}

	raw, err := json.Marshal(saved)
	if err != nil {
		a.fail("save-saved", err)
		return
	}
	if err := a.store.Set(ctx, SavedResumesKey, string(raw)); err != nil {
		a.fail("save-saved", err)
	}
}
