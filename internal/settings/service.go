// AngelaMos | 2026
// service.go

package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/portfolio-cms/internal/cache"
	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

var (
	ErrProjectNotFound     = errors.New("featured project not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")
)

// Releaser frees media assets that a settings change no longer refers to.
type Releaser interface {
	Release(ctx context.Context, publicIDs ...string)
}

// Finder loads a referenced record by store id. It returns an error
// wrapping core.ErrNotFound when there is no such record.
type Finder interface {
	Find(ctx context.Context, id string) (any, error)
}

type FinderFunc func(ctx context.Context, id string) (any, error)

func (f FinderFunc) Find(ctx context.Context, id string) (any, error) {
	return f(ctx, id)
}

type Options struct {
	Cache        cache.Cache
	CacheTTL     time.Duration
	Releaser     Releaser
	Projects     Finder
	Testimonials Finder
	Logger       *slog.Logger
}

type Service struct {
	repo         Repository
	cache        cache.Cache
	cacheTTL     time.Duration
	releaser     Releaser
	projects     Finder
	testimonials Finder
	validator    *validator.Validate
	shapes       *shapeChecker
	logger       *slog.Logger
}

func NewService(repo Repository, opts Options) (*Service, error) {
	shapes, err := newShapeChecker()
	if err != nil {
		return nil, err
	}

	s := &Service{
		repo:         repo,
		cache:        opts.Cache,
		cacheTTL:     opts.CacheTTL,
		releaser:     opts.Releaser,
		projects:     opts.Projects,
		testimonials: opts.Testimonials,
		validator:    core.NewValidator(),
		shapes:       shapes,
		logger:       opts.Logger,
	}
	if s.cache == nil {
		s.cache = cache.Noop{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s, nil
}

// View is a settings document as served to clients: the stored fields,
// timestamps, and any referenced records expanded in place.
type View map[string]any

// Create stores the first document of kind. It fails with ErrExists when
// one is already present.
func (s *Service) Create(ctx context.Context, kind Kind, body []byte) (View, error) {
	def, err := lookup(kind)
	if err != nil {
		return nil, err
	}

	patch, err := s.parse(kind, body)
	if err != nil {
		return nil, err
	}

	doc, err := s.prepare(ctx, def, Merge(def.initial(), patch, def.policies))
	if err != nil {
		return nil, err
	}

	rec, err := s.repo.Insert(ctx, kind, doc)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, kind)

	return s.view(ctx, rec), nil
}

func (s *Service) Get(ctx context.Context, kind Kind) (View, error) {
	rec, err := s.load(ctx, kind)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, rec), nil
}

// Update merges body into the stored document under the kind's merge
// policies. Media that the new document no longer refers to is released
// after the change is committed.
func (s *Service) Update(ctx context.Context, kind Kind, body []byte) (View, error) {
	def, err := lookup(kind)
	if err != nil {
		return nil, err
	}

	patch, err := s.parse(kind, body)
	if err != nil {
		return nil, err
	}

	var prevDoc, nextDoc document
	_, rec, err := s.repo.Mutate(ctx, kind, func(cur *Record) (map[string]any, error) {
		merged := Merge(cur.Document.V, patch, def.policies)

		doc, err := def.decode(s.validator, merged)
		if err != nil {
			return nil, err
		}

		prevDoc, err = def.decode(nil, cur.Document.V)
		if err != nil {
			return nil, err
		}
		if err := s.checkRefs(ctx, doc, prevDoc); err != nil {
			return nil, err
		}
		nextDoc = doc

		return toMap(doc)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, kind)

	if def.released != nil {
		s.release(ctx, def.released(prevDoc, nextDoc))
	}

	return s.view(ctx, rec), nil
}

// Delete removes the document of kind and releases the media it held.
func (s *Service) Delete(ctx context.Context, kind Kind) error {
	def, err := lookup(kind)
	if err != nil {
		return err
	}

	rec, err := s.repo.Delete(ctx, kind)
	if err != nil {
		return err
	}
	s.invalidate(ctx, kind)

	if def.released != nil {
		prev, err := def.decode(nil, rec.Document.V)
		if err != nil {
			s.logger.WarnContext(ctx, "decode deleted settings",
				"kind", kind,
				"error", err,
			)
			return nil
		}
		s.release(ctx, def.released(prev, nil))
	}

	return nil
}

// FormConfig is the public view of the contact form: the enabled fields
// and, in display order, the ones that must be filled in.
type FormConfig struct {
	Fields          map[string]FormField `json:"fields"`
	MandatoryFields []string             `json:"mandatoryFields"`
}

func (s *Service) FormConfig(ctx context.Context) (*FormConfig, error) {
	rec, err := s.load(ctx, KindContact)
	if err != nil {
		return nil, err
	}

	doc, err := definitions[KindContact].decode(nil, rec.Document.V)
	if err != nil {
		return nil, err
	}
	contact := doc.(*Contact)

	fields := contact.ContactUsFormFields.byKey()
	out := &FormConfig{
		Fields:          make(map[string]FormField, len(fields)),
		MandatoryFields: []string{},
	}
	for _, key := range formFieldOrder {
		f := fields[key]
		if !f.Enabled {
			continue
		}
		out.Fields[key] = f
		if f.Mandatory {
			out.MandatoryFields = append(out.MandatoryFields, key)
		}
	}

	return out, nil
}

// Existing reports which kinds currently have a document.
func (s *Service) Existing(ctx context.Context) ([]Kind, error) {
	return s.repo.Existing(ctx)
}

func (s *Service) parse(kind Kind, body []byte) (map[string]any, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil, core.InvalidInputError("Invalid request body")
	}

	if err := s.shapes.check(kind, body); err != nil {
		return nil, err
	}

	var patch map[string]any
	if err := json.Unmarshal(body, &patch); err != nil {
		return nil, core.InvalidInputError("Invalid request body")
	}
	return patch, nil
}

// prepare validates a merged document and returns its stored form.
func (s *Service) prepare(
	ctx context.Context,
	def definition,
	merged map[string]any,
) (map[string]any, error) {
	doc, err := def.decode(s.validator, merged)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, doc, nil); err != nil {
		return nil, err
	}
	return toMap(doc)
}

// checkRefs verifies the references next adds over prev. References
// already stored are left alone even when their target is gone.
func (s *Service) checkRefs(ctx context.Context, next, prev document) error {
	nextProjects, nextTestimonials := refsOf(next)
	prevProjects, prevTestimonials := refsOf(prev)

	for _, id := range added(nextProjects, prevProjects) {
		if err := s.exists(ctx, s.projects, id, ErrProjectNotFound); err != nil {
			return err
		}
	}
	for _, id := range added(nextTestimonials, prevTestimonials) {
		if err := s.exists(ctx, s.testimonials, id, ErrTestimonialNotFound); err != nil {
			return err
		}
	}
	return nil
}

func refsOf(doc document) (projects, testimonials []string) {
	switch d := doc.(type) {
	case *Home:
		projects = d.FeaturedProjects
		if d.TopTestimonial != nil {
			testimonials = []string{*d.TopTestimonial}
		}
	case *AboutUs:
		if d.FeaturedTestimonial != nil {
			testimonials = []string{*d.FeaturedTestimonial}
		}
	}
	return projects, testimonials
}

func added(next, prev []string) []string {
	seen := make(map[string]struct{}, len(prev))
	for _, id := range prev {
		seen[id] = struct{}{}
	}

	var out []string
	for _, id := range next {
		if _, ok := seen[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

func (s *Service) exists(ctx context.Context, f Finder, id string, missing error) error {
	if f == nil {
		return nil
	}

	_, err := f.Find(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("%s: %w", id, missing)
	}
	return err
}

func (s *Service) release(ctx context.Context, ids []string) {
	if s.releaser == nil || len(ids) == 0 {
		return
	}
	s.releaser.Release(ctx, ids...)
}

func cacheKey(kind Kind) string {
	return "settings:" + string(kind)
}

// load reads the stored record through the cache. Cache failures are
// logged and fall through to the store.
func (s *Service) load(ctx context.Context, kind Kind) (*Record, error) {
	key := cacheKey(kind)

	raw, err := s.cache.Get(ctx, key)
	if err == nil {
		var rec Record
		if jsonErr := json.Unmarshal(raw, &rec); jsonErr == nil {
			return &rec, nil
		}
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.WarnContext(ctx, "settings cache read failed",
			"kind", kind,
			"error", err,
		)
	}

	rec, err := s.repo.Get(ctx, kind)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(rec); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
			s.logger.WarnContext(ctx, "settings cache write failed",
				"kind", kind,
				"error", err,
			)
		}
	}

	return rec, nil
}

func (s *Service) invalidate(ctx context.Context, kind Kind) {
	if err := s.cache.Delete(ctx, cacheKey(kind)); err != nil {
		s.logger.WarnContext(ctx, "settings cache invalidation failed",
			"kind", kind,
			"error", err,
		)
	}
}

func (s *Service) view(ctx context.Context, rec *Record) View {
	v := make(View, len(rec.Document.V)+2)
	for k, val := range rec.Document.V {
		v[k] = val
	}
	v["createdAt"] = rec.CreatedAt
	v["updatedAt"] = rec.UpdatedAt

	switch rec.Kind {
	case KindHome:
		v["featuredProjects"] = s.expandMany(ctx, s.projects, v["featuredProjects"])
		v["topTestimonial"] = s.expandOne(ctx, s.testimonials, v["topTestimonial"])
	case KindAboutUs:
		v["featuredTestimonial"] = s.expandOne(ctx, s.testimonials, v["featuredTestimonial"])
	}

	return v
}

// expandMany replaces each id with its record. Ids that no longer resolve
// are dropped.
func (s *Service) expandMany(ctx context.Context, f Finder, ids any) []any {
	list, _ := ids.([]any)
	out := make([]any, 0, len(list))
	for _, id := range list {
		if item := s.expandOne(ctx, f, id); item != nil {
			out = append(out, item)
		}
	}
	return out
}

func (s *Service) expandOne(ctx context.Context, f Finder, id any) any {
	str, ok := id.(string)
	if !ok || str == "" {
		return nil
	}
	if f == nil {
		return str
	}

	item, err := f.Find(ctx, str)
	if err != nil {
		if !errors.Is(err, core.ErrNotFound) {
			s.logger.WarnContext(ctx, "expand settings reference",
				"id", str,
				"error", err,
			)
		}
		return nil
	}
	return item
}
