package resolver

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/models"
	"github.com/vehicle-catalog-api/internal/repository"
	"github.com/vehicle-catalog-api/internal/sanitize"
)

// Resolver turns free-text labels (any supported language) into canonical
// slugs. Each lookup runs an ordered chain of strategies; the first strategy
// that produces a slug wins.
type Resolver struct {
	refs repository.ReferenceRepository
	log  zerolog.Logger
}

// New creates a Resolver backed by the given reference repository.
func New(refs repository.ReferenceRepository, log zerolog.Logger) *Resolver {
	return &Resolver{
		refs: refs,
		log:  log.With().Str("component", "resolver").Logger(),
	}
}

// strategy attempts one resolution tier. ok=false means "try the next tier".
type strategy func(ctx context.Context, label string) (slug string, ok bool, err error)

// Resolve resolves a raw label against the named reference collection.
// Returns "" when the label cleans to nothing or when the collection does not
// exist yet. A collection match is authoritative; for the electric-vehicle
// collections the bundled translation table is tried next; the manual
// slugifier is the deterministic last resort.
func (r *Resolver) Resolve(ctx context.Context, label any, kind models.ReferenceKind) (string, error) {
	cleaned := sanitize.CleanString(label)
	if cleaned == "" {
		return "", nil
	}

	for _, strat := range r.chain(kind) {
		slug, ok, err := strat(ctx, cleaned)
		if err != nil {
			return "", err
		}
		if ok {
			return slug, nil
		}
	}
	return "", nil
}

// chain assembles the ordered strategy list for one collection kind.
func (r *Resolver) chain(kind models.ReferenceKind) []strategy {
	if models.ElectricKinds[kind] {
		return []strategy{
			r.collectionLookup(kind),
			r.electricTableLookup(kind),
			r.manualSlug(kind),
		}
	}
	return []strategy{
		r.collectionLookup(kind),
		r.absentCollectionGuard(kind),
		r.manualSlug(kind),
	}
}

// collectionLookup matches the label against any localized name of the
// collection. A hit is authoritative and short-circuits the chain.
func (r *Resolver) collectionLookup(kind models.ReferenceKind) strategy {
	return func(ctx context.Context, label string) (string, bool, error) {
		entry, err := r.refs.FindByName(ctx, kind, label)
		if err != nil {
			return "", false, err
		}
		if entry == nil {
			return "", false, nil
		}
		return entry.Slug, true, nil
	}
}

// absentCollectionGuard stops the chain with an empty slug when the
// collection has no rows at all. Resolving against a collection that was
// never populated would just invent slugs nobody curated.
func (r *Resolver) absentCollectionGuard(kind models.ReferenceKind) strategy {
	return func(ctx context.Context, label string) (string, bool, error) {
		count, err := r.refs.CountByKind(ctx, kind)
		if err != nil {
			return "", false, err
		}
		if count == 0 {
			return "", true, nil
		}
		return "", false, nil
	}
}

// electricTableLookup consults the bundled translation table for the
// electric-vehicle collections.
func (r *Resolver) electricTableLookup(kind models.ReferenceKind) strategy {
	return func(ctx context.Context, label string) (string, bool, error) {
		slug, ok := lookupElectricTranslation(kind, label)
		return slug, ok, nil
	}
}

// manualSlug is the deterministic fallback: normalize the label itself so
// something human-traceable is stored instead of dropping the field.
func (r *Resolver) manualSlug(kind models.ReferenceKind) strategy {
	return func(ctx context.Context, label string) (string, bool, error) {
		slug := sanitize.Slugify(label)
		if slug == "" {
			return "", true, nil
		}
		r.log.Warn().
			Str("kind", string(kind)).
			Str("label", label).
			Str("fallback_slug", slug).
			Msg("No reference entry matched, storing normalized label")
		return slug, true, nil
	}
}

// ResolveExtras normalizes an equipment list. There is no canonical extras
// collection, so each element gets the manual normalization only; duplicates
// and empty results are dropped.
func ResolveExtras(labels []any) []string {
	var out []string
	seen := make(map[string]bool)
	for _, label := range labels {
		slug := sanitize.Slugify(label)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, slug)
	}
	return out
}
