package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"wemetstudio/internal/domain"
)

// CatalogLoader fetches the catalog asynchronously. Every Load bumps a
// generation counter and cancels the previous in-flight fetch; results from an
// older generation are dropped so a slow stale load never overwrites newer state.
type CatalogLoader struct {
	provider domain.CatalogProvider
	catalog  *Catalog
	location *time.Location
	logger   *slog.Logger
	timeout  time.Duration

	mu         sync.Mutex
	generation uint64
	loading    bool
	err        error
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewCatalogLoader returns a loader that fills catalog from provider. Event
// dates are converted to location (UTC when nil) so that calendar days are
// the studio's days. A zero timeout means the fetch is bounded only by
// cancellation.
func NewCatalogLoader(provider domain.CatalogProvider, catalog *Catalog, location *time.Location, logger *slog.Logger, timeout time.Duration) *CatalogLoader {
	if location == nil {
		location = time.UTC
	}
	done := make(chan struct{})
	close(done)
	return &CatalogLoader{
		provider: provider,
		catalog:  catalog,
		location: location,
		logger:   logger,
		timeout:  timeout,
		done:     done,
	}
}

// Load starts a new fetch and returns its generation. It does not block.
// Values of ctx are kept but its cancellation is not: the fetch outlives the
// request that triggered it and is cancelled only by a newer Load or Cancel.
func (l *CatalogLoader) Load(ctx context.Context) uint64 {
	var (
		fetchCtx context.Context
		cancel   context.CancelFunc
	)
	if l.timeout > 0 {
		fetchCtx, cancel = context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
	} else {
		fetchCtx, cancel = context.WithCancel(context.WithoutCancel(ctx))
	}

	l.mu.Lock()
	if l.loading {
		l.cancel()
		close(l.done)
	}
	l.generation++
	gen := l.generation
	l.loading = true
	l.err = nil
	l.cancel = cancel
	done := make(chan struct{})
	l.done = done
	l.mu.Unlock()

	l.logger.Info("catalog load started", "generation", gen)
	go func() {
		defer cancel()
		data, err := l.fetch(fetchCtx)
		l.apply(gen, done, data, err)
	}()
	return gen
}

// LoadAndWait starts a fetch and blocks until it settles or ctx is done.
func (l *CatalogLoader) LoadAndWait(ctx context.Context) error {
	l.Load(ctx)
	return l.Wait(ctx)
}

// Wait blocks until the latest load settles and returns its error.
func (l *CatalogLoader) Wait(ctx context.Context) error {
	for {
		l.mu.Lock()
		gen, done := l.generation, l.done
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done:
		}

		l.mu.Lock()
		if gen == l.generation {
			err := l.err
			l.mu.Unlock()
			return err
		}
		l.mu.Unlock()
	}
}

// Cancel aborts the in-flight fetch, if any. The catalog keeps its last good state.
func (l *CatalogLoader) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.loading {
		return
	}
	l.cancel()
	l.generation++
	l.loading = false
	l.err = nil
	close(l.done)
}

// Status reports the observable loading state.
func (l *CatalogLoader) Status() domain.CatalogStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	st := domain.CatalogStatus{
		Loading:    l.loading,
		Version:    l.catalog.Version(),
		Generation: l.generation,
	}
	st.Loaded = st.Version > 0
	if l.err != nil {
		st.Error = l.err.Error()
	}
	return st
}

// Err returns the error of the last settled load.
func (l *CatalogLoader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *CatalogLoader) apply(gen uint64, done chan struct{}, data CatalogData, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation {
		l.logger.Debug("stale catalog load dropped", "generation", gen, "current", l.generation)
		return
	}
	l.loading = false
	l.err = err
	close(done)
	if err != nil {
		l.logger.Error("catalog load failed", "generation", gen, "err", err)
		return
	}
	version := l.catalog.Replace(data)
	l.logger.Info("catalog loaded",
		"generation", gen,
		"version", version,
		"products", len(data.Products),
		"events", len(data.Events),
	)
}

func (l *CatalogLoader) fetch(ctx context.Context) (CatalogData, error) {
	var data CatalogData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := l.provider.LoadProducts(ctx)
		if err != nil {
			return err
		}
		seen := make(map[string]struct{}, len(products))
		for _, p := range products {
			if p.Price < 0 {
				return domain.NewCatalogLoadError(domain.CollectionProducts,
					fmt.Errorf("%w: product %s has negative price", domain.ErrInvalidInput, p.ID))
			}
			if _, dup := seen[p.ID]; dup {
				return domain.NewCatalogLoadError(domain.CollectionProducts,
					fmt.Errorf("%w: duplicate product id %s", domain.ErrInvalidInput, p.ID))
			}
			seen[p.ID] = struct{}{}
		}
		data.Products = products
		return nil
	})
	g.Go(func() error {
		events, err := l.provider.LoadEvents(ctx)
		if err != nil {
			return err
		}
		seen := make(map[int]struct{}, len(events))
		localized := make([]domain.Event, len(events))
		for i, e := range events {
			if err := e.Validate(); err != nil {
				return domain.NewCatalogLoadError(domain.CollectionEvents, err)
			}
			if _, dup := seen[e.ID]; dup {
				return domain.NewCatalogLoadError(domain.CollectionEvents,
					fmt.Errorf("%w: duplicate event id %d", domain.ErrInvalidInput, e.ID))
			}
			seen[e.ID] = struct{}{}
			e.Date = e.Date.In(l.location)
			localized[i] = e
		}
		data.Events = localized
		return nil
	})
	g.Go(func() error {
		testimonials, err := l.provider.LoadTestimonials(ctx)
		if err != nil {
			return err
		}
		data.Testimonials = testimonials
		return nil
	})
	g.Go(func() error {
		gallery, err := l.provider.LoadGallery(ctx)
		if err != nil {
			return err
		}
		data.Gallery = gallery
		return nil
	})
	if err := g.Wait(); err != nil {
		var loadErr *domain.CatalogLoadError
		if !errors.As(err, &loadErr) {
			err = domain.NewCatalogLoadError("catalog", err)
		}
		return CatalogData{}, err
	}
	return data, nil
}
