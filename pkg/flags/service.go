// Package flags evaluates feature flags against a remote configuration and reports impressions.
// Evaluation never fails from the caller's point of view: any provider problem falls back to
// the registered default of the flag.
package flags

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/samber/lo"

	"github.com/umputun/hnscope/pkg/domain"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider
//go:generate moq -out mocks/sink.go -pkg mocks -skip-ensure -fmt goimports . ImpressionSink

// Provider evaluates flags against synchronized configuration
type Provider interface {
	Register(defs []domain.FlagDefinition)
	SetTargeting(tc domain.TargetingContext)
	Setup(ctx context.Context) error
	Evaluate(ctx context.Context, name string) (value string, targeted bool, err error)
}

// ImpressionSink receives flag evaluations
type ImpressionSink interface {
	Report(imp domain.Impression)
}

// Evaluator is the read side used by views
type Evaluator interface {
	IsEnabled(name string) bool
	Value(name string) string
}

// Params configures Service
type Params struct {
	EvalTimeout time.Duration // max time of a single evaluation
	BufferSize  int           // impressions buffered before dropping
}

// Service registers flags once and evaluates them with fallback to defaults
type Service struct {
	provider Provider
	sinks    []ImpressionSink
	params   Params

	once        sync.Once
	initialized atomic.Bool
	defs        map[string]domain.FlagDefinition
	order       []string
	impressions chan domain.Impression
	dropped     atomic.Int64
	setupDone   chan struct{}
	done        chan struct{}
}

// NewService makes a flag service. Nothing is registered until Initialize.
func NewService(provider Provider, params Params, sinks ...ImpressionSink) *Service {
	if params.EvalTimeout <= 0 {
		params.EvalTimeout = 200 * time.Millisecond
	}
	if params.BufferSize <= 0 {
		params.BufferSize = 100
	}
	return &Service{
		provider:    provider,
		sinks:       sinks,
		params:      params,
		defs:        map[string]domain.FlagDefinition{},
		impressions: make(chan domain.Impression, params.BufferSize),
		setupDone:   make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Initialize registers definitions and targeting, then starts the impression reporter and the provider
// setup in background. It doesn't wait for the provider, flags evaluate to defaults until it syncs.
// Only the first call has effect, background work stops when ctx is done.
func (s *Service) Initialize(ctx context.Context, tc domain.TargetingContext, defs []domain.FlagDefinition) error {
	first := false
	s.once.Do(func() {
		first = true
		for _, d := range defs {
			if _, dup := s.defs[d.Name]; !dup {
				s.order = append(s.order, d.Name)
			}
			s.defs[d.Name] = d
		}
		s.provider.Register(defs)
		s.provider.SetTargeting(tc)
		s.initialized.Store(true)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.report(ctx)
		}()
		go func() {
			defer wg.Done()
			s.setup(ctx)
		}()
		go func() {
			wg.Wait()
			close(s.done)
		}()
	})
	if !first {
		log.Printf("[WARN] flag service already initialized, ignored")
		return nil
	}
	log.Printf("[INFO] flag service initialized with %d flags, beta: %v", len(defs), tc.IsBetaUser)
	return nil
}

// Done is closed when the impression reporter and the provider setup are stopped
func (s *Service) Done() <-chan struct{} {
	return s.done
}

// IsEnabled returns the boolean value of the flag, unknown flags are disabled
func (s *Service) IsEnabled(name string) bool {
	def, ok := s.definition(name)
	if !ok || def.Kind != domain.FlagBoolean {
		return false
	}
	v := s.evaluate(def)
	res, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return res
}

// Value returns the string value of the flag, always one of the allowed values or the default
func (s *Service) Value(name string) string {
	def, ok := s.definition(name)
	if !ok {
		return ""
	}
	return s.evaluate(def)
}

// Definitions returns registered flags in registration order
func (s *Service) Definitions() []domain.FlagDefinition {
	if !s.initialized.Load() {
		return nil
	}
	return lo.Map(s.order, func(name string, _ int) domain.FlagDefinition { return s.defs[name] })
}

// Values returns current values of all flags, empty before Initialize
func (s *Service) Values() map[string]string {
	defs := s.Definitions()
	res := make(map[string]string, len(defs))
	for _, d := range defs {
		res[d.Name] = s.evaluate(d)
	}
	return res
}

// Dropped returns the number of impressions dropped because the buffer was full
func (s *Service) Dropped() int64 {
	return s.dropped.Load()
}

func (s *Service) definition(name string) (domain.FlagDefinition, bool) {
	if !s.initialized.Load() {
		return domain.FlagDefinition{}, false
	}
	def, ok := s.defs[name]
	return def, ok
}

// evaluate asks the provider within the eval timeout and falls back to the default
func (s *Service) evaluate(def domain.FlagDefinition) string {
	type result struct {
		value    string
		targeted bool
		err      error
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.params.EvalTimeout)
	defer cancel()

	ch := make(chan result, 1)
	go func() {
		v, t, err := s.provider.Evaluate(ctx, def.Name)
		ch <- result{value: v, targeted: t, err: err}
	}()

	var res result
	select {
	case res = <-ch:
	case <-ctx.Done():
		res = result{err: ctx.Err()}
	}

	value, targeted := res.value, res.targeted
	switch {
	case res.err != nil:
		if !errors.Is(res.err, ErrNotSynced) {
			log.Printf("[DEBUG] flag %s evaluation failed: %v", def.Name, res.err)
		}
		value, targeted = def.Default, false
	case !def.Allows(res.value):
		log.Printf("[DEBUG] flag %s got illegal value %q, default used", def.Name, res.value)
		value, targeted = def.Default, false
	}

	s.impression(domain.Impression{Name: def.Name, Value: value, Targeted: targeted, At: time.Now()})
	return value
}

// impression enqueues without blocking, drops when the buffer is full
func (s *Service) impression(imp domain.Impression) {
	select {
	case s.impressions <- imp:
	default:
		s.dropped.Add(1)
	}
}

func (s *Service) setup(ctx context.Context) {
	defer close(s.setupDone)
	if err := s.provider.Setup(ctx); err != nil {
		log.Printf("[WARN] flag provider setup, defaults in use: %v", err)
		return
	}
	log.Printf("[DEBUG] flag provider setup completed")
}

func (s *Service) report(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case imp := <-s.impressions:
			for _, sink := range s.sinks {
				sink.Report(imp)
			}
		}
	}
}

// LogSink reports impressions to the debug log
type LogSink struct {
	Logger log.L // lgr.Default() if nil
}

// Report logs a single impression
func (l LogSink) Report(imp domain.Impression) {
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}
	if imp.Targeted {
		logger.Logf("[DEBUG] flag %s value is %s", imp.Name, imp.Value)
		return
	}
	logger.Logf("[DEBUG] no experiment configured for flag %s, default value %s was used", imp.Name, imp.Value)
}
