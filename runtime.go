package uthread

import (
	"fmt"

	"github.com/joeycumines/go-uthread/internal/queue"
)

// runtime_ holds every piece of process-wide mutable state this package
// needs, reached through the single package variable rt. Keeping it as one
// struct (rather than a set of loose package-level variables) makes the
// "exactly one of these exists per process" contract explicit, and gives
// Shutdown a single value to discard.
type runtime_ struct {
	initialized bool
	policy      Policy
	stackSize   int

	table       [MaxThreads + 1]*tcb
	allocCursor Tid
	liveCount   int

	current Tid
	runq    runqueue
	zombies *queue.Ring[*tcb]

	reaper *tcb

	logger  logger
	metrics *metricsState
}

// rt is the package's single runtime instance. Every exported function
// reads/writes through it; see the package doc comment for the
// single-goroutine contract this relies on.
var rt = &runtime_{}

// Option configures Init. See WithStackSize, WithLogger, and WithMetrics.
type Option interface {
	apply(*initConfig)
}

type initConfig struct {
	stackSize      int
	stackSizeSet   bool
	logger         logger
	metricsEnabled bool
}

type optionFunc func(*initConfig)

func (f optionFunc) apply(c *initConfig) { f(c) }

// WithStackSize overrides the stack size passed positionally to Init. It
// exists for callers who prefer to configure everything through Options.
func WithStackSize(size int) Option {
	return optionFunc(func(c *initConfig) {
		c.stackSize = size
		c.stackSizeSet = true
	})
}

// WithLogger installs a structured logger for scheduler events. The default
// is a no-op logger; see logging.go.
func WithLogger(l logger) Option {
	return optionFunc(func(c *initConfig) {
		if l != nil {
			c.logger = l
		}
	})
}

// WithMetrics enables the scheduler's built-in counters, retrievable via
// GetMetrics. Disabled by default (zero overhead).
func WithMetrics(enabled bool) Option {
	return optionFunc(func(c *initConfig) {
		c.metricsEnabled = enabled
	})
}

func resolveInitConfig(stackSize int, opts []Option) *initConfig {
	c := &initConfig{stackSize: stackSize, logger: noopLogger{}}
	for _, o := range opts {
		if o == nil {
			continue // skip nil options, same as eventloop.resolveLoopOptions
		}
		o.apply(c)
	}
	return c
}

// Init configures the scheduler's policy and default stack size. A second
// call, with any arguments, is a silent no-op: Init is documented as
// idempotent rather than erroring on reconfiguration attempts. Any of
// Create, Yield, Exit, Join, or Detach trigger an implicit
// Init(FIFO, DefaultStackSize) if the package has not been initialized yet.
func Init(policy Policy, stackSize int, opts ...Option) error {
	checkOwnerGoroutine()
	if rt.initialized {
		return nil
	}
	if !policy.implemented() {
		return fmt.Errorf("%w: %s", ErrUnimplementedPolicy, policy)
	}
	if !platformSupported {
		return ErrUnsupportedPlatform
	}

	cfg := resolveInitConfig(stackSize, opts)
	if cfg.stackSizeSet {
		stackSize = cfg.stackSize
	}
	if stackSize <= 0 {
		stackSize = DefaultStackSize
	}

	rt.policy = policy
	rt.stackSize = stackSize
	rt.logger = cfg.logger
	rt.metrics = newMetricsState(cfg.metricsEnabled)

	switch policy {
	case FIFO:
		rt.runq = newRingRunqueue(MaxThreads)
	case Priority:
		rt.runq = newPriorityRunqueue(MaxThreads)
	}
	rt.zombies = queue.NewRing[*tcb](MaxThreads)

	main := &tcb{id: 0, state: Running, joinLink: joinNone{}}
	rt.table[0] = main
	rt.current = 0
	rt.liveCount = 1

	rt.initialized = true

	reaper := rt.buildThread(reaperLoopEntry, nil, MinPriority)
	reaper.id = MaxThreads
	rt.table[MaxThreads] = reaper
	rt.reaper = reaper
	rt.wake(reaper)

	rt.logger.Info("scheduler initialized", "policy", policy.String(), "stack_size", stackSize)
	return nil
}

// ensureInit performs the implicit default initialization documented on
// Init, so callers who never call Init explicitly still get a working
// scheduler on first use.
func ensureInit() {
	if !rt.initialized {
		if err := Init(FIFO, DefaultStackSize); err != nil {
			panic(fmt.Sprintf("uthread: implicit Init failed: %v", err))
		}
	}
}

// Shutdown tears down the scheduler: every remaining TCB (including
// zombies and the reaper) is destroyed, and a subsequent call into the
// package re-initializes with defaults on next use. It must be called from
// the main thread (Tid 0) — it is not reentrant, and it is not valid to
// call from within a uthread, since doing so would destroy the stack the
// caller is currently running on.
func Shutdown() error {
	checkOwnerGoroutine()
	if !rt.initialized {
		return nil
	}
	if rt.current != 0 {
		return ErrNotMainThread
	}

	for id := Tid(1); id <= MaxThreads; id++ {
		if t := rt.table[id]; t != nil {
			rt.table[id] = nil
		}
	}
	rt.table[0] = nil
	rt.runq = nil
	rt.zombies = nil
	rt.reaper = nil
	rt.allocCursor = 0
	rt.liveCount = 0
	rt.current = 0
	rt.initialized = false
	resetOwnerGoroutine()
	return nil
}
