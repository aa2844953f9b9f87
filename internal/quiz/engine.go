package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine runs quiz sessions over a Store.
type Engine struct {
	store     *Store
	template  Template
	presenter Presenter
	rng       *rand.Rand
	logger    *zap.Logger
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the session random source.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithLogger sets the logger used for draw and session events.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock overrides the wall clock used for the elapsed time.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine. Without WithRand the engine draws from a
// time-seeded source.
func NewEngine(store *Store, template Template, presenter Presenter, opts ...Option) *Engine {
	e := &Engine{
		store:     store,
		template:  template,
		presenter: presenter,
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRand(0)
	}
	return e
}

// NewRand returns a PCG-backed source. A zero seed means time-based.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Run asks count distinct questions and reports the final tally.
//
// If the store holds no more than count subjects, or no more than
// OptionsPerQuestion subjects, Run asks nothing and returns a *PoolError
// matching ErrNotEnoughRecords. The returned session is never nil.
func (e *Engine) Run(ctx context.Context, count int) (*Session, error) {
	sess := &Session{
		ID:     uuid.NewString(),
		Target: count,
		State:  StateRunning,
	}
	log := e.logger.With(zap.String("session_id", sess.ID))

	if count < 1 {
		sess.State = StateAborted
		return sess, ErrInvalidCount
	}
	if err := e.store.CanServe(count); err != nil {
		sess.State = StateAborted
		log.Info("session aborted", zap.Int("pool", e.store.Len()), zap.Int("count", count))
		return sess, err
	}

	log.Info("session started", zap.Int("pool", e.store.Len()), zap.Int("count", count))
	sess.StartTime = e.now()

	for sess.State == StateRunning {
		if err := ctx.Err(); err != nil {
			return sess, err
		}
		round := e.draw(sess, log)
		if err := e.play(sess, round); err != nil {
			return sess, err
		}
	}

	sess.Elapsed = e.now().Sub(sess.StartTime)
	e.presenter.ShowTally(sess.Tally())
	log.Info("session complete",
		zap.Int("correct", sess.Correct),
		zap.Int("asked", sess.Asked),
		zap.Int("retries", sess.Retries),
		zap.Duration("elapsed", sess.Elapsed))
	return sess, nil
}

// draw picks the next round. A draw is rejected and repeated when the
// distractors already contain the candidate answer, or when the candidate
// was asked earlier in the session. The pool being strictly larger than
// both the option count and the target count guarantees some valid draw
// exists, so the loop ends with probability 1.
func (e *Engine) draw(sess *Session, log *zap.Logger) Round {
	n := e.store.Len()
	for {
		candidate := e.store.At(e.rng.IntN(n))
		options := e.sample(OptionsPerQuestion - 1)

		if containsSubject(options, candidate) {
			sess.Retries++
			log.Debug("draw rejected: answer among distractors", zap.String("key", candidate.Key()))
			continue
		}
		if sess.asked(candidate) {
			sess.Retries++
			log.Debug("draw rejected: already asked", zap.String("key", candidate.Key()))
			continue
		}

		sess.Selections = append(sess.Selections, candidate)
		options = append(options, candidate)
		e.rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		return Round{
			Number:  sess.Asked + 1,
			Answer:  candidate,
			Options: options,
		}
	}
}

// sample draws k distinct subjects uniformly without replacement
// (Floyd's algorithm). The order of the result is not uniform; callers
// shuffle before presenting.
func (e *Engine) sample(k int) []Subject {
	n := e.store.Len()
	picked := make(map[int]bool, k)
	out := make([]Subject, 0, k+1)
	for j := n - k; j < n; j++ {
		t := e.rng.IntN(j + 1)
		if picked[t] {
			t = j
		}
		picked[t] = true
		out = append(out, e.store.At(t))
	}
	return out
}

// play presents one round, reads and scores the answer.
func (e *Engine) play(sess *Session, round Round) error {
	text := e.template.Question(round.Answer.PromptAttribute())
	e.presenter.ShowQuestion(round.Number, sess.Target, text)
	e.presenter.ShowOptions(round.Names())

	line, err := e.presenter.ReadAnswer()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read answer: %w", err)
	}

	verdict := Score(round, ParseChoice(line))
	if verdict.Correct {
		sess.Correct++
	}
	e.presenter.ShowVerdict(verdict)

	sess.Asked++
	if sess.Asked == sess.Target {
		sess.State = StateComplete
	}
	return nil
}

// ParseChoice parses a line of input as a positive option number.
// Anything else yields 0.
func ParseChoice(line string) int {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// Score checks choice against the round. Out-of-range choices are wrong.
func Score(round Round, choice int) Verdict {
	v := Verdict{
		Choice: choice,
		Answer: round.Answer.DisplayName(),
	}
	if choice >= 1 && choice <= len(round.Options) {
		v.Correct = round.Options[choice-1].DisplayName() == round.Answer.DisplayName()
	}
	return v
}

func containsSubject(list []Subject, s Subject) bool {
	for _, item := range list {
		if Same(item, s) {
			return true
		}
	}
	return false
}
