// SPDX-License-Identifier: MIT

package hierarchy

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/katalvlaran/ahp/consistency"
	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/priority"
)

// Input is the immutable bundle of one aggregation run.
type Input struct {
	Items     Items
	Level     Level
	Judgments map[Key]pairwise.Judgments
}

// RequiredKeys lists every matrix the level needs, in evaluation order:
// types, criteria (per type at level 3), then alternatives per criterion.
// Alternatives matrices are only required when alternatives are declared.
// An invalid level yields nil.
func RequiredKeys(items Items, level Level) []Key {
	var keys []Key
	switch level {
	case Level1:
		keys = append(keys, AlternativesKey(""))
	case Level2:
		keys = append(keys, CriteriaKey(""))
	case Level3:
		keys = append(keys, TypesKey())
		for _, t := range items.types {
			keys = append(keys, CriteriaKey(t.Name))
		}
	default:
		return nil
	}
	if level != Level1 && len(items.alternatives) > 0 {
		for _, c := range items.criteria {
			keys = append(keys, AlternativesKey(c))
		}
	}

	return keys
}

// ItemsFor returns the ordered items compared by the matrix k at level.
//
// Errors: ErrUnknownType, ErrUnknownCriterion, ErrInvalidLevel when k's
// kind is not used at level.
func ItemsFor(items Items, level Level, k Key) ([]string, error) {
	switch {
	case k.Kind == KindTypes && level == Level3:
		return items.TypeNames(), nil
	case k.Kind == KindCriteria && level == Level2 && k.Name == "":
		return items.Criteria(), nil
	case k.Kind == KindCriteria && level == Level3 && k.Name != "":
		i := items.typeIndex(k.Name)
		if i < 0 {
			return nil, ErrUnknownType
		}

		return slices.Clone(items.types[i].Criteria), nil
	case k.Kind == KindAlternatives && level == Level1 && k.Name == "":
		return items.Alternatives(), nil
	case k.Kind == KindAlternatives && level != Level1 && k.Name != "":
		if !slices.Contains(items.criteria, k.Name) {
			return nil, ErrUnknownCriterion
		}

		return items.Alternatives(), nil
	default:
		return nil, fmt.Errorf("%w: %s not used at %s", ErrInvalidLevel, k, level)
	}
}

// run carries the state of one Aggregate call.
type run struct {
	in    Input
	items Items
	opts  Options
	log   *slog.Logger
	res   *Result
}

// Aggregate evaluates every matrix the input's level requires and combines
// their local priorities into global weights.
//
// Per matrix: pairwise.Build → priority.Derive → consistency.Score. Failures
// are recorded as *MatrixError and withhold only the aggregates that depend
// on the failed matrix. Aggregate never panics on user input.
//
// Complexity: O(Σ n_k³) for the eigenvector method, O(Σ n_k²) otherwise.
func Aggregate(in Input, opts ...Option) *Result {
	o := gatherOptions(opts...)
	items := in.Items.Clone()
	res := &Result{
		RunID:        uuid.New(),
		Level:        in.Level,
		Method:       o.Method,
		Types:        items.TypeNames(),
		Criteria:     items.Criteria(),
		Alternatives: items.Alternatives(),
		Matrices:     make(map[Key]MatrixResult),
	}
	r := &run{
		in:    in,
		items: items,
		opts:  o,
		res:   res,
		log: o.Logger.With(
			slog.String("run_id", res.RunID.String()),
			slog.Int("level", int(in.Level)),
			slog.String("method", o.Method.String()),
		),
	}

	r.execute()

	r.log.Info("aggregation finished",
		slog.Int("matrices", len(res.Matrices)),
		slog.Int("errors", len(res.Errors)),
		slog.Bool("consistent", res.Consistent()),
	)
	if o.Observer != nil {
		o.Observer.ObserveRun(res)
	}

	return res
}

func (r *run) execute() {
	if !r.in.Level.Valid() {
		r.fail(fmt.Errorf("%w: got %d", ErrInvalidLevel, int(r.in.Level)))
		return
	}
	if !r.checkStructure() {
		return
	}

	for _, k := range RequiredKeys(r.items, r.in.Level) {
		r.evaluate(k)
	}
	r.checkStrayKeys()

	if r.opts.Strict && !r.checkStrict() {
		return
	}

	switch r.in.Level {
	case Level1:
		if w, ok := r.weights(AlternativesKey("")); ok {
			r.res.AlternativesPriority = w
		}
	case Level2:
		if cw, ok := r.weights(CriteriaKey("")); ok {
			r.res.CriteriaPriority = cw
			r.aggregateAlternatives(cw)
		}
	case Level3:
		r.aggregateLevel3()
	}
}

// checkStructure rejects item sets the level cannot work with.
func (r *run) checkStructure() bool {
	ok := true
	switch r.in.Level {
	case Level1:
		if len(r.items.alternatives) == 0 {
			r.fail(ErrNoAlternatives)
			ok = false
		}
	case Level3:
		if len(r.items.types) == 0 {
			r.fail(ErrNoTypes)
			ok = false
		}
		fallthrough
	case Level2:
		if len(r.items.criteria) == 0 {
			r.fail(ErrNoCriteria)
			ok = false
		}
	}

	return ok
}

// evaluate builds, weighs and scores one required matrix.
func (r *run) evaluate(k Key) {
	r.res.Evaluated = append(r.res.Evaluated, k)

	items, err := ItemsFor(r.items, r.in.Level, k)
	if err != nil {
		r.fail(matrixError(k, err))
		return
	}
	j, supplied := r.in.Judgments[k]
	if !supplied && len(items) > 1 {
		r.fail(matrixError(k, ErrMissingMatrix))
		return
	}

	c, err := pairwise.Build(items, j, pairwise.WithFillPolicy(r.opts.Fill))
	if err != nil {
		r.fail(matrixError(k, err))
		return
	}
	m := c.Matrix()
	vec, err := priority.Derive(m, r.opts.Method)
	if err != nil {
		r.fail(matrixError(k, err))
		return
	}
	rec, err := consistency.Score(m, vec.Principal)
	if err != nil {
		r.fail(matrixError(k, err))
		return
	}

	r.res.Matrices[k] = MatrixResult{
		Key:         k,
		Items:       items,
		Comparison:  c,
		Priority:    vec,
		Consistency: rec,
	}
	r.log.Debug("matrix scored",
		slog.String("matrix", k.String()),
		slog.Int("n", rec.N),
		slog.Float64("lambda_max", rec.LambdaMax),
		slog.Float64("cr", rec.CR),
		slog.String("status", rec.Status.String()),
	)
	if r.opts.Observer != nil {
		r.opts.Observer.ObserveMatrix(k, rec)
	}
}

// checkStrayKeys reports supplied matrices naming undeclared criteria or
// types. Matrices of kinds the level does not use are ignored.
func (r *run) checkStrayKeys() {
	required := RequiredKeys(r.items, r.in.Level)
	var stray []Key
	for k := range r.in.Judgments {
		if !slices.Contains(required, k) {
			stray = append(stray, k)
		}
	}
	slices.SortFunc(stray, func(a, b Key) int {
		return cmp.Or(cmp.Compare(a.Kind, b.Kind), cmp.Compare(a.Name, b.Name))
	})

	for _, k := range stray {
		_, err := ItemsFor(r.items, r.in.Level, k)
		switch {
		case errors.Is(err, ErrUnknownCriterion), errors.Is(err, ErrUnknownType):
			r.fail(matrixError(k, err))
		default:
			r.log.Debug("matrix not used at this level", slog.String("matrix", k.String()))
		}
	}
}

// checkStrict flags every matrix that needs revision; false withholds all aggregates.
func (r *run) checkStrict() bool {
	ok := true
	for _, k := range r.res.Evaluated {
		mr, scored := r.res.Matrices[k]
		if scored && mr.Consistency.Status == consistency.NeedsRevision {
			r.fail(matrixError(k, fmt.Errorf("%w: CR %.4f", ErrInconsistent, mr.Consistency.CR)))
			ok = false
		}
	}

	return ok
}

func (r *run) aggregateLevel3() {
	tw, ok := r.weights(TypesKey())
	if !ok {
		return
	}
	r.res.TypePriority = tw

	cw := make([]float64, len(r.items.criteria))
	complete := true
	for ti, t := range r.items.types {
		local, ok := r.weights(CriteriaKey(t.Name))
		if !ok {
			complete = false
			continue
		}
		for li, name := range t.Criteria {
			cw[slices.Index(r.items.criteria, name)] += local[li] * tw[ti]
		}
	}
	if !complete {
		return
	}
	r.res.CriteriaPriority = cw
	r.aggregateAlternatives(cw)
}

// aggregateAlternatives sums local alternative weights scaled by criterion
// weights and renormalizes.
func (r *run) aggregateAlternatives(cw []float64) {
	if len(r.items.alternatives) == 0 {
		return
	}

	total := make([]float64, len(r.items.alternatives))
	for ci, name := range r.items.criteria {
		local, ok := r.weights(AlternativesKey(name))
		if !ok {
			return
		}
		for i := range total {
			total[i] += local[i] * cw[ci]
		}
	}

	w, err := priority.Normalize(total)
	if err != nil {
		if errors.Is(err, priority.ErrZeroSum) {
			err = ErrZeroSum
		}
		r.fail(fmt.Errorf("alternatives aggregate: %w", err))
		return
	}
	r.res.AlternativesPriority = w
}

// weights returns a copy of the normalized weights of a scored matrix.
func (r *run) weights(k Key) ([]float64, bool) {
	mr, ok := r.res.Matrices[k]
	if !ok {
		return nil, false
	}

	return slices.Clone(mr.Priority.Weights), true
}

func (r *run) fail(err error) {
	r.log.Warn("aggregation error", slog.Any("error", err))
	r.res.addError(err)
}
