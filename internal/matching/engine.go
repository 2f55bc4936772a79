// Package matching selects, scores and ranks institutions for an applicant.
package matching

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/compasshud/compass/internal/bridge"
	"github.com/compasshud/compass/internal/catalog"
	"github.com/compasshud/compass/internal/filtering"
	"github.com/compasshud/compass/internal/logger"
	"github.com/compasshud/compass/internal/scoring"
)

// MaxResults bounds the length of every match list.
const MaxResults = 50

// Engine matches applicants against a catalog. It only reads its
// dependencies and is safe for concurrent use.
type Engine struct {
	bridge  *bridge.Table
	catalog catalog.Catalog
	filters *filtering.Config
	logger  *zap.Logger
}

// New creates an engine.
func New(b *bridge.Table, c catalog.Catalog, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		bridge:  b,
		catalog: c,
		filters: filtering.DefaultConfig(),
		logger:  log,
	}
}

// FindMatches returns at most MaxResults institutions ordered by descending
// score. An occupation without mapped programs yields an empty list.
func (e *Engine) FindMatches(ctx context.Context, req Request) ([]*Match, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prefix := bridge.Prefix(req.OccupationCode)
	log := logger.WithRequest(e.logger, uuid.NewString(), req.OccupationCode, prefix)

	wage, programs := e.bridge.Resolve(req.OccupationCode)
	if len(programs) == 0 {
		log.Info("no programs mapped to occupation")
		return []*Match{}, nil
	}

	candidates, err := e.catalog.Candidates(ctx, programs)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}
	fetched := candidates.Len()

	steps := []filtering.Filter{
		filtering.NewValidity(),
		filtering.NewAdmissibility(req.GPA, req.SAT),
	}
	candidates, err = filtering.Run(ctx, e.filters, filtering.Deps{Logger: log}, steps, candidates)
	if err != nil {
		return nil, fmt.Errorf("filter candidates: %w", err)
	}
	for _, status := range filtering.Describe(steps) {
		log.Debug("filter applied", zap.String("name", status.Name), zap.Any("details", status.Details))
	}

	applicant := scoring.Applicant{
		Budget:           req.Budget,
		OccupationPrefix: prefix,
		GPA:              req.GPA,
		SAT:              req.SAT,
	}

	matches := make([]*Match, 0, candidates.Len())
	for _, inst := range candidates.Items {
		matches = append(matches, e.score(inst, req, applicant, wage))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}

	log.Info("matching finished",
		zap.Strings("program_prefixes", programs),
		zap.Int("fetched", fetched),
		zap.Int("admissible", candidates.Len()),
		zap.Int("returned", len(matches)),
	)

	return matches, nil
}

func (e *Engine) score(inst *catalog.Institution, req Request, applicant scoring.Applicant, sectorWage float64) *Match {
	earnings := sectorWage
	if inst.Earnings != nil && *inst.Earnings > 0 {
		earnings = *inst.Earnings
	}

	// An unreported net price falls back to the sticker price or the default cost.
	netPrice := 0.0
	if inst.NetPrice != nil {
		netPrice = *inst.NetPrice
	}

	bar, _ := inst.SchoolBar()

	var admissionRate *float64
	if inst.AdmissionRate != nil && *inst.AdmissionRate > 0 {
		admissionRate = inst.AdmissionRate
	}

	result := scoring.Score(scoring.Bundle{
		NetPrice:      &netPrice,
		StickerPrice:  inst.StickerPrice,
		Earnings:      &earnings,
		Debt:          inst.Debt,
		AdmissionRate: admissionRate,
		Composite75:   &bar,
		Composite25:   inst.Composite25(),
	}, applicant)

	if result.Tier != scoring.TierInvalid {
		if bonus := boost(inst, req); bonus > 0 {
			result.Score = int(math.Min(100, float64(result.Score)+bonus))
			result.Tier = scoring.TierFor(result.Score)
		}
	}

	return &Match{
		InstitutionID:     inst.ID,
		Name:              inst.Name,
		Score:             result.Score,
		Tier:              result.Tier,
		DebtPayoff:        result.DebtPayoff,
		NetPrice:          inst.NetPrice,
		StickerPrice:      inst.StickerPrice,
		ProjectedEarnings: earnings,
		Debt:              inst.Debt,
		AdmissionRate:     inst.AdmissionRate,
		Website:           inst.Website,
		ResearchClass:     inst.Culture.ResearchClass,
		HasAthletics:      isSet(inst.Culture.Athletics),
	}
}
