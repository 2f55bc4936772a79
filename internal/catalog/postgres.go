package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const defaultMaxConns = 4

// Postgres reads candidates from the relational catalog produced by the
// ingestion jobs: schools, programs and admissions keyed by unit id.
type Postgres struct {
	pool   *pgxpool.Pool
	sb     squirrel.StatementBuilderType
	logger *zap.Logger
}

// NewPostgres connects to the catalog database and verifies the connection.
func NewPostgres(ctx context.Context, dsn string, maxConns int, logger *zap.Logger) (*Postgres, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog dsn: %w", err)
	}

	if maxConns <= 0 {
		maxConns = defaultMaxConns
	}
	poolConfig.MaxConns = int32(maxConns)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog connection pool: %w", err)
	}

	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach catalog database: %w", err)
	}

	return &Postgres{
		pool:   pool,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger: logger,
	}, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

func buildCandidateQuery(sb squirrel.StatementBuilderType, programPrefixes []string) (string, []any, error) {
	return sb.Select(
		"s.unitid",
		"s.instnm",
		"s.webaddr",
		"s.net_price::float8",
		"s.sticker_price::float8",
		"s.earnings_median::float8",
		"s.debt_median::float8",
		"s.adm_rate::float8",
		"a.satvr25::float8",
		"a.satvr75::float8",
		"a.satmt25::float8",
		"a.satmt75::float8",
		"s.hbcu::int",
		"s.has_greek::int",
		"s.greek_pct::float8",
		"s.has_sports::int",
		"s.diversity_index::float8",
		"s.locale::int",
		"s.c21basic::int",
	).
		Distinct().
		From("schools s").
		Join("programs p ON s.unitid = p.unitid").
		LeftJoin("admissions a ON s.unitid = a.unitid").
		Where(squirrel.Eq{"substr(p.cipcode, 1, 2)": programPrefixes}).
		Where("s.earnings_median IS NOT NULL").
		Where("s.debt_median IS NOT NULL").
		OrderBy("s.unitid").
		ToSql()
}

func (p *Postgres) Candidates(ctx context.Context, programPrefixes []string) (*Institutions, error) {
	result := &Institutions{}
	if len(programPrefixes) == 0 {
		return result, nil
	}

	sql, args, err := buildCandidateQuery(p.sb, programPrefixes)
	if err != nil {
		return nil, fmt.Errorf("failed to build candidate query: %w", err)
	}

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying candidates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		inst, err := scanInstitution(rows)
		if err != nil {
			p.logger.Warn("skipping unreadable catalog row", zap.Error(err))
			continue
		}
		result.Items = append(result.Items, inst)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidates: %w", err)
	}

	return result, nil
}

func scanInstitution(rows pgx.Rows) (*Institution, error) {
	inst := &Institution{TestScores: &TestScores{}}
	var (
		website                 *string
		hbcu, greek, sports     *int
		locale, research        *int
		greekPercent, diversity *float64
	)

	err := rows.Scan(
		&inst.ID,
		&inst.Name,
		&website,
		&inst.NetPrice,
		&inst.StickerPrice,
		&inst.Earnings,
		&inst.Debt,
		&inst.AdmissionRate,
		&inst.TestScores.Verbal25,
		&inst.TestScores.Verbal75,
		&inst.TestScores.Math25,
		&inst.TestScores.Math75,
		&hbcu,
		&greek,
		&greekPercent,
		&sports,
		&diversity,
		&locale,
		&research,
	)
	if err != nil {
		return nil, err
	}

	if website != nil {
		inst.Website = *website
	}
	inst.Culture = Culture{
		HBCU:           flag(hbcu),
		Greek:          flag(greek),
		GreekPercent:   greekPercent,
		Athletics:      flag(sports),
		DiversityIndex: diversity,
		Locale:         locale,
		ResearchClass:  research,
	}

	return inst, nil
}

// flag converts the 0/1 integer columns of the catalog.
func flag(v *int) *bool {
	if v == nil {
		return nil
	}
	b := *v == 1
	return &b
}
