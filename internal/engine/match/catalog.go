package match

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Catalog loads job postings and career paths from Postgres and materializes
// them in memory for the engine. The engine itself never queries a database;
// every scoring and filtering call works on the slices Catalog returns.
type Catalog struct {
	pool *pgxpool.Pool
}

// ConnectCatalog creates a pgx pool against databaseURL and applies the
// embedded schema.
func ConnectCatalog(ctx context.Context, databaseURL string) (*Catalog, error) {
	if databaseURL == "" {
		return nil, errors.New("catalog: DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("catalog: create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("catalog: ping postgres: %w", err)
	}

	c := &Catalog{pool: pool}
	if err := c.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("catalog: migrate: %w", err)
	}

	slog.Info("job catalog connected", slog.String("host", config.ConnConfig.Host))
	return c, nil
}

// Close releases the connection pool.
func (c *Catalog) Close() {
	c.pool.Close()
}

func (c *Catalog) migrate(ctx context.Context) error {
	schema, err := schemaFS.ReadFile("schema/catalog.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := c.pool.Exec(ctx, string(schema)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Jobs returns up to limit postings, newest first. limit <= 0 means 500.
func (c *Catalog) Jobs(ctx context.Context, limit int) ([]JobPosting, error) {
	if limit <= 0 {
		limit = 500
	}

	rows, err := c.pool.Query(ctx,
		`SELECT id, title, company, description, location, remote, job_type, level,
		        skills, requirements, salary_min, salary_max, currency,
		        education, work_model, benefits, company_type, company_size, job_function, url
		 FROM job_postings ORDER BY posted_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("catalog: query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []JobPosting
	for rows.Next() {
		var j JobPosting
		var salaryMin, salaryMax *int
		var currency *string
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Description, &j.Location,
			&j.Remote, &j.Type, &j.Level, &j.Skills, &j.Requirements,
			&salaryMin, &salaryMax, &currency,
			&j.Education, &j.WorkModel, &j.Benefits,
			&j.CompanyType, &j.CompanySize, &j.JobFunction, &j.URL); err != nil {
			return nil, fmt.Errorf("catalog: scan job: %w", err)
		}
		if salaryMin != nil && salaryMax != nil {
			j.Salary = &Salary{Min: *salaryMin, Max: *salaryMax}
			if currency != nil {
				j.Salary.Currency = *currency
			}
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// CareerPaths returns the full transition catalog.
func (c *Catalog) CareerPaths(ctx context.Context) ([]CareerPath, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT from_role, to_role, industry, transition_probability,
		        required_skills, recommended_skills, average_timeline_months, salary_change_percentage
		 FROM career_paths`)
	if err != nil {
		return nil, fmt.Errorf("catalog: query career paths: %w", err)
	}
	defer rows.Close()

	var paths []CareerPath
	for rows.Next() {
		var p CareerPath
		var months *int
		if err := rows.Scan(&p.FromRole, &p.ToRole, &p.Industry, &p.TransitionProbability,
			&p.RequiredSkills, &p.RecommendedSkills, &months, &p.SalaryChangePercentage); err != nil {
			return nil, fmt.Errorf("catalog: scan career path: %w", err)
		}
		if months != nil {
			p.AverageTimelineMonths = *months
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}
