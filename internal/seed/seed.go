// Package seed loads default reference data and optional member rosters.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	appRepos "github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/repositories"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/apperrors"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/auth"
)

// defaultIndustries covers the career pathways offered in the profile form
var defaultIndustries = []appModels.Industry{
	{Name: "Information Technology", SubIndustry: strPtr("Software and Services")},
	{Name: "Healthcare", SubIndustry: strPtr("Health Services")},
	{Name: "Education", SubIndustry: strPtr("Higher Education")},
	{Name: "Finance", SubIndustry: strPtr("Banking and Investment")},
	{Name: "Consulting", SubIndustry: strPtr("Management Consulting")},
	{Name: "Government", SubIndustry: strPtr("Public Administration")},
	{Name: "Nonprofit", SubIndustry: strPtr("Social Services")},
}

var defaultLocations = []appModels.JobLocation{
	{City: strPtr("Claremont"), State: strPtr("CA"), Country: strPtr("USA"), Region: strPtr("Southern California")},
	{City: strPtr("Los Angeles"), State: strPtr("CA"), Country: strPtr("USA"), Region: strPtr("Southern California")},
	{City: strPtr("San Francisco"), State: strPtr("CA"), Country: strPtr("USA"), Region: strPtr("Bay Area")},
	{City: strPtr("New York"), State: strPtr("NY"), Country: strPtr("USA"), Region: strPtr("Northeast")},
	{Region: strPtr("Remote")},
}

var defaultDegrees = []appModels.DegreeConcentration{
	{DegreeLevel: "MS", DegreeName: "Information Systems & Technology", ConcentrationName: strPtr("Data Science")},
	{DegreeLevel: "MS", DegreeName: "Information Systems & Technology", ConcentrationName: strPtr("IT Management")},
	{DegreeLevel: "PhD", DegreeName: "Information Systems & Technology"},
	{DegreeLevel: "MBA", DegreeName: "Business Administration"},
}

// CreateDefaultData inserts the reference rows used by the profile forms.
// Already-present rows are left alone; individual failures are collected so
// one bad row does not abort the rest.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	industryRepo := appRepos.NewIndustryRepository(dbPool)
	locationRepo := appRepos.NewJobLocationRepository(dbPool)
	degreeRepo := appRepos.NewDegreeRepository(dbPool)

	lgr.Info().Msg("Checking/creating default reference data")
	var finalErr error

	for i := range defaultIndustries {
		if _, err := industryRepo.Create(ctx, &defaultIndustries[i]); err != nil &&
			!errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Error().Err(err).Str("industry", defaultIndustries[i].Name).Msg("Error seeding industry")
			finalErr = errors.Join(finalErr, err)
		}
	}

	existing, err := locationRepo.GetAll(ctx)
	if err != nil {
		return errors.Join(finalErr, err)
	}
	if len(existing) == 0 {
		for i := range defaultLocations {
			if _, err := locationRepo.Create(ctx, &defaultLocations[i]); err != nil {
				lgr.Error().Err(err).Msg("Error seeding job location")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	for i := range defaultDegrees {
		if _, err := degreeRepo.Create(ctx, &defaultDegrees[i]); err != nil &&
			!errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Error().Err(err).Msg("Error seeding degree concentration")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

// csv column layout for member rosters
const (
	colEmail = iota
	colFirstName
	colLastName
	colUserType
	colIndustry
	memberColumns
)

// ImportMembersFromDir loads every .csv roster in dir. Each row becomes a
// user with a generated password hash; the industry column is matched by
// name and written to the pair selected by the row's user type. Existing
// emails are skipped.
func ImportMembersFromDir(ctx context.Context, dbPool *pgxpool.Pool, dir string, lgr zerolog.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			lgr.Debug().Str("dir", dir).Msg("No seed data directory, skipping roster import")
			return nil
		}
		return fmt.Errorf("failed to read seed data directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".csv" {
			continue
		}
		if err := importMembersFile(ctx, dbPool, filepath.Join(dir, entry.Name()), lgr); err != nil {
			return err
		}
	}

	return nil
}

func importMembersFile(ctx context.Context, dbPool *pgxpool.Pool, path string, lgr zerolog.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open roster %s: %w", path, err)
	}
	defer file.Close()

	userRepo := appRepos.NewUserRepository(dbPool)
	industryRepo := appRepos.NewIndustryRepository(dbPool)

	// Seeded accounts share a throwaway password; real deployments replace
	// rosters with self-registration.
	hashed, err := auth.HashPassword("changeme-" + filepath.Base(path))
	if err != nil {
		return err
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = memberColumns

	header := true
	imported := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to parse roster %s: %w", path, err)
		}
		if header {
			header = false
			continue
		}

		userType := record[colUserType]
		if !appModels.IsValidUserType(userType) {
			lgr.Warn().Str("userType", userType).Str("email", record[colEmail]).Msg("Skipping roster row with unknown user type")
			continue
		}

		user := &appModels.User{
			Email:             record[colEmail],
			Password:          hashed,
			FirstName:         record[colFirstName],
			LastName:          record[colLastName],
			UserType:          appModels.UserType(userType),
			ProfileVisibility: appModels.VisibilityPublic,
		}

		id, err := userRepo.CreateUser(ctx, user)
		if err != nil {
			if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				continue
			}
			return fmt.Errorf("failed to import roster row %s: %w", record[colEmail], err)
		}

		if name := record[colIndustry]; name != "" {
			industry, err := industryRepo.GetByName(ctx, name)
			if err == nil {
				pathway := &appModels.User{ID: id, UserType: appModels.UserType(userType)}
				if err := setCareerPathway(ctx, dbPool, pathway, industry.ID); err != nil {
					lgr.Warn().Err(err).Str("email", record[colEmail]).Msg("Failed to set seeded career pathway")
				}
			}
		}

		imported++
	}

	lgr.Info().Str("file", filepath.Base(path)).Int("imported", imported).Msg("Roster imported")
	return nil
}

func setCareerPathway(ctx context.Context, dbPool *pgxpool.Pool, user *appModels.User, industryID int64) error {
	column := "industry_id"
	if user.UserType == appModels.UserTypeStudent {
		column = "desired_industry_id"
	}
	_, err := dbPool.Exec(ctx, fmt.Sprintf(`UPDATE users SET %s = $1 WHERE id = $2`, column), industryID, user.ID)
	return err
}

func strPtr(s string) *string {
	return &s
}
