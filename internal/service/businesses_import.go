package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/repository"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service/listing"
)

// UploadSummary reports how many rows were inserted or updated during import.
type UploadSummary struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}

var requiredCSVHeaders = []string{"name", "category", "country"}

// ImportCSV upserts businesses from a CSV reader keyed by slug. The slug
// column is optional and derived from the name when absent. Imported rows
// are active unless a status column says otherwise.
func (s *BusinessesService) ImportCSV(ctx context.Context, r io.Reader) (UploadSummary, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return UploadSummary{}, invalidf("csv file is empty")
		}
		return UploadSummary{}, fmt.Errorf("read csv header: %w", err)
	}

	index, err := buildHeaderIndex(header)
	if err != nil {
		return UploadSummary{}, err
	}

	var (
		records []repository.BulkUpsertBusinessInput
		seen    = make(map[string]int)
		skipped int
		rowNum  = 1
	)

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return UploadSummary{}, fmt.Errorf("read csv row: %w", err)
		}
		rowNum++

		col := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		name := col("name")
		if name == "" {
			skipped++
			continue
		}

		record, err := s.importRecord(rowNum, name, col)
		if err != nil {
			return UploadSummary{}, err
		}

		if prev, dup := seen[record.Slug]; dup {
			records[prev] = record
			skipped++
			continue
		}
		seen[record.Slug] = len(records)
		records = append(records, record)
	}

	result, err := s.repo.BulkUpsertBusinesses(ctx, records)
	if err != nil {
		return UploadSummary{}, err
	}

	return UploadSummary{
		Inserted: result.Inserted,
		Updated:  result.Updated,
		Skipped:  skipped,
		Total:    result.Total,
	}, nil
}

func (s *BusinessesService) importRecord(rowNum int, name string, col func(string) string) (repository.BulkUpsertBusinessInput, error) {
	slug := Slugify(col("slug"))
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return repository.BulkUpsertBusinessInput{}, invalidf("cannot derive a slug for row %d", rowNum)
	}

	record := repository.BulkUpsertBusinessInput{
		Slug:         slug,
		Name:         name,
		Description:  normalizeString(col("description")),
		CategorySlug: normalizeString(Slugify(col("category"))),
		CountryCode:  normalizeString(strings.ToUpper(col("country"))),
		CityName:     normalizeString(col("city")),
		Address:      normalizeString(col("address")),
		Status:       entity.ListingStatusActive,
	}

	var err error
	if record.Latitude, err = parseOptionalFloat(col("latitude")); err != nil {
		return record, invalidf("invalid latitude value on row %d", rowNum)
	}
	if record.Longitude, err = parseOptionalFloat(col("longitude")); err != nil {
		return record, invalidf("invalid longitude value on row %d", rowNum)
	}
	if (record.Latitude != nil || record.Longitude != nil) && !listing.ValidCoordinates(record.Latitude, record.Longitude) {
		return record, invalidf("invalid coordinates on row %d", rowNum)
	}
	if record.IsPremium, err = parseOptionalBool(col("is_premium")); err != nil {
		return record, invalidf("invalid is_premium value on row %d", rowNum)
	}
	if record.IsVerified, err = parseOptionalBool(col("is_verified")); err != nil {
		return record, invalidf("invalid is_verified value on row %d", rowNum)
	}

	if raw := col("phone"); raw != "" {
		phone, err := s.contacts.Phone(raw, col("country"))
		if err != nil {
			return record, invalidf("invalid phone value on row %d", rowNum)
		}
		record.Phone = &phone
	}
	if raw := col("email"); raw != "" {
		email, err := s.contacts.Email(raw)
		if err != nil {
			return record, invalidf("invalid email value on row %d", rowNum)
		}
		record.Email = &email
	}
	if raw := col("website"); raw != "" {
		website, err := s.contacts.Website(raw)
		if err != nil {
			return record, invalidf("invalid website value on row %d", rowNum)
		}
		record.Website = &website
	}
	if raw := col("status"); raw != "" {
		status := entity.ListingStatus(strings.ToLower(raw))
		if !entity.ValidBusinessStatus(status) {
			return record, invalidf("invalid status value on row %d", rowNum)
		}
		record.Status = status
	}

	return record, nil
}

func buildHeaderIndex(header []string) (map[string]int, error) {
	index := make(map[string]int)
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	missing := make([]string, 0)
	for _, required := range requiredCSVHeaders {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, invalidf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func parseOptionalFloat(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func parseOptionalBool(value string) (bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return false, nil
	}
	switch strings.ToLower(value) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return strconv.ParseBool(value)
}

func normalizeString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
