package services

import (
	"errors"
	"time"

	"farmsync/internal/models"
	"farmsync/internal/repository"
)

// Record inputs mirror the worker data-entry dialogs. Dates arrive as
// YYYY-MM-DD strings; worker and farm identifiers come from the session, not
// the payload.

type EggProductionInput struct {
	Date           string `json:"date"`
	TraysCollected int    `json:"trays_collected"`
	EggsPerTray    int    `json:"eggs_per_tray"`
	DamagedTrays   int    `json:"damaged_trays"`
	DamagedEggs    int    `json:"damaged_eggs"`
}

type FeedUsageInput struct {
	Date             string  `json:"date"`
	FeedType         string  `json:"feed_type"`
	QuantityUsedKg   float64 `json:"quantity_used_kg"`
	RemainingStockKg float64 `json:"remaining_stock_kg"`
}

type MortalityInput struct {
	Date           string `json:"date"`
	NumberDead     int    `json:"number_dead"`
	SuspectedCause string `json:"suspected_cause"`
	AgeWeeks       int    `json:"age_weeks"`
}

type VaccinationInput struct {
	Date            string `json:"date"`
	VaccineName     string `json:"vaccine_name"`
	BirdsVaccinated int    `json:"birds_vaccinated"`
	AdministeredBy  string `json:"administered_by"`
}

type DailyNoteInput struct {
	Date string `json:"date"`
	Note string `json:"note"`
}

// ListFilter narrows record listings by worker and date range. All fields
// are optional.
type ListFilter struct {
	WorkerID string
	From     string
	To       string
}

type RecordService interface {
	RecordEggProduction(workerID, farmID string, in EggProductionInput) (*models.EggProduction, error)
	ListEggProduction(farmID string, f ListFilter) ([]models.EggProduction, error)
	RecordFeedUsage(workerID, farmID string, in FeedUsageInput) (*models.FeedUsage, error)
	ListFeedUsage(farmID string, f ListFilter) ([]models.FeedUsage, error)
	RecordMortality(workerID, farmID string, in MortalityInput) (*models.Mortality, error)
	ListMortality(farmID string, f ListFilter) ([]models.Mortality, error)
	RecordVaccination(workerID, farmID string, in VaccinationInput) (*models.Vaccination, error)
	ListVaccination(farmID string, f ListFilter) ([]models.Vaccination, error)
	RecordDailyNote(workerID, farmID string, in DailyNoteInput) (*models.DailyNote, error)
	ListDailyNotes(farmID string, f ListFilter) ([]models.DailyNote, error)
}

type recordService struct {
	recordRepo repository.RecordRepository
}

func NewRecordService(recordRepo repository.RecordRepository) RecordService {
	return &recordService{recordRepo: recordRepo}
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("date is required")
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errors.New("date must be YYYY-MM-DD")
	}
	return d, nil
}

func (f ListFilter) toRepo() (repository.RecordFilter, error) {
	out := repository.RecordFilter{WorkerID: f.WorkerID}
	if f.From != "" {
		d, err := time.Parse("2006-01-02", f.From)
		if err != nil {
			return out, errors.New("from must be YYYY-MM-DD")
		}
		out.From = &d
	}
	if f.To != "" {
		d, err := time.Parse("2006-01-02", f.To)
		if err != nil {
			return out, errors.New("to must be YYYY-MM-DD")
		}
		out.To = &d
	}
	return out, nil
}

func (s *recordService) RecordEggProduction(workerID, farmID string, in EggProductionInput) (*models.EggProduction, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.TraysCollected < 0 || in.EggsPerTray < 0 {
		return nil, errors.New("counts must not be negative")
	}

	rec := &models.EggProduction{
		WorkerID:       workerID,
		FarmID:         farmID,
		Date:           date,
		TraysCollected: in.TraysCollected,
		EggsPerTray:    in.EggsPerTray,
		DamagedTrays:   in.DamagedTrays,
		DamagedEggs:    in.DamagedEggs,
	}
	if err := s.recordRepo.CreateEggProduction(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) ListEggProduction(farmID string, f ListFilter) ([]models.EggProduction, error) {
	rf, err := f.toRepo()
	if err != nil {
		return nil, err
	}
	return s.recordRepo.ListEggProduction(farmID, rf)
}

func (s *recordService) RecordFeedUsage(workerID, farmID string, in FeedUsageInput) (*models.FeedUsage, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.FeedType == "" {
		return nil, errors.New("feed type is required")
	}
	if in.QuantityUsedKg < 0 || in.RemainingStockKg < 0 {
		return nil, errors.New("quantities must not be negative")
	}

	rec := &models.FeedUsage{
		WorkerID:         workerID,
		FarmID:           farmID,
		Date:             date,
		FeedType:         in.FeedType,
		QuantityUsedKg:   in.QuantityUsedKg,
		RemainingStockKg: in.RemainingStockKg,
	}
	if err := s.recordRepo.CreateFeedUsage(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) ListFeedUsage(farmID string, f ListFilter) ([]models.FeedUsage, error) {
	rf, err := f.toRepo()
	if err != nil {
		return nil, err
	}
	return s.recordRepo.ListFeedUsage(farmID, rf)
}

func (s *recordService) RecordMortality(workerID, farmID string, in MortalityInput) (*models.Mortality, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.NumberDead < 0 {
		return nil, errors.New("number dead must not be negative")
	}

	rec := &models.Mortality{
		WorkerID:       workerID,
		FarmID:         farmID,
		Date:           date,
		NumberDead:     in.NumberDead,
		SuspectedCause: in.SuspectedCause,
		AgeWeeks:       in.AgeWeeks,
	}
	if err := s.recordRepo.CreateMortality(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) ListMortality(farmID string, f ListFilter) ([]models.Mortality, error) {
	rf, err := f.toRepo()
	if err != nil {
		return nil, err
	}
	return s.recordRepo.ListMortality(farmID, rf)
}

func (s *recordService) RecordVaccination(workerID, farmID string, in VaccinationInput) (*models.Vaccination, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.VaccineName == "" {
		return nil, errors.New("vaccine name is required")
	}
	if in.BirdsVaccinated < 0 {
		return nil, errors.New("birds vaccinated must not be negative")
	}

	rec := &models.Vaccination{
		WorkerID:        workerID,
		FarmID:          farmID,
		Date:            date,
		VaccineName:     in.VaccineName,
		BirdsVaccinated: in.BirdsVaccinated,
		AdministeredBy:  in.AdministeredBy,
	}
	if err := s.recordRepo.CreateVaccination(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) ListVaccination(farmID string, f ListFilter) ([]models.Vaccination, error) {
	rf, err := f.toRepo()
	if err != nil {
		return nil, err
	}
	return s.recordRepo.ListVaccination(farmID, rf)
}

func (s *recordService) RecordDailyNote(workerID, farmID string, in DailyNoteInput) (*models.DailyNote, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.Note == "" {
		return nil, errors.New("note is required")
	}

	rec := &models.DailyNote{
		WorkerID: workerID,
		FarmID:   farmID,
		Date:     date,
		Note:     in.Note,
	}
	if err := s.recordRepo.CreateDailyNote(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) ListDailyNotes(farmID string, f ListFilter) ([]models.DailyNote, error) {
	rf, err := f.toRepo()
	if err != nil {
		return nil, err
	}
	return s.recordRepo.ListDailyNotes(farmID, rf)
}
