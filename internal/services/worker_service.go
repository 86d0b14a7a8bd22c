package services

import (
	"fmt"
	"strings"

	"farmsync/internal/credentials"
	"farmsync/internal/models"
	"farmsync/internal/repository"
	"farmsync/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// WorkerDashboard is the aggregate a signed-in worker sees: their own
// record, the farm they work on, and their active coworkers.
type WorkerDashboard struct {
	Worker    *models.Worker  `json:"worker"`
	Farm      *models.Farm    `json:"farm"`
	Coworkers []models.Worker `json:"coworkers"`
}

type WorkerService interface {
	CreateWorker(farmID, managerID string, in validation.WorkerInput) (*models.Worker, *credentials.Pair, error)
	GetWorker(id string) (*models.Worker, error)
	ListWorkers(farmID string) ([]models.Worker, error)
	UpdateWorker(id string, in validation.WorkerInput) (*models.Worker, error)
	DeleteWorker(id string) error
	Dashboard(workerID string) (*WorkerDashboard, error)
}

type workerService struct {
	workerRepo  repository.WorkerRepository
	farmRepo    repository.FarmRepository
	identities  IdentityService
	emailDomain string
	logger      *zap.Logger
}

func NewWorkerService(
	workerRepo repository.WorkerRepository,
	farmRepo repository.FarmRepository,
	identities IdentityService,
	emailDomain string,
	logger *zap.Logger,
) WorkerService {
	return &workerService{
		workerRepo:  workerRepo,
		farmRepo:    farmRepo,
		identities:  identities,
		emailDomain: emailDomain,
		logger:      logger,
	}
}

// CreateWorker runs the full registration sequence: validate, resolve the
// farm, scan assigned usernames, generate credentials, register the backing
// identity, then insert the worker row. The plaintext password exists only
// in the returned pair; both stored copies are bcrypt hashes. Callers must
// surface the pair once, it is not retrievable later.
func (s *workerService) CreateWorker(farmID, managerID string, in validation.WorkerInput) (*models.Worker, *credentials.Pair, error) {
	if err := validation.ValidateWorker(in); err != nil {
		return nil, nil, err
	}

	farm, err := s.farmRepo.GetByID(farmID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve farm: %w", err)
	}

	usernames, err := s.workerRepo.UsernamesByFarm(farmID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load assigned usernames: %w", err)
	}

	pair, err := credentials.Generate(in.FullName, farm.Name, usernames)
	if err != nil {
		return nil, nil, err
	}

	identity, err := s.identities.CreateWorkerIdentity(
		pair.Username+"@"+s.emailDomain, pair.Password, in.FullName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create worker identity: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pair.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	worker := &models.Worker{
		FarmID:                farmID,
		ManagerID:             managerID,
		UserID:                &identity.ID,
		FullName:              in.FullName,
		Role:                  in.Role,
		Gender:                in.Gender,
		Age:                   in.Age,
		ContactPhone:          optional(in.ContactPhone),
		NIN:                   optional(in.NIN),
		NextOfKinName:         in.NextOfKinName,
		NextOfKinRelationship: in.NextOfKinRelationship,
		NextOfKinPhone:        in.NextOfKinPhone,
		Username:              pair.Username,
		PasswordHash:          string(hash),
		IsActive:              true,
	}

	if err := s.workerRepo.Create(worker); err != nil {
		// Roll back the identity so a retry does not hit a duplicate email.
		if delErr := s.identities.DeleteIdentity(identity.ID); delErr != nil {
			s.logger.Error("failed to clean up identity after worker insert failure",
				zap.String("identity_id", identity.ID), zap.Error(delErr))
		}
		return nil, nil, fmt.Errorf("error creating worker: %w", err)
	}

	s.logger.Info("worker created",
		zap.String("worker_id", worker.ID),
		zap.String("farm_id", farmID),
		zap.String("username", worker.Username),
	)
	return worker, &pair, nil
}

func (s *workerService) GetWorker(id string) (*models.Worker, error) {
	return s.workerRepo.GetByID(id)
}

func (s *workerService) ListWorkers(farmID string) ([]models.Worker, error) {
	return s.workerRepo.GetByFarmID(farmID)
}

// UpdateWorker applies the edit dialog. The same validation runs as on
// create; the username and password are never changed here, so a renamed
// worker keeps a username derived from their old name.
func (s *workerService) UpdateWorker(id string, in validation.WorkerInput) (*models.Worker, error) {
	if err := validation.ValidateWorker(in); err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.FullName != worker.FullName {
		if farm, ferr := s.farmRepo.GetByID(worker.FarmID); ferr == nil {
			if p := credentials.Prefix(in.FullName, farm.Name); p != "" && !strings.HasPrefix(worker.Username, p) {
				s.logger.Info("worker renamed, username kept",
					zap.String("worker_id", worker.ID),
					zap.String("username", worker.Username),
				)
			}
		}
	}

	worker.FullName = in.FullName
	worker.Role = in.Role
	worker.Gender = in.Gender
	worker.Age = in.Age
	worker.ContactPhone = optional(in.ContactPhone)
	worker.NIN = optional(in.NIN)
	worker.NextOfKinName = in.NextOfKinName
	worker.NextOfKinRelationship = in.NextOfKinRelationship
	worker.NextOfKinPhone = in.NextOfKinPhone
	if in.IsActive != nil {
		worker.IsActive = *in.IsActive
	}

	if err := s.workerRepo.Update(worker); err != nil {
		return nil, err
	}
	return worker, nil
}

// DeleteWorker removes the worker row and then the linked identity. A row
// deletion failure aborts the operation; an identity deletion failure is
// logged but not surfaced, matching the one-way dependency between the two.
func (s *workerService) DeleteWorker(id string) error {
	worker, err := s.workerRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.workerRepo.Delete(id); err != nil {
		return err
	}

	if worker.UserID != nil {
		if err := s.identities.DeleteIdentity(*worker.UserID); err != nil {
			s.logger.Error("failed to delete linked identity",
				zap.String("worker_id", id),
				zap.String("identity_id", *worker.UserID),
				zap.Error(err))
		}
	}
	return nil
}

func (s *workerService) Dashboard(workerID string) (*WorkerDashboard, error) {
	worker, err := s.workerRepo.GetByID(workerID)
	if err != nil {
		return nil, err
	}

	farm, err := s.farmRepo.GetByID(worker.FarmID)
	if err != nil {
		return nil, err
	}

	coworkers, err := s.workerRepo.GetActiveCoworkers(worker.FarmID, worker.ID)
	if err != nil {
		return nil, err
	}

	return &WorkerDashboard{Worker: worker, Farm: farm, Coworkers: coworkers}, nil
}
