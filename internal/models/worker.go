package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Worker struct {
	ID                    string    `json:"id" gorm:"type:uuid;primaryKey"`
	FarmID                string    `json:"farm_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_farm_username,priority:1"`
	ManagerID             string    `json:"manager_id" gorm:"type:uuid;not null"`
	UserID                *string   `json:"user_id" gorm:"type:uuid"` // linked auth identity, if any
	FullName              string    `json:"full_name" gorm:"not null"`
	Role                  string    `json:"role" gorm:"default:'worker'"` // worker, caretaker, manager, assistant_manager, accountant
	Gender                string    `json:"gender" gorm:"not null"` // male, female, other
	Age                   int       `json:"age" gorm:"not null"`
	ContactPhone          *string   `json:"contact_phone"`
	NIN                   *string   `json:"nin" gorm:"column:nin"`
	NextOfKinName         string    `json:"next_of_kin_name" gorm:"not null"`
	NextOfKinRelationship string    `json:"next_of_kin_relationship" gorm:"not null"` // parent, sibling, spouse, child, relative, friend
	NextOfKinPhone        string    `json:"next_of_kin_phone" gorm:"not null"`
	Username              string    `json:"auto_generated_username" gorm:"column:auto_generated_username;not null;uniqueIndex:idx_farm_username,priority:2"`
	PasswordHash          string    `json:"-" gorm:"column:auto_generated_password;not null"`
	IsActive              bool      `json:"is_active" gorm:"default:true"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (w *Worker) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

type WorkerRole string

const (
	RoleWorker           WorkerRole = "worker"
	RoleCaretaker        WorkerRole = "caretaker"
	RoleManager          WorkerRole = "manager"
	RoleAssistantManager WorkerRole = "assistant_manager"
	RoleAccountant       WorkerRole = "accountant"
)

// RolesRequiringNIN lists the roles for which a national ID number must be
// captured before the worker record is accepted.
var RolesRequiringNIN = []WorkerRole{RoleCaretaker, RoleManager, RoleAssistantManager, RoleAccountant}

func RoleRequiresNIN(role string) bool {
	for _, r := range RolesRequiringNIN {
		if string(r) == role {
			return true
		}
	}
	return false
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

type KinRelationship string

const (
	Parent   KinRelationship = "parent"
	Sibling  KinRelationship = "sibling"
	Spouse   KinRelationship = "spouse"
	Child    KinRelationship = "child"
	Relative KinRelationship = "relative"
	Friend   KinRelationship = "friend"
)
