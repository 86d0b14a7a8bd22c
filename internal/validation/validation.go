// Package validation holds the form-level rules applied before any write
// reaches the database. Errors are field-scoped so handlers can return them
// the way the dialogs expect.
package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"farmsync/internal/models"
)

// FieldErrors maps a field name to the rule it broke.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

// WorkerInput carries the fields collected by the create and edit worker
// dialogs. Both paths run the same rules.
type WorkerInput struct {
	FullName              string `json:"full_name"`
	Role                  string `json:"role"`
	Gender                string `json:"gender"`
	Age                   int    `json:"age"`
	ContactPhone          string `json:"contact_phone"`
	NIN                   string `json:"nin"`
	NextOfKinName         string `json:"next_of_kin_name"`
	NextOfKinRelationship string `json:"next_of_kin_relationship"`
	NextOfKinPhone        string `json:"next_of_kin_phone"`
	IsActive              *bool  `json:"is_active"`
}

var workerRoles = map[string]struct{}{
	string(models.RoleWorker):           {},
	string(models.RoleCaretaker):        {},
	string(models.RoleManager):          {},
	string(models.RoleAssistantManager): {},
	string(models.RoleAccountant):       {},
}

var genders = map[string]struct{}{
	string(models.Male):   {},
	string(models.Female): {},
	string(models.Other):  {},
}

var kinRelationships = map[string]struct{}{
	string(models.Parent):   {},
	string(models.Sibling):  {},
	string(models.Spouse):   {},
	string(models.Child):    {},
	string(models.Relative): {},
	string(models.Friend):   {},
}

// ValidateWorker checks a worker payload. A NIN is mandatory for caretaker,
// manager, assistant_manager and accountant roles; plain workers may omit it.
func ValidateWorker(in WorkerInput) error {
	errs := FieldErrors{}

	if len(strings.TrimSpace(in.FullName)) < 2 {
		errs["full_name"] = "name must be at least 2 characters"
	}
	if _, ok := workerRoles[in.Role]; !ok {
		errs["role"] = "invalid role"
	}
	if _, ok := genders[in.Gender]; !ok {
		errs["gender"] = "invalid gender"
	}
	if in.Age < 1 {
		errs["age"] = "age is required"
	}
	if models.RoleRequiresNIN(in.Role) && strings.TrimSpace(in.NIN) == "" {
		errs["nin"] = "NIN is required for caretaker, manager, assistant manager and accountant roles"
	}
	if len(strings.TrimSpace(in.NextOfKinName)) < 2 {
		errs["next_of_kin_name"] = "next of kin name is required"
	}
	if _, ok := kinRelationships[in.NextOfKinRelationship]; !ok {
		errs["next_of_kin_relationship"] = "invalid relationship"
	}
	if len(strings.TrimSpace(in.NextOfKinPhone)) < 10 {
		errs["next_of_kin_phone"] = "valid phone number is required"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FarmInput carries the create/edit farm dialog fields. Optional numeric
// fields arrive as pointers so an absent value stays NULL in storage.
type FarmInput struct {
	Name              string   `json:"name"`
	FarmType          string   `json:"farm_type"`
	LocationDistrict  string   `json:"location_district"`
	LocationSubcounty string   `json:"location_subcounty"`
	LocationParish    string   `json:"location_parish"`
	LocationVillage   string   `json:"location_village"`
	SizeAcres         *float64 `json:"size_acres"`
	BirdCapacity      *int     `json:"bird_capacity"`
	StartDate         string   `json:"start_date"`
	Description       string   `json:"description"`
}

var farmTypes = map[string]struct{}{
	string(models.Layers):      {},
	string(models.Broilers):    {},
	string(models.DualPurpose): {},
}

func ValidateFarm(in FarmInput) error {
	errs := FieldErrors{}

	if len(strings.TrimSpace(in.Name)) < 2 {
		errs["name"] = "farm name must be at least 2 characters"
	}
	if _, ok := farmTypes[in.FarmType]; !ok {
		errs["farm_type"] = "invalid farm type"
	}
	if len(strings.TrimSpace(in.LocationDistrict)) < 2 {
		errs["location_district"] = "district is required"
	}
	if _, err := time.Parse("2006-01-02", in.StartDate); err != nil {
		errs["start_date"] = "start date must be YYYY-MM-DD"
	}
	if in.SizeAcres != nil && *in.SizeAcres <= 0 {
		errs["size_acres"] = "size must be positive"
	}
	if in.BirdCapacity != nil && *in.BirdCapacity <= 0 {
		errs["bird_capacity"] = "bird capacity must be positive"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
