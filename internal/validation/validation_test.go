package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWorker() WorkerInput {
	return WorkerInput{
		FullName:              "John Doe",
		Role:                  "worker",
		Gender:                "male",
		Age:                   25,
		NextOfKinName:         "Jane Doe",
		NextOfKinRelationship: "sibling",
		NextOfKinPhone:        "+256700000000",
	}
}

func TestValidateWorkerNINByRole(t *testing.T) {
	tests := []struct {
		role    string
		nin     string
		wantErr bool
	}{
		{"worker", "", false},
		{"worker", "CM12345", false},
		{"caretaker", "", true},
		{"manager", "", true},
		{"assistant_manager", "", true},
		{"accountant", "", true},
		{"manager", "CM12345", false},
		{"accountant", "CM99887", false},
	}

	for _, tt := range tests {
		in := validWorker()
		in.Role = tt.role
		in.NIN = tt.nin

		err := ValidateWorker(in)
		if tt.wantErr {
			require.Error(t, err, "role %q with empty NIN must be rejected", tt.role)
			fieldErrs, ok := err.(FieldErrors)
			require.True(t, ok)
			assert.Contains(t, fieldErrs, "nin")
		} else {
			assert.NoError(t, err, "role %q nin %q", tt.role, tt.nin)
		}
	}
}

func TestValidateWorkerFieldRules(t *testing.T) {
	in := validWorker()
	in.FullName = "J"
	in.Age = 0
	in.NextOfKinPhone = "12345"

	err := ValidateWorker(in)
	require.Error(t, err)

	fieldErrs := err.(FieldErrors)
	assert.Contains(t, fieldErrs, "full_name")
	assert.Contains(t, fieldErrs, "age")
	assert.Contains(t, fieldErrs, "next_of_kin_phone")
	assert.NotContains(t, fieldErrs, "nin")
}

func TestValidateWorkerEnums(t *testing.T) {
	in := validWorker()
	in.Role = "ceo"
	in.Gender = "unknown"
	in.NextOfKinRelationship = "acquaintance"

	err := ValidateWorker(in)
	require.Error(t, err)

	fieldErrs := err.(FieldErrors)
	assert.Contains(t, fieldErrs, "role")
	assert.Contains(t, fieldErrs, "gender")
	assert.Contains(t, fieldErrs, "next_of_kin_relationship")
}

func TestValidateFarm(t *testing.T) {
	in := FarmInput{
		Name:             "Green Valley",
		FarmType:         "layers",
		LocationDistrict: "Kampala",
		StartDate:        "2025-01-01",
	}
	assert.NoError(t, ValidateFarm(in))

	in.FarmType = "goats"
	in.StartDate = "January 1st"
	err := ValidateFarm(in)
	require.Error(t, err)

	fieldErrs := err.(FieldErrors)
	assert.Contains(t, fieldErrs, "farm_type")
	assert.Contains(t, fieldErrs, "start_date")
}
