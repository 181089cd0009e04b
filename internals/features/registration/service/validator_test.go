package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"istereg_backend/internals/features/registration/dto"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{"simple name", "john doe", "John Doe", ""},
		{"trims and title-cases", "  aLICE kUMAR  ", "Alice Kumar", ""},
		{"already normalized", "John Doe", "John Doe", ""},
		{"digits rejected", "john123", "", "Name can only contain letters and spaces."},
		{"symbols rejected", "john_doe", "", "Name can only contain letters and spaces."},
		{"too short", "J", "", "Name must be at least 2 characters long."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.input)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateBranch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"computer engineering", "COE"},
		{"coe", "COE"},
		{"Electronics and Communication", "ECE"},
		{"MECHANICAL", "MECH"},
		{"biotech", "BIOTECHNOLOGY"},
		{"aeronautical", "AEROSPACE"},
		{"xyz", "XYZ"}, // unmapped passes through uppercased
		{"  it  ", "IT"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidateBranch(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("too short", func(t *testing.T) {
		_, err := ValidateBranch("a")
		require.EqualError(t, err, "Branch name is too short.")
	})
}

func TestValidateAdmissionNo(t *testing.T) {
	got, err := ValidateAdmissionNo("123456")
	require.NoError(t, err)
	assert.Equal(t, "123456", got)

	got, err = ValidateAdmissionNo(" 123456 ")
	require.NoError(t, err)
	assert.Equal(t, "123456", got)

	for _, bad := range []string{"12345", "1234567", "12a456", ""} {
		_, err := ValidateAdmissionNo(bad)
		assert.EqualError(t, err, "Admission number must be exactly 6 digits.", "input %q", bad)
	}
}

func TestValidatePhone(t *testing.T) {
	got, err := ValidatePhone("9876543210")
	require.NoError(t, err)
	assert.Equal(t, "9876543210", got)

	for _, bad := range []string{"98765", "98765432101", "98765abcde"} {
		_, err := ValidatePhone(bad)
		assert.EqualError(t, err, "Phone number must be exactly 10 digits.", "input %q", bad)
	}

	for _, bad := range []string{"0000000000", "1111111111"} {
		_, err := ValidatePhone(bad)
		assert.EqualError(t, err, "Please enter a valid phone number.", "input %q", bad)
	}
}

func TestValidateEmail(t *testing.T) {
	got, err := ValidateEmail("Foo@GMAIL.com")
	require.NoError(t, err)
	assert.Equal(t, "foo@gmail.com", got)

	got, err = ValidateEmail("  a.b@thapar.edu  ")
	require.NoError(t, err)
	assert.Equal(t, "a.b@thapar.edu", got)

	_, err = ValidateEmail("a@yahoo.com")
	require.EqualError(t, err, "Email must be from one of these domains: gmail.com, thapar.edu")

	_, err = ValidateEmail("no-at-sign.com")
	require.EqualError(t, err, "Please enter a valid email address.")
}

func TestValidateYear(t *testing.T) {
	for input, want := range map[any]int{
		1: 1, 5: 5, "3": 3, float64(2): 2,
	} {
		got, err := ValidateYear(input)
		require.NoError(t, err, "input %v", input)
		assert.Equal(t, want, got)
	}

	for _, bad := range []any{0, 6, -1, "0"} {
		_, err := ValidateYear(bad)
		assert.EqualError(t, err, "Year must be between 1 and 5.", "input %v", bad)
	}

	for _, bad := range []any{"abc", nil, true} {
		_, err := ValidateYear(bad)
		assert.EqualError(t, err, "Year must be a number.", "input %v", bad)
	}
}

func TestValidateRegistrationCollectsAllErrors(t *testing.T) {
	_, fieldErrs := ValidateRegistration(dto.CreateRegistrationRequest{
		Name:        "x1",
		AdmissionNo: "12345",
		Email:       "a@yahoo.com",
		Phone:       "0000000000",
		Branch:      "a",
		Year:        9,
	})
	require.NotNil(t, fieldErrs)
	assert.Len(t, fieldErrs, 6)
	assert.Equal(t, "Name can only contain letters and spaces.", fieldErrs["name"])
	assert.Equal(t, "Admission number must be exactly 6 digits.", fieldErrs["admission_no"])
	assert.Equal(t, "Email must be from one of these domains: gmail.com, thapar.edu", fieldErrs["email"])
	assert.Equal(t, "Please enter a valid phone number.", fieldErrs["phone"])
	assert.Equal(t, "Branch name is too short.", fieldErrs["branch"])
	assert.Equal(t, "Year must be between 1 and 5.", fieldErrs["year"])
}

// Menormalkan record yang sudah normal harus menghasilkan nilai yang sama.
func TestNormalizationIsIdempotent(t *testing.T) {
	req := dto.CreateRegistrationRequest{
		Name:        "  rahul SHARMA ",
		AdmissionNo: " 102398 ",
		Email:       "Rahul.Sharma@THAPAR.edu",
		Phone:       "9876543210",
		Branch:      "computer engineering",
		Year:        "2",
	}

	first, fieldErrs := ValidateRegistration(req)
	require.Nil(t, fieldErrs)

	second, fieldErrs := ValidateRegistration(dto.CreateRegistrationRequest{
		Name:        first.Name,
		AdmissionNo: first.AdmissionNo,
		Email:       first.Email,
		Phone:       first.Phone,
		Branch:      first.Branch,
		Year:        first.Year,
	})
	require.Nil(t, fieldErrs)
	assert.Equal(t, first, second)
}
