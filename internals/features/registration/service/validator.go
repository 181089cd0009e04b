package service

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"istereg_backend/internals/features/registration/dto"
)

// FieldErrors memetakan nama field -> pesan error. Semua field divalidasi,
// tidak short-circuit di error pertama.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

var (
	nameRegex        = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	admissionNoRegex = regexp.MustCompile(`^\d{6}$`)
	phoneRegex       = regexp.MustCompile(`^\d{10}$`)
)

// Tabel sinonim branch. Input yang tidak dikenal lolos apa adanya (uppercase).
var branchSynonyms = map[string]string{
	"COE": "COE", "COMPUTER": "COE", "COMPUTER ENGINEERING": "COE",
	"ECE": "ECE", "ELECTRONICS": "ECE", "ELECTRONICS AND COMMUNICATION": "ECE",
	"EEE": "EEE", "ELECTRICAL": "EEE", "ELECTRICAL AND ELECTRONICS": "EEE",
	"MECH": "MECH", "MECHANICAL": "MECH", "MECHANICAL ENGINEERING": "MECH",
	"CIVIL": "CIVIL", "CIVIL ENGINEERING": "CIVIL",
	"IT": "IT", "INFORMATION TECHNOLOGY": "IT",
	"CSE": "CSE", "COMPUTER SCIENCE": "CSE",
	"CHEMICAL": "CHEMICAL", "CHEMICAL ENGINEERING": "CHEMICAL",
	"BIOTECHNOLOGY": "BIOTECHNOLOGY", "BIOTECH": "BIOTECHNOLOGY",
	"AEROSPACE": "AEROSPACE", "AERONAUTICAL": "AEROSPACE",
}

var allowedEmailDomains = []string{"gmail.com", "thapar.edu"}

// NormalizedRegistration adalah hasil validasi: semua field sudah dinormalkan
// (idempoten — memvalidasi ulang hasilnya menghasilkan nilai yang sama).
type NormalizedRegistration struct {
	Name        string
	Branch      string
	AdmissionNo string
	Phone       string
	Email       string
	Year        int
}

// ValidateName: trim + title case; huruf dan spasi saja, minimal 2 karakter.
func ValidateName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !nameRegex.MatchString(trimmed) {
		return "", errors.New("Name can only contain letters and spaces.")
	}
	if len(trimmed) < 2 {
		return "", errors.New("Name must be at least 2 characters long.")
	}
	// Caser bersifat stateful, jangan dishare antar goroutine
	return cases.Title(language.English).String(strings.ToLower(trimmed)), nil
}

// ValidateBranch: trim + uppercase lalu lewat tabel sinonim.
func ValidateBranch(raw string) (string, error) {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if canonical, ok := branchSynonyms[upper]; ok {
		upper = canonical
	}
	if len(upper) < 2 {
		return "", errors.New("Branch name is too short.")
	}
	return upper, nil
}

// ValidateAdmissionNo: trim + uppercase (no-op untuk digit murni), 6 digit.
func ValidateAdmissionNo(raw string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !admissionNoRegex.MatchString(normalized) {
		return "", errors.New("Admission number must be exactly 6 digits.")
	}
	return normalized, nil
}

// ValidatePhone: 10 digit; tolak deretan 0 atau 1 semua.
func ValidatePhone(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !phoneRegex.MatchString(trimmed) {
		return "", errors.New("Phone number must be exactly 10 digits.")
	}
	if trimmed == "0000000000" || trimmed == "1111111111" {
		return "", errors.New("Please enter a valid phone number.")
	}
	return trimmed, nil
}

// ValidateEmail: trim + lowercase; domain (setelah '@') harus masuk allow-list.
func ValidateEmail(raw string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	parts := strings.Split(normalized, "@")
	if len(parts) < 2 {
		return "", errors.New("Please enter a valid email address.")
	}
	domain := parts[1]
	for _, allowed := range allowedEmailDomains {
		if domain == allowed {
			return normalized, nil
		}
	}
	return "", errors.New("Email must be from one of these domains: " + strings.Join(allowedEmailDomains, ", "))
}

// ValidateYear menerima angka atau string angka dari form dan membatasi 1–5.
func ValidateYear(raw any) (int, error) {
	var year int
	switch v := raw.(type) {
	case int:
		year = v
	case int64:
		year = int(v)
	case float64:
		year = int(v)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, errors.New("Year must be a number.")
		}
		year = parsed
	default:
		return 0, errors.New("Year must be a number.")
	}
	if year < 1 || year > 5 {
		return 0, errors.New("Year must be between 1 and 5.")
	}
	return year, nil
}

// ValidateRegistration menjalankan semua validasi field dan mengumpulkan
// error per field. Validator murni: uniqueness dicek terpisah lewat store.
func ValidateRegistration(req dto.CreateRegistrationRequest) (*NormalizedRegistration, FieldErrors) {
	fieldErrs := FieldErrors{}
	norm := &NormalizedRegistration{}

	var err error
	if norm.Name, err = ValidateName(req.Name); err != nil {
		fieldErrs["name"] = err.Error()
	}
	if norm.AdmissionNo, err = ValidateAdmissionNo(req.AdmissionNo); err != nil {
		fieldErrs["admission_no"] = err.Error()
	}
	if norm.Email, err = ValidateEmail(req.Email); err != nil {
		fieldErrs["email"] = err.Error()
	}
	if norm.Phone, err = ValidatePhone(req.Phone); err != nil {
		fieldErrs["phone"] = err.Error()
	}
	if norm.Branch, err = ValidateBranch(req.Branch); err != nil {
		fieldErrs["branch"] = err.Error()
	}
	if norm.Year, err = ValidateYear(req.Year); err != nil {
		fieldErrs["year"] = err.Error()
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return norm, nil
}
