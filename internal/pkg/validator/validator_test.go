package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsEmpty(c.input), "IsEmpty(%q)", c.input)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		assert.True(t, IsValidUUID(uuid), uuid)
	}
	for _, uuid := range invalid {
		assert.False(t, IsValidUUID(uuid), uuid)
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		assert.True(t, ok, s)
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		assert.False(t, ok, s)
	}
}

func TestIsValidMonth(t *testing.T) {
	m, ok := IsValidMonth("2024-02")
	assert.True(t, ok)
	assert.Equal(t, 2, int(m.Month()))

	for _, s := range []string{"2024-13", "2024-2", "2024-02-01", ""} {
		_, ok := IsValidMonth(s)
		assert.False(t, ok, s)
	}
}

func TestIsValidTime(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"09:00", "09:00", true},
		{"23:59", "23:59", true},
		{"17:30:00", "17:30", true},
		{"24:00", "", false},
		{"9:00", "", false},
		{"12:60", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := IsValidTime(c.input)
		assert.Equal(t, c.ok, ok, c.input)
		assert.Equal(t, c.want, got, c.input)
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("2024-0001"))
	assert.False(t, IsValidEmployeeCode("20240001"))
	assert.False(t, IsValidEmployeeCode("2024-01"))
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	assert.True(t, IsInSlice("a", slice))
	assert.False(t, IsInSlice("d", slice))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	assert.Equal(t, "email: invalid; phone: required", errs.Error())
}

func TestValidationErrors_ToMap(t *testing.T) {
	var errs ValidationErrors
	errs.Add("email", "invalid")
	errs.Add("phone", "required")

	assert.Equal(t, map[string]string{"email": "invalid", "phone": "required"}, errs.ToMap())
}

func TestValidationErrors_Err(t *testing.T) {
	var errs ValidationErrors
	assert.NoError(t, errs.Err())

	errs.Add("name", "name is required")
	assert.Error(t, errs.Err())
}

func TestPagination(t *testing.T) {
	var errs ValidationErrors
	page, limit := 0, 0
	Pagination(&errs, &page, &limit)
	assert.Empty(t, errs)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)

	page, limit = -1, 101
	Pagination(&errs, &page, &limit)
	assert.Len(t, errs, 2)
}
