package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDomain(t *testing.T) {
	valid := []string{
		"example.com",
		"example.co.uk",
		"hello-world.org",
		"sub.domain.example.com",
		"xn--bcher-kva.example",
	}
	for _, domain := range valid {
		assert.NoError(t, ValidateDomain(domain), domain)
	}

	invalid := []string{
		"",
		"111",
		"===",
		"@example.com",
		"someone@example.com",
		" example.com",
		"example.com ",
		"example",
		"-example.com",
		"example-.com",
		"example..com",
		"example.c-",
	}
	for _, domain := range invalid {
		assert.Error(t, ValidateDomain(domain), "%q should not validate", domain)
	}
}

func TestEmailDomain(t *testing.T) {
	assert.Equal(t, "example.com", EmailDomain("someone@example.com"))
	assert.Equal(t, "example.com", EmailDomain("SOMEONE@EXAMPLE.COM"))
	assert.Equal(t, "example.com", EmailDomain(`"odd@local"@example.com`))
	assert.Equal(t, "", EmailDomain("no-at-sign"))
	assert.Equal(t, "", EmailDomain(""))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "acme-employees", Slugify("Acme Employees"))
	assert.Equal(t, "acme-employees-2", Slugify("acme Employees 2"))
	assert.Equal(t, "cafe-crew", Slugify("  Cafe   Crew!  "))
	assert.Equal(t, "", Slugify("!!!"))
}
