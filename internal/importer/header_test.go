package importer_test

import (
	"reflect"
	"testing"

	"github.com/shashiranjanraj/leadhub/internal/importer"
)

func TestNormalizeHeader_SynonymTable(t *testing.T) {
	cases := map[string]string{
		"Website Name":          "websiteName",
		"website url ":          "websiteUrl",
		"First Name":            "firstName",
		"LAST NAME":             "lastName",
		"Job Title":             "jobTitle",
		"Email":                 "email",
		"E-Mail":                "email",
		"Facebook Pixel Status": "facebookPixel",
		"facebook_pixel":        "facebookPixel",
		"fb pixel":              "facebookPixel",
		"IG":                    "instagram",
		"insta":                 "instagram",
		"Company":               "websiteName",
		"cost":                  "price",
		"Lead Price":            "price",
		"Tik Tok":               "tiktok",
		"":                      "",
		"   ":                   "",
	}
	for in, want := range cases {
		if got := importer.NormalizeHeader(in); got != want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeHeader_SubstringHeuristics(t *testing.T) {
	cases := map[string]string{
		"Customer First Name":   "firstName",
		"contact last name":     "lastName",
		"The Website Name Col":  "websiteName",
		"company website url":   "websiteUrl",
		"primary job title":     "jobTitle",
		"FB Ads Pixel":          "facebookPixel",
		"facebook pixel id":     "facebookPixel",
		"Some Unknown Column 7": "someunknowncolumn",
	}
	for in, want := range cases {
		if got := importer.NormalizeHeader(in); got != want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeHeader_Idempotent(t *testing.T) {
	inputs := []string{
		"Facebook Pixel Status", "facebook_pixel", "Website Name", "First Name",
		"Company", "Email", "IG", "Tik Tok", "Lead Price", "Random Junk Header",
	}
	for _, in := range inputs {
		once := importer.NormalizeHeader(in)
		twice := importer.NormalizeHeader(once)
		if once != twice {
			t.Errorf("NormalizeHeader not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestNormalizeHeaders_BareNameIsFallbackOnly(t *testing.T) {
	// Explicit "First Name" elsewhere in the row wins; the bare "Name"
	// column is dropped instead of overriding it.
	got := importer.NormalizeHeaders([]string{"Name", "First Name", "Email"})
	want := []string{"", "firstName", "email"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeHeaders = %v, want %v", got, want)
	}

	// With no competing column the bare "Name" claims firstName.
	got = importer.NormalizeHeaders([]string{"Name", "Company", "Email", "Price"})
	want = []string{"firstName", "websiteName", "email", "price"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeHeaders = %v, want %v", got, want)
	}
}

func TestNormalizeHeaders_BareCompanyIsFallbackOnly(t *testing.T) {
	got := importer.NormalizeHeaders([]string{"Company", "Website Name"})
	want := []string{"", "websiteName"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeHeaders = %v, want %v", got, want)
	}
}
