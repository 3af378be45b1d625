package importer_test

import (
	"testing"
	"time"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/internal/importer"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in       string
		fallback float64
		want     float64
	}{
		{"$1,234.50", 5, 1234.50},
		{"9.99", 5, 9.99},
		{"$5", 5, 5},
		{"", 5, 5},
		{"", 0, 0}, // manual-add context uses fallback 0
		{"free", 5, 5},
		{"-10", 5, 5}, // price never goes negative
		{"  $42  ", 5, 42},
	}
	for _, c := range cases {
		if got := importer.ParsePrice(c.in, c.fallback); got != c.want {
			t.Errorf("ParsePrice(%q, %v) = %v, want %v", c.in, c.fallback, got, c.want)
		}
	}
}

func TestBuildLead_Defaults(t *testing.T) {
	now := time.Now()
	lead, ok := importer.BuildLead(importer.Row{
		"firstName":   "Jane",
		"websiteName": "Acme",
		"email":       "jane@acme.com",
	}, now)
	if !ok {
		t.Fatal("expected row to be kept")
	}
	if lead.Industry != "Other" {
		t.Errorf("industry = %q, want Other", lead.Industry)
	}
	if lead.Price != importer.DefaultPrice {
		t.Errorf("price = %v, want %v", lead.Price, importer.DefaultPrice)
	}
	if lead.Status != models.LeadAvailable {
		t.Errorf("status = %q, want %q", lead.Status, models.LeadAvailable)
	}
	if !lead.CreatedAt.Equal(now) {
		t.Errorf("createdAt = %v, want %v", lead.CreatedAt, now)
	}
}

func TestBuildLead_JunkGate(t *testing.T) {
	// All of email, firstName and websiteName empty: dropped.
	if _, ok := importer.BuildLead(importer.Row{
		"lastName": "Smith",
		"industry": "Finance",
		"price":    "100",
	}, time.Now()); ok {
		t.Error("expected junk row to be dropped")
	}

	// Only websiteName populated: kept.
	if _, ok := importer.BuildLead(importer.Row{"websiteName": "Acme"}, time.Now()); !ok {
		t.Error("expected row with websiteName to be kept")
	}
}

func TestBuildLead_PriceParsing(t *testing.T) {
	lead, ok := importer.BuildLead(importer.Row{
		"email": "x@y.com",
		"price": "$1,000",
	}, time.Now())
	if !ok {
		t.Fatal("expected row to be kept")
	}
	if lead.Price != 1000 {
		t.Errorf("price = %v, want 1000", lead.Price)
	}
}
