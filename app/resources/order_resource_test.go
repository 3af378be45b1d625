package resources

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/leadhub/app/models"
)

func sampleOrder(status string) models.Order {
	return models.Order{
		ID:     primitive.NewObjectID(),
		UserID: primitive.NewObjectID(),
		LeadID: primitive.NewObjectID(),
		LeadData: models.LeadSnapshot{
			FirstName:     "Jane",
			LastName:      "Doe",
			Email:         "jane@acme.com",
			JobTitle:      "Founder",
			WebsiteName:   "Acme",
			WebsiteURL:    "https://acme.com",
			Instagram:     "@janedoe",
			LinkedIn:      "linkedin.com/in/janedoe",
			TikTok:        "@janetok",
			Industry:      "Technology",
			Location:      "Berlin",
			Founded:       "2019",
			FacebookPixel: "yes",
		},
		Price:       9.99,
		Status:      status,
		PurchasedAt: time.Now(),
	}
}

func TestPendingOrderMasksContactFields(t *testing.T) {
	out := (&OrderResource{}).ToArray(sampleOrder(models.OrderPending))
	data := out["leadData"].(map[string]interface{})

	want := map[string]string{
		"email":      "••••••@••••.com",
		"websiteUrl": "https://•••••.com",
		"instagram":  "@••••••",
		"tiktok":     "@••••••",
		"linkedin":   "linkedin.com/••••",
	}
	for field, masked := range want {
		if got := data[field]; got != masked {
			t.Errorf("%s = %v, want masked %q", field, got, masked)
		}
	}
}

func TestPendingOrderOmitsFoundedAndPixel(t *testing.T) {
	out := (&OrderResource{}).ToArray(sampleOrder(models.OrderPending))
	data := out["leadData"].(map[string]interface{})

	if _, present := data["founded"]; present {
		t.Error("founded should be omitted while pending")
	}
	if _, present := data["facebookPixel"]; present {
		t.Error("facebookPixel should be omitted while pending")
	}
}

func TestPendingOrderKeepsIdentityFields(t *testing.T) {
	out := (&OrderResource{}).ToArray(sampleOrder(models.OrderPending))
	data := out["leadData"].(map[string]interface{})

	want := map[string]string{
		"firstName":   "Jane",
		"lastName":    "Doe",
		"jobTitle":    "Founder",
		"websiteName": "Acme",
		"industry":    "Technology",
		"location":    "Berlin",
	}
	for field, value := range want {
		if got := data[field]; got != value {
			t.Errorf("%s = %v, want %q", field, got, value)
		}
	}
}

func TestConfirmedOrderShowsEverything(t *testing.T) {
	order := sampleOrder(models.OrderConfirmed)
	out := (&OrderResource{}).ToArray(order)
	data := out["leadData"].(map[string]interface{})

	want := map[string]string{
		"email":         order.LeadData.Email,
		"websiteUrl":    order.LeadData.WebsiteURL,
		"instagram":     order.LeadData.Instagram,
		"tiktok":        order.LeadData.TikTok,
		"linkedin":      order.LeadData.LinkedIn,
		"founded":       order.LeadData.Founded,
		"facebookPixel": order.LeadData.FacebookPixel,
	}
	for field, value := range want {
		if got := data[field]; got != value {
			t.Errorf("%s = %v, want %q", field, got, value)
		}
	}
}

func TestMissingStatusTreatedAsPending(t *testing.T) {
	// Orders written before the status field existed decode with an empty
	// status and must stay masked.
	out := (&OrderResource{}).ToArray(sampleOrder(""))
	data := out["leadData"].(map[string]interface{})

	if data["email"] != "••••••@••••.com" {
		t.Errorf("email = %v, want masked", data["email"])
	}
	if out["status"] != models.OrderPending {
		t.Errorf("status = %v, want %q", out["status"], models.OrderPending)
	}
}

func TestAdminResourceNeverMasks(t *testing.T) {
	out := (&AdminOrderResource{}).ToArray(sampleOrder(models.OrderPending))

	data, ok := out["leadData"].(models.LeadSnapshot)
	if !ok {
		t.Fatalf("leadData has type %T, want LeadSnapshot", out["leadData"])
	}
	if data.Email != "jane@acme.com" {
		t.Errorf("admin email = %q, want real value", data.Email)
	}
}
