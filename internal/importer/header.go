package importer

import "strings"

// Canonical field keys produced by header normalization. Only these keys
// are read back out when a Lead document is built.
const (
	FieldFirstName     = "firstName"
	FieldLastName      = "lastName"
	FieldEmail         = "email"
	FieldJobTitle      = "jobTitle"
	FieldWebsiteName   = "websiteName"
	FieldWebsiteURL    = "websiteUrl"
	FieldInstagram     = "instagram"
	FieldLinkedIn      = "linkedin"
	FieldTikTok        = "tiktok"
	FieldIndustry      = "industry"
	FieldLocation      = "location"
	FieldFounded       = "founded"
	FieldFacebookPixel = "facebookPixel"
	FieldPrice         = "price"
)

// synonyms is the exact-match table of human-entered headers to canonical
// field keys. Keys are lowercased and trimmed before lookup, so entries
// include the lowercased canonical forms themselves — that keeps
// NormalizeHeader idempotent.
var synonyms = map[string]string{
	"website name": FieldWebsiteName,
	"websitename":  FieldWebsiteName,
	"company":      FieldWebsiteName,
	"company name": FieldWebsiteName,
	"business":     FieldWebsiteName,

	"website url": FieldWebsiteURL,
	"websiteurl":  FieldWebsiteURL,
	"website":     FieldWebsiteURL,
	"url":         FieldWebsiteURL,
	"site":        FieldWebsiteURL,

	"first name": FieldFirstName,
	"firstname":  FieldFirstName,
	"name":       FieldFirstName, // fallback only — see NormalizeHeaders

	"last name": FieldLastName,
	"lastname":  FieldLastName,
	"surname":   FieldLastName,

	"email":         FieldEmail,
	"email address": FieldEmail,
	"e-mail":        FieldEmail,

	"job title": FieldJobTitle,
	"jobtitle":  FieldJobTitle,
	"title":     FieldJobTitle,
	"role":      FieldJobTitle,
	"position":  FieldJobTitle,

	"instagram": FieldInstagram,
	"insta":     FieldInstagram,
	"ig":        FieldInstagram,

	"linkedin":     FieldLinkedIn,
	"linkedin url": FieldLinkedIn,

	"tiktok":  FieldTikTok,
	"tik tok": FieldTikTok,

	"industry": FieldIndustry,
	"sector":   FieldIndustry,
	"niche":    FieldIndustry,

	"location": FieldLocation,
	"city":     FieldLocation,
	"country":  FieldLocation,

	"founded":      FieldFounded,
	"founded year": FieldFounded,
	"year founded": FieldFounded,

	"facebook pixel":        FieldFacebookPixel,
	"facebookpixel":         FieldFacebookPixel,
	"facebook_pixel":        FieldFacebookPixel,
	"fb pixel":              FieldFacebookPixel,
	"facebook pixel status": FieldFacebookPixel,

	"price":      FieldPrice,
	"cost":       FieldPrice,
	"rate":       FieldPrice,
	"lead price": FieldPrice,
}

// NormalizeHeader maps one human-entered column header to a canonical Lead
// field key. Pure and deterministic: the same input always yields the same
// key regardless of surrounding headers. Empty input maps to "" and the
// column is dropped.
//
// Order: lowercase+trim, exact synonym table, substring heuristics, then a
// strip-non-letters fallback. A fallback key that matches no Lead field is
// harmless — it is simply never read back out.
func NormalizeHeader(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return ""
	}

	if canonical, ok := synonyms[lower]; ok {
		return canonical
	}

	switch {
	case strings.Contains(lower, "website") && strings.Contains(lower, "name"):
		return FieldWebsiteName
	case strings.Contains(lower, "website") && strings.Contains(lower, "url"):
		return FieldWebsiteURL
	case strings.Contains(lower, "first") && strings.Contains(lower, "name"):
		return FieldFirstName
	case strings.Contains(lower, "last") && strings.Contains(lower, "name"):
		return FieldLastName
	case strings.Contains(lower, "job") && strings.Contains(lower, "title"):
		return FieldJobTitle
	case strings.Contains(lower, "facebook") && strings.Contains(lower, "pixel"):
		return FieldFacebookPixel
	case strings.Contains(lower, "fb") && strings.Contains(lower, "pixel"):
		return FieldFacebookPixel
	}

	return stripNonAlpha(lower)
}

// NormalizeHeaders maps a whole header row. Bare "name" and "company"
// columns are low-priority fallbacks: when another column in the same row
// already claims firstName or websiteName, the fallback column is dropped
// rather than letting it override the explicit header.
func NormalizeHeaders(raw []string) []string {
	out := make([]string, len(raw))
	fallback := make([]bool, len(raw))

	claimed := map[string]bool{}
	for i, h := range raw {
		key := NormalizeHeader(h)
		out[i] = key

		lower := strings.ToLower(strings.TrimSpace(h))
		fallback[i] = lower == "name" || lower == "company"
		if key != "" && !fallback[i] {
			claimed[key] = true
		}
	}

	for i := range out {
		if fallback[i] && claimed[out[i]] {
			out[i] = ""
		}
	}
	return out
}

func stripNonAlpha(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
