package models

// SiteSettings is the small key/value block shown in the site footer
// and contact widgets.
type SiteSettings struct {
	WhatsappNumber  string `json:"whatsapp_number"`
	PhoneNumber     string `json:"phone_number"`
	Email           string `json:"email"`
	InstagramHandle string `json:"instagram_handle"`
	Address         string `json:"address"`
}

// DefaultSettings returns the values served before an admin has saved
// anything.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		WhatsappNumber:  "2348000000000",
		PhoneNumber:     "+234 800 000 0000",
		Email:           "hello@sabiconsults.com",
		InstagramHandle: "sabi_consults",
		Address:         "Abuja, Nigeria",
	}
}

// Map flattens the settings into storage keys.
func (s SiteSettings) Map() map[string]string {
	return map[string]string{
		"whatsapp_number":  s.WhatsappNumber,
		"phone_number":     s.PhoneNumber,
		"email":            s.Email,
		"instagram_handle": s.InstagramHandle,
		"address":          s.Address,
	}
}

// ApplyMap overlays stored key/value pairs onto s, skipping empty values.
func (s *SiteSettings) ApplyMap(values map[string]string) {
	if v := values["whatsapp_number"]; v != "" {
		s.WhatsappNumber = v
	}
	if v := values["phone_number"]; v != "" {
		s.PhoneNumber = v
	}
	if v := values["email"]; v != "" {
		s.Email = v
	}
	if v := values["instagram_handle"]; v != "" {
		s.InstagramHandle = v
	}
	if v := values["address"]; v != "" {
		s.Address = v
	}
}
