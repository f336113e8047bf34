// internal/common/validation/schemas.go
package validation

// Operation input schemas, validated once at the HTTP boundary. Handlers
// decode the raw body into a map, run Validate against the matching
// schema, and only then bind to the typed input struct.

// EmailPattern accepts local@domain.tld shapes only.
const EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

var statusEnum = []interface{}{"available", "sold", "pending"}

var variationSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"name"},
	"properties": map[string]interface{}{
		"id":             map[string]interface{}{"type": "string"},
		"name":           map[string]interface{}{"type": "string", "minLength": 1},
		"price":          map[string]interface{}{"type": "number", "minimum": 0},
		"bedrooms":       map[string]interface{}{"type": "integer", "minimum": 0},
		"bathrooms":      map[string]interface{}{"type": "integer", "minimum": 0},
		"bq":             map[string]interface{}{"type": "integer", "minimum": 0},
		"landSize":       map[string]interface{}{"type": "number", "minimum": 0},
		"unitsAvailable": map[string]interface{}{"type": "integer", "minimum": 0},
		"status":         map[string]interface{}{"type": "string", "enum": statusEnum},
	},
}

var listingProperties = map[string]interface{}{
	"title":       map[string]interface{}{"type": "string", "minLength": 1},
	"description": map[string]interface{}{"type": "string", "minLength": 1},
	"price":       map[string]interface{}{"type": "number", "minimum": 0},
	"priceLabel":  map[string]interface{}{"type": "string"},
	"type":        map[string]interface{}{"type": "string", "enum": []interface{}{"land", "house"}},
	"district":    map[string]interface{}{"type": "string", "minLength": 1},
	"address":     map[string]interface{}{"type": "string", "minLength": 1},
	"latitude":    map[string]interface{}{"type": "number"},
	"longitude":   map[string]interface{}{"type": "number"},
	"bedrooms":    map[string]interface{}{"type": "integer", "minimum": 0},
	"bathrooms":   map[string]interface{}{"type": "integer", "minimum": 0},
	"bq":          map[string]interface{}{"type": "integer", "minimum": 0},
	"landSize":    map[string]interface{}{"type": "number", "minimum": 0},
	"images": map[string]interface{}{
		"type":  "array",
		"items": map[string]interface{}{"type": "string"},
	},
	"features": map[string]interface{}{
		"type":  "array",
		"items": map[string]interface{}{"type": "string"},
	},
	"variations": map[string]interface{}{
		"type":  "array",
		"items": variationSchema,
	},
	"status":   map[string]interface{}{"type": "string", "enum": statusEnum},
	"featured": map[string]interface{}{"type": "boolean"},
}

// ListingSchema covers both create and full update of a listing.
// Coordinates are optional: the district directory supplies a default
// geocode when they are omitted.
var ListingSchema = map[string]interface{}{
	"type":       "object",
	"required":   []interface{}{"title", "description", "price", "type", "district", "address"},
	"properties": listingProperties,
}

var InquirySchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"name", "email", "phone", "message"},
	"properties": map[string]interface{}{
		"name":       map[string]interface{}{"type": "string", "minLength": 1},
		"email":      map[string]interface{}{"type": "string", "pattern": EmailPattern},
		"phone":      map[string]interface{}{"type": "string", "minLength": 1},
		"message":    map[string]interface{}{"type": "string", "minLength": 1},
		"propertyId": map[string]interface{}{"type": "string"},
	},
}

var InquiryStatusSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"status"},
	"properties": map[string]interface{}{
		"status": map[string]interface{}{
			"type": "string",
			"enum": []interface{}{"new", "contacted", "closed"},
		},
	},
}

var BlogPostSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"title", "slug", "content", "author"},
	"properties": map[string]interface{}{
		"title":      map[string]interface{}{"type": "string", "minLength": 1},
		"slug":       map[string]interface{}{"type": "string", "minLength": 1, "pattern": `^[a-z0-9]+(-[a-z0-9]+)*$`},
		"excerpt":    map[string]interface{}{"type": "string"},
		"content":    map[string]interface{}{"type": "string", "minLength": 1},
		"coverImage": map[string]interface{}{"type": "string"},
		"author":     map[string]interface{}{"type": "string", "minLength": 1},
		"status": map[string]interface{}{
			"type": "string",
			"enum": []interface{}{"draft", "published"},
		},
	},
}

var TeamMemberSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"name", "role"},
	"properties": map[string]interface{}{
		"name":         map[string]interface{}{"type": "string", "minLength": 1},
		"role":         map[string]interface{}{"type": "string", "minLength": 1},
		"bio":          map[string]interface{}{"type": "string"},
		"image":        map[string]interface{}{"type": "string"},
		"email":        map[string]interface{}{"type": "string", "pattern": EmailPattern},
		"phone":        map[string]interface{}{"type": "string"},
		"linkedin":     map[string]interface{}{"type": "string"},
		"twitter":      map[string]interface{}{"type": "string"},
		"displayOrder": map[string]interface{}{"type": "integer", "minimum": 0},
		"isActive":     map[string]interface{}{"type": "boolean"},
	},
}

var SettingsSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"whatsapp_number":  map[string]interface{}{"type": "string"},
		"phone_number":     map[string]interface{}{"type": "string"},
		"email":            map[string]interface{}{"type": "string"},
		"instagram_handle": map[string]interface{}{"type": "string"},
		"address":          map[string]interface{}{"type": "string"},
	},
	"additionalProperties": false,
}

var LoginSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"email", "password"},
	"properties": map[string]interface{}{
		"email":    map[string]interface{}{"type": "string", "minLength": 1},
		"password": map[string]interface{}{"type": "string", "minLength": 1},
	},
}
