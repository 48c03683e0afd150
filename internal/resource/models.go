package resource

import "time"

// NoStoragePath is the file_path sentinel recorded when object storage
// is disabled for the running environment.
const NoStoragePath = "no-storage"

// Resource represents one uploaded file and its classification metadata.
// Storage columns stay nil for rows created while object storage was off.
type Resource struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    *string   `json:"category"`
	Language    *string   `json:"language"`
	Provider    *string   `json:"provider"`
	Role        *string   `json:"role"`
	FileName    string    `json:"file_name"`
	FilePath    string    `json:"file_path"`
	S3Key       *string   `json:"s3_key"`
	S3Bucket    *string   `json:"s3_bucket"`
	FileSize    *int64    `json:"file_size"`
	MimeType    *string   `json:"mime_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UploadInput is the normalized set of metadata fields accepted for upload.
type UploadInput struct {
	Title       string
	Description string
	Category    string
	Language    string
	Provider    string
	Role        string
}

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

// BreakdownEntry is one group of a group-by-count aggregation. Value is
// nil for rows whose column is null.
type BreakdownEntry struct {
	Value *string `json:"value"`
	Count int64   `json:"count"`
}

// Summary aggregates the stored resources in a single view.
type Summary struct {
	TotalResources      int64            `json:"total_resources"`
	TotalSize           int64            `json:"total_size"`
	CategoriesBreakdown []BreakdownEntry `json:"categories_breakdown"`
	LanguagesBreakdown  []BreakdownEntry `json:"languages_breakdown"`
	ProvidersBreakdown  []BreakdownEntry `json:"providers_breakdown"`
	RolesBreakdown      []BreakdownEntry `json:"roles_breakdown"`
}

// Closed enumerations for the classification fields.
var (
	ValidCategories = []string{"tutorial", "documentation", "template", "example", "guide"}
	ValidLanguages  = []string{"english", "italian", "spanish", "french", "german", "portuguese", "dutch", "chinese", "japanese", "korean"}
	ValidProviders  = []string{"pack", "google", "aws", "amazon"}
	ValidRoles      = []string{"Mentor / Coach", "Mentee / Coachee"}
)
