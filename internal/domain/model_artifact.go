package domain

import (
	"time"

	"github.com/google/uuid"
)

// ModelArtifact is a stored regression artifact. Only one row is active at a time.
type ModelArtifact struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_model_artifacts_name_version" json:"name"`
	Version        string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_model_artifacts_name_version" json:"version"`
	Intercept      float64   `gorm:"not null" json:"intercept"`
	Wake           float64   `gorm:"not null" json:"wake"`
	EstimatedSleep float64   `gorm:"not null" json:"estimated_sleep"`
	Coffee         float64   `gorm:"not null" json:"coffee"`
	Active         bool      `gorm:"not null;default:false;index" json:"active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ModelArtifact) TableName() string {
	return "model_artifacts"
}

// ModelArtifactFilter selects one page of the registry listing.
type ModelArtifactFilter struct {
	Cursor string
	Limit  int
}

// ModelArtifactList is a page of artifacts, newest first.
type ModelArtifactList struct {
	Data       []ModelArtifact `json:"data"`
	NextCursor string          `json:"next_cursor,omitempty"`
}
