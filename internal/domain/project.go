package domain

import "time"

// Project groups the territories a user is evaluating.
type Project struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	CreatedAt        time.Time `json:"created_at"`
	TerritoriesCount int       `json:"territories_count"`
}

// ProjectCreate is the payload for creating a project.
type ProjectCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Validate checks the creation payload.
func (p ProjectCreate) Validate() error {
	if len(p.Name) < 1 || len(p.Name) > 200 {
		return ErrValidation
	}
	return nil
}
