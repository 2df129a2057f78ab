package handlers

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

// CreateCompanyParams defines the body for creating a company
type CreateCompanyParams struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status,omitempty"`
}

// Validate validates the parameters for creating a company
func (p CreateCompanyParams) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgNameRequired))
	}
	return validateCompanyFields(p.Email, p.Status)
}

// UpdateCompanyParams defines the body for updating a company, empty fields are left unchanged
type UpdateCompanyParams struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status,omitempty"`
}

// Validate validates the parameters for updating a company
func (p UpdateCompanyParams) Validate() error {
	if p == (UpdateCompanyParams{}) {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgNoFieldsToUpdate))
	}
	return validateCompanyFields(p.Email, p.Status)
}

func validateCompanyFields(email, status string) error {
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf("%s", strings.ToLower(ErrMsgInvalidEmail))
		}
	}
	if status != "" {
		if _, err := models.ParseCompanyStatus(status); err != nil {
			return err
		}
	}
	return nil
}
