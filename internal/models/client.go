package models

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/bako110/pausemanager/internal/validation"
)

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

// Client is a company account managed by the operator. The gateway is
// authoritative for persistence; ids and timestamps are server-assigned.
type Client struct {
	ID             string       `json:"_id,omitempty"`
	Name           string       `json:"name"`
	Contact        string       `json:"contact"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone,omitempty"`
	Address        string       `json:"address,omitempty"`
	ContractNumber string       `json:"contractNumber"`
	Status         ClientStatus `json:"status"`
	Notes          string       `json:"notes,omitempty"`
	CreatedAt      time.Time    `json:"createdAt,omitempty"`
	UpdatedAt      time.Time    `json:"updatedAt,omitempty"`
}

// Normalize trims free-text fields and lowercases the email, the same
// cleanup the form applies before submitting.
func (c *Client) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Contact = strings.TrimSpace(c.Contact)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.ContractNumber = strings.TrimSpace(c.ContractNumber)
	c.Notes = strings.TrimSpace(c.Notes)
	if c.Status == "" {
		c.Status = ClientActive
	}
}

func (c Client) Validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", c.Name, v)
	validation.Required("contact", c.Contact, v)
	validation.Email("email", c.Email, v)
	validation.Required("contractNumber", c.ContractNumber, v)
	return v
}

// GenerateContractNumber produces a CT-YYYYMM-NNN candidate. The operator
// may still type a contract number manually; this is only a suggestion.
func GenerateContractNumber(now time.Time) string {
	return fmt.Sprintf("CT-%04d%02d-%03d", now.Year(), int(now.Month()), rand.Intn(1000))
}
