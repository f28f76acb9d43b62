package dtos

import (
	"time"

	"b2bpro-backend/models"
	"b2bpro-backend/utils"

	"github.com/google/uuid"
)

// Admin list rows carry the derived display columns the operator screens
// render: the checked glyph and, for companies, an external map link. Pure
// per-row formatting, no state.

type ApplicationAdminRow struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	PhoneNumber    string    `json:"phone_number"`
	CompanyName    string    `json:"company_name"`
	Checked        bool      `json:"checked"`
	CheckedDisplay string    `json:"checked_display"`
	Date           time.Time `json:"date"`
}

func NewApplicationAdminRow(a models.Application) ApplicationAdminRow {
	return ApplicationAdminRow{
		ID:             a.ID,
		Name:           a.Name,
		Location:       a.Location,
		PhoneNumber:    a.PhoneNumber,
		CompanyName:    a.CompanyName,
		Checked:        a.Checked,
		CheckedDisplay: utils.CheckedGlyph(a.Checked),
		Date:           a.Date,
	}
}

type QuestionAdminRow struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	PhoneNumber    string    `json:"phone_number"`
	Text           string    `json:"text"`
	Checked        bool      `json:"checked"`
	CheckedDisplay string    `json:"checked_display"`
	Date           time.Time `json:"date"`
}

func NewQuestionAdminRow(q models.Question) QuestionAdminRow {
	return QuestionAdminRow{
		ID:             q.ID,
		Name:           q.Name,
		Location:       q.Location,
		PhoneNumber:    q.PhoneNumber,
		Text:           q.Text,
		Checked:        q.Checked,
		CheckedDisplay: utils.CheckedGlyph(q.Checked),
		Date:           q.Date,
	}
}

type CompanyAdminRow struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Country     models.Country `json:"country"`
	CountryName string         `json:"country_name"`
	Location    string         `json:"location"`
	LocationURL string         `json:"location_url"`
	CreatedAt   time.Time      `json:"created_at"`
}

func NewCompanyAdminRow(c models.Company) CompanyAdminRow {
	return CompanyAdminRow{
		ID:          c.ID,
		Name:        c.Name,
		Country:     c.Country,
		CountryName: c.Country.Name(),
		Location:    c.Location,
		LocationURL: utils.MapsLink(c.Location),
		CreatedAt:   c.CreatedAt,
	}
}
