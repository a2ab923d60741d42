// Package transport defines the request and response shapes of the leads API.
package transport

import (
	"time"

	"leadtrack_backend/internal/leads/domain"

	"github.com/google/uuid"
)

// Request DTOs

type CreateLeadRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Surname      string `json:"surname" validate:"required,min=1,max=100"`
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	MobileNumber string `json:"mobileNumber" validate:"required,min=1,max=30"`

	TelephoneNumber string `json:"telephoneNumber,omitempty" validate:"max=30"`
	WhatsAppNumber  string `json:"whatsappNumber,omitempty" validate:"max=30"`

	CompanyTradingName    string `json:"companyTradingName,omitempty" validate:"max=200"`
	CompanyRegisteredName string `json:"companyRegisteredName,omitempty" validate:"max=200"`
	CompanyAddress        string `json:"companyAddress,omitempty" validate:"max=500"`
	Industry              string `json:"industry,omitempty" validate:"max=100"`
	EmployeeCount         *int   `json:"employeeCount,omitempty" validate:"omitempty,min=0"`
	CompanySize           string `json:"companySize,omitempty" validate:"max=100"`
	AnnualTurnover        string `json:"annualTurnover,omitempty" validate:"max=100"`

	AssignedTo *uuid.UUID `json:"assignedTo,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted qualified proposal negotiation closed_won closed_lost"`
}

type AssignLeadRequest struct {
	AssignedTo *uuid.UUID `json:"assignedTo"`
}

type AddNoteRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

type ListLeadsRequest struct {
	Status   string `form:"status" validate:"omitempty,oneof=new contacted qualified proposal negotiation closed_won closed_lost"`
	Source   string `form:"source" validate:"omitempty,oneof=manual csv_import spreadsheet_import provider_form other"`
	Search   string `form:"search" validate:"max=100"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// ProviderImportRequest carries an already-fetched array of provider lead
// payloads; token exchange and form listing happen upstream.
type ProviderImportRequest struct {
	Leads []map[string]any `json:"leads" validate:"required"`
}

// Response DTOs

type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	AuthorID  uuid.UUID `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

type LeadResponse struct {
	ID         uuid.UUID  `json:"id"`
	Status     string     `json:"status"`
	Source     string     `json:"source"`
	CreatedBy  uuid.UUID  `json:"createdBy"`
	AssignedTo *uuid.UUID `json:"assignedTo,omitempty"`

	Name            string `json:"name"`
	Surname         string `json:"surname"`
	EmailAddress    string `json:"emailAddress"`
	MobileNumber    string `json:"mobileNumber"`
	TelephoneNumber string `json:"telephoneNumber,omitempty"`
	WhatsAppNumber  string `json:"whatsappNumber,omitempty"`

	CompanyTradingName    string `json:"companyTradingName,omitempty"`
	CompanyRegisteredName string `json:"companyRegisteredName,omitempty"`
	CompanyAddress        string `json:"companyAddress,omitempty"`
	Industry              string `json:"industry,omitempty"`
	EmployeeCount         *int   `json:"employeeCount,omitempty"`
	CompanySize           string `json:"companySize,omitempty"`
	AnnualTurnover        string `json:"annualTurnover,omitempty"`

	ProviderData map[string]string `json:"providerData,omitempty"`
	AdID         *string           `json:"adId,omitempty"`
	CampaignID   *string           `json:"campaignId,omitempty"`
	FormID       *string           `json:"formId,omitempty"`

	Extra map[string]string `json:"extraFields,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToLeadResponse maps a domain lead onto the wire shape.
func ToLeadResponse(lead domain.Lead) LeadResponse {
	return LeadResponse{
		ID:                    lead.ID,
		Status:                string(lead.Status),
		Source:                string(lead.Source),
		CreatedBy:             lead.CreatedBy,
		AssignedTo:            lead.AssignedTo,
		Name:                  lead.Name,
		Surname:               lead.Surname,
		EmailAddress:          lead.EmailAddress,
		MobileNumber:          lead.MobileNumber,
		TelephoneNumber:       lead.TelephoneNumber,
		WhatsAppNumber:        lead.WhatsAppNumber,
		CompanyTradingName:    lead.CompanyTradingName,
		CompanyRegisteredName: lead.CompanyRegisteredName,
		CompanyAddress:        lead.CompanyAddress,
		Industry:              lead.Industry,
		EmployeeCount:         lead.EmployeeCount,
		CompanySize:           lead.CompanySize,
		AnnualTurnover:        lead.AnnualTurnover,
		ProviderData:          emptyToNil(lead.ProviderData),
		AdID:                  lead.AdID,
		CampaignID:            lead.CampaignID,
		FormID:                lead.FormID,
		Extra:                 emptyToNil(lead.Extra),
		CreatedAt:             lead.CreatedAt,
		UpdatedAt:             lead.UpdatedAt,
	}
}

// ToLeadResponses maps a slice of domain leads.
func ToLeadResponses(leads []domain.Lead) []LeadResponse {
	out := make([]LeadResponse, len(leads))
	for i, lead := range leads {
		out[i] = ToLeadResponse(lead)
	}
	return out
}

// ToNoteResponse maps a domain note onto the wire shape.
func ToNoteResponse(note domain.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Content:   note.Content,
		AuthorID:  note.AuthorID,
		CreatedAt: note.CreatedAt,
	}
}

type PaginationResponse struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalLeads  int  `json:"totalLeads"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

type LeadListResponse struct {
	Success    bool               `json:"success"`
	Data       []LeadResponse     `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

type ImportResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	ImportedCount int            `json:"importedCount"`
	ErrorCount    int            `json:"errorCount"`
	Leads         []LeadResponse `json:"leads"`
	Errors        []string       `json:"errors,omitempty"`
}

type StatsResponse struct {
	TotalLeads     int            `json:"totalLeads"`
	StatusCounts   map[string]int `json:"statusCounts"`
	SourceCounts   map[string]int `json:"sourceCounts"`
	MyLeads        int            `json:"myLeads"`
	ConversionRate float64        `json:"conversionRate"`
}

type AssigneeStatsResponse struct {
	AssigneeID     uuid.UUID `json:"assigneeId"`
	Name           string    `json:"name"`
	TotalLeads     int       `json:"totalLeads"`
	WonLeads       int       `json:"wonLeads"`
	LostLeads      int       `json:"lostLeads"`
	ConversionRate float64   `json:"conversionRate"`
}

type ImportReportResponse struct {
	ID            uuid.UUID `json:"id"`
	Source        string    `json:"source"`
	FileName      string    `json:"fileName,omitempty"`
	ImportedCount int       `json:"importedCount"`
	ErrorCount    int       `json:"errorCount"`
	Errors        []string  `json:"errors,omitempty"`
	CreatedBy     uuid.UUID `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

func emptyToNil(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	return m
}
