package service

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/bitsphere-automation/LD-InvGen/internal/config"
	"github.com/bitsphere-automation/LD-InvGen/internal/domain/entity"
	"github.com/bitsphere-automation/LD-InvGen/internal/domain/repository"
	"github.com/bitsphere-automation/LD-InvGen/pkg/apperror"
	"github.com/bitsphere-automation/LD-InvGen/pkg/canvas"
	"github.com/bitsphere-automation/LD-InvGen/pkg/money"
)

// ExportService turns a session state into a rendered document. Preview and
// PDF export both go through BuildDocument and the same layout engine, only
// the canvas differs, so what the preview shows is what the PDF contains.
type ExportService struct {
	sessionRepo repository.SessionRepository
	cfg         *config.InvoiceConfig
}

// NewExportService creates a new export service
func NewExportService(sessionRepo repository.SessionRepository, cfg *config.InvoiceConfig) *ExportService {
	return &ExportService{sessionRepo: sessionRepo, cfg: cfg}
}

// ExportResult is a rendered PDF with its download file name.
type ExportResult struct {
	FileName string
	Data     []byte
}

// ExportPDF renders a session into a PDF document.
func (s *ExportService) ExportPDF(ctx context.Context, id uuid.UUID) (*ExportResult, error) {
	state, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, apperror.NewNotFoundError("Session")
	}

	doc := s.BuildDocument(state)
	cv := canvas.NewPDF()
	NewLayoutEngine(cv).Render(doc)

	data, err := cv.Output()
	if err != nil {
		return nil, err
	}
	return &ExportResult{FileName: doc.FileName(), Data: data}, nil
}

// Preview lays out a session and returns the draw operations per page.
func (s *ExportService) Preview(ctx context.Context, id uuid.UUID) ([]canvas.PageOps, error) {
	state, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, apperror.NewNotFoundError("Session")
	}

	doc := s.BuildDocument(state)
	rec := canvas.NewRecorder()
	NewLayoutEngine(rec).Render(doc)
	return rec.Pages(), nil
}

// BuildDocument composes the render-ready document from a session state:
// company block by project code, derived totals, and every money value
// formatted with the session's currency symbol.
func (s *ExportService) BuildDocument(state *entity.InvoiceState) *entity.InvoiceDocument {
	company := s.cfg.CompanyFor(state.Project.Code.String())
	totals := entity.ComputeTotals(state.Items, state.GSTPercent, state.InvoiceType, state.PaymentMade)
	cur := state.Currency

	items := make([]entity.DocumentItem, 0, len(state.Items))
	for _, item := range state.Items {
		items = append(items, entity.DocumentItem{
			Description: item.Description,
			Quantity:    money.FormatAmount(item.Quantity),
			Rate:        money.FormatAmount(item.UnitPrice),
			Amount:      money.FormatWithSymbol(cur, item.Amount()),
		})
	}

	doc := &entity.InvoiceDocument{
		Title:         state.InvoiceType.String(),
		Company:       toCompanyBlock(company),
		ProjectCode:   state.Project.Code,
		InvoiceNumber: state.InvoiceNumber,
		NumberDisplay: entity.FormatInvoiceNumber(state.InvoiceNumber),
		DateDisplay:   state.Date.Format("02/01/2006"),
		ProjectName:   state.Project.Name,
		CurrencyCode:  cur.String(),
		ClientLines:   state.Client.Lines(),
		Items:         items,
		Subtotal:      money.FormatWithSymbol(cur, totals.Subtotal),
		ShowTax:       state.InvoiceType.AppliesTax(),
		Total:         money.FormatWithSymbol(cur, totals.Total),
		PaymentMade:   money.FormatWithSymbol(cur, totals.PaymentMade),
		BalanceDue:    money.FormatWithSymbol(cur, totals.BalanceDue),
		TermsIntro:    s.cfg.TermsIntro,
		TermsLines:    s.cfg.TermsLines,
		PreparedBy:    state.PreparedBy,
		VerifiedBy:    state.VerifiedBy,
	}
	if doc.Title == "" {
		doc.Title = "Invoice"
	}
	if doc.ProjectName == "" {
		doc.ProjectName = "Ongoing Work"
	}
	if doc.ShowTax {
		doc.TaxLabel = "GST (" + strconv.FormatFloat(clampedPercentLabel(state.GSTPercent), 'f', -1, 64) + "%):"
		doc.TaxAmount = money.FormatWithSymbol(cur, totals.TaxAmount)
	}

	doc.Logo, doc.LogoFormat = s.loadLogo(company.LogoFile)
	return doc
}

func toCompanyBlock(c config.CompanyConfig) entity.CompanyBlock {
	return entity.CompanyBlock{
		Name:         c.Name,
		AddressLines: c.AddressLines,
		Phone:        c.Phone,
		Email:        c.Email,
	}
}

func clampedPercentLabel(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// loadLogo reads the company logo from the asset directory. A missing or
// unreadable logo is logged and skipped; it never blocks an export.
func (s *ExportService) loadLogo(file string) ([]byte, string) {
	if file == "" {
		return nil, ""
	}
	data, err := os.ReadFile(filepath.Join(s.cfg.AssetDir, file))
	if err != nil {
		log.Printf("Warning: logo %s not readable, rendering without it: %v", file, err)
		return nil, ""
	}
	format := strings.TrimPrefix(strings.ToUpper(filepath.Ext(file)), ".")
	if format == "JPEG" {
		format = "JPG"
	}
	return data, format
}
