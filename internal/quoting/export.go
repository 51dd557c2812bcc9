package quoting

import (
	"context"
	"fmt"

	"furniquote/internal/export"
	"furniquote/internal/metrics"
	"furniquote/internal/mqx"
	"furniquote/internal/quote"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatPNG  Format = "png"
)

// Artifact is a rendered quotation.
type Artifact struct {
	Quotation   export.Quotation
	ContentType string
	FileName    string
	Body        []byte
}

// Quotation builds and renders the project's quotation in format.
func (s *Service) Quotation(ctx context.Context, ownerID, id string, format Format) (Artifact, error) {
	q, p, err := s.quotation(ctx, ownerID, id)
	if err != nil {
		return Artifact{}, err
	}
	a := Artifact{Quotation: q}
	switch format {
	case FormatJSON, "":
		format = FormatJSON
		a.ContentType = "application/json"
		a.FileName = export.FileName(q, "json")
	case FormatText:
		a.ContentType = "text/plain; charset=utf-8"
		a.FileName = export.FileName(q, "txt")
		a.Body = []byte(export.RenderText(q))
	case FormatPNG:
		body, err := export.RenderPNG(q)
		if err != nil {
			return Artifact{}, fmt.Errorf("render quotation: %w", err)
		}
		a.ContentType = "image/png"
		a.FileName = export.FileName(q, "png")
		a.Body = body
	default:
		return Artifact{}, &quote.ValidationError{Field: "format", Message: fmt.Sprintf("unsupported format %q", format)}
	}
	metrics.IncrementQuoteExported(string(format))
	s.emit(ctx, p, mqx.QuoteExported, map[string]any{"format": format, "number": q.Number, "final_total": q.Totals.FinalTotal})
	return a, nil
}

func (s *Service) quotation(ctx context.Context, ownerID, id string) (export.Quotation, *quote.Project, error) {
	p, err := s.load(ctx, ownerID, id)
	if err != nil {
		return export.Quotation{}, nil, err
	}
	cat, err := s.snapshot(ctx)
	if err != nil {
		return export.Quotation{}, nil, err
	}
	q, err := export.BuildQuotation(p, cat, s.business(), s.env().Now())
	return q, p, err
}

// Booking is the outbound deep link asking the business to book the project.
type Booking struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

func (s *Service) Booking(ctx context.Context, ownerID, id string) (Booking, error) {
	q, p, err := s.quotation(ctx, ownerID, id)
	if err != nil {
		return Booking{}, err
	}
	msg := export.BookingMessage(q)
	b := Booking{Message: msg, Link: export.BookingLink(s.business().WhatsApp, msg)}
	s.emit(ctx, p, mqx.BookingRequested, map[string]any{"number": q.Number, "final_total": q.Totals.FinalTotal, "link": b.Link})
	return b, nil
}
