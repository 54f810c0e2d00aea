package printing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/printhub/backend/internal/domain/printing"
	"go.uber.org/zap"
)

// ErrUnsupportedTemplateExtension is returned for template files that are
// neither HTML sources nor prebuilt PDFs.
var ErrUnsupportedTemplateExtension = errors.New("unsupported template extension")

// TemplateLabelGenerator renders label artifacts from template files. HTML
// templates are compiled with the record parameters and printed to PDF;
// .pdf files are used as prebuilt artifacts.
type TemplateLabelGenerator struct {
	resolver *TemplateFileResolver
	renderer PDFRenderer
	widthMM  float64
	heightMM float64
	logger   *zap.Logger
}

// NewTemplateLabelGenerator creates a label generator
func NewTemplateLabelGenerator(resolver *TemplateFileResolver, renderer PDFRenderer, widthMM, heightMM float64, logger *zap.Logger) *TemplateLabelGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if widthMM <= 0 {
		widthMM = DefaultLabelWidthMM
	}
	if heightMM <= 0 {
		heightMM = DefaultLabelHeightMM
	}
	return &TemplateLabelGenerator{
		resolver: resolver,
		renderer: renderer,
		widthMM:  widthMM,
		heightMM: heightMM,
		logger:   logger,
	}
}

// Generate renders the label for one record.
func (g *TemplateLabelGenerator) Generate(ctx context.Context, req printing.GenerateLabelRequest) (*printing.BarcodeLabel, error) {
	path, err := g.resolver.Resolve(req.Line.Location)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case printing.TemplateExtHTML:
		return g.renderHTML(ctx, path, req)
	case printing.TemplateExtPDF:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read template %q: %w", path, err)
		}
		return &printing.BarcodeLabel{
			FileName:    labelFileName(req),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, printing.WrapProviderError(fmt.Sprintf("template %q", path), ErrUnsupportedTemplateExtension)
	}
}

func (g *TemplateLabelGenerator) renderHTML(ctx context.Context, path string, req printing.GenerateLabelRequest) (*printing.BarcodeLabel, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %q: %w", path, err)
	}
	tmpl, err := template.New(filepath.Base(path)).Parse(string(source))
	if err != nil {
		return nil, fmt.Errorf("compile template %q: %w", path, err)
	}

	var html bytes.Buffer
	if err := tmpl.Execute(&html, req.Parameters); err != nil {
		return nil, fmt.Errorf("execute template %q: %w", path, err)
	}

	result, err := g.renderer.Render(ctx, &RenderRequest{
		HTML:     html.String(),
		WidthMM:  g.widthMM,
		HeightMM: g.heightMM,
		Title:    labelFileName(req),
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("label generated",
		zap.String("template", path),
		zap.String("record", req.RecordID))
	return &printing.BarcodeLabel{
		FileName:    labelFileName(req),
		ContentType: "application/pdf",
		Data:        result.PDFData,
	}, nil
}

func labelFileName(req printing.GenerateLabelRequest) string {
	return fmt.Sprintf("%s-%s.pdf", req.TableID, req.RecordID)
}
