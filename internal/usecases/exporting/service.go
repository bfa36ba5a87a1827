package exporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/hotel-manager-api/internal/config"
	"github.com/vfg2006/hotel-manager-api/internal/domain"
	"github.com/vfg2006/hotel-manager-api/pkg/log"
	"github.com/vfg2006/hotel-manager-api/pkg/utils"
)

type Format string

const (
	FormatExcel Format = "excel"
	FormatCSV   Format = "csv"
	FormatPDF   Format = "pdf"
)

type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

var (
	// ErrNoData indica requisição sem linhas ou sem colunas onde o formato
	// exige conteúdo. É erro do chamador, não do gerador.
	ErrNoData = errors.New("nada a exportar")

	// ErrUnknownFormat indica um formato fora de excel/csv/pdf
	ErrUnknownFormat = errors.New("formato de exportação desconhecido")

	// ErrGeneration indica falha da biblioteca geradora com dados válidos
	ErrGeneration = errors.New("falha ao gerar o arquivo de exportação")
)

// Column descreve uma coluna do dataset exportado. Path navega campos
// aninhados da linha; Render, quando definido, tem precedência sobre a
// serialização padrão.
type Column struct {
	Key    string   `json:"key"`
	Title  string   `json:"title"`
	Path   []string `json:"path,omitempty"`
	Width  float64  `json:"width,omitempty"`
	Render func(value any, row map[string]any) string `json:"-"`
}

// Request é um pedido de exportação independente de formato
type Request struct {
	Columns     []Column         `json:"columns"`
	Rows        []map[string]any `json:"rows"`
	Format      Format           `json:"format"`
	Filename    string           `json:"filename,omitempty"`
	Title       string           `json:"title,omitempty"`
	Orientation Orientation      `json:"orientation,omitempty"`
}

// File é o artefato pronto para download
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// Exporter gera arquivos de relatório e comprovantes de reserva
type Exporter interface {
	Export(ctx context.Context, req Request) (*File, error)
	BookingConfirmationPDF(ctx context.Context, confirmation *domain.BookingConfirmation) (*File, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// Export projeta as linhas uma única vez e despacha para o gerador do
// formato pedido. Colunas vazias são rejeitadas em qualquer formato;
// linhas vazias só são rejeitadas no PDF, os formatos tabulares aceitam
// planilha somente com cabeçalho.
func (s *Service) Export(ctx context.Context, req Request) (*File, error) {
	if len(req.Columns) == 0 {
		return nil, ErrNoData
	}

	cells := project(req.Columns, req.Rows)

	var (
		content     []byte
		contentType string
		extension   string
		err         error
	)

	switch req.Format {
	case FormatExcel:
		content, err = s.generateExcel(req, cells)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		extension = "xlsx"
	case FormatCSV:
		content, err = s.generateCSV(req, cells)
		contentType = "text/csv; charset=utf-8"
		extension = "csv"
	case FormatPDF:
		if len(req.Rows) == 0 {
			return nil, ErrNoData
		}
		content, err = s.generatePDF(req, cells)
		contentType = "application/pdf"
		extension = "pdf"
	default:
		return nil, ErrUnknownFormat
	}

	if err != nil {
		return nil, err
	}

	name := filename(req.Filename, extension)

	log.ForContext(ctx).WithFields(log.Fields{
		"format":   string(req.Format),
		"rows":     len(req.Rows),
		"columns":  len(req.Columns),
		"filename": name,
	}).Info("exporting: arquivo gerado")

	return &File{
		Name:        name,
		ContentType: contentType,
		Content:     content,
	}, nil
}

// project resolve cada célula para texto. Roda uma única vez por pedido e
// o resultado alimenta qualquer formato.
func project(columns []Column, rows []map[string]any) [][]string {
	cells := make([][]string, len(rows))

	for i, row := range rows {
		cells[i] = make([]string, len(columns))

		for j, column := range columns {
			value := resolvePath(row, column.Path, column.Key)

			if column.Render != nil {
				cells[i][j] = column.Render(value, row)
				continue
			}

			cells[i][j] = stringify(value)
		}
	}

	return cells
}

// resolvePath navega os campos aninhados da linha. Path vazio usa a chave
// da coluna; qualquer segmento ausente resolve para nil.
func resolvePath(row map[string]any, path []string, key string) any {
	if len(path) == 0 {
		path = []string{key}
	}

	var current any = row
	for _, segment := range path {
		asMap, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		current, ok = asMap[segment]
		if !ok {
			return nil
		}
	}

	return current
}

// stringify serializa um valor de célula. Valores ausentes viram célula
// vazia, nunca "nil" ou "<nil>".
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		// JSON decodifica números como float64; inteiros saem sem casas
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	case time.Time:
		return v.Format("2006-01-02 15:04")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// generateCSV escreve BOM UTF-8, cabeçalho e linhas
func (s *Service) generateCSV(req Request, cells [][]string) ([]byte, error) {
	var buffer bytes.Buffer

	// O BOM faz o Excel abrir o arquivo como UTF-8 e preservar o vietnamita
	buffer.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(&buffer)

	header := make([]string, len(req.Columns))
	for i, column := range req.Columns {
		header[i] = column.Title
	}

	if err := writer.Write(header); err != nil {
		return nil, errors.Wrapf(ErrGeneration, "csv: %v", err)
	}

	for _, row := range cells {
		if err := writer.Write(row); err != nil {
			return nil, errors.Wrapf(ErrGeneration, "csv: %v", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrapf(ErrGeneration, "csv: %v", err)
	}

	return buffer.Bytes(), nil
}

// filename monta o nome do arquivo com carimbo de data e sufixo aleatório
// para downloads repetidos não colidirem
func filename(base, extension string) string {
	if base == "" {
		base = "bao-cao"
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		suffix = "000000"
	}

	return fmt.Sprintf("%s-%s-%s.%s", base, time.Now().Format("20060102"), suffix, extension)
}
