package exporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/hotel-manager-api/internal/config"
)

func testRequest(format Format) Request {
	return Request{
		Format: format,
		Columns: []Column{
			{Key: "period", Title: "Kỳ"},
			{Key: "total_revenue", Title: "Tổng doanh thu"},
		},
		Rows: []map[string]any{
			{"period": "2024-05-01", "total_revenue": float64(100000)},
			{"period": "2024-05-02", "total_revenue": float64(250000)},
		},
	}
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	service := NewService(&config.Config{})

	t.Run("Gera CSV com BOM, cabeçalho e linhas", func(t *testing.T) {
		file, err := service.Export(ctx, testRequest(FormatCSV))

		assert.NoError(t, err)
		assert.True(t, strings.HasSuffix(file.Name, ".csv"))
		assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
		assert.True(t, bytes.HasPrefix(file.Content, []byte("\xEF\xBB\xBF")))

		reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(file.Content, []byte("\xEF\xBB\xBF"))))
		records, err := reader.ReadAll()

		assert.NoError(t, err)
		assert.Equal(t, [][]string{
			{"Kỳ", "Tổng doanh thu"},
			{"2024-05-01", "100000"},
			{"2024-05-02", "250000"},
		}, records)
	})

	t.Run("CSV sem linhas sai somente com o cabeçalho", func(t *testing.T) {
		req := testRequest(FormatCSV)
		req.Rows = nil

		file, err := service.Export(ctx, req)

		assert.NoError(t, err)

		reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(file.Content, []byte("\xEF\xBB\xBF"))))
		records, err := reader.ReadAll()

		assert.NoError(t, err)
		assert.Len(t, records, 1)
	})
}

func TestExportValidation(t *testing.T) {
	ctx := context.Background()
	service := NewService(&config.Config{})

	t.Run("Sem colunas é rejeitado em qualquer formato", func(t *testing.T) {
		for _, format := range []Format{FormatExcel, FormatCSV, FormatPDF} {
			req := testRequest(format)
			req.Columns = nil

			_, err := service.Export(ctx, req)

			assert.ErrorIs(t, err, ErrNoData)
		}
	})

	t.Run("PDF sem linhas é rejeitado", func(t *testing.T) {
		req := testRequest(FormatPDF)
		req.Rows = nil

		_, err := service.Export(ctx, req)

		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("Excel sem linhas é aceito", func(t *testing.T) {
		req := testRequest(FormatExcel)
		req.Rows = nil

		file, err := service.Export(ctx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, file.Content)
	})

	t.Run("Formato desconhecido é rejeitado", func(t *testing.T) {
		req := testRequest("docx")

		_, err := service.Export(ctx, req)

		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

func TestExportExcelAndPDF(t *testing.T) {
	ctx := context.Background()
	service := NewService(&config.Config{})

	t.Run("Excel gera planilha com content type próprio", func(t *testing.T) {
		req := testRequest(FormatExcel)
		req.Title = "Báo cáo doanh thu tháng 5"

		file, err := service.Export(ctx, req)

		assert.NoError(t, err)
		assert.True(t, strings.HasSuffix(file.Name, ".xlsx"))
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)

		// Arquivo xlsx é um zip: assinatura PK
		assert.True(t, bytes.HasPrefix(file.Content, []byte("PK")))
	})

	t.Run("PDF gera documento com assinatura própria", func(t *testing.T) {
		req := testRequest(FormatPDF)
		req.Title = "Báo cáo doanh thu"
		req.Orientation = OrientationLandscape

		file, err := service.Export(ctx, req)

		assert.NoError(t, err)
		assert.True(t, strings.HasSuffix(file.Name, ".pdf"))
		assert.Equal(t, "application/pdf", file.ContentType)
		assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
	})
}

func TestProject(t *testing.T) {
	t.Run("Path navega campos aninhados", func(t *testing.T) {
		columns := []Column{
			{Key: "type", Title: "Loại phòng", Path: []string{"room", "type", "name"}},
		}
		rows := []map[string]any{
			{"room": map[string]any{"type": map[string]any{"name": "Phòng VIP"}}},
		}

		cells := project(columns, rows)

		assert.Equal(t, "Phòng VIP", cells[0][0])
	})

	t.Run("Segmento ausente resolve para célula vazia", func(t *testing.T) {
		columns := []Column{
			{Key: "type", Title: "Loại phòng", Path: []string{"room", "missing", "name"}},
		}
		rows := []map[string]any{
			{"room": map[string]any{}},
		}

		cells := project(columns, rows)

		assert.Equal(t, "", cells[0][0])
	})

	t.Run("Render tem precedência sobre a serialização padrão", func(t *testing.T) {
		columns := []Column{
			{
				Key:   "total",
				Title: "Tổng tiền",
				Render: func(value any, row map[string]any) string {
					return "1.000.000 VNĐ"
				},
			},
		}
		rows := []map[string]any{
			{"total": float64(1000000)},
		}

		cells := project(columns, rows)

		assert.Equal(t, "1.000.000 VNĐ", cells[0][0])
	})
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "Nulo vira célula vazia", value: nil, expected: ""},
		{name: "Texto passa direto", value: "Không xác định", expected: "Không xác định"},
		{name: "Float integral sai sem casas", value: float64(100000), expected: "100000"},
		{name: "Float fracionário preserva as casas", value: 66.67, expected: "66.67"},
		{name: "Booleano verdadeiro", value: true, expected: "true"},
		{name: "Inteiro nativo", value: 42, expected: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stringify(tt.value))
		})
	}
}

func TestFilename(t *testing.T) {
	t.Run("Usa o nome base informado", func(t *testing.T) {
		name := filename("doanh-thu", "csv")

		assert.True(t, strings.HasPrefix(name, "doanh-thu-"))
		assert.True(t, strings.HasSuffix(name, ".csv"))
	})

	t.Run("Nome vazio cai no padrão", func(t *testing.T) {
		name := filename("", "xlsx")

		assert.True(t, strings.HasPrefix(name, "bao-cao-"))
	})

	t.Run("Downloads repetidos não colidem", func(t *testing.T) {
		assert.NotEqual(t, filename("doanh-thu", "csv"), filename("doanh-thu", "csv"))
	})
}
