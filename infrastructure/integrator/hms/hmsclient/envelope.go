package hmsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope é o formato único de resposta do backend hoteleiro.
// O parse é estrito: resposta fora deste formato é erro, nunca
// adivinhação de formato alternativo.
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    jsoniter.RawMessage `json:"data"`
}

// decodeEnvelope decodifica o corpo da resposta e desembrulha o payload em out
func decodeEnvelope(body io.Reader, out any) error {
	var env envelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		return fmt.Errorf("erro ao decodificar o envelope de resposta: %w", err)
	}

	if !env.Success {
		return fmt.Errorf("backend retornou falha: %s", env.Message)
	}

	if len(env.Data) == 0 {
		return fmt.Errorf("envelope de resposta sem campo data")
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("erro ao decodificar o payload da resposta: %w", err)
	}

	return nil
}

// get executa uma requisição GET autenticada contra o backend e
// desembrulha o envelope em out.
func (c *HMSClient) get(ctx context.Context, httpClient *http.Client, endpointPath string, query url.Values, out any) error {
	endpoint, err := url.Parse(c.config.HMS.BaseURL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)

	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.HMS.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requisição %s falhou com status: %s", endpointPath, resp.Status)
	}

	return decodeEnvelope(resp.Body, out)
}
