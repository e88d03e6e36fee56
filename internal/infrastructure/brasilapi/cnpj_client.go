// Package brasilapi adaptador de la consulta pública de CNPJ de BrasilAPI.
package brasilapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/application/ports"
)

// Verificar en tiempo de compilación que CNPJClient implementa CNPJLookup.
var _ ports.CNPJLookup = (*CNPJClient)(nil)

// DefaultBaseURL endpoint público de consulta de CNPJ.
const DefaultBaseURL = "https://brasilapi.com.br/api/cnpj/v1"

// CNPJClient consulta CNPJ en BrasilAPI usando net/http.
type CNPJClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCNPJClient construye el adaptador. baseURL vacío usa DefaultBaseURL.
// El use case impone además un context.WithTimeout por consulta.
func NewCNPJClient(baseURL string, timeout time.Duration) *CNPJClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CNPJClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// cnpjPayload campos de la respuesta de BrasilAPI que usa el portal.
type cnpjPayload struct {
	CNPJ              string `json:"cnpj"`
	RazaoSocial       string `json:"razao_social"`
	Email             string `json:"email"`
	Telefone          string `json:"ddd_telefone_1"`
	Logradouro        string `json:"logradouro"`
	Numero            string `json:"numero"`
	Complemento       string `json:"complemento"`
	Bairro            string `json:"bairro"`
	Municipio         string `json:"municipio"`
	UF                string `json:"uf"`
	InscricaoEstadual string `json:"inscricao_estadual"`
}

// LookupCNPJ consulta el CNPJ (solo dígitos) y lo mapea al formulario de empresa.
func (c *CNPJClient) LookupCNPJ(ctx context.Context, cnpj string) (*dto.CNPJLookupResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+cnpj, nil)
	if err != nil {
		return nil, fmt.Errorf("cnpj: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("cnpj: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("cnpj: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("cnpj: leer respuesta: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ports.ErrCNPJNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("cnpj: BrasilAPI HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var p cnpjPayload
	if err := json.Unmarshal(rawBody, &p); err != nil {
		return nil, fmt.Errorf("cnpj: deserializar respuesta: %w", err)
	}

	return &dto.CNPJLookupResponse{
		Name:              p.RazaoSocial,
		Email:             p.Email,
		Phone:             p.Telefone,
		Whatsapp:          p.Telefone,
		Address:           formatAddress(p),
		CNPJ:              p.CNPJ,
		StateRegistration: p.InscricaoEstadual,
	}, nil
}

// formatAddress arma "Logradouro, Número - Complemento - Bairro, Município/UF".
func formatAddress(p cnpjPayload) string {
	var b strings.Builder
	b.WriteString(p.Logradouro)
	if p.Numero != "" {
		b.WriteString(", " + p.Numero)
	}
	if p.Complemento != "" {
		b.WriteString(" - " + p.Complemento)
	}
	if p.Bairro != "" {
		b.WriteString(" - " + p.Bairro)
	}
	if p.Municipio != "" {
		b.WriteString(", " + p.Municipio)
		if p.UF != "" {
			b.WriteString("/" + p.UF)
		}
	}
	return strings.TrimSpace(b.String())
}
