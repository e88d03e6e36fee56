package brasilapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-portal/internal/application/ports"
)

func TestCNPJClient_LookupCNPJ_MapeaCampos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/11222333000181", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cnpj": "11222333000181",
			"razao_social": "ACME COMERCIO LTDA",
			"email": "fiscal@acme.com.br",
			"ddd_telefone_1": "1133334444",
			"logradouro": "RUA DAS FLORES",
			"numero": "100",
			"complemento": "SALA 2",
			"bairro": "CENTRO",
			"municipio": "SAO PAULO",
			"uf": "SP",
			"inscricao_estadual": "123456789"
		}`))
	}))
	defer srv.Close()

	out, err := NewCNPJClient(srv.URL, time.Second).LookupCNPJ(context.Background(), "11222333000181")
	require.NoError(t, err)
	assert.Equal(t, "ACME COMERCIO LTDA", out.Name)
	assert.Equal(t, "1133334444", out.Phone)
	assert.Equal(t, out.Phone, out.Whatsapp)
	assert.Equal(t, "RUA DAS FLORES, 100 - SALA 2 - CENTRO, SAO PAULO/SP", out.Address)
	assert.Equal(t, "123456789", out.StateRegistration)
}

func TestCNPJClient_LookupCNPJ_NoEncontrado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewCNPJClient(srv.URL, time.Second).LookupCNPJ(context.Background(), "11222333000181")
	assert.ErrorIs(t, err, ports.ErrCNPJNotFound)
}

func TestCNPJClient_LookupCNPJ_ErrorDelProveedor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewCNPJClient(srv.URL, time.Second).LookupCNPJ(context.Background(), "11222333000181")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrCNPJNotFound)
}

func TestFormatAddress_SinComplemento(t *testing.T) {
	got := formatAddress(cnpjPayload{Logradouro: "AV PAULISTA", Numero: "1000", Bairro: "BELA VISTA", Municipio: "SAO PAULO", UF: "SP"})
	assert.Equal(t, "AV PAULISTA, 1000 - BELA VISTA, SAO PAULO/SP", got)
}
